package catalog

import "naijaquest/internal/engine"

var dreams = []engine.DreamItem{
	{
		ID:          "dream_lekki",
		Name:        "Lekki Duplex",
		Description: "A 5-bedroom duplex in Lekki Phase 1. The ultimate soft-life flex.",
		Cost:        250_000_000,
	},
	{
		ID:          "dream_village",
		Name:        "Village Mansion",
		Description: "Build a mansion in the village and become a chief. Legacy secured.",
		Cost:        80_000_000,
	},
	{
		ID:          "dream_japa",
		Name:        "Japa (Relocate Abroad)",
		Description: "Visas, flights, and a soft landing fund for the whole family.",
		Cost:        40_000_000,
	},
	{
		ID:          "dream_gwagon",
		Name:        "G-Wagon",
		Description: "Brand new Mercedes G63. Arrive loudly.",
		Cost:        180_000_000,
	},
	{
		ID:          "dream_school",
		Name:        "Ivy League Masters",
		Description: "Fund a masters degree abroad, tuition and living costs covered.",
		Cost:        60_000_000,
	},
}
