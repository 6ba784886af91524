package catalog

import "naijaquest/internal/engine"

var skills = []engine.Skill{
	{ID: "skill_tech", Name: "Tech Skills (Coding)", Cost: 150_000, GigBonus: 25_000},
	{ID: "skill_design", Name: "Graphic Design", Cost: 60_000, GigBonus: 12_000},
	{ID: "skill_forex", Name: "Forex Trading Course", Cost: 100_000, GigBonus: 15_000},
	{ID: "skill_mc", Name: "MC / Event Compere", Cost: 30_000, GigBonus: 8_000},
	{ID: "skill_drive", Name: "Driving License + Rides App", Cost: 45_000, GigBonus: 10_000},
}
