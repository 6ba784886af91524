// Package catalog holds the built-in game content: starting archetypes,
// the asset marketplace, the event deck, dream goals, and learnable skills.
// Everything here is read-only configuration consumed by the engine.
package catalog

import "naijaquest/internal/engine"

// Default returns the full built-in content set.
func Default() engine.Catalog {
	return engine.Catalog{
		Archetypes: archetypes,
		Items:      marketItems,
		Events:     events,
		Dreams:     dreams,
		Skills:     skills,
	}
}
