package engine

// quietMonth is the fallback when no catalog event is eligible. Resolving
// it changes nothing.
var quietMonth = GameEvent{
	ID:          "quiet_month",
	Title:       "A Quiet Month",
	Description: "No wahala this month. The city hums along without noticing you.",
	Type:        EventEconomic,
	Choices: []EventChoice{
		{ID: "quiet_ok", Label: "Carry On", OnSuccess: EventResult{Message: "You enjoy the rare calm."}},
	},
}

func eventEligible(ev GameEvent, p Player, s GameState) bool {
	if ev.RequiresFlag != "" && !s.Flags[ev.RequiresFlag] {
		return false
	}
	if ev.RequiresCategory != "" && !p.ownsCategory(ev.RequiresCategory) {
		return false
	}
	if ev.RequiresCatalog != "" && !p.ownsCatalogItem(ev.RequiresCatalog) {
		return false
	}
	if ev.MinSocial > 0 && p.SocialCapital < ev.MinSocial {
		return false
	}
	// Morale-crisis events only fire while mood is at or below the gate.
	if ev.MaxMood > 0 && p.Mood > ev.MaxMood {
		return false
	}
	return true
}

func eventWeight(ev GameEvent) int {
	if ev.Weight <= 0 {
		return 1
	}
	return ev.Weight
}

// SelectEvent filters the catalog against the current snapshot and draws a
// weighted random event. An empty candidate set falls back to quietMonth.
func (e *Engine) SelectEvent(p Player, s GameState) GameEvent {
	candidates := make([]GameEvent, 0, len(e.catalog.Events))
	totalWeight := 0
	for _, ev := range e.catalog.Events {
		if eventEligible(ev, p, s) {
			candidates = append(candidates, ev)
			totalWeight += eventWeight(ev)
		}
	}
	if len(candidates) == 0 {
		return quietMonth
	}

	draw := e.rng.Float64() * float64(totalWeight)
	for _, ev := range candidates {
		w := float64(eventWeight(ev))
		if draw < w {
			return ev
		}
		draw -= w
	}
	return candidates[0]
}
