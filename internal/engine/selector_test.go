package engine

import (
	"io"
	"log/slog"
	"testing"
)

func selectorEngine(events []GameEvent, vals ...float64) *Engine {
	c := testCatalog()
	c.Events = events
	return New(c, &seqRand{vals: vals}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func gatedEvents() []GameEvent {
	choice := []EventChoice{{ID: "ok", Label: "OK", OnSuccess: EventResult{Message: "."}}}
	return []GameEvent{
		{ID: "ev_flag", Title: "Aftershock", Type: EventEconomic, RequiresFlag: FlagSubsidyRemoved, Choices: choice},
		{ID: "ev_cat", Title: "Business Trouble", Type: EventShock, RequiresCategory: Business, Choices: choice},
		{ID: "ev_item", Title: "Shop Trouble", Type: EventShock, RequiresCatalog: "itm_shop", Choices: choice},
		{ID: "ev_social", Title: "Big League Invite", Type: EventSocial, MinSocial: 50, Choices: choice},
		{ID: "ev_mood", Title: "Rough Patch", Type: EventShock, MaxMood: 30, Choices: choice},
		{ID: "ev_open", Title: "Open Event", Type: EventEconomic, Weight: 3, Choices: choice},
		{ID: "ev_open2", Title: "Other Open Event", Type: EventEconomic, Choices: choice},
	}
}

func TestSelectEventFiltersGates(t *testing.T) {
	e := selectorEngine(gatedEvents(), 0.0)
	g := baseGame() // no flags, no assets, social 20, mood 70

	for i := 0; i < 20; i++ {
		ev := e.SelectEvent(g.Player, g.State)
		switch ev.ID {
		case "ev_open", "ev_open2":
		default:
			t.Fatalf("gated event %q selected", ev.ID)
		}
	}
}

func TestSelectEventWeightedDraw(t *testing.T) {
	// Candidates are ev_open (weight 3) then ev_open2 (weight 1).
	e := selectorEngine(gatedEvents(), 0.5)
	g := baseGame()
	if ev := e.SelectEvent(g.Player, g.State); ev.ID != "ev_open" {
		t.Fatalf("draw 2.0/4: got %q, want ev_open", ev.ID)
	}

	e = selectorEngine(gatedEvents(), 0.9)
	if ev := e.SelectEvent(g.Player, g.State); ev.ID != "ev_open2" {
		t.Fatalf("draw 3.6/4: got %q, want ev_open2", ev.ID)
	}
}

func TestSelectEventUnlocksWithState(t *testing.T) {
	e := selectorEngine(gatedEvents()[:1], 0.0) // only the flag-gated event
	g := baseGame()

	if ev := e.SelectEvent(g.Player, g.State); ev.ID != "quiet_month" {
		t.Fatalf("got %q, want quiet_month fallback", ev.ID)
	}
	g.State.Flags[FlagSubsidyRemoved] = true
	if ev := e.SelectEvent(g.Player, g.State); ev.ID != "ev_flag" {
		t.Fatalf("got %q, want ev_flag once the flag is set", ev.ID)
	}
}

func TestSelectEventMoodGate(t *testing.T) {
	events := gatedEvents()[4:5] // only ev_mood (MaxMood 30)
	e := selectorEngine(events, 0.0)
	g := baseGame()

	if ev := e.SelectEvent(g.Player, g.State); ev.ID != "quiet_month" {
		t.Fatalf("mood 70: got %q, want quiet_month", ev.ID)
	}
	g.Player.Mood = 25
	if ev := e.SelectEvent(g.Player, g.State); ev.ID != "ev_mood" {
		t.Fatalf("mood 25: got %q, want ev_mood", ev.ID)
	}
}

func TestSelectEventOwnershipGates(t *testing.T) {
	events := gatedEvents()[1:3] // ev_cat and ev_item
	e := selectorEngine(events, 0.0)
	g := baseGame()

	if ev := e.SelectEvent(g.Player, g.State); ev.ID != "quiet_month" {
		t.Fatalf("no assets: got %q", ev.ID)
	}
	g.Player.Assets = []Asset{{ID: "a1", CatalogID: "itm_shop", Category: Business}}
	ev := e.SelectEvent(g.Player, g.State)
	if ev.ID != "ev_cat" && ev.ID != "ev_item" {
		t.Fatalf("owning the shop should unlock both gates, got %q", ev.ID)
	}
}

func TestSelectEventEmptyCatalogFallsBack(t *testing.T) {
	e := selectorEngine(nil, 0.0)
	g := baseGame()
	ev := e.SelectEvent(g.Player, g.State)
	if ev.ID != "quiet_month" || len(ev.Choices) == 0 {
		t.Fatalf("fallback = %+v", ev)
	}
}
