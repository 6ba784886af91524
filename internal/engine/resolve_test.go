package engine

import (
	"strings"
	"testing"
)

func offerEvent() GameEvent {
	return GameEvent{
		ID:    "ev_offer",
		Title: "Shop Offer",
		Type:  EventOpportunity,
		Choices: []EventChoice{
			{
				ID:    "pay",
				Label: "Buy the Shop",
				Cost:  50_000,
				OnSuccess: EventResult{
					Message: "The shop is yours.",
					Asset: &Asset{
						CatalogID: "itm_shop", Name: "Provision Shop",
						Category: Business, Cost: 50_000, CashFlow: 8_000, MaxLevel: 2,
					},
				},
			},
			{
				ID:            "risky",
				Label:         "Gamble the Intro Fee",
				SuccessChance: 0.4,
				OnSuccess:     EventResult{Message: "It paid off.", CashChange: 100_000},
				OnFailure:     &EventResult{Message: "It flopped.", MoodChange: -10},
			},
			{
				ID:        "gated",
				Label:     "Call in a Favour",
				ReqSocial: 50,
				OnSuccess: EventResult{Message: "Connections came through.", CashChange: 30_000},
			},
			{
				ID:    "policy",
				Label: "Absorb the Policy Shock",
				OnSuccess: EventResult{
					Message:         "Costs jumped.",
					ExpenseChange:   15_000,
					ExpenseCategory: CatTransport,
					FlagsSet:        []string{FlagSubsidyRemoved},
				},
			},
		},
	}
}

func modalGame() Game {
	g := baseGame()
	g.State.Phase = PhaseEventModal
	return g
}

func TestResolveEventCashPurchase(t *testing.T) {
	e := testEngine()
	g, err := e.ResolveEvent(modalGame(), offerEvent(), "pay", PayCash)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 50_000 {
		t.Fatalf("cash = %d, want 50000", g.Player.Cash)
	}
	if len(g.Player.Assets) != 1 {
		t.Fatalf("assets = %+v", g.Player.Assets)
	}
	a := g.Player.Assets[0]
	if a.CatalogID != "itm_shop" || a.Level != 1 || a.ID == "" {
		t.Fatalf("asset = %+v", a)
	}
	if g.State.Phase != PhasePlaying {
		t.Fatalf("phase = %s, want PLAYING", g.State.Phase)
	}
}

func TestResolveEventBankFinancing(t *testing.T) {
	e := testEngine()
	g, err := e.ResolveEvent(modalGame(), offerEvent(), "pay", PayBank)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 100_000 {
		t.Fatalf("cash = %d, financing should not touch cash", g.Player.Cash)
	}
	if len(g.Player.Liabilities) != 1 {
		t.Fatalf("liabilities = %+v", g.Player.Liabilities)
	}
	l := g.Player.Liabilities[0]
	if l.Origin != OriginBank || l.TermRemaining != 12 || l.TotalOwed != 50_000 {
		t.Fatalf("liability = %+v", l)
	}
	if !strings.HasPrefix(l.Name, "Financing: ") {
		t.Fatalf("name = %q", l.Name)
	}
}

func TestResolveEventFinancingDeclined(t *testing.T) {
	e := testEngine()
	g := modalGame()
	ev := offerEvent()
	ev.Choices[0].Cost = 2_000_000 // above the ₦1.15m credit limit

	g, err := e.ResolveEvent(g, ev, "pay", PayBank)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(g.Player.Liabilities) != 0 || g.State.Phase != PhaseEventModal {
		t.Fatalf("declined financing must leave the modal open: %+v", g.State)
	}
}

func TestResolveEventCannotAfford(t *testing.T) {
	e := testEngine()
	g := modalGame()
	g.Player.Cash = 10_000

	g, err := e.ResolveEvent(g, offerEvent(), "pay", PayCash)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 10_000 || len(g.Player.Assets) != 0 {
		t.Fatalf("unaffordable choice applied: %+v", g.Player)
	}
	if g.State.Phase != PhaseEventModal {
		t.Fatalf("phase = %s, modal should stay open", g.State.Phase)
	}
}

func TestResolveEventRequirementGate(t *testing.T) {
	e := testEngine()
	g, err := e.ResolveEvent(modalGame(), offerEvent(), "gated", PayCash) // social 20 < 50
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 100_000 || g.State.Phase != PhaseEventModal {
		t.Fatalf("gated choice applied: cash=%d phase=%s", g.Player.Cash, g.State.Phase)
	}
}

func TestChoiceAvailable(t *testing.T) {
	p := baseGame().Player
	s := baseGame().State

	if ChoiceAvailable(EventChoice{ReqSocial: 50}, p, s) {
		t.Fatalf("social gate should fail at 20")
	}
	if ChoiceAvailable(EventChoice{ReqCash: 200_000}, p, s) {
		t.Fatalf("cash gate should fail at 100k")
	}
	if ChoiceAvailable(EventChoice{ReqAssetCategory: Business}, p, s) {
		t.Fatalf("category gate should fail with no assets")
	}
	if ChoiceAvailable(EventChoice{ReqFlag: FlagNairaFloated}, p, s) {
		t.Fatalf("flag gate should fail unset")
	}

	p.Assets = []Asset{{ID: "a1", Category: Business}}
	s.Flags[FlagNairaFloated] = true
	ok := EventChoice{ReqCash: 50_000, ReqSocial: 10, ReqAssetCategory: Business, ReqFlag: FlagNairaFloated}
	if !ChoiceAvailable(ok, p, s) {
		t.Fatalf("all gates met, choice should be available")
	}
}

func TestResolveEventSuccessRoll(t *testing.T) {
	e := testEngine(0.39) // under the 0.4 threshold
	g, err := e.ResolveEvent(modalGame(), offerEvent(), "risky", PayCash)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 200_000 {
		t.Fatalf("cash = %d, want 200000 on success", g.Player.Cash)
	}
	if g.Player.Mood != 70 {
		t.Fatalf("mood = %d, success should not touch mood", g.Player.Mood)
	}
}

func TestResolveEventFailureRoll(t *testing.T) {
	e := testEngine(0.41) // over the 0.4 threshold
	g, err := e.ResolveEvent(modalGame(), offerEvent(), "risky", PayCash)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 100_000 {
		t.Fatalf("cash = %d, failure pays nothing", g.Player.Cash)
	}
	if g.Player.Mood != 60 {
		t.Fatalf("mood = %d, want 60", g.Player.Mood)
	}
}

func TestResolveEventExpenseAndFlags(t *testing.T) {
	e := testEngine()
	g, err := e.ResolveEvent(modalGame(), offerEvent(), "policy", PayCash)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.BaseExpenses.Transport != 45_000 {
		t.Fatalf("base transport = %d, want 45000", g.Player.BaseExpenses.Transport)
	}
	if g.Player.Expenses.Transport != 45_000 {
		t.Fatalf("derived transport = %d, expenses must be recalculated", g.Player.Expenses.Transport)
	}
	if !g.State.Flags[FlagSubsidyRemoved] {
		t.Fatalf("flag not set")
	}
}

func TestResolveEventCanKill(t *testing.T) {
	e := testEngine()
	g := modalGame()
	g.Player.Health = 5
	ev := GameEvent{
		ID: "ev_fever", Title: "Fever", Type: EventShock,
		Choices: []EventChoice{
			{ID: "tough", Label: "Tough It Out", OnSuccess: EventResult{Message: "It got worse.", HealthChange: -20}},
		},
	}

	g, err := e.ResolveEvent(g, ev, "tough", PayCash)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.State.Phase != PhaseGameOver {
		t.Fatalf("phase = %s, want GAME_OVER", g.State.Phase)
	}
}

func TestResolveEventErrors(t *testing.T) {
	e := testEngine()
	if _, err := e.ResolveEvent(baseGame(), offerEvent(), "pay", PayCash); err != ErrWrongPhase {
		t.Fatalf("err = %v, want ErrWrongPhase", err)
	}
	if _, err := e.ResolveEvent(modalGame(), offerEvent(), "nope", PayCash); err != ErrUnknownChoice {
		t.Fatalf("err = %v, want ErrUnknownChoice", err)
	}
}
