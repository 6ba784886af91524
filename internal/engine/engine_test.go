package engine

import (
	"io"
	"log/slog"
	"testing"
)

// seqRand feeds scripted values to the engine; once exhausted it returns
// 0.5, which keeps the exchange-rate walk drift-only.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	if s.i >= len(s.vals) {
		return 0.5
	}
	v := s.vals[s.i]
	s.i++
	return v
}

func testCatalog() Catalog {
	return Catalog{
		Archetypes: []Archetype{
			{
				ID:         "arch_clerk",
				Name:       "The Clerk",
				Profession: "Records Clerk",
				Salary:     150_000,
				Savings:    100_000,
				Expenses: Expenses{
					Rent:      50_000,
					Food:      50_000,
					Transport: 30_000,
					Other:     20_000,
				},
				Liabilities: []Liability{
					{
						ID:             "loan_car",
						Name:           "Car Loan",
						Kind:           KindLoan,
						Origin:         OriginArchetype,
						TotalOwed:      50_000,
						MonthlyPayment: 50_000,
						TermRemaining:  1,
					},
				},
				StartingSocial: 20,
			},
		},
		Items: []MarketItem{
			{
				ID:              "itm_shop",
				Name:            "Provision Shop",
				Cost:            50_000,
				CashFlow:        8_000,
				Category:        Business,
				Tier:            TierLow,
				MaxLevel:        2,
				UpgradeCost:     30_000,
				UpgradeFlowGain: 4_000,
			},
			{
				ID:       "itm_flat",
				Name:     "Mini Flat",
				Cost:     1_200_000,
				CashFlow: 60_000,
				Category: RealEstate,
				Tier:     TierMiddle,
				MaxLevel: 1,
			},
			{
				ID:               "itm_risky",
				Name:             "Street Lottery",
				Cost:             20_000,
				CashFlow:         5_000,
				Category:         SideHustle,
				Tier:             TierLow,
				Risk:             0.5,
				OnFailureMessage: "The agent vanished with your stake.",
				MaxLevel:         1,
			},
			{
				ID:            "itm_bots",
				Name:          "Trading Bots",
				Cost:          80_000,
				CashFlow:      12_000,
				Category:      SideHustle,
				Tier:          TierLow,
				RequiresSkill: "skill_code",
				MaxLevel:      1,
			},
			{
				ID:       "itm_fx",
				Name:     "Dollar Bond",
				Cost:     500_000,
				CashFlow: 10,
				Currency: USD,
				Category: PaperAsset,
				Tier:     TierLow,
				MaxLevel: 1,
			},
		},
		Dreams: []DreamItem{
			{ID: "dream_house", Name: "Family House", Cost: 1_000_000},
		},
		Skills: []Skill{
			{ID: "skill_code", Name: "Coding", Cost: 100_000, GigBonus: 20_000},
		},
	}
}

func testEngine(vals ...float64) *Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(testCatalog(), &seqRand{vals: vals}, logger)
}

// baseGame is a canonical mid-run snapshot most tests tweak in place.
func baseGame() Game {
	base := Expenses{Rent: 50_000, Food: 50_000, Transport: 30_000, Other: 20_000}
	p := Player{
		Name:          "Ada",
		Profession:    "Records Clerk",
		Salary:        150_000,
		Cash:          100_000,
		SocialCapital: 20,
		Health:        80,
		Mood:          70,
		Assets:        []Asset{},
		Liabilities:   []Liability{},
		BaseExpenses:  base,
		Expenses:      RecalculateExpenses(base, TierLow),
		Lifestyle:     TierLow,
		Dream:         DreamItem{ID: "dream_house", Name: "Family House", Cost: 1_000_000},
		Skills:        []string{},
	}
	return Game{
		Player: p,
		State: GameState{
			Month:        3,
			Phase:        PhasePlaying,
			ExchangeRate: 1500,
			Flags:        map[string]bool{},
			History:      []NetWorthPoint{{Month: 3, Value: NetWorth(p)}},
		},
	}
}

func TestStartGame(t *testing.T) {
	e := testEngine()
	g, err := e.StartGame("arch_clerk", "dream_house", "Ada")
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	if g.State.Month != 1 || g.State.Phase != PhasePlaying {
		t.Fatalf("month=%d phase=%s", g.State.Month, g.State.Phase)
	}
	if g.Player.Health != 100 || g.Player.Mood != 100 {
		t.Fatalf("health=%d mood=%d, want 100/100", g.Player.Health, g.Player.Mood)
	}
	if g.Player.Cash != 100_000 || g.Player.Salary != 150_000 {
		t.Fatalf("cash=%d salary=%d", g.Player.Cash, g.Player.Salary)
	}
	// Low tier keeps derived expenses equal to the base figures.
	if g.Player.Expenses != g.Player.BaseExpenses {
		t.Fatalf("expenses %+v != base %+v", g.Player.Expenses, g.Player.BaseExpenses)
	}
	if len(g.Player.Liabilities) != 1 || g.Player.Liabilities[0].Origin != OriginArchetype {
		t.Fatalf("liabilities = %+v", g.Player.Liabilities)
	}
	if len(g.State.History) != 1 || g.State.History[0].Month != 1 {
		t.Fatalf("history = %+v", g.State.History)
	}
	if g.State.ExchangeRate != 1500 {
		t.Fatalf("rate = %d, want 1500", g.State.ExchangeRate)
	}
}

func TestStartGameUnknownIDs(t *testing.T) {
	e := testEngine()
	if _, err := e.StartGame("arch_nobody", "dream_house", ""); err != ErrUnknownArchetype {
		t.Fatalf("err = %v, want ErrUnknownArchetype", err)
	}
	if _, err := e.StartGame("arch_clerk", "dream_nothing", ""); err != ErrUnknownDream {
		t.Fatalf("err = %v, want ErrUnknownDream", err)
	}
}

func TestOperationsDoNotAliasInput(t *testing.T) {
	e := testEngine()
	g := baseGame()
	g.Player.Liabilities = []Liability{{
		ID: "loan_1", Name: "Loan", Kind: KindLoan, Origin: OriginBank,
		TotalOwed: 120_000, MonthlyPayment: 10_000, TermRemaining: 12,
	}}

	before := g.Player.Liabilities[0].TotalOwed
	next, _ := e.AdvanceMonth(g)
	next.Player.Liabilities[0].TotalOwed = 1
	next.State.Flags["poked"] = true

	if g.Player.Liabilities[0].TotalOwed != before {
		t.Fatalf("input snapshot mutated: owed=%d", g.Player.Liabilities[0].TotalOwed)
	}
	if g.State.Flags["poked"] {
		t.Fatalf("input flag map aliased")
	}
}

func TestRejectedActionKeepsSnapshot(t *testing.T) {
	e := testEngine()
	g := baseGame()
	g.Player.Cash = 1_000

	next, err := e.PurchaseMarketItem(g, "itm_shop", PayCash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Player.Cash != 1_000 || len(next.Player.Assets) != 0 {
		t.Fatalf("rejected purchase changed state: %+v", next.Player)
	}
	if len(next.State.Log) != len(g.State.Log)+1 {
		t.Fatalf("expected one narrative entry explaining the rejection")
	}
}
