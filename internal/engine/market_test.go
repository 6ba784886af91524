package engine

import "testing"

func TestPurchaseMarketItemCash(t *testing.T) {
	e := testEngine(0.5)
	g, err := e.PurchaseMarketItem(baseGame(), "itm_shop", PayCash)
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
	if a.CatalogID != "itm_shop" || a.Level != 1 || a.CashFlow != 8_000 || a.Currency != NGN {
		t.Fatalf("asset = %+v", a)
	}
	if a.ID == "" || a.ID == "itm_shop" {
		t.Fatalf("instance id = %q, want unique id distinct from catalog id", a.ID)
	}
}

func TestPurchaseMarketItemFinanced(t *testing.T) {
	e := testEngine(0.5)
	g := baseGame()
	g.Player.Salary = 500_000 // enough credit headroom for the flat

	g, err := e.PurchaseMarketItem(g, "itm_flat", PayBank)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 100_000 {
		t.Fatalf("cash = %d, financing should not touch cash", g.Player.Cash)
	}
	l := g.Player.Liabilities[0]
	// Middle-tier item: ₦1.2m over 24 months.
	if l.TotalOwed != 1_200_000 || l.MonthlyPayment != 50_000 || l.TermRemaining != 24 {
		t.Fatalf("liability = %+v", l)
	}
	if l.Origin != OriginBank {
		t.Fatalf("origin = %s", l.Origin)
	}
}

func TestPurchaseMarketItemFinancingDeclined(t *testing.T) {
	e := testEngine(0.5)
	g, err := e.PurchaseMarketItem(baseGame(), "itm_flat", PayBank) // limit ₦1.15m < ₦1.2m
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(g.Player.Liabilities) != 0 || len(g.Player.Assets) != 0 {
		t.Fatalf("declined financing changed state: %+v", g.Player)
	}
}

func TestPurchaseMarketItemRiskFailure(t *testing.T) {
	e := testEngine(0.3) // under the 0.5 risk: venture fails
	g, err := e.PurchaseMarketItem(baseGame(), "itm_risky", PayCash)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 80_000 {
		t.Fatalf("cash = %d, the stake is spent either way", g.Player.Cash)
	}
	if len(g.Player.Assets) != 0 {
		t.Fatalf("failed venture produced an asset")
	}
	if g.Player.Mood != 60 {
		t.Fatalf("mood = %d, want 60", g.Player.Mood)
	}
}

func TestPurchaseMarketItemFinancedFailureKeepsDebt(t *testing.T) {
	e := testEngine(0.3)
	g, err := e.PurchaseMarketItem(baseGame(), "itm_risky", PayBank)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(g.Player.Assets) != 0 {
		t.Fatalf("failed venture produced an asset")
	}
	if len(g.Player.Liabilities) != 1 || g.Player.Liabilities[0].TotalOwed != 20_000 {
		t.Fatalf("the bank still wants its money: %+v", g.Player.Liabilities)
	}
}

func TestPurchaseMarketItemSkillGate(t *testing.T) {
	e := testEngine(0.5)
	g, err := e.PurchaseMarketItem(baseGame(), "itm_bots", PayCash)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(g.Player.Assets) != 0 || g.Player.Cash != 100_000 {
		t.Fatalf("skill-gated purchase went through: %+v", g.Player)
	}

	g2 := baseGame()
	g2.Player.Skills = []string{"skill_code"}
	g2, err = e.PurchaseMarketItem(g2, "itm_bots", PayCash)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(g2.Player.Assets) != 1 {
		t.Fatalf("skilled purchase should succeed")
	}
}

func TestPurchaseRepeatPolicy(t *testing.T) {
	e := testEngine(0.5, 0.5)
	g := baseGame()
	g.Player.Cash = 500_000
	g.Player.Assets = []Asset{{
		ID: "a1", CatalogID: "itm_shop", Name: "Provision Shop",
		Category: Business, Cost: 50_000, CashFlow: 8_000, Level: 1, MaxLevel: 2,
	}}

	// A second shop is blocked while the first is below max level.
	next, err := e.PurchaseMarketItem(g, "itm_shop", PayCash)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(next.Player.Assets) != 1 {
		t.Fatalf("repeat purchase allowed below max level")
	}

	g.Player.Assets[0].Level = 2
	next, err = e.PurchaseMarketItem(g, "itm_shop", PayCash)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(next.Player.Assets) != 2 {
		t.Fatalf("maxed-out shop should unlock a second instance")
	}
}

func TestUpgradeAsset(t *testing.T) {
	e := testEngine()
	g := baseGame()
	g.Player.Assets = []Asset{{
		ID: "a1", CatalogID: "itm_shop", Name: "Provision Shop", Category: Business,
		Cost: 50_000, CashFlow: 8_000, Level: 1, MaxLevel: 2,
		UpgradeCost: 30_000, UpgradeFlowGain: 4_000,
	}}

	g, err := e.UpgradeAsset(g, "a1")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 70_000 {
		t.Fatalf("cash = %d, want 70000", g.Player.Cash)
	}
	a := g.Player.Assets[0]
	if a.Level != 2 || a.CashFlow != 12_000 {
		t.Fatalf("asset = %+v", a)
	}

	// At max level the upgrade is refused.
	g, err = e.UpgradeAsset(g, "a1")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Assets[0].Level != 2 || g.Player.Cash != 70_000 {
		t.Fatalf("upgrade past max level applied")
	}
}

func TestSellAsset(t *testing.T) {
	e := testEngine()
	g := baseGame()
	g.Player.Assets = []Asset{
		{ID: "a1", Name: "Provision Shop", Cost: 50_000, CashFlow: 8_000},
		{ID: "a2", Name: "Old Bike", Cost: 80_000, ResaleValue: 60_000},
	}

	g, err := e.SellAsset(g, "a2")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 160_000 {
		t.Fatalf("cash = %d, want 160000 (resale value, no haircut)", g.Player.Cash)
	}
	if len(g.Player.Assets) != 1 || g.Player.Assets[0].ID != "a1" {
		t.Fatalf("assets = %+v", g.Player.Assets)
	}
}

func TestPurchaseMarketItemErrors(t *testing.T) {
	e := testEngine()
	if _, err := e.PurchaseMarketItem(baseGame(), "itm_ghost", PayCash); err != ErrUnknownItem {
		t.Fatalf("err = %v, want ErrUnknownItem", err)
	}
	g := baseGame()
	g.State.Phase = PhaseInsolvency
	if _, err := e.PurchaseMarketItem(g, "itm_shop", PayCash); err != ErrWrongPhase {
		t.Fatalf("err = %v, want ErrWrongPhase", err)
	}
}
