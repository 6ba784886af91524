package engine

import "testing"

func TestTakeBankLoan(t *testing.T) {
	e := testEngine()
	g, err := e.TakeBankLoan(baseGame(), 500_000)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 600_000 {
		t.Fatalf("cash = %d, want 600000", g.Player.Cash)
	}
	l := g.Player.Liabilities[0]
	if l.TotalOwed != 500_000 || l.TermRemaining != 12 || l.MonthlyPayment != 41_667 {
		t.Fatalf("loan = %+v", l)
	}
}

func TestTakeBankLoanOverLimit(t *testing.T) {
	e := testEngine()
	g, err := e.TakeBankLoan(baseGame(), 2_000_000) // limit is ₦1.15m
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 100_000 || len(g.Player.Liabilities) != 0 {
		t.Fatalf("over-limit loan granted: %+v", g.Player)
	}
}

func TestTakeBankLoanCountsExistingDebt(t *testing.T) {
	e := testEngine()
	g := baseGame()
	g.Player.Liabilities = []Liability{{ID: "l1", Origin: OriginBank, Kind: KindLoan, TotalOwed: 1_000_000, MonthlyPayment: 50_000, TermRemaining: 20}}

	g, err := e.TakeBankLoan(g, 500_000) // 1m used + 500k > 1.15m limit
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(g.Player.Liabilities) != 1 {
		t.Fatalf("loan granted past remaining headroom")
	}
}

func TestTakeSharkLoan(t *testing.T) {
	e := testEngine()
	g, err := e.TakeSharkLoan(baseGame(), 1_000_000)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 1_100_000 {
		t.Fatalf("cash = %d", g.Player.Cash)
	}
	l := g.Player.Liabilities[0]
	if l.TotalOwed != 1_400_000 || l.MonthlyPayment != 350_000 || l.TermRemaining != 4 {
		t.Fatalf("shark = %+v", l)
	}
}

func TestTakeSharkLoanOverOffer(t *testing.T) {
	e := testEngine()
	g, err := e.TakeSharkLoan(baseGame(), 3_000_000) // offer caps at ₦2m
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(g.Player.Liabilities) != 0 {
		t.Fatalf("sharks lent beyond their offer")
	}
}

func TestRepayLiability(t *testing.T) {
	e := testEngine()
	g := baseGame()
	g.Player.Liabilities = []Liability{{ID: "l1", Name: "Bank Loan", Kind: KindLoan, Origin: OriginBank, TotalOwed: 50_000, MonthlyPayment: 5_000, TermRemaining: 10}}

	g, err := e.RepayLiability(g, "l1")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 50_000 || len(g.Player.Liabilities) != 0 {
		t.Fatalf("cash=%d liabilities=%+v", g.Player.Cash, g.Player.Liabilities)
	}
}

func TestRepayLiabilityInsufficientCash(t *testing.T) {
	e := testEngine()
	g := baseGame()
	g.Player.Liabilities = []Liability{{ID: "l1", Name: "Bank Loan", Kind: KindLoan, TotalOwed: 500_000, MonthlyPayment: 5_000}}

	g, err := e.RepayLiability(g, "l1")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 100_000 || len(g.Player.Liabilities) != 1 {
		t.Fatalf("partial repayment should not exist")
	}
}

func TestChangeLifestyle(t *testing.T) {
	e := testEngine()
	g, err := e.ChangeLifestyle(baseGame(), TierMiddle)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Lifestyle != TierMiddle {
		t.Fatalf("tier = %s", g.Player.Lifestyle)
	}
	if got := g.Player.Expenses.Sum(); got != 375_000 {
		t.Fatalf("expenses = %d, want 375000 (2.5x)", got)
	}
	// Base figures are untouched; the tier is a pure multiplier.
	if g.Player.BaseExpenses.Sum() != 150_000 {
		t.Fatalf("base = %d, want 150000", g.Player.BaseExpenses.Sum())
	}
}

func TestChangeLifestyleRejections(t *testing.T) {
	e := testEngine()
	g, err := e.ChangeLifestyle(baseGame(), TierLow) // already Low
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(g.State.Log) != len(baseGame().State.Log)+1 {
		t.Fatalf("expected a rejection log entry")
	}
	g, err = e.ChangeLifestyle(baseGame(), "Ballers")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Lifestyle != TierLow {
		t.Fatalf("invalid tier applied")
	}
}

func TestLearnSkill(t *testing.T) {
	e := testEngine()
	g, err := e.LearnSkill(baseGame(), "skill_code")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 0 || !g.Player.HasSkill("skill_code") {
		t.Fatalf("cash=%d skills=%v", g.Player.Cash, g.Player.Skills)
	}

	// Re-learning is refused before the cash check.
	g.Player.Cash = 500_000
	g, err = e.LearnSkill(g, "skill_code")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 500_000 || len(g.Player.Skills) != 1 {
		t.Fatalf("skill learned twice")
	}
}

func TestGigPay(t *testing.T) {
	e := testEngine()
	if got := e.GigPay(Player{}); got != 8_000 {
		t.Fatalf("base pay = %d, want 8000", got)
	}
	if got := e.GigPay(Player{Skills: []string{"skill_code"}}); got != 28_000 {
		t.Fatalf("skilled pay = %d, want 28000", got)
	}
}

func TestPerformGig(t *testing.T) {
	e := testEngine()
	g, err := e.PerformGig(baseGame())
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 108_000 || g.Player.GigsThisMonth != 1 {
		t.Fatalf("cash=%d gigs=%d", g.Player.Cash, g.Player.GigsThisMonth)
	}
	if g.Player.Mood != 65 {
		t.Fatalf("mood = %d, want 65", g.Player.Mood)
	}
}

func TestPerformGigMonthlyCap(t *testing.T) {
	e := testEngine()
	g := baseGame()
	g.Player.GigsThisMonth = 4

	g, err := e.PerformGig(g)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 100_000 || g.Player.GigsThisMonth != 4 {
		t.Fatalf("gig past the cap: %+v", g.Player)
	}
}

func TestBuyDreamItem(t *testing.T) {
	e := testEngine()
	g := baseGame()
	g.Player.Cash = 1_200_000

	g, err := e.BuyDreamItem(g)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 200_000 || !g.Player.DreamOwned {
		t.Fatalf("cash=%d owned=%v", g.Player.Cash, g.Player.DreamOwned)
	}
	// Passive income is still zero, so no victory yet.
	if g.State.Phase != PhasePlaying {
		t.Fatalf("phase = %s", g.State.Phase)
	}

	g.Player.Cash = 2_000_000
	g, err = e.BuyDreamItem(g)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Player.Cash != 2_000_000 {
		t.Fatalf("dream bought twice")
	}
}

func TestAusterity(t *testing.T) {
	e := testEngine()
	g, err := e.Austerity(baseGame())
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	base := g.Player.BaseExpenses
	if base.Food != 35_000 || base.Transport != 21_000 || base.Other != 14_000 {
		t.Fatalf("base = %+v", base)
	}
	if base.Rent != 50_000 {
		t.Fatalf("rent = %d, austerity must not touch rent", base.Rent)
	}
	if g.Player.Mood != 50 || g.Player.SocialCapital != 5 {
		t.Fatalf("mood=%d social=%d, want 50/5", g.Player.Mood, g.Player.SocialCapital)
	}
	if g.Player.Cash != 115_000 {
		t.Fatalf("cash = %d, want 115000", g.Player.Cash)
	}
}
