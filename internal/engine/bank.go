package engine

import "math"

const (
	cashLoanTermMonths = 12

	gigBasePay      = 8_000
	gigMoodCost     = 5
	maxGigsPerMonth = 4

	austerityCut       = 0.7
	austerityMoodHit   = 20
	austeritySocialHit = 15
	austerityScrounge  = 15_000
)

// TakeBankLoan draws an interest-free cash loan against the bank credit
// limit, repaid over a fixed term.
func (e *Engine) TakeBankLoan(g Game, amount int64) (Game, error) {
	if g.State.Phase != PhasePlaying {
		return g, ErrWrongPhase
	}
	if amount <= 0 {
		return reject(g, "The bank does not lend ₦0."), nil
	}
	if !bankHeadroomFor(g.Player, g.State.Month, amount) {
		return reject(g, "Loan declined! ₦%d exceeds your remaining credit.", amount), nil
	}

	g = clone(g)
	loan := newBankLiability("Bank Loan", amount, cashLoanTermMonths)
	g.Player.Cash += amount
	g.Player.Liabilities = append(g.Player.Liabilities, loan)
	return logf(g, "BANK: borrowed ₦%d, repaying ₦%d/mo for %d months.", amount, loan.MonthlyPayment, cashLoanTermMonths), nil
}

// TakeSharkLoan is always granted up to the sharks' offer cap.
func (e *Engine) TakeSharkLoan(g Game, amount int64) (Game, error) {
	if g.State.Phase != PhasePlaying {
		return g, ErrWrongPhase
	}
	if amount <= 0 {
		return reject(g, "The sharks laughed at your request."), nil
	}
	if amount > SharkLimit(g.Player) {
		return reject(g, "Even the sharks won't front you ₦%d.", amount), nil
	}

	g = clone(g)
	loan := newSharkLiability(amount)
	g.Player.Cash += amount
	g.Player.Liabilities = append(g.Player.Liabilities, loan)
	return logf(g, "SHARK: took ₦%d. You owe ₦%d. Don't miss a payment.", amount, loan.TotalOwed), nil
}

// RepayLiability settles a debt early, in full.
func (e *Engine) RepayLiability(g Game, liabilityID string) (Game, error) {
	if g.State.Phase != PhasePlaying {
		return g, ErrWrongPhase
	}
	idx := -1
	for i, l := range g.Player.Liabilities {
		if l.ID == liabilityID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return reject(g, "No such debt to pay off."), nil
	}
	owed := g.Player.Liabilities[idx]
	if g.Player.Cash < owed.TotalOwed {
		return reject(g, "Cannot afford to pay off %s yet.", owed.Name), nil
	}

	g = clone(g)
	g.Player.Cash -= owed.TotalOwed
	g.Player.Liabilities = append(g.Player.Liabilities[:idx], g.Player.Liabilities[idx+1:]...)
	g = logf(g, "PAID OFF: %s. Monthly cash flow improved by ₦%d.", owed.Name, owed.MonthlyPayment)
	return e.checkVictory(g), nil
}

// ChangeLifestyle switches the tier and rescales living expenses.
func (e *Engine) ChangeLifestyle(g Game, tier LifestyleTier) (Game, error) {
	if g.State.Phase != PhasePlaying {
		return g, ErrWrongPhase
	}
	switch tier {
	case TierLow, TierMiddle, TierHigh:
	default:
		return reject(g, "There is no such lifestyle."), nil
	}
	if tier == g.Player.Lifestyle {
		return reject(g, "You already live the %s life.", tier), nil
	}

	g = clone(g)
	g.Player.Lifestyle = tier
	g.Player.Expenses = RecalculateExpenses(g.Player.BaseExpenses, tier)
	return logf(g, "LIFESTYLE: moved to the %s tier. Monthly expenses are now ₦%d.", tier, g.Player.Expenses.Sum()), nil
}

// LearnSkill pays the course fee once; skills gate market items and raise
// gig pay.
func (e *Engine) LearnSkill(g Game, skillID string) (Game, error) {
	if g.State.Phase != PhasePlaying {
		return g, ErrWrongPhase
	}
	skill, ok := e.catalog.Skill(skillID)
	if !ok {
		return reject(g, "Nobody teaches that around here."), nil
	}
	if g.Player.HasSkill(skill.ID) {
		return reject(g, "You already know %s.", skill.Name), nil
	}
	if g.Player.Cash < skill.Cost {
		return reject(g, "Insufficient cash for the %s course.", skill.Name), nil
	}

	g = clone(g)
	g.Player.Cash -= skill.Cost
	g.Player.Skills = append(g.Player.Skills, skill.ID)
	return logf(g, "SKILL: learned %s for ₦%d.", skill.Name, skill.Cost), nil
}

// GigPay is the payout of one gig given the player's skills.
func (e *Engine) GigPay(p Player) int64 {
	pay := int64(gigBasePay)
	for _, id := range p.Skills {
		if s, ok := e.catalog.Skill(id); ok {
			pay += s.GigBonus
		}
	}
	return pay
}

// PerformGig hustles for quick cash, capped per month.
func (e *Engine) PerformGig(g Game) (Game, error) {
	if g.State.Phase != PhasePlaying {
		return g, ErrWrongPhase
	}
	if g.Player.GigsThisMonth >= maxGigsPerMonth {
		return reject(g, "You are burnt out. No more gigs this month."), nil
	}

	g = clone(g)
	pay := e.GigPay(g.Player)
	g.Player.Cash += pay
	g.Player.GigsThisMonth++
	g.Player.Mood = clampStat(g.Player.Mood - gigMoodCost)
	return logf(g, "GIG: hustled for ₦%d (%d/%d this month).", pay, g.Player.GigsThisMonth, maxGigsPerMonth), nil
}

// BuyDreamItem completes the victory precondition.
func (e *Engine) BuyDreamItem(g Game) (Game, error) {
	if g.State.Phase != PhasePlaying {
		return g, ErrWrongPhase
	}
	if g.Player.DreamOwned {
		return reject(g, "You already live your dream."), nil
	}
	if g.Player.Cash < g.Player.Dream.Cost {
		return reject(g, "Insufficient cash for %s.", g.Player.Dream.Name), nil
	}

	g = clone(g)
	g.Player.Cash -= g.Player.Dream.Cost
	g.Player.DreamOwned = true
	g = logf(g, "DREAM: you bought %s. It was worth every naira.", g.Player.Dream.Name)
	return e.checkVictory(g), nil
}

// Austerity cuts variable base expenses by 30% at a steep mood and
// reputation price.
func (e *Engine) Austerity(g Game) (Game, error) {
	if g.State.Phase != PhasePlaying {
		return g, ErrWrongPhase
	}
	g = clone(g)
	base := &g.Player.BaseExpenses
	base.Food = int64(math.Floor(float64(base.Food) * austerityCut))
	base.Transport = int64(math.Floor(float64(base.Transport) * austerityCut))
	base.Other = int64(math.Floor(float64(base.Other) * austerityCut))
	g.Player.Expenses = RecalculateExpenses(*base, g.Player.Lifestyle)
	g.Player.Mood = clampStat(g.Player.Mood - austerityMoodHit)
	g.Player.SocialCapital = floorZero(g.Player.SocialCapital - austeritySocialHit)
	g.Player.Cash += austerityScrounge
	return logf(g, "AUSTERITY: you cut deep. Mood and reputation suffered, but cash flow improved."), nil
}
