package engine

import "math"

// Pure financial arithmetic over Player snapshots. Nothing in this file
// mutates its inputs.

func TotalAssets(assets []Asset) int64 {
	var total int64
	for _, a := range assets {
		total += a.Cost
	}
	return total
}

func TotalLiabilities(liabilities []Liability) int64 {
	var total int64
	for _, l := range liabilities {
		total += l.TotalOwed
	}
	return total
}

func NetWorth(p Player) int64 {
	worth := TotalAssets(p.Assets) + p.Cash - TotalLiabilities(p.Liabilities)
	if p.DreamOwned {
		worth += p.Dream.Cost
	}
	return worth
}

// PassiveIncome converts USD-denominated flows at the given NGN/USD rate.
func PassiveIncome(assets []Asset, exchangeRate int64) int64 {
	var total int64
	for _, a := range assets {
		flow := a.CashFlow
		if a.Currency == USD {
			flow *= exchangeRate
		}
		total += flow
	}
	return total
}

func TotalExpenses(expenses Expenses, liabilities []Liability) int64 {
	total := expenses.Sum()
	for _, l := range liabilities {
		total += l.MonthlyPayment
	}
	return total
}

func MonthlyCashFlow(p Player, exchangeRate int64) int64 {
	return p.Salary + PassiveIncome(p.Assets, exchangeRate) - TotalExpenses(p.Expenses, p.Liabilities)
}

// ProgressToFreedom reports passive income as a percentage of total
// expenses, capped at 100. Zero expenses count as full progress.
func ProgressToFreedom(p Player, exchangeRate int64) int {
	expenses := TotalExpenses(p.Expenses, p.Liabilities)
	if expenses == 0 {
		return 100
	}
	passive := PassiveIncome(p.Assets, exchangeRate)
	pct := int(math.Floor(float64(passive) / float64(expenses) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

func lifestyleMultiplier(tier LifestyleTier) float64 {
	switch tier {
	case TierMiddle:
		return 2.5
	case TierHigh:
		return 6
	default:
		return 1
	}
}

// RecalculateExpenses derives live expenses from base expenses and the
// lifestyle tier. Tax is multiplier-exempt. Must be re-run after every
// mutation of the base figures or the tier.
func RecalculateExpenses(base Expenses, tier LifestyleTier) Expenses {
	m := lifestyleMultiplier(tier)
	scale := func(v int64) int64 {
		return int64(math.Floor(float64(v) * m))
	}
	return Expenses{
		Tax:       base.Tax,
		Rent:      scale(base.Rent),
		Food:      scale(base.Food),
		Transport: scale(base.Transport),
		Other:     scale(base.Other),
	}
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func floorZero(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
