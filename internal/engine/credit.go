package engine

import "math"

const (
	bankBaseLimit      = 200_000
	bankLimitPerMonth  = 100_000
	bankLimitPerSocial = 10_000
	bankSalaryFactor   = 3

	sharkBaseLimit   = 500_000
	sharkSalaryTimes = 10
	sharkOfferCap    = 10_000_000
	sharkFeeRate     = 0.4
	sharkTermMonths  = 4
)

// BankCreditLimit grows with time survived, reputation and salary.
func BankCreditLimit(p Player, month int) int64 {
	return bankBaseLimit +
		bankLimitPerMonth*int64(month) +
		bankLimitPerSocial*p.SocialCapital +
		bankSalaryFactor*p.Salary
}

// UsedBankCredit sums the outstanding balance of bank-originated debt.
func UsedBankCredit(p Player) int64 {
	var used int64
	for _, l := range p.Liabilities {
		if l.Origin == OriginBank {
			used += l.TotalOwed
		}
	}
	return used
}

// SharkLimit is what the loan sharks will offer. They lend to anybody, but
// offers are capped so a single loan cannot break the game.
func SharkLimit(p Player) int64 {
	limit := p.Salary*sharkSalaryTimes + sharkBaseLimit
	if limit > sharkOfferCap {
		return sharkOfferCap
	}
	return limit
}

// financeTermMonths scales with the financed item's tier.
func financeTermMonths(tier LifestyleTier) int {
	switch tier {
	case TierMiddle:
		return 24
	case TierHigh:
		return 60
	default:
		return 12
	}
}

// newBankLiability builds an interest-free financing liability.
func newBankLiability(name string, price int64, termMonths int) Liability {
	return Liability{
		ID:             instanceID("bank"),
		Name:           name,
		Kind:           KindLoan,
		Origin:         OriginBank,
		TotalOwed:      price,
		MonthlyPayment: int64(math.Ceil(float64(price) / float64(termMonths))),
		TermRemaining:  termMonths,
	}
}

// newSharkLiability applies the sharks' flat 40% fee over a 4-month term.
func newSharkLiability(amount int64) Liability {
	owed := int64(math.Floor(float64(amount) * (1 + sharkFeeRate)))
	return Liability{
		ID:             instanceID("shark"),
		Name:           "Shark Loan",
		Kind:           KindLoan,
		Origin:         OriginShark,
		TotalOwed:      owed,
		MonthlyPayment: owed / sharkTermMonths,
		TermRemaining:  sharkTermMonths,
	}
}

// bankHeadroomFor reports whether financing the requested amount keeps the
// player inside their bank credit limit.
func bankHeadroomFor(p Player, month int, amount int64) bool {
	return UsedBankCredit(p)+amount <= BankCreditLimit(p, month)
}
