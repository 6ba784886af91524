package catalog

import "naijaquest/internal/engine"

var archetypes = []engine.Archetype{
	{
		ID:          "tech_bro",
		Name:        "The Tech Bro",
		Description: "Remote USD earner. High liquidity, zero liabilities. Living the dream.",
		Profession:  "Software Engineer",
		Salary:      1_500_000,
		Savings:     4_500_000,
		Expenses: engine.Expenses{
			Tax: 50_000, Rent: 300_000, Food: 150_000, Transport: 50_000, Other: 100_000,
		},
		Liabilities:    []engine.Liability{},
		Difficulty:     "Very Easy",
		StartingSocial: 50,
	},
	{
		ID:          "civil_servant",
		Name:        "The Civil Servant",
		Description: "Steady flow but heavy family tax. Predictable but capped growth.",
		Profession:  "Govt Administrator",
		Salary:      200_000,
		Savings:     150_000,
		Expenses: engine.Expenses{
			Tax: 20_000, Rent: 50_000, Food: 40_000, Transport: 20_000, Other: 10_000,
		},
		Liabilities: []engine.Liability{
			{
				ID:             "l_car",
				Name:           "Car Loan",
				Kind:           engine.KindLoan,
				Origin:         engine.OriginArchetype,
				TotalOwed:      800_000,
				MonthlyPayment: 25_000,
				TermRemaining:  32,
			},
		},
		Difficulty:     "Normal",
		StartingSocial: 80,
	},
	{
		ID:          "trader",
		Name:        "The Market Trader",
		Description: "High daily volume but extreme price shocks. Street smarts required.",
		Profession:  "Importer",
		Salary:      600_000,
		Savings:     40_000,
		Expenses: engine.Expenses{
			Tax: 10_000, Rent: 150_000, Food: 100_000, Transport: 50_000, Other: 100_000,
		},
		Liabilities:    []engine.Liability{},
		Difficulty:     "Hard",
		StartingSocial: 90,
	},
	{
		ID:          "corper",
		Name:        "The Corper",
		Description: "Serving the nation on a shoestring budget. Uncertainty is the only constant.",
		Profession:  "NYSC Member",
		Salary:      33_000,
		Savings:     33_000,
		Expenses: engine.Expenses{
			Food: 20_000, Transport: 5_000, Other: 5_000,
		},
		Liabilities: []engine.Liability{
			{
				ID:             "l_loan",
				Name:           "Personal Loan",
				Kind:           engine.KindLoan,
				Origin:         engine.OriginArchetype,
				TotalOwed:      150_000,
				MonthlyPayment: 5_000,
				TermRemaining:  30,
			},
		},
		Difficulty:     "Very Hard",
		StartingSocial: 20,
	},
	{
		ID:          "hustler",
		Name:        "The Hustler",
		Description: "Multiple side gigs, but the debt collectors are faster than the income.",
		Profession:  "Gig Worker",
		Salary:      100_000,
		Savings:     12_000,
		Expenses: engine.Expenses{
			Rent: 40_000, Food: 30_000, Transport: 30_000, Other: 10_000,
		},
		Liabilities: []engine.Liability{
			{
				ID:             "l_shark",
				Name:           "Loan Shark",
				Kind:           engine.KindLoan,
				Origin:         engine.OriginShark,
				TotalOwed:      1_500_000,
				MonthlyPayment: 150_000,
				TermRemaining:  10,
			},
		},
		Difficulty:     "Extreme",
		StartingSocial: 10,
	},
	{
		ID:          "student",
		Name:        "The Student",
		Description: "Strike looming, zero cash, and school debt piling up. Survival mode.",
		Profession:  "Undergraduate",
		Salary:      0,
		Savings:     0,
		Expenses: engine.Expenses{
			Food: 10_000, Transport: 5_000, Other: 5_000,
		},
		Liabilities: []engine.Liability{
			{
				ID:             "l_school",
				Name:           "School Fees Debt",
				Kind:           engine.KindLoan,
				Origin:         engine.OriginArchetype,
				TotalOwed:      400_000,
				MonthlyPayment: 0,
			},
		},
		Difficulty:     "Impossible",
		StartingSocial: 10,
	},
}
