package catalog

import "naijaquest/internal/engine"

var marketItems = []engine.MarketItem{
	{
		ID:               "mkt_pos",
		Name:             "POS Business",
		Description:      "Set up a Point of Sale stand at a busy junction. High volume, high risk of theft.",
		Cost:             80_000,
		CashFlow:         12_000,
		Category:         engine.Business,
		Tier:             engine.TierLow,
		Risk:             0.15,
		RiskDescription:  "15% chance the agent runs away with your startup capital.",
		OnFailureMessage: "The \"agent\" you hired disappeared with the machine and your cash on day one.",
		MaxLevel:         3,
		UpgradeCost:      60_000,
		UpgradeFlowGain:  6_000,
	},
	{
		ID:               "mkt_okrika",
		Name:             "Okrika Bale (First Grade)",
		Description:      "Import and sell thrift clothes. Very high margins if the quality is good.",
		Cost:             150_000,
		CashFlow:         25_000,
		Category:         engine.Business,
		Tier:             engine.TierLow,
		Risk:             0.25,
		RiskDescription:  "25% chance of buying a \"bad bale\" (rags).",
		OnFailureMessage: "You opened the bale and it was full of rags. Complete loss.",
		MaxLevel:         3,
		UpgradeCost:      100_000,
		UpgradeFlowGain:  12_000,
	},
	{
		ID:               "mkt_bike",
		Name:             "Okada (Delivery Bike)",
		Description:      "Buy a bike for logistics and delivery. Constant demand.",
		Cost:             450_000,
		CashFlow:         50_000,
		Category:         engine.Business,
		Tier:             engine.TierMiddle,
		Risk:             0.1,
		RiskDescription:  "10% chance of immediate seizure by Task Force during delivery.",
		OnFailureMessage: "The bike was seized by Task Force on the way from the showroom.",
		MaxLevel:         2,
		UpgradeCost:      250_000,
		UpgradeFlowGain:  20_000,
	},
	{
		ID:               "mkt_data",
		Name:             "Data Reselling API",
		Description:      "Automated data selling website. Needs someone who knows tech.",
		Cost:             50_000,
		CashFlow:         5_000,
		Category:         engine.SideHustle,
		Tier:             engine.TierLow,
		Risk:             0.4,
		RiskDescription:  "40% chance the API provider scams you.",
		OnFailureMessage: "The API provider shut down after taking your deposit.",
		RequiresSkill:    "skill_tech",
		MaxLevel:         3,
		UpgradeCost:      30_000,
		UpgradeFlowGain:  4_000,
	},
	{
		ID:               "mkt_perfume",
		Name:             "Perfume Oils",
		Description:      "Resell oil perfumes. Low barrier to entry.",
		Cost:             20_000,
		CashFlow:         3_000,
		Category:         engine.SideHustle,
		Tier:             engine.TierLow,
		Risk:             0.05,
		RiskDescription:  "5% chance bottles break during shipping.",
		OnFailureMessage: "The delivery guy smashed the package. Oils everywhere.",
		MaxLevel:         2,
		UpgradeCost:      15_000,
		UpgradeFlowGain:  2_000,
	},
	{
		ID:               "mkt_genset",
		Name:             "Industrial Generator",
		Description:      "Rent out a 50kVA generator to event planners and shops.",
		Cost:             900_000,
		CashFlow:         80_000,
		Category:         engine.Equipment,
		Tier:             engine.TierMiddle,
		Risk:             0.1,
		RiskDescription:  "10% chance it arrives with a cracked engine block.",
		OnFailureMessage: "The \"tokunbo\" generator never started once. Scrap value only.",
		MaxLevel:         2,
		UpgradeCost:      400_000,
		UpgradeFlowGain:  35_000,
	},
	{
		ID:               "mkt_flat",
		Name:             "Mini Flat (Agege)",
		Description:      "A rental flat on the mainland. Tenants and agents come with it.",
		Cost:             6_500_000,
		CashFlow:         150_000,
		Category:         engine.RealEstate,
		Tier:             engine.TierHigh,
		Risk:             0.05,
		RiskDescription:  "5% chance of an omo-onile dispute swallowing the deal.",
		OnFailureMessage: "Omo-onile resurfaced with 'family papers'. The deal collapsed in court.",
		MaxLevel:         2,
		UpgradeCost:      2_000_000,
		UpgradeFlowGain:  80_000,
	},
	{
		ID:               "mkt_eurobond",
		Name:             "Dollar Eurobond Fund",
		Description:      "A USD-denominated fund. Small coupon, but it moves with the dollar.",
		Cost:             1_200_000,
		CashFlow:         8,
		Currency:         engine.USD,
		Category:         engine.PaperAsset,
		Tier:             engine.TierMiddle,
		Risk:             0.02,
		RiskDescription:  "2% chance the fund house freezes redemptions.",
		OnFailureMessage: "The fund house suspended redemptions indefinitely. Your money is stuck.",
		MaxLevel:         1,
	},
}
