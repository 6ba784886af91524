package catalog

import "naijaquest/internal/engine"

func result(msg string) engine.EventResult {
	return engine.EventResult{Message: msg}
}

var events = []engine.GameEvent{
	// --- asset-specific problems ---
	{
		ID:              "prob_pos_robbery",
		Title:           "POS Robbery",
		Description:     "Two guys on a bike snatched your POS machine and the daily cash.",
		Type:            engine.EventShock,
		RequiresCatalog: "mkt_pos",
		Weight:          4,
		Choices: []engine.EventChoice{
			{
				ID:    "pos_replace",
				Label: "Replace Everything",
				Cost:  60_000,
				OnSuccess: engine.EventResult{
					Message:    "You replaced the machine and cash. Business continues.",
					MoodChange: -5,
				},
			},
			{
				ID:          "pos_close",
				Label:       "Close the Business",
				Description: "Cut your losses. You lose the asset.",
				OnSuccess: engine.EventResult{
					Message:     "You shut down the stand.",
					AssetLostID: "mkt_pos",
					MoodChange:  -10,
				},
			},
		},
	},
	{
		ID:              "prob_okrika_rain",
		Title:           "Rain Storm",
		Description:     "Heavy rain fell while you were at the market. Your Okrika clothes are soaked and ruined.",
		Type:            engine.EventShock,
		RequiresCatalog: "mkt_okrika",
		Weight:          3,
		Choices: []engine.EventChoice{
			{
				ID:          "okrika_wash",
				Label:       "Wash and Iron",
				Description: "Pay for laundry to salvage stock.",
				Cost:        20_000,
				OnSuccess: engine.EventResult{
					Message:      "You saved most of the stock.",
					HealthChange: -5,
				},
			},
			{
				ID:          "okrika_loss",
				Label:       "Sell as Rags",
				Description: "Sell cheap to mechanics.",
				OnSuccess: engine.EventResult{
					Message:     "You sold them for peanuts. Lost income this month.",
					CashChange:  5_000,
					AssetLostID: "mkt_okrika",
					MoodChange:  -15,
				},
			},
		},
	},
	{
		ID:              "prob_bike_police",
		Title:           "Task Force Raid",
		Description:     "Your rider was caught in a restricted area. They want to crush the bike.",
		Type:            engine.EventShock,
		RequiresCatalog: "mkt_bike",
		Weight:          4,
		Choices: []engine.EventChoice{
			{
				ID:    "bike_bail",
				Label: "Bail the Bike",
				Cost:  50_000,
				OnSuccess: engine.EventResult{
					Message:    "You paid the \"fine\". The bike is released.",
					MoodChange: -5,
				},
			},
			{
				ID:          "bike_leave",
				Label:       "Leave It",
				Description: "It is too expensive to release.",
				OnSuccess: engine.EventResult{
					Message:     "The bike is gone. Asset lost.",
					AssetLostID: "mkt_bike",
					MoodChange:  -20,
				},
			},
		},
	},
	{
		ID:               "prob_tenant_runs",
		Title:            "Tenant Disappears",
		Description:      "Your tenant packed out overnight owing six months of rent.",
		Type:             engine.EventShock,
		RequiresCategory: engine.RealEstate,
		Weight:           2,
		Choices: []engine.EventChoice{
			{
				ID:          "tenant_agent",
				Label:       "Hire an Agent",
				Description: "Pay to find a proper tenant quickly.",
				Cost:        80_000,
				OnSuccess:   result("The agent found a banker tenant within two weeks."),
			},
			{
				ID:    "tenant_wait",
				Label: "Wait It Out",
				OnSuccess: engine.EventResult{
					Message:    "The flat sat empty for a while. No rent, plenty dust.",
					CashChange: -50_000,
					MoodChange: -5,
				},
			},
		},
	},

	// --- career / salary ---
	{
		ID:          "career_promo",
		Title:       "Performance Review",
		Description: "Your boss is impressed with your recent work. A promotion is on the table.",
		Type:        engine.EventCareer,
		Weight:      2,
		Choices: []engine.EventChoice{
			{
				ID:          "promo_take",
				Label:       "Accept Promotion",
				Description: "More responsibility, higher pay.",
				OnSuccess: engine.EventResult{
					Message:      "You are now a Team Lead! Salary increased.",
					SalaryChange: 50_000,
					SocialChange: 5,
					MoodChange:   10,
					HealthChange: -5,
				},
			},
			{
				ID:          "promo_side",
				Label:       "Decline (Focus on Side Hustle)",
				Description: "Keep your current low-stress role to focus on business.",
				OnSuccess: engine.EventResult{
					Message:      "You declined. Your boss was confused but agreed. You have more time.",
					SocialChange: -2,
					HealthChange: 5,
				},
			},
		},
	},
	{
		ID:          "career_negotiate",
		Title:       "Salary Negotiation",
		Description: "Inflation is eating your income. You decide to ask for a raise.",
		Type:        engine.EventCareer,
		Weight:      2,
		Choices: []engine.EventChoice{
			{
				ID:            "neg_aggressive",
				Label:         "Demand 30% Raise",
				Description:   "Risky. 40% chance of success.",
				SuccessChance: 0.4,
				OnSuccess: engine.EventResult{
					Message:      "They folded! Your salary increased significantly.",
					SalaryChange: 75_000,
					MoodChange:   10,
				},
				OnFailure: &engine.EventResult{
					Message:      "HR laughed. \"Be happy you have a job\". Relationship soured.",
					SocialChange: -5,
					MoodChange:   -10,
				},
			},
			{
				ID:          "neg_safe",
				Label:       "Ask for Cost of Living Adj.",
				Description: "Safe bet. Small raise.",
				OnSuccess: engine.EventResult{
					Message:      "They approved a small adjustment.",
					SalaryChange: 25_000,
				},
			},
		},
	},

	// --- rent & housing ---
	{
		ID:          "rent_hike",
		Title:       "Landlord Notice",
		Description: "Your landlord, Chief Obi, says \"material cost has gone up\". He wants roughly ₦17k more per month.",
		Type:        engine.EventEconomic,
		Weight:      3,
		Choices: []engine.EventChoice{
			{
				ID:          "rent_pay",
				Label:       "Accept Increase",
				Description: "Stay in your current apartment.",
				OnSuccess: engine.EventResult{
					Message:         "You signed the new agreement. Your monthly expenses increased.",
					ExpenseChange:   17_000,
					ExpenseCategory: engine.CatRent,
				},
			},
			{
				ID:          "rent_move",
				Label:       "Move to the Trenches",
				Description: "Costs ₦100k to move, but rent drops ₦10k/mo.",
				Cost:        100_000,
				OnSuccess: engine.EventResult{
					Message:         "You moved. The road is bad, but you save money monthly.",
					ExpenseChange:   -10_000,
					ExpenseCategory: engine.CatRent,
					SocialChange:    -10,
					MoodChange:      -5,
				},
			},
		},
	},
	{
		ID:          "rent_repair",
		Title:       "Leaking Roof",
		Description: "Rainy season is here and your roof is leaking badly. Landlord says it's tenant liability.",
		Type:        engine.EventShock,
		Weight:      3,
		Choices: []engine.EventChoice{
			{
				ID:    "fix_roof",
				Label: "Fix It Properly",
				Cost:  40_000,
				OnSuccess: engine.EventResult{
					Message:      "You fixed the roof. Dry and happy.",
					SocialChange: 2,
					MoodChange:   5,
				},
			},
			{
				ID:          "manage_bucket",
				Label:       "Use Buckets",
				Description: "Put buckets everywhere. Free.",
				OnSuccess: engine.EventResult{
					Message:      "It is stressful, but you saved money. A visitor saw the buckets though.",
					SocialChange: -5,
					HealthChange: -5,
				},
			},
		},
	},

	// --- transport & fuel ---
	{
		ID:          "fuel_scarcity",
		Title:       "Fuel Scarcity",
		Description: "Queues are everywhere. Black market fuel is ₦1,200/liter.",
		Type:        engine.EventEconomic,
		Weight:      4,
		Choices: []engine.EventChoice{
			{
				ID:          "fuel_black",
				Label:       "Buy Black Market",
				Description: "Expensive but convenient.",
				Cost:        25_000,
				OnSuccess:   result("You have fuel, but your wallet is crying."),
			},
			{
				ID:            "fuel_queue",
				Label:         "Queue at NNPC",
				Description:   "Spend 6 hours. Save cash, lose productivity.",
				SuccessChance: 0.8,
				OnSuccess: engine.EventResult{
					Message:      "You got cheap fuel after 6 hours.",
					HealthChange: -5,
				},
				OnFailure: &engine.EventResult{
					Message:    "They stopped selling when it was your turn! You had to buy black market anyway.",
					CashChange: -25_000,
					MoodChange: -20,
				},
			},
		},
	},
	{
		ID:          "transport_hike",
		Title:       "Transport Union Strike",
		Description: "Danfo drivers increased fares permanently due to \"agbero\" levies.",
		Type:        engine.EventEconomic,
		Weight:      2,
		Choices: []engine.EventChoice{
			{
				ID:          "trans_accept",
				Label:       "Pay Higher Fares",
				Description: "Transport budget increases by ₦5k/mo.",
				OnSuccess: engine.EventResult{
					Message:         "You adjusted your budget.",
					ExpenseChange:   5_000,
					ExpenseCategory: engine.CatTransport,
				},
			},
			{
				ID:          "trans_trek",
				Label:       "Start Trekking Part-way",
				Description: "Walk the first mile. Save money, sweat more.",
				OnSuccess: engine.EventResult{
					Message:      "You are saving money, but you arrive at work tired.",
					SocialChange: -3,
					HealthChange: 2,
				},
			},
		},
	},

	// --- macro policy (flag setters) ---
	{
		ID:          "eco_subsidy",
		Title:       "Subsidy Is Gone",
		Description: "The government removed the fuel subsidy overnight. Pump price tripled.",
		Type:        engine.EventEconomic,
		Weight:      1,
		Choices: []engine.EventChoice{
			{
				ID:          "subsidy_absorb",
				Label:       "Absorb the Shock",
				Description: "Everything now costs more to move.",
				OnSuccess: engine.EventResult{
					Message:         "Transport and food costs jumped. The naira will keep sliding.",
					ExpenseChange:   15_000,
					ExpenseCategory: engine.CatTransport,
					MoodChange:      -10,
					FlagsSet:        []string{engine.FlagSubsidyRemoved},
				},
			},
		},
	},
	{
		ID:          "eco_float",
		Title:       "The Naira Floats",
		Description: "The central bank unified the exchange windows. The naira now trades freely.",
		Type:        engine.EventEconomic,
		Weight:      1,
		Choices: []engine.EventChoice{
			{
				ID:          "float_ack",
				Label:       "Brace Yourself",
				Description: "Dollar earners rejoice; everyone else holds on.",
				OnSuccess: engine.EventResult{
					Message:  "The rate is now anybody's guess. Volatility ahead.",
					FlagsSet: []string{engine.FlagNairaFloated},
				},
			},
		},
	},
	{
		ID:           "eco_blackmarket_dollar",
		Title:        "Dollar Rush",
		Description:  "With the naira floating, everyone is hoarding dollars. A bureau de change friend offers you a deal.",
		Type:         engine.EventMarket,
		RequiresFlag: engine.FlagNairaFloated,
		Weight:       2,
		Choices: []engine.EventChoice{
			{
				ID:          "dollar_buy",
				Label:       "Buy $200 Monthly Inflow",
				Description: "A small USD side contract. Costs ₦500k upfront.",
				Cost:        500_000,
				OnSuccess: engine.EventResult{
					Message: "You locked in a dollar retainer. Devaluation now works for you.",
					Asset: &engine.Asset{
						CatalogID: "evt_dollar_retainer",
						Name:      "USD Retainer Contract",
						Category:  engine.PaperAsset,
						Cost:      500_000,
						CashFlow:  200,
						Currency:  engine.USD,
						MaxLevel:  1,
					},
				},
			},
			{ID: "dollar_pass", Label: "Pass", OnSuccess: result("You stayed in naira. Brave.")},
		},
	},

	// --- opportunities ---
	{
		ID:          "opp_pos",
		Title:       "POS Deal (Flash Sale)",
		Description: "A friend is selling a POS terminal setup cheap because he is relocating.",
		Type:        engine.EventOpportunity,
		Weight:      2,
		Choices: []engine.EventChoice{
			{
				ID:    "pos_buy",
				Label: "Buy at Asking Price",
				Cost:  50_000,
				OnSuccess: engine.EventResult{
					Message: "You bought the POS terminal. It is now generating cash.",
					Asset: &engine.Asset{
						CatalogID: "mkt_pos",
						Name:      "POS Terminal (Deal)",
						Category:  engine.Business,
						Cost:      50_000,
						CashFlow:  8_000,
						Currency:  engine.NGN,
						MaxLevel:  3,
					},
				},
			},
			{
				ID:            "pos_negotiate",
				Label:         "Negotiate Price",
				Description:   "Offer ₦35,000. 60% chance they accept.",
				Cost:          35_000,
				SuccessChance: 0.6,
				OnSuccess: engine.EventResult{
					Message: "Success! They were desperate to sell. You got a bargain.",
					Asset: &engine.Asset{
						CatalogID: "mkt_pos",
						Name:      "POS Terminal (Deal)",
						Category:  engine.Business,
						Cost:      35_000,
						CashFlow:  8_000,
						Currency:  engine.NGN,
						MaxLevel:  3,
					},
					MoodChange: 5,
				},
				OnFailure: &engine.EventResult{
					Message:    "They sold it to someone else. Refund processed.",
					CashChange: 35_000,
					MoodChange: -5,
				},
			},
			{ID: "pos_pass", Label: "Pass", OnSuccess: result("Opportunity skipped.")},
		},
	},
	{
		ID:          "opp_crypto",
		Title:       "Crypto Airdrop",
		Description: "A new protocol is launching. Farm the airdrop or invest.",
		Type:        engine.EventOpportunity,
		Weight:      3,
		Choices: []engine.EventChoice{
			{
				ID:          "crypto_farm",
				Label:       "Farm Airdrop",
				Description: "Cost: ₦20k (data). Low risk.",
				Cost:        20_000,
				OnSuccess: engine.EventResult{
					Message: "You farmed steady tokens.",
					Asset: &engine.Asset{
						CatalogID: "evt_crypto_farm",
						Name:      "Crypto Staking",
						Category:  engine.PaperAsset,
						Cost:      20_000,
						CashFlow:  5,
						Currency:  engine.USD,
						MaxLevel:  1,
					},
				},
			},
			{
				ID:            "crypto_degen",
				Label:         "Degen Presale",
				Description:   "Cost: ₦100k. 50% chance of rug pull, 50% moon.",
				Cost:          100_000,
				SuccessChance: 0.5,
				OnSuccess: engine.EventResult{
					Message: "To the moon! The token 10x'd on launch.",
					Asset: &engine.Asset{
						CatalogID: "evt_crypto_moon",
						Name:      "Moonbag Token",
						Category:  engine.PaperAsset,
						Cost:      100_000,
						CashFlow:  150,
						Currency:  engine.USD,
						MaxLevel:  1,
					},
					MoodChange: 20,
				},
				OnFailure: &engine.EventResult{
					Message:      "Rug pull! The devs deleted the Telegram group.",
					MoodChange:   -20,
					HealthChange: -5,
				},
			},
			{ID: "crypto_pass", Label: "Ignore", OnSuccess: result("Crypto is a scam anyway.")},
		},
	},

	// --- shocks ---
	{
		ID:          "shock_police",
		Title:       "Police Roadblock",
		Description: "Police stop you. \"Your vehicle papers are incomplete\".",
		Type:        engine.EventShock,
		Weight:      5,
		Choices: []engine.EventChoice{
			{
				ID:          "police_settle",
				Label:       "Settle Them",
				Description: "Pay ₦10,000 to leave immediately.",
				Cost:        10_000,
				OnSuccess: engine.EventResult{
					Message:      "You paid and left. Frustrating.",
					SocialChange: -2,
					MoodChange:   -5,
				},
			},
			{
				ID:            "police_argue",
				Label:         "Argue / Call Lawyer",
				Description:   "Refuse to pay. 70% chance success.",
				SuccessChance: 0.7,
				OnSuccess: engine.EventResult{
					Message:      "They saw you knew your rights and let you go.",
					SocialChange: 5,
					MoodChange:   10,
				},
				OnFailure: &engine.EventResult{
					Message:      "They detained you. Paid higher \"bail\".",
					CashChange:   -30_000,
					SocialChange: -5,
					MoodChange:   -15,
				},
			},
		},
	},
	{
		ID:          "shock_gen",
		Title:       "Generator Failure",
		Description: "The \"I better pass my neighbor\" generator knocked.",
		Type:        engine.EventShock,
		Weight:      4,
		Choices: []engine.EventChoice{
			{
				ID:            "gen_fix_cheap",
				Label:         "Manage It (Patch)",
				Description:   "Cost: ₦10,000. 50% chance it works.",
				Cost:          10_000,
				SuccessChance: 0.5,
				OnSuccess:     result("The patch held. We have light."),
				OnFailure: &engine.EventResult{
					Message:    "It smoked immediately. Money wasted. Bought a new coil.",
					CashChange: -25_000,
					MoodChange: -10,
				},
			},
			{
				ID:          "gen_fix_proper",
				Label:       "Full Service",
				Description: "Cost: ₦35,000. Guaranteed fix.",
				Cost:        35_000,
				OnSuccess: engine.EventResult{
					Message:    "Generator is humming nicely.",
					MoodChange: 5,
				},
			},
		},
	},
	{
		ID:          "shock_health",
		Title:       "Sudden Illness",
		Description: "You are feeling symptoms of malaria or typhoid.",
		Type:        engine.EventShock,
		Weight:      4,
		Choices: []engine.EventChoice{
			{
				ID:            "health_pharmacy",
				Label:         "Chemist Mix",
				Description:   "Cost: ₦5,000. 60% chance success.",
				Cost:          5_000,
				SuccessChance: 0.6,
				OnSuccess: engine.EventResult{
					Message:      "The mix worked. You are strong.",
					HealthChange: -5,
				},
				OnFailure: &engine.EventResult{
					Message:      "It got worse. Hospital admission.",
					CashChange:   -80_000,
					HealthChange: -20,
				},
			},
			{
				ID:          "health_hospital",
				Label:       "Private Hospital",
				Description: "Cost: ₦45,000. Proper tests.",
				Cost:        45_000,
				OnSuccess:   result("You recovered fully."),
			},
		},
	},

	// --- social ---
	{
		ID:          "soc_wedding",
		Title:       "Best Friend's Wedding",
		Description: "It is the wedding of the year. Expectations are high.",
		Type:        engine.EventSocial,
		Weight:      3,
		Choices: []engine.EventChoice{
			{
				ID:          "wed_full",
				Label:       "Full Aso-Ebi & Spray",
				Description: "Cost: ₦100,000. Gain social capital.",
				Cost:        100_000,
				OnSuccess: engine.EventResult{
					Message:      "You were the life of the party!",
					SocialChange: 15,
					MoodChange:   15,
				},
			},
			{
				ID:          "wed_attend",
				Label:       "Just Attend",
				Description: "Cost: ₦20,000.",
				Cost:        20_000,
				OnSuccess: engine.EventResult{
					Message:      "You showed up. Duty done.",
					SocialChange: 5,
					MoodChange:   5,
				},
			},
			{
				ID:    "wed_decline",
				Label: "Send Apologies",
				OnSuccess: engine.EventResult{
					Message:      "They were disappointed.",
					SocialChange: -10,
					MoodChange:   -5,
				},
			},
		},
	},
	{
		ID:          "soc_blacktax",
		Title:       "Family Emergency",
		Description: "Uncle in the village needs money for \"urgent 2k\".",
		Type:        engine.EventSocial,
		Weight:      3,
		Choices: []engine.EventChoice{
			{
				ID:    "tax_pay",
				Label: "Send the Money",
				Cost:  50_000,
				OnSuccess: engine.EventResult{
					Message:      "Blessings received.",
					SocialChange: 5,
					MoodChange:   5,
				},
			},
			{
				ID:    "tax_half",
				Label: "Send Half (₦25k)",
				Cost:  25_000,
				OnSuccess: engine.EventResult{
					Message:      "They grumbled but took it.",
					SocialChange: 2,
				},
			},
			{
				ID:    "tax_ignore",
				Label: "Ignore",
				OnSuccess: engine.EventResult{
					Message:      "Family meeting will discuss your stinginess.",
					SocialChange: -5,
					MoodChange:   -5,
				},
			},
		},
	},
	{
		ID:          "soc_title",
		Title:       "Chieftaincy Title",
		Description: "Your village wants to confer a title on you. \"Otunba of Cashflow\".",
		Type:        engine.EventSocial,
		Weight:      1,
		MinSocial:   50,
		Choices: []engine.EventChoice{
			{
				ID:          "title_take",
				Label:       "Accept Title",
				Description: "Costs ₦500k for the ceremony.",
				Cost:        500_000,
				OnSuccess: engine.EventResult{
					Message:      "Kabiyesi! You are now a Chief. Respect is maximum.",
					SocialChange: 50,
					MoodChange:   25,
				},
			},
			{
				ID:        "title_defer",
				Label:     "Decline for Now",
				OnSuccess: result("Maybe next year."),
			},
		},
	},

	// --- morale crises (mood-gated) ---
	{
		ID:          "mood_burnout",
		Title:       "Burnout",
		Description: "You have been running on fumes. Your body and mind are filing complaints.",
		Type:        engine.EventShock,
		MaxMood:     30,
		Weight:      4,
		Choices: []engine.EventChoice{
			{
				ID:          "burnout_rest",
				Label:       "Take a Week Off",
				Description: "Travel home. Costs ₦40k.",
				Cost:        40_000,
				OnSuccess: engine.EventResult{
					Message:      "The village air fixed something in you.",
					MoodChange:   25,
					HealthChange: 10,
				},
			},
			{
				ID:    "burnout_push",
				Label: "Push Through",
				OnSuccess: engine.EventResult{
					Message:      "You kept grinding. Something has to give.",
					HealthChange: -10,
					MoodChange:   -5,
				},
			},
		},
	},
	{
		ID:          "mood_friends",
		Title:       "The Boys Check In",
		Description: "Your friends noticed you have gone quiet. They are planning a small hangout.",
		Type:        engine.EventSocial,
		MaxMood:     40,
		Weight:      3,
		Choices: []engine.EventChoice{
			{
				ID:    "friends_go",
				Label: "Go Out",
				Cost:  15_000,
				OnSuccess: engine.EventResult{
					Message:      "Suya, laughter, and no talk of money. You needed that.",
					MoodChange:   20,
					SocialChange: 5,
				},
			},
			{
				ID:    "friends_skip",
				Label: "Stay Home",
				OnSuccess: engine.EventResult{
					Message:      "You saved the money and stewed alone.",
					MoodChange:   -5,
					SocialChange: -3,
				},
			},
		},
	},

	// --- economic ---
	{
		ID:          "eco_inflation",
		Title:       "Food Inflation",
		Description: "The price of rice has doubled.",
		Type:        engine.EventEconomic,
		Weight:      3,
		Choices: []engine.EventChoice{
			{
				ID:          "inf_absorb",
				Label:       "Keep Standard of Living",
				Description: "Increase monthly food budget by ₦30,000.",
				OnSuccess: engine.EventResult{
					Message:         "You maintained your diet, but your wallet bleeds.",
					ExpenseChange:   30_000,
					ExpenseCategory: engine.CatFood,
				},
			},
			{
				ID:          "inf_cut",
				Label:       "Cut Costs",
				Description: "Switch to cheaper brands.",
				OnSuccess: engine.EventResult{
					Message:      "Garri is now the main course.",
					SocialChange: -2,
					HealthChange: -5,
					MoodChange:   -5,
				},
			},
		},
	},
}
