package engine

// PayMethod selects how an upfront cost is settled.
type PayMethod string

const (
	PayCash PayMethod = "cash"
	PayBank PayMethod = "bank"
)

const eventFinanceTermMonths = 12

// ChoiceAvailable reports whether the player meets a choice's
// requirements. Unavailable choices are shown greyed-out by clients and
// rejected by ResolveEvent.
func ChoiceAvailable(c EventChoice, p Player, s GameState) bool {
	if c.ReqCash > 0 && p.Cash < c.ReqCash {
		return false
	}
	if c.ReqSocial > 0 && p.SocialCapital < c.ReqSocial {
		return false
	}
	if c.ReqAssetCategory != "" && !p.ownsCategory(c.ReqAssetCategory) {
		return false
	}
	if c.ReqFlag != "" && !s.Flags[c.ReqFlag] {
		return false
	}
	return true
}

// applyResult applies one outcome payload in the fixed order: cost, cash
// delta, asset gain/loss, expense adjustment, salary, social, health,
// mood, flags.
func applyResult(g Game, result EventResult, eventTitle string, cost int64, method PayMethod) Game {
	if cost > 0 {
		if method == PayBank {
			g.Player.Liabilities = append(g.Player.Liabilities,
				newBankLiability("Financing: "+eventTitle, cost, eventFinanceTermMonths))
		} else {
			g.Player.Cash -= cost
		}
	}

	g.Player.Cash += result.CashChange

	if result.Asset != nil {
		gained := *result.Asset
		if gained.ID == "" {
			gained.ID = instanceID(gained.CatalogID)
		}
		if gained.Level == 0 {
			gained.Level = 1
		}
		g.Player.Assets = append(g.Player.Assets, gained)
	}
	if result.AssetLostID != "" {
		for i, a := range g.Player.Assets {
			if a.CatalogID == result.AssetLostID {
				g.Player.Assets = append(g.Player.Assets[:i], g.Player.Assets[i+1:]...)
				break
			}
		}
	}

	if result.ExpenseChange != 0 {
		cat := result.ExpenseCategory
		if cat == "" {
			cat = CatOther
		}
		base := &g.Player.BaseExpenses
		var slot *int64
		switch cat {
		case CatTax:
			slot = &base.Tax
		case CatRent:
			slot = &base.Rent
		case CatFood:
			slot = &base.Food
		case CatTransport:
			slot = &base.Transport
		default:
			slot = &base.Other
		}
		*slot = floorZero(*slot + result.ExpenseChange)
		g.Player.Expenses = RecalculateExpenses(g.Player.BaseExpenses, g.Player.Lifestyle)
	}

	g.Player.Salary += result.SalaryChange
	g.Player.SocialCapital = floorZero(g.Player.SocialCapital + result.SocialChange)
	g.Player.Health = clampStat(g.Player.Health + result.HealthChange)
	g.Player.Mood = clampStat(g.Player.Mood + result.MoodChange)

	for _, flag := range result.FlagsSet {
		g.State.Flags[flag] = true
	}
	return g
}

// ResolveEvent settles the pending event with the chosen action. A choice
// with a success chance below 1 rolls for its outcome; the failure payload
// applies when the roll misses.
func (e *Engine) ResolveEvent(g Game, ev GameEvent, choiceID string, method PayMethod) (Game, error) {
	if g.State.Phase != PhaseEventModal {
		return g, ErrWrongPhase
	}
	choice, ok := ev.Choice(choiceID)
	if !ok {
		return g, ErrUnknownChoice
	}
	g = clone(g)

	if !ChoiceAvailable(choice, g.Player, g.State) {
		return logf(g, "You do not meet the requirements for that option."), nil
	}
	if choice.Cost > 0 {
		if method == PayBank {
			if !bankHeadroomFor(g.Player, g.State.Month, choice.Cost) {
				return logf(g, "Financing declined! Credit limit exceeded."), nil
			}
		} else if g.Player.Cash < choice.Cost {
			return logf(g, "You cannot afford that option."), nil
		}
	}

	success := true
	if choice.SuccessChance > 0 && choice.SuccessChance < 1 {
		success = e.rng.Float64() <= choice.SuccessChance
	}
	result := choice.OnSuccess
	if !success && choice.OnFailure != nil {
		result = *choice.OnFailure
	}

	g = applyResult(g, result, ev.Title, choice.Cost, method)

	switch {
	case choice.Cost > 0 && method == PayBank:
		g = logf(g, "Financed ₦%d. %s", choice.Cost, outcomeLabel(success)+result.Message)
	case choice.Cost > 0:
		g = logf(g, "Paid ₦%d. %s", choice.Cost, outcomeLabel(success)+result.Message)
	default:
		g = logf(g, "%s", outcomeLabel(success)+result.Message)
	}

	g.State.Phase = PhasePlaying
	if g.Player.Health <= 0 {
		g.State.Phase = PhaseGameOver
		return logf(g, "Your body gave out. Game over."), nil
	}
	g = e.checkVictory(g)
	e.log.Info("event resolved", "event", ev.ID, "choice", choiceID, "success", success)
	return g, nil
}

func outcomeLabel(success bool) string {
	if success {
		return "SUCCESS: "
	}
	return "FAILED: "
}
