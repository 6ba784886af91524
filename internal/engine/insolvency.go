package engine

import "math"

// InsolvencyStrategy names one of the recovery paths out of a month the
// player cannot pay for.
type InsolvencyStrategy string

const (
	StrategySharkLoan    InsolvencyStrategy = "shark_loan"
	StrategyDistressSell InsolvencyStrategy = "distress_sell"
	StrategyBeg          InsolvencyStrategy = "beg"
	StrategyDefer        InsolvencyStrategy = "defer_loans"
	StrategyLabor        InsolvencyStrategy = "menial_labor"
	StrategyDefault      InsolvencyStrategy = "default"
)

// InsolvencyParams carries the per-strategy inputs.
type InsolvencyParams struct {
	Amount  int64  `json:"amount,omitempty"`   // shark_loan
	AssetID string `json:"asset_id,omitempty"` // distress_sell
}

const (
	distressFactor   = 0.75
	begRatePerSocial = 1_000
	begSocialCost    = 15
	laborPay         = 15_000
	laborStatCost    = 10
	defaultHealthHit = 20
	defaultMoodHit   = 25
	defaultSocialHit = 10
	defermentPenalty = 1.1
)

// SuggestedSharkAmount rounds the deficit up to the sharks' preferred
// ticket size.
func SuggestedSharkAmount(deficit int64) int64 {
	const step = 50_000
	if deficit <= 0 {
		return step
	}
	return (deficit + step - 1) / step * step
}

// DistressPrice is the haircut price offered while insolvent.
func DistressPrice(a Asset) int64 {
	return int64(math.Floor(float64(a.SaleValue()) * distressFactor))
}

// recheckSolvency applies the shared exit condition: back to PLAYING once
// the projected month is affordable, otherwise stay put with a fresh
// deficit figure.
func recheckSolvency(g Game) Game {
	flow := MonthlyCashFlow(g.Player, g.State.ExchangeRate)
	if g.Player.Cash+flow >= 0 {
		g.State.Phase = PhasePlaying
		g.State.Deficit = 0
		return logf(g, "INSOLVENCY: cash flow stabilized. Proceed when ready.")
	}
	g.State.Deficit = -(g.Player.Cash + flow)
	return logf(g, "INSOLVENCY: still short ₦%d.", g.State.Deficit)
}

// ResolveInsolvency applies one recovery action. Every strategy except
// default re-tests the exit condition; default unconditionally ends the
// month.
func (e *Engine) ResolveInsolvency(g Game, strategy InsolvencyStrategy, params InsolvencyParams) (Game, *GameEvent, error) {
	if g.State.Phase != PhaseInsolvency {
		return g, nil, ErrWrongPhase
	}
	g = clone(g)

	switch strategy {
	case StrategySharkLoan:
		amount := params.Amount
		if amount <= 0 {
			amount = SuggestedSharkAmount(g.State.Deficit)
		}
		loan := newSharkLiability(amount)
		g.Player.Cash += amount
		g.Player.Liabilities = append(g.Player.Liabilities, loan)
		g = logf(g, "SHARK: took ₦%d. You owe ₦%d over %d months. Don't miss a payment.", amount, loan.TotalOwed, sharkTermMonths)
		return recheckSolvency(g), nil, nil

	case StrategyDistressSell:
		idx := -1
		for i, a := range g.Player.Assets {
			if a.ID == params.AssetID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return logf(g, "You do not own that asset."), nil, nil
		}
		sold := g.Player.Assets[idx]
		price := DistressPrice(sold)
		g.Player.Assets = append(g.Player.Assets[:idx], g.Player.Assets[idx+1:]...)
		g.Player.Cash += price
		g = logf(g, "INSOLVENCY: distress sale of %s for ₦%d.", sold.Name, price)
		return recheckSolvency(g), nil, nil

	case StrategyBeg:
		raised := g.Player.SocialCapital * begRatePerSocial
		g.Player.Cash += raised
		g.Player.SocialCapital = floorZero(g.Player.SocialCapital - begSocialCost)
		g = logf(g, "SURVIVAL: begged friends and family. Raised ₦%d. Reputation damaged.", raised)
		return recheckSolvency(g), nil, nil

	case StrategyDefer:
		var skipped int64
		hasLoan := false
		for i, l := range g.Player.Liabilities {
			if l.Kind != KindLoan {
				continue
			}
			hasLoan = true
			skipped += l.MonthlyPayment
			g.Player.Liabilities[i].TotalOwed = int64(math.Floor(float64(l.TotalOwed) * defermentPenalty))
		}
		if !hasLoan {
			return logf(g, "No loans to defer."), nil, nil
		}
		// Offsets the payment line already baked into this month's flow.
		g.Player.Cash += skipped
		g = logf(g, "SURVIVAL: deferred ₦%d in payments. Total debt grew by 10%%.", skipped)
		return recheckSolvency(g), nil, nil

	case StrategyLabor:
		g.Player.Cash += laborPay
		g.Player.Health = clampStat(g.Player.Health - laborStatCost)
		g.Player.Mood = clampStat(g.Player.Mood - laborStatCost)
		g = logf(g, "SURVIVAL: did menial labor. Earned ₦%d. Your body is paining you.", laborPay)
		return recheckSolvency(g), nil, nil

	case StrategyDefault:
		g.Player.Cash = 0
		g.Player.Health = clampStat(g.Player.Health - defaultHealthHit)
		g.Player.Mood = clampStat(g.Player.Mood - defaultMoodHit)
		g.Player.SocialCapital = floorZero(g.Player.SocialCapital - defaultSocialHit)
		g = logf(g, "DEFAULT: you couldn't pay the bills. Health and reputation took a beating.")

		if g.Player.Health <= 0 {
			g.State.Phase = PhaseGameOver
			g.State.Deficit = 0
			return logf(g, "Your body gave out. Game over."), nil, nil
		}
		g.State.Month++
		g.State.Deficit = 0
		g.State.History = append(g.State.History, NetWorthPoint{Month: g.State.Month, Value: NetWorth(g.Player)})
		g.State.Phase = PhaseEventModal
		ev := e.SelectEvent(g.Player, g.State)
		e.log.Info("insolvency default", "month", g.State.Month, "event", ev.ID)
		return g, &ev, nil

	default:
		return g, nil, ErrUnknownStrategy
	}
}
