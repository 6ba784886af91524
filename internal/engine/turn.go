package engine

import "math"

// Narrative flags that alter exchange-rate dynamics.
const (
	FlagNairaFloated   = "naira_floated"
	FlagSubsidyRemoved = "subsidy_removed"
)

const (
	baseVolatility    = 0.025
	baseDrift         = 0.005
	floatedVolatility = 0.08
	floatedDrift      = 0.01
	subsidyDrift      = 0.008
)

// nextExchangeRate performs one step of the devaluation random walk. When
// both flags are set the float's parameters win; they do not compound.
func (e *Engine) nextExchangeRate(rate int64, flags map[string]bool) int64 {
	volatility := baseVolatility
	drift := baseDrift
	if flags[FlagSubsidyRemoved] {
		drift = subsidyDrift
	}
	if flags[FlagNairaFloated] {
		volatility = floatedVolatility
		drift = floatedDrift
	}
	change := e.rng.Float64()*(volatility*2) - volatility
	next := int64(math.Floor(float64(rate) * (1 + change + drift)))
	if next < 1 {
		next = 1
	}
	return next
}

func tierMoodRecovery(tier LifestyleTier) int {
	switch tier {
	case TierMiddle:
		return 15
	case TierHigh:
		return 25
	default:
		return 10
	}
}

const healthRecovery = 20

// amortizeLoans pays down every self-amortizing loan by one period,
// dropping liabilities whose term has run out.
func amortizeLoans(liabilities []Liability) []Liability {
	out := liabilities[:0]
	for _, l := range liabilities {
		if l.Kind != KindLoan || l.TermRemaining == 0 {
			out = append(out, l)
			continue
		}
		l.TermRemaining--
		l.TotalOwed = floorZero(l.TotalOwed - l.MonthlyPayment)
		if l.TermRemaining == 0 {
			continue
		}
		out = append(out, l)
	}
	return out
}

// AdvanceMonth runs one month of simulation. It returns the triggered
// event when the month lands in EVENT_MODAL, nil otherwise.
func (e *Engine) AdvanceMonth(g Game) (Game, *GameEvent) {
	g = clone(g)
	if g.State.Phase != PhasePlaying {
		return logf(g, "You cannot advance the month right now."), nil
	}

	oldRate := g.State.ExchangeRate
	newRate := e.nextExchangeRate(oldRate, g.State.Flags)

	// Projected against the new rate: a month you cannot pay for halts
	// everything before any other mutation.
	flow := MonthlyCashFlow(g.Player, newRate)
	projected := g.Player.Cash + flow
	if projected < 0 {
		g.State.Phase = PhaseInsolvency
		g.State.ExchangeRate = newRate
		g.State.Deficit = -projected
		g = logf(g, "INSOLVENCY: you are short ₦%d for the month ahead.", -projected)
		e.log.Info("insolvency entered", "month", g.State.Month, "deficit", -projected)
		return g, nil
	}

	if diff := newRate - oldRate; diff > 50 || diff < -50 {
		g = logf(g, "Market volatility! Naira is now ₦%d/$ (was ₦%d).", newRate, oldRate)
	}

	g.Player.Health = clampStat(g.Player.Health + healthRecovery)
	g.Player.Mood = clampStat(g.Player.Mood + tierMoodRecovery(g.Player.Lifestyle))
	if g.Player.Lifestyle == TierHigh {
		g.Player.SocialCapital++
	}
	g.Player.Liabilities = amortizeLoans(g.Player.Liabilities)
	g.Player.GigsThisMonth = 0
	g.Player.Cash = projected

	if g.Player.Health <= 0 {
		g.State.Phase = PhaseGameOver
		g = logf(g, "Your body gave out. Game over.")
		return g, nil
	}

	g.State.Month++
	g.State.ExchangeRate = newRate
	g.State.Deficit = 0
	g.State.History = append(g.State.History, NetWorthPoint{Month: g.State.Month, Value: NetWorth(g.Player)})
	g.State.Phase = PhaseEventModal

	ev := e.SelectEvent(g.Player, g.State)
	e.log.Info("month advanced", "month", g.State.Month, "rate", newRate, "event", ev.ID)
	return g, &ev
}
