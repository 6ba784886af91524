package engine

// VictoryMultiplier is the passive-income-to-expenses ratio required to
// win. Liabilities must also be cleared and the dream item purchased.
const VictoryMultiplier = 1.0

// VictoryMet checks all three winning conditions against a snapshot.
func VictoryMet(p Player, exchangeRate int64) bool {
	if len(p.Liabilities) > 0 {
		return false
	}
	if !p.DreamOwned {
		return false
	}
	passive := PassiveIncome(p.Assets, exchangeRate)
	expenses := TotalExpenses(p.Expenses, p.Liabilities)
	return float64(passive) > float64(expenses)*VictoryMultiplier
}

// checkVictory flips the phase after any action that can change the
// winning quantities. Terminal phases are left alone.
func (e *Engine) checkVictory(g Game) Game {
	if g.State.Phase != PhasePlaying {
		return g
	}
	if !VictoryMet(g.Player, g.State.ExchangeRate) {
		return g
	}
	g.State.Phase = PhaseVictory
	g = logf(g, "FINANCIAL FREEDOM! Your passive income now carries your whole life.")
	e.log.Info("victory", "month", g.State.Month, "net_worth", NetWorth(g.Player))
	return g
}
