package api

import "naijaquest/internal/engine"

// Derived carries the figures clients would otherwise recompute on every
// render: the whole financial dashboard plus current credit standing.
type Derived struct {
	NetWorth       int64 `json:"net_worth"`
	PassiveIncome  int64 `json:"passive_income"`
	TotalExpenses  int64 `json:"total_expenses"`
	MonthlyFlow    int64 `json:"monthly_cash_flow"`
	Progress       int   `json:"progress_to_freedom"`
	BankLimit      int64 `json:"bank_credit_limit"`
	BankUsed       int64 `json:"bank_credit_used"`
	SharkOffer     int64 `json:"shark_offer"`
	SuggestedShark int64 `json:"suggested_shark_amount,omitempty"`
	GigPay         int64 `json:"gig_pay"`
}

// GameView is the full wire representation of a session.
type GameView struct {
	ID      string            `json:"id"`
	Player  engine.Player     `json:"player"`
	State   engine.GameState  `json:"state"`
	Event   *engine.GameEvent `json:"event,omitempty"`
	Derived Derived           `json:"derived"`
}

func (s *Server) viewLocked(sess *session) GameView {
	p := sess.game.Player
	st := sess.game.State
	d := Derived{
		NetWorth:      engine.NetWorth(p),
		PassiveIncome: engine.PassiveIncome(p.Assets, st.ExchangeRate),
		TotalExpenses: engine.TotalExpenses(p.Expenses, p.Liabilities),
		MonthlyFlow:   engine.MonthlyCashFlow(p, st.ExchangeRate),
		Progress:      engine.ProgressToFreedom(p, st.ExchangeRate),
		BankLimit:     engine.BankCreditLimit(p, st.Month),
		BankUsed:      engine.UsedBankCredit(p),
		SharkOffer:    engine.SharkLimit(p),
		GigPay:        s.engine.GigPay(p),
	}
	if st.Phase == engine.PhaseInsolvency {
		d.SuggestedShark = engine.SuggestedSharkAmount(st.Deficit)
	}
	return GameView{
		ID:      sess.id,
		Player:  p,
		State:   st,
		Event:   sess.pending,
		Derived: d,
	}
}
