package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"naijaquest/internal/archive"
	"naijaquest/internal/config"
	"naijaquest/internal/engine"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	cfg     config.API
	log     *slog.Logger
	engine  *engine.Engine
	archive *archive.Store
	games   *registry
	mux     *chi.Mux
}

func New(cfg config.API, logger *slog.Logger, eng *engine.Engine, store *archive.Store) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:     cfg,
		log:     logger,
		engine:  eng,
		archive: store,
		games:   newRegistry(),
		mux:     chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Get("/leaderboard", s.handleLeaderboard)

		r.Post("/games", s.handleCreateGame)
		r.Route("/games/{id}", func(r chi.Router) {
			r.Get("/", s.handleGameState)
			r.Delete("/", s.handleAbandonGame)
			r.Get("/ws", s.handleWatch)

			r.Post("/advance", s.handleAdvance)
			r.Post("/event", s.handleEvent)
			r.Post("/insolvency", s.handleInsolvency)

			r.Post("/market/buy", s.handleMarketBuy)
			r.Post("/assets/{asset_id}/upgrade", s.handleUpgradeAsset)
			r.Post("/assets/{asset_id}/sell", s.handleSellAsset)

			r.Post("/bank/loan", s.handleBankLoan)
			r.Post("/shark/loan", s.handleSharkLoan)
			r.Post("/debts/{liability_id}/repay", s.handleRepayDebt)

			r.Post("/lifestyle", s.handleLifestyle)
			r.Post("/skills", s.handleLearnSkill)
			r.Post("/gig", s.handleGig)
			r.Post("/dream", s.handleBuyDream)
			r.Post("/austerity", s.handleAusterity)
		})
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	c := s.engine.Catalog()
	writeJSON(w, http.StatusOK, map[string]any{
		"archetypes": c.Archetypes,
		"items":      c.Items,
		"dreams":     c.Dreams,
		"skills":     c.Skills,
	})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if !s.archive.Enabled() {
		writeJSON(w, http.StatusOK, map[string]any{"enabled": false, "rows": []archive.LeaderboardRow{}})
		return
	}
	rows, err := s.archive.Leaderboard(r.Context(), 100)
	if err != nil {
		s.log.Error("leaderboard query failed", "err", err)
		writeError(w, http.StatusInternalServerError, "leaderboard unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"enabled": true, "rows": rows})
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ArchetypeID string `json:"archetype_id"`
		DreamID     string `json:"dream_id"`
		PlayerName  string `json:"player_name"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	g, err := s.engine.StartGame(in.ArchetypeID, in.DreamID, strings.TrimSpace(in.PlayerName))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	sess := s.games.create(g)
	sess.mu.Lock()
	view := s.viewLocked(sess)
	sess.mu.Unlock()
	s.log.Info("game created", "id", sess.id, "archetype", in.ArchetypeID, "dream", in.DreamID)
	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	sess, err := s.games.get(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	sess.mu.Lock()
	view := s.viewLocked(sess)
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleAbandonGame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.games.get(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.games.remove(sess.id)
	s.log.Info("game abandoned", "id", sess.id)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	sess, err := s.games.get(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	sess.mu.Lock()
	g, ev := s.engine.AdvanceMonth(sess.game)
	sess.game = g
	if ev != nil {
		sess.pending = ev
	}
	s.publishLocked(r.Context(), sess, w)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	sess, err := s.games.get(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	var in struct {
		ChoiceID  string `json:"choice_id"`
		PayMethod string `json:"pay_method"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.mu.Lock()
	if sess.pending == nil {
		sess.mu.Unlock()
		writeError(w, http.StatusConflict, "no event is waiting")
		return
	}
	g, err := s.engine.ResolveEvent(sess.game, *sess.pending, in.ChoiceID, payMethod(in.PayMethod))
	if err != nil {
		sess.mu.Unlock()
		writeDomainError(w, err)
		return
	}
	sess.game = g
	// A rejected choice keeps the modal open.
	if g.State.Phase != engine.PhaseEventModal {
		sess.pending = nil
	}
	s.publishLocked(r.Context(), sess, w)
}

func (s *Server) handleInsolvency(w http.ResponseWriter, r *http.Request) {
	sess, err := s.games.get(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	var in struct {
		Strategy string `json:"strategy"`
		Amount   int64  `json:"amount"`
		AssetID  string `json:"asset_id"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.mu.Lock()
	g, ev, err := s.engine.ResolveInsolvency(sess.game, engine.InsolvencyStrategy(in.Strategy), engine.InsolvencyParams{
		Amount:  in.Amount,
		AssetID: in.AssetID,
	})
	if err != nil {
		sess.mu.Unlock()
		writeDomainError(w, err)
		return
	}
	sess.game = g
	if ev != nil {
		sess.pending = ev
	}
	s.publishLocked(r.Context(), sess, w)
}

func (s *Server) handleMarketBuy(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ItemID    string `json:"item_id"`
		PayMethod string `json:"pay_method"`
	}
	s.applyOp(w, r, &in, func(g engine.Game) (engine.Game, error) {
		return s.engine.PurchaseMarketItem(g, in.ItemID, payMethod(in.PayMethod))
	})
}

func (s *Server) handleUpgradeAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "asset_id")
	s.applyOp(w, r, nil, func(g engine.Game) (engine.Game, error) {
		return s.engine.UpgradeAsset(g, assetID)
	})
}

func (s *Server) handleSellAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "asset_id")
	s.applyOp(w, r, nil, func(g engine.Game) (engine.Game, error) {
		return s.engine.SellAsset(g, assetID)
	})
}

func (s *Server) handleBankLoan(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Amount int64 `json:"amount"`
	}
	s.applyOp(w, r, &in, func(g engine.Game) (engine.Game, error) {
		return s.engine.TakeBankLoan(g, in.Amount)
	})
}

func (s *Server) handleSharkLoan(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Amount int64 `json:"amount"`
	}
	s.applyOp(w, r, &in, func(g engine.Game) (engine.Game, error) {
		return s.engine.TakeSharkLoan(g, in.Amount)
	})
}

func (s *Server) handleRepayDebt(w http.ResponseWriter, r *http.Request) {
	liabilityID := chi.URLParam(r, "liability_id")
	s.applyOp(w, r, nil, func(g engine.Game) (engine.Game, error) {
		return s.engine.RepayLiability(g, liabilityID)
	})
}

func (s *Server) handleLifestyle(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Tier string `json:"tier"`
	}
	s.applyOp(w, r, &in, func(g engine.Game) (engine.Game, error) {
		return s.engine.ChangeLifestyle(g, engine.LifestyleTier(in.Tier))
	})
}

func (s *Server) handleLearnSkill(w http.ResponseWriter, r *http.Request) {
	var in struct {
		SkillID string `json:"skill_id"`
	}
	s.applyOp(w, r, &in, func(g engine.Game) (engine.Game, error) {
		return s.engine.LearnSkill(g, in.SkillID)
	})
}

func (s *Server) handleGig(w http.ResponseWriter, r *http.Request) {
	s.applyOp(w, r, nil, func(g engine.Game) (engine.Game, error) {
		return s.engine.PerformGig(g)
	})
}

func (s *Server) handleBuyDream(w http.ResponseWriter, r *http.Request) {
	s.applyOp(w, r, nil, func(g engine.Game) (engine.Game, error) {
		return s.engine.BuyDreamItem(g)
	})
}

func (s *Server) handleAusterity(w http.ResponseWriter, r *http.Request) {
	s.applyOp(w, r, nil, func(g engine.Game) (engine.Game, error) {
		return s.engine.Austerity(g)
	})
}

// applyOp is the shared path for operations that only transform the
// snapshot: decode, lock, apply, publish.
func (s *Server) applyOp(w http.ResponseWriter, r *http.Request, in any, op func(engine.Game) (engine.Game, error)) {
	sess, err := s.games.get(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if in != nil {
		if err := decodeJSON(r, in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	sess.mu.Lock()
	g, err := op(sess.game)
	if err != nil {
		sess.mu.Unlock()
		writeDomainError(w, err)
		return
	}
	sess.game = g
	s.publishLocked(r.Context(), sess, w)
}

// publishLocked builds the view, fans it out to watchers, archives a
// finished run, and answers the request. It releases the session lock.
func (s *Server) publishLocked(ctx context.Context, sess *session, w http.ResponseWriter) {
	view := s.viewLocked(sess)
	sess.broadcast(view)
	s.maybeArchiveLocked(ctx, sess)
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) maybeArchiveLocked(ctx context.Context, sess *session) {
	phase := sess.game.State.Phase
	if sess.archived || (phase != engine.PhaseVictory && phase != engine.PhaseGameOver) {
		return
	}
	if !s.archive.Enabled() {
		return
	}
	sess.archived = true
	run := archive.Run{
		ID:         sess.id,
		PlayerName: sess.game.Player.Name,
		Profession: sess.game.Player.Profession,
		Dream:      sess.game.Player.Dream.Name,
		Outcome:    string(phase),
		Months:     sess.game.State.Month,
		NetWorth:   engine.NetWorth(sess.game.Player),
		FinishedAt: time.Now().UTC(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if err := s.archive.RecordRun(ctx, run); err != nil {
			s.log.Error("archive run failed", "id", run.ID, "err", err)
		}
	}()
}

func payMethod(v string) engine.PayMethod {
	if strings.EqualFold(strings.TrimSpace(v), string(engine.PayBank)) {
		return engine.PayBank
	}
	return engine.PayCash
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrWrongPhase):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, engine.ErrUnknownArchetype),
		errors.Is(err, engine.ErrUnknownDream),
		errors.Is(err, engine.ErrUnknownItem),
		errors.Is(err, engine.ErrUnknownChoice),
		errors.Is(err, engine.ErrUnknownStrategy):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(message)})
}
