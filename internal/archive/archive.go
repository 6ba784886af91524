// Package archive persists finished runs to Postgres and serves the
// all-time leaderboard. It is entirely optional: a nil pool disables it
// and every method becomes a no-op.
package archive

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db  *pgxpool.Pool
	log *slog.Logger
}

// Run is one finished game, win or lose.
type Run struct {
	ID         string    `json:"id"`
	PlayerName string    `json:"player_name"`
	Profession string    `json:"profession"`
	Dream      string    `json:"dream"`
	Outcome    string    `json:"outcome"` // VICTORY or GAME_OVER
	Months     int       `json:"months"`
	NetWorth   int64     `json:"net_worth"`
	FinishedAt time.Time `json:"finished_at"`
}

type LeaderboardRow struct {
	Rank       int64  `json:"rank"`
	PlayerName string `json:"player_name"`
	Dream      string `json:"dream"`
	Months     int    `json:"months"`
	NetWorth   int64  `json:"net_worth"`
}

func New(db *pgxpool.Pool, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, log: logger}
}

func (s *Store) Enabled() bool {
	return s != nil && s.db != nil
}

// EnsureSchema creates the runs table on first boot.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			player_name TEXT NOT NULL,
			profession  TEXT NOT NULL,
			dream       TEXT NOT NULL,
			outcome     TEXT NOT NULL,
			months      INT NOT NULL,
			net_worth   BIGINT NOT NULL,
			finished_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

func (s *Store) RecordRun(ctx context.Context, run Run) error {
	if !s.Enabled() {
		return nil
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO runs (id, player_name, profession, dream, outcome, months, net_worth, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`, run.ID, run.PlayerName, run.Profession, run.Dream, run.Outcome, run.Months, run.NetWorth, run.FinishedAt)
	if err != nil {
		return err
	}
	s.log.Info("run archived", "id", run.ID, "outcome", run.Outcome, "months", run.Months)
	return nil
}

// Leaderboard ranks victorious runs by speed, then by net worth.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	if !s.Enabled() {
		return []LeaderboardRow{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	rows, err := s.db.Query(ctx, `
		SELECT player_name, dream, months, net_worth
		FROM runs
		WHERE outcome = 'VICTORY'
		ORDER BY months ASC, net_worth DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []LeaderboardRow{}
	var rank int64 = 1
	for rows.Next() {
		var r LeaderboardRow
		if err := rows.Scan(&r.PlayerName, &r.Dream, &r.Months, &r.NetWorth); err != nil {
			return nil, err
		}
		r.Rank = rank
		rank++
		out = append(out, r)
	}
	return out, rows.Err()
}
