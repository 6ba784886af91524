package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"naijaquest/internal/api"
	"naijaquest/internal/archive"
	"naijaquest/internal/catalog"
	"naijaquest/internal/config"
	"naijaquest/internal/db"
	"naijaquest/internal/engine"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadAPI()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	store := archive.New(nil, logger)
	if cfg.ArchiveEnabled() {
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("db connect failed", "err", err)
			os.Exit(1)
		}
		defer pool.Close()
		store = archive.New(pool, logger)
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Error("archive schema failed", "err", err)
			os.Exit(1)
		}
	} else {
		logger.Info("no DATABASE_URL set, leaderboard disabled")
	}

	rng := engine.NewTimeRand()
	if cfg.Seed != 0 {
		rng = engine.NewRand(cfg.Seed)
	}
	eng := engine.New(catalog.Default(), rng, logger)

	server := api.New(cfg, logger, eng, store)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("naijaquest api listening", "addr", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
