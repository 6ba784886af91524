package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

type API struct {
	Addr string `env:"NAIJAQUEST_API_ADDR" envDefault:":8080"`
	// Port mirrors the convention of PaaS providers; when set it wins
	// over Addr.
	Port        string `env:"PORT"`
	DatabaseURL string `env:"DATABASE_URL"`
	// Seed fixes the RNG for reproducible runs; 0 seeds from the clock.
	Seed int64 `env:"NAIJAQUEST_SEED"`
}

type CLI struct {
	APIBaseURL string `env:"NAIJA_API_BASE_URL" envDefault:"http://localhost:8080"`
}

// ArchiveEnabled reports whether finished runs should be written to
// Postgres. The API runs fine without a database; it just keeps no
// leaderboard.
func (c API) ArchiveEnabled() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

func LoadAPI() (API, error) {
	var cfg API
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if p := strings.TrimSpace(cfg.Port); p != "" {
		if !strings.HasPrefix(p, ":") {
			p = ":" + p
		}
		cfg.Addr = p
	}
	return cfg, nil
}

func LoadCLI() (CLI, error) {
	var cfg CLI
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	return cfg, nil
}
