package engine

import (
	"fmt"
	"log/slog"
)

const initialExchangeRate = 1500

// Engine applies game operations to immutable snapshots. It holds no game
// state of its own: every operation takes a Game and returns a new one.
type Engine struct {
	catalog Catalog
	rng     Rand
	log     *slog.Logger
}

func New(catalog Catalog, rng Rand, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if rng == nil {
		rng = NewTimeRand()
	}
	return &Engine{catalog: catalog, rng: rng, log: logger}
}

func (e *Engine) Catalog() Catalog {
	return e.catalog
}

// StartGame builds the initial snapshot from an archetype and a dream.
func (e *Engine) StartGame(archetypeID, dreamID, playerName string) (Game, error) {
	arch, ok := e.catalog.Archetype(archetypeID)
	if !ok {
		return Game{}, ErrUnknownArchetype
	}
	dream, ok := e.catalog.Dream(dreamID)
	if !ok {
		return Game{}, ErrUnknownDream
	}
	if playerName == "" {
		playerName = "John Doe"
	}

	liabilities := make([]Liability, len(arch.Liabilities))
	copy(liabilities, arch.Liabilities)

	p := Player{
		Name:          playerName,
		Profession:    arch.Profession,
		Salary:        arch.Salary,
		Cash:          arch.Savings,
		SocialCapital: arch.StartingSocial,
		Health:        100,
		Mood:          100,
		Assets:        []Asset{},
		Liabilities:   liabilities,
		BaseExpenses:  arch.Expenses,
		Lifestyle:     TierLow,
		Dream:         dream,
		Skills:        []string{},
	}
	p.Expenses = RecalculateExpenses(p.BaseExpenses, p.Lifestyle)

	g := Game{
		Player: p,
		State: GameState{
			Month:        1,
			Phase:        PhasePlaying,
			ExchangeRate: initialExchangeRate,
			Flags:        map[string]bool{},
			History:      []NetWorthPoint{{Month: 1, Value: NetWorth(p)}},
		},
	}
	g = logf(g, "Started journey as %s, dreaming of %s.", arch.Name, dream.Name)
	g = logf(g, "Exchange rate: ₦%d per $1.", initialExchangeRate)
	e.log.Info("game started", "archetype", arch.ID, "dream", dream.ID)
	return g, nil
}

// clone deep-copies the snapshot so returned games never alias caller
// slices or maps.
func clone(g Game) Game {
	out := g
	out.Player.Assets = append([]Asset(nil), g.Player.Assets...)
	out.Player.Liabilities = append([]Liability(nil), g.Player.Liabilities...)
	out.Player.Skills = append([]string(nil), g.Player.Skills...)
	out.State.Log = append([]string(nil), g.State.Log...)
	out.State.History = append([]NetWorthPoint(nil), g.State.History...)
	out.State.Flags = make(map[string]bool, len(g.State.Flags))
	for k, v := range g.State.Flags {
		out.State.Flags[k] = v
	}
	return out
}

// logf prepends a narrative entry; the log reads most-recent-first.
func logf(g Game, format string, args ...any) Game {
	g.State.Log = append([]string{fmt.Sprintf(format, args...)}, g.State.Log...)
	return g
}

// reject returns the snapshot unchanged except for a narrative entry
// explaining why the action did not happen.
func reject(g Game, format string, args ...any) Game {
	return logf(clone(g), format, args...)
}
