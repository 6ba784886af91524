package engine

import (
	mathrand "math/rand"
	"sync"
	"time"
)

// Rand is the single source of non-determinism in the engine: exchange-rate
// drift, event weighting, and success/failure rolls all draw from it.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

type lockedRand struct {
	mu sync.Mutex
	r  *mathrand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// NewRand returns a mutex-guarded math/rand source.
func NewRand(seed int64) Rand {
	return &lockedRand{r: mathrand.New(mathrand.NewSource(seed))}
}

// NewTimeRand seeds from the wall clock, for the binaries.
func NewTimeRand() Rand {
	return NewRand(time.Now().UnixNano())
}
