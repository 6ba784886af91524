package api

import (
	"errors"
	"sync"

	"naijaquest/internal/engine"

	"github.com/google/uuid"
)

var errSessionNotFound = errors.New("game not found")

// session is one live game. The engine works on immutable snapshots, so
// the session is just the latest snapshot plus whatever event is waiting
// on the player.
type session struct {
	mu       sync.Mutex
	id       string
	game     engine.Game
	pending  *engine.GameEvent
	archived bool
	subs     map[chan GameView]struct{}
}

func (s *session) subscribe() chan GameView {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan GameView, 8)
	s.subs[ch] = struct{}{}
	return ch
}

func (s *session) unsubscribe(ch chan GameView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[ch]; ok {
		delete(s.subs, ch)
		close(ch)
	}
}

// broadcast fans the view out to watchers; a slow watcher just misses
// frames.
func (s *session) broadcast(view GameView) {
	for ch := range s.subs {
		select {
		case ch <- view:
		default:
		}
	}
}

type registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newRegistry() *registry {
	return &registry{sessions: make(map[string]*session)}
}

func (r *registry) create(g engine.Game) *session {
	s := &session{
		id:   uuid.NewString(),
		game: g,
		subs: make(map[chan GameView]struct{}),
	}
	r.mu.Lock()
	r.sessions[s.id] = s
	r.mu.Unlock()
	return s
}

func (r *registry) get(id string) (*session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, errSessionNotFound
	}
	return s, nil
}

func (r *registry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
