package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/hearttoheart/backend/internal/flow"
	"github.com/hearttoheart/backend/internal/heart"
)

// Registry holds the live consultation sessions, keyed by the opaque
// bearer token handed out at session creation. Sessions are in-memory
// only; a restart starts every client over at role selection.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*flow.Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*flow.Session),
	}
}

// Create starts a fresh session and returns its bearer token.
func (r *Registry) Create(lang heart.Language) (string, *flow.Session) {
	token := uuid.NewString()
	s := flow.NewSession(lang)

	r.mu.Lock()
	r.sessions[token] = s
	r.mu.Unlock()
	return token, s
}

func (r *Registry) Get(token string) (*flow.Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[token]
	r.mu.RUnlock()
	return s, ok
}

func (r *Registry) Delete(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}

// Count reports how many sessions are live.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
