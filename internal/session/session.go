// Package session tracks authenticated sessions in memory. Identity is never
// ambient: handlers receive the session explicitly and thread it into every
// core call. Each session owns its Cart; the cart dies with the session.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"restaurant-orders/internal/cart"
	"restaurant-orders/internal/domain"
)

type Session struct {
	Token     string
	Username  string
	Role      domain.Role
	Cart      *cart.Cart
	CreatedAt time.Time
}

// Registry is a single-process token-to-session map.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create opens a session with a fresh cart and returns it.
func (r *Registry) Create(username string, role domain.Role) *Session {
	s := &Session{
		Token:     uuid.NewString(),
		Username:  username,
		Role:      role,
		Cart:      cart.New(),
		CreatedAt: time.Now(),
	}
	r.mu.Lock()
	r.sessions[s.Token] = s
	r.mu.Unlock()
	return s
}

func (r *Registry) Get(token string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[token]
	return s, ok
}

// Delete discards the session and its cart. Unknown tokens are a no-op.
func (r *Registry) Delete(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}
