// Package session caches the UI-facing user projection per access token.
// The cache exists so page renders can show "logged in as" without a
// provider round trip. It is never authorization-authoritative: the route
// guard and the view gate re-derive truth from the identity provider on
// every decision.
package session

import (
	"sync"
	"time"

	"github.com/patentwire/patentwire/internal/identity"
)

type entry struct {
	user      identity.User
	expiresAt time.Time
}

// Store is a TTL cache from access token to user projection.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

// NewStore creates a Store with the given entry TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// SetUser caches the user projection for a token.
func (s *Store) SetUser(token string, user identity.User) {
	if token == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = entry{user: user, expiresAt: s.now().Add(s.ttl)}
}

// User returns the cached projection for a token, if present and fresh.
func (s *Store) User(token string) (identity.User, bool) {
	s.mu.RLock()
	e, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok {
		return identity.User{}, false
	}
	if s.now().After(e.expiresAt) {
		s.ClearUser(token)
		return identity.User{}, false
	}
	return e.user, true
}

// ClearUser drops the cached projection for a token.
func (s *Store) ClearUser(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
}
