package session

import (
	"testing"
	"time"

	"github.com/patentwire/patentwire/internal/identity"
)

func TestStoreSetGetClear(t *testing.T) {
	s := NewStore(time.Minute)
	user := identity.User{ID: "u1", Email: "a@example.com", Name: "Alice"}

	s.SetUser("token-1", user)

	got, ok := s.User("token-1")
	if !ok || got != user {
		t.Fatalf("expected cached user, got %+v ok=%v", got, ok)
	}

	s.ClearUser("token-1")
	if _, ok := s.User("token-1"); ok {
		t.Fatal("expected user to be cleared")
	}
}

func TestStoreMissingToken(t *testing.T) {
	s := NewStore(time.Minute)
	if _, ok := s.User("unknown"); ok {
		t.Fatal("expected miss for unknown token")
	}

	// An empty token never caches anything.
	s.SetUser("", identity.User{ID: "u1"})
	if _, ok := s.User(""); ok {
		t.Fatal("empty token must not be cached")
	}
}

func TestStoreTTLExpiry(t *testing.T) {
	s := NewStore(time.Minute)
	s.SetUser("token-1", identity.User{ID: "u1"})

	now := time.Now()
	s.now = func() time.Time { return now.Add(2 * time.Minute) }

	if _, ok := s.User("token-1"); ok {
		t.Fatal("expected expired entry to miss")
	}
}
