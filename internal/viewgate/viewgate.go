// Package viewgate implements the anonymous view limit: an unauthenticated
// visitor may open exactly one distinct article; re-opening an article
// already viewed is always allowed, and authentication bypasses the gate
// entirely.
package viewgate

import "context"

// FreeArticleLimit is the number of distinct articles an anonymous visitor
// may open. The threshold is deliberately exactly one, with no expiry or
// reset.
const FreeArticleLimit = 1

// Store persists the set of article IDs a visitor has opened, keyed by
// browser-profile visitor ID. The set only grows; entries are never
// removed.
type Store interface {
	// Viewed returns the article IDs the visitor has opened.
	Viewed(ctx context.Context, visitorID string) ([]string, error)
	// Record adds an article ID to the visitor's set. Adding an ID already
	// present is a no-op.
	Record(ctx context.Context, visitorID, articleID string) error
}

// Policy decides whether a visitor may open an article.
type Policy struct {
	store Store
	limit int
}

// NewPolicy creates a Policy over the given store with the standard limit.
func NewPolicy(store Store) *Policy {
	return &Policy{store: store, limit: FreeArticleLimit}
}

// CanView reports whether the visitor may open the article. It is a pure
// read over persisted state; recording happens separately via RecordView.
func (p *Policy) CanView(ctx context.Context, visitorID, articleID string, authenticated bool) (bool, error) {
	if authenticated {
		return true, nil
	}

	viewed, err := p.store.Viewed(ctx, visitorID)
	if err != nil {
		return false, err
	}
	for _, id := range viewed {
		if id == articleID {
			return true, nil
		}
	}
	return len(viewed) < p.limit, nil
}

// RecordView adds the article to the visitor's viewed set. Callers must
// only invoke it after CanView allowed the open, and only for
// unauthenticated sessions: recording for an authenticated session would
// bias a later anonymous session sharing the same browser profile.
func (p *Policy) RecordView(ctx context.Context, visitorID, articleID string) error {
	return p.store.Record(ctx, visitorID, articleID)
}
