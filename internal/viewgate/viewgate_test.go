package viewgate

import (
	"context"
	"testing"
)

func TestFreshVisitorMayOpenOneArticle(t *testing.T) {
	ctx := context.Background()
	p := NewPolicy(NewMemoryStore())

	ok, err := p.CanView(ctx, "visitor", "1", false)
	if err != nil || !ok {
		t.Fatalf("fresh visitor must be allowed a first article: ok=%v err=%v", ok, err)
	}

	// CanView is a pure read: checking never consumes the free open.
	ok, err = p.CanView(ctx, "visitor", "2", false)
	if err != nil || !ok {
		t.Fatalf("second check before any record must still pass: ok=%v err=%v", ok, err)
	}

	if err := p.RecordView(ctx, "visitor", "1"); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	ok, err = p.CanView(ctx, "visitor", "2", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("second distinct article must be denied after the first is recorded")
	}
}

func TestReopeningViewedArticleAlwaysAllowed(t *testing.T) {
	ctx := context.Background()
	p := NewPolicy(NewMemoryStore())

	_ = p.RecordView(ctx, "visitor", "1")

	ok, err := p.CanView(ctx, "visitor", "1", false)
	if err != nil || !ok {
		t.Fatalf("re-opening a viewed article must be allowed: ok=%v err=%v", ok, err)
	}
}

func TestCanViewIdempotent(t *testing.T) {
	ctx := context.Background()
	p := NewPolicy(NewMemoryStore())
	_ = p.RecordView(ctx, "visitor", "1")

	for i := 0; i < 3; i++ {
		ok, err := p.CanView(ctx, "visitor", "2", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatalf("call %d: repeated checks must not change the verdict", i)
		}
	}
}

func TestRecordViewIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	p := NewPolicy(store)

	_ = p.RecordView(ctx, "visitor", "1")
	_ = p.RecordView(ctx, "visitor", "1")

	viewed, err := store.Viewed(ctx, "visitor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(viewed) != 1 {
		t.Fatalf("double record must not grow the set: %v", viewed)
	}
}

func TestAuthenticatedBypassesGate(t *testing.T) {
	ctx := context.Background()
	p := NewPolicy(NewMemoryStore())

	_ = p.RecordView(ctx, "visitor", "1")

	for _, id := range []string{"1", "2", "3"} {
		ok, err := p.CanView(ctx, "visitor", id, true)
		if err != nil || !ok {
			t.Fatalf("authenticated visitor must always pass (%s): ok=%v err=%v", id, ok, err)
		}
	}
}

func TestVisitorsAreIndependent(t *testing.T) {
	ctx := context.Background()
	p := NewPolicy(NewMemoryStore())

	_ = p.RecordView(ctx, "visitor-a", "1")

	ok, err := p.CanView(ctx, "visitor-b", "2", false)
	if err != nil || !ok {
		t.Fatalf("another visitor's views must not consume this visitor's free open: ok=%v err=%v", ok, err)
	}
}

// Full walkthrough: fresh anonymous browser opens "1", is denied "2",
// re-opens "1", then logs in and opens "2".
func TestGateScenario(t *testing.T) {
	ctx := context.Background()
	p := NewPolicy(NewMemoryStore())
	const visitor = "browser-profile"

	ok, _ := p.CanView(ctx, visitor, "1", false)
	if !ok {
		t.Fatal("step 1: first open must be allowed")
	}
	if err := p.RecordView(ctx, visitor, "1"); err != nil {
		t.Fatalf("step 1 record: %v", err)
	}

	if ok, _ := p.CanView(ctx, visitor, "2", false); ok {
		t.Fatal("step 2: second distinct article must be denied")
	}

	if ok, _ := p.CanView(ctx, visitor, "1", false); !ok {
		t.Fatal("step 3: re-opening the viewed article must be allowed")
	}

	if ok, _ := p.CanView(ctx, visitor, "2", true); !ok {
		t.Fatal("step 4: login must bypass the gate")
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.Record(ctx, "visitor", "1")

	viewed, _ := store.Viewed(ctx, "visitor")
	viewed[0] = "mutated"

	viewed2, _ := store.Viewed(ctx, "visitor")
	if viewed2[0] != "1" {
		t.Fatal("store state must not be mutable through returned slices")
	}
}
