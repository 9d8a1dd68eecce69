package content

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/patentwire/patentwire/internal/domain"
	"github.com/patentwire/patentwire/internal/i18n"
	"github.com/patentwire/patentwire/internal/logger"
)

func unconfiguredGateway() *NotionGateway {
	return NewNotionGateway(Config{}, logger.NewNop())
}

func TestListArticlesUnconfiguredServesSamples(t *testing.T) {
	g := unconfiguredGateway()

	articles, err := g.ListArticles(context.Background(), i18n.CategoryAll, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != len(SampleArticles()) {
		t.Fatalf("expected full sample set, got %d articles", len(articles))
	}

	// Newest first.
	for i := 1; i < len(articles); i++ {
		if articles[i-1].PublishedDate < articles[i].PublishedDate {
			t.Fatalf("articles not sorted descending at index %d", i)
		}
	}
}

func TestListArticlesSampleCategoryAndLocaleFilter(t *testing.T) {
	g := unconfiguredGateway()

	articles, err := g.ListArticles(context.Background(), i18n.CategoryBattery, i18n.LocaleJA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) == 0 {
		t.Fatal("expected at least one Japanese battery article in the sample set")
	}
	for _, a := range articles {
		if a.Category != i18n.CategoryBattery {
			t.Fatalf("article %s has category %q", a.ID, a.Category)
		}
		if a.Title.Resolve(i18n.LocaleJA) == "" {
			t.Fatalf("article %s has no Japanese title", a.ID)
		}
	}
}

func TestGetArticleFromSamples(t *testing.T) {
	g := unconfiguredGateway()

	a, err := g.GetArticle(context.Background(), "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != "2" {
		t.Fatalf("expected article 2, got %q", a.ID)
	}

	_, err = g.GetArticle(context.Background(), "does-not-exist")
	if !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestListArticlesQueriesSource(t *testing.T) {
	var gotAuth, gotVersion string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [
			{"id": "live-1", "properties": {
				"title_en": {"rich_text": [{"plain_text": "Live"}]},
				"FilingDate": {"date": {"start": "2025-12-01"}},
				"Category": {"select": {"name": "battery"}}
			}}
		]}`))
	}))
	defer srv.Close()

	g := NewNotionGateway(Config{
		BaseURL:    srv.URL,
		Token:      "secret-token",
		DatabaseID: "db-1",
		Version:    "2022-06-28",
	}, logger.NewNop())

	articles, err := g.ListArticles(context.Background(), i18n.CategoryBattery, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 1 || articles[0].ID != "live-1" {
		t.Fatalf("unexpected articles: %+v", articles)
	}

	if gotAuth != "Bearer secret-token" {
		t.Fatalf("unexpected Authorization header %q", gotAuth)
	}
	if gotVersion != "2022-06-28" {
		t.Fatalf("unexpected Notion-Version header %q", gotVersion)
	}
	filter, ok := gotBody["filter"].(map[string]any)
	if !ok {
		t.Fatalf("expected category filter in request body, got %v", gotBody)
	}
	if filter["property"] != "Category" {
		t.Fatalf("unexpected filter property: %v", filter)
	}
}

func TestListArticlesFallsBackOnSourceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewNotionGateway(Config{
		BaseURL:    srv.URL,
		Token:      "secret-token",
		DatabaseID: "db-1",
		Version:    "2022-06-28",
	}, logger.NewNop())

	articles, err := g.ListArticles(context.Background(), i18n.CategoryAll, "")
	if err != nil {
		t.Fatalf("upstream failure must not surface: %v", err)
	}
	if len(articles) != len(SampleArticles()) {
		t.Fatalf("expected sample fallback, got %d articles", len(articles))
	}
}

func TestListArticlesHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	g := NewNotionGateway(Config{
		BaseURL:    srv.URL,
		Token:      "secret-token",
		DatabaseID: "db-1",
		Version:    "2022-06-28",
	}, logger.NewNop())

	if _, err := g.ListArticles(ctx, i18n.CategoryAll, ""); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
