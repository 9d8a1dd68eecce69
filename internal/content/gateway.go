// Package content resolves articles from the headless content source and
// normalizes its records into the domain model. When the source is
// unconfigured or unreachable it serves a deterministic sample set instead
// of failing: having some content always wins over a live feed.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/patentwire/patentwire/internal/domain"
	"github.com/patentwire/patentwire/internal/i18n"
	"github.com/patentwire/patentwire/internal/logger"
)

// Gateway resolves article listings and single articles.
type Gateway interface {
	// ListArticles returns every article matching the category and locale
	// filters, newest first. It degrades to the sample set rather than
	// returning an upstream error.
	ListArticles(ctx context.Context, category i18n.Category, locale i18n.Locale) ([]domain.Article, error)
	// GetArticle returns the article with the given ID or
	// domain.ErrArticleNotFound.
	GetArticle(ctx context.Context, id string) (domain.Article, error)
}

// Config holds the content source connection settings.
type Config struct {
	BaseURL    string
	Token      string
	DatabaseID string
	Version    string
	Timeout    time.Duration
}

// NotionGateway queries a Notion-style database API.
type NotionGateway struct {
	cfg    Config
	client *http.Client
	log    logger.Logger
}

// NewNotionGateway creates a gateway for the given source. Token and
// DatabaseID may be empty; the gateway then serves the sample set.
func NewNotionGateway(cfg Config, log logger.Logger) *NotionGateway {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &NotionGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

func (g *NotionGateway) configured() bool {
	return g.cfg.Token != "" && g.cfg.DatabaseID != ""
}

// ListArticles implements Gateway.
func (g *NotionGateway) ListArticles(ctx context.Context, category i18n.Category, locale i18n.Locale) ([]domain.Article, error) {
	if !g.configured() {
		return g.fallback(category, locale), nil
	}

	articles, err := g.query(ctx, category)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		g.log.Warn("Content source unavailable, serving sample set", logger.Error(err))
		return g.fallback(category, locale), nil
	}

	// The upstream sort and filter are re-applied locally so live and
	// fallback results obey the same contract.
	articles = domain.Filter(articles, category, locale)
	domain.SortByPublishedDesc(articles)
	return articles, nil
}

// GetArticle implements Gateway.
func (g *NotionGateway) GetArticle(ctx context.Context, id string) (domain.Article, error) {
	articles, err := g.ListArticles(ctx, i18n.CategoryAll, "")
	if err != nil {
		return domain.Article{}, err
	}
	for _, a := range articles {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Article{}, domain.ErrArticleNotFound
}

func (g *NotionGateway) fallback(category i18n.Category, locale i18n.Locale) []domain.Article {
	articles := domain.Filter(SampleArticles(), category, locale)
	domain.SortByPublishedDesc(articles)
	return articles
}

type queryFilter struct {
	Property string            `json:"property"`
	Select   map[string]string `json:"select"`
}

type querySort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

type queryRequest struct {
	Filter *queryFilter `json:"filter,omitempty"`
	Sorts  []querySort  `json:"sorts"`
}

func (g *NotionGateway) query(ctx context.Context, category i18n.Category) ([]domain.Article, error) {
	reqBody := queryRequest{
		Sorts: []querySort{{Property: "FilingDate", Direction: "descending"}},
	}
	if category != "" && category != i18n.CategoryAll {
		reqBody.Filter = &queryFilter{
			Property: "Category",
			Select:   map[string]string{"equals": string(category)},
		}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	url := fmt.Sprintf("%s/v1/databases/%s/query", g.cfg.BaseURL, g.cfg.DatabaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build query request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.Token)
	req.Header.Set("Notion-Version", g.cfg.Version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query content source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content source returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read query response: %w", err)
	}

	results := gjson.GetBytes(raw, "results")
	if !results.IsArray() {
		return nil, fmt.Errorf("content source response has no results array")
	}

	articles := make([]domain.Article, 0, len(results.Array()))
	for _, page := range results.Array() {
		articles = append(articles, normalizePage(page))
	}
	return articles, nil
}
