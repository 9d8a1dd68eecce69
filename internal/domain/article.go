// Package domain holds the core data model shared by the gateway, the API
// and the page handlers.
package domain

import (
	"errors"
	"sort"
	"time"

	"github.com/patentwire/patentwire/internal/i18n"
)

// ErrArticleNotFound is returned when no article matches a requested ID.
var ErrArticleNotFound = errors.New("article not found")

// PlaceholderCoverImage is substituted when an upstream record carries no
// cover image.
const PlaceholderCoverImage = "https://images.pexels.com/photos/8386440/pexels-photo-8386440.jpeg?auto=compress&cs=tinysrgb&w=1200"

// LocalizedText holds one string per supported locale. Upstream records
// that only carry a single locale leave the other slots empty.
type LocalizedText struct {
	EN string `json:"en,omitempty"`
	JA string `json:"ja,omitempty"`
	ZH string `json:"zh,omitempty"`
}

// Resolve returns the text for the requested locale, falling back to
// English and then to any non-empty variant. It never fails; a fully empty
// value resolves to "".
func (t LocalizedText) Resolve(locale i18n.Locale) string {
	if v := t.forLocale(locale); v != "" {
		return v
	}
	if t.EN != "" {
		return t.EN
	}
	if t.JA != "" {
		return t.JA
	}
	return t.ZH
}

func (t LocalizedText) forLocale(locale i18n.Locale) string {
	switch locale {
	case i18n.LocaleJA:
		return t.JA
	case i18n.LocaleZH:
		return t.ZH
	default:
		return t.EN
	}
}

// LocalizedList holds one string list per supported locale.
type LocalizedList struct {
	EN []string `json:"en,omitempty"`
	JA []string `json:"ja,omitempty"`
	ZH []string `json:"zh,omitempty"`
}

// Resolve returns the list for the requested locale with the same fallback
// chain as LocalizedText. A fully empty value resolves to an empty list.
func (l LocalizedList) Resolve(locale i18n.Locale) []string {
	var v []string
	switch locale {
	case i18n.LocaleJA:
		v = l.JA
	case i18n.LocaleZH:
		v = l.ZH
	default:
		v = l.EN
	}
	if len(v) > 0 {
		return v
	}
	if len(l.EN) > 0 {
		return l.EN
	}
	if len(l.JA) > 0 {
		return l.JA
	}
	if len(l.ZH) > 0 {
		return l.ZH
	}
	return []string{}
}

// Article is the normalized projection of one content-source record.
// Every field has a documented default; normalization never fails on a
// malformed record.
type Article struct {
	ID            string        `json:"id"`
	Title         LocalizedText `json:"title"`
	Summary       LocalizedText `json:"summary"`
	Properties    LocalizedList `json:"properties"`
	CoverImage    string        `json:"coverImage"`
	PublishedDate string        `json:"publishedDate"`
	Category      i18n.Category `json:"category,omitempty"`
	Tags          []string      `json:"tags"`
	Author        string        `json:"author"`

	// Language is set only for single-locale upstream records; fully
	// localized records leave it empty and match every locale filter.
	Language i18n.Locale `json:"language,omitempty"`
}

// MatchesCategory reports whether the article passes a category filter.
// The "all" sentinel matches everything.
func (a Article) MatchesCategory(c i18n.Category) bool {
	return c == i18n.CategoryAll || c == "" || a.Category == c
}

// MatchesLocale reports whether the article passes a locale filter.
// Single-locale records match on language equality; localized records
// carry every locale and always match.
func (a Article) MatchesLocale(l i18n.Locale) bool {
	return l == "" || a.Language == "" || a.Language == l
}

// publishedAt parses the ISO publication date; unparseable or missing
// dates sort last.
func (a Article) publishedAt() time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, a.PublishedDate); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SortByPublishedDesc orders articles by publication date descending.
// The sort is stable so records with equal (or missing) dates keep their
// source order.
func SortByPublishedDesc(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].publishedAt().After(articles[j].publishedAt())
	})
}

// Filter returns the articles matching the category and locale filters,
// preserving order.
func Filter(articles []Article, category i18n.Category, locale i18n.Locale) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.MatchesCategory(category) && a.MatchesLocale(locale) {
			out = append(out, a)
		}
	}
	return out
}
