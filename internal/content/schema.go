package content

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/patentwire/patentwire/internal/domain"
	"github.com/patentwire/patentwire/internal/i18n"
)

// The content source has shipped two incompatible record shapes over time:
//
//   - the localized variant: per-locale rich_text fields (title_en,
//     Overview_ja, Properties_zh, ...), a FilingDate date, an Applicant
//     rich_text and a Category select;
//   - the flat variant: a single Title title field, Description rich_text,
//     Language select, "Published Date" date and Author rich_text.
//
// Both are normalized into domain.Article here. Every field access
// tolerates absence or malformation and substitutes the documented
// default; a broken field never fails the record.

// normalizePage projects one upstream page into an Article.
func normalizePage(page gjson.Result) domain.Article {
	if isLocalizedVariant(page) {
		return normalizeLocalizedPage(page)
	}
	return normalizeFlatPage(page)
}

func isLocalizedVariant(page gjson.Result) bool {
	for _, field := range []string{"title_en", "title_ja", "title_zh", "Overview_en", "Overview_ja", "Overview_zh"} {
		if page.Get("properties." + field).Exists() {
			return true
		}
	}
	return false
}

func normalizeLocalizedPage(page gjson.Result) domain.Article {
	return domain.Article{
		ID: page.Get("id").String(),
		Title: domain.LocalizedText{
			EN: richText(page, "title_en"),
			JA: richText(page, "title_ja"),
			ZH: richText(page, "title_zh"),
		},
		Summary: domain.LocalizedText{
			EN: richText(page, "Overview_en"),
			JA: richText(page, "Overview_ja"),
			ZH: richText(page, "Overview_zh"),
		},
		Properties: domain.LocalizedList{
			EN: richTextLines(page, "Properties_en"),
			JA: richTextLines(page, "Properties_ja"),
			ZH: richTextLines(page, "Properties_zh"),
		},
		CoverImage:    coverImage(page),
		PublishedDate: page.Get("properties.FilingDate.date.start").String(),
		Category:      articleCategory(page.Get("properties.Category.select.name").String()),
		Tags:          multiSelect(page, "Tags"),
		Author:        richText(page, "Applicant"),
	}
}

func normalizeFlatPage(page gjson.Result) domain.Article {
	lang := i18n.ParseLocale(page.Get("properties.Language.select.name").String())

	var title, summary domain.LocalizedText
	setForLocale(&title, lang, page.Get("properties.Title.title.0.plain_text").String())
	setForLocale(&summary, lang, richText(page, "Description"))

	published := page.Get("properties.Published Date.date.start").String()

	return domain.Article{
		ID:            page.Get("id").String(),
		Title:         title,
		Summary:       summary,
		Properties:    domain.LocalizedList{},
		CoverImage:    coverImage(page),
		PublishedDate: published,
		Category:      articleCategory(page.Get("properties.Category.select.name").String()),
		Tags:          multiSelect(page, "Tags"),
		Author:        richText(page, "Author"),
		Language:      lang,
	}
}

func setForLocale(t *domain.LocalizedText, l i18n.Locale, v string) {
	switch l {
	case i18n.LocaleJA:
		t.JA = v
	case i18n.LocaleZH:
		t.ZH = v
	default:
		t.EN = v
	}
}

// richText returns the first plain-text fragment of a rich_text property,
// or "" when the property is absent or malformed.
func richText(page gjson.Result, property string) string {
	return page.Get("properties." + property + ".rich_text.0.plain_text").String()
}

// richTextLines splits a rich_text property into its non-blank lines.
func richTextLines(page gjson.Result, property string) []string {
	text := richText(page, property)
	if text == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func multiSelect(page gjson.Result, property string) []string {
	var tags []string
	page.Get("properties." + property + ".multi_select.#.name").ForEach(func(_, v gjson.Result) bool {
		if v.String() != "" {
			tags = append(tags, v.String())
		}
		return true
	})
	if tags == nil {
		return []string{}
	}
	return tags
}

func coverImage(page gjson.Result) string {
	if url := page.Get("cover.external.url").String(); url != "" {
		return url
	}
	if url := page.Get("cover.file.url").String(); url != "" {
		return url
	}
	return domain.PlaceholderCoverImage
}

// articleCategory maps an upstream category name onto the closed category
// set. Unknown names resolve to empty, never to the "all" sentinel.
func articleCategory(name string) i18n.Category {
	switch c := i18n.Category(name); c {
	case i18n.CategoryCarbon, i18n.CategoryBattery, i18n.CategoryEngineeringPlastics, i18n.CategoryMetalProcessing:
		return c
	default:
		return ""
	}
}
