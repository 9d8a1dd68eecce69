// Package i18n holds the locale dictionaries and category enumeration for
// the site. The locale set is closed: en, ja and zh. Any other tag falls
// back to English.
package i18n

import "golang.org/x/text/language"

// Locale is one of the supported UI locales.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleJA Locale = "ja"
	LocaleZH Locale = "zh"
)

// Locales lists the supported locales in display order.
var Locales = []Locale{LocaleEN, LocaleJA, LocaleZH}

// LocaleNames maps each locale to its self-describing display name.
var LocaleNames = map[Locale]string{
	LocaleEN: "English",
	LocaleJA: "日本語",
	LocaleZH: "中文",
}

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.Japanese,
	language.Chinese,
})

// ParseLocale resolves an arbitrary locale tag to a supported Locale.
// Region variants match their base language (ja-JP resolves to ja);
// unknown or empty tags resolve to en.
func ParseLocale(tag string) Locale {
	if tag == "" {
		return LocaleEN
	}
	switch Locale(tag) {
	case LocaleEN, LocaleJA, LocaleZH:
		return Locale(tag)
	}
	t, err := language.Parse(tag)
	if err != nil {
		return LocaleEN
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return LocaleEN
	}
	switch idx {
	case 1:
		return LocaleJA
	case 2:
		return LocaleZH
	default:
		return LocaleEN
	}
}

// Category identifies an article category. The set is closed; "all" is a
// filter sentinel and never stored on an article.
type Category string

const (
	CategoryAll                 Category = "all"
	CategoryCarbon              Category = "carbon"
	CategoryBattery             Category = "battery"
	CategoryEngineeringPlastics Category = "engineering-plastics"
	CategoryMetalProcessing     Category = "metal-processing"
)

// Categories lists every category key including the "all" sentinel.
var Categories = []Category{
	CategoryAll,
	CategoryCarbon,
	CategoryBattery,
	CategoryEngineeringPlastics,
	CategoryMetalProcessing,
}

// ParseCategory resolves a raw category string. Unknown values resolve to
// the "all" sentinel so a bad query parameter widens the filter instead of
// failing the request.
func ParseCategory(raw string) Category {
	switch Category(raw) {
	case CategoryCarbon, CategoryBattery, CategoryEngineeringPlastics, CategoryMetalProcessing:
		return Category(raw)
	default:
		return CategoryAll
	}
}
