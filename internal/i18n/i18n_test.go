package i18n

import "testing"

func TestParseLocale(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want Locale
	}{
		{"exact en", "en", LocaleEN},
		{"exact ja", "ja", LocaleJA},
		{"exact zh", "zh", LocaleZH},
		{"region variant", "ja-JP", LocaleJA},
		{"region variant zh", "zh-CN", LocaleZH},
		{"unsupported falls back", "fr", LocaleEN},
		{"garbage falls back", "not-a-locale!!", LocaleEN},
		{"empty falls back", "", LocaleEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLocale(tt.tag); got != tt.want {
				t.Fatalf("ParseLocale(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	if got := ParseCategory("battery"); got != CategoryBattery {
		t.Fatalf("expected battery, got %q", got)
	}
	// Unknown and empty both widen to the "all" sentinel.
	if got := ParseCategory("unknown"); got != CategoryAll {
		t.Fatalf("expected all for unknown category, got %q", got)
	}
	if got := ParseCategory(""); got != CategoryAll {
		t.Fatalf("expected all for empty category, got %q", got)
	}
	// "all" is a filter sentinel, never a storable category, but it parses.
	if got := ParseCategory("all"); got != CategoryAll {
		t.Fatalf("expected all, got %q", got)
	}
}

func TestForLocaleFallback(t *testing.T) {
	en := ForLocale(LocaleEN)
	if en.Nav.Home != "Home" {
		t.Fatalf("unexpected en nav.home: %q", en.Nav.Home)
	}

	ja := ForLocale(LocaleJA)
	if ja.Nav.Home != "ホーム" {
		t.Fatalf("unexpected ja nav.home: %q", ja.Nav.Home)
	}

	// A locale outside the closed set yields the English dictionary.
	if got := ForLocale(Locale("fr")); got != en {
		t.Fatal("expected fallback to English dictionary")
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryLabel(LocaleZH, CategoryBattery); got != "电池创新" {
		t.Fatalf("unexpected zh battery label: %q", got)
	}
	if got := CategoryLabel(Locale("xx"), CategoryCarbon); got != "Carbon Technology" {
		t.Fatalf("expected English label for unknown locale, got %q", got)
	}
}
