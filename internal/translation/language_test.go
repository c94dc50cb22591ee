package translation

import "testing"

func TestMapLocaleChineseVariants(t *testing.T) {
	t.Parallel()

	traditional := []string{"zh-Hant", "zh-HK", "zh-MO", "zh-TW", "zh-CHT", "zh-Hant-TW", "ZH-HANT", "zh_Hant"}
	for _, locale := range traditional {
		if got := MapLocale(locale); got != "zh-CHT" {
			t.Fatalf("MapLocale(%q) = %q, want zh-CHT", locale, got)
		}
	}

	simplified := []string{"zh", "zh-CN", "zh-Hans", "zh-SG", "zh-CHS"}
	for _, locale := range simplified {
		if got := MapLocale(locale); got != "zh-CHS" {
			t.Fatalf("MapLocale(%q) = %q, want zh-CHS", locale, got)
		}
	}
}

func TestMapLocaleOverrides(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"ja-JP": "ja",
		"vi-VN": "vi",
		"es-MX": "es",
	}
	for locale, want := range cases {
		if got := MapLocale(locale); got != want {
			t.Fatalf("MapLocale(%q) = %q, want %q", locale, got, want)
		}
	}
}

func TestMapLocaleFallsBackToPrimarySubtag(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"en-US": "en",
		"fr":    "fr",
		"de-DE": "de",
		"pt-BR": "pt",
	}
	for locale, want := range cases {
		if got := MapLocale(locale); got != want {
			t.Fatalf("MapLocale(%q) = %q, want %q", locale, got, want)
		}
	}
}

func TestMapLocaleIsTotal(t *testing.T) {
	t.Parallel()

	for _, locale := range []string{"", "  ", "en", "zh-Hant", "xx-YY", "ja-JP"} {
		if got := MapLocale(locale); got == "" {
			t.Fatalf("MapLocale(%q) returned an empty code", locale)
		}
	}
	if got := MapLocale(""); got != AutoLanguage {
		t.Fatalf("MapLocale(\"\") = %q, want %q", got, AutoLanguage)
	}
}

func TestLanguageOptionsSortedWithResolvedCodes(t *testing.T) {
	t.Parallel()

	options := LanguageOptions()
	if len(options) == 0 {
		t.Fatalf("expected language options")
	}
	for i, option := range options {
		if option.Code == "" || option.Label == "" {
			t.Fatalf("incomplete option: %+v", option)
		}
		if i > 0 && options[i-1].Tag >= option.Tag {
			t.Fatalf("options not sorted by tag: %q before %q", options[i-1].Tag, option.Tag)
		}
	}
}
