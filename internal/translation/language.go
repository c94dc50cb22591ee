package translation

import (
	"sort"
	"strings"
)

const (
	// AutoLanguage asks the provider to detect the source language itself.
	AutoLanguage = "auto"

	chineseSimplified  = "zh-CHS"
	chineseTraditional = "zh-CHT"
)

// providerLanguageOverrides maps full locale tags to the short codes the
// provider expects where the plain two-letter subtag would be wrong or
// ambiguous. Keys are normalized tags.
var providerLanguageOverrides = map[string]string{
	"ja-jp": "ja",
	"vi-vn": "vi",
	"es-mx": "es",
}

// Subtags that force the traditional-Chinese provider code.
var chineseTraditionalSubtags = map[string]struct{}{
	"hant": {},
	"hk":   {},
	"mo":   {},
	"tw":   {},
	"cht":  {},
}

// MapLocale converts a BCP 47 locale tag into the provider's language code.
// Chinese locales split into simplified and traditional codes based on the
// script or region subtags; a small override table covers locales whose
// provider code differs from the primary subtag; everything else degrades to
// the two-letter ISO language code. Blank input maps to AutoLanguage.
func MapLocale(locale string) string {
	tag := normalizeLocaleTag(locale)
	if tag == "" {
		return AutoLanguage
	}

	subtags := strings.Split(tag, "-")
	if subtags[0] == "zh" {
		for _, subtag := range subtags[1:] {
			if _, traditional := chineseTraditionalSubtags[subtag]; traditional {
				return chineseTraditional
			}
		}
		return chineseSimplified
	}

	if code, ok := providerLanguageOverrides[tag]; ok {
		return code
	}
	return subtags[0]
}

// normalizeLocaleTag lowercases a locale tag and collapses separators, so
// "zh_Hant" and "zh-hant" compare equal. Returns an empty string for blank
// or malformed input.
func normalizeLocaleTag(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}

	parts := strings.Split(strings.ReplaceAll(trimmed, "_", "-"), "-")
	subtags := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		for _, r := range part {
			if r < 'a' || r > 'z' {
				return ""
			}
		}
		subtags = append(subtags, part)
	}
	if len(subtags) == 0 {
		return ""
	}
	return strings.Join(subtags, "-")
}

// LanguageOption pairs a locale tag with its resolved provider code, for the
// languages CLI command and the HTTP API.
type LanguageOption struct {
	Tag   string `json:"tag"`
	Code  string `json:"code"`
	Label string `json:"label"`
}

var languageLabels = map[string]string{
	"ar":      "Arabic",
	"de":      "German",
	"en":      "English",
	"es":      "Spanish",
	"es-mx":   "Spanish (Mexico)",
	"fr":      "French",
	"id":      "Indonesian",
	"it":      "Italian",
	"ja-jp":   "Japanese",
	"ko":      "Korean",
	"pt":      "Portuguese",
	"ru":      "Russian",
	"th":      "Thai",
	"tr":      "Turkish",
	"vi-vn":   "Vietnamese",
	"zh-hans": "Chinese (Simplified)",
	"zh-hant": "Chinese (Traditional)",
}

// LanguageOptions lists the documented locale tags with their provider codes,
// sorted by tag.
func LanguageOptions() []LanguageOption {
	options := make([]LanguageOption, 0, len(languageLabels))
	for tag, label := range languageLabels {
		options = append(options, LanguageOption{
			Tag:   tag,
			Code:  MapLocale(tag),
			Label: label,
		})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Tag < options[j].Tag })
	return options
}
