package langdetect

import (
	"strings"
	"sync"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"
)

const minSampleLetters = 6

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// DetectISO6391 guesses the ISO 639-1 code of a text sample. Returns an
// empty string when the sample is too short or the detector is unsure.
func DetectISO6391(text string) string {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return ""
	}

	letterCount := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			letterCount++
		}
	}
	if letterCount < minSampleLetters {
		return ""
	}

	language, exists := getDetector().DetectLanguageOf(sample)
	if !exists {
		return ""
	}

	code := strings.ToLower(language.IsoCode639_1().String())
	if len(code) != 2 {
		return ""
	}
	return code
}

// DetectFromSamples joins item texts into one sample and detects its
// language. Used when a translation job omits the source language; callers
// fall back to the provider's auto-detection when this returns "".
func DetectFromSamples(samples []string) string {
	parts := make([]string, 0, len(samples))
	for _, sample := range samples {
		trimmed := strings.TrimSpace(sample)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
		if len(parts) >= 20 {
			break
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return DetectISO6391(strings.Join(parts, " "))
}

func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			WithPreloadedLanguageModels().
			Build()
	})
	return detector
}
