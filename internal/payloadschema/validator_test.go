package payloadschema

import (
	"strings"
	"testing"
)

func TestValidateTranslateRequestAccepted(t *testing.T) {
	t.Parallel()

	payload := `{
		"source_language": "en-US",
		"translator": "youdao",
		"items": [
			{"key": "Greeting", "text": "Hello", "target_language": "de-DE"},
			{"text": "Goodbye", "target_language": "fr-FR"}
		]
	}`

	request, err := ValidateTranslateRequest([]byte(payload))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if request.SourceLanguage != "en-US" || len(request.Items) != 2 {
		t.Fatalf("unexpected request: %+v", request)
	}
	if request.Items[0].Key != "Greeting" || request.Items[1].TargetLanguage != "fr-FR" {
		t.Fatalf("unexpected items: %+v", request.Items)
	}
}

func TestValidateTranslateRequestRejected(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty payload":      ``,
		"not an object":      `[]`,
		"missing items":      `{"source_language": "en"}`,
		"empty items":        `{"items": []}`,
		"missing text":       `{"items": [{"target_language": "de"}]}`,
		"missing target":     `{"items": [{"text": "hi"}]}`,
		"blank text":         `{"items": [{"text": "   ", "target_language": "de"}]}`,
		"unknown field":      `{"items": [{"text": "hi", "target_language": "de"}], "extra": 1}`,
		"trailing content":   `{"items": [{"text": "hi", "target_language": "de"}]} {}`,
	}

	for name, payload := range cases {
		if _, err := ValidateTranslateRequest([]byte(payload)); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestValidateTranslateRequestBlankTextAfterTrim(t *testing.T) {
	t.Parallel()

	_, err := ValidateTranslateRequest([]byte(`{"items": [{"text": " \t ", "target_language": "de"}]}`))
	if err == nil || !strings.Contains(err.Error(), "text must not be blank") {
		t.Fatalf("expected semantic blank-text error, got %v", err)
	}
}
