package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/BobinYang/ResXResourceManager/internal/translation"
)

type stubTranslator struct {
	name     string
	calls    int
	messages []string
}

func (s *stubTranslator) Name() string { return s.name }

func (s *stubTranslator) Translate(_ context.Context, session *translation.Session) error {
	s.calls++
	for _, message := range s.messages {
		session.AddMessage(message)
	}
	session.Dispatch(func() {
		for _, item := range session.Items {
			item.Matches = append(item.Matches, translation.Match{
				Translator: s.name,
				Text:       "[" + item.TargetCulture + "] " + item.Source,
				Rating:     1,
			})
		}
	})
	return nil
}

func newTestServer(t *testing.T, translator translation.Translator) *Server {
	t.Helper()
	registry := translation.NewRegistry(translator.Name())
	if err := registry.Register(translator); err != nil {
		t.Fatalf("register translator: %v", err)
	}
	return NewServer(registry, nil, zerolog.Nop(), Options{})
}

func postTranslate(t *testing.T, s *Server, payload string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := s.handleTranslate(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestHandleTranslateAppliesMatches(t *testing.T) {
	t.Parallel()

	translator := &stubTranslator{name: "stub"}
	server := newTestServer(t, translator)

	rec := postTranslate(t, server, `{
		"source_language": "en",
		"items": [
			{"key": "Greeting", "text": "Hello", "target_language": "de-DE"}
		]
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	if translator.calls != 1 {
		t.Fatalf("expected one translator call, got %d", translator.calls)
	}

	var body struct {
		Success bool              `json:"success"`
		Data    translateResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Fatalf("expected success envelope: %s", rec.Body.String())
	}
	if body.Data.MatchCount != 1 || len(body.Data.Items) != 1 {
		t.Fatalf("unexpected response data: %+v", body.Data)
	}
	match := body.Data.Items[0].Matches[0]
	if match.Text != "[de-DE] Hello" || match.Translator != "stub" {
		t.Fatalf("unexpected match: %+v", match)
	}
}

func TestHandleTranslateSurfacesDiagnostics(t *testing.T) {
	t.Parallel()

	translator := &stubTranslator{name: "stub", messages: []string{"credentials missing"}}
	server := newTestServer(t, translator)

	rec := postTranslate(t, server, `{
		"source_language": "en",
		"items": [{"text": "Hello", "target_language": "de"}]
	}`)

	var body struct {
		Data translateResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data.Diagnostics) != 1 || body.Data.Diagnostics[0] != "credentials missing" {
		t.Fatalf("unexpected diagnostics: %v", body.Data.Diagnostics)
	}
}

func TestHandleTranslateRejectsInvalidPayload(t *testing.T) {
	t.Parallel()

	translator := &stubTranslator{name: "stub"}
	server := newTestServer(t, translator)

	rec := postTranslate(t, server, `{"items": []}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if translator.calls != 0 {
		t.Fatalf("translator must not run on invalid payload")
	}
}

func TestHandleTranslateUnknownTranslator(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &stubTranslator{name: "stub"})
	rec := postTranslate(t, server, `{
		"translator": "missing",
		"source_language": "en",
		"items": [{"text": "Hello", "target_language": "de"}]
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown translator, got %d", rec.Code)
	}
}

func TestHandleRunsWithoutHistoryStore(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &stubTranslator{name: "stub"})
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil)
	rec := httptest.NewRecorder()
	if err := server.handleRuns(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without history store, got %d", rec.Code)
	}
}

func TestParsePositiveInt(t *testing.T) {
	t.Parallel()

	if got, err := parsePositiveInt("", 20, 1, 200); err != nil || got != 20 {
		t.Fatalf("unexpected default: %d %v", got, err)
	}
	if _, err := parsePositiveInt("abc", 20, 1, 200); err == nil {
		t.Fatalf("expected integer error")
	}
	if _, err := parsePositiveInt("500", 20, 1, 200); err == nil {
		t.Fatalf("expected range error")
	}
}
