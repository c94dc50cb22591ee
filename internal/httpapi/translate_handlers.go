package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/BobinYang/ResXResourceManager/internal/db"
	"github.com/BobinYang/ResXResourceManager/internal/langdetect"
	"github.com/BobinYang/ResXResourceManager/internal/payloadschema"
	"github.com/BobinYang/ResXResourceManager/internal/translation"
)

type translateResponseItem struct {
	Key            string              `json:"key,omitempty"`
	Text           string              `json:"text"`
	TargetLanguage string              `json:"target_language"`
	Matches        []translation.Match `json:"matches,omitempty"`
}

type translateResponse struct {
	SourceLanguage string                  `json:"source_language"`
	Translator     string                  `json:"translator"`
	Items          []translateResponseItem `json:"items"`
	Diagnostics    []string                `json:"diagnostics,omitempty"`
	MatchCount     int                     `json:"match_count"`
	DurationMS     int64                   `json:"duration_ms"`
}

func (s *Server) handleTranslate(c echo.Context) error {
	body, err := readRequestBody(c)
	if err != nil {
		return failValidation(c, map[string]string{"body": err.Error()})
	}

	request, err := payloadschema.ValidateTranslateRequest(body)
	if err != nil {
		return failValidation(c, map[string]string{"payload": err.Error()})
	}

	translator, err := s.registry.Translator(request.Translator)
	if err != nil {
		return failValidation(c, map[string]string{"translator": err.Error()})
	}

	sourceLanguage := strings.TrimSpace(request.SourceLanguage)
	if sourceLanguage == "" {
		texts := make([]string, 0, len(request.Items))
		for _, item := range request.Items {
			texts = append(texts, item.Text)
		}
		sourceLanguage = langdetect.DetectFromSamples(texts)
	}

	items := make([]*translation.Item, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, &translation.Item{
			Key:           strings.TrimSpace(item.Key),
			Source:        item.Text,
			TargetCulture: strings.TrimSpace(item.TargetLanguage),
		})
	}
	session := translation.NewSession(sourceLanguage, items)

	started := time.Now()
	if err := translator.Translate(c.Request().Context(), session); err != nil {
		s.logger.Error().Err(err).Int("items", len(items)).Msg("translation run failed")
		return fail(c, http.StatusBadGateway, "Translation provider call failed", nil)
	}
	duration := time.Since(started)

	s.recordRun(c, translator.Name(), session, duration)

	response := translateResponse{
		SourceLanguage: sourceLanguage,
		Translator:     translator.Name(),
		Items:          make([]translateResponseItem, 0, len(items)),
		Diagnostics:    session.Messages(),
		MatchCount:     session.MatchCount(),
		DurationMS:     duration.Milliseconds(),
	}
	for _, item := range items {
		response.Items = append(response.Items, translateResponseItem{
			Key:            item.Key,
			Text:           item.Source,
			TargetLanguage: item.TargetCulture,
			Matches:        item.Matches,
		})
	}
	return success(c, response)
}

func (s *Server) recordRun(c echo.Context, translatorName string, session *translation.Session, duration time.Duration) {
	if s.history == nil {
		return
	}

	record := db.RunRecord{
		Translator:     translatorName,
		Trigger:        "api",
		SourceLanguage: session.SourceLanguage,
		ItemCount:      len(session.Items),
		MatchCount:     session.MatchCount(),
		Diagnostics:    session.Messages(),
		DurationMS:     duration.Milliseconds(),
	}
	if _, err := s.history.InsertRun(c.Request().Context(), record); err != nil {
		s.logger.Error().Err(err).Msg("record translation run failed")
	}
}

func (s *Server) handleRuns(c echo.Context) error {
	if s.history == nil {
		return fail(c, http.StatusServiceUnavailable, "Run history is not configured", nil)
	}

	limit, err := parsePositiveInt(c.QueryParam("limit"), 20, 1, 200)
	if err != nil {
		return failValidation(c, map[string]string{"limit": err.Error()})
	}

	runs, err := s.history.ListRecentRuns(c.Request().Context(), limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("query run history failed")
		return internalError(c, "Failed to load run history")
	}
	return success(c, map[string]any{
		"items": runs,
		"limit": limit,
	})
}

func parsePositiveInt(raw string, defaultValue, minValue, maxValue int) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("must be an integer")
	}
	if value < minValue || value > maxValue {
		return 0, fmt.Errorf("must be between %d and %d", minValue, maxValue)
	}
	return value, nil
}
