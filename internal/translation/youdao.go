package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BobinYang/ResXResourceManager/internal/globaltime"
)

const (
	// DefaultAPIURL is the provider's batch text translation endpoint, used
	// when no custom API URL is configured.
	DefaultAPIURL = "https://openapi.youdao.com/v2/api"

	// chunkSize is the provider's per-call item limit.
	chunkSize = 10

	successErrorCode = "0"
	signVersion      = "v3"
)

// YoudaoConfig holds the credential fields and tuning for one translator
// instance. Credentials are read-only during a run.
type YoudaoConfig struct {
	AppKey    string
	AppSecret string
	APIURL    string
	Ranking   float64
}

// YoudaoTranslator drives the provider's batched, signed translation call
// pattern: it groups session items by target locale, splits each group into
// chunks, signs and dispatches one call per chunk, and reconciles results
// back onto the originating items.
type YoudaoTranslator struct {
	cfg    YoudaoConfig
	sender Sender
	logger zerolog.Logger
}

func NewYoudaoTranslator(cfg YoudaoConfig, sender Sender, logger zerolog.Logger) *YoudaoTranslator {
	if cfg.Ranking <= 0 {
		cfg.Ranking = 1
	}
	if sender == nil {
		sender = NewHTTPSender(defaultSendTimeout)
	}
	return &YoudaoTranslator{
		cfg:    cfg,
		sender: sender,
		logger: logger.With().Str("translator", "youdao").Logger(),
	}
}

func (t *YoudaoTranslator) Name() string {
	return "youdao"
}

// Ranking is the confidence score stamped on every match this translator
// produces.
func (t *YoudaoTranslator) Ranking() float64 {
	return t.cfg.Ranking
}

// Translate runs one session to completion. Recoverable conditions (missing
// credentials, provider business errors) surface as session diagnostics and
// a nil return; only transport and decoding failures return an error.
// Cancellation is observed between groups and between chunks: an in-flight
// call completes and its results are still applied, and results applied
// before cancellation are never rolled back.
func (t *YoudaoTranslator) Translate(ctx context.Context, session *Session) error {
	if t == nil || session == nil || len(session.Items) == 0 {
		return nil
	}
	if strings.TrimSpace(t.cfg.AppKey) == "" || strings.TrimSpace(t.cfg.AppSecret) == "" {
		session.AddMessage("Youdao requires both an app key and an app secret.")
		return nil
	}

	from := MapLocale(session.SourceLanguage)

	for _, group := range groupByTargetCulture(session.Items) {
		if ctx.Err() != nil {
			return nil
		}

		targetCulture := group.culture
		if targetCulture == "" {
			// Entries without an explicit culture belong to the neutral
			// language group.
			targetCulture = session.SourceLanguage
		}
		to := MapLocale(targetCulture)

		remaining := group.items
		for len(remaining) > 0 {
			if ctx.Err() != nil {
				return nil
			}

			size := chunkSize
			if len(remaining) < size {
				size = len(remaining)
			}
			chunk := remaining[:size]
			remaining = remaining[size:]

			abort, err := t.translateChunk(ctx, session, chunk, from, to)
			if err != nil {
				return err
			}
			if abort {
				return nil
			}
		}
	}

	return nil
}

func (t *YoudaoTranslator) translateChunk(ctx context.Context, session *Session, chunk []*Item, from, to string) (bool, error) {
	// curtime and salt are signing inputs, generated fresh per chunk.
	millis := globaltime.UnixMilli()
	curtime := strconv.FormatInt(millis/1000, 10)
	salt := strconv.FormatInt(millis%1000, 10)

	var joined strings.Builder
	for _, item := range chunk {
		joined.WriteString(item.Source)
	}
	signature := Sign(t.cfg.AppKey, joined.String(), salt, curtime, t.cfg.AppSecret)

	params := make([]queryParam, 0, len(chunk)+8)
	params = append(params, queryParam{"curtime", curtime})
	for _, item := range chunk {
		params = append(params, queryParam{"q", item.Source})
	}
	params = append(params,
		queryParam{"from", from},
		queryParam{"to", to},
		queryParam{"signType", signVersion},
		queryParam{"appKey", t.cfg.AppKey},
		queryParam{"salt", salt},
		queryParam{"sign", signature},
		queryParam{"strict", "true"},
	)

	endpoint := strings.TrimSpace(t.cfg.APIURL)
	if endpoint == "" {
		endpoint = DefaultAPIURL
	}
	requestURL := endpoint + "?" + encodeQueryParams(params)

	body, err := t.sender.Send(ctx, requestURL)
	if err != nil {
		return false, fmt.Errorf("youdao request (%d items, to=%s): %w", len(chunk), to, err)
	}

	var resp providerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, fmt.Errorf("decode youdao response: %w", err)
	}

	if resp.ErrorCode != successErrorCode {
		message := fmt.Sprintf("Youdao translation failed: error %s (%s)", resp.ErrorCode, errorDescription(resp.ErrorCode))
		if len(resp.ErrorIndex) > 0 {
			message += ", failed rows: " + joinIndices(resp.ErrorIndex)
		}
		session.AddMessage(message)
		t.logger.Warn().
			Str("error_code", resp.ErrorCode).
			Ints("error_index", resp.ErrorIndex).
			Str("to", to).
			Msg("provider rejected translation chunk")
		return true, nil
	}

	if len(resp.TranslateResults) == 0 {
		return false, nil
	}

	// Results pair with chunk items by position; a shorter result list
	// truncates the pairing.
	results := resp.TranslateResults
	count := len(chunk)
	if len(results) < count {
		count = len(results)
	}

	translator := t.Name()
	ranking := t.cfg.Ranking
	session.Dispatch(func() {
		for i := 0; i < count; i++ {
			chunk[i].Matches = append(chunk[i].Matches, Match{
				Translator: translator,
				Text:       results[i].Translation,
				Rating:     ranking,
			})
		}
	})

	t.logger.Debug().
		Int("items", len(chunk)).
		Int("matches", count).
		Str("from", from).
		Str("to", to).
		Msg("translated chunk")
	return false, nil
}

// providerResponse is the parsed wire response, consumed immediately.
type providerResponse struct {
	ErrorCode        string            `json:"errorCode"`
	ErrorIndex       []int             `json:"errorIndex"`
	TranslateResults []translateResult `json:"translateResults"`
}

type translateResult struct {
	Query       string `json:"query"`
	Translation string `json:"translation"`
	Type        string `json:"type"`
}

type itemGroup struct {
	culture string
	items   []*Item
}

// groupByTargetCulture partitions items by normalized target culture. Group
// order and item order within a group follow the source collection, which is
// what keeps failure row indices meaningful.
func groupByTargetCulture(items []*Item) []itemGroup {
	groups := make([]itemGroup, 0, 4)
	index := make(map[string]int, 4)
	for _, item := range items {
		if item == nil {
			continue
		}
		key := normalizeLocaleTag(item.TargetCulture)
		position, seen := index[key]
		if !seen {
			position = len(groups)
			index[key] = position
			groups = append(groups, itemGroup{culture: item.TargetCulture})
		}
		groups[position].items = append(groups[position].items, item)
	}
	return groups
}

type queryParam struct {
	name  string
	value string
}

// encodeQueryParams preserves parameter order; url.Values.Encode sorts keys.
func encodeQueryParams(params []queryParam) string {
	var query strings.Builder
	for i, p := range params {
		if i > 0 {
			query.WriteByte('&')
		}
		query.WriteString(p.name)
		query.WriteByte('=')
		query.WriteString(url.QueryEscape(p.value))
	}
	return query.String()
}

func joinIndices(indices []int) string {
	parts := make([]string, 0, len(indices))
	for _, index := range indices {
		parts = append(parts, strconv.Itoa(index))
	}
	return strings.Join(parts, ",")
}
