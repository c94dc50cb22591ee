package translation

import (
	"strings"
	"sync"
)

// Match is one translation result appended to an item. Matches are immutable
// once appended; consumers rank them by Rating.
type Match struct {
	Translator string  `json:"translator"`
	Text       string  `json:"text"`
	Rating     float64 `json:"rating"`
}

// Item is a single source string queued for translation. TargetCulture is a
// BCP 47 tag; an empty tag resolves to the session's neutral language.
type Item struct {
	Key           string  `json:"key,omitempty"`
	Source        string  `json:"source"`
	TargetCulture string  `json:"target_culture,omitempty"`
	Matches       []Match `json:"matches,omitempty"`
}

// Session is one user-initiated translation run. It owns the ordered item
// collection, the neutral/source language, and a diagnostic message sink.
// Item matches are only ever appended through Dispatch, which stands in for
// the host's coordinating thread.
type Session struct {
	SourceLanguage string
	Items          []*Item

	dispatch func(func())

	mu       sync.Mutex
	messages []string
}

func NewSession(sourceLanguage string, items []*Item) *Session {
	return &Session{
		SourceLanguage: strings.TrimSpace(sourceLanguage),
		Items:          items,
	}
}

// SetDispatcher routes result writes through the given function. Without a
// dispatcher, Dispatch runs the callback inline.
func (s *Session) SetDispatcher(dispatch func(func())) {
	if s == nil {
		return
	}
	s.dispatch = dispatch
}

// Dispatch runs fn on the session's coordinating context. All item mutations
// go through here so a UI or other consumer observing the items never races
// the translator.
func (s *Session) Dispatch(fn func()) {
	if s == nil || fn == nil {
		return
	}
	if s.dispatch != nil {
		s.dispatch(fn)
		return
	}
	fn()
}

// AddMessage appends one diagnostic message. Safe for concurrent use.
func (s *Session) AddMessage(message string) {
	if s == nil {
		return
	}
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, trimmed)
}

// Messages returns a copy of the diagnostic messages collected so far.
func (s *Session) Messages() []string {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

// MatchCount reports the total number of matches applied across all items.
func (s *Session) MatchCount() int {
	if s == nil {
		return 0
	}
	count := 0
	for _, item := range s.Items {
		if item != nil {
			count += len(item.Matches)
		}
	}
	return count
}
