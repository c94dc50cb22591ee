package translation

import "context"

// Translator fills in machine translations for a whole session. Diagnostics
// for recoverable conditions go to the session; returned errors are fatal
// transport or decoding failures.
type Translator interface {
	Translate(ctx context.Context, session *Session) error
	Name() string
}
