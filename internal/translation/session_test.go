package translation

import "testing"

func TestSessionMessages(t *testing.T) {
	t.Parallel()

	session := NewSession("en", nil)
	session.AddMessage("  first  ")
	session.AddMessage("")
	session.AddMessage("second")

	messages := session.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %v", messages)
	}
	if messages[0] != "first" || messages[1] != "second" {
		t.Fatalf("unexpected messages: %v", messages)
	}

	messages[0] = "mutated"
	if session.Messages()[0] != "first" {
		t.Fatalf("Messages must return a copy")
	}
}

func TestSessionDispatchDefaultsToInline(t *testing.T) {
	t.Parallel()

	session := NewSession("en", nil)
	ran := false
	session.Dispatch(func() { ran = true })
	if !ran {
		t.Fatalf("expected inline dispatch without a dispatcher")
	}

	calls := 0
	session.SetDispatcher(func(fn func()) {
		calls++
		fn()
	})
	session.Dispatch(func() {})
	if calls != 1 {
		t.Fatalf("expected custom dispatcher to run, got %d calls", calls)
	}
}

func TestSessionMatchCount(t *testing.T) {
	t.Parallel()

	session := NewSession("en", []*Item{
		{Source: "a", Matches: []Match{{Text: "x"}, {Text: "y"}}},
		{Source: "b"},
		nil,
	})
	if got := session.MatchCount(); got != 2 {
		t.Fatalf("unexpected match count %d", got)
	}
}
