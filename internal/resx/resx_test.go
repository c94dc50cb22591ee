package resx

import "testing"

const sampleResx = `<?xml version="1.0" encoding="utf-8"?>
<root>
  <resheader name="resmimetype">
    <value>text/microsoft-resx</value>
  </resheader>
  <data name="Greeting" xml:space="preserve">
    <value>Hello</value>
    <comment>shown on startup</comment>
  </data>
  <data name="Farewell" xml:space="preserve">
    <value>Goodbye</value>
  </data>
  <data name="Empty" xml:space="preserve">
    <value></value>
  </data>
</root>`

func TestParseReadsDataEntries(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(sampleResx))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(doc.Entries))
	}

	greeting, ok := doc.Get("Greeting")
	if !ok || greeting.Value != "Hello" || greeting.Comment != "shown on startup" {
		t.Fatalf("unexpected entry: %+v", greeting)
	}
	if _, ok := doc.Get("Missing"); ok {
		t.Fatalf("did not expect entry for unknown name")
	}
}

func TestMissingInSkipsTranslatedAndEmptyEntries(t *testing.T) {
	t.Parallel()

	neutral, err := Parse([]byte(sampleResx))
	if err != nil {
		t.Fatalf("parse neutral: %v", err)
	}

	target := &Document{}
	target.Set("Greeting", "Hallo")

	missing := neutral.MissingIn(target)
	if len(missing) != 1 || missing[0].Name != "Farewell" {
		t.Fatalf("unexpected missing entries: %+v", missing)
	}

	// A nil target leaves every non-empty entry missing.
	missing = neutral.MissingIn(nil)
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing entries against nil target, got %d", len(missing))
	}
}

func TestEncodeRoundTripsWithEscaping(t *testing.T) {
	t.Parallel()

	doc := &Document{}
	doc.Set("Ampersand", "Fish & Chips <hot>")
	doc.Set("Chinese", "你好，世界")

	encoded, err := doc.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	parsed, err := Parse(encoded)
	if err != nil {
		t.Fatalf("reparse encoded document: %v", err)
	}
	value, ok := parsed.Get("Ampersand")
	if !ok || value.Value != "Fish & Chips <hot>" {
		t.Fatalf("unexpected round-trip value: %+v", value)
	}
	if value, ok := parsed.Get("Chinese"); !ok || value.Value != "你好，世界" {
		t.Fatalf("unexpected unicode round-trip: %+v", value)
	}
}

func TestSetUpdatesInPlace(t *testing.T) {
	t.Parallel()

	doc := &Document{}
	doc.Set("Key", "old")
	doc.Set("Key", "new")
	if len(doc.Entries) != 1 || doc.Entries[0].Value != "new" {
		t.Fatalf("unexpected entries: %+v", doc.Entries)
	}
}

func TestSortByName(t *testing.T) {
	t.Parallel()

	doc := &Document{}
	doc.Set("Zebra", "z")
	doc.Set("Apple", "a")
	doc.SortByName()
	if doc.Entries[0].Name != "Apple" {
		t.Fatalf("expected sorted entries, got %+v", doc.Entries)
	}
}
