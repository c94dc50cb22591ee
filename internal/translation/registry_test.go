package translation

import (
	"context"
	"strings"
	"testing"
)

type noopTranslator struct{ name string }

func (n *noopTranslator) Translate(context.Context, *Session) error { return nil }
func (n *noopTranslator) Name() string                              { return n.name }

func TestRegistryResolvesByNameAndDefault(t *testing.T) {
	t.Parallel()

	registry := NewRegistry("")
	if registry.DefaultTranslator() != DefaultTranslatorName {
		t.Fatalf("unexpected default: %q", registry.DefaultTranslator())
	}

	if err := registry.Register(&noopTranslator{name: "Youdao"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	translator, err := registry.Translator("")
	if err != nil {
		t.Fatalf("resolve default: %v", err)
	}
	if translator.Name() != "Youdao" {
		t.Fatalf("unexpected translator: %q", translator.Name())
	}

	if _, err := registry.Translator("missing"); err == nil || !strings.Contains(err.Error(), "youdao") {
		t.Fatalf("expected unknown-translator error listing available names, got %v", err)
	}
}

func TestRegistryRejectsNilAndUnnamed(t *testing.T) {
	t.Parallel()

	registry := NewRegistry("youdao")
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil translator")
	}
	if err := registry.Register(&noopTranslator{name: "  "}); err == nil {
		t.Fatalf("expected error for unnamed translator")
	}
}
