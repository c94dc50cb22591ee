package translation

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultTranslatorName is used when no translator is requested explicitly.
const DefaultTranslatorName = "youdao"

// Registry stores named translators and resolves a default.
type Registry struct {
	translators       map[string]Translator
	defaultTranslator string
}

func NewRegistry(defaultTranslator string) *Registry {
	normalizedDefault := normalizeTranslatorName(defaultTranslator)
	if normalizedDefault == "" {
		normalizedDefault = DefaultTranslatorName
	}
	return &Registry{
		translators:       make(map[string]Translator),
		defaultTranslator: normalizedDefault,
	}
}

// Register adds one translator.
func (r *Registry) Register(translator Translator) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}
	if translator == nil {
		return fmt.Errorf("translator is nil")
	}
	name := normalizeTranslatorName(translator.Name())
	if name == "" {
		return fmt.Errorf("translator name is required")
	}
	r.translators[name] = translator
	return nil
}

// Translator resolves a translator by name. Empty names use the configured
// default.
func (r *Registry) Translator(name string) (Translator, error) {
	if r == nil {
		return nil, fmt.Errorf("registry is nil")
	}
	if len(r.translators) == 0 {
		return nil, fmt.Errorf("no translators are registered")
	}

	resolved := normalizeTranslatorName(name)
	if resolved == "" {
		resolved = r.defaultTranslator
	}
	if translator, ok := r.translators[resolved]; ok {
		return translator, nil
	}
	return nil, fmt.Errorf("translator %q is not registered (available: %s)", resolved, strings.Join(r.TranslatorNames(), ", "))
}

func (r *Registry) DefaultTranslator() string {
	if r == nil {
		return ""
	}
	return r.defaultTranslator
}

func (r *Registry) TranslatorNames() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.translators))
	for name := range r.translators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeTranslatorName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
