package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/BobinYang/ResXResourceManager/internal/cli"
	"github.com/BobinYang/ResXResourceManager/internal/config"
	"github.com/BobinYang/ResXResourceManager/internal/db"
	"github.com/BobinYang/ResXResourceManager/internal/jobfile"
	"github.com/BobinYang/ResXResourceManager/internal/langdetect"
	"github.com/BobinYang/ResXResourceManager/internal/logging"
	"github.com/BobinYang/ResXResourceManager/internal/resx"
	"github.com/BobinYang/ResXResourceManager/internal/translation"
)

func runRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	jobPath := fs.String("job", "", "Path to a YAML job file")
	resxPath := fs.String("resx", "", "Path to the neutral .resx file")
	langs := fs.String("lang", "", "Comma-separated target language tags for --resx (for example: de,fr,zh-Hant)")
	source := fs.String("source", "", "Source language code; detected from the texts when blank")
	translatorName := fs.String("translator", "", "Translator name; the configured default when blank")
	timeout := fs.Duration("timeout", 2*time.Minute, "Command timeout")
	write := fs.Bool("write", false, "Write translations back to the per-language .resx files")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	job := strings.TrimSpace(*jobPath)
	neutralFile := strings.TrimSpace(*resxPath)
	if (job == "") == (neutralFile == "") {
		fmt.Fprintln(os.Stderr, "exactly one of --job or --resx is required")
		printRunUsage()
		return 2
	}

	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}

	registry, err := newRegistry(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build translator registry: %v\n", err)
		return 1
	}
	translator, err := registry.Translator(*translatorName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	var (
		items   []*translation.Item
		targets map[string]*resxTarget
	)
	if job != "" {
		loaded, loadErr := jobfile.Load(job)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to load job file: %v\n", loadErr)
			return 1
		}
		items = loaded.SessionItems()
		if strings.TrimSpace(*source) == "" {
			*source = loaded.SourceLanguage
		}
	} else {
		items, targets, err = collectResxItems(neutralFile, *langs)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	if len(items) == 0 {
		fmt.Println("Nothing to translate.")
		return 0
	}

	sourceLanguage := strings.TrimSpace(*source)
	if sourceLanguage == "" {
		texts := make([]string, 0, len(items))
		for _, item := range items {
			texts = append(texts, item.Source)
		}
		sourceLanguage = langdetect.DetectFromSamples(texts)
	}

	session := translation.NewSession(sourceLanguage, items)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	started := time.Now()
	if err := translator.Translate(ctx, session); err != nil {
		logger.Error().Err(err).Int("items", len(items)).Msg("translation run failed")
		fmt.Fprintf(os.Stderr, "Translation failed: %v\n", err)
		return 1
	}
	duration := time.Since(started)

	for _, message := range session.Messages() {
		fmt.Fprintln(os.Stderr, message)
	}

	if *write && targets != nil {
		if err := writeResxTargets(session, targets); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write .resx files: %v\n", err)
			return 1
		}
	} else {
		printMatches(session)
	}

	recordCLIRun(ctx, cfg, logger, translator.Name(), session, duration)

	fmt.Printf(
		"run translator=%s source=%s items=%d matches=%d duration=%s\n",
		translator.Name(),
		sourceLanguage,
		len(items),
		session.MatchCount(),
		duration.Round(time.Millisecond),
	)
	if session.MatchCount() == 0 && len(session.Messages()) > 0 {
		return 1
	}
	return 0
}

// resxTarget pairs one target language with its document and output path.
type resxTarget struct {
	lang string
	path string
	doc  *resx.Document
}

// collectResxItems loads the neutral document and builds one item per target
// language for each entry still missing in that language's file. Target files
// that do not exist yet start empty and are created on --write.
func collectResxItems(neutralPath, langsFlag string) ([]*translation.Item, map[string]*resxTarget, error) {
	langs := splitLangs(langsFlag)
	if len(langs) == 0 {
		return nil, nil, fmt.Errorf("--lang is required with --resx")
	}

	neutral, err := resx.Load(neutralPath)
	if err != nil {
		return nil, nil, err
	}

	items := make([]*translation.Item, 0, len(neutral.Entries)*len(langs))
	targets := make(map[string]*resxTarget, len(langs))
	for _, lang := range langs {
		target := &resxTarget{
			lang: lang,
			path: languagePath(neutralPath, lang),
			doc:  &resx.Document{},
		}
		if _, statErr := os.Stat(target.path); statErr == nil {
			target.doc, err = resx.Load(target.path)
			if err != nil {
				return nil, nil, err
			}
		}
		targets[lang] = target

		for _, entry := range neutral.MissingIn(target.doc) {
			items = append(items, &translation.Item{
				Key:           entry.Name,
				Source:        entry.Value,
				TargetCulture: lang,
			})
		}
	}
	return items, targets, nil
}

// languagePath inserts the language tag before the .resx extension, the
// satellite-file naming convention (Strings.resx -> Strings.de.resx).
func languagePath(neutralPath, lang string) string {
	ext := filepath.Ext(neutralPath)
	return strings.TrimSuffix(neutralPath, ext) + "." + lang + ext
}

func splitLangs(raw string) []string {
	parts := strings.Split(raw, ",")
	langs := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		lang := strings.TrimSpace(part)
		if lang == "" {
			continue
		}
		if _, exists := seen[lang]; exists {
			continue
		}
		seen[lang] = struct{}{}
		langs = append(langs, lang)
	}
	return langs
}

// writeResxTargets applies each item's first match to its language document
// and saves the file. Items without matches leave their entries untouched.
func writeResxTargets(session *translation.Session, targets map[string]*resxTarget) error {
	touched := make(map[string]struct{}, len(targets))
	for _, item := range session.Items {
		if len(item.Matches) == 0 {
			continue
		}
		target, ok := targets[item.TargetCulture]
		if !ok {
			continue
		}
		target.doc.Set(item.Key, item.Matches[0].Text)
		touched[item.TargetCulture] = struct{}{}
	}

	for lang := range touched {
		target := targets[lang]
		target.doc.SortByName()
		if err := target.doc.Save(target.path); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", target.path)
	}
	return nil
}

func printRunUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  resx-translate run --job <job.yaml> [--source en] [--translator youdao] [--env .env] [--timeout 2m]")
	fmt.Fprintln(os.Stderr, "  resx-translate run --resx <Strings.resx> --lang de,fr [--write] [--source en] [--env .env] [--timeout 2m]")
}

func printMatches(session *translation.Session) {
	for _, item := range session.Items {
		if len(item.Matches) == 0 {
			continue
		}
		label := item.Key
		if label == "" {
			label = item.Source
		}
		fmt.Printf("%s [%s] %s\n", label, item.TargetCulture, item.Matches[0].Text)
	}
}

// recordCLIRun appends the run to the history store when one is configured.
// History is best-effort; a failure never fails the run itself.
func recordCLIRun(ctx context.Context, cfg *config.Config, logger zerolog.Logger, translatorName string, session *translation.Session, duration time.Duration) {
	if !cfg.HistoryEnabled() {
		return
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Warn().Err(err).Msg("history store unreachable, run not recorded")
		return
	}
	defer pool.Close()

	if err := pool.EnsureSchema(ctx); err != nil {
		logger.Warn().Err(err).Msg("history schema check failed, run not recorded")
		return
	}

	record := db.RunRecord{
		Translator:     translatorName,
		Trigger:        "cli",
		SourceLanguage: session.SourceLanguage,
		ItemCount:      len(session.Items),
		MatchCount:     session.MatchCount(),
		Diagnostics:    session.Messages(),
		DurationMS:     duration.Milliseconds(),
	}
	if _, err := pool.InsertRun(ctx, record); err != nil {
		logger.Warn().Err(err).Msg("record translation run failed")
	}
}
