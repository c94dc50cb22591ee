package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BobinYang/ResXResourceManager/internal/cli"
	"github.com/BobinYang/ResXResourceManager/internal/config"
	"github.com/BobinYang/ResXResourceManager/internal/db"
)

func runHistory(args []string) int {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	limit := fs.Int("limit", 20, "Maximum number of runs to list")
	timeout := fs.Duration("timeout", 10*time.Second, "Command timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *limit <= 0 || *limit > 200 {
		fmt.Fprintln(os.Stderr, "--limit must be between 1 and 200")
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
	if !cfg.HistoryEnabled() {
		fmt.Fprintln(os.Stderr, "Run history is not configured (set DATABASE_URL)")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to history store: %v\n", err)
		return 1
	}
	defer pool.Close()

	if err := pool.EnsureSchema(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to prepare history schema: %v\n", err)
		return 1
	}

	runs, err := pool.ListRecentRuns(ctx, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list runs: %v\n", err)
		return 1
	}
	if len(runs) == 0 {
		fmt.Println("No translation runs recorded yet.")
		return 0
	}

	for _, run := range runs {
		line := fmt.Sprintf(
			"%s  #%d  %s/%s  source=%s items=%d matches=%d duration=%dms",
			run.CreatedAt.Format(time.RFC3339),
			run.RunID,
			run.Translator,
			run.Trigger,
			run.SourceLanguage,
			run.ItemCount,
			run.MatchCount,
			run.DurationMS,
		)
		if len(run.Diagnostics) > 0 {
			line += "  diagnostics: " + strings.Join(run.Diagnostics, "; ")
		}
		fmt.Println(line)
	}
	return 0
}
