package db

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// RunRecord is one completed translation run. An audit log, not a
// translation cache: records are never consulted before calling the
// provider.
type RunRecord struct {
	RunID          int64     `json:"run_id"`
	Translator     string    `json:"translator"`
	Trigger        string    `json:"trigger"`
	SourceLanguage string    `json:"source_language"`
	ItemCount      int       `json:"item_count"`
	MatchCount     int       `json:"match_count"`
	Diagnostics    []string  `json:"diagnostics,omitempty"`
	DurationMS     int64     `json:"duration_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

func (p *Pool) EnsureSchema(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS translation_runs (
	run_id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	translator      TEXT NOT NULL,
	trigger_source  TEXT NOT NULL,
	source_language TEXT NOT NULL DEFAULT '',
	item_count      INTEGER NOT NULL,
	match_count     INTEGER NOT NULL,
	diagnostics     TEXT NOT NULL DEFAULT '',
	duration_ms     BIGINT NOT NULL DEFAULT 0,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)
`
	if err := p.exec(ctx, q); err != nil {
		return fmt.Errorf("ensure translation_runs schema: %w", err)
	}
	return nil
}

func (p *Pool) InsertRun(ctx context.Context, record RunRecord) (int64, error) {
	const q = `
INSERT INTO translation_runs (
	translator,
	trigger_source,
	source_language,
	item_count,
	match_count,
	diagnostics,
	duration_ms
)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING run_id
`

	var runID int64
	row := p.queryRow(
		ctx,
		q,
		record.Translator,
		record.Trigger,
		record.SourceLanguage,
		record.ItemCount,
		record.MatchCount,
		strings.Join(record.Diagnostics, "\n"),
		record.DurationMS,
	)
	if err := row.Scan(&runID); err != nil {
		return 0, fmt.Errorf("insert translation run: %w", err)
	}
	return runID, nil
}

func (p *Pool) ListRecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	const q = `
SELECT
	run_id,
	translator,
	trigger_source,
	source_language,
	item_count,
	match_count,
	diagnostics,
	duration_ms,
	created_at
FROM translation_runs
ORDER BY created_at DESC, run_id DESC
LIMIT $1
`

	rows, err := p.query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query translation runs: %w", err)
	}
	defer rows.Close()

	records := make([]RunRecord, 0, limit)
	for rows.Next() {
		var (
			record      RunRecord
			diagnostics string
		)
		if err := rows.Scan(
			&record.RunID,
			&record.Translator,
			&record.Trigger,
			&record.SourceLanguage,
			&record.ItemCount,
			&record.MatchCount,
			&diagnostics,
			&record.DurationMS,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan translation run: %w", err)
		}
		if diagnostics != "" {
			record.Diagnostics = strings.Split(diagnostics, "\n")
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate translation runs: %w", err)
	}
	return records, nil
}
