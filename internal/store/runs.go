package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Run is one completed analysis, summarized. The enriched table itself
// is never persisted; only this summary row is.
type Run struct {
	ID           string
	StartedAt    time.Time
	Keywords     []string
	Vacancies    int
	MinYear      int
	MaxYear      int
	MeanSalary   string // decimal string, reference currency
	MedianSalary string
	RatesSource  string // live | fallback
}

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS runs (
  id TEXT PRIMARY KEY,
  started_at TEXT NOT NULL,
  keywords TEXT NOT NULL DEFAULT '[]',
  vacancies INTEGER NOT NULL DEFAULT 0,
  min_year INTEGER NOT NULL DEFAULT 0,
  max_year INTEGER NOT NULL DEFAULT 0,
  mean_salary TEXT NOT NULL DEFAULT '',
  median_salary TEXT NOT NULL DEFAULT '',
  rates_source TEXT NOT NULL DEFAULT ''
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

func InsertRun(ctx context.Context, db *sql.DB, r Run) error {
	kwJSON, _ := json.Marshal(r.Keywords)
	_, err := db.ExecContext(ctx, `
INSERT INTO runs (id, started_at, keywords, vacancies, min_year, max_year, mean_salary, median_salary, rates_source)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		r.ID,
		r.StartedAt.UTC().Format(time.RFC3339),
		string(kwJSON),
		r.Vacancies,
		r.MinYear,
		r.MaxYear,
		r.MeanSalary,
		r.MedianSalary,
		r.RatesSource,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func ListRuns(ctx context.Context, db *sql.DB, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.QueryContext(ctx, `
SELECT id, started_at, keywords, vacancies, min_year, max_year, mean_salary, median_salary, rates_source
FROM runs
ORDER BY started_at DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var startedStr, kwJSON string
		if err := rows.Scan(
			&r.ID,
			&startedStr,
			&kwJSON,
			&r.Vacancies,
			&r.MinYear,
			&r.MaxYear,
			&r.MeanSalary,
			&r.MedianSalary,
			&r.RatesSource,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(kwJSON), &r.Keywords)
		r.StartedAt, _ = time.Parse(time.RFC3339, startedStr)
		out = append(out, r)
	}
	return out, rows.Err()
}
