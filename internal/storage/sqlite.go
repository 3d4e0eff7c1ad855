// Package storage persists scan history to SQLite so runs can be compared
// over time.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/bws82/biasclear/internal/model"
)

// SQLiteStorage implements scan-history persistence using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// Run is one stored scan run.
type Run struct {
	StartedAt    time.Time
	Domain       model.Domain
	ID           int64
	TotalFiles   int
	FlaggedFiles int
	Threshold    int
	AvgScore     float64
}

// FileResult is one stored per-file outcome.
type FileResult struct {
	File       string
	RunID      int64
	Score      float64
	MatchCount int
	Flagged    bool
}

// NewSQLiteStorage creates a new SQLite storage instance at dbPath.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath must not be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Migrate creates the schema if needed.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS scan_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TIMESTAMP NOT NULL,
			domain TEXT NOT NULL,
			threshold INTEGER NOT NULL,
			total_files INTEGER NOT NULL,
			flagged_files INTEGER NOT NULL,
			avg_score REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS scan_results (
			run_id INTEGER NOT NULL REFERENCES scan_runs(id) ON DELETE CASCADE,
			file TEXT NOT NULL,
			score REAL NOT NULL,
			flagged INTEGER NOT NULL,
			match_count INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_results_run ON scan_results(run_id)`,
	}

	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

// SaveReport stores a batch report as one run plus its per-file results and
// returns the run id.
func (s *SQLiteStorage) SaveReport(ctx context.Context, startedAt time.Time, report *model.BatchReport) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO scan_runs (started_at, domain, threshold, total_files, flagged_files, avg_score)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		startedAt.UTC(), string(report.Domain), report.Threshold,
		report.TotalFiles, report.FlaggedFiles, report.AvgScore)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	for _, r := range report.Results {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO scan_results (run_id, file, score, flagged, match_count)
			 VALUES (?, ?, ?, ?, ?)`,
			runID, r.File, r.Score, r.BiasDetected, r.FlagCount); err != nil {
			return 0, fmt.Errorf("failed to insert result for %s: %w", r.File, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, domain, threshold, total_files, flagged_files, avg_score
		 FROM scan_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var dom string
		if err := rows.Scan(&r.ID, &r.StartedAt, &dom, &r.Threshold,
			&r.TotalFiles, &r.FlaggedFiles, &r.AvgScore); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		r.Domain = model.Domain(dom)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// GetRunResults returns the per-file outcomes of one run in insertion order.
func (s *SQLiteStorage) GetRunResults(ctx context.Context, runID int64) ([]FileResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, file, score, flagged, match_count
		 FROM scan_results WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []FileResult
	for rows.Next() {
		var r FileResult
		if err := rows.Scan(&r.RunID, &r.File, &r.Score, &r.Flagged, &r.MatchCount); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate results: %w", err)
	}
	return results, nil
}
