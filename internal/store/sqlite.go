package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// timeFormat is fixed width so created_at sorts as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

// busyTimeoutMS is how long a writer waits on a locked database before
// SQLITE_BUSY. serve saves runs from concurrent requests.
const busyTimeoutMS = 5000

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) the database at dbPath. Use ":memory:"
// in tests.
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	// _pragma is applied to every pooled connection, unlike a one-off Exec.
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)", dbPath, busyTimeoutMS)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	// an in-memory database lives as long as its connection
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

func (s *SQLiteStore) SaveRun(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = NewRunID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	s.logger.Debug("sql", "op", "insert", "table", "runs", "id", run.ID)

	jobsJSON, err := json.Marshal(run.Jobs)
	if err != nil {
		return fmt.Errorf("marshal jobs: %w", err)
	}
	responseJSON, err := json.Marshal(run.Response)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, algorithm, time_quantum, process_count, avg_turn_around_time, avg_waiting_time, jobs, response, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Response.Algorithm, run.Response.TimeQuantum, len(run.Response.Details),
		run.Response.AverageTurnAroundTime, run.Response.AverageWaitingTime,
		string(jobsJSON), string(responseJSON), run.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*Run, error) {
	s.logger.Debug("sql", "op", "select", "table", "runs", "id", id)

	row := s.db.QueryRowContext(ctx,
		`SELECT id, jobs, response, created_at FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return run, err
}

func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	s.logger.Debug("sql", "op", "select", "table", "runs", "limit", limit)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, jobs, response, created_at FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var run Run
	var jobsJSON, responseJSON, createdAt string
	if err := sc.Scan(&run.ID, &jobsJSON, &responseJSON, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(jobsJSON), &run.Jobs); err != nil {
		return nil, fmt.Errorf("unmarshal jobs: %w", err)
	}
	if err := json.Unmarshal([]byte(responseJSON), &run.Response); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	t, err := time.Parse(timeFormat, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	run.CreatedAt = t
	return &run, nil
}
