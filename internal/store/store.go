// Package store persists semester ranges and per-date plan payloads in a
// local SQLite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kgplan/kgplan/internal/plan"
)

// ErrNotFound is returned when no row exists for the requested date.
var ErrNotFound = errors.New("not found")

const schema = `
CREATE TABLE IF NOT EXISTS semesters (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS plan_entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	plan_date TEXT NOT NULL UNIQUE,
	plan_data TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// Semester is a saved semester date range.
type Semester struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// EntryInfo is the bookkeeping metadata for a stored plan.
type EntryInfo struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Store wraps the plan database. Safe for concurrent use; SQLite access is
// serialized by the driver with a busy timeout.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. Parent directories are created as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	return open(path)
}

// OpenMemory opens an in-process database, used by tests.
func OpenMemory() (*Store, error) {
	return open(":memory:")
}

func open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Production-safe pragmas: WAL for concurrent readers, a busy timeout
	// instead of immediate SQLITE_BUSY errors.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSemester records a semester date range.
func (s *Store) SaveSemester(ctx context.Context, start, end time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO semesters (start_date, end_date, created_at) VALUES (?, ?, ?)`,
		start.Format(time.DateOnly), end.Format(time.DateOnly), now(),
	)
	if err != nil {
		return fmt.Errorf("save semester: %w", err)
	}
	return nil
}

// LatestSemester returns the most recently saved semester range.
// Returns ErrNotFound when none has been saved.
func (s *Store) LatestSemester(ctx context.Context) (Semester, error) {
	var startStr, endStr string
	err := s.db.QueryRowContext(ctx,
		`SELECT start_date, end_date FROM semesters ORDER BY id DESC LIMIT 1`,
	).Scan(&startStr, &endStr)
	if errors.Is(err, sql.ErrNoRows) {
		return Semester{}, ErrNotFound
	}
	if err != nil {
		return Semester{}, fmt.Errorf("load semester: %w", err)
	}

	start, err := time.Parse(time.DateOnly, startStr)
	if err != nil {
		return Semester{}, fmt.Errorf("parse semester start: %w", err)
	}
	end, err := time.Parse(time.DateOnly, endStr)
	if err != nil {
		return Semester{}, fmt.Errorf("parse semester end: %w", err)
	}
	return Semester{Start: start, End: end}, nil
}

// SavePlan inserts or updates the plan stored under planDate (YYYY-MM-DD).
func (s *Store) SavePlan(ctx context.Context, planDate string, data plan.Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	ts := now()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO plan_entries (plan_date, plan_data, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(plan_date) DO UPDATE SET
		   plan_data = excluded.plan_data, updated_at = excluded.updated_at`,
		planDate, string(payload), ts, ts,
	)
	if err != nil {
		return fmt.Errorf("save plan %s: %w", planDate, err)
	}
	return nil
}

// LoadPlan returns the plan stored under planDate.
// Returns ErrNotFound when no plan exists for that date.
func (s *Store) LoadPlan(ctx context.Context, planDate string) (plan.Data, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT plan_data FROM plan_entries WHERE plan_date = ?`, planDate,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load plan %s: %w", planDate, err)
	}

	var data plan.Data
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", planDate, err)
	}
	return data, nil
}

// ListPlanDates returns every stored plan date in ascending order.
func (s *Store) ListPlanDates(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT plan_date FROM plan_entries ORDER BY plan_date ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("list plans: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return dates, nil
}

// DeletePlan removes the plan stored under planDate. Reports whether a row
// was actually deleted.
func (s *Store) DeletePlan(ctx context.Context, planDate string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM plan_entries WHERE plan_date = ?`, planDate,
	)
	if err != nil {
		return false, fmt.Errorf("delete plan %s: %w", planDate, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete plan %s: %w", planDate, err)
	}
	return n > 0, nil
}

// PlanInfo returns the created/updated timestamps for a stored plan.
// Returns ErrNotFound when no plan exists for that date.
func (s *Store) PlanInfo(ctx context.Context, planDate string) (EntryInfo, error) {
	var info EntryInfo
	err := s.db.QueryRowContext(ctx,
		`SELECT created_at, updated_at FROM plan_entries WHERE plan_date = ?`, planDate,
	).Scan(&info.CreatedAt, &info.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return EntryInfo{}, ErrNotFound
	}
	if err != nil {
		return EntryInfo{}, fmt.Errorf("plan info %s: %w", planDate, err)
	}
	return info, nil
}

func now() string {
	return time.Now().Format("2006-01-02T15:04:05")
}
