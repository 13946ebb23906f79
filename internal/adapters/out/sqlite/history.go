// Package sqlite implements the run history store on an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/zerowrap"
	_ "modernc.org/sqlite"

	"github.com/bnema/dbs3/internal/domain"
)

// DBFilename is the default history file name inside the data directory.
const DBFilename = "history.db"

const schema = `
	CREATE TABLE IF NOT EXISTS backup_run (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		database_name TEXT NOT NULL,
		object_key TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		started_at TEXT NOT NULL,
		completed_at TEXT NOT NULL DEFAULT '',
		size_bytes INTEGER NOT NULL DEFAULT 0,
		error TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS backup_run_started_at ON backup_run (started_at);
`

// HistoryStore implements out.HistoryStore.
type HistoryStore struct {
	db  *sql.DB
	log zerowrap.Logger
}

// OpenPath opens (and bootstraps when needed) the history database at
// dbPath, creating its directory first.
func OpenPath(ctx context.Context, dbPath string, log zerowrap.Logger) (*HistoryStore, error) {
	if err := ensureDir(filepath.Dir(dbPath)); err != nil {
		return nil, fmt.Errorf("failed to ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history DB: %w", err)
	}
	// SQLite serialises writers; one connection avoids SQLITE_BUSY between them.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping history DB: %w", err)
	}
	if err := bootstrap(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to bootstrap history DB: %w", err)
	}

	log.Debug().Str("path", dbPath).Msg("history database ready")
	return &HistoryStore{db: db, log: log}, nil
}

func ensureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}
	return nil
}

func bootstrap(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, schema); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return tx.Commit()
}

// Record inserts run or replaces the stored row with the same ID.
func (s *HistoryStore) Record(ctx context.Context, run domain.BackupRun) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO backup_run (id, kind, database_name, object_key, status, started_at, completed_at, size_bytes, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			database_name = excluded.database_name,
			object_key = excluded.object_key,
			status = excluded.status,
			started_at = excluded.started_at,
			completed_at = excluded.completed_at,
			size_bytes = excluded.size_bytes,
			error = excluded.error`,
		run.ID, string(run.Kind), run.Database, run.Key, string(run.Status),
		formatTime(run.StartedAt), formatTime(run.CompletedAt), run.SizeBytes, run.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to record run %s: %w", run.ID, err)
	}
	return nil
}

// List returns at most limit runs, newest first. A limit <= 0 returns all.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]domain.BackupRun, error) {
	query := `SELECT id, kind, database_name, object_key, status, started_at, completed_at, size_bytes, error
		FROM backup_run ORDER BY started_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.BackupRun
	for rows.Next() {
		var (
			run                    domain.BackupRun
			kind, status           string
			startedAt, completedAt string
		)
		if err := rows.Scan(&run.ID, &kind, &run.Database, &run.Key, &status,
			&startedAt, &completedAt, &run.SizeBytes, &run.Error); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Kind = domain.RunKind(kind)
		run.Status = domain.RunStatus(status)
		if run.StartedAt, err = parseTime(startedAt); err != nil {
			return nil, err
		}
		if run.CompletedAt, err = parseTime(completedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close closes the database.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

// Times are stored as fixed-width UTC text so lexical order is chronological.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored time %q: %w", s, err)
	}
	return t, nil
}
