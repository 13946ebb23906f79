package out

import (
	"context"

	"github.com/bnema/dbs3/internal/domain"
)

// HistoryStore persists backup and restore runs.
type HistoryStore interface {
	// Record inserts run, or replaces the stored run with the same ID.
	Record(ctx context.Context, run domain.BackupRun) error

	// List returns the most recent runs first, at most limit of them.
	List(ctx context.Context, limit int) ([]domain.BackupRun, error)

	Close() error
}
