package in

import (
	"context"

	"github.com/bnema/dbs3/internal/domain"
)

// HistoryService exposes recorded runs.
type HistoryService interface {
	Recent(ctx context.Context, limit int) ([]domain.BackupRun, error)
}
