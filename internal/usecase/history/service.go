// Package history implements queries over recorded backup and restore runs.
package history

import (
	"context"

	"github.com/bnema/zerowrap"

	"github.com/bnema/dbs3/internal/boundaries/out"
	"github.com/bnema/dbs3/internal/domain"
)

// DefaultLimit caps Recent when the caller asks for no particular size.
const DefaultLimit = 20

// Service implements the HistoryService interface.
type Service struct {
	store out.HistoryStore
	log   zerowrap.Logger
}

// NewService creates a history service. A nil store behaves as an empty history.
func NewService(store out.HistoryStore, log zerowrap.Logger) *Service {
	return &Service{store: store, log: log}
}

// Recent returns the latest runs, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.BackupRun, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "RecentRuns",
	})
	log := zerowrap.FromCtx(ctx)

	if s.store == nil {
		return []domain.BackupRun{}, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	runs, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, log.WrapErr(err, "failed to list run history")
	}
	return runs, nil
}
