package in

import (
	"context"

	"github.com/bnema/dbs3/internal/domain"
)

// ScheduleService reports registered scheduled jobs and triggers them on demand.
type ScheduleService interface {
	List() []domain.CronEntry
	RunNow(ctx context.Context, id string) error
}
