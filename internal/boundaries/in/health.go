package in

import (
	"context"

	"github.com/bnema/dbs3/internal/domain"
)

// HealthService checks that the collaborators a backup depends on are usable.
type HealthService interface {
	// CheckAll runs every check; a failing check never stops the others.
	CheckAll(ctx context.Context) []domain.HealthCheck
}
