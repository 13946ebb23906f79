package out

import (
	"context"

	"github.com/bnema/dbs3/internal/domain"
)

// Chooser lets the user pick one backup out of a list.
type Chooser interface {
	// PresentList returns the selected key, or ok=false when nothing was picked.
	PresentList(ctx context.Context, rows []domain.BackupRow) (key string, ok bool, err error)
}

// Confirmer asks a yes/no question.
type Confirmer interface {
	Ask(ctx context.Context, prompt string) (bool, error)
}
