// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/bnema/dbs3/internal/domain"
)

// BackupService defines backup orchestration use cases.
type BackupService interface {
	RunBackup(ctx context.Context, opts domain.BackupOptions) (*domain.BackupResult, error)
	Prune(ctx context.Context, opts domain.PruneOptions) (*domain.PruneReport, error)
	ListBackups(ctx context.Context, databaseName string) ([]domain.BackupRow, error)
}

// RestoreService defines the restore use case.
type RestoreService interface {
	// Restore runs the restore pipeline. Aborts return an error matching
	// domain.IsAbort alongside a result in the aborted state.
	Restore(ctx context.Context, opts domain.RestoreOptions) (*domain.RestoreResult, error)
}
