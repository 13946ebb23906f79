package domain

import "time"

// RunKind distinguishes recorded operations.
type RunKind string

const (
	RunKindBackup  RunKind = "backup"
	RunKindRestore RunKind = "restore"
)

// RunStatus tracks run lifecycle state.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusAborted   RunStatus = "aborted"
	RunStatusFailed    RunStatus = "failed"
)

// BackupRun is one recorded backup or restore invocation.
type BackupRun struct {
	ID          string    `json:"id" yaml:"id"`
	Kind        RunKind   `json:"kind" yaml:"kind"`
	Database    string    `json:"database" yaml:"database"`
	Key         string    `json:"key" yaml:"key"`
	Status      RunStatus `json:"status" yaml:"status"`
	StartedAt   time.Time `json:"started_at" yaml:"started_at"`
	CompletedAt time.Time `json:"completed_at" yaml:"completed_at"`
	SizeBytes   int64     `json:"size_bytes" yaml:"size_bytes"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Duration is the wall time of the run, zero while it is still running.
func (r BackupRun) Duration() time.Duration {
	if r.CompletedAt.IsZero() {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}
