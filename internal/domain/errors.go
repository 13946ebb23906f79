package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business-level errors that can occur in the system.
// These errors are used across layers to communicate specific failure conditions.
var (
	// Naming errors
	ErrMalformedKey = errors.New("malformed backup key")

	// Selection errors
	ErrNoBackupsFound   = errors.New("no backups found")
	ErrNoBackupSelected = errors.New("no backup selected")

	// Safety errors
	ErrNotDevelopmentEnvironment = errors.New("cannot run outside of development unless forced")
	ErrUserDeclined              = errors.New("aborted by user")

	// Config errors
	ErrInvalidConfig = errors.New("invalid configuration")

	// Schedule errors
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrJobRunning       = errors.New("scheduled job is running")
)

// IsAbort reports whether err is a clean, user-driven abort rather than a failure.
func IsAbort(err error) bool {
	return errors.Is(err, ErrUserDeclined) || errors.Is(err, ErrNoBackupSelected)
}

// TransferError wraps an object-storage failure.
type TransferError struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (e *TransferError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s s3://%s: %v", e.Op, e.Bucket, e.Err)
	}
	return fmt.Sprintf("%s s3://%s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }

// ProcessError wraps a failed dump or load process.
type ProcessError struct {
	Tool     string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with code %d: %s", e.Tool, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }
