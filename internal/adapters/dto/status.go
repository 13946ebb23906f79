package dto

import "github.com/bnema/dbs3/internal/domain"

// StatusResponse is returned by the liveness endpoint.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ScheduleEntry represents one scheduled backup job.
type ScheduleEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Preset  string `json:"preset"`
	LastRun string `json:"last_run,omitempty"`
	NextRun string `json:"next_run"`
	Running bool   `json:"running"`
}

// HealthResponse aggregates the doctor checks.
type HealthResponse struct {
	Status string               `json:"status"`
	Checks []domain.HealthCheck `json:"checks"`
}

// RunResponse reports an on-demand run of a scheduled job.
type RunResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
