package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dbs3/internal/adapters/dto"
	inmocks "github.com/bnema/dbs3/internal/boundaries/in/mocks"
	"github.com/bnema/dbs3/internal/domain"
)

type handlerMocks struct {
	schedules *inmocks.MockScheduleService
	backups   *inmocks.MockBackupService
	history   *inmocks.MockHistoryService
	health    *inmocks.MockHealthService
}

func newTestServer(t *testing.T) (*handlerMocks, http.Handler) {
	t.Helper()
	m := &handlerMocks{
		schedules: inmocks.NewMockScheduleService(t),
		backups:   inmocks.NewMockBackupService(t),
		history:   inmocks.NewMockHistoryService(t),
		health:    inmocks.NewMockHealthService(t),
	}
	log := zerowrap.Default()
	h := NewHandler(m.schedules, m.backups, m.history, m.health, log)
	return m, NewEcho(h, log)
}

func get(t *testing.T, srv http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	_, srv := newTestServer(t)

	rec := get(t, srv, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","version":"dev"}`, rec.Body.String())
}

func TestHealth_Degraded(t *testing.T) {
	m, srv := newTestServer(t)
	m.health.EXPECT().CheckAll(mock.Anything).Return([]domain.HealthCheck{
		{Name: "storage", OK: true},
		{Name: "dump tool", OK: false, Detail: "mysqldump not found"},
	})

	rec := get(t, srv, "/v1/health")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Len(t, body.Checks, 2)
}

func TestSchedules(t *testing.T) {
	m, srv := newTestServer(t)
	next := time.Date(2024, 1, 22, 2, 0, 0, 0, time.UTC)
	m.schedules.EXPECT().List().Return([]domain.CronEntry{
		{ID: "backup-daily-app", Name: "backup app", Schedule: domain.CronSchedule{Preset: domain.ScheduleDaily}, NextRun: next},
	})

	rec := get(t, srv, "/v1/schedules")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []dto.ScheduleEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "daily", body[0].Preset)
	assert.Equal(t, "Mon, 22 Jan 2024 02:00:00 GMT", body[0].NextRun)
	assert.Empty(t, body[0].LastRun)
}

func TestRunSchedule(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "completed",
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"backup-daily-app","status":"completed"}`,
		},
		{
			name:       "unknown schedule",
			err:        fmt.Errorf("schedule %q: %w", "backup-daily-app", domain.ErrScheduleNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "already running",
			err:        fmt.Errorf("schedule %q: %w", "backup-daily-app", domain.ErrJobRunning),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "backup failed",
			err:        &domain.TransferError{Op: "put", Bucket: "b", Key: "db-backup-app.2024-01-21", Err: errors.New("timeout")},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"id":"backup-daily-app","status":"failed","error":"put s3://b/db-backup-app.2024-01-21: timeout"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, srv := newTestServer(t)
			m.schedules.EXPECT().RunNow(mock.Anything, "backup-daily-app").Return(tt.err)

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/schedules/backup-daily-app/run", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRunSchedule_OutlivesClientDisconnect(t *testing.T) {
	m, srv := newTestServer(t)
	m.schedules.EXPECT().RunNow(mock.Anything, "backup-daily-app").
		RunAndReturn(func(ctx context.Context, _ string) error {
			return ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/v1/schedules/backup-daily-app/run", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRunSchedule_RequiresPost(t *testing.T) {
	_, srv := newTestServer(t)

	rec := get(t, srv, "/v1/schedules/backup-daily-app/run")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestBackups(t *testing.T) {
	tests := []struct {
		name       string
		rows       []domain.BackupRow
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "rows",
			rows:       []domain.BackupRow{{Key: "db-backup-app.2024-01-21", HumanAge: "2h old", HumanSize: "1.0KB"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty list is an empty array",
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "missing database name",
			err:        domain.ErrInvalidConfig,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "storage failure",
			err:        &domain.TransferError{Op: "list", Bucket: "b", Err: errors.New("timeout")},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, srv := newTestServer(t)
			m.backups.EXPECT().ListBackups(mock.Anything, "app").Return(tt.rows, tt.err)

			rec := get(t, srv, "/v1/backups?db=app")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRuns(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		m, srv := newTestServer(t)
		m.history.EXPECT().Recent(mock.Anything, 0).Return([]domain.BackupRun{{ID: "r1", Status: domain.RunStatusCompleted}}, nil)

		rec := get(t, srv, "/v1/runs")

		require.Equal(t, http.StatusOK, rec.Code)
		var runs []domain.BackupRun
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
		assert.Equal(t, "r1", runs[0].ID)
	})

	t.Run("limit is capped", func(t *testing.T) {
		m, srv := newTestServer(t)
		m.history.EXPECT().Recent(mock.Anything, maxRunsLimit).Return(nil, nil)

		rec := get(t, srv, "/v1/runs?limit=100000")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("invalid limit", func(t *testing.T) {
		_, srv := newTestServer(t)

		rec := get(t, srv, "/v1/runs?limit=abc")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("history failure", func(t *testing.T) {
		m, srv := newTestServer(t)
		m.history.EXPECT().Recent(mock.Anything, 5).Return(nil, errors.New("disk I/O error"))

		rec := get(t, srv, "/v1/runs?limit=5")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
