// Package status implements the HTTP status API served next to the scheduler.
// Every route is read-only except the on-demand run of a scheduled job.
package status

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/bnema/zerowrap"
	"github.com/labstack/echo/v4"

	"github.com/bnema/dbs3/internal/adapters/dto"
	"github.com/bnema/dbs3/internal/boundaries/in"
	"github.com/bnema/dbs3/internal/domain"
	"github.com/bnema/dbs3/pkg/version"
)

// maxRunsLimit caps /v1/runs?limit=.
const maxRunsLimit = 500

// Handler serves scheduler, backup and history state as JSON.
type Handler struct {
	schedules in.ScheduleService
	backups   in.BackupService
	history   in.HistoryService
	health    in.HealthService
	log       zerowrap.Logger
}

// NewHandler creates the status handler. health may be nil.
func NewHandler(
	schedules in.ScheduleService,
	backups in.BackupService,
	history in.HistoryService,
	health in.HealthService,
	log zerowrap.Logger,
) *Handler {
	return &Handler{
		schedules: schedules,
		backups:   backups,
		history:   history,
		health:    health,
		log:       log,
	}
}

// RegisterRoutes registers the status routes on e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.handleHealthz)
	e.GET("/v1/health", h.handleHealth)
	e.GET("/v1/schedules", h.handleSchedules)
	e.POST("/v1/schedules/:id/run", h.handleRunSchedule)
	e.GET("/v1/backups", h.handleBackups)
	e.GET("/v1/runs", h.handleRuns)
}

func (h *Handler) handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok", Version: version.Version()})
}

func (h *Handler) handleHealth(c echo.Context) error {
	if h.health == nil {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "health checks not configured"})
	}

	checks := h.health.CheckAll(c.Request().Context())
	resp := dto.HealthResponse{Status: "ok", Checks: checks}
	code := http.StatusOK
	for _, check := range checks {
		if !check.OK {
			resp.Status = "degraded"
			code = http.StatusServiceUnavailable
			break
		}
	}
	return c.JSON(code, resp)
}

func (h *Handler) handleSchedules(c echo.Context) error {
	entries := h.schedules.List()
	resp := make([]dto.ScheduleEntry, 0, len(entries))
	for _, entry := range entries {
		item := dto.ScheduleEntry{
			ID:      entry.ID,
			Name:    entry.Name,
			Preset:  string(entry.Schedule.Preset),
			NextRun: entry.NextRun.UTC().Format(http.TimeFormat),
			Running: entry.Running,
		}
		if !entry.LastRun.IsZero() {
			item.LastRun = entry.LastRun.UTC().Format(http.TimeFormat)
		}
		resp = append(resp, item)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleRunSchedule(c echo.Context) error {
	id := c.Param("id")
	ctx := zerowrap.CtxWithFields(c.Request().Context(), map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "http",
		zerowrap.FieldHandler: "status",
		zerowrap.FieldAction:  "RunSchedule",
		"schedule_id":         id,
	})
	log := zerowrap.FromCtx(ctx)

	// A client that hangs up must not cut an upload short.
	err := h.schedules.RunNow(context.WithoutCancel(ctx), id)
	switch {
	case err == nil:
		log.Info().Msg("on-demand run completed")
		return c.JSON(http.StatusOK, dto.RunResponse{ID: id, Status: "completed"})
	case errors.Is(err, domain.ErrScheduleNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrJobRunning):
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	default:
		log.Warn().Err(err).Msg("on-demand run failed")
		return c.JSON(http.StatusBadGateway, dto.RunResponse{ID: id, Status: "failed", Error: err.Error()})
	}
}

func (h *Handler) handleBackups(c echo.Context) error {
	ctx := zerowrap.CtxWithFields(c.Request().Context(), map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "http",
		zerowrap.FieldHandler: "status",
		zerowrap.FieldAction:  "ListBackups",
	})
	log := zerowrap.FromCtx(ctx)

	rows, err := h.backups.ListBackups(ctx, c.QueryParam("db"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidConfig) {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		}
		log.Warn().Err(err).Msg("failed to list backups")
		return c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "failed to list backups"})
	}
	if rows == nil {
		rows = []domain.BackupRow{}
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) handleRuns(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "limit must be a positive integer"})
		}
		limit = min(n, maxRunsLimit)
	}

	runs, err := h.history.Recent(c.Request().Context(), limit)
	if err != nil {
		h.log.Warn().Err(err).Msg("failed to read run history")
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to read run history"})
	}
	if runs == nil {
		runs = []domain.BackupRun{}
	}
	return c.JSON(http.StatusOK, runs)
}
