// Package cron runs backups on preset schedules.
package cron

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/dbs3/internal/domain"
)

// Scheduler runs recurring jobs based on backup schedules.
type Scheduler struct {
	entries map[string]*entry
	mu      sync.RWMutex
	stopCh  chan struct{}
	started atomic.Bool
	slots   chan struct{}
	maxJobs int
	tick    time.Duration
	log     zerowrap.Logger
	nowFn   func() time.Time
}

type entry struct {
	id       string
	name     string
	schedule domain.CronSchedule
	job      func(ctx context.Context) error
	lastRun  time.Time
	nextRun  time.Time
	running  atomic.Bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithMaxJobs bounds how many jobs may run at the same time.
func WithMaxJobs(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.maxJobs = n
		}
	}
}

// NewScheduler creates a scheduler instance. Jobs run one at a time unless
// WithMaxJobs says otherwise.
func NewScheduler(log zerowrap.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		entries: make(map[string]*entry),
		stopCh:  make(chan struct{}),
		maxJobs: 1,
		tick:    time.Minute,
		log:     log,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.slots = make(chan struct{}, s.maxJobs)
	return s
}

// Add registers a new scheduled job.
func (s *Scheduler) Add(id, name string, sched domain.CronSchedule, job func(ctx context.Context) error) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	if job == nil {
		return fmt.Errorf("job is required")
	}

	nextRun, err := calculateNextRun(s.nowFn(), sched)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[id]; exists {
		return fmt.Errorf("schedule %q already exists", id)
	}

	s.entries[id] = &entry{
		id:       id,
		name:     name,
		schedule: sched,
		job:      job,
		nextRun:  nextRun,
	}

	return nil
}

// Start begins the scheduler loop. It does nothing once stopped or when ctx
// is already done.
func (s *Scheduler) Start(ctx context.Context) {
	select {
	case <-s.stopCh:
		return
	case <-ctx.Done():
		return
	default:
	}
	if !s.started.CompareAndSwap(false, true) {
		return
	}

	ticker := time.NewTicker(s.tick)
	go func() {
		defer ticker.Stop()
		defer s.started.Store(false)
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			case <-ticker.C:
				s.runDue(ctx)
			}
		}
	}()
}

// Run starts the loop and blocks until ctx is done or Stop is called.
func (s *Scheduler) Run(ctx context.Context) {
	s.Start(ctx)
	select {
	case <-ctx.Done():
	case <-s.stopCh:
	}
}

// Stop stops the scheduler loop.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}
}

// List returns current scheduler entries ordered by ID.
func (s *Scheduler) List() []domain.CronEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.CronEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, domain.CronEntry{
			ID:       e.id,
			Name:     e.name,
			Schedule: e.schedule,
			LastRun:  e.lastRun,
			NextRun:  e.nextRun,
			Running:  e.running.Load(),
		})
	}
	slices.SortFunc(entries, func(a, b domain.CronEntry) int {
		return strings.Compare(a.ID, b.ID)
	})

	return entries
}

// RunNow runs a registered job immediately and waits for it. The run takes
// one of the WithMaxJobs slots like a due job does.
func (s *Scheduler) RunNow(ctx context.Context, id string) error {
	e := s.getEntry(id)
	if e == nil {
		return fmt.Errorf("schedule %q: %w", id, domain.ErrScheduleNotFound)
	}
	if e.running.Load() {
		return fmt.Errorf("schedule %q: %w", id, domain.ErrJobRunning)
	}

	select {
	case s.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-s.slots }()

	return s.executeEntry(ctx, e)
}

func (s *Scheduler) runDue(ctx context.Context) {
	now := s.nowFn()
	for _, e := range s.snapshotEntries() {
		if now.Before(s.nextRunOf(e)) || e.running.Load() {
			continue
		}

		go func() {
			select {
			case s.slots <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-s.slots }()

			if err := s.executeEntry(ctx, e); err != nil {
				s.log.Warn().Err(err).Str("schedule_id", e.id).Msg("scheduled job failed")
			}
		}()
	}
}

func (s *Scheduler) executeEntry(ctx context.Context, e *entry) (err error) {
	if !e.running.CompareAndSwap(false, true) {
		return fmt.Errorf("schedule %q: %w", e.id, domain.ErrJobRunning)
	}
	defer e.running.Store(false)

	started := s.nowFn()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("schedule %q panic: %v", e.id, r)
		}

		// Next run is computed from when the job finished so a long run
		// does not fire again immediately.
		nextRun, nextErr := calculateNextRun(s.nowFn(), e.schedule)
		s.mu.Lock()
		e.lastRun = started
		if nextErr == nil {
			e.nextRun = nextRun
		}
		s.mu.Unlock()
		if err == nil {
			err = nextErr
		}
	}()

	s.log.Info().Str("schedule_id", e.id).Str("name", e.name).Msg("running scheduled job")
	return e.job(ctx)
}

func (s *Scheduler) getEntry(id string) *entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[id]
}

func (s *Scheduler) nextRunOf(e *entry) time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return e.nextRun
}

func (s *Scheduler) snapshotEntries() []*entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	return entries
}

// ParsePreset validates a preset name from configuration.
func ParsePreset(name string) (domain.BackupSchedule, error) {
	preset := domain.BackupSchedule(strings.ToLower(strings.TrimSpace(name)))
	if _, err := calculateNextRun(time.Time{}, domain.CronSchedule{Preset: preset}); err != nil {
		return "", err
	}
	return preset, nil
}

func calculateNextRun(now time.Time, schedule domain.CronSchedule) (time.Time, error) {
	now = now.UTC()

	switch schedule.Preset {
	case domain.ScheduleHourly:
		next := now.Truncate(time.Hour)
		if !next.After(now) {
			next = next.Add(time.Hour)
		}
		return next, nil
	case domain.ScheduleDaily:
		next := time.Date(now.Year(), now.Month(), now.Day(), 2, 0, 0, 0, time.UTC)
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		return next, nil
	case domain.ScheduleWeekly:
		daysUntilSunday := (7 - int(now.Weekday())) % 7
		next := time.Date(now.Year(), now.Month(), now.Day(), 3, 0, 0, 0, time.UTC).AddDate(0, 0, daysUntilSunday)
		if !next.After(now) {
			next = next.AddDate(0, 0, 7)
		}
		return next, nil
	case domain.ScheduleMonthly:
		next := time.Date(now.Year(), now.Month(), 1, 4, 0, 0, 0, time.UTC)
		if !next.After(now) {
			next = next.AddDate(0, 1, 0)
		}
		return next, nil
	default:
		return time.Time{}, fmt.Errorf("unsupported schedule preset: %q", schedule.Preset)
	}
}
