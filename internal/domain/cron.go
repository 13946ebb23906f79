package domain

import "time"

// BackupSchedule names a preset recurrence.
type BackupSchedule string

const (
	ScheduleHourly  BackupSchedule = "hourly"
	ScheduleDaily   BackupSchedule = "daily"
	ScheduleWeekly  BackupSchedule = "weekly"
	ScheduleMonthly BackupSchedule = "monthly"
)

// CronSchedule represents a recurring schedule.
type CronSchedule struct {
	Preset BackupSchedule
}

// CronEntry represents a registered cron job.
type CronEntry struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Schedule CronSchedule `json:"schedule"`
	LastRun  time.Time    `json:"last_run"`
	NextRun  time.Time    `json:"next_run"`
	Running  bool         `json:"running"`
}
