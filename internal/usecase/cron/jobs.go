package cron

import (
	"context"
	"fmt"

	"github.com/bnema/dbs3/internal/boundaries/in"
	"github.com/bnema/dbs3/internal/domain"
)

// JobID names the scheduled backup of one database.
func JobID(preset domain.BackupSchedule, databaseName string) string {
	return fmt.Sprintf("backup-%s-%s", preset, databaseName)
}

// RegisterBackups adds one backup job per database.
func RegisterBackups(s *Scheduler, svc in.BackupService, preset domain.BackupSchedule, databases []string, dailyRotation bool) error {
	if len(databases) == 0 {
		return fmt.Errorf("no databases to schedule")
	}

	for _, name := range databases {
		opts := domain.BackupOptions{DatabaseName: name, DailyRotation: dailyRotation}
		job := func(ctx context.Context) error {
			_, err := svc.RunBackup(ctx, opts)
			return err
		}
		if err := s.Add(JobID(preset, name), fmt.Sprintf("%s backup of %s", preset, name), domain.CronSchedule{Preset: preset}, job); err != nil {
			return err
		}
	}
	return nil
}
