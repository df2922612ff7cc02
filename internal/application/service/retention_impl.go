package service

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"calendar-reminders/internal/domain/repository"
	"calendar-reminders/internal/infrastructure/scheduler"
	"calendar-reminders/internal/pkg/clock"
	"calendar-reminders/internal/pkg/dates"
	appErrors "calendar-reminders/internal/pkg/errors"
	"calendar-reminders/internal/pkg/logger"
)

type retentionService struct {
	cronScheduler *scheduler.Scheduler
	reminderRepo  repository.ReminderRepository
	clk           clock.Clock
	retentionDays int
	cronSpec      string
	log           logger.Logger
	entryID       cron.EntryID
	started       bool
}

// NewRetentionService creates a new instance of RetentionService
// implementation. retentionDays is the number of days a reminder is kept
// past its date; cronSpec controls when the sweep runs.
func NewRetentionService(
	cronScheduler *scheduler.Scheduler,
	reminderRepo repository.ReminderRepository,
	clk clock.Clock,
	retentionDays int,
	cronSpec string,
	log logger.Logger,
) RetentionService {
	return &retentionService{
		cronScheduler: cronScheduler,
		reminderRepo:  reminderRepo,
		clk:           clk,
		retentionDays: retentionDays,
		cronSpec:      cronSpec,
		log:           log,
	}
}

// Start registers the periodic sweep job.
func (s *retentionService) Start() error {
	entryID, err := s.cronScheduler.AddJob(s.cronSpec, s.sweep)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.entryID = entryID
	s.started = true
	s.log.Info(fmt.Sprintf("Retention sweep scheduled (spec: %s, retention: %d days)", s.cronSpec, s.retentionDays))
	return nil
}

// Stop cancels the sweep job.
func (s *retentionService) Stop() {
	if s.started {
		s.cronScheduler.RemoveJob(s.entryID)
		s.started = false
		s.log.Info("Retention sweep cancelled.")
	}
}

// sweep deletes reminders dated before today minus the retention window.
func (s *retentionService) sweep() {
	threshold := dates.DateOf(s.clk.Now()).AddDate(0, 0, -s.retentionDays)
	s.log.Info(fmt.Sprintf("Running retention sweep, deleting reminders dated before %s", dates.FormatDate(threshold)))

	if err := s.reminderRepo.DeleteOlderThan(context.Background(), threshold); err != nil {
		s.log.Error("Retention sweep failed", err)
		return
	}
	s.log.Debug("Retention sweep completed.")
}
