package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"calendar-reminders/internal/application/policy"
	"calendar-reminders/internal/domain/entity"
	"calendar-reminders/internal/domain/repository"
	"calendar-reminders/internal/pkg/dates"
	appErrors "calendar-reminders/internal/pkg/errors"
	"calendar-reminders/internal/pkg/logger"
)

type reminderService struct {
	reminderRepo repository.ReminderRepository
	rangePolicy  policy.DateRangePolicy
	log          logger.Logger
}

// NewReminderService creates a new instance of ReminderService implementation.
func NewReminderService(
	reminderRepo repository.ReminderRepository,
	rangePolicy policy.DateRangePolicy,
	log logger.Logger,
) ReminderService {
	return &reminderService{
		reminderRepo: reminderRepo,
		rangePolicy:  rangePolicy,
		log:          log,
	}
}

// GetAllReminders retrieves all reminders.
func (s *reminderService) GetAllReminders(ctx context.Context) ([]*entity.Reminder, error) {
	reminders, err := s.reminderRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to fetch all reminders", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Debug(fmt.Sprintf("Fetched %d reminders", len(reminders)))
	return reminders, nil
}

// GetRemindersForDate retrieves all reminders for a calendar date.
func (s *reminderService) GetRemindersForDate(ctx context.Context, date time.Time) ([]*entity.Reminder, error) {
	if date.IsZero() {
		return nil, appErrors.ErrDateRequired
	}
	reminders, err := s.reminderRepo.FindByDate(ctx, dates.DateOf(date))
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to fetch reminders for date %s", dates.FormatDate(date)), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Debug(fmt.Sprintf("Fetched %d reminders for date %s", len(reminders), dates.FormatDate(date)))
	return reminders, nil
}

// CreateReminder validates the reminder date and persists the reminder.
// Validation happens before any repository call.
func (s *reminderService) CreateReminder(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error) {
	if reminder == nil {
		return nil, appErrors.ErrReminderRequired
	}
	if err := s.validateReminderDate(reminder.Date); err != nil {
		return nil, err
	}

	reminder.Date = dates.DateOf(reminder.Date)
	created, err := s.reminderRepo.Save(ctx, reminder)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to create reminder for date %s", dates.FormatDate(reminder.Date)), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created reminder %d for date %s", created.ID, dates.FormatDate(created.Date)))
	return created, nil
}

// UpdateReminder replaces text, date and time of an existing reminder.
// The date is validated before any write, so the stored record is left
// untouched when the new date is outside the allowed window.
func (s *reminderService) UpdateReminder(ctx context.Context, id uint, updated *entity.Reminder) (*entity.Reminder, error) {
	if updated == nil {
		return nil, appErrors.ErrReminderRequired
	}

	existing, err := s.reminderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", appErrors.ErrReminderNotFound, id)
		}
		s.log.Error(fmt.Sprintf("Failed to find reminder %d for update", id), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if err := s.validateReminderDate(updated.Date); err != nil {
		return nil, err
	}

	// Keep id and createdAt from the stored record; the repository
	// refreshes updatedAt on save.
	merged := &entity.Reminder{
		ID:        existing.ID,
		Text:      updated.Text,
		Date:      dates.DateOf(updated.Date),
		Time:      updated.Time,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: existing.UpdatedAt,
	}

	saved, err := s.reminderRepo.Save(ctx, merged)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to update reminder %d", id), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Updated reminder %d", saved.ID))
	return saved, nil
}

// DeleteReminder deletes a reminder by id, failing if it does not exist.
func (s *reminderService) DeleteReminder(ctx context.Context, id uint) error {
	if _, err := s.reminderRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id %d", appErrors.ErrReminderNotFound, id)
		}
		s.log.Error(fmt.Sprintf("Failed to find reminder %d for deletion", id), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if err := s.reminderRepo.DeleteByID(ctx, id); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete reminder %d", id), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted reminder %d", id))
	return nil
}

// DeleteRemindersByDate deletes all reminders for a date, with no
// existence check up front.
func (s *reminderService) DeleteRemindersByDate(ctx context.Context, date time.Time) error {
	if date.IsZero() {
		return appErrors.ErrDateRequired
	}
	if err := s.reminderRepo.DeleteByDate(ctx, dates.DateOf(date)); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete reminders for date %s", dates.FormatDate(date)), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted reminders for date %s", dates.FormatDate(date)))
	return nil
}

func (s *reminderService) validateReminderDate(date time.Time) error {
	if date.IsZero() {
		return appErrors.ErrDateRequired
	}
	if !s.rangePolicy.IsWithinAllowedRange(date) {
		return fmt.Errorf("%w: %s", appErrors.ErrDateOutOfRange, dates.FormatDate(date))
	}
	return nil
}
