package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"calendar-reminders/internal/domain/entity"
	"calendar-reminders/internal/domain/repository"
	"calendar-reminders/internal/pkg/dates"
)

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new instance of ReminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

// Save persists the reminder and returns the persisted copy.
// GORM fills ID on insert and manages CreatedAt/UpdatedAt, so the
// timestamps are owned here rather than by the service layer.
func (r *reminderRepository) Save(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error) {
	if err := r.db.WithContext(ctx).Save(reminder).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to save reminder: %w", err)
	}
	return reminder, nil
}

// FindByID retrieves a reminder by its ID.
func (r *reminderRepository) FindByID(ctx context.Context, id uint) (*entity.Reminder, error) {
	var reminder entity.Reminder
	if err := r.db.WithContext(ctx).First(&reminder, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reminder with ID %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find reminder by id %d: %w", id, err)
	}
	return &reminder, nil
}

// FindAll retrieves all reminders.
func (r *reminderRepository) FindAll(ctx context.Context) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find all reminders: %w", err)
	}
	return reminders, nil
}

// FindByDate retrieves all reminders for a calendar date, ordered by time
// of day ascending. HH:mm strings sort chronologically.
func (r *reminderRepository) FindByDate(ctx context.Context, date time.Time) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).
		Where("reminder_date = ?", dates.DateOf(date)).
		Order("reminder_time asc").
		Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find reminders by date %s: %w", dates.FormatDate(date), err)
	}
	return reminders, nil
}

// DeleteByID deletes a reminder by its ID.
func (r *reminderRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Reminder{}, id).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete reminder %d: %w", id, err)
	}
	return nil
}

// DeleteByDate deletes all reminders for a calendar date.
func (r *reminderRepository) DeleteByDate(ctx context.Context, date time.Time) error {
	if err := r.db.WithContext(ctx).
		Where("reminder_date = ?", dates.DateOf(date)).
		Delete(&entity.Reminder{}).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete reminders for date %s: %w", dates.FormatDate(date), err)
	}
	return nil
}

// DeleteOlderThan deletes reminders dated strictly before threshold.
func (r *reminderRepository) DeleteOlderThan(ctx context.Context, threshold time.Time) error {
	if err := r.db.WithContext(ctx).
		Where("reminder_date < ?", dates.DateOf(threshold)).
		Delete(&entity.Reminder{}).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete reminders older than %s: %w", dates.FormatDate(threshold), err)
	}
	return nil
}
