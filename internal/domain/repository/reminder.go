package repository

import (
	"context"
	"time"

	"calendar-reminders/internal/domain/entity"
)

// ReminderRepository defines the interface for reminder data operations.
//
// The repository owns the createdAt/updatedAt timestamps: Save sets
// createdAt on first insert and refreshes updatedAt on every write.
type ReminderRepository interface {
	// Save persists the reminder and returns the persisted copy with its
	// assigned id and timestamps.
	Save(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error)
	// FindByID retrieves a reminder by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Reminder, error)
	// FindAll retrieves all reminders.
	FindAll(ctx context.Context) ([]*entity.Reminder, error)
	// FindByDate retrieves all reminders for a calendar date, ordered by
	// time of day ascending.
	FindByDate(ctx context.Context, date time.Time) ([]*entity.Reminder, error)
	// DeleteByID deletes a reminder by its ID.
	DeleteByID(ctx context.Context, id uint) error
	// DeleteByDate deletes all reminders for a calendar date. Deleting
	// zero rows is not an error.
	DeleteByDate(ctx context.Context, date time.Time) error
	// DeleteOlderThan deletes reminders dated strictly before threshold.
	DeleteOlderThan(ctx context.Context, threshold time.Time) error
}
