package service

import (
	"context"
	"time"

	"calendar-reminders/internal/domain/entity"
)

// ReminderService defines the interface for reminder lifecycle operations.
type ReminderService interface {
	// GetAllReminders retrieves all reminders.
	GetAllReminders(ctx context.Context) ([]*entity.Reminder, error)
	// GetRemindersForDate retrieves all reminders for a calendar date.
	GetRemindersForDate(ctx context.Context, date time.Time) ([]*entity.Reminder, error)
	// CreateReminder validates the reminder date against the allowed
	// window and persists the reminder. Returns the persisted copy.
	CreateReminder(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error)
	// UpdateReminder replaces text, date and time of an existing reminder,
	// preserving its id and createdAt. Returns the persisted result.
	UpdateReminder(ctx context.Context, id uint, updated *entity.Reminder) (*entity.Reminder, error)
	// DeleteReminder deletes a reminder by id, failing if it does not exist.
	DeleteReminder(ctx context.Context, id uint) error
	// DeleteRemindersByDate deletes all reminders for a calendar date.
	// Deleting nothing is not an error.
	DeleteRemindersByDate(ctx context.Context, date time.Time) error
}
