package service

import (
	"context"
	"time"

	"calendar-reminders/internal/domain/entity"
)

// HolidayService defines the interface for public holiday queries.
type HolidayService interface {
	// GetPublicHolidays returns the public holidays for a year. A provider
	// returning no data yields an empty slice, never nil.
	GetPublicHolidays(ctx context.Context, year int) []entity.PublicHoliday
	// IsPublicHoliday reports whether the given date is a public holiday
	// in its year, by exact date equality.
	IsPublicHoliday(ctx context.Context, date time.Time) (bool, error)
}
