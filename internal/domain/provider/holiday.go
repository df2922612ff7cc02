package provider

import (
	"context"

	"calendar-reminders/internal/domain/entity"
)

// HolidayProvider is a source of public holiday data for a given year.
//
// Implementations never signal errors to the caller: upstream failures
// or missing data degrade to an empty slice. Exactly one implementation
// (remote caching client or offline dataset) is wired in per deployment.
type HolidayProvider interface {
	GetPublicHolidays(ctx context.Context, year int) []entity.PublicHoliday
}
