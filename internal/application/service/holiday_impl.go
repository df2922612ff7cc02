package service

import (
	"context"
	"fmt"
	"time"

	"calendar-reminders/internal/domain/entity"
	"calendar-reminders/internal/domain/provider"
	"calendar-reminders/internal/pkg/dates"
	appErrors "calendar-reminders/internal/pkg/errors"
	"calendar-reminders/internal/pkg/logger"
)

type holidayService struct {
	holidayProvider provider.HolidayProvider
	log             logger.Logger
}

// NewHolidayService creates a new instance of HolidayService implementation.
// The service is agnostic to which provider implementation is wired in.
func NewHolidayService(holidayProvider provider.HolidayProvider, log logger.Logger) HolidayService {
	return &holidayService{
		holidayProvider: holidayProvider,
		log:             log,
	}
}

// GetPublicHolidays returns the public holidays for a year.
func (s *holidayService) GetPublicHolidays(ctx context.Context, year int) []entity.PublicHoliday {
	holidays := s.holidayProvider.GetPublicHolidays(ctx, year)
	if holidays == nil {
		holidays = []entity.PublicHoliday{}
	}
	s.log.Debug(fmt.Sprintf("Fetched %d public holidays for year %d", len(holidays), year))
	return holidays
}

// IsPublicHoliday reports whether date is a public holiday in its year.
func (s *holidayService) IsPublicHoliday(ctx context.Context, date time.Time) (bool, error) {
	if date.IsZero() {
		return false, appErrors.ErrDateRequired
	}

	day := dates.DateOf(date)
	for _, holiday := range s.GetPublicHolidays(ctx, day.Year()) {
		if holiday.Date.Equal(day) {
			return true, nil
		}
	}
	return false, nil
}
