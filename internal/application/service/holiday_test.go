package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-reminders/internal/domain/entity"
	"calendar-reminders/internal/pkg/dates"
	appErrors "calendar-reminders/internal/pkg/errors"
	"calendar-reminders/internal/pkg/logger"
)

// stubHolidayProvider returns whatever slice it was seeded with.
type stubHolidayProvider struct {
	byYear map[int][]entity.PublicHoliday
	calls  int
}

func (s *stubHolidayProvider) GetPublicHolidays(ctx context.Context, year int) []entity.PublicHoliday {
	s.calls++
	return s.byYear[year]
}

func TestGetPublicHolidays_NilBecomesEmpty(t *testing.T) {
	svc := NewHolidayService(&stubHolidayProvider{byYear: map[int][]entity.PublicHoliday{}}, logger.New())

	holidays := svc.GetPublicHolidays(context.Background(), 2025)

	assert.NotNil(t, holidays)
	assert.Empty(t, holidays)
}

func TestGetPublicHolidays_PassesThroughProviderData(t *testing.T) {
	newYear := entity.PublicHoliday{
		Date:        dates.Date(2025, time.January, 1),
		LocalName:   "Naujieji metai",
		EnglishName: "New Year's Day",
		CountryCode: "LT",
		Type:        "Public",
		Global:      true,
	}
	svc := NewHolidayService(&stubHolidayProvider{
		byYear: map[int][]entity.PublicHoliday{2025: {newYear}},
	}, logger.New())

	holidays := svc.GetPublicHolidays(context.Background(), 2025)

	require.Len(t, holidays, 1)
	assert.Equal(t, newYear, holidays[0])
}

func TestIsPublicHoliday_ExactDateMatch(t *testing.T) {
	svc := NewHolidayService(&stubHolidayProvider{
		byYear: map[int][]entity.PublicHoliday{
			2025: {
				{Date: dates.Date(2025, time.December, 25), EnglishName: "Christmas Day"},
			},
		},
	}, logger.New())

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"holiday", dates.Date(2025, time.December, 25), true},
		{"day after", dates.Date(2025, time.December, 26), false},
		{"same day other year", dates.Date(2026, time.December, 25), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isHoliday, err := svc.IsPublicHoliday(context.Background(), tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, isHoliday)
		})
	}
}

func TestIsPublicHoliday_QueriesYearOfDate(t *testing.T) {
	stub := &stubHolidayProvider{byYear: map[int][]entity.PublicHoliday{}}
	svc := NewHolidayService(stub, logger.New())

	// A holiday check on an afternoon instant still resolves to the
	// calendar date's year.
	_, err := svc.IsPublicHoliday(context.Background(), time.Date(2026, time.July, 6, 14, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
}

func TestIsPublicHoliday_ZeroDate(t *testing.T) {
	svc := NewHolidayService(&stubHolidayProvider{byYear: map[int][]entity.PublicHoliday{}}, logger.New())

	_, err := svc.IsPublicHoliday(context.Background(), time.Time{})

	assert.ErrorIs(t, err, appErrors.ErrDateRequired)
}
