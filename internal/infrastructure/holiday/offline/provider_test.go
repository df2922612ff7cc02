package offline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-reminders/internal/pkg/dates"
)

func TestGetPublicHolidays_KnownYears(t *testing.T) {
	p := NewProvider()

	for _, year := range []int{2025, 2026} {
		holidays := p.GetPublicHolidays(context.Background(), year)
		require.NotEmpty(t, holidays, "year %d", year)
		for _, h := range holidays {
			assert.Equal(t, year, h.Date.Year())
			assert.Equal(t, "LT", h.CountryCode)
			assert.Equal(t, "Public", h.Type)
			assert.True(t, h.Global)
			assert.NotEmpty(t, h.LocalName)
			assert.NotEmpty(t, h.EnglishName)
		}
	}
}

func TestGetPublicHolidays_EasterDates(t *testing.T) {
	p := NewProvider()

	find := func(year int, name string) (time.Time, bool) {
		for _, h := range p.GetPublicHolidays(context.Background(), year) {
			if h.EnglishName == name {
				return h.Date, true
			}
		}
		return time.Time{}, false
	}

	easter2025, ok := find(2025, "Easter Sunday")
	require.True(t, ok)
	assert.Equal(t, dates.Date(2025, time.April, 20), easter2025)

	easter2026, ok := find(2026, "Easter Sunday")
	require.True(t, ok)
	assert.Equal(t, dates.Date(2026, time.April, 5), easter2026)
}

func TestGetPublicHolidays_UnknownYear(t *testing.T) {
	p := NewProvider()

	for _, year := range []int{2024, 2027, 0} {
		holidays := p.GetPublicHolidays(context.Background(), year)
		assert.NotNil(t, holidays)
		assert.Empty(t, holidays)
	}
}
