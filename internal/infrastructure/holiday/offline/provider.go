package offline

import (
	"context"
	"time"

	"calendar-reminders/internal/domain/entity"
	"calendar-reminders/internal/domain/provider"
	"calendar-reminders/internal/pkg/dates"
)

// Provider serves a fixed, hand-curated Lithuanian holiday calendar for
// known years without any network dependency. It is wired in instead of
// the remote client when the deployment is configured to run offline.
type Provider struct {
	holidays map[int][]entity.PublicHoliday
}

// NewProvider creates the offline holiday provider.
func NewProvider() *Provider {
	return &Provider{
		holidays: map[int][]entity.PublicHoliday{
			2025: ltHolidays2025(),
			2026: ltHolidays2026(),
		},
	}
}

var _ provider.HolidayProvider = (*Provider)(nil)

// GetPublicHolidays returns the static calendar for a year. Unknown
// years yield an empty slice.
func (p *Provider) GetPublicHolidays(ctx context.Context, year int) []entity.PublicHoliday {
	if holidays, ok := p.holidays[year]; ok {
		return holidays
	}
	return []entity.PublicHoliday{}
}

func ltHoliday(year int, month time.Month, day int, localName, englishName string) entity.PublicHoliday {
	return entity.PublicHoliday{
		Date:        dates.Date(year, month, day),
		LocalName:   localName,
		EnglishName: englishName,
		CountryCode: "LT",
		Type:        "Public",
		Global:      true,
	}
}

func ltHolidays2025() []entity.PublicHoliday {
	return []entity.PublicHoliday{
		ltHoliday(2025, time.January, 1, "Naujieji metai", "New Year's Day"),
		ltHoliday(2025, time.February, 16, "Lietuvos valstybės atkūrimo diena", "The Day of Restoration of the State of Lithuania"),
		ltHoliday(2025, time.March, 11, "Lietuvos nepriklausomybės atkūrimo diena", "Day of Restoration of Independence of Lithuania"),
		ltHoliday(2025, time.April, 20, "Velykos", "Easter Sunday"),
		ltHoliday(2025, time.April, 21, "Antroji Velykų diena", "Easter Monday"),
		ltHoliday(2025, time.May, 1, "Tarptautinė darbo diena", "International Working Day"),
		ltHoliday(2025, time.June, 24, "Joninės, Rasos", "St. John's Day"),
		ltHoliday(2025, time.July, 6, "Valstybės diena", "Statehood Day"),
		ltHoliday(2025, time.August, 15, "Žolinė", "Assumption Day"),
		ltHoliday(2025, time.November, 1, "Visų šventųjų diena", "All Saints' Day"),
		ltHoliday(2025, time.November, 2, "Vėlinės", "All Souls' Day"),
		ltHoliday(2025, time.December, 24, "Šv. Kūčios", "Christmas Eve"),
		ltHoliday(2025, time.December, 25, "Šv. Kalėdos", "Christmas Day"),
		ltHoliday(2025, time.December, 26, "Šv. Kalėdos", "St. Stephen's Day"),
	}
}

func ltHolidays2026() []entity.PublicHoliday {
	return []entity.PublicHoliday{
		ltHoliday(2026, time.January, 1, "Naujieji metai", "New Year's Day"),
		ltHoliday(2026, time.February, 16, "Lietuvos valstybės atkūrimo diena", "The Day of Restoration of the State of Lithuania"),
		ltHoliday(2026, time.March, 11, "Lietuvos nepriklausomybės atkūrimo diena", "Day of Restoration of Independence of Lithuania"),
		ltHoliday(2026, time.April, 5, "Velykos", "Easter Sunday"),
		ltHoliday(2026, time.April, 6, "Antroji Velykų diena", "Easter Monday"),
		ltHoliday(2026, time.May, 1, "Tarptautinė darbo diena", "International Working Day"),
		ltHoliday(2026, time.June, 24, "Joninės, Rasos", "St. John's Day"),
		ltHoliday(2026, time.July, 6, "Valstybės diena", "Statehood Day"),
		ltHoliday(2026, time.August, 15, "Žolinė", "Assumption Day"),
		ltHoliday(2026, time.November, 1, "Visų šventųjų diena", "All Saints' Day"),
		ltHoliday(2026, time.November, 2, "Vėlinės", "All Souls' Day"),
		ltHoliday(2026, time.December, 24, "Šv. Kūčios", "Christmas Eve"),
		ltHoliday(2026, time.December, 25, "Šv. Kalėdos", "Christmas Day"),
		ltHoliday(2026, time.December, 26, "Šv. Kalėdos", "St. Stephen's Day"),
	}
}
