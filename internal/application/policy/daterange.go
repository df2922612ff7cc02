package policy

import (
	"time"

	"calendar-reminders/internal/pkg/clock"
	"calendar-reminders/internal/pkg/dates"
)

// ReminderDateRange is the currently allowed reminder date window.
// Both bounds are inclusive calendar dates.
type ReminderDateRange struct {
	MinDate time.Time
	MaxDate time.Time
}

// DateRangePolicy answers queries about the currently allowed reminder
// date window.
type DateRangePolicy interface {
	// CurrentRange returns [today, today + 1 year], read from the clock
	// at call time. No caching: two rapid calls straddling a day boundary
	// are allowed to disagree.
	CurrentRange() ReminderDateRange
	// IsWithinAllowedRange reports whether date falls inside the current
	// range, bounds inclusive.
	IsWithinAllowedRange(date time.Time) bool
	// MinDate and MaxDate each independently read the current range, so
	// consecutive calls around midnight may observe bounds from different
	// instants. Callers needing an atomic pair must use CurrentRange.
	MinDate() time.Time
	MaxDate() time.Time
}

type dateRangePolicy struct {
	clk clock.Clock
}

// NewDateRangePolicy creates the default one-year-forward policy.
func NewDateRangePolicy(clk clock.Clock) DateRangePolicy {
	return &dateRangePolicy{clk: clk}
}

func (p *dateRangePolicy) today() time.Time {
	return dates.DateOf(p.clk.Now())
}

func (p *dateRangePolicy) CurrentRange() ReminderDateRange {
	today := p.today()
	return ReminderDateRange{
		MinDate: today,
		MaxDate: today.AddDate(1, 0, 0),
	}
}

func (p *dateRangePolicy) IsWithinAllowedRange(date time.Time) bool {
	r := p.CurrentRange()
	d := dates.DateOf(date)
	return !d.Before(r.MinDate) && !d.After(r.MaxDate)
}

func (p *dateRangePolicy) MinDate() time.Time {
	return p.CurrentRange().MinDate
}

func (p *dateRangePolicy) MaxDate() time.Time {
	return p.CurrentRange().MaxDate
}
