package dates

import "time"

// Wire formats used at the API boundary and by the holiday provider.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// DateOf truncates an instant to its calendar date (midnight UTC).
// All date-only values in the application are normalized through this
// so equality and range comparisons stay exact.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a normalized calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a normalized calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidTimeOfDay reports whether s is a valid HH:mm time of day.
func ValidTimeOfDay(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
