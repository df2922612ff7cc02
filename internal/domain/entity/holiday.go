package entity

import "time"

// PublicHoliday is an immutable public holiday record for one country.
// It is produced by a holiday provider and never persisted; equality is
// structural.
type PublicHoliday struct {
	Date        time.Time
	LocalName   string
	EnglishName string
	CountryCode string
	Type        string
	Global      bool
}
