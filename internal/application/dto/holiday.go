package dto

import (
	"calendar-reminders/internal/domain/entity"
	"calendar-reminders/internal/pkg/dates"
)

// PublicHolidayResponse is the DTO for sending holiday information to the client.
type PublicHolidayResponse struct {
	Date        string `json:"date"`
	LocalName   string `json:"localName"`
	EnglishName string `json:"englishName"`
	CountryCode string `json:"countryCode"`
	Type        string `json:"type"`
	Global      bool   `json:"global"`
}

// ToPublicHolidayResponse converts an entity.PublicHoliday to a PublicHolidayResponse DTO.
func ToPublicHolidayResponse(h entity.PublicHoliday) PublicHolidayResponse {
	return PublicHolidayResponse{
		Date:        dates.FormatDate(h.Date),
		LocalName:   h.LocalName,
		EnglishName: h.EnglishName,
		CountryCode: h.CountryCode,
		Type:        h.Type,
		Global:      h.Global,
	}
}

// ToPublicHolidayResponseList converts a slice of entity.PublicHoliday to response DTOs.
func ToPublicHolidayResponseList(holidays []entity.PublicHoliday) []PublicHolidayResponse {
	list := make([]PublicHolidayResponse, len(holidays))
	for i, h := range holidays {
		list[i] = ToPublicHolidayResponse(h)
	}
	return list
}
