package dto

import (
	"strings"
	"time"

	"calendar-reminders/internal/domain/entity"
	"calendar-reminders/internal/pkg/dates"
)

const timestampLayout = "2006-01-02T15:04:05"

// ReminderRequest is the DTO for creating or updating a reminder.
// Dates travel as YYYY-MM-DD strings and times as HH:mm.
type ReminderRequest struct {
	Text string `json:"text"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// Validate checks the boundary constraints on the request and returns a
// map of field name to message for every violated one.
func (r ReminderRequest) Validate() map[string]string {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(r.Text) == "" {
		fieldErrors["text"] = "Reminder text must not be blank"
	} else if len(r.Text) > 255 {
		fieldErrors["text"] = "Reminder text must be at most 255 characters"
	}

	if r.Date == "" {
		fieldErrors["date"] = "Reminder date is required"
	} else if _, err := dates.ParseDate(r.Date); err != nil {
		fieldErrors["date"] = "Reminder date must be in YYYY-MM-DD format"
	}

	if r.Time == "" {
		fieldErrors["time"] = "Reminder time is required"
	} else if !dates.ValidTimeOfDay(r.Time) {
		fieldErrors["time"] = "Reminder time must be in HH:mm format"
	}

	return fieldErrors
}

// ToEntity converts a validated request to a domain reminder.
func (r ReminderRequest) ToEntity() *entity.Reminder {
	date, _ := dates.ParseDate(r.Date)
	return &entity.Reminder{
		Text: r.Text,
		Date: date,
		Time: r.Time,
	}
}

// ReminderResponse is the DTO for sending reminder information to the client.
type ReminderResponse struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToReminderResponse converts an entity.Reminder to a ReminderResponse DTO.
func ToReminderResponse(r *entity.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:        r.ID,
		Text:      r.Text,
		Date:      dates.FormatDate(r.Date),
		Time:      r.Time,
		CreatedAt: r.CreatedAt.Format(timestampLayout),
		UpdatedAt: r.UpdatedAt.Format(timestampLayout),
	}
}

// ToReminderResponseList converts a slice of entity.Reminder to a slice of ReminderResponse DTOs.
func ToReminderResponseList(reminders []*entity.Reminder) []ReminderResponse {
	list := make([]ReminderResponse, len(reminders))
	for i, r := range reminders {
		list[i] = ToReminderResponse(r)
	}
	return list
}

// AllowedDateRangeResponse is the DTO for the currently allowed reminder
// date window.
type AllowedDateRangeResponse struct {
	MinDate string `json:"minDate"`
	MaxDate string `json:"maxDate"`
}

// ToAllowedDateRangeResponse builds the range DTO from inclusive bounds.
func ToAllowedDateRangeResponse(minDate, maxDate time.Time) AllowedDateRangeResponse {
	return AllowedDateRangeResponse{
		MinDate: dates.FormatDate(minDate),
		MaxDate: dates.FormatDate(maxDate),
	}
}
