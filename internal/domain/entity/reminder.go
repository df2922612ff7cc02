package entity

import "time"

// Reminder represents a dated reminder note.
//
// Date is a calendar date normalized to midnight UTC; Time is the
// HH:mm time of day the reminder refers to. CreatedAt and UpdatedAt are
// owned by the storage layer and are never set by application code.
type Reminder struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Text      string    `gorm:"column:reminder_text;type:text;not null"`
	Date      time.Time `gorm:"column:reminder_date;index;not null"`
	Time      string    `gorm:"column:reminder_time;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for the Reminder entity.
func (Reminder) TableName() string {
	return "reminders"
}
