package models

import "time"

// ClassScheduleEntry is one recurring lesson slot on the weekly grid.
// Times are zero-padded 24-hour "HH:MM" strings; the matrix builder
// relies on that format for lexicographic slot ordering.
type ClassScheduleEntry struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject" validate:"required"`
	ClassLabel string    `json:"class" validate:"required"`
	Day        DayOfWeek `json:"day" validate:"required"`
	StartTime  string    `json:"start_time" validate:"required"`
	EndTime    string    `json:"end_time" validate:"required"`
	CreatedBy  string    `json:"created_by" validate:"required,uuid"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Slot returns the "start - end" label the schedule grid is keyed by.
func (e *ClassScheduleEntry) Slot() string {
	return e.StartTime + " - " + e.EndTime
}
