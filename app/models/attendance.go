package models

import "time"

// AttendanceRecord is one student's attendance for one calendar date.
// The database enforces at most one row per (student, date); marking
// again replaces the existing row.
type AttendanceRecord struct {
	ID        string           `json:"id"`
	StudentID string           `json:"student_id" validate:"required,uuid"`
	ClassDate time.Time        `json:"class_date" validate:"required"`
	Status    AttendanceStatus `json:"status" validate:"required,oneof=present absent late"`
	Notes     *string          `json:"notes,omitempty"`
	MarkedBy  string           `json:"marked_by" validate:"required,uuid"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	Student *Student `json:"student,omitempty"`
}
