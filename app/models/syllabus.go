package models

import "time"

// SyllabusTopic tracks coverage of one topic for a class and subject.
type SyllabusTopic struct {
	ID             string      `json:"id"`
	Subject        string      `json:"subject" validate:"required"`
	ClassLabel     string      `json:"class" validate:"required"`
	Topic          string      `json:"topic" validate:"required"`
	Description    *string     `json:"description,omitempty"`
	Status         TopicStatus `json:"status" validate:"required,oneof=pending in_progress completed"`
	CompletionDate *time.Time  `json:"completion_date,omitempty"`
	CreatedBy      string      `json:"created_by" validate:"required,uuid"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
