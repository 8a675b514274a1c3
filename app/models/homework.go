package models

import "time"

// Homework is an assignment created by a teacher.
type Homework struct {
	ID           string     `json:"id"`
	Title        string     `json:"title" validate:"required"`
	Subject      string     `json:"subject" validate:"required"`
	Description  *string    `json:"description,omitempty"`
	AssignedDate time.Time  `json:"assigned_date"`
	DueDate      time.Time  `json:"due_date" validate:"required"`
	AssignedBy   string     `json:"assigned_by" validate:"required,uuid"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// HomeworkSubmission tracks one student's progress on one assignment.
// Exactly one row exists per (homework, student) pairing that was assigned.
type HomeworkSubmission struct {
	ID                 string           `json:"id"`
	HomeworkID         string           `json:"homework_id" validate:"required,uuid"`
	StudentID          string           `json:"student_id" validate:"required,uuid"`
	Status             SubmissionStatus `json:"status" validate:"required,oneof=pending completed late"`
	SubmittedDate      *time.Time       `json:"submitted_date,omitempty"`
	ParentAcknowledged bool             `json:"parent_acknowledged"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`

	Homework *Homework `json:"homework,omitempty"`
	Student  *Student  `json:"student,omitempty"`
}
