package models

import "time"

// Test is a scheduled assessment with a maximum achievable mark.
type Test struct {
	ID        string     `json:"id"`
	Title     string     `json:"title" validate:"required"`
	Subject   string     `json:"subject" validate:"required"`
	TestDate  time.Time  `json:"test_date" validate:"required"`
	MaxMarks  int        `json:"max_marks" validate:"required,gt=0"`
	CreatedBy string     `json:"created_by" validate:"required,uuid"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// TestResult stores only the raw marks. Percentage and grade are derived
// on demand, never persisted.
type TestResult struct {
	ID            string    `json:"id"`
	TestID        string    `json:"test_id" validate:"required,uuid"`
	StudentID     string    `json:"student_id" validate:"required,uuid"`
	MarksObtained int       `json:"marks_obtained" validate:"gte=0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Test    *Test    `json:"test,omitempty"`
	Student *Student `json:"student,omitempty"`
}
