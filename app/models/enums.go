package models

import "strings"

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
)

// FeeStatus defines the lifecycle of a fee record.
type FeeStatus string

const (
	FeePaid    FeeStatus = "paid"
	FeePending FeeStatus = "pending"
	FeeOverdue FeeStatus = "overdue"
)

// SubmissionStatus defines the lifecycle of a homework submission.
type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionCompleted SubmissionStatus = "completed"
	SubmissionLate      SubmissionStatus = "late"
)

// TopicStatus defines the lifecycle of a syllabus topic.
type TopicStatus string

const (
	TopicPending    TopicStatus = "pending"
	TopicInProgress TopicStatus = "in_progress"
	TopicCompleted  TopicStatus = "completed"
)

// DayOfWeek defines the days a class can be scheduled on.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
)

// ScheduleDays is the fixed display order of the weekly schedule grid.
var ScheduleDays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// Role names used in JWT claims and user_roles.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

// NormalizeStatus lower-cases an incoming status string so that both
// "Completed" and "completed" settle on one vocabulary at the boundary.
func NormalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeDay title-cases an incoming day-of-week string ("monday" -> "Monday").
func NormalizeDay(s string) DayOfWeek {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	return DayOfWeek(strings.ToUpper(s[:1]) + s[1:])
}
