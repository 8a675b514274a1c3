package reports

import (
	"fmt"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

// ScheduleConflictError reports two schedule entries claiming the same
// day and time slot. Both entries are carried so the caller can name
// them when surfacing the conflict.
type ScheduleConflictError struct {
	Day      models.DayOfWeek
	Slot     string
	Existing models.ClassScheduleEntry
	Incoming models.ClassScheduleEntry
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("schedule conflict on %s %s: %s (%s) collides with %s (%s)",
		e.Day, e.Slot,
		e.Existing.Subject, e.Existing.ClassLabel,
		e.Incoming.Subject, e.Incoming.ClassLabel)
}

// DivisionUndefinedError marks a single test result whose parent test
// declares zero maximum marks, making the percentage undefined.
type DivisionUndefinedError struct {
	TestID    string
	StudentID string
}

func (e *DivisionUndefinedError) Error() string {
	return fmt.Sprintf("percentage undefined for test %s, student %s: max marks is zero", e.TestID, e.StudentID)
}
