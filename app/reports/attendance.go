// Package reports holds the pure aggregation routines behind the
// dashboard summary figures. Every function maps an already-fetched
// snapshot of records to a derived value; nothing here touches the
// database or any other ambient state, and a nil slice is the same as
// an empty one.
package reports

import (
	"math"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

// AttendanceSummary totals a set of attendance records.
type AttendanceSummary struct {
	Total      int `json:"total"`
	Present    int `json:"present"`
	Late       int `json:"late"`
	Absent     int `json:"absent"`
	Percentage int `json:"percentage"`
}

// SummarizeAttendance counts statuses and derives the attendance rate.
// Late arrivals count toward the rate's numerator; that is policy, not
// an accident, and displayed percentages depend on it.
func SummarizeAttendance(records []models.AttendanceRecord) AttendanceSummary {
	s := AttendanceSummary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case models.Present:
			s.Present++
		case models.Late:
			s.Late++
		case models.Absent:
			s.Absent++
		}
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(100 * float64(s.Present+s.Late) / float64(s.Total)))
	}
	return s
}
