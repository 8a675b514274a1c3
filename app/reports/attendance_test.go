package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

func attRecord(status models.AttendanceStatus, day int) models.AttendanceRecord {
	return models.AttendanceRecord{
		StudentID: "s1",
		ClassDate: time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
		Status:    status,
	}
}

func TestSummarizeAttendance(t *testing.T) {
	tests := []struct {
		name     string
		statuses []models.AttendanceStatus
		want     AttendanceSummary
	}{
		{
			name:     "empty input yields zero summary",
			statuses: nil,
			want:     AttendanceSummary{},
		},
		{
			name:     "all present",
			statuses: []models.AttendanceStatus{models.Present, models.Present},
			want:     AttendanceSummary{Total: 2, Present: 2, Percentage: 100},
		},
		{
			name:     "late counts toward the rate",
			statuses: []models.AttendanceStatus{models.Present, models.Late, models.Absent, models.Absent},
			want:     AttendanceSummary{Total: 4, Present: 1, Late: 1, Absent: 2, Percentage: 50},
		},
		{
			name:     "all absent",
			statuses: []models.AttendanceStatus{models.Absent, models.Absent, models.Absent},
			want:     AttendanceSummary{Total: 3, Absent: 3, Percentage: 0},
		},
		{
			name:     "rounding",
			statuses: []models.AttendanceStatus{models.Present, models.Present, models.Absent},
			want:     AttendanceSummary{Total: 3, Present: 2, Absent: 1, Percentage: 67},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []models.AttendanceRecord
			for i, s := range tt.statuses {
				records = append(records, attRecord(s, i+1))
			}
			got := SummarizeAttendance(records)
			assert.Equal(t, tt.want, got)

			// Counts always partition the set and the rate stays in range.
			assert.Equal(t, got.Total, got.Present+got.Late+got.Absent)
			assert.GreaterOrEqual(t, got.Percentage, 0)
			assert.LessOrEqual(t, got.Percentage, 100)
		})
	}
}
