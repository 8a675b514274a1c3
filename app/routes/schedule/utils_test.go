package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

func TestValidTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"morning slot", "09:00", true},
		{"afternoon slot", "16:30", true},
		{"midnight", "00:00", true},
		{"last minute", "23:59", true},
		{"missing zero padding", "9:00", false},
		{"hour out of range", "24:00", false},
		{"minute out of range", "10:60", false},
		{"seconds not allowed", "10:00:00", false},
		{"12-hour format", "4pm", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidTime(tt.input))
		})
	}
}

func TestValidDay(t *testing.T) {
	for _, day := range models.ScheduleDays {
		assert.True(t, ValidDay(day), "expected %s to be a schedulable day", day)
	}
	assert.False(t, ValidDay(models.DayOfWeek("Sunday")))
	assert.False(t, ValidDay(models.DayOfWeek("monday")))
	assert.False(t, ValidDay(models.DayOfWeek("")))
}
