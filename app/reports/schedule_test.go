package reports

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

func entry(subject string, day models.DayOfWeek, start, end string) models.ClassScheduleEntry {
	return models.ClassScheduleEntry{
		Subject:    subject,
		ClassLabel: "Grade 10",
		Day:        day,
		StartTime:  start,
		EndTime:    end,
	}
}

func TestBuildScheduleMatrix(t *testing.T) {
	entries := []models.ClassScheduleEntry{
		entry("Maths", models.Monday, "09:00", "10:00"),
		entry("Physics", models.Monday, "10:00", "11:00"),
		entry("Maths", models.Tuesday, "09:00", "10:00"),
	}

	m, err := BuildScheduleMatrix(entries)
	require.NoError(t, err)

	assert.Equal(t, models.ScheduleDays, m.Days)
	assert.Equal(t, []string{"09:00 - 10:00", "10:00 - 11:00"}, m.Slots)

	require.NotNil(t, m.Cells[models.Monday]["09:00 - 10:00"])
	assert.Equal(t, "Maths", m.Cells[models.Monday]["09:00 - 10:00"].Subject)
	assert.Equal(t, "Physics", m.Cells[models.Monday]["10:00 - 11:00"].Subject)
	assert.Equal(t, "Maths", m.Cells[models.Tuesday]["09:00 - 10:00"].Subject)

	// Unclaimed cells stay empty.
	assert.Nil(t, m.Cells[models.Wednesday]["09:00 - 10:00"])
}

func TestBuildScheduleMatrix_Empty(t *testing.T) {
	m, err := BuildScheduleMatrix(nil)
	require.NoError(t, err)
	assert.Empty(t, m.Slots)
	assert.Len(t, m.Cells, len(models.ScheduleDays))
}

func TestBuildScheduleMatrix_SlotsSortedByStartTime(t *testing.T) {
	entries := []models.ClassScheduleEntry{
		entry("Chemistry", models.Friday, "14:00", "15:00"),
		entry("Maths", models.Monday, "08:00", "09:00"),
		entry("English", models.Wednesday, "10:30", "11:30"),
	}
	m, err := BuildScheduleMatrix(entries)
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00 - 09:00", "10:30 - 11:30", "14:00 - 15:00"}, m.Slots)
}

func TestBuildScheduleMatrix_Conflict(t *testing.T) {
	entries := []models.ClassScheduleEntry{
		entry("Maths", models.Monday, "09:00", "10:00"),
		entry("Physics", models.Monday, "09:00", "10:00"),
	}

	m, err := BuildScheduleMatrix(entries)
	assert.Nil(t, m)

	var conflict *ScheduleConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, models.Monday, conflict.Day)
	assert.Equal(t, "09:00 - 10:00", conflict.Slot)
	assert.Equal(t, "Maths", conflict.Existing.Subject)
	assert.Equal(t, "Physics", conflict.Incoming.Subject)
}
