package reports

import (
	"sort"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

// ScheduleMatrix is the weekly grid: day -> slot label -> entry. Days
// run Monday..Saturday in fixed order; slots are the distinct
// "start - end" labels sorted by start time. Sorting the labels
// lexicographically is correct only because times are zero-padded
// 24-hour "HH:MM" strings.
type ScheduleMatrix struct {
	Days  []models.DayOfWeek                                       `json:"days"`
	Slots []string                                                 `json:"slots"`
	Cells map[models.DayOfWeek]map[string]*models.ClassScheduleEntry `json:"cells"`
}

// BuildScheduleMatrix arranges entries into the grid. Two entries
// claiming the same day and slot fail with ScheduleConflictError rather
// than silently letting the later insert win; the caller decides whether
// to surface the conflict or tie-break.
func BuildScheduleMatrix(entries []models.ClassScheduleEntry) (*ScheduleMatrix, error) {
	m := &ScheduleMatrix{
		Days:  append([]models.DayOfWeek(nil), models.ScheduleDays...),
		Cells: map[models.DayOfWeek]map[string]*models.ClassScheduleEntry{},
	}
	for _, day := range m.Days {
		m.Cells[day] = map[string]*models.ClassScheduleEntry{}
	}

	seen := map[string]bool{}
	for i := range entries {
		e := entries[i]
		slot := e.Slot()
		if !seen[slot] {
			seen[slot] = true
			m.Slots = append(m.Slots, slot)
		}
		row, ok := m.Cells[e.Day]
		if !ok {
			// Unknown day (e.g. Sunday) gets its own row rather than
			// vanishing from the grid.
			row = map[string]*models.ClassScheduleEntry{}
			m.Cells[e.Day] = row
			m.Days = append(m.Days, e.Day)
		}
		if existing := row[slot]; existing != nil {
			return nil, &ScheduleConflictError{
				Day:      e.Day,
				Slot:     slot,
				Existing: *existing,
				Incoming: e,
			}
		}
		entry := e
		row[slot] = &entry
	}

	sort.Strings(m.Slots)
	return m, nil
}
