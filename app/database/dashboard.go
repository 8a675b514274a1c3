package database

import "database/sql"

// TeacherCounts backs the teacher dashboard header cards.
type TeacherCounts struct {
	TotalStudents   int `json:"total_students"`
	ActiveHomework  int `json:"active_homework"`
	UpcomingTests   int `json:"upcoming_tests"`
	ScheduledSlots  int `json:"scheduled_slots"`
	MarkedToday     int `json:"marked_today"`
	PendingSyllabus int `json:"pending_syllabus"`
}

func GetTeacherCounts(db *sql.DB) (*TeacherCounts, error) {
	c := &TeacherCounts{}

	queries := []struct {
		sql  string
		dest *int
	}{
		{`SELECT COUNT(*) FROM students WHERE deleted_at IS NULL`, &c.TotalStudents},
		{`SELECT COUNT(*) FROM homework WHERE deleted_at IS NULL AND due_date >= CURRENT_DATE`, &c.ActiveHomework},
		{`SELECT COUNT(*) FROM tests WHERE deleted_at IS NULL AND test_date >= CURRENT_DATE`, &c.UpcomingTests},
		{`SELECT COUNT(*) FROM class_schedules`, &c.ScheduledSlots},
		{`SELECT COUNT(*) FROM attendance WHERE class_date = CURRENT_DATE`, &c.MarkedToday},
		{`SELECT COUNT(*) FROM syllabus_topics WHERE status <> 'completed'`, &c.PendingSyllabus},
	}
	for _, q := range queries {
		if err := db.QueryRow(q.sql).Scan(q.dest); err != nil {
			return nil, err
		}
	}
	return c, nil
}
