package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

// UpsertAttendance records a student's attendance for a date. The
// (student, date) uniqueness constraint makes a second mark replace the
// first instead of duplicating it.
func UpsertAttendance(db *sql.DB, rec *models.AttendanceRecord) error {
	query := `INSERT INTO attendance (student_id, class_date, status, notes, marked_by)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (student_id, class_date)
			  DO UPDATE SET status = EXCLUDED.status, notes = EXCLUDED.notes,
							marked_by = EXCLUDED.marked_by, updated_at = now()
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, rec.StudentID, rec.ClassDate, rec.Status, rec.Notes, rec.MarkedBy).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to record attendance: %v", err)
	}
	return nil
}

// AttendanceFilters narrows an attendance fetch. Zero values mean "no filter".
type AttendanceFilters struct {
	StudentID string
	From      time.Time
	To        time.Time
}

func GetAttendance(db *sql.DB, f AttendanceFilters) ([]models.AttendanceRecord, error) {
	query := `SELECT id, student_id, class_date, status, notes, marked_by, created_at, updated_at
			  FROM attendance WHERE 1=1`
	var args []interface{}

	if f.StudentID != "" {
		args = append(args, f.StudentID)
		query += fmt.Sprintf(" AND student_id = $%d", len(args))
	}
	if !f.From.IsZero() {
		args = append(args, f.From)
		query += fmt.Sprintf(" AND class_date >= $%d", len(args))
	}
	if !f.To.IsZero() {
		args = append(args, f.To)
		query += fmt.Sprintf(" AND class_date <= $%d", len(args))
	}
	query += " ORDER BY class_date DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %v", err)
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var r models.AttendanceRecord
		err := rows.Scan(&r.ID, &r.StudentID, &r.ClassDate, &r.Status, &r.Notes,
			&r.MarkedBy, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetAttendanceByDate returns every student's record for one date,
// joined with student names for the marking screen.
func GetAttendanceByDate(db *sql.DB, date time.Time) ([]models.AttendanceRecord, error) {
	query := `SELECT a.id, a.student_id, a.class_date, a.status, a.notes, a.marked_by,
					 a.created_at, a.updated_at, s.name, s.class_label
			  FROM attendance a
			  JOIN students s ON a.student_id = s.id
			  WHERE a.class_date = $1 AND s.deleted_at IS NULL
			  ORDER BY s.name`
	rows, err := db.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance for date: %v", err)
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var r models.AttendanceRecord
		var name, classLabel string
		err := rows.Scan(&r.ID, &r.StudentID, &r.ClassDate, &r.Status, &r.Notes,
			&r.MarkedBy, &r.CreatedAt, &r.UpdatedAt, &name, &classLabel)
		if err != nil {
			return nil, err
		}
		r.Student = &models.Student{ID: r.StudentID, Name: name, ClassLabel: classLabel}
		records = append(records, r)
	}
	return records, rows.Err()
}
