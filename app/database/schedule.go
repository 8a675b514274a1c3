package database

import (
	"database/sql"
	"fmt"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

const scheduleColumns = `id, subject, class_label, day, start_time, end_time, created_by, created_at, updated_at`

func GetScheduleEntries(db *sql.DB, classLabel string) ([]models.ClassScheduleEntry, error) {
	query := `SELECT ` + scheduleColumns + ` FROM class_schedules WHERE 1=1`
	var args []interface{}
	if classLabel != "" {
		args = append(args, classLabel)
		query += fmt.Sprintf(" AND class_label = $%d", len(args))
	}
	query += " ORDER BY day, start_time"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %v", err)
	}
	defer rows.Close()

	var entries []models.ClassScheduleEntry
	for rows.Next() {
		var e models.ClassScheduleEntry
		err := rows.Scan(&e.ID, &e.Subject, &e.ClassLabel, &e.Day, &e.StartTime,
			&e.EndTime, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func GetScheduleEntryByID(db *sql.DB, id string) (*models.ClassScheduleEntry, error) {
	e := &models.ClassScheduleEntry{}
	query := `SELECT ` + scheduleColumns + ` FROM class_schedules WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&e.ID, &e.Subject, &e.ClassLabel, &e.Day,
		&e.StartTime, &e.EndTime, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func CreateScheduleEntry(db *sql.DB, e *models.ClassScheduleEntry) error {
	query := `INSERT INTO class_schedules (subject, class_label, day, start_time, end_time, created_by)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, e.Subject, e.ClassLabel, e.Day, e.StartTime, e.EndTime, e.CreatedBy).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create schedule entry: %v", err)
	}
	return nil
}

func UpdateScheduleEntry(db *sql.DB, e *models.ClassScheduleEntry) error {
	query := `UPDATE class_schedules
			  SET subject = $1, class_label = $2, day = $3, start_time = $4, end_time = $5, updated_at = now()
			  WHERE id = $6`
	res, err := db.Exec(query, e.Subject, e.ClassLabel, e.Day, e.StartTime, e.EndTime, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update schedule entry: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteScheduleEntry(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM class_schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule entry: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CheckScheduleConflict reports whether another entry for the same class
// overlaps the given day and time range.
func CheckScheduleConflict(db *sql.DB, classLabel, day, startTime, endTime, excludeID string) (bool, error) {
	query := `SELECT COUNT(*) FROM class_schedules
			  WHERE class_label = $1
			  AND day = $2
			  AND (
				  (start_time <= $3 AND end_time > $3) OR
				  (start_time < $4 AND end_time >= $4) OR
				  (start_time >= $3 AND end_time <= $4)
			  )`
	args := []interface{}{classLabel, day, startTime, endTime}

	if excludeID != "" {
		query += " AND id != $5"
		args = append(args, excludeID)
	}

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
