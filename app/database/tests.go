package database

import (
	"database/sql"
	"fmt"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

const testColumns = `id, title, subject, test_date, max_marks, created_by, created_at, updated_at`

func GetTests(db *sql.DB, subject string) ([]models.Test, error) {
	query := `SELECT ` + testColumns + ` FROM tests WHERE deleted_at IS NULL`
	var args []interface{}
	if subject != "" {
		args = append(args, subject)
		query += fmt.Sprintf(" AND subject = $%d", len(args))
	}
	query += " ORDER BY test_date DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tests: %v", err)
	}
	defer rows.Close()

	var tests []models.Test
	for rows.Next() {
		var t models.Test
		err := rows.Scan(&t.ID, &t.Title, &t.Subject, &t.TestDate, &t.MaxMarks,
			&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, rows.Err()
}

func GetTestByID(db *sql.DB, id string) (*models.Test, error) {
	t := &models.Test{}
	query := `SELECT ` + testColumns + ` FROM tests WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, id).Scan(&t.ID, &t.Title, &t.Subject, &t.TestDate,
		&t.MaxMarks, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func CreateTest(db *sql.DB, t *models.Test) error {
	query := `INSERT INTO tests (title, subject, test_date, max_marks, created_by)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, t.Title, t.Subject, t.TestDate, t.MaxMarks, t.CreatedBy).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create test: %v", err)
	}
	return nil
}

func UpdateTest(db *sql.DB, t *models.Test) error {
	query := `UPDATE tests
			  SET title = $1, subject = $2, test_date = $3, max_marks = $4, updated_at = now()
			  WHERE id = $5 AND deleted_at IS NULL`
	res, err := db.Exec(query, t.Title, t.Subject, t.TestDate, t.MaxMarks, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update test: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteTest(db *sql.DB, id string) error {
	res, err := db.Exec(`UPDATE tests SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to delete test: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpsertTestResult records a student's marks for a test; re-entering
// marks replaces the earlier row.
func UpsertTestResult(db *sql.DB, r *models.TestResult) error {
	query := `INSERT INTO test_results (test_id, student_id, marks_obtained)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (test_id, student_id)
			  DO UPDATE SET marks_obtained = EXCLUDED.marks_obtained, updated_at = now()
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, r.TestID, r.StudentID, r.MarksObtained).
		Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to record test result: %v", err)
	}
	return nil
}

// ResultFilters narrows a result fetch.
type ResultFilters struct {
	TestID    string
	StudentID string
}

// GetResultsWithTests fetches results plus the parent tests keyed by id,
// the join shape the performance summarizer takes.
func GetResultsWithTests(db *sql.DB, f ResultFilters) ([]models.TestResult, map[string]models.Test, error) {
	query := `SELECT r.id, r.test_id, r.student_id, r.marks_obtained, r.created_at, r.updated_at,
					 t.id, t.title, t.subject, t.test_date, t.max_marks, t.created_by, t.created_at, t.updated_at
			  FROM test_results r
			  JOIN tests t ON r.test_id = t.id
			  WHERE t.deleted_at IS NULL`
	var args []interface{}
	if f.TestID != "" {
		args = append(args, f.TestID)
		query += fmt.Sprintf(" AND r.test_id = $%d", len(args))
	}
	if f.StudentID != "" {
		args = append(args, f.StudentID)
		query += fmt.Sprintf(" AND r.student_id = $%d", len(args))
	}
	query += " ORDER BY t.test_date DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch test results: %v", err)
	}
	defer rows.Close()

	var results []models.TestResult
	tests := map[string]models.Test{}
	for rows.Next() {
		var r models.TestResult
		var t models.Test
		err := rows.Scan(&r.ID, &r.TestID, &r.StudentID, &r.MarksObtained, &r.CreatedAt, &r.UpdatedAt,
			&t.ID, &t.Title, &t.Subject, &t.TestDate, &t.MaxMarks, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, nil, err
		}
		results = append(results, r)
		tests[t.ID] = t
	}
	return results, tests, rows.Err()
}
