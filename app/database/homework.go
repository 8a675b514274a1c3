package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

const homeworkColumns = `id, title, subject, description, assigned_date, due_date, assigned_by, created_at, updated_at`

func GetHomework(db *sql.DB, subject string) ([]models.Homework, error) {
	query := `SELECT ` + homeworkColumns + ` FROM homework WHERE deleted_at IS NULL`
	var args []interface{}
	if subject != "" {
		args = append(args, subject)
		query += fmt.Sprintf(" AND subject = $%d", len(args))
	}
	query += " ORDER BY due_date DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch homework: %v", err)
	}
	defer rows.Close()

	var list []models.Homework
	for rows.Next() {
		var h models.Homework
		err := rows.Scan(&h.ID, &h.Title, &h.Subject, &h.Description, &h.AssignedDate,
			&h.DueDate, &h.AssignedBy, &h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

func GetHomeworkByID(db *sql.DB, id string) (*models.Homework, error) {
	h := &models.Homework{}
	query := `SELECT ` + homeworkColumns + ` FROM homework WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, id).Scan(&h.ID, &h.Title, &h.Subject, &h.Description,
		&h.AssignedDate, &h.DueDate, &h.AssignedBy, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// CreateHomework inserts the assignment and seeds a pending submission
// row for each target student, so every (homework, student) pairing that
// was assigned has exactly one submission.
func CreateHomework(db *sql.DB, h *models.Homework, studentIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO homework (title, subject, description, assigned_date, due_date, assigned_by)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query, h.Title, h.Subject, h.Description, h.AssignedDate, h.DueDate, h.AssignedBy).
		Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create homework: %v", err)
	}

	for _, studentID := range studentIDs {
		_, err = tx.Exec(`INSERT INTO homework_submissions (homework_id, student_id, status)
						  VALUES ($1, $2, 'pending')
						  ON CONFLICT (homework_id, student_id) DO NOTHING`, h.ID, studentID)
		if err != nil {
			return fmt.Errorf("failed to seed submission for student %s: %v", studentID, err)
		}
	}

	return tx.Commit()
}

// AddSubmission assigns the homework to one more student after the
// fact. Re-assigning an already assigned student is a no-op.
func AddSubmission(db *sql.DB, homeworkID, studentID string) (*models.HomeworkSubmission, error) {
	sub := &models.HomeworkSubmission{
		HomeworkID: homeworkID,
		StudentID:  studentID,
		Status:     models.SubmissionPending,
	}
	query := `INSERT INTO homework_submissions (homework_id, student_id, status)
			  VALUES ($1, $2, 'pending')
			  ON CONFLICT (homework_id, student_id) DO UPDATE SET updated_at = now()
			  RETURNING id, status, created_at, updated_at`
	err := db.QueryRow(query, homeworkID, studentID).
		Scan(&sub.ID, &sub.Status, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to assign submission: %v", err)
	}
	return sub, nil
}

func UpdateHomework(db *sql.DB, h *models.Homework) error {
	query := `UPDATE homework
			  SET title = $1, subject = $2, description = $3, due_date = $4, updated_at = now()
			  WHERE id = $5 AND deleted_at IS NULL`
	res, err := db.Exec(query, h.Title, h.Subject, h.Description, h.DueDate, h.ID)
	if err != nil {
		return fmt.Errorf("failed to update homework: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteHomework(db *sql.DB, id string) error {
	res, err := db.Exec(`UPDATE homework SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to delete homework: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

const submissionColumns = `id, homework_id, student_id, status, submitted_date, parent_acknowledged, created_at, updated_at`

// SubmissionFilters narrows a submission fetch.
type SubmissionFilters struct {
	HomeworkID string
	StudentID  string
}

func GetSubmissions(db *sql.DB, f SubmissionFilters) ([]models.HomeworkSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM homework_submissions WHERE 1=1`
	var args []interface{}
	if f.HomeworkID != "" {
		args = append(args, f.HomeworkID)
		query += fmt.Sprintf(" AND homework_id = $%d", len(args))
	}
	if f.StudentID != "" {
		args = append(args, f.StudentID)
		query += fmt.Sprintf(" AND student_id = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submissions: %v", err)
	}
	defer rows.Close()

	var subs []models.HomeworkSubmission
	for rows.Next() {
		var s models.HomeworkSubmission
		err := rows.Scan(&s.ID, &s.HomeworkID, &s.StudentID, &s.Status, &s.SubmittedDate,
			&s.ParentAcknowledged, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func GetSubmissionByID(db *sql.DB, id string) (*models.HomeworkSubmission, error) {
	s := &models.HomeworkSubmission{}
	query := `SELECT ` + submissionColumns + ` FROM homework_submissions WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&s.ID, &s.HomeworkID, &s.StudentID, &s.Status,
		&s.SubmittedDate, &s.ParentAcknowledged, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateSubmissionStatus moves a submission through its lifecycle and
// stamps the submitted date when the work arrives.
func UpdateSubmissionStatus(db *sql.DB, id string, status models.SubmissionStatus, submittedAt *time.Time) error {
	res, err := db.Exec(`UPDATE homework_submissions
						 SET status = $1, submitted_date = COALESCE($2, submitted_date), updated_at = now()
						 WHERE id = $3`, status, submittedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update submission: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AcknowledgeSubmission sets the parent-acknowledged flag.
func AcknowledgeSubmission(db *sql.DB, id string) error {
	res, err := db.Exec(`UPDATE homework_submissions
						 SET parent_acknowledged = true, updated_at = now()
						 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to acknowledge submission: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
