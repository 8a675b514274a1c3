package database

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

func scanStudent(row interface {
	Scan(dest ...interface{}) error
}) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.Name, &s.ClassLabel, pq.Array(&s.Subjects),
		&s.Email, &s.Phone, &s.ParentID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

const studentColumns = `id, user_id, name, class_label, subjects, email, phone, parent_id, created_at, updated_at`

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE deleted_at IS NULL ORDER BY name`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %v", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1 AND deleted_at IS NULL`
	return scanStudent(db.QueryRow(query, id))
}

// GetStudentsByParent returns the students linked to a parent account.
func GetStudentsByParent(db *sql.DB, parentID string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE parent_id = $1 AND deleted_at IS NULL ORDER BY name`
	rows, err := db.Query(query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students for parent: %v", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByUser resolves the student row owned by a student-role user.
func GetStudentByUser(db *sql.DB, userID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE user_id = $1 AND deleted_at IS NULL`
	return scanStudent(db.QueryRow(query, userID))
}

func SearchStudents(db *sql.DB, term string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students
			  WHERE deleted_at IS NULL AND (name ILIKE $1 OR email ILIKE $1 OR class_label ILIKE $1)
			  ORDER BY name LIMIT 25`
	rows, err := db.Query(query, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	s.ID = NewID()
	query := `INSERT INTO students (id, user_id, name, class_label, subjects, email, phone, parent_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING created_at, updated_at`
	err := db.QueryRow(query, s.ID, s.UserID, s.Name, s.ClassLabel, pq.Array(s.Subjects),
		s.Email, s.Phone, s.ParentID).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create student: %v", err)
	}
	return nil
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students
			  SET name = $1, class_label = $2, subjects = $3, email = $4, phone = $5, parent_id = $6, updated_at = now()
			  WHERE id = $7 AND deleted_at IS NULL`
	res, err := db.Exec(query, s.Name, s.ClassLabel, pq.Array(s.Subjects), s.Email, s.Phone, s.ParentID, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update student: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteStudent soft-deletes a student.
func DeleteStudent(db *sql.DB, id string) error {
	res, err := db.Exec(`UPDATE students SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// StudentStats backs the students page header cards.
type StudentStats struct {
	TotalStudents int            `json:"total_students"`
	ByClass       map[string]int `json:"by_class"`
}

func GetStudentStats(db *sql.DB) (*StudentStats, error) {
	stats := &StudentStats{ByClass: map[string]int{}}

	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE deleted_at IS NULL`).Scan(&stats.TotalStudents)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT class_label, COUNT(*) FROM students WHERE deleted_at IS NULL GROUP BY class_label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, err
		}
		stats.ByClass[label] = count
	}
	return stats, rows.Err()
}
