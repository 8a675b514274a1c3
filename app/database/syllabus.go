package database

import (
	"database/sql"
	"fmt"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

const topicColumns = `id, subject, class_label, topic, description, status, completion_date, created_by, created_at, updated_at`

// SyllabusFilters narrows a syllabus fetch.
type SyllabusFilters struct {
	Subject    string
	ClassLabel string
	Status     string
}

func GetSyllabusTopics(db *sql.DB, f SyllabusFilters) ([]models.SyllabusTopic, error) {
	query := `SELECT ` + topicColumns + ` FROM syllabus_topics WHERE 1=1`
	var args []interface{}
	if f.Subject != "" {
		args = append(args, f.Subject)
		query += fmt.Sprintf(" AND subject = $%d", len(args))
	}
	if f.ClassLabel != "" {
		args = append(args, f.ClassLabel)
		query += fmt.Sprintf(" AND class_label = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY subject, topic"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch syllabus topics: %v", err)
	}
	defer rows.Close()

	var topics []models.SyllabusTopic
	for rows.Next() {
		var t models.SyllabusTopic
		err := rows.Scan(&t.ID, &t.Subject, &t.ClassLabel, &t.Topic, &t.Description,
			&t.Status, &t.CompletionDate, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func CreateSyllabusTopic(db *sql.DB, t *models.SyllabusTopic) error {
	query := `INSERT INTO syllabus_topics (subject, class_label, topic, description, status, created_by)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, t.Subject, t.ClassLabel, t.Topic, t.Description, t.Status, t.CreatedBy).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create syllabus topic: %v", err)
	}
	return nil
}

func UpdateSyllabusTopic(db *sql.DB, t *models.SyllabusTopic) error {
	query := `UPDATE syllabus_topics
			  SET subject = $1, class_label = $2, topic = $3, description = $4,
				  status = $5, completion_date = $6, updated_at = now()
			  WHERE id = $7`
	res, err := db.Exec(query, t.Subject, t.ClassLabel, t.Topic, t.Description,
		t.Status, t.CompletionDate, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update syllabus topic: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteSyllabusTopic(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM syllabus_topics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete syllabus topic: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
