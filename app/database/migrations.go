package database

import (
	"database/sql"
	"fmt"
	"log"
)

// RunMigrations creates missing tables and applies schema updates.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name VARCHAR(50) UNIQUE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, role_id)
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			class_label VARCHAR(50) NOT NULL,
			subjects TEXT[] NOT NULL DEFAULT '{}',
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(20),
			parent_id UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			class_date DATE NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'present',
			notes TEXT,
			marked_by UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (student_id, class_date)
		)`,

		`CREATE TABLE IF NOT EXISTS fees (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			month VARCHAR(20) NOT NULL,
			amount_due NUMERIC(12,2) NOT NULL,
			amount_paid NUMERIC(12,2) NOT NULL DEFAULT 0,
			status VARCHAR(10) NOT NULL DEFAULT 'pending',
			payment_date DATE,
			payment_method VARCHAR(50),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS homework (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title VARCHAR(255) NOT NULL,
			subject VARCHAR(100) NOT NULL,
			description TEXT,
			assigned_date DATE NOT NULL DEFAULT CURRENT_DATE,
			due_date DATE NOT NULL,
			assigned_by UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS homework_submissions (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			homework_id UUID NOT NULL REFERENCES homework(id) ON DELETE CASCADE,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			status VARCHAR(10) NOT NULL DEFAULT 'pending',
			submitted_date DATE,
			parent_acknowledged BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (homework_id, student_id)
		)`,

		`CREATE TABLE IF NOT EXISTS tests (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title VARCHAR(255) NOT NULL,
			subject VARCHAR(100) NOT NULL,
			test_date DATE NOT NULL,
			max_marks INTEGER NOT NULL,
			created_by UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS test_results (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			test_id UUID NOT NULL REFERENCES tests(id) ON DELETE CASCADE,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			marks_obtained INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (test_id, student_id)
		)`,

		`CREATE TABLE IF NOT EXISTS class_schedules (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			subject VARCHAR(100) NOT NULL,
			class_label VARCHAR(50) NOT NULL,
			day VARCHAR(10) NOT NULL,
			start_time VARCHAR(5) NOT NULL,
			end_time VARCHAR(5) NOT NULL,
			created_by UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS syllabus_topics (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			subject VARCHAR(100) NOT NULL,
			class_label VARCHAR(50) NOT NULL,
			topic VARCHAR(255) NOT NULL,
			description TEXT,
			status VARCHAR(15) NOT NULL DEFAULT 'pending',
			completion_date DATE,
			created_by UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_attendance_student_date ON attendance (student_id, class_date)`,
		`CREATE INDEX IF NOT EXISTS idx_fees_student_month ON fees (student_id, month)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_student ON homework_submissions (student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_student ON test_results (student_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	if err := seedRoles(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func seedRoles(db *sql.DB) error {
	for _, name := range []string{"admin", "teacher", "student", "parent"} {
		_, err := db.Exec(`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			return fmt.Errorf("failed to seed role %s: %v", name, err)
		}
	}
	return nil
}
