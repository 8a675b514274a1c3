package database

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, phone, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true AND deleted_at IS NULL`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.Phone, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, phone, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true AND deleted_at IS NULL`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.Phone, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `SELECT r.id, r.name, r.is_active, r.created_at, r.updated_at
			  FROM roles r
			  JOIN user_roles ur ON r.id = ur.role_id
			  WHERE ur.user_id = $1 AND r.is_active = true`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name, &role.IsActive, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// CreateUser inserts a user with the given role and a bcrypt-hashed password.
func CreateUser(db *sql.DB, user *models.User, roleName string) error {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	user.ID = NewID()
	query := `INSERT INTO users (id, email, password, first_name, last_name, phone)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING created_at, updated_at`
	err = tx.QueryRow(query, user.ID, user.Email, hashed, user.FirstName, user.LastName, user.Phone).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %v", err)
	}

	_, err = tx.Exec(`INSERT INTO user_roles (user_id, role_id)
					  SELECT $1, id FROM roles WHERE name = $2`, user.ID, roleName)
	if err != nil {
		return fmt.Errorf("failed to assign role %s: %v", roleName, err)
	}

	return tx.Commit()
}

// UpdatePassword replaces a user's password with a freshly hashed one.
func UpdatePassword(db *sql.DB, userID, newPassword string) error {
	hashed, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}
	_, err = db.Exec(`UPDATE users SET password = $1, updated_at = now() WHERE id = $2`, hashed, userID)
	return err
}
