package auth

import (
	"database/sql"
	"errors"

	"github.com/SaifulSk/tuition-plus-connect/app/database"
	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

var (
	// ErrScopeForbidden means the acting user may not read the requested student.
	ErrScopeForbidden = errors.New("student not accessible to this account")
	// ErrScopeRequired means the caller must name a student for this role.
	ErrScopeRequired = errors.New("student_id is required for this account")
)

// ResolveStudentScope decides which student a request may read records
// for. Teachers and admins see any student (or all, when none is
// named). A student-role user is pinned to their own student row; a
// parent may only name a linked student. The acting user is always
// passed in from the request context.
func ResolveStudentScope(db *sql.DB, user *models.User, requested string) (string, error) {
	if user.HasRole(models.RoleTeacher) || user.HasRole(models.RoleAdmin) {
		return requested, nil
	}

	if user.HasRole(models.RoleStudent) {
		own, err := database.GetStudentByUser(db, user.ID)
		if err != nil {
			return "", err
		}
		if requested != "" && requested != own.ID {
			return "", ErrScopeForbidden
		}
		return own.ID, nil
	}

	if user.HasRole(models.RoleParent) {
		if requested == "" {
			return "", ErrScopeRequired
		}
		student, err := database.GetStudentByID(db, requested)
		if err != nil {
			return "", err
		}
		if student.ParentID == nil || *student.ParentID != user.ID {
			return "", ErrScopeForbidden
		}
		return student.ID, nil
	}

	return "", ErrScopeForbidden
}
