package models

import "time"

// Student represents an enrolled student. The parent link is optional and
// points at a users row carrying the parent role.
type Student struct {
	ID         string     `json:"id" validate:"required,uuid"`
	UserID     *string    `json:"user_id,omitempty"`
	Name       string     `json:"name" validate:"required"`
	ClassLabel string     `json:"class" validate:"required"`
	Subjects   []string   `json:"subjects"`
	Email      string     `json:"email" validate:"required,email"`
	Phone      *string    `json:"phone,omitempty"`
	ParentID   *string    `json:"parent_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`

	Parent *User `json:"parent,omitempty"`
}
