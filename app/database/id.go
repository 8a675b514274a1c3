package database

import "github.com/google/uuid"

// NewID mints the primary key for app-side inserts. Rows created in
// plain SQL still fall back to the uuid_generate_v4() column default.
func NewID() string {
	return uuid.NewString()
}
