package domain

import "time"

// User is the identity anchor. ID is an opaque internal string; Subject is the
// external auth subject and is unique across users.
type User struct {
	ID        string
	Subject   string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
