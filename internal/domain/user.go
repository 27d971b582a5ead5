package domain

import "time"

// User is the domain model for registered accounts. PasswordHash never
// leaves the service boundary.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	BirthDate    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
