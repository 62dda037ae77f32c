// Package dto carries the create/update/read shapes exchanged between the
// services and the repositories.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to persist a new user.
type UserCreate struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	// Password is the bcrypt hash, never the plain text.
	Password string
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
