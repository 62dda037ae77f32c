package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/utils"
)

// User is an identity that owns accounts. The password is stored as a bcrypt
// hash; the plain text never leaves the constructor.
type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUser creates a User with a hashed password and current timestamps.
func NewUser(firstName, lastName, email, password string) (*User, error) {
	if firstName == "" || lastName == "" {
		return nil, errors.New("name cannot be empty")
	}
	if !utils.IsEmail(email) {
		return nil, errors.New("invalid email address")
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
