// Package domain holds the core entities, invariants and error taxonomy of
// the banking-records tracker.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a resource does not exist or is not
	// owned by the acting user. The two cases are deliberately
	// indistinguishable to prevent cross-user existence leakage.
	ErrNotFound = errors.New("resource not found")
	// ErrEmailExists is returned when registering with an email that is
	// already taken.
	ErrEmailExists = errors.New("email already registered")
	// ErrBankExists is returned when a bank name or code collides with an
	// existing bank.
	ErrBankExists = errors.New("bank with this name or code already exists")
	// ErrIBANExists is returned when an account IBAN collides with an
	// existing account.
	ErrIBANExists = errors.New("account with this IBAN already exists")
	// ErrInvalidReference is returned when a foreign key target is absent,
	// e.g. an unknown bankId or accountId.
	ErrInvalidReference = errors.New("referenced resource does not exist")
	// ErrReferentialConflict is returned when a delete is blocked by
	// dependent resources.
	ErrReferentialConflict = errors.New("resource still referenced by dependents")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthenticated is returned when no valid credential accompanies
	// a request.
	ErrUnauthenticated = errors.New("missing or invalid credential")
)

// FieldError describes a single field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field violation of a request, not just the
// first one.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends a field violation and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// HasErrors reports whether any violation was collected.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// AsErr returns the collected violations as an error, or nil when empty.
func (e *ValidationError) AsErr() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
