package dto

import (
	"time"

	"github.com/google/uuid"
)

// BankCreate is the data needed to persist a new bank.
type BankCreate struct {
	ID   uuid.UUID
	Name string
	Code *string
}

// BankUpdate carries the replacement values for a bank.
type BankUpdate struct {
	Name string
	Code *string
}

// BankRead is a read-optimized view of a bank.
type BankRead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      *string   `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BankSummary is the nested bank shape attached to accounts and balances.
type BankSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Code *string   `json:"code"`
}
