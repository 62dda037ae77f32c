package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/domain"
)

// AccountCreate is the data needed to persist a new account. The IBAN must
// already be normalized.
type AccountCreate struct {
	ID     uuid.UUID
	Name   string
	Type   domain.AccountType
	IBAN   *string
	UserID uuid.UUID
	BankID uuid.UUID
}

// AccountUpdate carries the replacement values for an account.
type AccountUpdate struct {
	Name   string
	Type   domain.AccountType
	IBAN   *string
	BankID uuid.UUID
}

// AccountRead is a read-optimized view of an account with its bank summary.
type AccountRead struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Type      domain.AccountType `json:"type"`
	IBAN      *string            `json:"iban"`
	UserID    uuid.UUID          `json:"userId"`
	BankID    uuid.UUID          `json:"bankId"`
	Bank      *BankSummary       `json:"bank,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// AccountWithStats pairs an account with its computed balance statistics for
// the list endpoint.
type AccountWithStats struct {
	AccountRead
	Stats domain.AccountStats `json:"stats"`
}

// AccountSummary is the nested account shape attached to balances.
type AccountSummary struct {
	ID   uuid.UUID          `json:"id"`
	Name string             `json:"name"`
	Type domain.AccountType `json:"type"`
	IBAN *string            `json:"iban"`
	Bank *BankSummary       `json:"bank,omitempty"`
}
