package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceCreate is the data needed to persist a new balance snapshot.
type BalanceCreate struct {
	ID        uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time
	AccountID uuid.UUID
}

// BalanceUpdate carries the replacement values for a balance snapshot.
type BalanceUpdate struct {
	Amount decimal.Decimal
	Date   time.Time
}

// BalanceRead is a read-optimized view of a balance snapshot with its
// account and bank context.
type BalanceRead struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	AccountID uuid.UUID       `json:"accountId"`
	Account   *AccountSummary `json:"account,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// BalanceFilter narrows a balance listing. Nil fields are ignored; the date
// range is inclusive on both ends.
type BalanceFilter struct {
	AccountID  *uuid.UUID
	AccountIDs []uuid.UUID
	BankID     *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// Pagination bounds a listing window. Page starts at 1.
type Pagination struct {
	Page  int
	Limit int
}

// Offset is the row offset of the requested page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo describes the result window of a listing.
type PageInfo struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// BalancePage is one page of a filtered balance listing.
type BalancePage struct {
	Balances   []*BalanceRead `json:"balances"`
	Pagination PageInfo       `json:"pagination"`
}
