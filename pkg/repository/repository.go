// Package repository defines the persistence contracts of the tracker.
// Every account or balance operation takes the acting user's id; ownership
// filtering is a mandatory parameter of the call, never an upstream
// assumption.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/dto"
	"github.com/shopspring/decimal"
)

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, create dto.UserCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)
}

// BankRepository persists banks. Banks are shared between users and carry no
// ownership filter.
type BankRepository interface {
	Create(ctx context.Context, create dto.BankCreate) error
	Update(ctx context.Context, id uuid.UUID, update dto.BankUpdate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.BankRead, error)
	GetByName(ctx context.Context, name string) (*dto.BankRead, error)
	// List returns all banks ordered by name ascending.
	List(ctx context.Context) ([]*dto.BankRead, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// HasAccounts reports whether any account still references the bank.
	HasAccounts(ctx context.Context, id uuid.UUID) (bool, error)
}

// AccountRepository persists accounts, always scoped to the owning user.
type AccountRepository interface {
	Create(ctx context.Context, create dto.AccountCreate) error
	Update(ctx context.Context, userID, id uuid.UUID, update dto.AccountUpdate) error
	Get(ctx context.Context, userID, id uuid.UUID) (*dto.AccountRead, error)
	// GetByName resolves an account by name within one user's bank, used
	// by CSV import.
	GetByName(ctx context.Context, userID, bankID uuid.UUID, name string) (*dto.AccountRead, error)
	// ListByUser returns the user's accounts ordered by creation time
	// descending.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// BalanceRepository persists balance snapshots. Ownership is enforced
// transitively through the account join.
type BalanceRepository interface {
	Create(ctx context.Context, create dto.BalanceCreate) error
	Update(ctx context.Context, id uuid.UUID, update dto.BalanceUpdate) error
	Get(ctx context.Context, userID, id uuid.UUID) (*dto.BalanceRead, error)
	// List returns one page ordered by date descending then creation
	// descending, plus the total row count for the filter set.
	List(ctx context.Context, userID uuid.UUID, filter dto.BalanceFilter, page dto.Pagination) ([]*dto.BalanceRead, int64, error)
	// ListAscending returns all matching snapshots ordered by date
	// ascending, for chart series and CSV export.
	ListAscending(ctx context.Context, userID uuid.UUID, filter dto.BalanceFilter) ([]*dto.BalanceRead, error)
	// AmountsByAccount returns the snapshot amounts of one account ordered
	// by ascending date, the input of the statistics computation.
	AmountsByAccount(ctx context.Context, userID, accountID uuid.UUID) ([]decimal.Decimal, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// UnitOfWork provides a transaction boundary and repository access in one
// abstraction, so every repository inside Do shares the same DB session.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error
	UserRepository() UserRepository
	BankRepository() BankRepository
	AccountRepository() AccountRepository
	BalanceRepository() BalanceRepository
}
