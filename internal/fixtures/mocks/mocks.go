// Package mocks provides testify mocks for the repository contracts.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/dto"
	"github.com/sebsst/Banking-app/pkg/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// UserRepository is a mock of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, create dto.UserCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *UserRepository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*dto.UserRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*dto.UserRead), args.Error(1)
	}
	return nil, args.Error(1)
}

// BankRepository is a mock of repository.BankRepository.
type BankRepository struct {
	mock.Mock
}

func (m *BankRepository) Create(ctx context.Context, create dto.BankCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *BankRepository) Update(ctx context.Context, id uuid.UUID, update dto.BankUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *BankRepository) Get(ctx context.Context, id uuid.UUID) (*dto.BankRead, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*dto.BankRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BankRepository) GetByName(ctx context.Context, name string) (*dto.BankRead, error) {
	args := m.Called(ctx, name)
	if b := args.Get(0); b != nil {
		return b.(*dto.BankRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BankRepository) List(ctx context.Context) ([]*dto.BankRead, error) {
	args := m.Called(ctx)
	if b := args.Get(0); b != nil {
		return b.([]*dto.BankRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BankRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BankRepository) HasAccounts(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// AccountRepository is a mock of repository.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Create(ctx context.Context, create dto.AccountCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *AccountRepository) Update(ctx context.Context, userID, id uuid.UUID, update dto.AccountUpdate) error {
	args := m.Called(ctx, userID, id, update)
	return args.Error(0)
}

func (m *AccountRepository) Get(ctx context.Context, userID, id uuid.UUID) (*dto.AccountRead, error) {
	args := m.Called(ctx, userID, id)
	if a := args.Get(0); a != nil {
		return a.(*dto.AccountRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountRepository) GetByName(ctx context.Context, userID, bankID uuid.UUID, name string) (*dto.AccountRead, error) {
	args := m.Called(ctx, userID, bankID, name)
	if a := args.Get(0); a != nil {
		return a.(*dto.AccountRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error) {
	args := m.Called(ctx, userID)
	if a := args.Get(0); a != nil {
		return a.([]*dto.AccountRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// BalanceRepository is a mock of repository.BalanceRepository.
type BalanceRepository struct {
	mock.Mock
}

func (m *BalanceRepository) Create(ctx context.Context, create dto.BalanceCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *BalanceRepository) Update(ctx context.Context, id uuid.UUID, update dto.BalanceUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *BalanceRepository) Get(ctx context.Context, userID, id uuid.UUID) (*dto.BalanceRead, error) {
	args := m.Called(ctx, userID, id)
	if b := args.Get(0); b != nil {
		return b.(*dto.BalanceRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BalanceRepository) List(ctx context.Context, userID uuid.UUID, filter dto.BalanceFilter, page dto.Pagination) ([]*dto.BalanceRead, int64, error) {
	args := m.Called(ctx, userID, filter, page)
	var balances []*dto.BalanceRead
	if b := args.Get(0); b != nil {
		balances = b.([]*dto.BalanceRead)
	}
	return balances, args.Get(1).(int64), args.Error(2)
}

func (m *BalanceRepository) ListAscending(ctx context.Context, userID uuid.UUID, filter dto.BalanceFilter) ([]*dto.BalanceRead, error) {
	args := m.Called(ctx, userID, filter)
	if b := args.Get(0); b != nil {
		return b.([]*dto.BalanceRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BalanceRepository) AmountsByAccount(ctx context.Context, userID, accountID uuid.UUID) ([]decimal.Decimal, error) {
	args := m.Called(ctx, userID, accountID)
	if a := args.Get(0); a != nil {
		return a.([]decimal.Decimal), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BalanceRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// UnitOfWork is a mock of repository.UnitOfWork. Do runs the callback
// against the mock itself, mirroring the transactional contract.
type UnitOfWork struct {
	mock.Mock
	Users    *UserRepository
	Banks    *BankRepository
	Accounts *AccountRepository
	Balances *BalanceRepository
}

// NewUnitOfWork builds a unit of work with fresh repository mocks attached.
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		Users:    &UserRepository{},
		Banks:    &BankRepository{},
		Accounts: &AccountRepository{},
		Balances: &BalanceRepository{},
	}
}

func (m *UnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(m)
}

func (m *UnitOfWork) UserRepository() repository.UserRepository { return m.Users }

func (m *UnitOfWork) BankRepository() repository.BankRepository { return m.Banks }

func (m *UnitOfWork) AccountRepository() repository.AccountRepository { return m.Accounts }

func (m *UnitOfWork) BalanceRepository() repository.BalanceRepository { return m.Balances }

// AssertExpectations asserts every attached repository mock.
func (m *UnitOfWork) AssertExpectations(t mock.TestingT) bool {
	ok := m.Users.AssertExpectations(t)
	ok = m.Banks.AssertExpectations(t) && ok
	ok = m.Accounts.AssertExpectations(t) && ok
	ok = m.Balances.AssertExpectations(t) && ok
	return ok
}
