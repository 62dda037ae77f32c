package repository

import (
	"context"

	"github.com/sebsst/Banking-app/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides a transaction boundary and repository access in one
// abstraction. Repositories handed out inside Do share the transaction
// session, so multi-write operations (account + opening balance) commit or
// roll back together.
type UoW struct {
	db *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside a database transaction, handing it a UoW bound to the
// transaction session.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: tx})
	})
}

// UserRepository returns a user repository bound to the current session.
func (u *UoW) UserRepository() repository.UserRepository {
	return NewUserRepository(u.db)
}

// BankRepository returns a bank repository bound to the current session.
func (u *UoW) BankRepository() repository.BankRepository {
	return NewBankRepository(u.db)
}

// AccountRepository returns an account repository bound to the current
// session.
func (u *UoW) AccountRepository() repository.AccountRepository {
	return NewAccountRepository(u.db)
}

// BalanceRepository returns a balance repository bound to the current
// session.
func (u *UoW) BalanceRepository() repository.BalanceRepository {
	return NewBalanceRepository(u.db)
}
