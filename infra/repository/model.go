// Package repository contains the GORM-backed implementations of the
// persistence contracts, one file per aggregate.
package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is the users table. Deleting a user cascades to its accounts.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"size:50;not null"`
	LastName  string    `gorm:"size:50;not null"`
	Email     string    `gorm:"size:255;uniqueIndex;not null"`
	Password  string    `gorm:"size:100;not null"`
	Accounts  []Account `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string { return "users" }

// Bank is the banks table. Name and code are globally unique; the unique
// index on the nullable code admits multiple NULLs.
type Bank struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;uniqueIndex;not null"`
	Code      *string   `gorm:"size:20;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Bank model.
func (Bank) TableName() string { return "banks" }

// Account is the accounts table. The bank reference is RESTRICT: a bank with
// dependent accounts cannot be removed. Balances cascade on account delete.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Type      string    `gorm:"size:10;not null;default:'current'"`
	IBAN      *string   `gorm:"column:iban;size:34;uniqueIndex"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	BankID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Bank      Bank      `gorm:"foreignKey:BankID;constraint:OnDelete:RESTRICT"`
	Balances  []Balance `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string { return "accounts" }

// Balance is the balances table, the dated snapshot series. No uniqueness on
// (account, date): several snapshots per day are allowed.
type Balance struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount    decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Date      time.Time       `gorm:"type:date;not null;index:idx_balances_account_date,priority:2;index"`
	AccountID uuid.UUID       `gorm:"type:uuid;not null;index:idx_balances_account_date,priority:1"`
	Account   Account         `gorm:"foreignKey:AccountID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Balance model.
func (Balance) TableName() string { return "balances" }

// Models lists every table for migration, leaf-last so foreign keys resolve.
func Models() []any {
	return []any{&User{}, &Bank{}, &Account{}, &Balance{}}
}
