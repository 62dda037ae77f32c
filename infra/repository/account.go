package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/domain"
	"github.com/sebsst/Banking-app/pkg/dto"
	"github.com/sebsst/Banking-app/pkg/repository"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository using the provided
// *gorm.DB.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, create dto.AccountCreate) error {
	a := Account{
		ID:     create.ID,
		Name:   create.Name,
		Type:   string(create.Type),
		IBAN:   create.IBAN,
		UserID: create.UserID,
		BankID: create.BankID,
	}
	err := r.db.WithContext(ctx).Create(&a).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrIBANExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrInvalidReference
	}
	return err
}

func (r *accountRepository) Update(ctx context.Context, userID, id uuid.UUID, update dto.AccountUpdate) error {
	res := r.db.WithContext(ctx).Model(&Account{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"name":    update.Name,
			"type":    string(update.Type),
			"iban":    update.IBAN,
			"bank_id": update.BankID,
		})
	switch {
	case errors.Is(res.Error, gorm.ErrDuplicatedKey):
		return domain.ErrIBANExists
	case errors.Is(res.Error, gorm.ErrForeignKeyViolated):
		return domain.ErrInvalidReference
	case res.Error != nil:
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *accountRepository) Get(ctx context.Context, userID, id uuid.UUID) (*dto.AccountRead, error) {
	var a Account
	err := r.db.WithContext(ctx).Preload("Bank").
		First(&a, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mapAccountToDTO(&a), nil
}

func (r *accountRepository) GetByName(ctx context.Context, userID, bankID uuid.UUID, name string) (*dto.AccountRead, error) {
	var a Account
	err := r.db.WithContext(ctx).Preload("Bank").
		First(&a, "user_id = ? AND bank_id = ? AND name = ?", userID, bankID, name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mapAccountToDTO(&a), nil
}

func (r *accountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error) {
	var accounts []Account
	err := r.db.WithContext(ctx).Preload("Bank").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.AccountRead, 0, len(accounts))
	for i := range accounts {
		result = append(result, mapAccountToDTO(&accounts[i]))
	}
	return result, nil
}

// Delete removes the account; its balances go with it through the CASCADE
// constraint.
func (r *accountRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Account{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func mapAccountToDTO(a *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:        a.ID,
		Name:      a.Name,
		Type:      domain.AccountType(a.Type),
		IBAN:      a.IBAN,
		UserID:    a.UserID,
		BankID:    a.BankID,
		Bank:      mapBankToSummary(&a.Bank),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func mapAccountToSummary(a *Account) *dto.AccountSummary {
	return &dto.AccountSummary{
		ID:   a.ID,
		Name: a.Name,
		Type: domain.AccountType(a.Type),
		IBAN: a.IBAN,
		Bank: mapBankToSummary(&a.Bank),
	}
}
