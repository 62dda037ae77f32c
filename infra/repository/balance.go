package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/domain"
	"github.com/sebsst/Banking-app/pkg/dto"
	"github.com/sebsst/Banking-app/pkg/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type balanceRepository struct {
	db *gorm.DB
}

// NewBalanceRepository creates a balance repository using the provided
// *gorm.DB.
func NewBalanceRepository(db *gorm.DB) repository.BalanceRepository {
	return &balanceRepository{db: db}
}

func (r *balanceRepository) Create(ctx context.Context, create dto.BalanceCreate) error {
	b := Balance{
		ID:        create.ID,
		Amount:    create.Amount,
		Date:      create.Date,
		AccountID: create.AccountID,
	}
	err := r.db.WithContext(ctx).Create(&b).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrInvalidReference
	}
	return err
}

// Update replaces amount and date. Ownership is checked by the caller via
// Get inside the same unit of work.
func (r *balanceRepository) Update(ctx context.Context, id uuid.UUID, update dto.BalanceUpdate) error {
	res := r.db.WithContext(ctx).Model(&Balance{}).Where("id = ?", id).Updates(map[string]any{
		"amount": update.Amount,
		"date":   update.Date,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *balanceRepository) Get(ctx context.Context, userID, id uuid.UUID) (*dto.BalanceRead, error) {
	var b Balance
	err := r.db.WithContext(ctx).
		Joins("JOIN accounts ON accounts.id = balances.account_id").
		Where("balances.id = ? AND accounts.user_id = ?", id, userID).
		Preload("Account.Bank").
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mapBalanceToDTO(&b), nil
}

func (r *balanceRepository) List(ctx context.Context, userID uuid.UUID, filter dto.BalanceFilter, page dto.Pagination) ([]*dto.BalanceRead, int64, error) {
	base := r.filtered(ctx, userID, filter)

	var total int64
	if err := base.Model(&Balance{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var balances []Balance
	err := base.
		Order("balances.date DESC, balances.created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Preload("Account.Bank").
		Find(&balances).Error
	if err != nil {
		return nil, 0, err
	}
	return mapBalancesToDTO(balances), total, nil
}

func (r *balanceRepository) ListAscending(ctx context.Context, userID uuid.UUID, filter dto.BalanceFilter) ([]*dto.BalanceRead, error) {
	var balances []Balance
	err := r.filtered(ctx, userID, filter).
		Order("balances.date ASC, balances.created_at ASC").
		Preload("Account.Bank").
		Find(&balances).Error
	if err != nil {
		return nil, err
	}
	return mapBalancesToDTO(balances), nil
}

func (r *balanceRepository) AmountsByAccount(ctx context.Context, userID, accountID uuid.UUID) ([]decimal.Decimal, error) {
	var amounts []decimal.Decimal
	err := r.db.WithContext(ctx).Model(&Balance{}).
		Joins("JOIN accounts ON accounts.id = balances.account_id").
		Where("accounts.user_id = ? AND balances.account_id = ?", userID, accountID).
		Order("balances.date ASC, balances.created_at ASC").
		Pluck("balances.amount", &amounts).Error
	if err != nil {
		return nil, err
	}
	return amounts, nil
}

func (r *balanceRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND account_id IN (?)",
			id,
			r.db.Model(&Account{}).Select("id").Where("user_id = ?", userID),
		).
		Delete(&Balance{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// filtered builds the ownership-scoped, filter-narrowed query shared by the
// listing paths.
func (r *balanceRepository) filtered(ctx context.Context, userID uuid.UUID, filter dto.BalanceFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&Balance{}).
		Joins("JOIN accounts ON accounts.id = balances.account_id").
		Where("accounts.user_id = ?", userID)
	if filter.AccountID != nil {
		q = q.Where("balances.account_id = ?", *filter.AccountID)
	}
	if len(filter.AccountIDs) > 0 {
		q = q.Where("balances.account_id IN ?", filter.AccountIDs)
	}
	if filter.BankID != nil {
		q = q.Where("accounts.bank_id = ?", *filter.BankID)
	}
	if filter.StartDate != nil {
		q = q.Where("balances.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("balances.date <= ?", *filter.EndDate)
	}
	return q
}

func mapBalancesToDTO(balances []Balance) []*dto.BalanceRead {
	result := make([]*dto.BalanceRead, 0, len(balances))
	for i := range balances {
		result = append(result, mapBalanceToDTO(&balances[i]))
	}
	return result
}

func mapBalanceToDTO(b *Balance) *dto.BalanceRead {
	return &dto.BalanceRead{
		ID:        b.ID,
		Amount:    b.Amount,
		Date:      b.Date,
		AccountID: b.AccountID,
		Account:   mapAccountToSummary(&b.Account),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
