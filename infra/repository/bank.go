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

type bankRepository struct {
	db *gorm.DB
}

// NewBankRepository creates a bank repository using the provided *gorm.DB.
func NewBankRepository(db *gorm.DB) repository.BankRepository {
	return &bankRepository{db: db}
}

func (r *bankRepository) Create(ctx context.Context, create dto.BankCreate) error {
	b := Bank{ID: create.ID, Name: create.Name, Code: create.Code}
	err := r.db.WithContext(ctx).Create(&b).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrBankExists
	}
	return err
}

func (r *bankRepository) Update(ctx context.Context, id uuid.UUID, update dto.BankUpdate) error {
	res := r.db.WithContext(ctx).Model(&Bank{}).Where("id = ?", id).Updates(map[string]any{
		"name": update.Name,
		"code": update.Code,
	})
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return domain.ErrBankExists
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bankRepository) Get(ctx context.Context, id uuid.UUID) (*dto.BankRead, error) {
	var b Bank
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mapBankToDTO(&b), nil
}

func (r *bankRepository) GetByName(ctx context.Context, name string) (*dto.BankRead, error) {
	var b Bank
	if err := r.db.WithContext(ctx).First(&b, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mapBankToDTO(&b), nil
}

func (r *bankRepository) List(ctx context.Context) ([]*dto.BankRead, error) {
	var banks []Bank
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&banks).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.BankRead, 0, len(banks))
	for i := range banks {
		result = append(result, mapBankToDTO(&banks[i]))
	}
	return result, nil
}

func (r *bankRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Bank{}, "id = ?", id)
	if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
		return domain.ErrReferentialConflict
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bankRepository) HasAccounts(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Account{}).Where("bank_id = ?", id).Count(&count).Error
	return count > 0, err
}

func mapBankToDTO(b *Bank) *dto.BankRead {
	return &dto.BankRead{
		ID:        b.ID,
		Name:      b.Name,
		Code:      b.Code,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func mapBankToSummary(b *Bank) *dto.BankSummary {
	return &dto.BankSummary{ID: b.ID, Name: b.Name, Code: b.Code}
}
