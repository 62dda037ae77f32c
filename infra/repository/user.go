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

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository using the provided *gorm.DB.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, create dto.UserCreate) error {
	u := User{
		ID:        create.ID,
		FirstName: create.FirstName,
		LastName:  create.LastName,
		Email:     create.Email,
		Password:  create.Password,
	}
	err := r.db.WithContext(ctx).Create(&u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmailExists
	}
	return err
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mapUserToDTO(&u), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mapUserToDTO(&u), nil
}

func mapUserToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		HashedPassword: u.Password,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
