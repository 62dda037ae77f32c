// Package user provides the registration flow.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/domain"
	"github.com/sebsst/Banking-app/pkg/dto"
	"github.com/sebsst/Banking-app/pkg/repository"
)

// Service registers and loads users.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a user service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Register creates a user with a hashed credential. Fails with
// domain.ErrEmailExists when the email is taken.
func (s *Service) Register(ctx context.Context, firstName, lastName, email, password string) (created *dto.UserRead, err error) {
	log := s.logger.With("context", "Register", "email", email)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, err := domain.NewUser(firstName, lastName, email, password)
		if err != nil {
			return err
		}
		if err := uow.UserRepository().Create(ctx, dto.UserCreate{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Password:  u.Password,
		}); err != nil {
			return err
		}
		created, err = uow.UserRepository().Get(ctx, u.ID)
		return err
	})
	if err != nil {
		log.Warn("Register failed", "error", err)
		return nil, err
	}
	log.Info("User registered", "userID", created.ID)
	return created, nil
}

// Get loads a user by id.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*dto.UserRead, error) {
	return s.uow.UserRepository().Get(ctx, userID)
}
