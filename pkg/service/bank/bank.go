// Package bank manages the shared registry of financial institutions.
package bank

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/domain"
	"github.com/sebsst/Banking-app/pkg/dto"
	"github.com/sebsst/Banking-app/pkg/repository"
)

// Service provides bank CRUD. Banks are shared between users; only deletes
// are guarded, by the RESTRICT rule on dependent accounts.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a bank service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// List returns all banks ordered by name ascending.
func (s *Service) List(ctx context.Context) ([]*dto.BankRead, error) {
	return s.uow.BankRepository().List(ctx)
}

// Get loads one bank by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.BankRead, error) {
	return s.uow.BankRepository().Get(ctx, id)
}

// Create validates and persists a new bank. Fails with domain.ErrBankExists
// when name or code collides.
func (s *Service) Create(ctx context.Context, name string, code *string) (created *dto.BankRead, err error) {
	if err = domain.ValidateBank(name, code); err != nil {
		return nil, err
	}
	id := uuid.New()
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := uow.BankRepository().Create(ctx, dto.BankCreate{ID: id, Name: name, Code: code}); err != nil {
			return err
		}
		created, err = uow.BankRepository().Get(ctx, id)
		return err
	})
	if err != nil {
		s.logger.Warn("Bank create failed", "name", name, "error", err)
		return nil, err
	}
	s.logger.Info("Bank created", "bankID", id, "name", name)
	return created, nil
}

// Update validates and replaces a bank's name and code.
func (s *Service) Update(ctx context.Context, id uuid.UUID, name string, code *string) (updated *dto.BankRead, err error) {
	if err = domain.ValidateBank(name, code); err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := uow.BankRepository().Update(ctx, id, dto.BankUpdate{Name: name, Code: code}); err != nil {
			return err
		}
		updated, err = uow.BankRepository().Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a bank. Fails with domain.ErrReferentialConflict while any
// account references it; the caller must remove dependent accounts first.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		hasAccounts, err := uow.BankRepository().HasAccounts(ctx, id)
		if err != nil {
			return err
		}
		if hasAccounts {
			return domain.ErrReferentialConflict
		}
		return uow.BankRepository().Delete(ctx, id)
	})
}
