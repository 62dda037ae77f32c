// Package account manages user-owned accounts and their derived statistics.
// Every operation is scoped to the acting user; a request for another user's
// account reports not-found.
package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/domain"
	"github.com/sebsst/Banking-app/pkg/dto"
	"github.com/sebsst/Banking-app/pkg/repository"
	"github.com/shopspring/decimal"
)

// Service provides account CRUD plus the statistics aggregation.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates an account service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateInput carries a validated-to-be account. InitialBalance, when set,
// creates an opening snapshot dated today atomically with the account.
type CreateInput struct {
	Name           string
	Type           domain.AccountType
	IBAN           *string
	BankID         uuid.UUID
	InitialBalance *decimal.Decimal
}

// UpdateInput carries the replacement values for an account.
type UpdateInput struct {
	Name   string
	Type   domain.AccountType
	IBAN   *string
	BankID uuid.UUID
}

// Create validates, normalizes the IBAN and persists the account. Both the
// account and its optional opening balance are written in one transaction,
// so partial creation never leaves an account without its intended opening
// snapshot or vice versa.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (created *dto.AccountRead, err error) {
	log := s.logger.With("context", "CreateAccount", "userID", userID)
	iban := normalizeIBAN(in.IBAN)
	if err = domain.ValidateAccount(in.Name, in.Type, iban); err != nil {
		return nil, err
	}
	if in.InitialBalance != nil {
		if err = domain.ValidateAmount(*in.InitialBalance); err != nil {
			return nil, err
		}
	}

	id := uuid.New()
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.BankRepository().Get(ctx, in.BankID); err != nil {
			return domain.ErrInvalidReference
		}
		if err := uow.AccountRepository().Create(ctx, dto.AccountCreate{
			ID:     id,
			Name:   in.Name,
			Type:   in.Type,
			IBAN:   iban,
			UserID: userID,
			BankID: in.BankID,
		}); err != nil {
			return err
		}
		if in.InitialBalance != nil {
			if err := uow.BalanceRepository().Create(ctx, dto.BalanceCreate{
				ID:        uuid.New(),
				Amount:    in.InitialBalance.Round(2),
				Date:      domain.DateOnly(time.Now()),
				AccountID: id,
			}); err != nil {
				return err
			}
		}
		created, err = uow.AccountRepository().Get(ctx, userID, id)
		return err
	})
	if err != nil {
		log.Warn("Account create failed", "error", err)
		return nil, err
	}
	log.Info("Account created", "accountID", id)
	return created, nil
}

// Update validates, re-normalizes the IBAN and replaces the account fields.
// The IBAN uniqueness check naturally excludes the record's own prior value.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, in UpdateInput) (updated *dto.AccountRead, err error) {
	iban := normalizeIBAN(in.IBAN)
	if err = domain.ValidateAccount(in.Name, in.Type, iban); err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.AccountRepository().Get(ctx, userID, id); err != nil {
			return err
		}
		if _, err := uow.BankRepository().Get(ctx, in.BankID); err != nil {
			return domain.ErrInvalidReference
		}
		if err := uow.AccountRepository().Update(ctx, userID, id, dto.AccountUpdate{
			Name:   in.Name,
			Type:   in.Type,
			IBAN:   iban,
			BankID: in.BankID,
		}); err != nil {
			return err
		}
		updated, err = uow.AccountRepository().Get(ctx, userID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Get loads one user-owned account with its bank summary.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*dto.AccountRead, error) {
	return s.uow.AccountRepository().Get(ctx, userID, id)
}

// List returns the user's accounts, newest first, each with its computed
// balance statistics.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*dto.AccountWithStats, error) {
	accounts, err := s.uow.AccountRepository().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.AccountWithStats, 0, len(accounts))
	for _, a := range accounts {
		amounts, err := s.uow.BalanceRepository().AmountsByAccount(ctx, userID, a.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &dto.AccountWithStats{
			AccountRead: *a,
			Stats:       domain.ComputeStats(amounts),
		})
	}
	return result, nil
}

// Stats aggregates per-account statistics and the global block over all of
// the user's accounts.
func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (*dto.StatsOverview, error) {
	accounts, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	perAccount := make([]domain.AccountStats, 0, len(accounts))
	for _, a := range accounts {
		perAccount = append(perAccount, a.Stats)
	}
	return &dto.StatsOverview{
		Accounts: accounts,
		Global:   domain.ComputeGlobalStats(perAccount),
	}, nil
}

// Delete removes the account and, through the cascade, all its balances.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.AccountRepository().Delete(ctx, userID, id)
	})
}

// normalizeIBAN maps absent or blank IBANs to nil and canonicalizes the
// rest.
func normalizeIBAN(iban *string) *string {
	if iban == nil {
		return nil
	}
	normalized := domain.NormalizeIBAN(*iban)
	if normalized == "" {
		return nil
	}
	return &normalized
}
