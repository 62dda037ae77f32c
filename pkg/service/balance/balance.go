// Package balance manages the dated snapshot ledger: filtered listing,
// pagination and the chart aggregation. Ownership is enforced transitively
// through the account of every snapshot.
package balance

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

// Pagination defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 100
)

// Service provides snapshot CRUD and the chart series builder.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// New creates a balance service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger, now: time.Now}
}

// NewWithClock creates a balance service with an injected clock, for tests
// pinning "now".
func NewWithClock(uow repository.UnitOfWork, logger *slog.Logger, now func() time.Time) *Service {
	return &Service{uow: uow, logger: logger, now: now}
}

// ListInput narrows and pages a snapshot listing. Zero page/limit mean the
// defaults.
type ListInput struct {
	Filter dto.BalanceFilter
	Page   int
	Limit  int
}

// List returns one page ordered most recent first, with the total and page
// count for the filter set.
func (s *Service) List(ctx context.Context, userID uuid.UUID, in ListInput) (*dto.BalancePage, error) {
	page, limit, err := normalizePagination(in.Page, in.Limit)
	if err != nil {
		return nil, err
	}

	balances, total, err := s.uow.BalanceRepository().List(ctx, userID, in.Filter, dto.Pagination{Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return &dto.BalancePage{
		Balances: balances,
		Pagination: dto.PageInfo{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

// Get loads one snapshot with its account and bank context.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*dto.BalanceRead, error) {
	return s.uow.BalanceRepository().Get(ctx, userID, id)
}

// Create validates the amount and date and persists a snapshot on a
// user-owned account. An account outside the user's scope fails with
// domain.ErrInvalidReference.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, date time.Time, accountID uuid.UUID) (created *dto.BalanceRead, err error) {
	if err = domain.ValidateAmount(amount); err != nil {
		return nil, err
	}
	id := uuid.New()
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.AccountRepository().Get(ctx, userID, accountID); err != nil {
			return domain.ErrInvalidReference
		}
		if err := uow.BalanceRepository().Create(ctx, dto.BalanceCreate{
			ID:        id,
			Amount:    amount.Round(2),
			Date:      domain.DateOnly(date),
			AccountID: accountID,
		}); err != nil {
			return err
		}
		created, err = uow.BalanceRepository().Get(ctx, userID, id)
		return err
	})
	if err != nil {
		s.logger.Warn("Balance create failed", "userID", userID, "accountID", accountID, "error", err)
		return nil, err
	}
	return created, nil
}

// Update replaces a snapshot's amount and date after the ownership check.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, amount decimal.Decimal, date time.Time) (updated *dto.BalanceRead, err error) {
	if err = domain.ValidateAmount(amount); err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.BalanceRepository().Get(ctx, userID, id); err != nil {
			return err
		}
		if err := uow.BalanceRepository().Update(ctx, id, dto.BalanceUpdate{
			Amount: amount.Round(2),
			Date:   domain.DateOnly(date),
		}); err != nil {
			return err
		}
		updated, err = uow.BalanceRepository().Get(ctx, userID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes one user-owned snapshot.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.BalanceRepository().Delete(ctx, userID, id)
	})
}

// Chart builds one ordered series per account from the snapshots inside the
// period window, named "{accountName} ({bankName})". Accounts without
// matching snapshots emit no series.
func (s *Service) Chart(ctx context.Context, userID uuid.UUID, accountIDs []uuid.UUID, bankID *uuid.UUID, period domain.Period) ([]*dto.ChartSeries, error) {
	if period == "" {
		period = domain.PeriodUnbounded
	}
	if !period.Valid() {
		ve := &domain.ValidationError{}
		ve.Add("period", "period must be one of: 1d, 7d, 30d, 6m, 1y, all")
		return nil, ve
	}

	filter := dto.BalanceFilter{AccountIDs: accountIDs, BankID: bankID}
	if start := period.Start(s.now()); start != nil {
		startDate := domain.DateOnly(*start)
		filter.StartDate = &startDate
	}

	balances, err := s.uow.BalanceRepository().ListAscending(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	series := make([]*dto.ChartSeries, 0)
	byAccount := make(map[uuid.UUID]*dto.ChartSeries)
	for _, b := range balances {
		entry, ok := byAccount[b.AccountID]
		if !ok {
			entry = &dto.ChartSeries{
				AccountName: b.Account.Name + " (" + b.Account.Bank.Name + ")",
			}
			byAccount[b.AccountID] = entry
			series = append(series, entry)
		}
		entry.Data = append(entry.Data, dto.ChartPoint{Date: b.Date, Amount: b.Amount})
	}
	return series, nil
}

// normalizePagination applies the defaults and collects range violations.
func normalizePagination(page, limit int) (int, int, error) {
	ve := &domain.ValidationError{}
	switch {
	case page == 0:
		page = DefaultPage
	case page < 1:
		ve.Add("page", "page must be at least 1")
	}
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 1 || limit > MaxLimit:
		ve.Add("limit", "limit must be between 1 and 100")
	}
	if err := ve.AsErr(); err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}
