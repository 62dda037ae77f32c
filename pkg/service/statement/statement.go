// Package statement implements CSV import/export of balance snapshots. Rows
// carry (date, bankName, accountName, accountType, iban, amount); import
// resolves names to existing records and never auto-creates.
package statement

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/domain"
	"github.com/sebsst/Banking-app/pkg/dto"
	"github.com/sebsst/Banking-app/pkg/repository"
)

const dateLayout = "2006-01-02"

var csvHeader = []string{"date", "bankName", "accountName", "accountType", "iban", "amount"}

// Service converts between the snapshot ledger and CSV statements.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a statement service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Export writes every snapshot of the user, oldest first, as CSV.
func (s *Service) Export(ctx context.Context, userID uuid.UUID, w io.Writer) error {
	balances, err := s.uow.BalanceRepository().ListAscending(ctx, userID, dto.BalanceFilter{})
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, b := range balances {
		iban := ""
		if b.Account.IBAN != nil {
			iban = *b.Account.IBAN
		}
		record := []string{
			b.Date.Format(dateLayout),
			b.Account.Bank.Name,
			b.Account.Name,
			string(b.Account.Type),
			iban,
			b.Amount.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Import reads CSV rows and creates one snapshot per valid row. Rows
// referencing unknown banks or accounts, or carrying malformed values, are
// rejected individually; the remaining rows are written in one transaction.
func (s *Service) Import(ctx context.Context, userID uuid.UUID, r io.Reader) (*dto.ImportResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if !isHeader(header) {
		return nil, fmt.Errorf("unexpected CSV header: %v", header)
	}

	result := &dto.ImportResult{Rejected: []dto.ImportRowError{}}
	row := 1
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		for {
			row++
			record, err := cr.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				result.Rejected = append(result.Rejected, dto.ImportRowError{Row: row, Message: "malformed CSV row"})
				continue
			}
			create, rowErr := s.resolveRow(ctx, uow, userID, record)
			if rowErr != "" {
				result.Rejected = append(result.Rejected, dto.ImportRowError{Row: row, Message: rowErr})
				continue
			}
			if err := uow.BalanceRepository().Create(ctx, *create); err != nil {
				return err
			}
			result.Imported++
		}
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Statement imported", "userID", userID, "imported", result.Imported, "rejected", len(result.Rejected))
	return result, nil
}

// resolveRow maps one CSV record to a snapshot create, or explains why it
// cannot be imported.
func (s *Service) resolveRow(ctx context.Context, uow repository.UnitOfWork, userID uuid.UUID, record []string) (*dto.BalanceCreate, string) {
	date, err := time.Parse(dateLayout, record[0])
	if err != nil {
		return nil, "invalid date, expected YYYY-MM-DD"
	}
	amount, err := domain.ParseAmount(record[5])
	if err != nil {
		return nil, "invalid amount"
	}
	if t := domain.AccountType(record[3]); record[3] != "" && !t.Valid() {
		return nil, "unknown account type"
	}

	bank, err := uow.BankRepository().GetByName(ctx, record[1])
	if err != nil {
		return nil, "unknown bank: " + record[1]
	}
	account, err := uow.AccountRepository().GetByName(ctx, userID, bank.ID, record[2])
	if err != nil {
		return nil, "unknown account: " + record[2]
	}

	return &dto.BalanceCreate{
		ID:        uuid.New(),
		Amount:    amount,
		Date:      domain.DateOnly(date),
		AccountID: account.ID,
	}, ""
}

func isHeader(record []string) bool {
	if len(record) != len(csvHeader) {
		return false
	}
	for i, field := range csvHeader {
		if record[i] != field {
			return false
		}
	}
	return true
}
