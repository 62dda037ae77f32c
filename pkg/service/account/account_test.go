package account_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/internal/fixtures/mocks"
	"github.com/sebsst/Banking-app/pkg/domain"
	"github.com/sebsst/Banking-app/pkg/dto"
	accountsvc "github.com/sebsst/Banking-app/pkg/service/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreate(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	bankID := uuid.New()

	t.Run("normalizes the iban before validation", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		uow.Banks.On("Get", mock.Anything, bankID).Return(&dto.BankRead{ID: bankID}, nil).Once()
		uow.Accounts.On("Create", mock.Anything, mock.MatchedBy(func(c dto.AccountCreate) bool {
			return c.IBAN != nil && *c.IBAN == "FR1420041010050500013M02606" && c.UserID == userID
		})).Return(nil).Once()
		uow.Accounts.On("Get", mock.Anything, userID, mock.Anything).
			Return(&dto.AccountRead{Name: "Compte courant"}, nil).Once()

		iban := "fr14 2004 1010 0505 0001 3m02 606"
		svc := accountsvc.New(uow, slog.Default())
		created, err := svc.Create(context.Background(), userID, accountsvc.CreateInput{
			Name:   "Compte courant",
			Type:   domain.AccountTypeCurrent,
			IBAN:   &iban,
			BankID: bankID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Compte courant", created.Name)
		uow.AssertExpectations(t)
	})

	t.Run("writes the opening snapshot in the same transaction", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		uow.Banks.On("Get", mock.Anything, bankID).Return(&dto.BankRead{ID: bankID}, nil).Once()

		var accountID uuid.UUID
		uow.Accounts.On("Create", mock.Anything, mock.MatchedBy(func(c dto.AccountCreate) bool {
			accountID = c.ID
			return true
		})).Return(nil).Once()
		uow.Balances.On("Create", mock.Anything, mock.MatchedBy(func(c dto.BalanceCreate) bool {
			return c.Amount.Equal(dec("1500.00")) && c.AccountID == accountID
		})).Return(nil).Once()
		uow.Accounts.On("Get", mock.Anything, userID, mock.Anything).
			Return(&dto.AccountRead{}, nil).Once()

		initial := dec("1500")
		svc := accountsvc.New(uow, slog.Default())
		_, err := svc.Create(context.Background(), userID, accountsvc.CreateInput{
			Name:           "Livret A",
			Type:           domain.AccountTypeSavings,
			BankID:         bankID,
			InitialBalance: &initial,
		})
		require.NoError(t, err)
		uow.AssertExpectations(t)
	})

	t.Run("unknown bank fails with invalid reference", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		uow.Banks.On("Get", mock.Anything, bankID).Return(nil, domain.ErrNotFound).Once()

		svc := accountsvc.New(uow, slog.Default())
		_, err := svc.Create(context.Background(), userID, accountsvc.CreateInput{
			Name:   "Compte courant",
			Type:   domain.AccountTypeCurrent,
			BankID: bankID,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidReference)
		uow.Accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("blank iban stored as null", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		uow.Banks.On("Get", mock.Anything, bankID).Return(&dto.BankRead{ID: bankID}, nil).Once()
		uow.Accounts.On("Create", mock.Anything, mock.MatchedBy(func(c dto.AccountCreate) bool {
			return c.IBAN == nil
		})).Return(nil).Once()
		uow.Accounts.On("Get", mock.Anything, userID, mock.Anything).
			Return(&dto.AccountRead{}, nil).Once()

		blank := "   "
		svc := accountsvc.New(uow, slog.Default())
		_, err := svc.Create(context.Background(), userID, accountsvc.CreateInput{
			Name:   "Compte courant",
			Type:   domain.AccountTypeCurrent,
			IBAN:   &blank,
			BankID: bankID,
		})
		require.NoError(t, err)
	})

	t.Run("invalid input never reaches storage", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		svc := accountsvc.New(uow, slog.Default())
		_, err := svc.Create(context.Background(), userID, accountsvc.CreateInput{
			Name:   "X",
			Type:   domain.AccountType("other"),
			BankID: bankID,
		})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
	})
}

func TestList_AttachesStats(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	acctA := uuid.New()
	acctB := uuid.New()

	uow := mocks.NewUnitOfWork()
	uow.Accounts.On("ListByUser", mock.Anything, userID).Return([]*dto.AccountRead{
		{ID: acctA, Name: "Compte courant"},
		{ID: acctB, Name: "Livret A"},
	}, nil).Once()
	uow.Balances.On("AmountsByAccount", mock.Anything, userID, acctA).
		Return([]decimal.Decimal{dec("100"), dec("150")}, nil).Once()
	uow.Balances.On("AmountsByAccount", mock.Anything, userID, acctB).
		Return([]decimal.Decimal{}, nil).Once()

	svc := accountsvc.New(uow, slog.Default())
	accounts, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.True(t, accounts[0].Stats.EvolutionPercentage.Equal(dec("50")))
	assert.Equal(t, 2, accounts[0].Stats.BalanceCount)
	assert.Equal(t, 0, accounts[1].Stats.BalanceCount)
	assert.True(t, accounts[1].Stats.CurrentBalance.IsZero())
}

func TestStats_GlobalBlock(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	acctA := uuid.New()
	acctB := uuid.New()

	uow := mocks.NewUnitOfWork()
	uow.Accounts.On("ListByUser", mock.Anything, userID).Return([]*dto.AccountRead{
		{ID: acctA}, {ID: acctB},
	}, nil).Once()
	uow.Balances.On("AmountsByAccount", mock.Anything, userID, acctA).
		Return([]decimal.Decimal{dec("100"), dec("150")}, nil).Once()
	uow.Balances.On("AmountsByAccount", mock.Anything, userID, acctB).
		Return([]decimal.Decimal{dec("50"), dec("100")}, nil).Once()

	svc := accountsvc.New(uow, slog.Default())
	overview, err := svc.Stats(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2, overview.Global.AccountCount)
	assert.Equal(t, 4, overview.Global.BalanceCount)
	assert.True(t, overview.Global.InitialBalance.Equal(dec("150")))
	assert.True(t, overview.Global.CurrentBalance.Equal(dec("250")))
	assert.True(t, overview.Global.EvolutionPercentage.Equal(dec("66.67")))
}

func TestUpdate_OwnershipBeforeBankCheck(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	id := uuid.New()
	bankID := uuid.New()

	uow := mocks.NewUnitOfWork()
	uow.Accounts.On("Get", mock.Anything, userID, id).Return(nil, domain.ErrNotFound).Once()

	svc := accountsvc.New(uow, slog.Default())
	_, err := svc.Update(context.Background(), userID, id, accountsvc.UpdateInput{
		Name:   "Compte courant",
		Type:   domain.AccountTypeCurrent,
		BankID: bankID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	uow.Banks.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
