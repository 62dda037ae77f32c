package balance_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/internal/fixtures/mocks"
	"github.com/sebsst/Banking-app/pkg/config"
	"github.com/sebsst/Banking-app/pkg/domain"
	"github.com/sebsst/Banking-app/pkg/dto"
	"github.com/sebsst/Banking-app/pkg/metrics"
	authsvc "github.com/sebsst/Banking-app/pkg/service/auth"
	balancesvc "github.com/sebsst/Banking-app/pkg/service/balance"
	balanceweb "github.com/sebsst/Banking-app/webapi/balance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T, uow *mocks.UnitOfWork) (*fiber.App, string, uuid.UUID) {
	t.Helper()
	cfg := &config.App{
		Env:  "development",
		Auth: &config.Auth{Jwt: &config.Jwt{Secret: "secret", Expiry: time.Hour}},
	}
	logger := slog.Default()
	auth := authsvc.New(uow, cfg.Auth.Jwt, logger)
	app := fiber.New()
	balanceweb.Routes(app, balancesvc.New(uow, logger), auth, cfg, logger, metrics.NewCollector(logger))

	userID := uuid.New()
	token, err := auth.GenerateToken(&dto.UserRead{ID: userID, Email: "bob@example.com"})
	require.NoError(t, err)
	return app, token, userID
}

func request(t *testing.T, app *fiber.App, method, path, token, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestListBalances(t *testing.T) {
	t.Parallel()

	t.Run("query filters reach the repository", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		app, token, userID := setupApp(t, uow)

		accountID := uuid.New()
		start, _ := time.Parse("2006-01-02", "2024-01-01")
		uow.Balances.On("List", mock.Anything, userID,
			dto.BalanceFilter{AccountID: &accountID, StartDate: &start},
			dto.Pagination{Page: 2, Limit: 10}).
			Return([]*dto.BalanceRead{}, int64(15), nil).Once()

		status, body := request(t, app, "GET",
			"/balances?accountId="+accountID.String()+"&startDate=2024-01-01&page=2&limit=10", token, "")
		require.Equal(t, fiber.StatusOK, status)

		var parsed struct {
			Data dto.BalancePage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &parsed))
		assert.Equal(t, int64(2), parsed.Data.Pagination.Pages)
		uow.AssertExpectations(t)
	})

	t.Run("invalid query values collected", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		app, token, _ := setupApp(t, uow)

		status, body := request(t, app, "GET",
			"/balances?accountId=nope&startDate=01/01/2024&page=x", token, "")
		assert.Equal(t, fiber.StatusBadRequest, status)

		var pd struct {
			Code   string `json:"code"`
			Errors []any  `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(body, &pd))
		assert.Equal(t, "validation_failed", pd.Code)
		assert.Len(t, pd.Errors, 3)
	})
}

func TestCreateBalanceHandler(t *testing.T) {
	t.Parallel()
	accountID := uuid.New()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		app, token, userID := setupApp(t, uow)

		uow.Accounts.On("Get", mock.Anything, userID, accountID).
			Return(&dto.AccountRead{ID: accountID}, nil).Once()
		uow.Balances.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		uow.Balances.On("Get", mock.Anything, userID, mock.Anything).
			Return(&dto.BalanceRead{AccountID: accountID}, nil).Once()

		status, _ := request(t, app, "POST", "/balances", token,
			`{"amount":"1500.50","date":"2024-03-15","accountId":"`+accountID.String()+`"}`)
		assert.Equal(t, fiber.StatusCreated, status)
	})

	t.Run("foreign account maps to invalid reference", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		app, token, userID := setupApp(t, uow)

		uow.Accounts.On("Get", mock.Anything, userID, accountID).
			Return(nil, domain.ErrNotFound).Once()

		status, body := request(t, app, "POST", "/balances", token,
			`{"amount":"100","date":"2024-03-15","accountId":"`+accountID.String()+`"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)

		var pd map[string]any
		require.NoError(t, json.Unmarshal(body, &pd))
		assert.Equal(t, "invalid_reference", pd["code"])
	})

	t.Run("bad amount and date collected together", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		app, token, _ := setupApp(t, uow)

		status, body := request(t, app, "POST", "/balances", token,
			`{"amount":"abc","date":"15/03/2024","accountId":"`+accountID.String()+`"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)

		var pd struct {
			Errors []any `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(body, &pd))
		assert.Len(t, pd.Errors, 2)
	})
}

func TestChartRoute(t *testing.T) {
	t.Parallel()

	t.Run("chart path is not captured as an id", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		app, token, userID := setupApp(t, uow)

		uow.Balances.On("ListAscending", mock.Anything, userID, mock.Anything).
			Return([]*dto.BalanceRead{}, nil).Once()

		status, _ := request(t, app, "GET", "/balances/chart/data", token, "")
		assert.Equal(t, fiber.StatusOK, status)
		uow.AssertExpectations(t)
	})

	t.Run("invalid period rejected", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		app, token, _ := setupApp(t, uow)

		status, _ := request(t, app, "GET", "/balances/chart/data?period=2w", token, "")
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("account ids are split on commas", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		app, token, userID := setupApp(t, uow)

		a, b := uuid.New(), uuid.New()
		uow.Balances.On("ListAscending", mock.Anything, userID,
			dto.BalanceFilter{AccountIDs: []uuid.UUID{a, b}}).
			Return([]*dto.BalanceRead{}, nil).Once()

		status, _ := request(t, app, "GET",
			"/balances/chart/data?accountIds="+a.String()+","+b.String(), token, "")
		assert.Equal(t, fiber.StatusOK, status)
		uow.AssertExpectations(t)
	})
}
