package bank_test

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
	authsvc "github.com/sebsst/Banking-app/pkg/service/auth"
	banksvc "github.com/sebsst/Banking-app/pkg/service/bank"
	bankweb "github.com/sebsst/Banking-app/webapi/bank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T, uow *mocks.UnitOfWork) (*fiber.App, string) {
	t.Helper()
	cfg := &config.App{
		Env:  "development",
		Auth: &config.Auth{Jwt: &config.Jwt{Secret: "secret", Expiry: time.Hour}},
	}
	logger := slog.Default()
	auth := authsvc.New(uow, cfg.Auth.Jwt, logger)
	app := fiber.New()
	bankweb.Routes(app, banksvc.New(uow, logger), auth, cfg, logger)

	token, err := auth.GenerateToken(&dto.UserRead{ID: uuid.New(), Email: "bob@example.com"})
	require.NoError(t, err)
	return app, token
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestListBanks(t *testing.T) {
	t.Parallel()
	uow := mocks.NewUnitOfWork()
	uow.Banks.On("List", mock.Anything).Return([]*dto.BankRead{
		{ID: uuid.New(), Name: "BNP Paribas"},
		{ID: uuid.New(), Name: "Société Générale"},
	}, nil).Once()

	app, token := setupApp(t, uow)
	status, body := request(t, app, "GET", "/banks", token, "")
	require.Equal(t, fiber.StatusOK, status)

	var parsed struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Len(t, parsed.Data, 2)
}

func TestBanksRequireAuth(t *testing.T) {
	t.Parallel()
	app, _ := setupApp(t, mocks.NewUnitOfWork())
	status, _ := request(t, app, "GET", "/banks", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestCreateBank(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		uow.Banks.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		uow.Banks.On("Get", mock.Anything, mock.Anything).
			Return(&dto.BankRead{Name: "BNP Paribas"}, nil).Once()

		app, token := setupApp(t, uow)
		status, _ := request(t, app, "POST", "/banks", token, `{"name":"BNP Paribas","code":"BNP"}`)
		assert.Equal(t, fiber.StatusCreated, status)
	})

	t.Run("name too short rejected", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		app, token := setupApp(t, uow)
		status, _ := request(t, app, "POST", "/banks", token, `{"name":"B"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		uow.Banks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestDeleteBank(t *testing.T) {
	t.Parallel()
	id := uuid.New()

	t.Run("referenced bank maps to conflict", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		uow.Banks.On("HasAccounts", mock.Anything, id).Return(true, nil).Once()

		app, token := setupApp(t, uow)
		status, body := request(t, app, "DELETE", "/banks/"+id.String(), token, "")
		assert.Equal(t, fiber.StatusConflict, status)

		var pd map[string]any
		require.NoError(t, json.Unmarshal(body, &pd))
		assert.Equal(t, "referential_conflict", pd["code"])
	})

	t.Run("missing bank maps to not found", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		uow.Banks.On("HasAccounts", mock.Anything, id).Return(false, nil).Once()
		uow.Banks.On("Delete", mock.Anything, id).Return(domain.ErrNotFound).Once()

		app, token := setupApp(t, uow)
		status, _ := request(t, app, "DELETE", "/banks/"+id.String(), token, "")
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("bad uuid rejected", func(t *testing.T) {
		t.Parallel()
		app, token := setupApp(t, mocks.NewUnitOfWork())
		status, _ := request(t, app, "DELETE", "/banks/not-a-uuid", token, "")
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}
