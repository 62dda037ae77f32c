package auth_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/internal/fixtures/mocks"
	"github.com/sebsst/Banking-app/pkg/config"
	"github.com/sebsst/Banking-app/pkg/domain"
	"github.com/sebsst/Banking-app/pkg/dto"
	authsvc "github.com/sebsst/Banking-app/pkg/service/auth"
	"github.com/sebsst/Banking-app/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jwtConfig() *config.Jwt {
	return &config.Jwt{Secret: "secret", Expiry: time.Hour}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	user := &dto.UserRead{ID: uuid.New(), Email: "bob@example.com", HashedPassword: hash}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		uow.Users.On("GetByEmail", mock.Anything, "bob@example.com").Return(user, nil).Once()

		svc := authsvc.New(uow, jwtConfig(), slog.Default())
		got, err := svc.Login(context.Background(), "bob@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		uow.Users.On("GetByEmail", mock.Anything, "bob@example.com").Return(user, nil).Once()

		svc := authsvc.New(uow, jwtConfig(), slog.Default())
		_, err := svc.Login(context.Background(), "bob@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email reports the same error", func(t *testing.T) {
		t.Parallel()
		uow := mocks.NewUnitOfWork()
		uow.Users.On("GetByEmail", mock.Anything, "nobody@example.com").
			Return(nil, domain.ErrNotFound).Once()

		svc := authsvc.New(uow, jwtConfig(), slog.Default())
		_, err := svc.Login(context.Background(), "nobody@example.com", "password123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()
	user := &dto.UserRead{ID: uuid.New(), Email: "bob@example.com"}
	svc := authsvc.New(mocks.NewUnitOfWork(), jwtConfig(), slog.Default())

	tokenString, err := svc.GenerateToken(user)
	require.NoError(t, err)

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	userID, err := svc.GetCurrentUserId(parsed)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestGetCurrentUserId_Invalid(t *testing.T) {
	t.Parallel()
	svc := authsvc.New(mocks.NewUnitOfWork(), jwtConfig(), slog.Default())

	_, err := svc.GetCurrentUserId(nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	token := jwt.New(jwt.SigningMethodHS256)
	token.Claims.(jwt.MapClaims)["user_id"] = "not-a-uuid"
	_, err = svc.GetCurrentUserId(token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
