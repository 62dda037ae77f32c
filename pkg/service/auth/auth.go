// Package auth issues and resolves the bearer credentials that every other
// operation requires.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/config"
	"github.com/sebsst/Banking-app/pkg/domain"
	"github.com/sebsst/Banking-app/pkg/dto"
	"github.com/sebsst/Banking-app/pkg/repository"
	"github.com/sebsst/Banking-app/pkg/utils"
)

// Service authenticates users and converts between credentials and user ids.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

// New creates an auth service signing HS256 tokens with the configured
// secret.
func New(uow repository.UnitOfWork, cfg *config.Jwt, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Bcrypt hash of an unused password, compared on unknown emails to keep
// login timing flat.
const dummyHash = "$2a$14$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Login verifies the email/password pair and returns the user on success.
func (s *Service) Login(ctx context.Context, email, password string) (*dto.UserRead, error) {
	log := s.logger.With("context", "Login", "email", email)
	u, err := s.uow.UserRepository().GetByEmail(ctx, email)
	if err != nil {
		// Always run a hash comparison to avoid leaking user
		// existence through response timing.
		_ = utils.CheckPasswordHash(password, dummyHash)
		log.Warn("Login failed", "error", err)
		return nil, domain.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, u.HashedPassword) {
		log.Warn("Login failed", "error", domain.ErrInvalidCredentials)
		return nil, domain.ErrInvalidCredentials
	}
	log.Info("Login successful", "userID", u.ID)
	return u, nil
}

// GenerateToken signs a bearer token carrying the user id and the configured
// expiry.
func (s *Service) GenerateToken(u *dto.UserRead) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = u.ID.String()
	claims["email"] = u.Email
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("GenerateToken failed", "userID", u.ID, "error", err)
		return "", err
	}
	return tokenString, nil
}

// GetCurrentUserId resolves a verified token back to the acting user id.
func (s *Service) GetCurrentUserId(token *jwt.Token) (uuid.UUID, error) {
	if token == nil {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	return userID, nil
}

// GetUser loads the user behind an id, for the /auth/me endpoint.
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserRead, error) {
	return s.uow.UserRepository().Get(ctx, userID)
}
