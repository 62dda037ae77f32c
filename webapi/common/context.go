package common

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/domain"
	authsvc "github.com/sebsst/Banking-app/pkg/service/auth"
)

// CurrentUserID resolves the verified bearer token of the request into the
// acting user id.
func CurrentUserID(c *fiber.Ctx, authSvc *authsvc.Service) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	return authSvc.GetCurrentUserId(token)
}
