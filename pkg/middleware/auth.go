// Package middleware provides route protection for the API.
package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sebsst/Banking-app/pkg/config"
)

// JwtProtected guards a route with bearer-token verification. The verified
// *jwt.Token lands in c.Locals("user") for the handler to resolve into the
// acting user id.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			c.Set(fiber.HeaderContentType, "application/problem+json")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"title":  "Unauthorized",
				"status": fiber.StatusUnauthorized,
				"detail": "missing or invalid bearer token",
			})
		},
	})
}
