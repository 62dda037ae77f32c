// Package auth exposes registration, login and the current-user endpoint.
package auth

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sebsst/Banking-app/pkg/config"
	"github.com/sebsst/Banking-app/pkg/middleware"
	authsvc "github.com/sebsst/Banking-app/pkg/service/auth"
	usersvc "github.com/sebsst/Banking-app/pkg/service/user"
	"github.com/sebsst/Banking-app/webapi/common"
)

// Routes registers the authentication endpoints.
func Routes(app *fiber.App, authSvc *authsvc.Service, userSvc *usersvc.Service, cfg *config.App, logger *slog.Logger) {
	app.Post("/auth/register", Register(authSvc, userSvc, cfg, logger))
	app.Post("/auth/login", Login(authSvc, cfg, logger))
	app.Get("/auth/me", middleware.JwtProtected(cfg.Auth.Jwt), Me(authSvc, cfg, logger))
}

// Register creates a user and returns it with a fresh bearer token.
// @Summary Register a new user
// @Description Create a user account and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterInput true "Registration data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /auth/register [post]
func Register(authSvc *authsvc.Service, userSvc *usersvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterInput](c)
		if input == nil {
			return err // error response already written
		}
		if len(input.Password) > 72 {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "validation_failed", "Validation failed", "password too long", nil)
		}
		u, err := userSvc.Register(c.Context(), input.FirstName, input.LastName, input.Email, input.Password)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		token, err := authSvc.GenerateToken(u)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User registered", fiber.Map{"token": token, "user": u})
	}
}

// Login authenticates a user and returns a bearer token.
// @Summary User login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err // error response already written
		}
		u, err := authSvc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		token, err := authSvc.GenerateToken(u)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful", fiber.Map{"token": token, "user": u})
	}
}

// Me returns the user behind the presented credential.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /auth/me [get]
// @Security Bearer
func Me(authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		u, err := authSvc.GetUser(c.Context(), userID)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Current user", fiber.Map{"user": u})
	}
}
