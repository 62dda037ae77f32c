// Package account exposes the user-scoped account endpoints and the derived
// statistics view.
package account

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/config"
	"github.com/sebsst/Banking-app/pkg/domain"
	"github.com/sebsst/Banking-app/pkg/middleware"
	accountsvc "github.com/sebsst/Banking-app/pkg/service/account"
	authsvc "github.com/sebsst/Banking-app/pkg/service/auth"
	"github.com/sebsst/Banking-app/webapi/common"
)

// Routes registers the account endpoints. Every route resolves the acting
// user from the bearer token; accounts of other users read as not found.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) {
	jwt := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Get("/accounts", jwt, ListAccounts(accountSvc, authSvc, cfg, logger))
	app.Get("/accounts/:id", jwt, GetAccount(accountSvc, authSvc, cfg, logger))
	app.Post("/accounts", jwt, CreateAccount(accountSvc, authSvc, cfg, logger))
	app.Put("/accounts/:id", jwt, UpdateAccount(accountSvc, authSvc, cfg, logger))
	app.Delete("/accounts/:id", jwt, DeleteAccount(accountSvc, authSvc, cfg, logger))
	app.Get("/stats", jwt, GetStats(accountSvc, authSvc, cfg, logger))
}

// ListAccounts returns the user's accounts, newest first, with computed
// statistics.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /accounts [get]
// @Security Bearer
func ListAccounts(accountSvc *accountsvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		accounts, err := accountSvc.List(c.Context(), userID)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts", accounts)
	}
}

// GetAccount returns one user-owned account.
// @Summary Get account by ID
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /accounts/{id} [get]
// @Security Bearer
func GetAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "validation_failed", "Invalid account ID", "account ID must be a valid UUID", nil)
		}
		account, err := accountSvc.Get(c.Context(), userID, id)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account", account)
	}
}

// CreateAccount creates an account, with an optional opening balance dated
// today written in the same transaction.
// @Summary Create account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body AccountInput true "Account data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /accounts [post]
// @Security Bearer
func CreateAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		input, err := common.BindAndValidate[AccountInput](c)
		if input == nil {
			return err // error response already written
		}
		in, err := toCreateInput(input)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		account, err := accountSvc.Create(c.Context(), userID, *in)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", account)
	}
}

// UpdateAccount replaces a user-owned account's fields.
// @Summary Update account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body AccountInput true "Account data"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /accounts/{id} [put]
// @Security Bearer
func UpdateAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "validation_failed", "Invalid account ID", "account ID must be a valid UUID", nil)
		}
		input, err := common.BindAndValidate[AccountInput](c)
		if input == nil {
			return err // error response already written
		}
		bankID, err := uuid.Parse(input.BankID)
		if err != nil {
			return common.ErrorJSON(c, domain.ErrInvalidReference, logger, cfg.IsDevelopment())
		}
		account, err := accountSvc.Update(c.Context(), userID, id, accountsvc.UpdateInput{
			Name:   input.Name,
			Type:   domain.AccountType(input.Type),
			IBAN:   input.IBAN,
			BankID: bankID,
		})
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated", account)
	}
}

// DeleteAccount removes a user-owned account and all its balances.
// @Summary Delete account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /accounts/{id} [delete]
// @Security Bearer
func DeleteAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "validation_failed", "Invalid account ID", "account ID must be a valid UUID", nil)
		}
		if err := accountSvc.Delete(c.Context(), userID, id); err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account deleted", nil)
	}
}

// GetStats returns per-account statistics plus the summed global block.
// @Summary Global statistics
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /stats [get]
// @Security Bearer
func GetStats(accountSvc *accountsvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		stats, err := accountSvc.Stats(c.Context(), userID)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Statistics", stats)
	}
}

// toCreateInput parses the raw identifiers and the optional opening amount.
func toCreateInput(input *AccountInput) (*accountsvc.CreateInput, error) {
	bankID, err := uuid.Parse(input.BankID)
	if err != nil {
		return nil, domain.ErrInvalidReference
	}
	in := &accountsvc.CreateInput{
		Name:   input.Name,
		Type:   domain.AccountType(input.Type),
		IBAN:   input.IBAN,
		BankID: bankID,
	}
	if input.InitialBalance != nil && *input.InitialBalance != "" {
		amount, err := domain.ParseAmount(*input.InitialBalance)
		if err != nil {
			return nil, err
		}
		in.InitialBalance = &amount
	}
	return in, nil
}
