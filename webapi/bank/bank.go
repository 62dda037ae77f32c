// Package bank exposes the shared bank registry endpoints.
package bank

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/config"
	"github.com/sebsst/Banking-app/pkg/middleware"
	authsvc "github.com/sebsst/Banking-app/pkg/service/auth"
	banksvc "github.com/sebsst/Banking-app/pkg/service/bank"
	"github.com/sebsst/Banking-app/webapi/common"
)

// Routes registers the bank endpoints. All routes require a valid
// credential; banks themselves are shared between users.
func Routes(app *fiber.App, bankSvc *banksvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) {
	jwt := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Get("/banks", jwt, ListBanks(bankSvc, cfg, logger))
	app.Get("/banks/:id", jwt, GetBank(bankSvc, cfg, logger))
	app.Post("/banks", jwt, CreateBank(bankSvc, cfg, logger))
	app.Put("/banks/:id", jwt, UpdateBank(bankSvc, cfg, logger))
	app.Delete("/banks/:id", jwt, DeleteBank(bankSvc, cfg, logger))
}

// ListBanks returns every bank ordered by name.
// @Summary List banks
// @Tags banks
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /banks [get]
// @Security Bearer
func ListBanks(bankSvc *banksvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		banks, err := bankSvc.List(c.Context())
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Banks", banks)
	}
}

// GetBank returns one bank by id.
// @Summary Get bank by ID
// @Tags banks
// @Produce json
// @Param id path string true "Bank ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /banks/{id} [get]
// @Security Bearer
func GetBank(bankSvc *banksvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "validation_failed", "Invalid bank ID", "bank ID must be a valid UUID", nil)
		}
		bank, err := bankSvc.Get(c.Context(), id)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Bank", bank)
	}
}

// CreateBank registers a new bank.
// @Summary Create bank
// @Tags banks
// @Accept json
// @Produce json
// @Param request body BankInput true "Bank data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /banks [post]
// @Security Bearer
func CreateBank(bankSvc *banksvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[BankInput](c)
		if input == nil {
			return err // error response already written
		}
		bank, err := bankSvc.Create(c.Context(), input.Name, input.Code)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Bank created", bank)
	}
}

// UpdateBank replaces a bank's name and code.
// @Summary Update bank
// @Tags banks
// @Accept json
// @Produce json
// @Param id path string true "Bank ID"
// @Param request body BankInput true "Bank data"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /banks/{id} [put]
// @Security Bearer
func UpdateBank(bankSvc *banksvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "validation_failed", "Invalid bank ID", "bank ID must be a valid UUID", nil)
		}
		input, err := common.BindAndValidate[BankInput](c)
		if input == nil {
			return err // error response already written
		}
		bank, err := bankSvc.Update(c.Context(), id, input.Name, input.Code)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Bank updated", bank)
	}
}

// DeleteBank removes a bank without dependents.
// @Summary Delete bank
// @Description Fails while any account still references the bank
// @Tags banks
// @Produce json
// @Param id path string true "Bank ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /banks/{id} [delete]
// @Security Bearer
func DeleteBank(bankSvc *banksvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "validation_failed", "Invalid bank ID", "bank ID must be a valid UUID", nil)
		}
		if err := bankSvc.Delete(c.Context(), id); err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Bank deleted", nil)
	}
}
