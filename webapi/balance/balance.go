// Package balance exposes the snapshot endpoints: filtered paginated
// listing, CRUD and the chart aggregation feeding the frontend graphs.
package balance

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sebsst/Banking-app/pkg/config"
	"github.com/sebsst/Banking-app/pkg/domain"
	"github.com/sebsst/Banking-app/pkg/metrics"
	"github.com/sebsst/Banking-app/pkg/middleware"
	authsvc "github.com/sebsst/Banking-app/pkg/service/auth"
	balancesvc "github.com/sebsst/Banking-app/pkg/service/balance"
	"github.com/sebsst/Banking-app/webapi/common"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Routes registers the balance endpoints. The chart route is registered
// before the id route so "chart" is never captured as an id parameter.
func Routes(app *fiber.App, balanceSvc *balancesvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger, collector *metrics.Collector) {
	jwt := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Get("/balances/chart/data", jwt, GetChartData(balanceSvc, authSvc, cfg, logger))
	app.Get("/balances", jwt, ListBalances(balanceSvc, authSvc, cfg, logger))
	app.Get("/balances/:id", jwt, GetBalance(balanceSvc, authSvc, cfg, logger))
	app.Post("/balances", jwt, CreateBalance(balanceSvc, authSvc, cfg, logger, collector))
	app.Put("/balances/:id", jwt, UpdateBalance(balanceSvc, authSvc, cfg, logger))
	app.Delete("/balances/:id", jwt, DeleteBalance(balanceSvc, authSvc, cfg, logger))
}

// ListBalances returns one page of the user's snapshots, most recent first.
// @Summary List balance snapshots
// @Tags balances
// @Produce json
// @Param accountId query string false "Filter by account"
// @Param bankId query string false "Filter by bank"
// @Param startDate query string false "Inclusive window start (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive window end (YYYY-MM-DD)"
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /balances [get]
// @Security Bearer
func ListBalances(balanceSvc *balancesvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		in, err := parseListQuery(c)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		page, err := balanceSvc.List(c.Context(), userID, *in)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balances", page)
	}
}

// GetBalance returns one snapshot owned by the user.
// @Summary Get balance snapshot by ID
// @Tags balances
// @Produce json
// @Param id path string true "Balance ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /balances/{id} [get]
// @Security Bearer
func GetBalance(balanceSvc *balancesvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "validation_failed", "Invalid balance ID", "balance ID must be a valid UUID", nil)
		}
		balance, err := balanceSvc.Get(c.Context(), userID, id)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance", balance)
	}
}

// CreateBalance records a new snapshot on a user-owned account.
// @Summary Create balance snapshot
// @Tags balances
// @Accept json
// @Produce json
// @Param request body BalanceCreateInput true "Snapshot data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /balances [post]
// @Security Bearer
func CreateBalance(balanceSvc *balancesvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger, collector *metrics.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		input, err := common.BindAndValidate[BalanceCreateInput](c)
		if input == nil {
			return err // error response already written
		}
		amount, date, err := parseAmountAndDate(input.Amount, input.Date)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		accountID, err := uuid.Parse(input.AccountID)
		if err != nil {
			return common.ErrorJSON(c, domain.ErrInvalidReference, logger, cfg.IsDevelopment())
		}
		balance, err := balanceSvc.Create(c.Context(), userID, amount, date, accountID)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		collector.RecordSnapshotCreated()
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Balance created", balance)
	}
}

// UpdateBalance replaces a snapshot's amount and date.
// @Summary Update balance snapshot
// @Tags balances
// @Accept json
// @Produce json
// @Param id path string true "Balance ID"
// @Param request body BalanceUpdateInput true "Snapshot data"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /balances/{id} [put]
// @Security Bearer
func UpdateBalance(balanceSvc *balancesvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "validation_failed", "Invalid balance ID", "balance ID must be a valid UUID", nil)
		}
		input, err := common.BindAndValidate[BalanceUpdateInput](c)
		if input == nil {
			return err // error response already written
		}
		amount, date, err := parseAmountAndDate(input.Amount, input.Date)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		balance, err := balanceSvc.Update(c.Context(), userID, id, amount, date)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance updated", balance)
	}
}

// DeleteBalance removes a snapshot owned by the user.
// @Summary Delete balance snapshot
// @Tags balances
// @Produce json
// @Param id path string true "Balance ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /balances/{id} [delete]
// @Security Bearer
func DeleteBalance(balanceSvc *balancesvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "validation_failed", "Invalid balance ID", "balance ID must be a valid UUID", nil)
		}
		if err := balanceSvc.Delete(c.Context(), userID, id); err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance deleted", nil)
	}
}

// GetChartData returns per-account series of (date, amount) points ordered
// date ascending, restricted to the requested window.
// @Summary Chart data
// @Tags balances
// @Produce json
// @Param accountIds query string false "Comma-separated account IDs"
// @Param bankId query string false "Filter by bank"
// @Param period query string false "Window token: 1d, 7d, 30d, 6m, 1y or all"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /balances/chart/data [get]
// @Security Bearer
func GetChartData(balanceSvc *balancesvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		verr := &domain.ValidationError{}

		var accountIDs []uuid.UUID
		if raw := c.Query("accountIds"); raw != "" {
			for _, part := range strings.Split(raw, ",") {
				id, err := uuid.Parse(strings.TrimSpace(part))
				if err != nil {
					verr.Add("accountIds", "must be a comma-separated list of valid UUIDs")
					break
				}
				accountIDs = append(accountIDs, id)
			}
		}

		var bankID *uuid.UUID
		if raw := c.Query("bankId"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				verr.Add("bankId", "must be a valid UUID")
			} else {
				bankID = &id
			}
		}

		if verr.HasErrors() {
			return common.ErrorJSON(c, verr, logger, cfg.IsDevelopment())
		}

		period := domain.Period(c.Query("period", string(domain.PeriodUnbounded)))
		series, err := balanceSvc.Chart(c.Context(), userID, accountIDs, bankID, period)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Chart data", series)
	}
}

// parseListQuery reads the listing filter and pagination from the query
// string, collecting every violation before failing.
func parseListQuery(c *fiber.Ctx) (*balancesvc.ListInput, error) {
	verr := &domain.ValidationError{}
	in := &balancesvc.ListInput{}

	if raw := c.Query("accountId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			verr.Add("accountId", "must be a valid UUID")
		} else {
			in.Filter.AccountID = &id
		}
	}
	if raw := c.Query("bankId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			verr.Add("bankId", "must be a valid UUID")
		} else {
			in.Filter.BankID = &id
		}
	}
	if raw := c.Query("startDate"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			verr.Add("startDate", "must be a date in YYYY-MM-DD form")
		} else {
			in.Filter.StartDate = &t
		}
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			verr.Add("endDate", "must be a date in YYYY-MM-DD form")
		} else {
			in.Filter.EndDate = &t
		}
	}
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			verr.Add("page", "must be an integer")
		} else {
			in.Page = n
		}
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			verr.Add("limit", "must be an integer")
		} else {
			in.Limit = n
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return in, nil
}

// parseAmountAndDate converts the wire strings of a snapshot payload.
func parseAmountAndDate(rawAmount, rawDate string) (amount decimal.Decimal, date time.Time, err error) {
	verr := &domain.ValidationError{}
	amount, aerr := domain.ParseAmount(rawAmount)
	if aerr != nil {
		var ve *domain.ValidationError
		if errors.As(aerr, &ve) {
			for _, fe := range ve.Fields {
				verr.Add(fe.Field, fe.Message)
			}
		} else {
			verr.Add("amount", "must be a decimal number")
		}
	}
	date, derr := time.Parse(dateLayout, rawDate)
	if derr != nil {
		verr.Add("date", "must be a date in YYYY-MM-DD form")
	}
	if verr.HasErrors() {
		return decimal.Decimal{}, time.Time{}, verr
	}
	return amount, date, nil
}
