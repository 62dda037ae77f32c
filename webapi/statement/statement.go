// Package statement exposes CSV export and import of the snapshot ledger.
package statement

import (
	"bytes"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sebsst/Banking-app/pkg/config"
	"github.com/sebsst/Banking-app/pkg/metrics"
	"github.com/sebsst/Banking-app/pkg/middleware"
	authsvc "github.com/sebsst/Banking-app/pkg/service/auth"
	statementsvc "github.com/sebsst/Banking-app/pkg/service/statement"
	"github.com/sebsst/Banking-app/webapi/common"
)

// Routes registers the statement endpoints.
func Routes(app *fiber.App, statementSvc *statementsvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger, collector *metrics.Collector) {
	jwt := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Get("/statements/export", jwt, ExportStatements(statementSvc, authSvc, cfg, logger))
	app.Post("/statements/import", jwt, ImportStatements(statementSvc, authSvc, cfg, logger, collector))
}

// ExportStatements streams the user's full ledger as a CSV attachment,
// oldest snapshot first.
// @Summary Export balance snapshots as CSV
// @Tags statements
// @Produce text/csv
// @Success 200 {string} string "CSV statement"
// @Failure 401 {object} common.ProblemDetails
// @Router /statements/export [get]
// @Security Bearer
func ExportStatements(statementSvc *statementsvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		var buf bytes.Buffer
		if err := statementSvc.Export(c.Context(), userID, &buf); err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="statements.csv"`)
		return c.Send(buf.Bytes())
	}
}

// ImportStatements reads a CSV body and creates one snapshot per valid row.
// Invalid rows are reported individually; the response carries both the
// imported count and the rejected rows.
// @Summary Import balance snapshots from CSV
// @Tags statements
// @Accept text/csv
// @Produce json
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /statements/import [post]
// @Security Bearer
func ImportStatements(statementSvc *statementsvc.Service, authSvc *authsvc.Service, cfg *config.App, logger *slog.Logger, collector *metrics.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		result, err := statementSvc.Import(c.Context(), userID, bytes.NewReader(c.Body()))
		if err != nil {
			return common.ErrorJSON(c, err, logger, cfg.IsDevelopment())
		}
		collector.RecordRowsImported(result.Imported)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Statements imported", result)
	}
}
