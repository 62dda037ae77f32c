// Package webapi assembles the HTTP surface. It is organized into
// sub-packages per resource:
// - auth: registration, login and the current-user endpoint
// - bank: the shared bank registry
// - account: user accounts and statistics
// - balance: dated snapshots, listing and chart data
// - statement: CSV import and export
package webapi

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/sebsst/Banking-app/pkg/app"
	accountweb "github.com/sebsst/Banking-app/webapi/account"
	authweb "github.com/sebsst/Banking-app/webapi/auth"
	balanceweb "github.com/sebsst/Banking-app/webapi/balance"
	bankweb "github.com/sebsst/Banking-app/webapi/bank"
	"github.com/sebsst/Banking-app/webapi/common"
	statementweb "github.com/sebsst/Banking-app/webapi/statement"
)

// SetupApp initializes Fiber with middleware and every route group.
func SetupApp(a *app.App) *fiber.App {
	cfg := a.Config
	appLogger := a.Deps.Logger
	collector := a.Deps.Metrics

	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ErrorJSON(c, err, appLogger, cfg.IsDevelopment())
		},
	})

	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	// Rate limiting keyed on the client address. Behind a proxy the first
	// X-Forwarded-For hop identifies the client.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, fiber.StatusTooManyRequests, "rate_limited", "Too Many Requests", "rate limit exceeded", nil)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Request metrics wrap everything below.
	fiberApp.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		collector.RecordRequest(c.Method(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Banking API is running", nil)
	})
	fiberApp.Get("/metrics", adaptor.HTTPHandler(collector.Handler()))

	authweb.Routes(fiberApp, a.AuthService, a.UserService, cfg, appLogger)
	bankweb.Routes(fiberApp, a.BankService, a.AuthService, cfg, appLogger)
	accountweb.Routes(fiberApp, a.AccountService, a.AuthService, cfg, appLogger)
	balanceweb.Routes(fiberApp, a.BalanceService, a.AuthService, cfg, appLogger, collector)
	statementweb.Routes(fiberApp, a.StatementService, a.AuthService, cfg, appLogger, collector)
	return fiberApp
}
