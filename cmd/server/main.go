package main

import (
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/sebsst/Banking-app/infra/initializer"
	"github.com/sebsst/Banking-app/pkg/app"
	"github.com/sebsst/Banking-app/pkg/config"
	"github.com/sebsst/Banking-app/webapi"
)

// @title Banking API
// @version 1.0.0
// @description Personal banking records: banks, accounts and balance history
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	a := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server", "env", cfg.Env, "address", addr)

	return fiberApp.Listen(addr)
}
