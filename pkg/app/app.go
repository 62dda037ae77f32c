// Package app wires the service layer from the initialized dependencies.
package app

import (
	"github.com/sebsst/Banking-app/infra/initializer"
	"github.com/sebsst/Banking-app/pkg/config"
	accountsvc "github.com/sebsst/Banking-app/pkg/service/account"
	authsvc "github.com/sebsst/Banking-app/pkg/service/auth"
	balancesvc "github.com/sebsst/Banking-app/pkg/service/balance"
	banksvc "github.com/sebsst/Banking-app/pkg/service/bank"
	statementsvc "github.com/sebsst/Banking-app/pkg/service/statement"
	usersvc "github.com/sebsst/Banking-app/pkg/service/user"
)

// App bundles the configured services behind one handle for the HTTP layer.
type App struct {
	Deps   *initializer.Deps
	Config *config.App

	AuthService      *authsvc.Service
	UserService      *usersvc.Service
	BankService      *banksvc.Service
	AccountService   *accountsvc.Service
	BalanceService   *balancesvc.Service
	StatementService *statementsvc.Service
}

// New constructs every service against the shared unit of work.
func New(deps *initializer.Deps, cfg *config.App) *App {
	return &App{
		Deps:             deps,
		Config:           cfg,
		AuthService:      authsvc.New(deps.Uow, cfg.Auth.Jwt, deps.Logger),
		UserService:      usersvc.New(deps.Uow, deps.Logger),
		BankService:      banksvc.New(deps.Uow, deps.Logger),
		AccountService:   accountsvc.New(deps.Uow, deps.Logger),
		BalanceService:   balancesvc.New(deps.Uow, deps.Logger),
		StatementService: statementsvc.New(deps.Uow, deps.Logger),
	}
}
