//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"quickquote.io/quickquote"
	"quickquote.io/quickquote/business"
	"quickquote.io/quickquote/catalog"
	"quickquote.io/quickquote/config"
	"quickquote.io/quickquote/customer"
	"quickquote.io/quickquote/dashboard"
	"quickquote.io/quickquote/driver"
	"quickquote.io/quickquote/handlers"
	"quickquote.io/quickquote/quote"
	"quickquote.io/quickquote/server"
)

func InitializeApplication() (*Application, error) {

	wire.Build(
		config.ProvideApplicationConfig,
		config.NewLogger,
		config.ProvidePostgresConn,
		config.ProvideEmber,
		config.ProvideIgnite,
		driver.NewTransactionManager,
		business.NewRepository,
		business.NewService,
		catalog.NewRepository,
		catalog.NewService,
		customer.NewRepository,
		customer.NewService,
		quote.NewRepository,
		quote.NewService,
		dashboard.NewService,
		quickquote.NewEngine,
		wire.Bind(new(quickquote.QuickQuote), new(*quickquote.Engine)),
		wire.Bind(new(quickquote.Sweeper), new(*quickquote.Engine)),
		handlers.NewBusinessHandler,
		handlers.NewServiceHandler,
		handlers.NewCustomerHandler,
		handlers.NewQuoteHandler,
		handlers.NewDashboardHandler,
		server.NewServer,
		NewApplication,
	)

	return &Application{}, nil
}
