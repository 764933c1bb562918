package main

import (
	"log"
	"time"

	"go.uber.org/zap"

	"quickquote.io/quickquote"
	"quickquote.io/quickquote/config"
	"quickquote.io/quickquote/server"
)

// Application bundles the HTTP server with the background expiration
// sweeper so both come out of a single injector call.
type Application struct {
	Server     *server.Server
	Dispatcher *quickquote.Dispatcher
	Config     *config.Config
	Logger     *zap.Logger
}

func NewApplication(srv *server.Server, sweeper quickquote.Sweeper, appConfig *config.Config, logger *zap.Logger) *Application {
	dispatcher := quickquote.NewDispatcher(
		appConfig.Sweeper.Workers,
		appConfig.Sweeper.QueueSize,
		time.Duration(appConfig.Sweeper.IntervalSeconds)*time.Second,
		sweeper,
		logger,
	)

	return &Application{
		Server:     srv,
		Dispatcher: dispatcher,
		Config:     appConfig,
		Logger:     logger,
	}
}

func main() {

	app, err := InitializeApplication()
	if err != nil {
		log.Fatal(err)
		return
	}

	app.Dispatcher.Run()
	defer app.Dispatcher.Stop()

	if err = app.Server.Run(app.Config.Server.Addr); err != nil {
		log.Fatal(err.Error())
	}
}
