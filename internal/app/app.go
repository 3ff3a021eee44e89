// Package app initializes and runs the banking console. It wires the
// repositories, metrics collector, and security engine, installs the signal
// handler, and starts the interactive CLI plus the optional metrics endpoint.
package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"securebank/internal/cli"
	"securebank/internal/config"
	"securebank/internal/engine"
	"securebank/internal/logging"
	"securebank/internal/metrics"
	"securebank/internal/repository/memory"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	engine    *engine.Engine
	collector *metrics.Collector
	console   *cli.App
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(c.LogLevel)
	collector := metrics.NewCollector(logger)

	eng, err := engine.New(c, logger, memory.NewAccountRepository(), memory.NewAuditRepository(), collector)
	if err != nil {
		return nil, err
	}

	console := cli.NewApp(c, logger, eng)
	return &App{config: c, logger: logger, engine: eng, collector: collector, console: console}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	if app.config.MetricsAddr != "" {
		server := app.collector.StartServer(ctx, app.config.MetricsAddr)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	app.console.Run(ctx)
	_ = app.engine.Logout(ctx)
}
