package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"StockCast/internal/handler/api"
	"StockCast/internal/services/marketdata"
	"StockCast/internal/usecase"
	"StockCast/pkg/config"
	xhttp "StockCast/pkg/http"
	applogger "StockCast/pkg/logger"
	"StockCast/pkg/metrics"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	httpServer *xhttp.Server
}

// New builds the prediction pipeline and the HTTP server around it.
func New(cfg *config.Config) (*App, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	rec := metrics.New()

	provider := marketdata.NewYahooClient(
		cfg.MarketData.BaseURL,
		cfg.MarketData.Range,
		cfg.MarketData.Timeout,
	)
	source := marketdata.NewSource(
		provider,
		cfg.MarketData.Suffixes,
		cfg.MarketData.MinRows,
		cfg.MarketData.PeriodDays,
		l,
	)

	predictor := usecase.NewPredictor(source, l, rec, cfg)
	handler := api.NewPredictHandler(l, predictor)

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	httpServer := xhttp.NewServer(handler,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
	)

	return &App{
		cfg:        cfg,
		logger:     l,
		httpServer: httpServer,
	}, nil
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("prediction service started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.Bool("metrics", a.cfg.Metrics.Enabled),
	)

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops the HTTP server.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
