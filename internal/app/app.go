package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/yungbote/neurobridge-tutorials/internal/config"
	httpapi "github.com/yungbote/neurobridge-tutorials/internal/http"
	"github.com/yungbote/neurobridge-tutorials/internal/observability"
	"github.com/yungbote/neurobridge-tutorials/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Config   *config.Config
	Metrics  *observability.Metrics
	Services Services

	server       *httpapi.Server
	otelShutdown func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: cfg.Service.Name,
		Environment: cfg.Env,
		Version:     cfg.Service.Version,
	})
	metrics := observability.Init(log)

	serviceset, err := wireServices(log, cfg, metrics)
	if err != nil {
		log.Sync()
		return nil, err
	}
	handlerset := wireHandlers(log, serviceset)
	srv := httpapi.NewServer(cfg.HTTP, wireRouter(log, cfg, metrics, handlerset))

	return &App{
		Log:          log,
		Config:       cfg,
		Metrics:      metrics,
		Services:     serviceset,
		server:       srv,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests within the
// configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	if _, err := a.Metrics.StartServer(ctx, a.Log, a.Config.HTTP.MetricsAddr); err != nil {
		a.Log.Sync()
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("HTTP server listening", "addr", a.Config.HTTP.Addr)
		errCh <- a.server.HTTP.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		a.Log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.HTTP.ShutdownTimeout.Duration)
		defer cancel()
		err := a.server.HTTP.Shutdown(shutdownCtx)
		if otelErr := a.otelShutdown(shutdownCtx); otelErr != nil {
			a.Log.Warn("otel shutdown failed", "error", otelErr)
		}
		a.Log.Sync()
		return err
	case err := <-errCh:
		a.Log.Sync()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
