package app

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/explorer/internal/infrastructure/config"
	"github.com/GriffinCanCode/explorer/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/explorer/internal/logging"
	"github.com/GriffinCanCode/explorer/internal/providers"
	"github.com/GriffinCanCode/explorer/internal/service"
	"github.com/GriffinCanCode/explorer/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// App wires the explorer provider to its logger, metrics and registry.
type App struct {
	Config   *config.Config
	Logger   *logging.Logger
	Metrics  *monitoring.Metrics
	Registry *service.Registry
	Explorer *providers.Explorer
}

// New builds an App from cfg.
func New(cfg *config.Config) (*App, error) {
	logCfg := logging.DefaultConfig()
	if cfg.Logging.Development {
		logCfg = logging.DevelopmentConfig()
	}
	if cfg.Logging.Level != "" {
		logCfg.Level = cfg.Logging.Level
	}

	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}

	reg := prometheus.NewRegistry()
	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics(reg, cfg.Metrics.Namespace)
	}

	explorer, err := providers.NewExplorer(providers.ExplorerOptions{
		StartDir:      cfg.Explorer.StartDir,
		DetectContent: cfg.Explorer.DetectContent,
		Logger:        logger,
		Metrics:       metrics,
	})
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	registry := service.NewRegistry()
	if err := registry.Register(explorer); err != nil {
		_ = logger.Sync()
		return nil, err
	}

	logger.Debug("explorer ready",
		zap.String("cwd", explorer.CurrentDirectory()),
		zap.Bool("metrics", cfg.Metrics.Enabled),
	)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Metrics:  metrics,
		Registry: registry,
		Explorer: explorer,
	}, nil
}

// Execute dispatches a tool call through the registry.
func (a *App) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	return a.Registry.Execute(ctx, toolID, params)
}

// Stats returns the session's operation counters; zero when metrics are off.
func (a *App) Stats() monitoring.Snapshot {
	if a.Metrics == nil {
		return monitoring.Snapshot{}
	}
	return a.Metrics.Snapshot()
}

// Close flushes buffered log entries.
func (a *App) Close() error {
	return a.Logger.Sync()
}
