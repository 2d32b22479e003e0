package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"proto-demo/cmd/proto-demo/di"
	"proto-demo/internal/config"
	"proto-demo/internal/usecase/demo"
	"proto-demo/pkg/logger"
	"proto-demo/pkg/timeutils"
)

// Values assigned to the demo's User message
const (
	DefaultUserName       = "Alex"
	DefaultUserID   int32 = 101
)

// App represents the application
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Container *di.Container
	Out       io.Writer
}

// New creates a new application instance writing its output to out.
// Invalid configuration only affects diagnostics: the defaults are used
// instead and the problem is logged.
func New(out io.Writer) (*App, error) {
	cfg, cfgErr := resolveConfig()

	l, err := initLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if cfgErr != nil {
		l.Warn("invalid configuration, using defaults", zap.Error(cfgErr))
	}

	container, err := di.NewContainer(cfg, l)
	if err != nil {
		_ = logger.Sync(l)
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	return &App{
		Config:    cfg,
		Logger:    l,
		Container: container,
		Out:       out,
	}, nil
}

// Run executes the demo once and writes its two output lines
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if cerr := a.Container.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	ctx = logger.WithRunID(ctx, uuid.New().String())
	log := logger.WithContext(ctx, a.Logger)

	log.Info("starting proto demo",
		zap.String("service", a.Config.Logger.ServiceName),
		zap.String("started_at", timeutils.CurrentTime()),
	)

	resp, err := a.Container.Runner.Run(ctx, demo.RunRequest{
		Name: DefaultUserName,
		ID:   DefaultUserID,
	})
	if err != nil {
		log.Error("demo failed", zap.Error(err))
		return fmt.Errorf("run demo: %w", err)
	}

	if err := a.Container.Presenter.Present(a.Out, resp.Lines()); err != nil {
		log.Error("failed to write output", zap.Error(err))
		return err
	}

	log.Info("proto demo complete", zap.Int32("user_id", resp.User.GetId()))
	return nil
}

// resolveConfig loads and validates configuration. On failure it returns
// the default configuration together with the reason it was rejected.
func resolveConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return config.Default(), fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Default(), fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// initLogger initializes the application logger
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.NewWithConfig(logger.Config{
		Level:          cfg.Logger.Level,
		Format:         cfg.Logger.Format,
		OutputPath:     cfg.Logger.OutputPath,
		EnableSampling: cfg.Logger.EnableSampling,
		ServiceName:    cfg.Logger.ServiceName,
		ServiceVersion: cfg.Logger.ServiceVersion,
		Environment:    cfg.App.Environment,
	})
}

// getConfigPath returns the configuration path
func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "."
}
