package di

import (
	"fmt"

	"go.uber.org/zap"

	"proto-demo/internal/adapter/console"
	"proto-demo/internal/config"
	"proto-demo/internal/usecase/demo"
	"proto-demo/pkg/greeting"
	"proto-demo/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	Runner    demo.Runner
	Presenter *console.Presenter
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &Container{
		Config:    cfg,
		Logger:    l,
		Runner:    demo.New(greeting.NewWelcomer(), l),
		Presenter: console.NewPresenter(),
	}, nil
}

// Close releases resources held by the container
func (c *Container) Close() error {
	if c.Logger != nil {
		if err := logger.Sync(c.Logger); err != nil {
			return fmt.Errorf("logger sync: %w", err)
		}
	}
	return nil
}
