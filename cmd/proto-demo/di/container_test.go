package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"proto-demo/internal/config"
)

func TestNewContainer_Success(t *testing.T) {
	c, err := NewContainer(config.Default(), zaptest.NewLogger(t))

	require.NoError(t, err)
	assert.NotNil(t, c.Runner)
	assert.NotNil(t, c.Presenter)
	assert.NoError(t, c.Close())
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Logger.Level = "verbose"

	c, err := NewContainer(cfg, zaptest.NewLogger(t))

	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestContainer_Close_NilLogger(t *testing.T) {
	c := &Container{}
	assert.NoError(t, c.Close())
}
