package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.GRPCPort)
	assert.Equal(t, "8080", cfg.Server.HTTPPort)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Category.MaxDepth)
	assert.Equal(t, 1000, cfg.Category.MaxIDs)
	assert.Equal(t, int64(5000), cfg.Catalog.MaxFetch)
	assert.NotEmpty(t, cfg.Spanner.Database)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SPANNER_DATABASE", "projects/p/instances/i/databases/d")
	t.Setenv("GRPC_PORT", "19090")
	t.Setenv("REQUEST_TIMEOUT", "250ms")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CATEGORY_MAX_DEPTH", "2")
	t.Setenv("CATALOG_MAX_FETCH", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "projects/p/instances/i/databases/d", cfg.Spanner.Database)
	assert.Equal(t, "19090", cfg.Server.GRPCPort)
	assert.Equal(t, 250*time.Millisecond, cfg.Server.RequestTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2, cfg.Category.MaxDepth)
	assert.Equal(t, int64(10), cfg.Catalog.MaxFetch)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("REQUEST_TIMEOUT", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive depth", func(t *testing.T) {
		t.Setenv("CATEGORY_MAX_DEPTH", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
