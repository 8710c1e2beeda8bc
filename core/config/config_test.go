package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.Server.ApiKey)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	assert.Equal(t, "file", cfg.Cache.Backend)
	assert.Equal(t, "stockCache.json", cfg.Cache.SnapshotPath)
	assert.Equal(t, "snapshots/stockCache.json", cfg.Cache.SnapshotObject)
	assert.Equal(t, 64, cfg.Cache.Shards)

	assert.True(t, cfg.Sync.Enabled)
	assert.Equal(t, 2500*time.Millisecond, cfg.Sync.Interval)
	assert.Equal(t, 5*time.Second, cfg.Sync.CallTimeout)

	assert.Equal(t, "http", cfg.Warehouse.Driver)
	assert.Equal(t, "http://localhost:8081", cfg.Warehouse.BaseURL)
	assert.Equal(t, 10, cfg.Warehouse.TimeoutSeconds)

	assert.Equal(t, "inventory", cfg.Storage.Bucket)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)

	assert.Equal(t, "8081", cfg.Simulator.Port)
	assert.Equal(t, "warehouse.db", cfg.Simulator.DatabasePath)
	assert.Equal(t, time.Duration(0), cfg.Simulator.Latency)
	assert.Zero(t, cfg.Simulator.FailureRate)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SYNC_INTERVAL", "750ms")
	t.Setenv("SYNC_ENABLED", "false")
	t.Setenv("CACHE_BACKEND", "s3")
	t.Setenv("WAREHOUSE_DRIVER", "database")
	t.Setenv("SIMULATOR_FAILURE_RATE", "0.25")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 750*time.Millisecond, cfg.Sync.Interval)
	assert.False(t, cfg.Sync.Enabled)
	assert.Equal(t, "s3", cfg.Cache.Backend)
	assert.Equal(t, "database", cfg.Warehouse.Driver)
	assert.Equal(t, 0.25, cfg.Simulator.FailureRate)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	content := "CACHE_SNAPSHOT_PATH=/var/lib/inventory/stock.json\nSERVER_API_KEY=secret\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))

	// godotenv writes into the process environment; restore it afterwards.
	t.Setenv("CACHE_SNAPSHOT_PATH", "")
	t.Setenv("SERVER_API_KEY", "")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/inventory/stock.json", cfg.Cache.SnapshotPath)
	assert.Equal(t, "secret", cfg.Server.ApiKey)
}
