package cmd

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"cached-inventory/core/config"
	"cached-inventory/core/database"
	"cached-inventory/core/snapshot"
	"cached-inventory/core/warehouse"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSnapshotStoreFor(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.SnapshotPath = filepath.Join(t.TempDir(), "stockCache.json")
	cfg.Cache.SnapshotObject = "snapshots/stockCache.json"
	cfg.Storage.Endpoint = "localhost:9000"
	cfg.Storage.Bucket = "inventory"

	store, err := snapshotStoreFor(cfg, "file")
	require.NoError(t, err)
	assert.IsType(t, &snapshot.FileStore{}, store)
	assert.Equal(t, cfg.Cache.SnapshotPath, store.Location())

	store, err = snapshotStoreFor(cfg, "s3")
	require.NoError(t, err)
	assert.IsType(t, &snapshot.ObjectStore{}, store)

	_, err = snapshotStoreFor(cfg, "tape")
	assert.ErrorContains(t, err, `unsupported snapshot backend "tape"`)
}

func TestOpenWarehouse(t *testing.T) {
	cfg := &config.Config{}
	cfg.Warehouse.BaseURL = "http://localhost:8081"
	cfg.Warehouse.TimeoutSeconds = 1

	t.Run("HTTP", func(t *testing.T) {
		cfg.Warehouse.Driver = warehouse.DriverHTTP
		client, db, err := openWarehouse(cfg, zap.NewNop())
		require.NoError(t, err)
		assert.IsType(t, &warehouse.HTTPClient{}, client)
		assert.Nil(t, db)
	})

	t.Run("Database", func(t *testing.T) {
		cfg.Warehouse.Driver = warehouse.DriverDatabase
		cfg.Database = database.Config{Driver: database.DriverSQLite, Name: ":memory:", TimeoutSeconds: 5}
		client, db, err := openWarehouse(cfg, zap.NewNop())
		require.NoError(t, err)
		assert.IsType(t, &warehouse.DBClient{}, client)
		assert.NotNil(t, db)
	})

	t.Run("Unsupported", func(t *testing.T) {
		cfg.Warehouse.Driver = "carrier-pigeon"
		_, _, err := openWarehouse(cfg, zap.NewNop())
		assert.ErrorContains(t, err, "unsupported warehouse driver")
	})
}

func TestSnapshotSource(t *testing.T) {
	src := snapshotSource{5: 20, -1: 3, 2: 0}
	assert.Equal(t, []int{-1, 2, 5}, src.ProductIDs())
	assert.Equal(t, 20, src.Quantity(5))
	assert.Equal(t, 0, src.Quantity(99))
}

func TestNewApp_RecoversHandlerPanic(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	app := newApp(zap.New(core))
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("fine")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal Server Error", body["error"])
	assert.Equal(t, 1, logs.FilterMessage("Unhandled request error").Len())

	resp, err = app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
