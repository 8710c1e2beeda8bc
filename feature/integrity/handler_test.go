package integrity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"cached-inventory/core/snapshot"
	"cached-inventory/core/stock"
	"cached-inventory/core/warehouse/mocks"
	"cached-inventory/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	app    *fiber.App
	cache  *stock.Cache
	store  *snapshot.FileStore
	client *mocks.Client
}

// setupTestApp seeds the snapshot with initial before the cache loads it, so the
// cache starts clean and its background writer stays idle.
func setupTestApp(t *testing.T, initial map[int]int) testEnv {
	t.Helper()
	store := snapshot.NewFileStore(filepath.Join(t.TempDir(), "stockCache.json"))
	if initial != nil {
		require.NoError(t, store.Save(context.Background(), initial))
	}
	cache := stock.NewCache(context.Background(), store, zap.NewNop(), stock.Options{})
	t.Cleanup(func() { _ = cache.Close(context.Background()) })

	client := new(mocks.Client)
	app := fiber.New()
	feature := NewFeature(store, cache, client, nil, zap.NewNop())
	require.NoError(t, feature.Load(app))

	return testEnv{app: app, cache: cache, store: store, client: client}
}

func TestHandleIntegrityCheck(t *testing.T) {
	env := setupTestApp(t, map[int]int{1: 10})
	env.client.On("Ping", mock.Anything).Return(nil)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, checks.StatusOK, report.Snapshot.Status)
	assert.Equal(t, 1, report.Snapshot.Products)
	assert.Equal(t, checks.StatusOK, report.Warehouse.Status)
	assert.Equal(t, checks.StatusSkipped, report.Schema.Status)
	assert.True(t, report.Healthy())
}

func TestHandleIntegrityCheck_WarehouseDown(t *testing.T) {
	env := setupTestApp(t, nil)
	env.client.On("Ping", mock.Anything).Return(errors.New("connection refused"))

	resp, err := env.app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, checks.StatusError, report.Warehouse.Status)
	assert.False(t, report.Healthy())
}

func TestHandleSnapshotCheck_Fix(t *testing.T) {
	env := setupTestApp(t, map[int]int{2: 5})
	// Write a stale snapshot straight to the store, bypassing the cache.
	require.NoError(t, env.store.Save(context.Background(), map[int]int{1: 99}))

	resp, err := env.app.Test(httptest.NewRequest("GET", "/integrity/snapshot", nil))
	require.NoError(t, err)
	var before checks.SnapshotReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&before))
	assert.Equal(t, 2, before.Drift)

	resp, err = env.app.Test(httptest.NewRequest("GET", "/integrity/snapshot?fix=true", nil))
	require.NoError(t, err)
	var after checks.SnapshotReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&after))
	assert.Equal(t, checks.StatusOK, after.Status)
	assert.Zero(t, after.Drift)
}

func TestHandleWarehouseCheck(t *testing.T) {
	env := setupTestApp(t, nil)
	env.client.On("Ping", mock.Anything).Return(nil)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/integrity/warehouse", nil))
	require.NoError(t, err)

	var report checks.WarehouseReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, checks.StatusOK, report.Status)
}

func TestHandleSchemaCheck(t *testing.T) {
	env := setupTestApp(t, nil)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)

	var report checks.SchemaReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, checks.StatusSkipped, report.Status)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, nil, nil, nil, zap.NewNop())

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
