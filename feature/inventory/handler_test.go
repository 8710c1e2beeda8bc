package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"cached-inventory/core/snapshot"
	"cached-inventory/core/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *stock.Cache) {
	t.Helper()
	store := snapshot.NewFileStore(filepath.Join(t.TempDir(), "stockCache.json"))
	cache := stock.NewCache(context.Background(), store, zap.NewNop(), stock.Options{})
	t.Cleanup(func() { _ = cache.Close(context.Background()) })

	app := fiber.New()
	feature := NewFeature(cache, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, cache
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, _ := io.ReadAll(resp.Body)
	return resp, string(data)
}

func TestHandleGetStock(t *testing.T) {
	app, cache := setupTestApp(t)
	cache.SetQuantity(1, 10)

	tests := []struct {
		name string
		path string
		code int
		body string
	}{
		{"Known product", "/stock/1", 200, "10"},
		{"Unknown product", "/stock/42", 200, "0"},
		{"Invalid id", "/stock/abc", 400, `{"error":"invalid product id"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tt.body, string(body))
		})
	}
}

func TestHandleRetrieve(t *testing.T) {
	app, cache := setupTestApp(t)
	cache.SetQuantity(5, 20)

	resp, body := postJSON(t, app, "/stock/retrieve", `{"productId":5,"amount":15}`)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, body)
	assert.Equal(t, 5, cache.Quantity(5))

	resp, body = postJSON(t, app, "/stock/retrieve", `{"productId":5,"amount":6}`)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, NotEnoughStockMessage, body)
	assert.Equal(t, 5, cache.Quantity(5))
}

func TestHandleRetrieve_InvalidBody(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := postJSON(t, app, "/stock/retrieve", `{"productId":`)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleRestock(t *testing.T) {
	app, cache := setupTestApp(t)

	resp, body := postJSON(t, app, "/stock/restock", `{"productId":5,"amount":20}`)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, body)
	assert.Equal(t, 20, cache.Quantity(5))

	resp, _ = postJSON(t, app, "/stock/restock", `not json`)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, 20, cache.Quantity(5))
}

func TestHandleRestock_Overflow(t *testing.T) {
	app, cache := setupTestApp(t)

	resp, body := postJSON(t, app, "/stock/restock", fmt.Sprintf(`{"productId":1,"amount":%d}`, math.MaxInt))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, body)

	resp, body = postJSON(t, app, "/stock/restock", `{"productId":1,"amount":1}`)
	assert.Equal(t, 400, resp.StatusCode)
	assert.JSONEq(t, `{"error":"quantity out of range"}`, body)
	assert.Equal(t, math.MaxInt, cache.Quantity(1))
	assert.GreaterOrEqual(t, cache.Quantity(1), 0)
}

func TestHandleList(t *testing.T) {
	app, cache := setupTestApp(t)
	cache.SetQuantity(2, 4)
	cache.SetQuantity(1, 10)

	resp, err := app.Test(httptest.NewRequest("GET", "/stock", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var listing Listing
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	assert.Equal(t, 2, listing.Total)
	assert.Equal(t, []Item{{ProductID: 1, Quantity: 10}, {ProductID: 2, Quantity: 4}}, listing.Items)
}

func TestHandleRetrieve_Concurrent(t *testing.T) {
	app, cache := setupTestApp(t)
	cache.SetQuantity(1, 10)

	codes := make([]int, 2)
	var wg sync.WaitGroup
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest("POST", "/stock/retrieve", strings.NewReader(`{"productId":1,"amount":7}`))
			req.Header.Set("Content-Type", "application/json")
			if resp, err := app.Test(req); err == nil {
				codes[i] = resp.StatusCode
			}
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{200, 400}, codes)
	assert.Equal(t, 3, cache.Quantity(1))
}

func TestFeature(t *testing.T) {
	feature := NewFeature(nil, zap.NewNop())
	assert.Equal(t, "inventory", feature.Name())
	assert.True(t, feature.IsEnabled())
}
