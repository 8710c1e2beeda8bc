package server_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"cached-inventory/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorHandler(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	app := fiber.New(fiber.Config{ErrorHandler: server.ErrorHandler(zap.New(core))})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("disk on fire")
	})

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantMsg  string
		wantLogs int
	}{
		{"FiberError", "/missing", fiber.StatusNotFound, "Not Found", 0},
		{"UnknownRoute", "/nowhere", fiber.StatusNotFound, "Cannot GET /nowhere", 0},
		{"PlainError", "/boom", fiber.StatusInternalServerError, "Internal Server Error", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := logs.Len()
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantMsg, body["error"])
			assert.Equal(t, tt.wantLogs, logs.Len()-before)
		})
	}
}
