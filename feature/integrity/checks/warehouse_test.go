package checks

import (
	"context"
	"errors"
	"testing"
	"time"

	"cached-inventory/core/warehouse/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCheckWarehouse(t *testing.T) {
	t.Run("Reachable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("Ping", mock.Anything).Return(nil)

		report := CheckWarehouse(context.Background(), client, time.Second)
		assert.Equal(t, StatusOK, report.Status)
		assert.Empty(t, report.Error)
	})

	t.Run("Unreachable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("Ping", mock.Anything).Return(errors.New("connection refused"))

		report := CheckWarehouse(context.Background(), client, time.Second)
		assert.Equal(t, StatusError, report.Status)
		assert.Equal(t, "connection refused", report.Error)
	})

	t.Run("No client", func(t *testing.T) {
		report := CheckWarehouse(context.Background(), nil, time.Second)
		assert.Equal(t, StatusSkipped, report.Status)
	})
}
