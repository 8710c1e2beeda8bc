package simulator

import (
	"context"
	"math/rand/v2"
	"time"

	"cached-inventory/core/warehouse"

	"go.uber.org/zap"
)

// Faults configures injected latency and failures.
type Faults struct {
	Latency     time.Duration
	FailureRate float64
}

// Service handles warehouse simulator operations.
type Service struct {
	store  *warehouse.DBClient
	faults Faults
	roll   func() float64
	logger *zap.Logger
}

// NewService creates a new simulator service.
func NewService(store *warehouse.DBClient, faults Faults, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		faults: faults,
		roll:   rand.Float64,
		logger: logger,
	}
}

// GetStock returns the stored quantity of productID.
func (s *Service) GetStock(ctx context.Context, productID int) (int, error) {
	return s.store.GetStock(ctx, productID)
}

// SetStock stores quantity for productID.
func (s *Service) SetStock(ctx context.Context, productID, quantity int) error {
	return s.store.UpdateStock(ctx, productID, quantity)
}

// List returns every stored row.
func (s *Service) List(ctx context.Context) ([]warehouse.Stock, error) {
	return s.store.List(ctx)
}

// delay waits for the configured latency or until ctx is done.
func (s *Service) delay(ctx context.Context) error {
	if s.faults.Latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.faults.Latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shouldFail draws whether the current call fails.
func (s *Service) shouldFail() bool {
	return s.faults.FailureRate > 0 && s.roll() < s.faults.FailureRate
}
