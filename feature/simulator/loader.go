package simulator

import (
	"cached-inventory/core/warehouse"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new simulator feature.
func NewFeature(store *warehouse.DBClient, cfg warehouse.SimulatorConfig, logger *zap.Logger) *Feature {
	svc := NewService(store, Faults{Latency: cfg.Latency, FailureRate: cfg.FailureRate}, logger)
	return &Feature{handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "simulator"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
