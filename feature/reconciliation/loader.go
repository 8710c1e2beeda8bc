package reconciliation

import (
	"cached-inventory/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature creates a new reconciliation feature. A nil scheduler disables it.
func NewFeature(scheduler *reconcile.Scheduler, logger *zap.Logger) *Feature {
	return &Feature{
		handler: NewHandler(NewService(scheduler, logger)),
		enabled: scheduler != nil,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "sync"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
