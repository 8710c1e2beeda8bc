package reconciliation

import (
	"context"

	"cached-inventory/core/reconcile"

	"go.uber.org/zap"
)

// Status is the response of GET /sync.
type Status struct {
	State      reconcile.State       `json:"state"`
	Interval   string                `json:"interval"`
	LastReport *reconcile.PassReport `json:"last_report"`
}

// Service handles manual reconciliation.
type Service struct {
	scheduler *reconcile.Scheduler
	logger    *zap.Logger
}

// NewService creates a new reconciliation service.
func NewService(scheduler *reconcile.Scheduler, logger *zap.Logger) *Service {
	return &Service{scheduler: scheduler, logger: logger}
}

// Trigger runs a pass or joins the one in flight.
func (s *Service) Trigger(ctx context.Context) (*reconcile.PassReport, error) {
	return s.scheduler.RunOnce(ctx)
}

// Status returns the scheduler state and its last report.
func (s *Service) Status() Status {
	return Status{
		State:      s.scheduler.State(),
		Interval:   s.scheduler.Interval().String(),
		LastReport: s.scheduler.LastReport(),
	}
}

// Plan compares the cache with the warehouse without writing.
func (s *Service) Plan(ctx context.Context) (*reconcile.Plan, error) {
	return s.scheduler.Plan(ctx)
}
