package integrity

import (
	"context"
	"time"

	"cached-inventory/core/snapshot"
	"cached-inventory/core/stock"
	"cached-inventory/core/warehouse"
	"cached-inventory/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const pingTimeout = 5 * time.Second

// Report is the combined result of every integrity check.
type Report struct {
	Snapshot  checks.SnapshotReport  `json:"snapshot"`
	Warehouse checks.WarehouseReport `json:"warehouse"`
	Schema    checks.SchemaReport    `json:"schema"`
}

// Healthy reports whether no check failed. Skipped checks count as healthy.
func (r Report) Healthy() bool {
	return r.Snapshot.Status != checks.StatusError &&
		r.Snapshot.Status != checks.StatusCorrupt &&
		r.Warehouse.Status != checks.StatusError &&
		r.Schema.Status != checks.StatusError
}

// Service handles integrity checks.
type Service struct {
	store  snapshot.Store
	cache  *stock.Cache
	client warehouse.Client
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service.
// db is only set when the warehouse uses the database driver.
func NewService(store snapshot.Store, cache *stock.Cache, client warehouse.Client, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		client: client,
		db:     db,
		logger: logger,
	}
}

// CheckSnapshot compares the stored snapshot with the live cache.
func (s *Service) CheckSnapshot(ctx context.Context) checks.SnapshotReport {
	return checks.CheckSnapshot(ctx, s.store, s.cache.Snapshot())
}

// FixSnapshot rewrites the snapshot from the live cache.
func (s *Service) FixSnapshot(ctx context.Context) error {
	return s.cache.Flush(ctx)
}

// CheckWarehouse pings the warehouse.
func (s *Service) CheckWarehouse(ctx context.Context) checks.WarehouseReport {
	return checks.CheckWarehouse(ctx, s.client, pingTimeout)
}

// CheckSchema verifies the warehouse table when the database driver is in use.
func (s *Service) CheckSchema() checks.SchemaReport {
	return checks.CheckSchema(s.db)
}

// CheckAll runs every check.
func (s *Service) CheckAll(ctx context.Context) Report {
	return Report{
		Snapshot:  s.CheckSnapshot(ctx),
		Warehouse: s.CheckWarehouse(ctx),
		Schema:    s.CheckSchema(),
	}
}
