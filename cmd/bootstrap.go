package cmd

import (
	"fmt"

	"cached-inventory/core/config"
	"cached-inventory/core/database"
	"cached-inventory/core/middleware/rayid"
	"cached-inventory/core/server"
	"cached-inventory/core/snapshot"
	"cached-inventory/core/stock"
	"cached-inventory/core/storage"
	"cached-inventory/core/warehouse"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newApp creates the Fiber app shared by start and simulate: JSON errors,
// ray id on every request and handler panics turned into 500 responses.
func newApp(logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          server.ErrorHandler(logg),
	})
	app.Use(rayid.New())
	app.Use(recover.New())
	return app
}

// openSnapshotStore builds the snapshot backend selected by cache.backend.
func openSnapshotStore(cfg *config.Config) (snapshot.Store, error) {
	return snapshotStoreFor(cfg, cfg.Cache.Backend)
}

func snapshotStoreFor(cfg *config.Config, backend string) (snapshot.Store, error) {
	switch backend {
	case stock.BackendFile, "":
		return snapshot.NewFileStore(cfg.Cache.SnapshotPath), nil
	case stock.BackendS3:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return snapshot.NewObjectStore(client, cfg.Storage.Bucket, cfg.Cache.SnapshotObject), nil
	default:
		return nil, fmt.Errorf("unsupported snapshot backend %q", backend)
	}
}

// openWarehouse builds the warehouse client selected by warehouse.driver.
// The returned database handle is nil unless the database driver is used.
func openWarehouse(cfg *config.Config, logg *zap.Logger) (warehouse.Client, *gorm.DB, error) {
	switch cfg.Warehouse.Driver {
	case warehouse.DriverHTTP, "":
		logg.Info("Using warehouse REST API", zap.String("base_url", cfg.Warehouse.BaseURL))
		return warehouse.NewHTTPClient(cfg.Warehouse), nil, nil
	case warehouse.DriverDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to warehouse database: %w", err)
		}
		logg.Info("Connected to warehouse database",
			zap.String("driver", cfg.Database.Driver),
			zap.String("name", cfg.Database.Name),
		)
		return warehouse.NewDBClient(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unsupported warehouse driver %q", cfg.Warehouse.Driver)
	}
}
