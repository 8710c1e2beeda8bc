package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cached-inventory/core/config"
	"cached-inventory/core/loader"
	"cached-inventory/core/logger"
	"cached-inventory/core/middleware/auth"
	"cached-inventory/core/reconcile"
	"cached-inventory/core/stock"

	"cached-inventory/feature/integrity"
	"cached-inventory/feature/inventory"
	"cached-inventory/feature/reconciliation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "cached-inventory/docs/swagger"
)

const shutdownTimeout = 10 * time.Second

// @title Cached Inventory API
// @version 1.0
// @description Low-latency stock reads and writes in front of a slower warehouse system.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory server",
	Long: `Loads the stock snapshot, starts the HTTP server and runs the
reconciliation scheduler until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 3. Snapshot store and cache
		store, err := openSnapshotStore(cfg)
		if err != nil {
			logg.Fatal("Failed to create snapshot store", zap.Error(err))
		}
		cache := stock.NewCache(ctx, store, logg, stock.Options{Shards: cfg.Cache.Shards})
		logg.Info("Stock cache ready",
			zap.String("location", store.Location()),
			zap.Int("products", cache.Len()),
		)

		// 4. Warehouse client
		client, db, err := openWarehouse(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to create warehouse client", zap.Error(err))
		}

		// 5. Scheduler
		var scheduler *reconcile.Scheduler
		if cfg.Sync.Enabled {
			scheduler = reconcile.NewScheduler(cache, client, logg, cfg.Sync.Options())
		}

		// RayID and panic recovery come first so every log line can be traced
		app := newApp(logg)

		// 6. Feature Loader
		mgr := loader.NewManager()
		mgr.Register(inventory.NewFeature(cache, logg))
		mgr.Register(reconciliation.NewFeature(scheduler, logg))
		mgr.Register(integrity.NewFeature(store, cache, client, db, logg))

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			l.Debug("Request completed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("duration", time.Since(start)),
			)
			return err
		})

		// Public routes
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		if !cfg.Server.AuthEnabled() {
			logg.Warn("SERVER_API_KEY is empty, API is not protected")
		}

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start scheduler and server
		if scheduler != nil {
			if err := scheduler.Start(ctx); err != nil {
				logg.Fatal("Failed to start reconciliation scheduler", zap.Error(err))
			}
		}

		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		<-ctx.Done()
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logg.Error("Server shutdown failed", zap.Error(err))
		}
		if scheduler != nil {
			scheduler.Stop()
		}

		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := cache.Close(flushCtx); err != nil {
			logg.Error("Final snapshot write failed", zap.Error(err))
		} else {
			logg.Info("Final snapshot written", zap.String("location", store.Location()))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
