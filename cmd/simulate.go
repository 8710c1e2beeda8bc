package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cached-inventory/core/config"
	"cached-inventory/core/database"
	"cached-inventory/core/loader"
	"cached-inventory/core/logger"
	"cached-inventory/core/warehouse"
	"cached-inventory/feature/simulator"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sharedDatabase bool

// simulateCmd serves a stand-in warehouse API.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a local warehouse simulator",
	Long: `Serves the warehouse stock API backed by a sqlite file, with optional
latency and failure injection (SIMULATOR_LATENCY, SIMULATOR_FAILURE_RATE).

With --shared-database the simulator writes to the DATABASE_* connection
instead, so it shares the table read by the database warehouse driver.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&sharedDatabase, "shared-database", false, "Use the DATABASE_* connection instead of the local sqlite file")
	RootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	dbCfg := database.Config{
		Driver:         database.DriverSQLite,
		Name:           cfg.Simulator.DatabasePath,
		TimeoutSeconds: cfg.Database.TimeoutSeconds,
	}
	if sharedDatabase {
		dbCfg = cfg.Database
	}

	db, err := database.Connect(dbCfg)
	if err != nil {
		return fmt.Errorf("failed to open simulator database: %w", err)
	}
	store := warehouse.NewDBClient(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate simulator database: %w", err)
	}

	app := newApp(logg)

	mgr := loader.NewManager()
	mgr.Register(simulator.NewFeature(store, cfg.Simulator, logg))
	if err := mgr.LoadAll(app); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting warehouse simulator",
			zap.String("port", cfg.Simulator.Port),
			zap.String("driver", dbCfg.Driver),
			zap.String("database", dbCfg.Name),
			zap.Duration("latency", cfg.Simulator.Latency),
			zap.Float64("failure_rate", cfg.Simulator.FailureRate),
		)
		errCh <- app.Listen(":" + cfg.Simulator.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("simulator failed: %w", err)
	case <-ctx.Done():
	}

	logg.Info("Shutting down simulator...")
	return app.Shutdown()
}
