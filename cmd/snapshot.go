package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"cached-inventory/core/config"
	"cached-inventory/core/logger"
	"cached-inventory/core/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	snapshotJSON bool
	migrateTo    string
)

// snapshotCmd groups snapshot maintenance commands.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Inspect or move the stock snapshot",
}

// snapshotShowCmd prints the stored snapshot.
var snapshotShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored stock snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		store, err := openSnapshotStore(cfg)
		if err != nil {
			return err
		}
		snap, err := store.Load(cmd.Context())
		if errors.Is(err, snapshot.ErrNotFound) {
			l.Info("No snapshot stored yet", zap.String("location", store.Location()))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load snapshot from %s: %w", store.Location(), err)
		}

		if snapshotJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(snap)
		}

		l.Info("Snapshot loaded",
			zap.String("location", store.Location()),
			zap.Int("products", len(snap)),
		)
		for _, id := range slices.Sorted(maps.Keys(snap)) {
			fmt.Printf("%d\t%d\n", id, snap[id])
		}
		return nil
	},
}

// snapshotMigrateCmd copies the snapshot from the configured backend to another one.
var snapshotMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy the snapshot to another backend",
	Long: `Reads the snapshot from the backend configured in CACHE_BACKEND and
writes it to the backend given by --to. The source is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		if migrateTo == cfg.Cache.Backend {
			return fmt.Errorf("snapshot already uses the %s backend", migrateTo)
		}

		src, err := openSnapshotStore(cfg)
		if err != nil {
			return err
		}
		dst, err := snapshotStoreFor(cfg, migrateTo)
		if err != nil {
			return err
		}

		snap, err := src.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load snapshot from %s: %w", src.Location(), err)
		}
		if err := dst.Save(cmd.Context(), snap); err != nil {
			return fmt.Errorf("failed to save snapshot to %s: %w", dst.Location(), err)
		}

		l.Info("Snapshot migrated",
			zap.String("from", src.Location()),
			zap.String("to", dst.Location()),
			zap.Int("products", len(snap)),
		)
		return nil
	},
}

func init() {
	snapshotShowCmd.Flags().BoolVar(&snapshotJSON, "json", false, "Print the snapshot as JSON")
	snapshotMigrateCmd.Flags().StringVar(&migrateTo, "to", "", "Target backend (file, s3)")
	_ = snapshotMigrateCmd.MarkFlagRequired("to")

	snapshotCmd.AddCommand(snapshotShowCmd, snapshotMigrateCmd)
	RootCmd.AddCommand(snapshotCmd)
}
