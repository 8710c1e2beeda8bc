package cmd

import (
	"bufio"
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"cached-inventory/core/config"
	"cached-inventory/core/logger"
	"cached-inventory/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunSync bool
	yesConfirm bool
)

// syncCmd runs a single reconciliation pass from the stored snapshot.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push the stored snapshot to the warehouse once",
	Long: `Loads the stock snapshot, compares it with the warehouse and pushes
every cached quantity in a single reconciliation pass.

Examples:
  # Show what would change
  sync --dry-run

  # Push with interactive confirmation
  sync

  # Push without confirmation
  sync --yes`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Only print the plan, write nothing")
	syncCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Skip the confirmation prompt")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

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
	snap, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot from %s: %w", store.Location(), err)
	}
	source := snapshotSource(snap)

	client, _, err := openWarehouse(cfg, l)
	if err != nil {
		return err
	}

	l.Info("Planning reconciliation...", zap.Int("products", len(snap)))
	plan, err := reconcile.BuildPlan(ctx, source, client, cfg.Sync.CallTimeout)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}
	printPlan(l, plan)

	if dryRunSync {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(plan.Changes()) == 0 {
		l.Info("Warehouse already matches the snapshot.")
		return nil
	}
	if !confirmPush() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	report := reconcile.RunPass(ctx, source, client, l, cfg.Sync.CallTimeout)
	if report.Summary.Failed > 0 {
		return fmt.Errorf("%d of %d products failed to reconcile", report.Summary.Failed, report.Summary.Products)
	}
	return nil
}

// snapshotSource adapts a loaded snapshot to a reconcile.Source.
type snapshotSource map[int]int

func (s snapshotSource) ProductIDs() []int {
	return slices.Sorted(maps.Keys(s))
}

func (s snapshotSource) Quantity(productID int) int {
	return s[productID]
}

// printPlan logs a plan summary and a sample of its changes.
func printPlan(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary
	l.Info("Reconciliation plan",
		zap.Int("products", s.Products),
		zap.Int("in_sync", s.InSync),
		zap.Int("updates", s.Updates),
		zap.Int("creates", s.Creates),
		zap.Int("unknown", s.Unknown),
	)

	changes := plan.Changes()
	maxShow := min(len(changes), 5)
	for _, e := range changes[:maxShow] {
		fields := []zap.Field{
			zap.Int("product_id", e.ProductID),
			zap.String("action", string(e.Action)),
			zap.Int("cached", e.Cached),
		}
		if e.Warehouse != nil {
			fields = append(fields, zap.Int("warehouse", *e.Warehouse))
		}
		l.Info("Sample change", fields...)
	}
	if len(changes) > maxShow {
		l.Info("Additional changes not shown", zap.Int("count", len(changes)-maxShow))
	}
}

// confirmPush prompts the user for confirmation or uses --yes flag.
func confirmPush() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to overwrite warehouse quantities: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
