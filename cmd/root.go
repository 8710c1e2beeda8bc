package cmd

import (
	"fmt"
	"os"

	"cached-inventory/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cached-inventory",
	Short: "Cached Inventory Service",
	Long: `Cached Inventory answers stock reads and writes from an in-memory cache
and keeps a slower warehouse system up to date in the background.
The cache survives restarts through a file or S3 snapshot.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console output at debug level: readable timestamps for a terminal.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
