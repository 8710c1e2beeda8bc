// Package config provides configuration management for the inventory service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port and API key
//   - Log: Logging level and format
//   - Cache: Snapshot backend and location, lock stripes
//   - Sync: Reconciliation interval and per-call timeout
//   - Warehouse: Warehouse driver and endpoint
//   - Storage: S3/MinIO credentials and bucket settings
//   - Database: MySQL or SQLite connection details
//   - Simulator: Warehouse simulator port and fault injection
//
// Environment variables map onto keys by replacing dots with underscores,
// e.g. SYNC_INTERVAL=5s sets sync.interval.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.Interval)
package config
