package warehouse

import "time"

// Config holds configuration for the warehouse connection.
type Config struct {
	// Driver selects the client implementation (http, database).
	Driver string `mapstructure:"driver" default:"http"`
	// BaseURL is the root of the warehouse REST API.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:8081"`
	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// SimulatorConfig holds configuration for the bundled warehouse simulator.
type SimulatorConfig struct {
	// Port is the port where the simulator listens.
	Port string `mapstructure:"port" default:"8081"`
	// DatabasePath is the sqlite file holding simulated stock.
	DatabasePath string `mapstructure:"database_path" default:"warehouse.db"`
	// Latency is added to every stock call.
	Latency time.Duration `mapstructure:"latency" default:"0s"`
	// FailureRate is the probability, between 0 and 1, that a stock call answers 503.
	FailureRate float64 `mapstructure:"failure_rate" default:"0"`
}
