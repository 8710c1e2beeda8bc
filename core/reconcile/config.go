package reconcile

import "time"

// Config holds configuration for the reconciliation scheduler.
type Config struct {
	// Enabled runs the scheduler alongside the HTTP server.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Interval is the pause between two passes.
	Interval time.Duration `mapstructure:"interval" default:"2.5s"`
	// CallTimeout bounds each warehouse call.
	CallTimeout time.Duration `mapstructure:"call_timeout" default:"5s"`
}

// Options converts the configuration into scheduler options.
func (c Config) Options() Options {
	return Options{Interval: c.Interval, CallTimeout: c.CallTimeout}
}
