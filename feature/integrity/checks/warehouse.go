package checks

import (
	"context"
	"time"

	"cached-inventory/core/warehouse"
)

// WarehouseReport describes warehouse reachability.
type WarehouseReport struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// CheckWarehouse pings the warehouse within timeout.
func CheckWarehouse(ctx context.Context, client warehouse.Client, timeout time.Duration) WarehouseReport {
	if client == nil {
		return WarehouseReport{Status: StatusSkipped}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := client.Ping(ctx)
	report := WarehouseReport{Status: StatusOK, LatencyMS: time.Since(start).Milliseconds()}
	if err != nil {
		report.Status = StatusError
		report.Error = err.Error()
	}
	return report
}
