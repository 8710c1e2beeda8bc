// Package reconciliation exposes the reconciliation scheduler over HTTP.
//
// # HTTP Endpoints
//
//   - POST /sync : Runs a pass now, or waits for the pass in flight, and returns its report.
//   - GET /sync : Returns the scheduler state and the last pass report.
//   - GET /sync/plan : Compares cache and warehouse without writing (dry run).
package reconciliation
