// Package integrity provides health checks over the service's dependencies.
//
// # Checks Provided
//
//   - Snapshot: Loads the stored snapshot and counts products that differ from the live cache.
//   - Warehouse: Pings the warehouse (HTTP health endpoint or database connection).
//   - Schema: For the database driver, verifies the warehouse_stock table has every column written to it.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/snapshot : Runs the snapshot check (supports ?fix=true to rewrite it from the cache).
//   - GET /integrity/warehouse : Runs the warehouse check.
//   - GET /integrity/schema : Runs the schema check.
package integrity
