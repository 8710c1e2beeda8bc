// Package simulator serves a stand-in warehouse for local runs and tests.
//
// It implements the REST contract consumed by warehouse.HTTPClient on top of a
// warehouse.DBClient, so quantities survive restarts when backed by a file or
// MySQL database.
//
// # HTTP Endpoints
//
//   - GET /warehouse/stock : Lists every stored product.
//   - GET /warehouse/stock/:productId : Returns {"product_id","quantity"}; 404 when unknown.
//   - PUT /warehouse/stock/:productId : Stores {"quantity"}; 204.
//   - GET /health : Liveness.
//
// Stock endpoints can be slowed down and made to fail with 503 at a configured
// rate, to exercise the reconciliation scheduler against an unreliable remote.
package simulator
