// Package warehouse talks to the external inventory authority.
//
// Client is the contract the reconciliation scheduler pushes quantities
// through. Two drivers implement it:
//
//   - HTTPClient calls the warehouse REST API (GET and PUT /warehouse/stock/:productId).
//   - DBClient writes straight into the warehouse_stock table through GORM.
//
// The bundled simulator serves the REST API on top of a DBClient, so the two
// drivers share one storage model.
package warehouse
