package reconcile

// Source is the cached side of a reconciliation.
// stock.Cache satisfies it.
type Source interface {
	// ProductIDs returns a point-in-time copy of the known product ids.
	ProductIDs() []int
	// Quantity returns the cached quantity of productID.
	Quantity(productID int) int
}
