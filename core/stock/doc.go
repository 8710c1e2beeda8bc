// Package stock holds the in-memory stock cache.
//
// The cache maps product ids to quantities. It is the single source of truth
// while the process runs: reads and writes never touch the network or the
// disk, they only flag the cache as dirty. A background writer then persists
// the whole mapping through a snapshot.Store.
//
// # Concurrency
//
// Keys are spread over lock-striped shards. Retrieve and Restock run their
// read-modify-write under the owning shard's lock, so compound operations on
// one product are linearizable while unrelated products proceed in parallel.
//
// # Lifecycle
//
//	cache := stock.NewCache(ctx, store, log, stock.Options{})
//	defer cache.Close(ctx) // stops the writer and performs a final save
//
//	if _, err := cache.Retrieve(1, 7); errors.Is(err, stock.ErrInsufficientStock) {
//	    // reject the request
//	}
package stock
