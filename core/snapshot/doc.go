// Package snapshot persists the stock cache as a single document.
//
// A snapshot is the full productId → quantity mapping encoded as a JSON object
// whose keys are decimal product ids, e.g. {"1":10,"42":0}. It is always read
// and written wholesale; there is no incremental log.
//
// # Backends
//
//   - FileStore: a local file, replaced atomically (temp file, fsync, rename).
//   - ObjectStore: an object in an S3-compatible bucket (see core/storage).
//
// # Errors
//
// Load distinguishes a missing snapshot (ErrNotFound, a cold start) from an
// undecodable one (ErrCorrupt). Any other error is an I/O failure. Callers are
// expected to recover from all three by starting with an empty mapping.
package snapshot
