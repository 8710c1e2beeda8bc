package checks

import (
	"context"
	"errors"

	"cached-inventory/core/snapshot"
)

// Check statuses.
const (
	StatusOK      = "ok"
	StatusMissing = "missing"
	StatusCorrupt = "corrupt"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// SnapshotReport describes the persisted snapshot compared with the live cache.
type SnapshotReport struct {
	Location string `json:"location"`
	Status   string `json:"status"`
	// Products is the number of products in the stored snapshot.
	Products int `json:"products"`
	// Drift counts products whose stored quantity differs from the cache, or that exist on one side only.
	Drift int    `json:"drift"`
	Error string `json:"error,omitempty"`
}

// CheckSnapshot loads the stored snapshot and compares it with live.
func CheckSnapshot(ctx context.Context, store snapshot.Store, live map[int]int) SnapshotReport {
	report := SnapshotReport{Location: store.Location(), Status: StatusOK}

	stored, err := store.Load(ctx)
	switch {
	case errors.Is(err, snapshot.ErrNotFound):
		report.Status = StatusMissing
		report.Drift = len(live)
		return report
	case errors.Is(err, snapshot.ErrCorrupt):
		report.Status = StatusCorrupt
		report.Error = err.Error()
		report.Drift = len(live)
		return report
	case err != nil:
		report.Status = StatusError
		report.Error = err.Error()
		return report
	}

	report.Products = len(stored)
	report.Drift = Drift(stored, live)
	return report
}

// Drift counts the product ids whose quantities differ between a and b.
func Drift(a, b map[int]int) int {
	n := 0
	for id, qa := range a {
		if qb, ok := b[id]; !ok || qa != qb {
			n++
		}
	}
	for id := range b {
		if _, ok := a[id]; !ok {
			n++
		}
	}
	return n
}
