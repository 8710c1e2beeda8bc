package reconcile

import (
	"context"
	"errors"
	"time"

	"cached-inventory/core/warehouse"
)

// BuildPlan compares every cached quantity with the warehouse without writing anything.
// A read failure for one product is recorded as PlanUnknown; only cancellation of ctx
// aborts the plan.
func BuildPlan(ctx context.Context, source Source, client warehouse.Client, callTimeout time.Duration) (*Plan, error) {
	plan := &Plan{Entries: []PlanEntry{}}

	for _, id := range source.ProductIDs() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry := PlanEntry{ProductID: id, Cached: source.Quantity(id)}

		callCtx, cancel := context.WithTimeout(ctx, callTimeout)
		remote, err := client.GetStock(callCtx, id)
		cancel()

		switch {
		case errors.Is(err, warehouse.ErrProductNotFound):
			entry.Action = PlanCreate
			plan.Summary.Creates++
		case err != nil:
			entry.Action = PlanUnknown
			entry.Error = err.Error()
			plan.Summary.Unknown++
		case remote == entry.Cached:
			entry.Warehouse = &remote
			entry.Action = PlanNone
			plan.Summary.InSync++
		default:
			entry.Warehouse = &remote
			entry.Action = PlanUpdate
			plan.Summary.Updates++
		}

		plan.Entries = append(plan.Entries, entry)
	}

	plan.Summary.Products = len(plan.Entries)
	return plan, nil
}
