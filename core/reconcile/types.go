package reconcile

import "time"

// State describes what a Scheduler is doing.
type State string

const (
	// StateIdle means the scheduler is waiting for the next tick.
	StateIdle State = "idle"
	// StateRunning means a pass is in flight.
	StateRunning State = "running"
	// StateStopped means Stop was called; no further passes run.
	StateStopped State = "stopped"
)

// ProductResult is the outcome of pushing one product to the warehouse.
type ProductResult struct {
	// ProductID identifies the product.
	ProductID int `json:"product_id"`

	// Cached is the quantity read from the cache and pushed.
	Cached int `json:"cached"`

	// Observed is the quantity read back from the warehouse, if the read succeeded.
	Observed *int `json:"observed,omitempty"`

	// Pushed reports whether the update call succeeded.
	Pushed bool `json:"pushed"`

	// Verified reports whether the read-back matched the pushed quantity.
	Verified bool `json:"verified"`

	// Error holds the update or read-back failure, if any.
	Error string `json:"error,omitempty"`
}

// PassSummary provides aggregate counts for a pass.
type PassSummary struct {
	// Products is the number of products visited.
	Products int `json:"products"`

	// Pushed counts successful updates.
	Pushed int `json:"pushed"`

	// Verified counts read-backs that matched.
	Verified int `json:"verified"`

	// Mismatches counts read-backs that returned a different quantity.
	Mismatches int `json:"mismatches"`

	// Failed counts products whose update or read-back errored.
	Failed int `json:"failed"`
}

// PassReport contains the results of one reconciliation pass.
type PassReport struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// Cancelled is set when the pass stopped before visiting every product.
	Cancelled bool `json:"cancelled"`

	Results []ProductResult `json:"results"`
	Summary PassSummary     `json:"summary"`
}

// Duration returns how long the pass ran.
func (r *PassReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// PlanAction describes what a pass would do for a product.
type PlanAction string

const (
	// PlanNone means the warehouse already holds the cached quantity.
	PlanNone PlanAction = "none"
	// PlanUpdate means the warehouse quantity differs and would be overwritten.
	PlanUpdate PlanAction = "update"
	// PlanCreate means the warehouse has no record and one would be written.
	PlanCreate PlanAction = "create"
	// PlanUnknown means the warehouse could not be read.
	PlanUnknown PlanAction = "unknown"
)

// PlanEntry compares one product across cache and warehouse.
type PlanEntry struct {
	ProductID int        `json:"product_id"`
	Cached    int        `json:"cached"`
	Warehouse *int       `json:"warehouse,omitempty"`
	Action    PlanAction `json:"action"`
	Error     string     `json:"error,omitempty"`
}

// PlanSummary provides aggregate counts for a plan.
type PlanSummary struct {
	Products int `json:"products"`
	InSync   int `json:"in_sync"`
	Updates  int `json:"updates"`
	Creates  int `json:"creates"`
	Unknown  int `json:"unknown"`
}

// Plan is a read-only comparison of cache and warehouse.
type Plan struct {
	Entries []PlanEntry `json:"entries"`
	Summary PlanSummary `json:"summary"`
}

// Changes returns the entries that a pass would write.
func (p *Plan) Changes() []PlanEntry {
	changes := make([]PlanEntry, 0, p.Summary.Updates+p.Summary.Creates)
	for _, e := range p.Entries {
		if e.Action == PlanUpdate || e.Action == PlanCreate {
			changes = append(changes, e)
		}
	}
	return changes
}
