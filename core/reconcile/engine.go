package reconcile

import (
	"context"
	"time"

	"cached-inventory/core/warehouse"

	"go.uber.org/zap"
)

// RunPass pushes every cached quantity to the warehouse and reads it back.
//
// Products are visited sequentially in ascending id order. A failing product
// is recorded in its result and never stops the pass. Cancellation of ctx is
// checked between products; the product being processed finishes its
// update and read-back under a detached context bounded by callTimeout.
func RunPass(ctx context.Context, source Source, client warehouse.Client, log *zap.Logger, callTimeout time.Duration) *PassReport {
	report := &PassReport{
		StartedAt: time.Now(),
		Results:   []ProductResult{},
	}

	for _, id := range source.ProductIDs() {
		if ctx.Err() != nil {
			report.Cancelled = true
			break
		}
		report.Results = append(report.Results, reconcileProduct(ctx, id, source, client, log, callTimeout))
	}

	report.FinishedAt = time.Now()
	report.Summary = summarize(report.Results)

	log.Info("Reconciliation pass finished",
		zap.Int("products", report.Summary.Products),
		zap.Int("pushed", report.Summary.Pushed),
		zap.Int("verified", report.Summary.Verified),
		zap.Int("mismatches", report.Summary.Mismatches),
		zap.Int("failed", report.Summary.Failed),
		zap.Bool("cancelled", report.Cancelled),
		zap.Duration("duration", report.Duration()),
	)

	return report
}

func reconcileProduct(ctx context.Context, id int, source Source, client warehouse.Client, log *zap.Logger, callTimeout time.Duration) ProductResult {
	cached := source.Quantity(id)
	result := ProductResult{ProductID: id, Cached: cached}
	l := log.With(zap.Int("product_id", id), zap.Int("cached", cached))

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), callTimeout)
	defer cancel()

	if err := client.UpdateStock(callCtx, id, cached); err != nil {
		l.Error("Failed to push stock to warehouse", zap.Error(err))
		result.Error = err.Error()
		return result
	}
	result.Pushed = true

	observed, err := client.GetStock(callCtx, id)
	if err != nil {
		l.Error("Failed to read back warehouse stock", zap.Error(err))
		result.Error = err.Error()
		return result
	}
	result.Observed = &observed
	result.Verified = observed == cached

	if !result.Verified {
		l.Warn("Warehouse stock differs after update", zap.Int("observed", observed))
		return result
	}
	l.Info("Warehouse stock verified", zap.Int("observed", observed))
	return result
}

func summarize(results []ProductResult) PassSummary {
	s := PassSummary{Products: len(results)}
	for _, r := range results {
		if r.Pushed {
			s.Pushed++
		}
		switch {
		case r.Error != "":
			s.Failed++
		case r.Verified:
			s.Verified++
		default:
			s.Mismatches++
		}
	}
	return s
}
