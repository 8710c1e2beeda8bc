// Package reconcile pushes cached stock quantities to the warehouse.
//
// # Passes
//
// A pass takes a point-in-time list of product ids from the cache and, one
// product at a time, writes the cached quantity to the warehouse and reads it
// back. A failure on one product is logged and recorded in the PassReport;
// the pass moves on to the next product. A read-back that differs from the
// pushed value is logged as a warning and counted as a mismatch.
//
// # Scheduler
//
// The Scheduler runs a pass right after Start and then once per interval
// (2.5s by default). Passes go through a singleflight group, so a manual
// RunOnce while a pass is in flight waits for that pass instead of starting a
// second one. Stop cancels the loop; the pass in flight checks cancellation
// between products.
//
//	sched := reconcile.NewScheduler(cache, client, log, reconcile.Options{})
//	if err := sched.Start(ctx); err != nil {
//	    return err
//	}
//	defer sched.Stop()
//
// # Planning
//
// BuildPlan reads the warehouse quantity of every cached product and reports
// which ones a pass would change, without writing anything.
package reconcile
