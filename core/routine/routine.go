// Package routine starts background goroutines with panic recovery.
//
// The stock cache writer and the reconciliation loop run for the lifetime of the
// process; a panic in either must be logged instead of taking the server down.
package routine

import (
	"context"
	"runtime/debug"

	"go.uber.org/zap"
)

// GoNamed runs fn in a new goroutine. A panic is recovered and logged under name.
func GoNamed(log *zap.Logger, name string, fn func()) {
	go func() {
		defer recoverWithLog(log, name)
		fn()
	}()
}

// GoNamedWithContext runs fn with ctx in a new goroutine. A panic is recovered and logged under name.
func GoNamedWithContext(ctx context.Context, log *zap.Logger, name string, fn func(ctx context.Context)) {
	go func() {
		defer recoverWithLog(log, name)
		fn(ctx)
	}()
}

func recoverWithLog(log *zap.Logger, name string) {
	if rec := recover(); rec != nil {
		log.Error("goroutine panicked",
			zap.String("routine", name),
			zap.Any("panic", rec),
			zap.String("stack", string(debug.Stack())),
		)
	}
}
