package reconcile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"cached-inventory/core/routine"
	"cached-inventory/core/warehouse"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultInterval is the pause between two passes.
	DefaultInterval = 2500 * time.Millisecond
	// DefaultCallTimeout bounds each warehouse call.
	DefaultCallTimeout = 5 * time.Second

	passKey = "pass"
)

var (
	// ErrStopped is returned when a pass is requested after Stop.
	ErrStopped = errors.New("scheduler stopped")
	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("scheduler already started")
)

// Options tunes a Scheduler. Zero values fall back to the defaults.
type Options struct {
	Interval    time.Duration
	CallTimeout time.Duration
}

// Scheduler runs reconciliation passes on a fixed interval.
// Passes never overlap: a pass requested while one is running joins it.
type Scheduler struct {
	source      Source
	client      warehouse.Client
	logger      *zap.Logger
	interval    time.Duration
	callTimeout time.Duration

	sf singleflight.Group

	mu      sync.RWMutex
	last    *PassReport
	baseCtx context.Context

	started  atomic.Bool
	running  atomic.Bool
	stopped  atomic.Bool
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// NewScheduler creates a Scheduler. Call Start to begin the periodic loop.
func NewScheduler(source Source, client warehouse.Client, log *zap.Logger, opts Options) *Scheduler {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = DefaultCallTimeout
	}

	return &Scheduler{
		source:      source,
		client:      client,
		logger:      log,
		interval:    opts.Interval,
		callTimeout: opts.CallTimeout,
		done:        make(chan struct{}),
	}
}

// Start runs a first pass immediately and then one pass per interval until ctx
// is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	// stopped, started and cancel change together under mu so Stop never
	// observes a started scheduler without its cancel func.
	s.mu.Lock()
	if s.stopped.Load() {
		s.mu.Unlock()
		return ErrStopped
	}
	if s.started.Load() {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	loopCtx, cancel := context.WithCancel(ctx)
	s.baseCtx = loopCtx
	s.cancel = cancel
	s.started.Store(true)
	s.mu.Unlock()

	s.logger.Info("Starting reconciliation scheduler", zap.Duration("interval", s.interval))

	routine.GoNamedWithContext(loopCtx, s.logger, "reconcile-scheduler", s.loop)
	return nil
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, ErrStopped) {
			s.logger.Error("Reconciliation pass failed", zap.Error(err))
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			s.logger.Info("Stopping reconciliation scheduler")
			return
		}
	}
}

// Stop cancels the loop and waits for it to exit. An in-flight pass finishes
// the product it is working on. Stop is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped.Store(true)
		cancel := s.cancel
		started := s.started.Load()
		s.mu.Unlock()

		if cancel != nil {
			cancel()
		}
		if started {
			<-s.done
		}
	})
}

// RunOnce runs a pass, or joins the pass already in flight, and returns its report.
//
// When the scheduler has been started the pass runs under the scheduler's own
// context, so a caller giving up only stops waiting. Otherwise the pass runs
// under ctx.
func (s *Scheduler) RunOnce(ctx context.Context) (*PassReport, error) {
	if s.stopped.Load() {
		return nil, ErrStopped
	}

	passCtx := s.passContext(ctx)
	ch := s.sf.DoChan(passKey, func() (any, error) {
		return s.pass(passCtx), nil
	})

	select {
	case res := <-ch:
		return res.Val.(*PassReport), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Scheduler) passContext(ctx context.Context) context.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.baseCtx != nil {
		return s.baseCtx
	}
	return ctx
}

func (s *Scheduler) pass(ctx context.Context) *PassReport {
	s.running.Store(true)
	defer s.running.Store(false)

	report := RunPass(ctx, s.source, s.client, s.logger, s.callTimeout)

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	return report
}

// LastReport returns the report of the most recent finished pass, or nil.
func (s *Scheduler) LastReport() *PassReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// State returns the current scheduler state.
func (s *Scheduler) State() State {
	switch {
	case s.stopped.Load():
		return StateStopped
	case s.running.Load():
		return StateRunning
	default:
		return StateIdle
	}
}

// Interval returns the pause between two passes.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Plan compares the cache with the warehouse without writing.
func (s *Scheduler) Plan(ctx context.Context) (*Plan, error) {
	return BuildPlan(ctx, s.source, s.client, s.callTimeout)
}
