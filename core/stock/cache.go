package stock

import (
	"context"
	"errors"
	"math"
	"slices"
	"sync"

	"cached-inventory/core/routine"
	"cached-inventory/core/snapshot"

	"go.uber.org/zap"
)

// DefaultShards is the number of lock stripes used when Options.Shards is not set.
const DefaultShards = 64

// ErrInsufficientStock is returned by Retrieve when the requested amount exceeds the cached quantity.
var ErrInsufficientStock = errors.New("not enough stock")

// ErrQuantityOverflow is returned when an operation would move a quantity outside the int range.
var ErrQuantityOverflow = errors.New("quantity overflow")

// Options tunes a Cache.
type Options struct {
	// Shards is the number of lock stripes.
	Shards int
}

type shard struct {
	mu    sync.Mutex
	items map[int]int
}

// Cache is a concurrent productId -> quantity map persisted through a snapshot.Store.
type Cache struct {
	shards []*shard
	store  snapshot.Store
	logger *zap.Logger

	// saveMu serializes snapshot-and-save so a later save never writes older state.
	saveMu sync.Mutex
	dirty  chan struct{}

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// NewCache builds a cache from the last snapshot in store and starts its background writer.
// A missing, corrupt or unreadable snapshot is logged and the cache starts empty.
func NewCache(ctx context.Context, store snapshot.Store, log *zap.Logger, opts Options) *Cache {
	n := opts.Shards
	if n <= 0 {
		n = DefaultShards
	}

	c := &Cache{
		shards: make([]*shard, n),
		store:  store,
		logger: log,
		dirty:  make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	for i := range c.shards {
		c.shards[i] = &shard{items: make(map[int]int)}
	}

	c.load(ctx)

	writerCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c.cancel = cancel
	routine.GoNamedWithContext(writerCtx, log, "stock-snapshot-writer", c.runWriter)

	return c
}

func (c *Cache) load(ctx context.Context) {
	l := c.logger.With(zap.String("location", c.store.Location()))

	snap, err := c.store.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, snapshot.ErrNotFound):
		l.Info("No stock snapshot found, starting with an empty cache")
		return
	case errors.Is(err, snapshot.ErrCorrupt):
		l.Warn("Stock snapshot is corrupt, starting with an empty cache", zap.Error(err))
		return
	default:
		l.Error("Failed to load stock snapshot, starting with an empty cache", zap.Error(err))
		return
	}

	for id, qty := range snap {
		c.shardFor(id).items[id] = qty
	}
	l.Info("Loaded stock snapshot", zap.Int("products", len(snap)))
}

func (c *Cache) shardFor(productID int) *shard {
	return c.shards[uint(productID)%uint(len(c.shards))]
}

// Quantity returns the cached quantity of productID, or 0 when it is unknown.
func (c *Cache) Quantity(productID int) int {
	s := c.shardFor(productID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[productID]
}

// SetQuantity overwrites the quantity of productID.
func (c *Cache) SetQuantity(productID, quantity int) {
	s := c.shardFor(productID)
	s.mu.Lock()
	s.items[productID] = quantity
	s.mu.Unlock()

	c.markDirty()
}

// Retrieve atomically takes amount units of productID and returns the remaining quantity.
// When amount exceeds the cached quantity nothing changes and ErrInsufficientStock is returned
// together with the current quantity.
func (c *Cache) Retrieve(productID, amount int) (int, error) {
	s := c.shardFor(productID)
	s.mu.Lock()
	current := s.items[productID]
	if amount > current {
		s.mu.Unlock()
		return current, ErrInsufficientStock
	}
	if amount == math.MinInt {
		s.mu.Unlock()
		return current, ErrQuantityOverflow
	}
	next, ok := add(current, -amount)
	if !ok {
		s.mu.Unlock()
		return current, ErrQuantityOverflow
	}
	s.items[productID] = next
	s.mu.Unlock()

	c.markDirty()
	return next, nil
}

// Restock atomically adds amount units to productID and returns the new quantity.
// An addition past the int range leaves the quantity unchanged and returns ErrQuantityOverflow.
func (c *Cache) Restock(productID, amount int) (int, error) {
	s := c.shardFor(productID)
	s.mu.Lock()
	current := s.items[productID]
	next, ok := add(current, amount)
	if !ok {
		s.mu.Unlock()
		return current, ErrQuantityOverflow
	}
	s.items[productID] = next
	s.mu.Unlock()

	c.markDirty()
	return next, nil
}

// add returns a+b and false when the sum does not fit in an int.
func add(a, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return a, false
	}
	return a + b, true
}

// ProductIDs returns the known product ids in ascending order.
// The slice is a copy; products added afterwards are not reflected.
func (c *Cache) ProductIDs() []int {
	ids := make([]int, 0)
	for _, s := range c.shards {
		s.mu.Lock()
		for id := range s.items {
			ids = append(ids, id)
		}
		s.mu.Unlock()
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of known products.
func (c *Cache) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.Lock()
		n += len(s.items)
		s.mu.Unlock()
	}
	return n
}

// Snapshot copies the whole mapping. Each shard is copied under its own lock.
func (c *Cache) Snapshot() map[int]int {
	snap := make(map[int]int)
	for _, s := range c.shards {
		s.mu.Lock()
		for id, qty := range s.items {
			snap[id] = qty
		}
		s.mu.Unlock()
	}
	return snap
}

// Flush synchronously writes the current state to the store.
// In-memory state stays authoritative when the save fails.
func (c *Cache) Flush(ctx context.Context) error {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	snap := c.Snapshot()
	if err := c.store.Save(ctx, snap); err != nil {
		c.logger.Error("Failed to save stock snapshot",
			zap.String("location", c.store.Location()),
			zap.Int("products", len(snap)),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Close stops the background writer and performs a final save.
// Calls after the first return nil without saving again.
func (c *Cache) Close(ctx context.Context) error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		<-c.done
		err = c.Flush(ctx)
	})
	return err
}

func (c *Cache) markDirty() {
	select {
	case c.dirty <- struct{}{}:
	default:
		// A save is already pending and will pick up this change.
	}
}

func (c *Cache) runWriter(ctx context.Context) {
	defer close(c.done)

	saveCtx := context.WithoutCancel(ctx)
	for {
		select {
		case <-c.dirty:
			_ = c.Flush(saveCtx)
		case <-ctx.Done():
			return
		}
	}
}
