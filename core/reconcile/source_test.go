package reconcile_test

import (
	"slices"
	"sync"
)

type fakeSource struct {
	mu    sync.Mutex
	items map[int]int
}

func newFakeSource(items map[int]int) *fakeSource {
	return &fakeSource{items: items}
}

func (f *fakeSource) ProductIDs() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (f *fakeSource) Quantity(productID int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[productID]
}
