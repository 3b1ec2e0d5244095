// SPDX-License-Identifier: MIT

package ckd

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/spectralkit/spectral/data"
)

// binSetPath templates the logical path of a registered bin-set
// definition.
const binSetPath = "ckd/bin_sets/%s.nc"

// DefaultCapacity bounds the registry cache when WithCapacity is not
// given.
const DefaultCapacity = 128

// Registry is a memoizing bin-set factory over a data.Store. Repeated
// FromDB calls with the same id return the identical *BinSet — not
// merely an equal one — which keeps the quadrature-sharing invariant
// meaningful across the whole program: every Bindex produced anywhere
// for that id references the same rule object.
//
// The cache is bounded LRU; eviction only drops the registry's own
// reference, never invalidates a BinSet already handed out. Safe for
// concurrent use.
type Registry struct {
	store    data.Store
	capacity int

	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List // front = most recently used
}

// cacheEntry is the LRU list payload.
type cacheEntry struct {
	id  string
	set *BinSet
}

// Option configures a Registry.
type Option func(*Registry)

// WithCapacity bounds the cache to n entries. Panics when n < 1:
// a zero-capacity memoizing registry is a programmer error, not a
// runtime condition.
func WithCapacity(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("ckd: registry capacity must be >= 1, got %d", n))
	}
	return func(r *Registry) { r.capacity = n }
}

// NewRegistry builds a registry over store. Multiple independent
// registries may coexist in one process (isolated test runs, separate
// stores); memoization is per registry, not global.
func NewRegistry(store data.Store, opts ...Option) *Registry {
	r := &Registry{
		store:    store,
		capacity: DefaultCapacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len returns the number of cached bin sets.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// FromDB returns the bin set registered under id, building it from the
// backing store on first use. The dataset handle is opened, read and
// closed within this call. Store errors (including data.ErrNotFound)
// propagate unchanged; this layer adds no recovery semantics.
func (r *Registry) FromDB(id string) (*BinSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if el, ok := r.items[id]; ok {
		r.order.MoveToFront(el)
		return el.Value.(*cacheEntry).set, nil
	}

	set, err := r.build(id)
	if err != nil {
		return nil, err
	}

	r.items[id] = r.order.PushFront(&cacheEntry{id: id, set: set})
	for r.order.Len() > r.capacity {
		oldest := r.order.Back()
		r.order.Remove(oldest)
		delete(r.items, oldest.Value.(*cacheEntry).id)
	}
	return set, nil
}

// build populates one cache entry. Called with the registry lock held;
// the computation is pure and idempotent, so serializing it is only
// about never constructing two divergent instances for one id.
func (r *Registry) build(id string) (*BinSet, error) {
	ds, err := r.store.Open(fmt.Sprintf(binSetPath, id))
	if err != nil {
		return nil, err
	}
	defer ds.Close()
	return FromDataset(id, ds)
}

// FromNodeDataset returns the bin set a dataset declares for itself
// through its "bin_set" attribute — the indirection used by datasets
// that reference a registered definition instead of embedding bins.
func (r *Registry) FromNodeDataset(ds data.Dataset) (*BinSet, error) {
	id, err := ds.AttrString("bin_set")
	if err != nil {
		return nil, err
	}
	return r.FromDB(id)
}

// ConvertBinSet resolves a loose bin-set reference: a string is looked
// up through FromDB, a *BinSet passes through unchanged.
func (r *Registry) ConvertBinSet(value any) (*BinSet, error) {
	switch v := value.(type) {
	case *BinSet:
		return v, nil
	case string:
		return r.FromDB(v)
	default:
		return nil, fmt.Errorf("%w: cannot resolve a bin set from %v (%T)", ErrBadConvert, value, value)
	}
}
