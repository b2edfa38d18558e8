// Package pool implements a fixed-capacity object pool: a pre-allocated
// set of reusable instances with an active/free partition, avoiding
// per-frame allocation for short-lived entities.
package pool

import "fmt"

// Pool holds capacity instances of T created once up front. Instances move
// between the free and active partitions; they are never freed.
type Pool[T any] struct {
	items  []*T        // [0:active) is the active partition (swap-and-pop)
	index  map[*T]int  // position of each instance in items
	active int
}

// New pre-allocates capacity instances using factory.
func New[T any](capacity int, factory func() *T) (*Pool[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("pool: capacity must be positive, got %d", capacity)
	}
	if factory == nil {
		return nil, fmt.Errorf("pool: factory must not be nil")
	}
	p := &Pool[T]{
		items: make([]*T, capacity),
		index: make(map[*T]int, capacity),
	}
	for i := range p.items {
		obj := factory()
		p.items[i] = obj
		p.index[obj] = i
	}
	return p, nil
}

// Acquire returns an inactive instance and marks it active, or nil when
// the pool is exhausted. Exhaustion is an expected steady-state condition
// ("spawn skipped"), not an error.
func (p *Pool[T]) Acquire() *T {
	if p.active >= len(p.items) {
		return nil
	}
	obj := p.items[p.active]
	p.active++
	return obj
}

// Release marks an instance inactive and returns it to the free partition.
// Releasing an already-inactive or unrecognized instance is a no-op.
func (p *Pool[T]) Release(obj *T) {
	i, ok := p.index[obj]
	if !ok || i >= p.active {
		return
	}
	last := p.active - 1
	if i != last {
		other := p.items[last]
		p.items[i], p.items[last] = other, obj
		p.index[other] = i
		p.index[obj] = last
	}
	p.active--
}

// Active returns a snapshot of the active instances. The snapshot stays
// valid while instances are released during iteration; the pool's internal
// partition is not affected by mutating the returned slice.
func (p *Pool[T]) Active() []*T {
	out := make([]*T, p.active)
	copy(out, p.items[:p.active])
	return out
}

// Contains reports whether obj belongs to this pool and is active.
func (p *Pool[T]) Contains(obj *T) bool {
	i, ok := p.index[obj]
	return ok && i < p.active
}

// Reset deactivates every instance without deallocating.
func (p *Pool[T]) Reset() {
	p.active = 0
}

// Len returns the number of active instances.
func (p *Pool[T]) Len() int {
	return p.active
}

// Cap returns the fixed capacity.
func (p *Pool[T]) Cap() int {
	return len(p.items)
}
