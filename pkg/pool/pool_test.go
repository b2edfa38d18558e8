package pool

import "testing"

type bullet struct {
	x, y float64
	hits int
}

func newTestPool(t *testing.T, capacity int) *Pool[bullet] {
	t.Helper()
	p, err := New(capacity, func() *bullet { return &bullet{} })
	if err != nil {
		t.Fatalf("New(%d): %v", capacity, err)
	}
	return p
}

func TestNew_RejectsInvalidArguments(t *testing.T) {
	if _, err := New(0, func() *bullet { return &bullet{} }); err == nil {
		t.Error("capacity 0 should fail")
	}
	if _, err := New(-3, func() *bullet { return &bullet{} }); err == nil {
		t.Error("negative capacity should fail")
	}
	if _, err := New[bullet](4, nil); err == nil {
		t.Error("nil factory should fail")
	}
}

func TestAcquire_ExhaustionAfterCapacity(t *testing.T) {
	const capacity = 5
	p := newTestPool(t, capacity)

	for i := 0; i < capacity; i++ {
		if obj := p.Acquire(); obj == nil {
			t.Fatalf("acquisition %d failed before capacity reached", i+1)
		}
	}
	if obj := p.Acquire(); obj != nil {
		t.Error("acquisition beyond capacity should report exhaustion")
	}
	if p.Len() != capacity {
		t.Errorf("active count = %d, want %d", p.Len(), capacity)
	}
}

func TestRelease_AllowsReacquire(t *testing.T) {
	p := newTestPool(t, 3)
	var objs []*bullet
	for i := 0; i < 3; i++ {
		objs = append(objs, p.Acquire())
	}

	p.Release(objs[1])
	if p.Len() != 2 {
		t.Errorf("active count after release = %d, want 2", p.Len())
	}
	if obj := p.Acquire(); obj == nil {
		t.Error("re-acquire after release failed")
	}
	if obj := p.Acquire(); obj != nil {
		t.Error("pool should be exhausted again")
	}
}

func TestRelease_UnknownAndDoubleReleaseAreNoOps(t *testing.T) {
	p := newTestPool(t, 2)
	a := p.Acquire()

	stray := &bullet{}
	p.Release(stray)
	if p.Len() != 1 {
		t.Errorf("unknown release changed active count to %d", p.Len())
	}

	p.Release(a)
	p.Release(a) // already inactive
	if p.Len() != 0 {
		t.Errorf("double release corrupted count: %d", p.Len())
	}
	// Capacity must still be fully acquirable.
	if p.Acquire() == nil || p.Acquire() == nil {
		t.Error("pool lost capacity after no-op releases")
	}
	if p.Acquire() != nil {
		t.Error("pool gained capacity after no-op releases")
	}
}

func TestActive_SnapshotSafeAgainstReleaseDuringIteration(t *testing.T) {
	p := newTestPool(t, 8)
	for i := 0; i < 8; i++ {
		b := p.Acquire()
		b.x = float64(i)
	}

	seen := 0
	for _, b := range p.Active() {
		seen++
		p.Release(b) // release while iterating must not corrupt bookkeeping
	}
	if seen != 8 {
		t.Errorf("iterated %d objects, want 8", seen)
	}
	if p.Len() != 0 {
		t.Errorf("active count after full release = %d, want 0", p.Len())
	}
	for i := 0; i < 8; i++ {
		if p.Acquire() == nil {
			t.Fatalf("re-acquire %d failed after iterate-and-release", i)
		}
	}
}

func TestReset_DeactivatesWithoutDeallocating(t *testing.T) {
	p := newTestPool(t, 4)
	first := p.Acquire()
	first.hits = 7
	p.Acquire()

	p.Reset()
	if p.Len() != 0 {
		t.Errorf("active count after reset = %d, want 0", p.Len())
	}
	if p.Cap() != 4 {
		t.Errorf("capacity after reset = %d, want 4", p.Cap())
	}
	// Instances are reused, not re-created: the old one comes back.
	got := p.Acquire()
	if got != first {
		t.Error("reset should keep pre-allocated instances for reuse")
	}
}

func TestContains_TracksActivity(t *testing.T) {
	p := newTestPool(t, 2)
	a := p.Acquire()
	if !p.Contains(a) {
		t.Error("acquired object not reported active")
	}
	p.Release(a)
	if p.Contains(a) {
		t.Error("released object still reported active")
	}
	if p.Contains(&bullet{}) {
		t.Error("foreign object reported active")
	}
}
