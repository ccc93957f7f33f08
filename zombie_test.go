package rhi

import "testing"

type fakeZombiable struct{ destroyed bool }

func (f *fakeZombiable) destroyNow() { f.destroyed = true }

func TestZombieQueueDrainRespectsTimeline(t *testing.T) {
	var q zombieQueue
	early := &fakeZombiable{}
	late := &fakeZombiable{}
	q.push(5, early)
	q.push(10, late)

	if got := q.len(); got != 2 {
		t.Fatalf("len() = %d, want 2", got)
	}

	ready := q.drain(7)
	if len(ready) != 1 || ready[0].obj != zombiable(early) {
		t.Fatalf("drain(7) = %+v, want only the record dropped at timeline 5", ready)
	}
	if got := q.len(); got != 1 {
		t.Fatalf("len() after partial drain = %d, want 1", got)
	}

	ready = q.drain(10)
	if len(ready) != 1 || ready[0].obj != zombiable(late) {
		t.Fatalf("drain(10) = %+v, want the remaining record", ready)
	}
	if got := q.len(); got != 0 {
		t.Fatalf("len() after full drain = %d, want 0", got)
	}
}

func TestZombieQueueDrainEmptyIsNoop(t *testing.T) {
	var q zombieQueue
	if ready := q.drain(100); len(ready) != 0 {
		t.Fatalf("drain on empty queue returned %d records, want 0", len(ready))
	}
}

func TestZombieQueuePreservesFIFOOrderAmongUndrained(t *testing.T) {
	var q zombieQueue
	a := &fakeZombiable{}
	b := &fakeZombiable{}
	c := &fakeZombiable{}
	q.push(1, a)
	q.push(2, b)
	q.push(100, c)

	ready := q.drain(2)
	if len(ready) != 2 {
		t.Fatalf("drain(2) returned %d records, want 2", len(ready))
	}
	if ready[0].obj != zombiable(a) || ready[1].obj != zombiable(b) {
		t.Fatalf("drain(2) did not preserve insertion order: %+v", ready)
	}
	if q.len() != 1 {
		t.Fatalf("len() = %d, want 1 remaining", q.len())
	}
}
