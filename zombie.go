package rhi

import "sync"

// zombieRecord is a resource whose last handle was dropped at
// cpuTimelineAtDrop; its API destruction is deferred until the device's GPU
// timeline reaches that value.
type zombieRecord struct {
	cpuTimelineAtDrop uint64
	obj               zombiable
}

// zombieQueue is a FIFO of pending destructions, guarded by its own mutex so
// that any thread dropping the last handle to a resource never contends
// with pool mutation locks.
type zombieQueue struct {
	mu      sync.Mutex
	records []zombieRecord
}

func (q *zombieQueue) push(cpuTimeline uint64, obj zombiable) {
	q.mu.Lock()
	q.records = append(q.records, zombieRecord{cpuTimelineAtDrop: cpuTimeline, obj: obj})
	q.mu.Unlock()
}

// drain removes and returns every record whose cpuTimelineAtDrop has been
// retired by the GPU (i.e. <= gpuTimeline), preserving FIFO order among the
// records it does not yet reclaim.
func (q *zombieQueue) drain(gpuTimeline uint64) []zombieRecord {
	q.mu.Lock()
	defer q.mu.Unlock()

	var ready []zombieRecord
	remaining := q.records[:0]
	for _, rec := range q.records {
		if rec.cpuTimelineAtDrop <= gpuTimeline {
			ready = append(ready, rec)
		} else {
			remaining = append(remaining, rec)
		}
	}
	q.records = remaining
	return ready
}

// len reports the number of pending records, for tests and diagnostics.
func (q *zombieQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.records)
}
