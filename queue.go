package rhi

import "sync"

// commandBufferStore is a single thread's working set of command buffers
// drawn from its per-thread CommandPool: a fixed ring of up to
// MaxCommandBufferPerPool buffers, tracked alongside their lifecycle state
// so next_free_command_buffer can find one to reuse without walking the
// pool's own free-slot list.
type commandBufferStore struct {
	commandBuffers [MaxCommandBufferPerPool]*CommandBuffer
	states         [MaxCommandBufferPerPool]CommandBufferState
	count          int
	index          int
}

// CommandQueue is the thread-facing façade over a CommandPool and a shared
// SubmissionQueue. Every calling goroutine gets its own CommandPool and
// commandBufferStore, so recording itself never contends; only
// SubmissionQueue.SendToGPU serializes across threads.
type CommandQueue struct {
	device    *Device
	queue     DeviceQueue
	submitter *SubmissionQueue

	mu      sync.Mutex
	pools   map[int]*CommandPool
	stores  map[int]*commandBufferStore
	nextTID int
}

// NewCommandQueue creates a façade over submitter targeting queue.
func NewCommandQueue(d *Device, submitter *SubmissionQueue, queue DeviceQueue) *CommandQueue {
	return &CommandQueue{
		device:    d,
		queue:     queue,
		submitter: submitter,
		pools:     make(map[int]*CommandPool),
		stores:    make(map[int]*commandBufferStore),
	}
}

// ThreadToken identifies a calling thread's private pool and command-buffer
// store. Callers obtain one via RegisterThread and reuse it for the
// lifetime of that goroutine.
type ThreadToken int

// RegisterThread allocates a fresh CommandPool and commandBufferStore for
// the calling thread, returning a token to pass to NextCommandBuffer.
func (q *CommandQueue) RegisterThread() (ThreadToken, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	tid := q.nextTID
	q.nextTID++

	poolRes, err := NewCommandPool(q.device, CommandPoolInfo{Queue: q.queue})
	if err != nil {
		return 0, err
	}
	q.pools[tid] = poolRes.Get()
	q.stores[tid] = &commandBufferStore{}
	return ThreadToken(tid), nil
}

// NextCommandBuffer returns a command buffer ready for recording for the
// thread identified by tid: one whose state is Initial, or Executable with
// an already-elapsed recording timeline; allocates a fresh one from the
// thread's pool (bounded by MaxCommandBufferPerPool) otherwise.
func (q *CommandQueue) NextCommandBuffer(tid ThreadToken) (*CommandBuffer, bool) {
	q.mu.Lock()
	pool := q.pools[int(tid)]
	store := q.stores[int(tid)]
	q.mu.Unlock()
	if pool == nil || store == nil {
		return nil, false
	}

	for i := 0; i < store.count; i++ {
		idx := (store.index + i) % store.count
		cb := store.commandBuffers[idx]
		store.states[idx] = cb.state
		state := store.states[idx]
		if state == CommandBufferStateInitial ||
			(state == CommandBufferStateExecutable && cb.recordingTimeline <= q.device.GPUTimeline()) {
			store.states[idx] = CommandBufferStateInitial
			return cb, true
		}
	}

	if store.count >= MaxCommandBufferPerPool {
		debugAssert(false, "CommandQueue.next_free_command_buffer: store exhausted")
		return nil, false
	}

	cb, ok := pool.NextCommandBuffer()
	if !ok {
		return nil, false
	}
	store.commandBuffers[store.count] = cb
	store.states[store.count] = CommandBufferStateInitial
	store.count++
	return cb, true
}

// NewSubmissionGroup delegates to the shared SubmissionQueue for this
// façade's queue type.
func (q *CommandQueue) NewSubmissionGroup() (*SubmissionGroup, bool) {
	return q.submitter.NewSubmissionGroup(q.queue)
}

// Terminate destroys every registered thread's CommandPool and the command
// buffers it allocated.
func (q *CommandQueue) Terminate() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for tid, pool := range q.pools {
		pool.destroyNow()
		delete(q.pools, tid)
		delete(q.stores, tid)
	}
}
