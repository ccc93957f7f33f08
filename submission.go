package rhi

// SubmissionGroup batches one queue's command buffers and wait/signal
// fences/semaphores for a single vkQueueSubmit2 call. Capacities are fixed
// (MaxCommandBufferSubmissionCount command buffers, MaxFenceSubmissionCount/2
// each of wait and signal fences, MaxSemaphoreSubmissionCount/2 each of wait
// and signal semaphores); appends past the cap are rejected in debug builds
// and silently dropped in release.
type SubmissionGroup struct {
	queue DeviceQueue
	inUse bool

	commandBuffers []*CommandBuffer

	waitFences   []FenceWait
	signalFences []FenceWait

	waitSemaphores   []*Semaphore
	waitStageMasks   []PipelineStage
	signalSemaphores []*Semaphore
}

func newSubmissionGroup() *SubmissionGroup {
	return &SubmissionGroup{
		commandBuffers:   make([]*CommandBuffer, 0, MaxCommandBufferSubmissionCount),
		waitFences:       make([]FenceWait, 0, MaxFenceSubmissionCount/2),
		signalFences:     make([]FenceWait, 0, MaxFenceSubmissionCount/2),
		waitSemaphores:   make([]*Semaphore, 0, MaxSemaphoreSubmissionCount/2),
		waitStageMasks:   make([]PipelineStage, 0, MaxSemaphoreSubmissionCount/2),
		signalSemaphores: make([]*Semaphore, 0, MaxSemaphoreSubmissionCount/2),
	}
}

func (g *SubmissionGroup) reset(queue DeviceQueue) {
	g.queue = queue
	g.inUse = true
	g.commandBuffers = g.commandBuffers[:0]
	g.waitFences = g.waitFences[:0]
	g.signalFences = g.signalFences[:0]
	g.waitSemaphores = g.waitSemaphores[:0]
	g.waitStageMasks = g.waitStageMasks[:0]
	g.signalSemaphores = g.signalSemaphores[:0]
}

// SubmitCommandBuffer appends cb to the group's command-buffer list.
func (g *SubmissionGroup) SubmitCommandBuffer(cb *CommandBuffer) {
	if len(g.commandBuffers) >= MaxCommandBufferSubmissionCount {
		debugAssert(false, "SubmissionGroup.submit_command_buffer: group exhausted")
		return
	}
	g.commandBuffers = append(g.commandBuffers, cb)
}

// WaitOnFence appends a timeline-fence wait to the group.
func (g *SubmissionGroup) WaitOnFence(f *Fence, value uint64) {
	if len(g.waitFences) >= MaxFenceSubmissionCount/2 {
		debugAssert(false, "SubmissionGroup.wait_on_fence: group exhausted")
		return
	}
	g.waitFences = append(g.waitFences, FenceWait{Fence: f, Value: value})
}

// SignalFence appends a timeline-fence signal to the group.
func (g *SubmissionGroup) SignalFence(f *Fence, value uint64) {
	if len(g.signalFences) >= MaxFenceSubmissionCount/2 {
		debugAssert(false, "SubmissionGroup.signal_fence: group exhausted")
		return
	}
	g.signalFences = append(g.signalFences, FenceWait{Fence: f, Value: value})
}

// WaitOnSemaphore appends a binary-semaphore wait, gated on stage.
func (g *SubmissionGroup) WaitOnSemaphore(s *Semaphore, stage PipelineStage) {
	if len(g.waitSemaphores) >= MaxSemaphoreSubmissionCount/2 {
		debugAssert(false, "SubmissionGroup.wait_on_semaphore: group exhausted")
		return
	}
	g.waitSemaphores = append(g.waitSemaphores, s)
	g.waitStageMasks = append(g.waitStageMasks, stage)
}

// SignalSemaphore appends a binary-semaphore signal to the group.
func (g *SubmissionGroup) SignalSemaphore(s *Semaphore) {
	if len(g.signalSemaphores) >= MaxSemaphoreSubmissionCount/2 {
		debugAssert(false, "SubmissionGroup.signal_semaphore: group exhausted")
		return
	}
	g.signalSemaphores = append(g.signalSemaphores, s)
}

func (g *SubmissionGroup) empty() bool {
	return len(g.commandBuffers) == 0 && len(g.waitFences) == 0 && len(g.signalFences) == 0 &&
		len(g.waitSemaphores) == 0 && len(g.signalSemaphores) == 0
}

// SubmissionQueue groups pending GPU submissions per queue type. Every group
// is fixed capacity, living inline in the queue rather than being
// individually heap-churned per frame.
type SubmissionQueue struct {
	device *Device
	groups [MaxSubmissionGroups]*SubmissionGroup
	count  int
}

// NewSubmissionQueue allocates the fixed group pool for d.
func NewSubmissionQueue(d *Device) *SubmissionQueue {
	sq := &SubmissionQueue{device: d}
	for i := range sq.groups {
		sq.groups[i] = newSubmissionGroup()
	}
	return sq
}

// NewSubmissionGroup claims the next free group for queue, or returns
// ok=false if all MaxSubmissionGroups are already in use.
func (sq *SubmissionQueue) NewSubmissionGroup(queue DeviceQueue) (*SubmissionGroup, bool) {
	for _, g := range sq.groups {
		if !g.inUse {
			g.reset(queue)
			return g, true
		}
	}
	debugAssert(false, "SubmissionQueue.new_submission_group: no free groups")
	return nil, false
}

// SendToGPU walks every in-use, non-empty group in insertion order and
// issues one Device.Submit per group. Returns false if any submit failed.
func (sq *SubmissionQueue) SendToGPU() bool {
	ok := true
	for _, g := range sq.groups {
		if !g.inUse || g.empty() {
			continue
		}
		info := SubmitInfo{
			Queue:          g.queue,
			CommandBuffers: g.commandBuffers,
			WaitSemaphores: g.waitSemaphores,
			WaitStageMasks: g.waitStageMasks,
			SignalSemaphores: g.signalSemaphores,
			WaitFences:     g.waitFences,
			SignalFences:   g.signalFences,
		}
		if !sq.device.Submit(info) {
			ok = false
		}
	}
	return ok
}

// Clear releases every group back to the free pool, resetting its counters.
func (sq *SubmissionQueue) Clear() {
	for _, g := range sq.groups {
		g.inUse = false
		g.commandBuffers = g.commandBuffers[:0]
		g.waitFences = g.waitFences[:0]
		g.signalFences = g.signalFences[:0]
		g.waitSemaphores = g.waitSemaphores[:0]
		g.waitStageMasks = g.waitStageMasks[:0]
		g.signalSemaphores = g.signalSemaphores[:0]
	}
}
