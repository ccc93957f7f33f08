package rhi

import "testing"

func TestSubmissionQueueGrantsGroupsUpToCapacity(t *testing.T) {
	sq := &SubmissionQueue{}
	for i := range sq.groups {
		sq.groups[i] = newSubmissionGroup()
	}

	for i := 0; i < MaxSubmissionGroups; i++ {
		if _, ok := sq.NewSubmissionGroup(DeviceQueueMain); !ok {
			t.Fatalf("NewSubmissionGroup failed before reaching MaxSubmissionGroups at i=%d", i)
		}
	}
	if _, ok := sq.NewSubmissionGroup(DeviceQueueMain); ok {
		t.Fatalf("NewSubmissionGroup succeeded past MaxSubmissionGroups")
	}
}

func TestSubmissionQueueClearFreesAllGroups(t *testing.T) {
	sq := &SubmissionQueue{}
	for i := range sq.groups {
		sq.groups[i] = newSubmissionGroup()
	}

	for i := 0; i < MaxSubmissionGroups; i++ {
		if _, ok := sq.NewSubmissionGroup(DeviceQueueTransfer); !ok {
			t.Fatalf("NewSubmissionGroup failed at i=%d", i)
		}
	}
	sq.Clear()
	if _, ok := sq.NewSubmissionGroup(DeviceQueueTransfer); !ok {
		t.Fatalf("NewSubmissionGroup failed immediately after Clear")
	}
}

func TestSubmissionGroupCommandBufferCapEnforced(t *testing.T) {
	g := newSubmissionGroup()
	g.reset(DeviceQueueMain)
	for i := 0; i < MaxCommandBufferSubmissionCount; i++ {
		g.SubmitCommandBuffer(&CommandBuffer{})
	}
	if len(g.commandBuffers) != MaxCommandBufferSubmissionCount {
		t.Fatalf("commandBuffers len = %d, want %d", len(g.commandBuffers), MaxCommandBufferSubmissionCount)
	}
	g.SubmitCommandBuffer(&CommandBuffer{})
	if len(g.commandBuffers) != MaxCommandBufferSubmissionCount {
		t.Fatalf("SubmitCommandBuffer grew past cap: len = %d", len(g.commandBuffers))
	}
}

func TestSubmissionGroupFenceAndSemaphoreCapsEnforced(t *testing.T) {
	g := newSubmissionGroup()
	g.reset(DeviceQueueCompute)

	for i := 0; i < MaxFenceSubmissionCount/2; i++ {
		g.WaitOnFence(&Fence{}, uint64(i))
		g.SignalFence(&Fence{}, uint64(i))
	}
	g.WaitOnFence(&Fence{}, 999)
	g.SignalFence(&Fence{}, 999)
	if len(g.waitFences) != MaxFenceSubmissionCount/2 {
		t.Fatalf("waitFences len = %d, want %d", len(g.waitFences), MaxFenceSubmissionCount/2)
	}
	if len(g.signalFences) != MaxFenceSubmissionCount/2 {
		t.Fatalf("signalFences len = %d, want %d", len(g.signalFences), MaxFenceSubmissionCount/2)
	}

	for i := 0; i < MaxSemaphoreSubmissionCount/2; i++ {
		g.WaitOnSemaphore(&Semaphore{}, PipelineStageAllCommands)
		g.SignalSemaphore(&Semaphore{})
	}
	g.WaitOnSemaphore(&Semaphore{}, PipelineStageAllCommands)
	g.SignalSemaphore(&Semaphore{})
	if len(g.waitSemaphores) != MaxSemaphoreSubmissionCount/2 {
		t.Fatalf("waitSemaphores len = %d, want %d", len(g.waitSemaphores), MaxSemaphoreSubmissionCount/2)
	}
	if len(g.signalSemaphores) != MaxSemaphoreSubmissionCount/2 {
		t.Fatalf("signalSemaphores len = %d, want %d", len(g.signalSemaphores), MaxSemaphoreSubmissionCount/2)
	}
}

func TestSubmissionGroupEmptyReportsNoPendingWork(t *testing.T) {
	g := newSubmissionGroup()
	g.reset(DeviceQueueMain)
	if !g.empty() {
		t.Fatalf("freshly reset group reports non-empty")
	}
	g.SubmitCommandBuffer(&CommandBuffer{})
	if g.empty() {
		t.Fatalf("group with a queued command buffer reports empty")
	}
}
