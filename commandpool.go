package rhi

import (
	"fmt"

	vulkan "github.com/ashforge/rhi/internal/vk"
)

// CommandPoolInfo describes a CommandPool's creation parameters.
type CommandPoolInfo struct {
	Name  string
	Queue DeviceQueue
}

// CommandPool owns an inline array of at most MaxCommandBufferPerPool
// command-buffer slots plus a free-slot list. CommandBuffer.destroyNow
// returns its slot to this list rather than freeing the underlying API
// command buffer, since vkResetCommandPool reclaims all of them at once.
type CommandPool struct {
	RefCountedResource
	DeviceResource

	handle      vulkan.CommandPool
	queue       DeviceQueue
	queueFamily uint32
	name        string

	buffers   [MaxCommandBufferPerPool]*CommandBuffer
	freeSlots []uint16
	count     uint16
}

// NewCommandPool creates a command pool targeting info.Queue, allowing
// individual command buffer reset (required since CommandBuffer.reset
// resets single buffers rather than the whole pool).
func NewCommandPool(d *Device, info CommandPoolInfo) (Resource[*CommandPool], error) {
	family := vkQueueFamily(d, info.Queue)
	if family == vulkan.QueueFamilyIgnored {
		debugAssert(false, "CommandPool.from: queue must be Main, Transfer, or Compute")
		return Resource[*CommandPool]{}, newError(InvalidArgument, "CommandPool.from", fmt.Errorf("command pool %q has no valid queue", info.Name))
	}

	createInfo := vulkan.CommandPoolCreateInfo{
		SType:            vulkan.StructureTypeCommandPoolCreateInfo,
		Flags:            vulkan.CommandPoolCreateFlags(vulkan.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: family,
	}
	var handle vulkan.CommandPool
	if result := vulkan.CreateCommandPool(d.handle, &createInfo, nil, &handle); result != vulkan.Success {
		return Resource[*CommandPool]{}, newError(Unsupported, "CommandPool.from", fmt.Errorf("vkCreateCommandPool: %d", result))
	}

	p := &CommandPool{
		DeviceResource: DeviceResource{device: d},
		handle:         handle,
		queue:          info.Queue,
		queueFamily:    family,
		name:           info.Name,
	}
	p.initRefCount()
	d.commandPools.Insert(p)
	return newResource(p), nil
}

// NextCommandBuffer returns a command buffer ready for recording: a free
// slot whose recordingTimeline is already retired by the GPU is reused;
// otherwise a fresh one is allocated until MaxCommandBufferPerPool is hit,
// at which point it returns false.
func (p *CommandPool) NextCommandBuffer() (*CommandBuffer, bool) {
	for len(p.freeSlots) > 0 {
		slot := p.freeSlots[len(p.freeSlots)-1]
		p.freeSlots = p.freeSlots[:len(p.freeSlots)-1]
		cb := p.buffers[slot]
		if cb.recordingTimeline <= p.device.GPUTimeline() {
			cb.state = CommandBufferStateInitial
			return cb, true
		}
	}

	if p.count >= MaxCommandBufferPerPool {
		debugAssert(false, "CommandPool.NextCommandBuffer: pool exhausted")
		return nil, false
	}

	allocInfo := vulkan.CommandBufferAllocateInfo{
		SType:              vulkan.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        p.handle,
		Level:              vulkan.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}
	handles := make([]vulkan.CommandBuffer, 1)
	if result := vulkan.AllocateCommandBuffers(p.device.handle, &allocInfo, handles); result != vulkan.Success {
		return nil, false
	}

	slot := p.count
	p.count++
	cb := &CommandBuffer{
		DeviceResource: DeviceResource{device: p.device},
		handle:         handles[0],
		pool:           p,
		slot:           slot,
		queue:          p.queue,
		state:          CommandBufferStateInitial,
	}
	cb.initRefCount()
	p.buffers[slot] = cb
	p.device.commandBuffers.Insert(cb)
	return cb, true
}

// releaseSlot returns slot to the pool's free list; called by
// CommandBuffer.destroyNow.
func (p *CommandPool) releaseSlot(slot uint16) {
	p.freeSlots = append(p.freeSlots, slot)
}

// Reset resets the underlying API pool, releasing every command buffer it
// allocated back to the Initial state.
func (p *CommandPool) Reset() error {
	if result := vulkan.ResetCommandPool(p.device.handle, p.handle, 0); result != vulkan.Success {
		return newError(Unsupported, "CommandPool.Reset", fmt.Errorf("vkResetCommandPool: %d", result))
	}
	for i := uint16(0); i < p.count; i++ {
		p.buffers[i].state = CommandBufferStateInitial
		p.buffers[i].recordingTimeline = 0
	}
	return nil
}

func (p *CommandPool) destroyNow() {
	if p.handle != nil {
		vulkan.DestroyCommandPool(p.device.handle, p.handle, nil)
		p.handle = nil
	}
}
