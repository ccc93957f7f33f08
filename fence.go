package rhi

import (
	"fmt"
	"math"
	"unsafe"

	vulkan "github.com/ashforge/rhi/internal/vk"
)

// InfiniteTimeout is the default, effectively-infinite fence wait timeout
// used when a caller does not specify one, matching the reference design's
// u64::MAX default.
const InfiniteTimeout = math.MaxUint64

// Fence is a timeline fence: a monotonically increasing 64-bit value with
// an arbitrary number of waiters and signalers. Device uses one internally
// as its GPU timeline; Swapchain and UploadHeap each own one as well.
type Fence struct {
	RefCountedResource
	DeviceResource

	handle vulkan.Semaphore // timeline semaphores share VkSemaphore's type
	name   string
}

func newFence(d *Device, name string, initialValue uint64) (*Fence, error) {
	typeInfo := vulkan.SemaphoreTypeCreateInfo{
		SType:         vulkan.StructureTypeSemaphoreTypeCreateInfo,
		SemaphoreType: vulkan.SemaphoreTypeTimeline,
		InitialValue:  initialValue,
	}
	info := vulkan.SemaphoreCreateInfo{
		SType: vulkan.StructureTypeSemaphoreCreateInfo,
		PNext: unsafe.Pointer(&typeInfo),
	}
	var handle vulkan.Semaphore
	if result := vulkan.CreateSemaphore(d.handle, &info, nil, &handle); result != vulkan.Success {
		return nil, fmt.Errorf("vkCreateSemaphore(timeline): %d", result)
	}
	f := &Fence{DeviceResource: DeviceResource{device: d}, handle: handle, name: name}
	f.initRefCount()
	return f, nil
}

// NewFence creates a standalone timeline fence and pools it, returning the
// first handle at reference count 1.
func NewFence(d *Device, name string, initialValue uint64) (Resource[*Fence], error) {
	f, err := newFence(d, name, initialValue)
	if err != nil {
		return Resource[*Fence]{}, newError(Unsupported, "Fence.from", err)
	}
	d.fences.Insert(f)
	return newResource(f), nil
}

func (f *Fence) Name() string { return f.name }

// Value reads the fence's current counter value.
func (f *Fence) Value() (uint64, error) {
	var value uint64
	if result := vulkan.GetSemaphoreCounterValue(f.device.handle, f.handle, &value); result != vulkan.Success {
		return 0, fmt.Errorf("vkGetSemaphoreCounterValue: %d", result)
	}
	return value, nil
}

// Signal advances the fence's counter to value from the host.
func (f *Fence) Signal(value uint64) error {
	info := vulkan.SemaphoreSignalInfo{
		SType:     vulkan.StructureTypeSemaphoreSignalInfo,
		Semaphore: f.handle,
		Value:     value,
	}
	if result := vulkan.SignalSemaphore(f.device.handle, &info); result != vulkan.Success {
		return fmt.Errorf("vkSignalSemaphore: %d", result)
	}
	return nil
}

// WaitForValue blocks the host until the fence's counter reaches value or
// the timeout (in nanoseconds) elapses.
func (f *Fence) WaitForValue(value uint64, timeoutNanos uint64) error {
	waitInfo := vulkan.SemaphoreWaitInfo{
		SType:          vulkan.StructureTypeSemaphoreWaitInfo,
		SemaphoreCount: 1,
		PSemaphores:    []vulkan.Semaphore{f.handle},
		PValues:        []uint64{value},
	}
	if result := vulkan.WaitSemaphores(f.device.handle, &waitInfo, timeoutNanos); result != vulkan.Success {
		return fmt.Errorf("vkWaitSemaphores: %d", result)
	}
	return nil
}

func (f *Fence) destroyNow() {
	if f.handle != nil {
		vulkan.DestroySemaphore(f.device.handle, f.handle, nil)
		f.handle = nil
	}
}
