package rhi

import (
	"fmt"

	vulkan "github.com/ashforge/rhi/internal/vk"
)

// Semaphore is a binary semaphore: a single-use GPU/GPU ordering object
// between exactly one signaler and one waiter on the same device.
type Semaphore struct {
	RefCountedResource
	DeviceResource

	handle vulkan.Semaphore
	name   string
}

// NewSemaphore creates a binary semaphore and returns the first handle to
// it at reference count 1.
func NewSemaphore(d *Device, name string) (Resource[*Semaphore], error) {
	s, err := newSemaphore(d, name)
	if err != nil {
		return Resource[*Semaphore]{}, newError(Unsupported, "Semaphore.from", err)
	}
	d.semaphores.Insert(s)
	return newResource(s), nil
}

// newSemaphore creates a binary semaphore without pooling it, used
// internally by Swapchain to build its per-image acquire/present arrays.
func newSemaphore(d *Device, name string) (*Semaphore, error) {
	info := vulkan.SemaphoreCreateInfo{SType: vulkan.StructureTypeSemaphoreCreateInfo}
	var handle vulkan.Semaphore
	if result := vulkan.CreateSemaphore(d.handle, &info, nil, &handle); result != vulkan.Success {
		return nil, fmt.Errorf("vkCreateSemaphore: %d", result)
	}
	s := &Semaphore{DeviceResource: DeviceResource{device: d}, handle: handle, name: name}
	s.initRefCount()
	return s, nil
}

func (s *Semaphore) Name() string { return s.name }

func (s *Semaphore) destroyNow() {
	if s.handle != nil {
		vulkan.DestroySemaphore(s.device.handle, s.handle, nil)
		s.handle = nil
	}
}
