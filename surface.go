package rhi

import (
	"fmt"

	vulkan "github.com/ashforge/rhi/internal/vk"
)

// SurfaceInfo describes a platform rendering surface. Handle is a
// vulkan.Surface already created by the windowing layer (e.g. via
// glfw.CreateWindowSurface against the device's instance); the core never
// creates or owns window-system state itself.
type SurfaceInfo struct {
	Name              string
	PreferredFormats  []Format
	Handle            vulkan.Surface
}

// Surface wraps a platform surface and the physical-device queries needed
// to configure a Swapchain against it.
type Surface struct {
	DeviceResource

	handle vulkan.Surface
	info   SurfaceInfo
}

// NewSurface adopts an externally-created platform surface handle.
func NewSurface(d *Device, info SurfaceInfo) (*Surface, error) {
	if info.Handle == nil {
		debugAssert(false, "Surface.from: handle must not be nil")
		return nil, newError(InvalidArgument, "Surface.from", fmt.Errorf("surface %q has a nil platform handle", info.Name))
	}
	var supported vulkan.Bool32
	vulkan.GetPhysicalDeviceSurfaceSupport(d.physicalDevice, d.queues.mainFamily, info.Handle, &supported)
	if supported == vulkan.False {
		return nil, newError(Unsupported, "Surface.from", fmt.Errorf("surface %q is not supported by the main queue family", info.Name))
	}
	return &Surface{DeviceResource: DeviceResource{device: d}, handle: info.Handle, info: info}, nil
}

func (s *Surface) capabilities() (vulkan.SurfaceCapabilities, error) {
	var caps vulkan.SurfaceCapabilities
	if result := vulkan.GetPhysicalDeviceSurfaceCapabilities(s.device.physicalDevice, s.handle, &caps); result != vulkan.Success {
		return caps, fmt.Errorf("vkGetPhysicalDeviceSurfaceCapabilitiesKHR: %d", result)
	}
	caps.Deref()
	return caps, nil
}

func (s *Surface) supportedFormats() ([]vulkan.SurfaceFormat, error) {
	var count uint32
	if result := vulkan.GetPhysicalDeviceSurfaceFormats(s.device.physicalDevice, s.handle, &count, nil); result != vulkan.Success {
		return nil, fmt.Errorf("vkGetPhysicalDeviceSurfaceFormatsKHR: %d", result)
	}
	formats := make([]vulkan.SurfaceFormat, count)
	vulkan.GetPhysicalDeviceSurfaceFormats(s.device.physicalDevice, s.handle, &count, formats)
	for i := range formats {
		formats[i].Deref()
	}
	return formats, nil
}

func (s *Surface) supportedPresentModes() ([]vulkan.PresentMode, error) {
	var count uint32
	if result := vulkan.GetPhysicalDeviceSurfacePresentModes(s.device.physicalDevice, s.handle, &count, nil); result != vulkan.Success {
		return nil, fmt.Errorf("vkGetPhysicalDeviceSurfacePresentModesKHR: %d", result)
	}
	modes := make([]vulkan.PresentMode, count)
	vulkan.GetPhysicalDeviceSurfacePresentModes(s.device.physicalDevice, s.handle, &count, modes)
	return modes, nil
}

// Info returns the surface's creation parameters.
func (s *Surface) Info() SurfaceInfo { return s.info }

func (s *Surface) destroy() {
	if s.handle != nil {
		vulkan.DestroySurface(s.device.instance, s.handle, nil)
		s.handle = nil
	}
}
