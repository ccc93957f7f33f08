package rhi

import (
	"fmt"
	"sync/atomic"

	vulkan "github.com/ashforge/rhi/internal/vk"
)

// SwapchainInfo describes a Swapchain's creation parameters.
type SwapchainInfo struct {
	Name             string
	Dimension        Extent3D
	ImageCount       uint32
	PresentationMode SwapchainPresentMode
	ImageUsage       ImageUsage
}

// Swapchain owns a surface-bound presentation engine: the API swapchain
// object, its retrieved images, one acquire and one present binary
// semaphore per image slot, and a dedicated timeline fence used purely for
// frame pacing (distinct from the device's own GPU timeline).
type Swapchain struct {
	RefCountedResource
	DeviceResource

	surface     *Surface
	handle      vulkan.Swapchain
	colorFormat vulkan.Format

	images            []*Image
	acquireSemaphores []*Semaphore
	presentSemaphores []*Semaphore
	frameTargets      []uint64

	gpuElapsedFence *Fence
	cpuElapsed      atomic.Uint64

	nextImageIndex    uint32
	currentFrameIndex uint32
	lastAcquireSlot   uint32
	state             SwapchainState

	info SwapchainInfo
}

// NewSwapchain creates a swapchain against surface, clamping image count and
// extent to the surface's capabilities and negotiating a color format from
// surface.Info().PreferredFormats intersected with what the surface
// actually supports. When previous is non-nil, its API handle is passed as
// the old-swapchain hint and then scheduled for deferred destruction.
func NewSwapchain(d *Device, surface *Surface, info SwapchainInfo, previous *Swapchain) (Resource[*Swapchain], error) {
	caps, err := surface.capabilities()
	if err != nil {
		return Resource[*Swapchain]{}, newError(Unsupported, "Swapchain.from", err)
	}
	formats, err := surface.supportedFormats()
	if err != nil {
		return Resource[*Swapchain]{}, newError(Unsupported, "Swapchain.from", err)
	}
	presentModes, err := surface.supportedPresentModes()
	if err != nil {
		return Resource[*Swapchain]{}, newError(Unsupported, "Swapchain.from", err)
	}

	chosenFormat := pickSurfaceFormat(formats, surface.info.PreferredFormats)
	chosenMode := pickPresentMode(presentModes, vkPresentMode(info.PresentationMode))

	imageCount := info.ImageCount
	if imageCount < caps.MinImageCount {
		imageCount = caps.MinImageCount
	}
	maxCount := MaxFramesInFlight
	if caps.MaxImageCount > 0 && uint32(caps.MaxImageCount) < maxCount {
		maxCount = caps.MaxImageCount
	}
	if imageCount > maxCount {
		imageCount = maxCount
	}

	extent := vulkan.Extent2D{Width: info.Dimension.Width, Height: info.Dimension.Height}
	if caps.CurrentExtent.Width != 0xFFFFFFFF {
		extent = caps.CurrentExtent
	} else {
		extent.Width = clampU32(extent.Width, caps.MinImageExtent.Width, caps.MaxImageExtent.Width)
		extent.Height = clampU32(extent.Height, caps.MinImageExtent.Height, caps.MaxImageExtent.Height)
	}

	var oldHandle vulkan.Swapchain
	if previous != nil {
		oldHandle = previous.handle
	}

	createInfo := vulkan.SwapchainCreateInfo{
		SType:            vulkan.StructureTypeSwapchainCreateInfo,
		Surface:          surface.handle,
		MinImageCount:    imageCount,
		ImageFormat:      chosenFormat.Format,
		ImageColorSpace:  chosenFormat.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       vkImageUsage(info.ImageUsage),
		ImageSharingMode: vulkan.SharingModeExclusive,
		PreTransform:     caps.CurrentTransform,
		CompositeAlpha:   vulkan.CompositeAlphaOpaqueBit,
		PresentMode:      chosenMode,
		Clipped:          vulkan.True,
		OldSwapchain:     oldHandle,
	}

	var handle vulkan.Swapchain
	if result := vulkan.CreateSwapchain(d.handle, &createInfo, nil, &handle); result != vulkan.Success {
		return Resource[*Swapchain]{}, newError(Unsupported, "Swapchain.from", fmt.Errorf("vkCreateSwapchainKHR: %d", result))
	}

	var rawCount uint32
	vulkan.GetSwapchainImages(d.handle, handle, &rawCount, nil)
	rawImages := make([]vulkan.Image, rawCount)
	vulkan.GetSwapchainImages(d.handle, handle, &rawCount, rawImages)

	extent3D := Extent3D{Width: extent.Width, Height: extent.Height, Depth: 1}
	images := make([]*Image, rawCount)
	acquireSems := make([]*Semaphore, rawCount)
	presentSems := make([]*Semaphore, rawCount)
	for i := range rawImages {
		img, err := wrapSwapchainImage(d, rawImages[i], chosenFormat.Format, extent3D)
		if err != nil {
			vulkan.DestroySwapchain(d.handle, handle, nil)
			return Resource[*Swapchain]{}, newError(Unsupported, "Swapchain.from", err)
		}
		images[i] = img

		acq, err := newSemaphore(d, fmt.Sprintf("%s.acquire[%d]", info.Name, i))
		if err != nil {
			vulkan.DestroySwapchain(d.handle, handle, nil)
			return Resource[*Swapchain]{}, newError(Unsupported, "Swapchain.from", err)
		}
		acquireSems[i] = acq

		pres, err := newSemaphore(d, fmt.Sprintf("%s.present[%d]", info.Name, i))
		if err != nil {
			vulkan.DestroySwapchain(d.handle, handle, nil)
			return Resource[*Swapchain]{}, newError(Unsupported, "Swapchain.from", err)
		}
		presentSems[i] = pres
	}

	gpuElapsedFence, err := newFence(d, info.Name+".elapsed", 0)
	if err != nil {
		vulkan.DestroySwapchain(d.handle, handle, nil)
		return Resource[*Swapchain]{}, newError(Unsupported, "Swapchain.from", err)
	}

	sc := &Swapchain{
		DeviceResource:    DeviceResource{device: d},
		surface:           surface,
		handle:            handle,
		colorFormat:       chosenFormat.Format,
		images:            images,
		acquireSemaphores: acquireSems,
		presentSemaphores: presentSems,
		frameTargets:      make([]uint64, rawCount),
		gpuElapsedFence:   gpuElapsedFence,
		info: SwapchainInfo{
			Name:             info.Name,
			Dimension:        extent3D,
			ImageCount:       rawCount,
			PresentationMode: info.PresentationMode,
			ImageUsage:       info.ImageUsage,
		},
	}
	sc.initRefCount()
	d.swapchains.Insert(sc)

	if previous != nil {
		d.scheduleZombie(previous)
	}

	return newResource(sc), nil
}

func pickSurfaceFormat(supported []vulkan.SurfaceFormat, preferred []Format) vulkan.SurfaceFormat {
	for _, p := range preferred {
		want := vkFormat(p)
		for _, s := range supported {
			if s.Format == want {
				return s
			}
		}
	}
	if len(supported) > 0 {
		return supported[0]
	}
	return vulkan.SurfaceFormat{Format: vulkan.FormatB8g8r8a8Srgb, ColorSpace: vulkan.ColorspaceSrgbNonlinear}
}

func pickPresentMode(supported []vulkan.PresentMode, want vulkan.PresentMode) vulkan.PresentMode {
	for _, m := range supported {
		if m == want {
			return want
		}
	}
	return vulkan.PresentModeFifo
}

func clampU32(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AcquireNextImage waits on the dedicated timeline fence for the frame
// currently occupying currentFrameIndex's slot, then acquires using that
// slot's acquire semaphore. Returns the resulting SwapchainState; callers
// should recreate the swapchain when the state is Suboptimal or Error.
func (sc *Swapchain) AcquireNextImage() SwapchainState {
	slot := sc.currentFrameIndex
	if target := sc.frameTargets[slot]; target > 0 {
		if err := sc.gpuElapsedFence.WaitForValue(target, InfiniteTimeout); err != nil {
			sc.state = SwapchainStateError
			return sc.state
		}
	}

	var imageIndex uint32
	result := vulkan.AcquireNextImage(sc.device.handle, sc.handle, InfiniteTimeout, sc.acquireSemaphores[slot].handle, nil, &imageIndex)
	switch result {
	case vulkan.Success:
		sc.state = SwapchainStateOk
	case vulkan.Suboptimal:
		sc.state = SwapchainStateSuboptimal
	case vulkan.Timeout:
		sc.state = SwapchainStateTimedOut
		return sc.state
	case vulkan.NotReady:
		sc.state = SwapchainStateNotReady
		return sc.state
	default:
		sc.state = SwapchainStateError
		return sc.state
	}

	sc.nextImageIndex = imageIndex
	sc.lastAcquireSlot = slot
	newElapsed := sc.cpuElapsed.Add(1)
	sc.frameTargets[slot] = newElapsed
	sc.currentFrameIndex = uint32(newElapsed % uint64(len(sc.images)))
	return sc.state
}

// present issues a present call for the current image on queue. Called by
// Device.Present, never directly by user code.
func (sc *Swapchain) present(queue vulkan.Queue) SwapchainState {
	presentSem := sc.presentSemaphores[sc.nextImageIndex].handle
	indices := []uint32{sc.nextImageIndex}
	swapchains := []vulkan.Swapchain{sc.handle}
	info := vulkan.PresentInfo{
		SType:              vulkan.StructureTypePresentInfo,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    []vulkan.Semaphore{presentSem},
		SwapchainCount:     1,
		PSwapchains:        swapchains,
		PImageIndices:      indices,
	}
	result := vulkan.QueuePresent(queue, &info)
	switch result {
	case vulkan.Success:
		sc.state = SwapchainStateOk
	case vulkan.Suboptimal:
		sc.state = SwapchainStateSuboptimal
	default:
		sc.state = SwapchainStateError
	}
	return sc.state
}

// CurrentImage returns the Image for the most recently acquired index.
func (sc *Swapchain) CurrentImage() *Image { return sc.images[sc.nextImageIndex] }

// CurrentImageIndex returns the most recently acquired image index.
func (sc *Swapchain) CurrentImageIndex() uint32 { return sc.nextImageIndex }

// CurrentAcquireSemaphore returns the acquire semaphore used by the most
// recent AcquireNextImage call.
func (sc *Swapchain) CurrentAcquireSemaphore() *Semaphore {
	return sc.acquireSemaphores[sc.lastAcquireSlot]
}

// CurrentPresentSemaphore returns the present semaphore for the most
// recently acquired image index.
func (sc *Swapchain) CurrentPresentSemaphore() *Semaphore {
	return sc.presentSemaphores[sc.nextImageIndex]
}

// GetGPUFence returns the swapchain's dedicated frame-pacing timeline fence.
func (sc *Swapchain) GetGPUFence() *Fence { return sc.gpuElapsedFence }

// CPUFrameCount returns the number of frames acquired so far.
func (sc *Swapchain) CPUFrameCount() uint64 { return sc.cpuElapsed.Load() }

// GPUFrameCount returns the dedicated fence's current retired value.
func (sc *Swapchain) GPUFrameCount() uint64 {
	v, err := sc.gpuElapsedFence.Value()
	if err != nil {
		return 0
	}
	return v
}

// Info returns the swapchain's negotiated creation parameters.
func (sc *Swapchain) Info() SwapchainInfo { return sc.info }

// ColorFormat returns the format negotiated for this swapchain's images,
// needed by callers building a Pipeline's color attachment state.
func (sc *Swapchain) ColorFormat() Format { return sc.images[0].Info().Format }

// State returns the result of the most recent acquire or present call.
func (sc *Swapchain) State() SwapchainState { return sc.state }

func (sc *Swapchain) destroyNow() {
	for _, img := range sc.images {
		img.destroyNow()
	}
	for _, s := range sc.acquireSemaphores {
		s.destroyNow()
	}
	for _, s := range sc.presentSemaphores {
		s.destroyNow()
	}
	if sc.gpuElapsedFence != nil {
		sc.gpuElapsedFence.destroyNow()
	}
	if sc.handle != nil {
		vulkan.DestroySwapchain(sc.device.handle, sc.handle, nil)
		sc.handle = nil
	}
	sc.surface.destroy()
}
