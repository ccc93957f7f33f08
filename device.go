package rhi

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ashforge/rhi/internal/galloc"
	"github.com/ashforge/rhi/internal/respool"
	"github.com/ashforge/rhi/internal/vklog"
	vulkan "github.com/ashforge/rhi/internal/vk"
)

// DeviceType hints which physical device class to prefer during selection.
type DeviceType int

const (
	DeviceTypeDiscrete DeviceType = iota
	DeviceTypeIntegrated
	DeviceTypeAny
)

// DeviceConfig sizes the device's bindless descriptor cache and resource
// pools. These are compile-time maxima in the reference design; here they
// are just generous runtime defaults a caller may shrink.
type DeviceConfig struct {
	MaxFramesInFlight   uint32
	SwapchainImageCount uint32
	MaxBuffers          uint32
	MaxImages           uint32
	MaxSamplers         uint32
	PushConstantMaxSize uint32
}

// DefaultDeviceConfig returns the reference capacities from the format/enum
// constants catalog.
func DefaultDeviceConfig() DeviceConfig {
	return DeviceConfig{
		MaxFramesInFlight:   MaxFramesInFlight,
		SwapchainImageCount: MaxFramesInFlight,
		MaxBuffers:          MaxBuffers,
		MaxImages:           MaxImages,
		MaxSamplers:         MaxSamplers,
		PushConstantMaxSize: 128,
	}
}

// DeviceInitInfo configures Device.from.
type DeviceInitInfo struct {
	AppName        string
	AppVersion     uint32
	EngineName     string
	EngineVersion  uint32
	PreferredType  DeviceType
	EnableValidation bool
	DebugCallback  func(severity, message string)
	Config         DeviceConfig
	// InstanceExtensions are additional instance extensions required by the
	// windowing layer (e.g. VK_KHR_surface plus the platform-specific
	// surface extension); the runtime always requests these in addition to
	// its own required set.
	InstanceExtensions []string
}

// DeviceInfo reports static facts about the selected physical device.
type DeviceInfo struct {
	Name             string
	DriverVersion    uint32
	ApiVersion       uint32
	Type             DeviceType
	MaxPushConstants uint32
}

type deviceQueues struct {
	main           vulkan.Queue
	mainFamily     uint32
	transfer       vulkan.Queue
	transferFamily uint32
	compute        vulkan.Queue
	computeFamily  uint32
}

// Device owns the API instance, the selected physical/logical device, the
// memory allocator, the three device queues, the bindless descriptor cache,
// and every per-kind resource pool. It is the sole authority over the CPU
// and GPU timelines and the zombie queue that bridges them.
type Device struct {
	instance       vulkan.Instance
	physicalDevice vulkan.PhysicalDevice
	handle         vulkan.Device
	queues         deviceQueues

	allocator   *galloc.GpuAllocator
	descriptors *descriptorCache

	info   DeviceInfo
	config DeviceConfig

	cpuTimeline atomic.Uint64
	gpuFence    *Fence

	zombies zombieQueue

	buffers        *respool.BufferPool[*Buffer]
	images         *respool.ImagePool[*Image]
	samplers       *respool.SamplerPool[*Sampler]
	shaders        *respool.ShaderPool[*Shader]
	pipelines      *respool.PipelinePool[*Pipeline]
	semaphores     *respool.SemaphorePool[*Semaphore]
	fences         *respool.FencePool[*Fence]
	swapchains     *respool.SwapchainPool[*Swapchain]
	commandPools   *respool.CommandPoolPool[*CommandPool]
	commandBuffers *respool.CommandBufferPool[*CommandBuffer]

	samplerCache sync.Map // packed sampler info (uint64) -> SamplerID

	closeOnce sync.Once
}

// requiredDeviceExtensions are the extensions every selected physical device
// must support: swapchain presentation, dynamic rendering, synchronization-2
// and buffer device address (the latter two ship as core promotions in
// Vulkan 1.3/1.2 but some loaders still require the extension name).
var requiredDeviceExtensions = []string{
	"VK_KHR_swapchain",
	"VK_KHR_dynamic_rendering",
	"VK_KHR_synchronization2",
	"VK_KHR_buffer_device_address",
	"VK_EXT_descriptor_indexing",
}

// DeviceFrom initializes a Vulkan instance, selects a physical device
// supporting every capability this runtime requires (timeline semaphores,
// dynamic rendering, synchronization-2, buffer device address, descriptor
// indexing with runtime-descriptor-array and partially-bound), creates the
// logical device and its queues, the memory allocator, and the bindless
// descriptor cache.
func DeviceFrom(info DeviceInitInfo) (*Device, error) {
	if info.Config == (DeviceConfig{}) {
		info.Config = DefaultDeviceConfig()
	}

	instance, err := createInstance(info)
	if err != nil {
		return nil, newError(Unsupported, "Device.from", err)
	}

	phys, families, err := selectPhysicalDevice(instance, info.PreferredType)
	if err != nil {
		vulkan.DestroyInstance(instance, nil)
		return nil, newError(Unsupported, "Device.from", err)
	}

	handle, queues, err := createLogicalDevice(phys, families)
	if err != nil {
		vulkan.DestroyInstance(instance, nil)
		return nil, newError(Unsupported, "Device.from", err)
	}

	var memProps vulkan.PhysicalDeviceMemoryProperties
	vulkan.GetPhysicalDeviceMemoryProperties(phys, &memProps)
	memProps.Deref()

	allocator, err := galloc.NewGpuAllocator(handle, convertMemoryProperties(memProps), galloc.DefaultConfig())
	if err != nil {
		vulkan.DestroyDevice(handle, nil)
		vulkan.DestroyInstance(instance, nil)
		return nil, newError(OutOfMemory, "Device.from", err)
	}

	var props vulkan.PhysicalDeviceProperties
	vulkan.GetPhysicalDeviceProperties(phys, &props)
	props.Deref()
	props.Limits.Deref()

	d := &Device{
		instance:       instance,
		physicalDevice: phys,
		handle:         handle,
		queues:         queues,
		allocator:      allocator,
		config:         info.Config,
		info: DeviceInfo{
			Name:             vulkanString(props.DeviceName),
			DriverVersion:    props.DriverVersion,
			ApiVersion:       props.ApiVersion,
			Type:             info.PreferredType,
			MaxPushConstants: min32(info.Config.PushConstantMaxSize, props.Limits.MaxPushConstantsSize),
		},
		buffers:        respool.NewBufferPool[*Buffer](),
		images:         respool.NewImagePool[*Image](),
		samplers:       respool.NewSamplerPool[*Sampler](),
		shaders:        respool.NewShaderPool[*Shader](),
		pipelines:      respool.NewPipelinePool[*Pipeline](),
		semaphores:     respool.NewSemaphorePool[*Semaphore](),
		fences:         respool.NewFencePool[*Fence](),
		swapchains:     respool.NewSwapchainPool[*Swapchain](),
		commandPools:   respool.NewCommandPoolPool[*CommandPool](),
		commandBuffers: respool.NewCommandBufferPool[*CommandBuffer](),
	}

	gpuFence, err := newFence(d, "device.gpuTimeline", 0)
	if err != nil {
		d.destroyCore()
		return nil, newError(Unsupported, "Device.from", err)
	}
	d.gpuFence = gpuFence

	descriptors, err := newDescriptorCache(d, info.Config)
	if err != nil {
		d.destroyCore()
		return nil, newError(Unsupported, "Device.from", err)
	}
	d.descriptors = descriptors

	vklog.Logger().Info("device initialized", "name", d.info.Name, "apiVersion", d.info.ApiVersion)
	return d, nil
}

func (d *Device) Info() DeviceInfo     { return d.info }
func (d *Device) Config() DeviceConfig { return d.config }

// Instance returns the underlying Vulkan instance, needed by windowing
// layers to create a platform surface (e.g. glfw.CreateWindowSurface)
// before calling NewSurface.
func (d *Device) Instance() vulkan.Instance { return d.instance }

// CPUTimeline returns the device's current CPU timeline value.
func (d *Device) CPUTimeline() uint64 { return d.cpuTimeline.Load() }

// GPUTimeline returns the value of the device's owned timeline fence, i.e.
// how far the GPU has actually progressed.
func (d *Device) GPUTimeline() uint64 {
	v, err := d.gpuFence.Value()
	if err != nil {
		return 0
	}
	return v
}

// advanceCPUTimeline is called once per CommandBuffer.begin(); it is the
// only writer of the CPU timeline.
func (d *Device) advanceCPUTimeline() uint64 {
	return d.cpuTimeline.Add(1)
}

// scheduleZombie is called by Resource[T].Release when the last handle to a
// resource is dropped. The resource's actual API destruction is deferred
// until ClearGarbage observes the GPU timeline has caught up.
func (d *Device) scheduleZombie(obj zombiable) {
	d.zombies.push(d.cpuTimeline.Load(), obj)
}

// ClearGarbage drains the zombie queue, destroying every resource whose
// cpuTimelineAtDrop has been retired by the GPU and returning its pool slot.
// Intended to be called once per frame by the host frame driver.
func (d *Device) ClearGarbage() {
	for _, rec := range d.zombies.drain(d.GPUTimeline()) {
		rec.obj.destroyNow()
	}
}

// WaitIdle blocks until all GPU work submitted to every device queue has
// completed.
func (d *Device) WaitIdle() error {
	if result := vulkan.DeviceWaitIdle(d.handle); result != vulkan.Success {
		return newError(Fatal, "Device.WaitIdle", fmt.Errorf("vkDeviceWaitIdle: %d", result))
	}
	return nil
}

// SubmitInfo describes one Device.Submit call.
type SubmitInfo struct {
	Queue             DeviceQueue
	CommandBuffers    []*CommandBuffer
	WaitSemaphores    []*Semaphore
	WaitStageMasks    []PipelineStage
	SignalSemaphores  []*Semaphore
	WaitFences        []FenceWait
	SignalFences      []FenceWait
}

// FenceWait pairs a timeline fence with the value to wait on or signal.
type FenceWait struct {
	Fence *Fence
	Value uint64
}

// Submit validates that every command buffer is in the executable state,
// then issues a single vkQueueSubmit2 on the target queue with the given
// wait/signal binary semaphores and timeline (fence, value) pairs.
func (d *Device) Submit(info SubmitInfo) bool {
	queue, ok := d.queueHandle(info.Queue)
	if !ok {
		return false
	}
	for _, cb := range info.CommandBuffers {
		if cb == nil || !cb.isExecutable() {
			debugAssert(false, "Device.Submit: command buffer not in executable state")
			return false
		}
	}

	cbInfos := make([]vulkan.CommandBufferSubmitInfo, len(info.CommandBuffers))
	for i, cb := range info.CommandBuffers {
		cbInfos[i] = vulkan.CommandBufferSubmitInfo{
			SType:         vulkan.StructureTypeCommandBufferSubmitInfo,
			CommandBuffer: cb.handle,
		}
	}

	waitInfos := make([]vulkan.SemaphoreSubmitInfo, len(info.WaitSemaphores))
	for i, s := range info.WaitSemaphores {
		stage := PipelineStageAllCommands
		if i < len(info.WaitStageMasks) {
			stage = info.WaitStageMasks[i]
		}
		waitInfos[i] = vulkan.SemaphoreSubmitInfo{
			SType:     vulkan.StructureTypeSemaphoreSubmitInfo,
			Semaphore: s.handle,
			Value:     1,
			StageMask: vulkan.PipelineStageFlags2(vkPipelineStage2(stage)),
		}
	}
	for _, fw := range info.WaitFences {
		waitInfos = append(waitInfos, vulkan.SemaphoreSubmitInfo{
			SType:     vulkan.StructureTypeSemaphoreSubmitInfo,
			Semaphore: fw.Fence.handle,
			Value:     fw.Value,
			StageMask: vulkan.PipelineStageFlags2(vulkan.PipelineStageAllCommandsBit),
		})
	}

	signalInfos := make([]vulkan.SemaphoreSubmitInfo, len(info.SignalSemaphores))
	for i, s := range info.SignalSemaphores {
		signalInfos[i] = vulkan.SemaphoreSubmitInfo{
			SType:     vulkan.StructureTypeSemaphoreSubmitInfo,
			Semaphore: s.handle,
			Value:     1,
			StageMask: vulkan.PipelineStageFlags2(vulkan.PipelineStageAllCommandsBit),
		}
	}
	for _, fw := range info.SignalFences {
		signalInfos = append(signalInfos, vulkan.SemaphoreSubmitInfo{
			SType:     vulkan.StructureTypeSemaphoreSubmitInfo,
			Semaphore: fw.Fence.handle,
			Value:     fw.Value,
			StageMask: vulkan.PipelineStageFlags2(vulkan.PipelineStageAllCommandsBit),
		})
	}

	submit := vulkan.SubmitInfo2{
		SType:                    vulkan.StructureTypeSubmitInfo2,
		CommandBufferInfoCount:   uint32(len(cbInfos)),
		WaitSemaphoreInfoCount:   uint32(len(waitInfos)),
		SignalSemaphoreInfoCount: uint32(len(signalInfos)),
	}
	if len(cbInfos) > 0 {
		submit.PCommandBufferInfos = &cbInfos[0]
	}
	if len(waitInfos) > 0 {
		submit.PWaitSemaphoreInfos = &waitInfos[0]
	}
	if len(signalInfos) > 0 {
		submit.PSignalSemaphoreInfos = &signalInfos[0]
	}

	result := vulkan.QueueSubmit2(queue, 1, []vulkan.SubmitInfo2{submit}, vulkan.NullFence)
	return result == vulkan.Success
}

// PresentInfo describes one Device.Present call.
type PresentInfo struct {
	Swapchains []*Swapchain
}

// Present presents every swapchain in info.Swapchains using its current
// image index and present semaphore. Returns false if any swapchain's state
// becomes Suboptimal or Error.
func (d *Device) Present(info PresentInfo) bool {
	ok := true
	for _, sc := range info.Swapchains {
		state := sc.present(d.queues.main)
		if state == SwapchainStateSuboptimal || state == SwapchainStateError {
			ok = false
		}
	}
	return ok
}

func (d *Device) queueHandle(q DeviceQueue) (vulkan.Queue, bool) {
	switch q {
	case DeviceQueueMain:
		return d.queues.main, true
	case DeviceQueueTransfer:
		return d.queues.transfer, true
	case DeviceQueueCompute:
		return d.queues.compute, true
	default:
		return nil, false
	}
}

// Release waits for the device to go idle, clears every remaining zombie,
// then destroys the descriptor cache, allocator, logical device, and
// instance. Safe to call more than once.
func (d *Device) Release() {
	d.closeOnce.Do(func() {
		_ = d.WaitIdle()
		d.ClearGarbage()
		if d.descriptors != nil {
			d.descriptors.destroy()
		}
		d.destroyCore()
	})
}

func (d *Device) destroyCore() {
	if d.allocator != nil {
		d.allocator.Destroy()
	}
	if d.handle != nil {
		vulkan.DestroyDevice(d.handle, nil)
	}
	if d.instance != nil {
		vulkan.DestroyInstance(d.instance, nil)
	}
}

func createInstance(info DeviceInitInfo) (vulkan.Instance, error) {
	if err := vulkan.Init(); err != nil {
		return nil, fmt.Errorf("vulkan.Init: %w", err)
	}

	appInfo := vulkan.ApplicationInfo{
		SType:              vulkan.StructureTypeApplicationInfo,
		PApplicationName:   info.AppName + "\x00",
		ApplicationVersion: info.AppVersion,
		PEngineName:        info.EngineName + "\x00",
		EngineVersion:      info.EngineVersion,
		ApiVersion:         vulkan.ApiVersion13,
	}

	extensions := append([]string{"VK_KHR_surface"}, info.InstanceExtensions...)
	cExtensions := make([]string, len(extensions))
	copy(cExtensions, extensions)

	var layers []string
	if info.EnableValidation {
		layers = append(layers, "VK_LAYER_KHRONOS_validation")
	}

	createInfo := vulkan.InstanceCreateInfo{
		SType:                   vulkan.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   uint32(len(cExtensions)),
		PpEnabledExtensionNames: cExtensions,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     layers,
	}

	var instance vulkan.Instance
	if result := vulkan.CreateInstance(&createInfo, nil, &instance); result != vulkan.Success {
		return nil, fmt.Errorf("vkCreateInstance: %d", result)
	}
	vulkan.InitInstance(instance)
	return instance, nil
}

// selectPhysicalDevice picks the first physical device exposing every
// extension and feature this runtime requires, preferring the requested
// device type, and returns the queue family indices chosen for main,
// transfer, and compute.
func selectPhysicalDevice(instance vulkan.Instance, preferred DeviceType) (vulkan.PhysicalDevice, deviceQueues, error) {
	var count uint32
	vulkan.EnumeratePhysicalDevices(instance, &count, nil)
	if count == 0 {
		return nil, deviceQueues{}, fmt.Errorf("no Vulkan physical devices found")
	}
	devices := make([]vulkan.PhysicalDevice, count)
	vulkan.EnumeratePhysicalDevices(instance, &count, devices)

	var best vulkan.PhysicalDevice
	var bestQueues deviceQueues
	bestScore := -1

	for _, pd := range devices {
		var props vulkan.PhysicalDeviceProperties
		vulkan.GetPhysicalDeviceProperties(pd, &props)
		props.Deref()

		if !deviceSupportsExtensions(pd, requiredDeviceExtensions) {
			continue
		}

		families, ok := findQueueFamilies(pd)
		if !ok {
			continue
		}

		score := 0
		switch {
		case preferred == DeviceTypeDiscrete && props.DeviceType == vulkan.PhysicalDeviceTypeDiscreteGpu:
			score = 2
		case preferred == DeviceTypeIntegrated && props.DeviceType == vulkan.PhysicalDeviceTypeIntegratedGpu:
			score = 2
		case props.DeviceType == vulkan.PhysicalDeviceTypeDiscreteGpu:
			score = 1
		}

		if score > bestScore {
			bestScore = score
			best = pd
			bestQueues = families
		}
	}

	if best == nil {
		return nil, deviceQueues{}, fmt.Errorf("%w: no physical device supports required extensions/features", ErrUnsupported)
	}
	return best, bestQueues, nil
}

func deviceSupportsExtensions(pd vulkan.PhysicalDevice, required []string) bool {
	var count uint32
	vulkan.EnumerateDeviceExtensionProperties(pd, "", &count, nil)
	props := make([]vulkan.ExtensionProperties, count)
	vulkan.EnumerateDeviceExtensionProperties(pd, "", &count, props)

	available := make(map[string]bool, len(props))
	for i := range props {
		props[i].Deref()
		available[vulkanString(props[i].ExtensionName)] = true
	}
	for _, ext := range required {
		if !available[ext] {
			return false
		}
	}
	return true
}

// findQueueFamilies searches for distinct main/transfer/compute queue
// families, falling back to sharing the graphics family when the device
// exposes no dedicated transfer or compute family.
func findQueueFamilies(pd vulkan.PhysicalDevice) (deviceQueues, bool) {
	var count uint32
	vulkan.GetPhysicalDeviceQueueFamilyProperties(pd, &count, nil)
	families := make([]vulkan.QueueFamilyProperties, count)
	vulkan.GetPhysicalDeviceQueueFamilyProperties(pd, &count, families)

	var q deviceQueues
	mainFound, transferFound, computeFound := false, false, false

	for i := range families {
		families[i].Deref()
		flags := families[i].QueueFlags

		if !mainFound && flags&vulkan.QueueFlags(vulkan.QueueGraphicsBit) != 0 {
			q.mainFamily = uint32(i)
			mainFound = true
		}
		if flags&vulkan.QueueFlags(vulkan.QueueTransferBit) != 0 &&
			flags&vulkan.QueueFlags(vulkan.QueueGraphicsBit) == 0 {
			q.transferFamily = uint32(i)
			transferFound = true
		}
		if flags&vulkan.QueueFlags(vulkan.QueueComputeBit) != 0 &&
			flags&vulkan.QueueFlags(vulkan.QueueGraphicsBit) == 0 {
			q.computeFamily = uint32(i)
			computeFound = true
		}
	}
	if !mainFound {
		return deviceQueues{}, false
	}
	if !transferFound {
		q.transferFamily = q.mainFamily
	}
	if !computeFound {
		q.computeFamily = q.mainFamily
	}
	return q, true
}

func createLogicalDevice(pd vulkan.PhysicalDevice, families deviceQueues) (vulkan.Device, deviceQueues, error) {
	uniqueFamilies := map[uint32]bool{
		families.mainFamily:     true,
		families.transferFamily: true,
		families.computeFamily:  true,
	}

	priority := []float32{1.0}
	var queueInfos []vulkan.DeviceQueueCreateInfo
	for family := range uniqueFamilies {
		queueInfos = append(queueInfos, vulkan.DeviceQueueCreateInfo{
			SType:            vulkan.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: family,
			QueueCount:       1,
			PQueuePriorities: priority,
		})
	}

	vulkan12Features := vulkan.PhysicalDeviceVulkan12Features{
		SType:               vulkan.StructureTypePhysicalDeviceVulkan12Features,
		BufferDeviceAddress: vulkan.True,
		DescriptorIndexing:  vulkan.True,
		RuntimeDescriptorArray:                   vulkan.True,
		DescriptorBindingPartiallyBound:           vulkan.True,
		DescriptorBindingUpdateUnusedWhilePending: vulkan.True,
		ShaderSampledImageArrayNonUniformIndexing: vulkan.True,
		TimelineSemaphore:                         vulkan.True,
	}
	vulkan13Features := vulkan.PhysicalDeviceVulkan13Features{
		SType:             vulkan.StructureTypePhysicalDeviceVulkan13Features,
		DynamicRendering:  vulkan.True,
		Synchronization2:  vulkan.True,
		PNext:             unsafe.Pointer(&vulkan12Features),
	}
	features2 := vulkan.PhysicalDeviceFeatures2{
		SType: vulkan.StructureTypePhysicalDeviceFeatures2,
		PNext: unsafe.Pointer(&vulkan13Features),
	}
	features2.Features.SamplerAnisotropy = vulkan.True

	createInfo := vulkan.DeviceCreateInfo{
		SType:                   vulkan.StructureTypeDeviceCreateInfo,
		PNext:                   unsafe.Pointer(&features2),
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(requiredDeviceExtensions)),
		PpEnabledExtensionNames: requiredDeviceExtensions,
	}

	var handle vulkan.Device
	if result := vulkan.CreateDevice(pd, &createInfo, nil, &handle); result != vulkan.Success {
		return nil, deviceQueues{}, fmt.Errorf("vkCreateDevice: %d", result)
	}

	queues := families
	vulkan.GetDeviceQueue(handle, families.mainFamily, 0, &queues.main)
	vulkan.GetDeviceQueue(handle, families.transferFamily, 0, &queues.transfer)
	vulkan.GetDeviceQueue(handle, families.computeFamily, 0, &queues.compute)
	return handle, queues, nil
}

func convertMemoryProperties(props vulkan.PhysicalDeviceMemoryProperties) galloc.DeviceMemoryProperties {
	out := galloc.DeviceMemoryProperties{
		MemoryTypes: make([]galloc.MemoryType, props.MemoryTypeCount),
		MemoryHeaps: make([]galloc.MemoryHeap, props.MemoryHeapCount),
	}
	for i := uint32(0); i < props.MemoryTypeCount; i++ {
		props.MemoryTypes[i].Deref()
		out.MemoryTypes[i] = galloc.MemoryType{
			PropertyFlags: props.MemoryTypes[i].PropertyFlags,
			HeapIndex:     props.MemoryTypes[i].HeapIndex,
		}
	}
	for i := uint32(0); i < props.MemoryHeapCount; i++ {
		props.MemoryHeaps[i].Deref()
		out.MemoryHeaps[i] = galloc.MemoryHeap{
			Size:  uint64(props.MemoryHeaps[i].Size),
			Flags: props.MemoryHeaps[i].Flags,
		}
	}
	return out
}

func vulkanString(raw [256]byte) string {
	n := 0
	for n < len(raw) && raw[n] != 0 {
		n++
	}
	return string(raw[:n])
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
