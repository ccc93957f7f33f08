package vk

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// Each wrapped Vulkan entry point owns one lazily-resolved function pointer,
// refreshed on first call via GetInstanceProcAddr(loadedInstance, name).
// This mirrors the teacher loader's three-stage Commands struct collapsed
// to one stage, since every call site in this module only ever calls
// vulkan.Init() followed by vulkan.InitInstance(instance) -- there is no
// separate device-proc-table load step to preserve.
type proc struct {
	name string
	ptr  unsafe.Pointer
}

func (p *proc) resolve() unsafe.Pointer {
	if p.ptr == nil {
		p.ptr = GetInstanceProcAddr(loadedInstance, p.name)
	}
	return p.ptr
}

func callVoid(p *proc, args []unsafe.Pointer, argDescs ...*types.TypeDescriptor) {
	fn := p.resolve()
	if fn == nil {
		return
	}
	_ = ffi.CallFunction(sig(tVoid, argDescs...), fn, nil, args)
}

func callResult(p *proc, args []unsafe.Pointer, argDescs ...*types.TypeDescriptor) Result {
	fn := p.resolve()
	if fn == nil {
		return ErrorInitializationFailed
	}
	var result int32
	_ = ffi.CallFunction(sig(tResult, argDescs...), fn, unsafe.Pointer(&result), args)
	return Result(result)
}

func callU64(p *proc, args []unsafe.Pointer, argDescs ...*types.TypeDescriptor) uint64 {
	fn := p.resolve()
	if fn == nil {
		return 0
	}
	var result uint64
	_ = ffi.CallFunction(sig(tU64, argDescs...), fn, unsafe.Pointer(&result), args)
	return result
}

// ErrorInitializationFailed is returned when a proc address failed to
// resolve, matching VK_ERROR_INITIALIZATION_FAILED.
const ErrorInitializationFailed Result = -3

func firstElem[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

// --- global / instance ---

var (
	procCreateInstance                           = &proc{name: "vkCreateInstance"}
	procDestroyInstance                          = &proc{name: "vkDestroyInstance"}
	procEnumeratePhysicalDevices                  = &proc{name: "vkEnumeratePhysicalDevices"}
	procGetPhysicalDeviceProperties               = &proc{name: "vkGetPhysicalDeviceProperties"}
	procGetPhysicalDeviceMemoryProperties         = &proc{name: "vkGetPhysicalDeviceMemoryProperties"}
	procGetPhysicalDeviceQueueFamilyProperties    = &proc{name: "vkGetPhysicalDeviceQueueFamilyProperties"}
	procEnumerateDeviceExtensionProperties        = &proc{name: "vkEnumerateDeviceExtensionProperties"}
	procCreateDevice                              = &proc{name: "vkCreateDevice"}
	procDestroyDevice                             = &proc{name: "vkDestroyDevice"}
	procGetDeviceQueue                            = &proc{name: "vkGetDeviceQueue"}
	procDeviceWaitIdle                            = &proc{name: "vkDeviceWaitIdle"}
)

func cStringsOf(ss []string) (unsafe.Pointer, []unsafe.Pointer, [][]byte) {
	if len(ss) == 0 {
		return nil, nil, nil
	}
	bufs := make([][]byte, len(ss))
	ptrs := make([]unsafe.Pointer, len(ss))
	for i, s := range ss {
		bufs[i] = cString(s)
		ptrs[i] = unsafe.Pointer(&bufs[i][0])
	}
	return unsafe.Pointer(&ptrs[0]), ptrs, bufs
}

func CreateInstance(info *InstanceCreateInfo, allocator *AllocationCallbacks, instance *Instance) Result {
	var appInfo *cApplicationInfo
	var appBufs [2][]byte
	if info.PApplicationInfo != nil {
		appInfo = &cApplicationInfo{
			SType:              info.PApplicationInfo.SType,
			PNext:              info.PApplicationInfo.PNext,
			ApplicationVersion: info.PApplicationInfo.ApplicationVersion,
			EngineVersion:      info.PApplicationInfo.EngineVersion,
			ApiVersion:         info.PApplicationInfo.ApiVersion,
		}
		appBufs[0] = cString(info.PApplicationInfo.PApplicationName)
		appBufs[1] = cString(info.PApplicationInfo.PEngineName)
		appInfo.PApplicationName = unsafe.Pointer(&appBufs[0][0])
		appInfo.PEngineName = unsafe.Pointer(&appBufs[1][0])
	}

	layersPtr, _, _ := cStringsOf(info.PpEnabledLayerNames)
	extsPtr, _, _ := cStringsOf(info.PpEnabledExtensionNames)

	cInfo := cInstanceCreateInfo{
		SType:                   info.SType,
		PNext:                   info.PNext,
		PApplicationInfo:        unsafe.Pointer(appInfo),
		EnabledLayerCount:       info.EnabledLayerCount,
		PpEnabledLayerNames:     layersPtr,
		EnabledExtensionCount:   info.EnabledExtensionCount,
		PpEnabledExtensionNames: extsPtr,
	}
	cInfoPtr := &cInfo

	args := [3]unsafe.Pointer{
		unsafe.Pointer(&cInfoPtr),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&instance),
	}
	return callResult(procCreateInstance, args[:], tPtr, tPtr, tPtr)
}

// cApplicationInfo and cInstanceCreateInfo are C-layout shadows of the
// public structs: pointer/string fields are resolved to raw unsafe.Pointer
// values before crossing the FFI boundary.
type cApplicationInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	PApplicationName   unsafe.Pointer
	ApplicationVersion uint32
	PEngineName        unsafe.Pointer
	EngineVersion      uint32
	ApiVersion         uint32
}

type cInstanceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   Flags
	PApplicationInfo        unsafe.Pointer
	EnabledLayerCount       uint32
	PpEnabledLayerNames     unsafe.Pointer
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames unsafe.Pointer
}

func DestroyInstance(instance Instance, allocator *AllocationCallbacks) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&allocator)}
	callVoid(procDestroyInstance, args[:], tU64, tPtr)
}

func EnumeratePhysicalDevices(instance Instance, count *uint32, devices []PhysicalDevice) Result {
	devPtr := firstElem(devices)
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&count),
		unsafe.Pointer(&devPtr),
	}
	return callResult(procEnumeratePhysicalDevices, args[:], tU64, tPtr, tPtr)
}

func GetPhysicalDeviceProperties(pd PhysicalDevice, props *PhysicalDeviceProperties) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&props)}
	callVoid(procGetPhysicalDeviceProperties, args[:], tU64, tPtr)
}

func GetPhysicalDeviceMemoryProperties(pd PhysicalDevice, props *PhysicalDeviceMemoryProperties) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&props)}
	callVoid(procGetPhysicalDeviceMemoryProperties, args[:], tU64, tPtr)
}

func GetPhysicalDeviceQueueFamilyProperties(pd PhysicalDevice, count *uint32, props []QueueFamilyProperties) {
	propsPtr := firstElem(props)
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&pd),
		unsafe.Pointer(&count),
		unsafe.Pointer(&propsPtr),
	}
	callVoid(procGetPhysicalDeviceQueueFamilyProperties, args[:], tU64, tPtr, tPtr)
}

func EnumerateDeviceExtensionProperties(pd PhysicalDevice, layerName string, count *uint32, props []ExtensionProperties) Result {
	var layerPtr unsafe.Pointer
	if layerName != "" {
		buf := cString(layerName)
		layerPtr = unsafe.Pointer(&buf[0])
	}
	propsPtr := firstElem(props)
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&pd),
		unsafe.Pointer(&layerPtr),
		unsafe.Pointer(&count),
		unsafe.Pointer(&propsPtr),
	}
	return callResult(procEnumerateDeviceExtensionProperties, args[:], tU64, tPtr, tPtr, tPtr)
}

func CreateDevice(pd PhysicalDevice, info *DeviceCreateInfo, allocator *AllocationCallbacks, device *Device) Result {
	queueInfos := make([]cDeviceQueueCreateInfo, len(info.PQueueCreateInfos))
	for i, qi := range info.PQueueCreateInfos {
		queueInfos[i] = cDeviceQueueCreateInfo{
			SType:            qi.SType,
			PNext:            qi.PNext,
			QueueFamilyIndex: qi.QueueFamilyIndex,
			QueueCount:       qi.QueueCount,
			PQueuePriorities: firstElem(qi.PQueuePriorities),
		}
	}
	layersPtr, _, _ := cStringsOf(info.PpEnabledLayerNames)
	extsPtr, _, _ := cStringsOf(info.PpEnabledExtensionNames)

	cInfo := cDeviceCreateInfo{
		SType:                   info.SType,
		PNext:                   info.PNext,
		QueueCreateInfoCount:    info.QueueCreateInfoCount,
		PQueueCreateInfos:       firstElem(queueInfos),
		EnabledLayerCount:       info.EnabledLayerCount,
		PpEnabledLayerNames:     layersPtr,
		EnabledExtensionCount:   info.EnabledExtensionCount,
		PpEnabledExtensionNames: extsPtr,
		PEnabledFeatures:        unsafe.Pointer(info.PEnabledFeatures),
	}
	cInfoPtr := &cInfo

	args := [4]unsafe.Pointer{
		unsafe.Pointer(&pd),
		unsafe.Pointer(&cInfoPtr),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&device),
	}
	return callResult(procCreateDevice, args[:], tU64, tPtr, tPtr, tPtr)
}

type cDeviceQueueCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            Flags
	QueueFamilyIndex uint32
	QueueCount       uint32
	PQueuePriorities unsafe.Pointer
}

type cDeviceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   Flags
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       unsafe.Pointer
	EnabledLayerCount       uint32
	PpEnabledLayerNames     unsafe.Pointer
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames unsafe.Pointer
	PEnabledFeatures        unsafe.Pointer
}

func DestroyDevice(device Device, allocator *AllocationCallbacks) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&allocator)}
	callVoid(procDestroyDevice, args[:], tU64, tPtr)
}

func GetDeviceQueue(device Device, familyIndex, queueIndex uint32, queue *Queue) {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&familyIndex),
		unsafe.Pointer(&queueIndex),
		unsafe.Pointer(&queue),
	}
	callVoid(procGetDeviceQueue, args[:], tU64, tU32, tU32, tPtr)
}

func DeviceWaitIdle(device Device) Result {
	args := [1]unsafe.Pointer{unsafe.Pointer(&device)}
	return callResult(procDeviceWaitIdle, args[:], tU64)
}

// --- surface / swapchain ---

var (
	procGetPhysicalDeviceSurfaceSupport       = &proc{name: "vkGetPhysicalDeviceSurfaceSupportKHR"}
	procGetPhysicalDeviceSurfaceCapabilities  = &proc{name: "vkGetPhysicalDeviceSurfaceCapabilitiesKHR"}
	procGetPhysicalDeviceSurfaceFormats       = &proc{name: "vkGetPhysicalDeviceSurfaceFormatsKHR"}
	procGetPhysicalDeviceSurfacePresentModes  = &proc{name: "vkGetPhysicalDeviceSurfacePresentModesKHR"}
	procDestroySurface                        = &proc{name: "vkDestroySurfaceKHR"}
	procCreateSwapchain                       = &proc{name: "vkCreateSwapchainKHR"}
	procDestroySwapchain                      = &proc{name: "vkDestroySwapchainKHR"}
	procGetSwapchainImages                    = &proc{name: "vkGetSwapchainImagesKHR"}
	procAcquireNextImage                      = &proc{name: "vkAcquireNextImageKHR"}
	procQueuePresent                          = &proc{name: "vkQueuePresentKHR"}
)

// SurfaceFromPointer adapts a platform-created VkSurfaceKHR (e.g. from
// glfw.CreateWindowSurface, which already hands back the driver's raw
// surface handle) into this package's Surface type without an extra
// Vulkan call.
func SurfaceFromPointer(ptr uintptr) Surface {
	return Surface(unsafe.Pointer(ptr))
}

func GetPhysicalDeviceSurfaceSupport(pd PhysicalDevice, queueFamilyIndex uint32, surface Surface, supported *Bool32) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&pd),
		unsafe.Pointer(&queueFamilyIndex),
		unsafe.Pointer(&surface),
		unsafe.Pointer(&supported),
	}
	return callResult(procGetPhysicalDeviceSurfaceSupport, args[:], tU64, tU32, tU64, tPtr)
}

func GetPhysicalDeviceSurfaceCapabilities(pd PhysicalDevice, surface Surface, caps *SurfaceCapabilities) Result {
	args := [3]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&surface), unsafe.Pointer(&caps)}
	return callResult(procGetPhysicalDeviceSurfaceCapabilities, args[:], tU64, tU64, tPtr)
}

func GetPhysicalDeviceSurfaceFormats(pd PhysicalDevice, surface Surface, count *uint32, formats []SurfaceFormat) Result {
	fPtr := firstElem(formats)
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&pd),
		unsafe.Pointer(&surface),
		unsafe.Pointer(&count),
		unsafe.Pointer(&fPtr),
	}
	return callResult(procGetPhysicalDeviceSurfaceFormats, args[:], tU64, tU64, tPtr, tPtr)
}

func GetPhysicalDeviceSurfacePresentModes(pd PhysicalDevice, surface Surface, count *uint32, modes []PresentMode) Result {
	mPtr := firstElem(modes)
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&pd),
		unsafe.Pointer(&surface),
		unsafe.Pointer(&count),
		unsafe.Pointer(&mPtr),
	}
	return callResult(procGetPhysicalDeviceSurfacePresentModes, args[:], tU64, tU64, tPtr, tPtr)
}

func DestroySurface(instance Instance, surface Surface, allocator *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&surface), unsafe.Pointer(&allocator)}
	callVoid(procDestroySurface, args[:], tU64, tU64, tPtr)
}

func CreateSwapchain(device Device, info *SwapchainCreateInfo, allocator *AllocationCallbacks, swapchain *Swapchain) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&info),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&swapchain),
	}
	return callResult(procCreateSwapchain, args[:], tU64, tPtr, tPtr, tPtr)
}

func DestroySwapchain(device Device, swapchain Swapchain, allocator *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&allocator)}
	callVoid(procDestroySwapchain, args[:], tU64, tU64, tPtr)
}

func GetSwapchainImages(device Device, swapchain Swapchain, count *uint32, images []Image) Result {
	imgPtr := firstElem(images)
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&swapchain),
		unsafe.Pointer(&count),
		unsafe.Pointer(&imgPtr),
	}
	return callResult(procGetSwapchainImages, args[:], tU64, tU64, tPtr, tPtr)
}

func AcquireNextImage(device Device, swapchain Swapchain, timeout uint64, semaphore Semaphore, fence Fence, imageIndex *uint32) Result {
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&swapchain),
		unsafe.Pointer(&timeout),
		unsafe.Pointer(&semaphore),
		unsafe.Pointer(&fence),
		unsafe.Pointer(&imageIndex),
	}
	return callResult(procAcquireNextImage, args[:], tU64, tU64, tU64, tU64, tU64, tPtr)
}

func QueuePresent(queue Queue, info *PresentInfo) Result {
	cInfo := cPresentInfo{
		SType:              info.SType,
		PNext:              info.PNext,
		WaitSemaphoreCount: info.WaitSemaphoreCount,
		PWaitSemaphores:    firstElem(info.PWaitSemaphores),
		SwapchainCount:     info.SwapchainCount,
		PSwapchains:        firstElem(info.PSwapchains),
		PImageIndices:      firstElem(info.PImageIndices),
		PResults:           firstElem(info.PResults),
	}
	cInfoPtr := &cInfo
	args := [2]unsafe.Pointer{unsafe.Pointer(&queue), unsafe.Pointer(&cInfoPtr)}
	return callResult(procQueuePresent, args[:], tU64, tPtr)
}

type cPresentInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	WaitSemaphoreCount uint32
	PWaitSemaphores    unsafe.Pointer
	SwapchainCount     uint32
	PSwapchains        unsafe.Pointer
	PImageIndices      unsafe.Pointer
	PResults           unsafe.Pointer
}

// --- memory ---

var (
	procAllocateMemory = &proc{name: "vkAllocateMemory"}
	procFreeMemory     = &proc{name: "vkFreeMemory"}
	procMapMemory      = &proc{name: "vkMapMemory"}
	procUnmapMemory    = &proc{name: "vkUnmapMemory"}
)

func AllocateMemory(device Device, info *MemoryAllocateInfo, allocator *AllocationCallbacks, memory *DeviceMemory) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&info),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&memory),
	}
	return callResult(procAllocateMemory, args[:], tU64, tPtr, tPtr, tPtr)
}

func FreeMemory(device Device, memory DeviceMemory, allocator *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&memory), unsafe.Pointer(&allocator)}
	callVoid(procFreeMemory, args[:], tU64, tU64, tPtr)
}

func MapMemory(device Device, memory DeviceMemory, offset, size DeviceSize, flags Flags, data *unsafe.Pointer) Result {
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&memory),
		unsafe.Pointer(&offset),
		unsafe.Pointer(&size),
		unsafe.Pointer(&flags),
		unsafe.Pointer(&data),
	}
	return callResult(procMapMemory, args[:], tU64, tU64, tU64, tU64, tU32, tPtr)
}

func UnmapMemory(device Device, memory DeviceMemory) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&memory)}
	callVoid(procUnmapMemory, args[:], tU64, tU64)
}

// --- buffer ---

var (
	procCreateBuffer                = &proc{name: "vkCreateBuffer"}
	procDestroyBuffer                = &proc{name: "vkDestroyBuffer"}
	procGetBufferMemoryRequirements  = &proc{name: "vkGetBufferMemoryRequirements"}
	procBindBufferMemory             = &proc{name: "vkBindBufferMemory"}
	procGetBufferDeviceAddress       = &proc{name: "vkGetBufferDeviceAddress"}
)

func CreateBuffer(device Device, info *BufferCreateInfo, allocator *AllocationCallbacks, buffer *Buffer) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&info),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&buffer),
	}
	return callResult(procCreateBuffer, args[:], tU64, tPtr, tPtr, tPtr)
}

func DestroyBuffer(device Device, buffer Buffer, allocator *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&allocator)}
	callVoid(procDestroyBuffer, args[:], tU64, tU64, tPtr)
}

func GetBufferMemoryRequirements(device Device, buffer Buffer, req *MemoryRequirements) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&req)}
	callVoid(procGetBufferMemoryRequirements, args[:], tU64, tU64, tPtr)
}

func BindBufferMemory(device Device, buffer Buffer, memory DeviceMemory, offset DeviceSize) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&memory),
		unsafe.Pointer(&offset),
	}
	return callResult(procBindBufferMemory, args[:], tU64, tU64, tU64, tU64)
}

func GetBufferDeviceAddress(device Device, info *BufferDeviceAddressInfo) DeviceAddress {
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info)}
	return DeviceAddress(callU64(procGetBufferDeviceAddress, args[:], tU64, tPtr))
}

// --- image ---

var (
	procCreateImage               = &proc{name: "vkCreateImage"}
	procDestroyImage              = &proc{name: "vkDestroyImage"}
	procGetImageMemoryRequirements = &proc{name: "vkGetImageMemoryRequirements"}
	procBindImageMemory           = &proc{name: "vkBindImageMemory"}
	procCreateImageView           = &proc{name: "vkCreateImageView"}
	procDestroyImageView          = &proc{name: "vkDestroyImageView"}
)

func CreateImage(device Device, info *ImageCreateInfo, allocator *AllocationCallbacks, image *Image) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&info),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&image),
	}
	return callResult(procCreateImage, args[:], tU64, tPtr, tPtr, tPtr)
}

func DestroyImage(device Device, image Image, allocator *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&allocator)}
	callVoid(procDestroyImage, args[:], tU64, tU64, tPtr)
}

func GetImageMemoryRequirements(device Device, image Image, req *MemoryRequirements) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&req)}
	callVoid(procGetImageMemoryRequirements, args[:], tU64, tU64, tPtr)
}

func BindImageMemory(device Device, image Image, memory DeviceMemory, offset DeviceSize) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&image),
		unsafe.Pointer(&memory),
		unsafe.Pointer(&offset),
	}
	return callResult(procBindImageMemory, args[:], tU64, tU64, tU64, tU64)
}

func CreateImageView(device Device, info *ImageViewCreateInfo, allocator *AllocationCallbacks, view *ImageView) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&info),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&view),
	}
	return callResult(procCreateImageView, args[:], tU64, tPtr, tPtr, tPtr)
}

func DestroyImageView(device Device, view ImageView, allocator *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&view), unsafe.Pointer(&allocator)}
	callVoid(procDestroyImageView, args[:], tU64, tU64, tPtr)
}

// --- sampler / shader / pipeline ---

var (
	procCreateSampler            = &proc{name: "vkCreateSampler"}
	procDestroySampler           = &proc{name: "vkDestroySampler"}
	procCreateShaderModule       = &proc{name: "vkCreateShaderModule"}
	procDestroyShaderModule      = &proc{name: "vkDestroyShaderModule"}
	procCreateGraphicsPipelines  = &proc{name: "vkCreateGraphicsPipelines"}
	procDestroyPipeline          = &proc{name: "vkDestroyPipeline"}
	procCreatePipelineLayout     = &proc{name: "vkCreatePipelineLayout"}
	procDestroyPipelineLayout    = &proc{name: "vkDestroyPipelineLayout"}
)

func CreateSampler(device Device, info *SamplerCreateInfo, allocator *AllocationCallbacks, sampler *Sampler) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&info),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&sampler),
	}
	return callResult(procCreateSampler, args[:], tU64, tPtr, tPtr, tPtr)
}

func DestroySampler(device Device, sampler Sampler, allocator *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&sampler), unsafe.Pointer(&allocator)}
	callVoid(procDestroySampler, args[:], tU64, tU64, tPtr)
}

func CreateShaderModule(device Device, info *ShaderModuleCreateInfo, allocator *AllocationCallbacks, module *ShaderModule) Result {
	cInfo := cShaderModuleCreateInfo{
		SType:    info.SType,
		PNext:    info.PNext,
		CodeSize: uint(info.CodeSize),
		PCode:    firstElem(info.PCode),
	}
	cInfoPtr := &cInfo
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&cInfoPtr),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&module),
	}
	return callResult(procCreateShaderModule, args[:], tU64, tPtr, tPtr, tPtr)
}

type cShaderModuleCreateInfo struct {
	SType    StructureType
	PNext    unsafe.Pointer
	Flags    Flags
	CodeSize uint
	PCode    unsafe.Pointer
}

func DestroyShaderModule(device Device, module ShaderModule, allocator *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&module), unsafe.Pointer(&allocator)}
	callVoid(procDestroyShaderModule, args[:], tU64, tU64, tPtr)
}

func CreateGraphicsPipelines(device Device, cache PipelineCache, count uint32, infos []GraphicsPipelineCreateInfo, allocator *AllocationCallbacks, pipelines []Pipeline) Result {
	cInfos := make([]cGraphicsPipelineCreateInfo, len(infos))
	for i, gi := range infos {
		cInfos[i] = cGraphicsPipelineCreateInfo{
			SType:               gi.SType,
			PNext:               gi.PNext,
			StageCount:          gi.StageCount,
			PStages:             firstElem(gi.PStages),
			PVertexInputState:   unsafe.Pointer(gi.PVertexInputState),
			PInputAssemblyState: unsafe.Pointer(gi.PInputAssemblyState),
			PViewportState:      unsafe.Pointer(gi.PViewportState),
			PRasterizationState: unsafe.Pointer(gi.PRasterizationState),
			PMultisampleState:   unsafe.Pointer(gi.PMultisampleState),
			PDepthStencilState:  unsafe.Pointer(gi.PDepthStencilState),
			PColorBlendState:    unsafe.Pointer(gi.PColorBlendState),
			PDynamicState:       unsafe.Pointer(gi.PDynamicState),
			Layout:              gi.Layout,
			RenderPass:          gi.RenderPass,
			Subpass:             gi.Subpass,
			BasePipelineHandle:  gi.BasePipelineHandle,
			BasePipelineIndex:   gi.BasePipelineIndex,
		}
	}
	infosPtr := firstElem(cInfos)
	pipelinesPtr := firstElem(pipelines)
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&cache),
		unsafe.Pointer(&count),
		unsafe.Pointer(&infosPtr),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&pipelinesPtr),
	}
	return callResult(procCreateGraphicsPipelines, args[:], tU64, tU64, tU32, tPtr, tPtr, tPtr)
}

type cGraphicsPipelineCreateInfo struct {
	SType               StructureType
	PNext               unsafe.Pointer
	Flags               Flags
	StageCount          uint32
	PStages             unsafe.Pointer
	PVertexInputState   unsafe.Pointer
	PInputAssemblyState unsafe.Pointer
	PTessellationState  unsafe.Pointer
	PViewportState      unsafe.Pointer
	PRasterizationState unsafe.Pointer
	PMultisampleState   unsafe.Pointer
	PDepthStencilState  unsafe.Pointer
	PColorBlendState    unsafe.Pointer
	PDynamicState       unsafe.Pointer
	Layout              PipelineLayout
	RenderPass          uintptr
	Subpass             uint32
	BasePipelineHandle  Pipeline
	BasePipelineIndex   int32
}

func DestroyPipeline(device Device, pipeline Pipeline, allocator *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pipeline), unsafe.Pointer(&allocator)}
	callVoid(procDestroyPipeline, args[:], tU64, tU64, tPtr)
}

func CreatePipelineLayout(device Device, info *PipelineLayoutCreateInfo, allocator *AllocationCallbacks, layout *PipelineLayout) Result {
	cInfo := cPipelineLayoutCreateInfo{
		SType:                  info.SType,
		PNext:                  info.PNext,
		SetLayoutCount:         info.SetLayoutCount,
		PSetLayouts:            firstElem(info.PSetLayouts),
		PushConstantRangeCount: info.PushConstantRangeCount,
		PPushConstantRanges:    firstElem(info.PPushConstantRanges),
	}
	cInfoPtr := &cInfo
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&cInfoPtr),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&layout),
	}
	return callResult(procCreatePipelineLayout, args[:], tU64, tPtr, tPtr, tPtr)
}

type cPipelineLayoutCreateInfo struct {
	SType                  StructureType
	PNext                  unsafe.Pointer
	Flags                  Flags
	SetLayoutCount         uint32
	PSetLayouts            unsafe.Pointer
	PushConstantRangeCount uint32
	PPushConstantRanges    unsafe.Pointer
}

func DestroyPipelineLayout(device Device, layout PipelineLayout, allocator *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&layout), unsafe.Pointer(&allocator)}
	callVoid(procDestroyPipelineLayout, args[:], tU64, tU64, tPtr)
}

// --- descriptors ---

var (
	procCreateDescriptorPool      = &proc{name: "vkCreateDescriptorPool"}
	procDestroyDescriptorPool     = &proc{name: "vkDestroyDescriptorPool"}
	procCreateDescriptorSetLayout = &proc{name: "vkCreateDescriptorSetLayout"}
	procDestroyDescriptorSetLayout = &proc{name: "vkDestroyDescriptorSetLayout"}
	procAllocateDescriptorSets    = &proc{name: "vkAllocateDescriptorSets"}
	procUpdateDescriptorSets      = &proc{name: "vkUpdateDescriptorSets"}
)

func CreateDescriptorPool(device Device, info *DescriptorPoolCreateInfo, allocator *AllocationCallbacks, pool *DescriptorPool) Result {
	cInfo := cDescriptorPoolCreateInfo{
		SType:         info.SType,
		PNext:         info.PNext,
		Flags:         info.Flags,
		MaxSets:       info.MaxSets,
		PoolSizeCount: info.PoolSizeCount,
		PPoolSizes:    firstElem(info.PPoolSizes),
	}
	cInfoPtr := &cInfo
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&cInfoPtr),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&pool),
	}
	return callResult(procCreateDescriptorPool, args[:], tU64, tPtr, tPtr, tPtr)
}

type cDescriptorPoolCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	Flags         DescriptorPoolCreateFlags
	MaxSets       uint32
	PoolSizeCount uint32
	PPoolSizes    unsafe.Pointer
}

func DestroyDescriptorPool(device Device, pool DescriptorPool, allocator *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&allocator)}
	callVoid(procDestroyDescriptorPool, args[:], tU64, tU64, tPtr)
}

func CreateDescriptorSetLayout(device Device, info *DescriptorSetLayoutCreateInfo, allocator *AllocationCallbacks, layout *DescriptorSetLayout) Result {
	cBindings := make([]cDescriptorSetLayoutBinding, len(info.PBindings))
	for i, b := range info.PBindings {
		cBindings[i] = cDescriptorSetLayoutBinding{
			Binding:            b.Binding,
			DescriptorType:     b.DescriptorType,
			DescriptorCount:    b.DescriptorCount,
			StageFlags:         b.StageFlags,
			PImmutableSamplers: firstElem(b.PImmutableSamplers),
		}
	}
	cInfo := cDescriptorSetLayoutCreateInfo{
		SType:        info.SType,
		PNext:        info.PNext,
		Flags:        info.Flags,
		BindingCount: info.BindingCount,
		PBindings:    firstElem(cBindings),
	}
	cInfoPtr := &cInfo
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&cInfoPtr),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&layout),
	}
	return callResult(procCreateDescriptorSetLayout, args[:], tU64, tPtr, tPtr, tPtr)
}

type cDescriptorSetLayoutBinding struct {
	Binding            uint32
	DescriptorType     DescriptorType
	DescriptorCount    uint32
	StageFlags         ShaderStageFlags
	PImmutableSamplers unsafe.Pointer
}

type cDescriptorSetLayoutCreateInfo struct {
	SType        StructureType
	PNext        unsafe.Pointer
	Flags        DescriptorSetLayoutCreateFlags
	BindingCount uint32
	PBindings    unsafe.Pointer
}

func DestroyDescriptorSetLayout(device Device, layout DescriptorSetLayout, allocator *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&layout), unsafe.Pointer(&allocator)}
	callVoid(procDestroyDescriptorSetLayout, args[:], tU64, tU64, tPtr)
}

func AllocateDescriptorSets(device Device, info *DescriptorSetAllocateInfo, sets *DescriptorSet) Result {
	cInfo := cDescriptorSetAllocateInfo{
		SType:              info.SType,
		PNext:              info.PNext,
		DescriptorPool:     info.DescriptorPool,
		DescriptorSetCount: info.DescriptorSetCount,
		PSetLayouts:        firstElem(info.PSetLayouts),
	}
	cInfoPtr := &cInfo
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&cInfoPtr),
		unsafe.Pointer(&sets),
	}
	return callResult(procAllocateDescriptorSets, args[:], tU64, tPtr, tPtr)
}

type cDescriptorSetAllocateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	DescriptorPool     DescriptorPool
	DescriptorSetCount uint32
	PSetLayouts        unsafe.Pointer
}

func UpdateDescriptorSets(device Device, writeCount uint32, writes []WriteDescriptorSet, copyCount uint32, copies unsafe.Pointer) {
	cWrites := make([]cWriteDescriptorSet, len(writes))
	for i, w := range writes {
		cWrites[i] = cWriteDescriptorSet{
			SType:           w.SType,
			PNext:           w.PNext,
			DstSet:          w.DstSet,
			DstBinding:      w.DstBinding,
			DstArrayElement: w.DstArrayElement,
			DescriptorCount: w.DescriptorCount,
			DescriptorType:  w.DescriptorType,
			PImageInfo:      firstElem(w.PImageInfo),
			PBufferInfo:     firstElem(w.PBufferInfo),
		}
	}
	writesPtr := firstElem(cWrites)
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&writeCount),
		unsafe.Pointer(&writesPtr),
		unsafe.Pointer(&copyCount),
		unsafe.Pointer(&copies),
	}
	callVoid(procUpdateDescriptorSets, args[:], tU64, tU32, tPtr, tU32, tPtr)
}

type cWriteDescriptorSet struct {
	SType            StructureType
	PNext            unsafe.Pointer
	DstSet           DescriptorSet
	DstBinding       uint32
	DstArrayElement  uint32
	DescriptorCount  uint32
	DescriptorType   DescriptorType
	PImageInfo       unsafe.Pointer
	PBufferInfo      unsafe.Pointer
	PTexelBufferView unsafe.Pointer
}

// --- command pool / buffers ---

var (
	procCreateCommandPool      = &proc{name: "vkCreateCommandPool"}
	procDestroyCommandPool     = &proc{name: "vkDestroyCommandPool"}
	procResetCommandPool       = &proc{name: "vkResetCommandPool"}
	procAllocateCommandBuffers = &proc{name: "vkAllocateCommandBuffers"}
	procBeginCommandBuffer     = &proc{name: "vkBeginCommandBuffer"}
	procEndCommandBuffer       = &proc{name: "vkEndCommandBuffer"}
	procResetCommandBuffer     = &proc{name: "vkResetCommandBuffer"}
)

func CreateCommandPool(device Device, info *CommandPoolCreateInfo, allocator *AllocationCallbacks, pool *CommandPool) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&info),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&pool),
	}
	return callResult(procCreateCommandPool, args[:], tU64, tPtr, tPtr, tPtr)
}

func DestroyCommandPool(device Device, pool CommandPool, allocator *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&allocator)}
	callVoid(procDestroyCommandPool, args[:], tU64, tU64, tPtr)
}

func ResetCommandPool(device Device, pool CommandPool, flags CommandPoolCreateFlags) Result {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&flags)}
	return callResult(procResetCommandPool, args[:], tU64, tU64, tU32)
}

func AllocateCommandBuffers(device Device, info *CommandBufferAllocateInfo, buffers []CommandBuffer) Result {
	buffersPtr := firstElem(buffers)
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&info),
		unsafe.Pointer(&buffersPtr),
	}
	return callResult(procAllocateCommandBuffers, args[:], tU64, tPtr, tPtr)
}

func BeginCommandBuffer(cb CommandBuffer, info *CommandBufferBeginInfo) Result {
	args := [2]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&info)}
	return callResult(procBeginCommandBuffer, args[:], tU64, tPtr)
}

func EndCommandBuffer(cb CommandBuffer) Result {
	args := [1]unsafe.Pointer{unsafe.Pointer(&cb)}
	return callResult(procEndCommandBuffer, args[:], tU64)
}

func ResetCommandBuffer(cb CommandBuffer, flags Flags) Result {
	args := [2]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&flags)}
	return callResult(procResetCommandBuffer, args[:], tU64, tU32)
}

// --- synchronization ---

var (
	procCreateSemaphore         = &proc{name: "vkCreateSemaphore"}
	procDestroySemaphore        = &proc{name: "vkDestroySemaphore"}
	procGetSemaphoreCounterValue = &proc{name: "vkGetSemaphoreCounterValue"}
	procSignalSemaphore         = &proc{name: "vkSignalSemaphore"}
	procWaitSemaphores          = &proc{name: "vkWaitSemaphores"}
	procQueueSubmit2            = &proc{name: "vkQueueSubmit2"}
)

func CreateSemaphore(device Device, info *SemaphoreCreateInfo, allocator *AllocationCallbacks, semaphore *Semaphore) Result {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&info),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&semaphore),
	}
	return callResult(procCreateSemaphore, args[:], tU64, tPtr, tPtr, tPtr)
}

func DestroySemaphore(device Device, semaphore Semaphore, allocator *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&semaphore), unsafe.Pointer(&allocator)}
	callVoid(procDestroySemaphore, args[:], tU64, tU64, tPtr)
}

func GetSemaphoreCounterValue(device Device, semaphore Semaphore, value *uint64) Result {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&semaphore), unsafe.Pointer(&value)}
	return callResult(procGetSemaphoreCounterValue, args[:], tU64, tU64, tPtr)
}

func SignalSemaphore(device Device, info *SemaphoreSignalInfo) Result {
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info)}
	return callResult(procSignalSemaphore, args[:], tU64, tPtr)
}

func WaitSemaphores(device Device, info *SemaphoreWaitInfo, timeout uint64) Result {
	cInfo := cSemaphoreWaitInfo{
		SType:          info.SType,
		PNext:          info.PNext,
		Flags:          info.Flags,
		SemaphoreCount: info.SemaphoreCount,
		PSemaphores:    firstElem(info.PSemaphores),
		PValues:        firstElem(info.PValues),
	}
	cInfoPtr := &cInfo
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&cInfoPtr),
		unsafe.Pointer(&timeout),
	}
	return callResult(procWaitSemaphores, args[:], tU64, tPtr, tU64)
}

type cSemaphoreWaitInfo struct {
	SType          StructureType
	PNext          unsafe.Pointer
	Flags          Flags
	SemaphoreCount uint32
	PSemaphores    unsafe.Pointer
	PValues        unsafe.Pointer
}

func QueueSubmit2(queue Queue, submitCount uint32, submits []SubmitInfo2, fence Fence) Result {
	cSubmits := make([]cSubmitInfo2, len(submits))
	for i, s := range submits {
		cSubmits[i] = cSubmitInfo2{
			SType:                    s.SType,
			PNext:                    s.PNext,
			Flags:                    s.Flags,
			WaitSemaphoreInfoCount:   s.WaitSemaphoreInfoCount,
			PWaitSemaphoreInfos:      firstElem(s.PWaitSemaphoreInfos),
			CommandBufferInfoCount:   s.CommandBufferInfoCount,
			PCommandBufferInfos:      firstElem(s.PCommandBufferInfos),
			SignalSemaphoreInfoCount: s.SignalSemaphoreInfoCount,
			PSignalSemaphoreInfos:    firstElem(s.PSignalSemaphoreInfos),
		}
	}
	submitsPtr := firstElem(cSubmits)
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&queue),
		unsafe.Pointer(&submitCount),
		unsafe.Pointer(&submitsPtr),
		unsafe.Pointer(&fence),
	}
	return callResult(procQueueSubmit2, args[:], tU64, tU32, tPtr, tU64)
}

type cSubmitInfo2 struct {
	SType                    StructureType
	PNext                    unsafe.Pointer
	Flags                    Flags
	WaitSemaphoreInfoCount   uint32
	PWaitSemaphoreInfos      unsafe.Pointer
	CommandBufferInfoCount   uint32
	PCommandBufferInfos      unsafe.Pointer
	SignalSemaphoreInfoCount uint32
	PSignalSemaphoreInfos    unsafe.Pointer
}

// --- command recording ---

var (
	procCmdPipelineBarrier2      = &proc{name: "vkCmdPipelineBarrier2"}
	procCmdBeginRendering        = &proc{name: "vkCmdBeginRendering"}
	procCmdEndRendering          = &proc{name: "vkCmdEndRendering"}
	procCmdClearColorImage       = &proc{name: "vkCmdClearColorImage"}
	procCmdClearDepthStencilImage = &proc{name: "vkCmdClearDepthStencilImage"}
	procCmdFillBuffer            = &proc{name: "vkCmdFillBuffer"}
	procCmdDraw                  = &proc{name: "vkCmdDraw"}
	procCmdDrawIndexed           = &proc{name: "vkCmdDrawIndexed"}
	procCmdDrawIndirect          = &proc{name: "vkCmdDrawIndirect"}
	procCmdDrawIndirectCount     = &proc{name: "vkCmdDrawIndirectCount"}
	procCmdBindVertexBuffers     = &proc{name: "vkCmdBindVertexBuffers"}
	procCmdBindIndexBuffer       = &proc{name: "vkCmdBindIndexBuffer"}
	procCmdPushConstants         = &proc{name: "vkCmdPushConstants"}
	procCmdBindDescriptorSets    = &proc{name: "vkCmdBindDescriptorSets"}
	procCmdBindPipeline          = &proc{name: "vkCmdBindPipeline"}
	procCmdCopyBuffer            = &proc{name: "vkCmdCopyBuffer"}
	procCmdCopyBufferToImage     = &proc{name: "vkCmdCopyBufferToImage"}
	procCmdCopyImageToBuffer     = &proc{name: "vkCmdCopyImageToBuffer"}
	procCmdCopyImage             = &proc{name: "vkCmdCopyImage"}
	procCmdBlitImage             = &proc{name: "vkCmdBlitImage"}
	procCmdSetViewport           = &proc{name: "vkCmdSetViewport"}
	procCmdSetScissor            = &proc{name: "vkCmdSetScissor"}
	procCmdBeginDebugUtilsLabel  = &proc{name: "vkCmdBeginDebugUtilsLabelEXT"}
	procCmdEndDebugUtilsLabel    = &proc{name: "vkCmdEndDebugUtilsLabelEXT"}
)

func CmdPipelineBarrier2(cb CommandBuffer, dep *DependencyInfo) {
	cDep := cDependencyInfo{
		SType:                    dep.SType,
		PNext:                    dep.PNext,
		DependencyFlags:          dep.DependencyFlags,
		MemoryBarrierCount:       dep.MemoryBarrierCount,
		PMemoryBarriers:          firstElem(dep.PMemoryBarriers),
		BufferMemoryBarrierCount: dep.BufferMemoryBarrierCount,
		PBufferMemoryBarriers:    firstElem(dep.PBufferMemoryBarriers),
		ImageMemoryBarrierCount:  dep.ImageMemoryBarrierCount,
		PImageMemoryBarriers:     firstElem(dep.PImageMemoryBarriers),
	}
	cDepPtr := &cDep
	args := [2]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&cDepPtr)}
	callVoid(procCmdPipelineBarrier2, args[:], tU64, tPtr)
}

type cDependencyInfo struct {
	SType                    StructureType
	PNext                    unsafe.Pointer
	DependencyFlags          Flags
	MemoryBarrierCount       uint32
	PMemoryBarriers          unsafe.Pointer
	BufferMemoryBarrierCount uint32
	PBufferMemoryBarriers    unsafe.Pointer
	ImageMemoryBarrierCount  uint32
	PImageMemoryBarriers     unsafe.Pointer
}

func CmdBeginRendering(cb CommandBuffer, info *RenderingInfo) {
	cInfo := cRenderingInfo{
		SType:                info.SType,
		PNext:                info.PNext,
		Flags:                info.Flags,
		RenderArea:           info.RenderArea,
		LayerCount:           info.LayerCount,
		ViewMask:             info.ViewMask,
		ColorAttachmentCount: info.ColorAttachmentCount,
		PColorAttachments:    firstElem(info.PColorAttachments),
		PDepthAttachment:     unsafe.Pointer(info.PDepthAttachment),
		PStencilAttachment:   unsafe.Pointer(info.PStencilAttachment),
	}
	cInfoPtr := &cInfo
	args := [2]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&cInfoPtr)}
	callVoid(procCmdBeginRendering, args[:], tU64, tPtr)
}

type cRenderingInfo struct {
	SType                StructureType
	PNext                unsafe.Pointer
	Flags                Flags
	RenderArea           Rect2D
	LayerCount           uint32
	ViewMask             uint32
	ColorAttachmentCount uint32
	PColorAttachments    unsafe.Pointer
	PDepthAttachment     unsafe.Pointer
	PStencilAttachment   unsafe.Pointer
}

func CmdEndRendering(cb CommandBuffer) {
	args := [1]unsafe.Pointer{unsafe.Pointer(&cb)}
	callVoid(procCmdEndRendering, args[:], tU64)
}

func CmdClearColorImage(cb CommandBuffer, image Image, layout ImageLayout, color *ClearColorValue, rangeCount uint32, ranges []ImageSubresourceRange) {
	rangesPtr := firstElem(ranges)
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&image),
		unsafe.Pointer(&layout),
		unsafe.Pointer(&color),
		unsafe.Pointer(&rangeCount),
		unsafe.Pointer(&rangesPtr),
	}
	callVoid(procCmdClearColorImage, args[:], tU64, tU64, tU32, tPtr, tU32, tPtr)
}

func CmdClearDepthStencilImage(cb CommandBuffer, image Image, layout ImageLayout, value *ClearDepthStencilValue, rangeCount uint32, ranges []ImageSubresourceRange) {
	rangesPtr := firstElem(ranges)
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&image),
		unsafe.Pointer(&layout),
		unsafe.Pointer(&value),
		unsafe.Pointer(&rangeCount),
		unsafe.Pointer(&rangesPtr),
	}
	callVoid(procCmdClearDepthStencilImage, args[:], tU64, tU64, tU32, tPtr, tU32, tPtr)
}

func CmdFillBuffer(cb CommandBuffer, buffer Buffer, offset, size DeviceSize, data uint32) {
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&offset),
		unsafe.Pointer(&size),
		unsafe.Pointer(&data),
	}
	callVoid(procCmdFillBuffer, args[:], tU64, tU64, tU64, tU64, tU32)
}

func CmdDraw(cb CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&vertexCount),
		unsafe.Pointer(&instanceCount),
		unsafe.Pointer(&firstVertex),
		unsafe.Pointer(&firstInstance),
	}
	callVoid(procCmdDraw, args[:], tU64, tU32, tU32, tU32, tU32)
}

func CmdDrawIndexed(cb CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&indexCount),
		unsafe.Pointer(&instanceCount),
		unsafe.Pointer(&firstIndex),
		unsafe.Pointer(&vertexOffset),
		unsafe.Pointer(&firstInstance),
	}
	callVoid(procCmdDrawIndexed, args[:], tU64, tU32, tU32, tU32, tI32, tU32)
}

func CmdDrawIndirect(cb CommandBuffer, buffer Buffer, offset DeviceSize, drawCount, stride uint32) {
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&offset),
		unsafe.Pointer(&drawCount),
		unsafe.Pointer(&stride),
	}
	callVoid(procCmdDrawIndirect, args[:], tU64, tU64, tU64, tU32, tU32)
}

func CmdDrawIndirectCount(cb CommandBuffer, buffer Buffer, offset DeviceSize, countBuffer Buffer, countBufferOffset DeviceSize, maxDrawCount, stride uint32) {
	args := [7]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&offset),
		unsafe.Pointer(&countBuffer),
		unsafe.Pointer(&countBufferOffset),
		unsafe.Pointer(&maxDrawCount),
		unsafe.Pointer(&stride),
	}
	callVoid(procCmdDrawIndirectCount, args[:], tU64, tU64, tU64, tU64, tU64, tU32, tU32)
}

func CmdBindVertexBuffers(cb CommandBuffer, firstBinding, bindingCount uint32, buffers []Buffer, offsets []DeviceSize) {
	buffersPtr := firstElem(buffers)
	offsetsPtr := firstElem(offsets)
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&firstBinding),
		unsafe.Pointer(&bindingCount),
		unsafe.Pointer(&buffersPtr),
		unsafe.Pointer(&offsetsPtr),
	}
	callVoid(procCmdBindVertexBuffers, args[:], tU64, tU32, tU32, tPtr, tPtr)
}

func CmdBindIndexBuffer(cb CommandBuffer, buffer Buffer, offset DeviceSize, indexType IndexType) {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&offset),
		unsafe.Pointer(&indexType),
	}
	callVoid(procCmdBindIndexBuffer, args[:], tU64, tU64, tU64, tU32)
}

func CmdPushConstants(cb CommandBuffer, layout PipelineLayout, stageFlags ShaderStageFlags, offset, size uint32, values unsafe.Pointer) {
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&layout),
		unsafe.Pointer(&stageFlags),
		unsafe.Pointer(&offset),
		unsafe.Pointer(&size),
		unsafe.Pointer(&values),
	}
	callVoid(procCmdPushConstants, args[:], tU64, tU64, tU32, tU32, tU32, tPtr)
}

func CmdBindDescriptorSets(cb CommandBuffer, bindPoint PipelineBindPoint, layout PipelineLayout, firstSet uint32, sets []DescriptorSet, dynamicOffsets []uint32) {
	setsPtr := firstElem(sets)
	offsetsPtr := firstElem(dynamicOffsets)
	setCount := uint32(len(sets))
	offsetCount := uint32(len(dynamicOffsets))
	args := [8]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&bindPoint),
		unsafe.Pointer(&layout),
		unsafe.Pointer(&firstSet),
		unsafe.Pointer(&setCount),
		unsafe.Pointer(&setsPtr),
		unsafe.Pointer(&offsetCount),
		unsafe.Pointer(&offsetsPtr),
	}
	callVoid(procCmdBindDescriptorSets, args[:], tU64, tU32, tU64, tU32, tU32, tPtr, tU32, tPtr)
}

func CmdBindPipeline(cb CommandBuffer, bindPoint PipelineBindPoint, pipeline Pipeline) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&bindPoint), unsafe.Pointer(&pipeline)}
	callVoid(procCmdBindPipeline, args[:], tU64, tU32, tU64)
}

func CmdCopyBuffer(cb CommandBuffer, src, dst Buffer, regionCount uint32, regions []BufferCopy) {
	regionsPtr := firstElem(regions)
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&src),
		unsafe.Pointer(&dst),
		unsafe.Pointer(&regionCount),
		unsafe.Pointer(&regionsPtr),
	}
	callVoid(procCmdCopyBuffer, args[:], tU64, tU64, tU64, tU32, tPtr)
}

func CmdCopyBufferToImage(cb CommandBuffer, buffer Buffer, image Image, layout ImageLayout, regionCount uint32, regions []BufferImageCopy) {
	regionsPtr := firstElem(regions)
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&image),
		unsafe.Pointer(&layout),
		unsafe.Pointer(&regionCount),
		unsafe.Pointer(&regionsPtr),
	}
	callVoid(procCmdCopyBufferToImage, args[:], tU64, tU64, tU64, tU32, tU32, tPtr)
}

func CmdCopyImageToBuffer(cb CommandBuffer, image Image, layout ImageLayout, buffer Buffer, regionCount uint32, regions []BufferImageCopy) {
	regionsPtr := firstElem(regions)
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&image),
		unsafe.Pointer(&layout),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&regionCount),
		unsafe.Pointer(&regionsPtr),
	}
	callVoid(procCmdCopyImageToBuffer, args[:], tU64, tU64, tU32, tU64, tU32, tPtr)
}

func CmdCopyImage(cb CommandBuffer, src Image, srcLayout ImageLayout, dst Image, dstLayout ImageLayout, regionCount uint32, regions []ImageCopy) {
	regionsPtr := firstElem(regions)
	args := [7]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&src),
		unsafe.Pointer(&srcLayout),
		unsafe.Pointer(&dst),
		unsafe.Pointer(&dstLayout),
		unsafe.Pointer(&regionCount),
		unsafe.Pointer(&regionsPtr),
	}
	callVoid(procCmdCopyImage, args[:], tU64, tU64, tU32, tU64, tU32, tU32, tPtr)
}

func CmdBlitImage(cb CommandBuffer, src Image, srcLayout ImageLayout, dst Image, dstLayout ImageLayout, regionCount uint32, regions []ImageBlit, filter Filter) {
	regionsPtr := firstElem(regions)
	args := [8]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&src),
		unsafe.Pointer(&srcLayout),
		unsafe.Pointer(&dst),
		unsafe.Pointer(&dstLayout),
		unsafe.Pointer(&regionCount),
		unsafe.Pointer(&regionsPtr),
		unsafe.Pointer(&filter),
	}
	callVoid(procCmdBlitImage, args[:], tU64, tU64, tU32, tU64, tU32, tU32, tPtr, tU32)
}

func CmdSetViewport(cb CommandBuffer, first, count uint32, viewports []Viewport) {
	viewportsPtr := firstElem(viewports)
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&first),
		unsafe.Pointer(&count),
		unsafe.Pointer(&viewportsPtr),
	}
	callVoid(procCmdSetViewport, args[:], tU64, tU32, tU32, tPtr)
}

func CmdSetScissor(cb CommandBuffer, first, count uint32, scissors []Rect2D) {
	scissorsPtr := firstElem(scissors)
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&first),
		unsafe.Pointer(&count),
		unsafe.Pointer(&scissorsPtr),
	}
	callVoid(procCmdSetScissor, args[:], tU64, tU32, tU32, tPtr)
}

func CmdBeginDebugUtilsLabel(cb CommandBuffer, label *DebugUtilsLabel) {
	nameBuf := cString(label.PLabelName)
	cLabel := cDebugUtilsLabel{
		SType:      label.SType,
		PNext:      label.PNext,
		PLabelName: unsafe.Pointer(&nameBuf[0]),
		Color:      label.Color,
	}
	cLabelPtr := &cLabel
	args := [2]unsafe.Pointer{unsafe.Pointer(&cb), unsafe.Pointer(&cLabelPtr)}
	callVoid(procCmdBeginDebugUtilsLabel, args[:], tU64, tPtr)
}

type cDebugUtilsLabel struct {
	SType      StructureType
	PNext      unsafe.Pointer
	PLabelName unsafe.Pointer
	Color      [4]float32
}

func CmdEndDebugUtilsLabel(cb CommandBuffer) {
	args := [1]unsafe.Pointer{unsafe.Pointer(&cb)}
	callVoid(procCmdEndDebugUtilsLabel, args[:], tU64)
}
