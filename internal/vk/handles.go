package vk

import "unsafe"

// Handle types are modeled as distinct named pointer types, matching the
// xlab-generated bindings this package stands in for: every handle is
// nil-comparable, and dispatchable handles (Instance, PhysicalDevice,
// Device, Queue, CommandBuffer) really are pointers in the C ABI.
// Non-dispatchable handles are opaque uint64 values on the wire; wrapping
// them in a pointer-shaped Go type costs nothing since they never leave the
// process except as raw uintptr arguments to a resolved function pointer.
type (
	Instance       unsafe.Pointer
	PhysicalDevice unsafe.Pointer
	Device         unsafe.Pointer
	Queue          unsafe.Pointer
	CommandBuffer  unsafe.Pointer

	CommandPool         unsafe.Pointer
	Buffer              unsafe.Pointer
	Image               unsafe.Pointer
	ImageView           unsafe.Pointer
	ShaderModule        unsafe.Pointer
	Pipeline            unsafe.Pointer
	PipelineLayout      unsafe.Pointer
	Sampler             unsafe.Pointer
	DescriptorPool      unsafe.Pointer
	DescriptorSetLayout unsafe.Pointer
	DescriptorSet       unsafe.Pointer
	Semaphore           unsafe.Pointer
	Fence               unsafe.Pointer
	Surface             unsafe.Pointer
	Swapchain           unsafe.Pointer
	PipelineCache       unsafe.Pointer
)

// NullFence is the zero Fence handle, passed to QueueSubmit2 when the
// caller tracks completion through a timeline semaphore instead.
var NullFence Fence

// DeviceMemory is a non-dispatchable handle represented as a plain integer
// rather than a pointer: the allocator compares it against the untyped
// literal 0 on its error paths, which only an integer-kinded handle permits.
type DeviceMemory uint64

// handleAddr returns the uintptr representation of a pointer-shaped handle
// for use as a syscall/goffi argument.
func handleAddr(h unsafe.Pointer) uintptr { return uintptr(h) }

// Scalar aliases matching the C ABI widths the generated bindings expose.
type (
	Bool32        uint32
	DeviceSize    uint64
	DeviceAddress uint64
	Flags         uint32
)

const (
	True  Bool32 = 1
	False Bool32 = 0
)

const (
	WholeSize          DeviceSize = ^DeviceSize(0)
	RemainingMipLevels uint32     = ^uint32(0)
	QueueFamilyIgnored uint32     = ^uint32(0)
)

// Result mirrors VkResult. Only the subset this runtime checks for is
// named; every other nonzero negative value is still a valid error code.
type Result int32

const (
	Success        Result = 0
	NotReady       Result = 1
	Timeout        Result = 2
	EventSet       Result = 3
	EventReset     Result = 4
	Incomplete     Result = 5
	Suboptimal     Result = 1000001003
	ErrorOutOfDate Result = -1000001004
)

// ApiVersion13 packs the Vulkan 1.3 version triple the way VK_MAKE_API_VERSION does.
const ApiVersion13 uint32 = (1 << 22) | (3 << 12)
