package rhi

// Fixed capacities named throughout the device resource runtime. These
// match the reference implementation's compile-time maxima rather than
// being runtime-configurable, since they size inline arrays rather than
// heap-growable slices in the hot recording/submission paths.
const (
	// MaxFramesInFlight bounds the number of swapchain images and the
	// per-frame semaphore/fence sets a Swapchain allocates.
	MaxFramesInFlight = 4

	// MaxCommandBufferPerPool bounds the number of command buffers a single
	// CommandPool can have outstanding at once.
	MaxCommandBufferPerPool = 16

	// MaxCommandBufferBarrierCount bounds the number of pending memory,
	// buffer, or image barriers a CommandBuffer batches before an automatic
	// flush.
	MaxCommandBufferBarrierCount = 16

	// MaxCommandBufferAttachment bounds the number of color attachments a
	// single BeginRendering scope may declare.
	MaxCommandBufferAttachment = 16

	// MaxBuffers is the default cap on live buffer-device-address slots.
	MaxBuffers = 10_000

	// MaxImages is the default cap on live bindless image descriptor slots.
	MaxImages = 10_000

	// MaxSamplers is the default cap on live bindless sampler descriptor
	// slots.
	MaxSamplers = 100

	// MaxPoolInQueue is the number of staging pools the UploadHeap rotates
	// through.
	MaxPoolInQueue = 3

	// MaxUploadHeapBuffersPerPool bounds staging buffers allocated per
	// upload-heap pool.
	MaxUploadHeapBuffersPerPool = 8

	// MaxUploadsPerPool bounds the number of pending buffer or image upload
	// records a single upload-heap pool can hold before a forced flush.
	MaxUploadsPerPool = 64

	// HeapBlockSize is the size of each lazily-allocated staging buffer in
	// the upload heap.
	HeapBlockSize = 32 << 20 // 32 MiB

	// MaxSubmissionGroups bounds the number of submission groups a
	// SubmissionQueue can hold per device queue.
	MaxSubmissionGroups = 8

	// MaxCommandBufferSubmissionCount bounds command buffers per
	// submission group.
	MaxCommandBufferSubmissionCount = 64

	// MaxFenceSubmissionCount bounds (fence,value) wait/signal pairs per
	// submission group, halved into MaxFenceSubmissionCount/2 waits and
	// MaxFenceSubmissionCount/2 signals.
	MaxFenceSubmissionCount = 128

	// MaxSemaphoreSubmissionCount bounds binary semaphore wait/signal slots
	// per submission group, halved the same way as fences.
	MaxSemaphoreSubmissionCount = 128
)

// Descriptor cache bindings are fixed: one binding per resource class in
// the single bindless descriptor set layout.
const (
	BindingStorageImage = iota
	BindingCombinedImageSampler
	BindingSampledImage
	BindingSampler
	BindingBufferDeviceAddressTable
)
