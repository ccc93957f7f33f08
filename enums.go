package rhi

// Format is the closed set of pixel/vertex-attribute formats translated
// 1:1 to and from the Vulkan backend.
type Format int

const (
	FormatUndefined Format = iota

	// 8-bit per channel, unsigned normalized.
	FormatR8Unorm
	FormatR8G8Unorm
	FormatR8G8B8Unorm
	FormatR8G8B8A8Unorm
	FormatR8G8B8A8Srgb
	FormatB8G8R8A8Unorm
	FormatB8G8R8A8Srgb

	// 8-bit per channel, signed/unsigned integer.
	FormatR8Uint
	FormatR8Sint
	FormatR8G8B8A8Uint
	FormatR8G8B8A8Sint

	// 16-bit per channel.
	FormatR16Unorm
	FormatR16Uint
	FormatR16Sint
	FormatR16Sfloat
	FormatR16G16Sfloat
	FormatR16G16B16A16Sfloat
	FormatR16G16B16A16Unorm

	// 32-bit per channel.
	FormatR32Uint
	FormatR32Sint
	FormatR32Sfloat
	FormatR32G32Sfloat
	FormatR32G32B32Sfloat
	FormatR32G32B32A32Sfloat
	FormatR32G32B32A32Uint

	// 64-bit per channel.
	FormatR64Uint
	FormatR64Sint
	FormatR64Sfloat

	// Packed formats.
	FormatA2R10G10B10Unorm
	FormatB10G11R11Ufloat

	// Depth/stencil formats.
	FormatD16Unorm
	FormatD24UnormS8Uint
	FormatD32Sfloat
	FormatD32SfloatS8Uint
	FormatS8Uint
	FormatD16UnormS8Uint
)

// IsDepthOrStencil reports whether f carries depth and/or stencil data,
// which controls the default ImageAspect an Image derives from its format.
func (f Format) IsDepthOrStencil() bool {
	switch f {
	case FormatD16Unorm, FormatD24UnormS8Uint, FormatD32Sfloat,
		FormatD32SfloatS8Uint, FormatS8Uint, FormatD16UnormS8Uint:
		return true
	default:
		return false
	}
}

// HasStencil reports whether f carries a stencil component.
func (f Format) HasStencil() bool {
	switch f {
	case FormatD24UnormS8Uint, FormatD32SfloatS8Uint, FormatS8Uint, FormatD16UnormS8Uint:
		return true
	default:
		return false
	}
}

// ImageType is the dimensionality of an Image.
type ImageType int

const (
	ImageType1D ImageType = iota
	ImageType2D
	ImageType3D
)

// ImageLayout mirrors VkImageLayout.
type ImageLayout int

const (
	ImageLayoutUndefined ImageLayout = iota
	ImageLayoutGeneral
	ImageLayoutColorAttachment
	ImageLayoutDepthStencilAttachment
	ImageLayoutDepthStencilReadOnly
	ImageLayoutShaderReadOnly
	ImageLayoutTransferSrc
	ImageLayoutTransferDst
	ImageLayoutPresentSrc
)

// ImageUsage is a bitmask of intended image uses.
type ImageUsage uint32

const (
	ImageUsageTransferSrc ImageUsage = 1 << iota
	ImageUsageTransferDst
	ImageUsageSampled
	ImageUsageStorage
	ImageUsageColorAttachment
	ImageUsageDepthStencilAttachment
)

// ImageAspect is a bitmask of image plane aspects.
type ImageAspect uint32

const (
	ImageAspectColor ImageAspect = 1 << iota
	ImageAspectDepth
	ImageAspectStencil
)

// AspectForFormat derives the default aspect mask for a format: color for
// ordinary formats, depth and/or stencil for depth/stencil formats.
func AspectForFormat(f Format) ImageAspect {
	if !f.IsDepthOrStencil() {
		return ImageAspectColor
	}
	aspect := ImageAspectDepth
	if f == FormatS8Uint {
		return ImageAspectStencil
	}
	if f.HasStencil() {
		aspect |= ImageAspectStencil
	}
	return aspect
}

// ImageTiling mirrors VkImageTiling.
type ImageTiling int

const (
	ImageTilingOptimal ImageTiling = iota
	ImageTilingLinear
)

// BufferUsage is a bitmask of intended buffer uses.
type BufferUsage uint32

const (
	BufferUsageVertex BufferUsage = 1 << iota
	BufferUsageIndex
	BufferUsageUniform
	BufferUsageStorage
	BufferUsageTransferSrc
	BufferUsageTransferDst
	BufferUsageIndirect
)

// MemoryUsage is a bitmask of allocation hints consumed by the memory
// allocator when choosing a memory type and allocation strategy.
type MemoryUsage uint32

const (
	MemoryUsageDedicated MemoryUsage = 1 << iota
	MemoryUsageCanAlias
	MemoryUsageHostWritable
	MemoryUsageHostAccessible
	MemoryUsageHostTransferable
	MemoryUsageBestFit
	MemoryUsageFirstFit
)

// SharingMode controls the queue-family list attached to a buffer or image.
type SharingMode int

const (
	SharingModeExclusive SharingMode = iota
	SharingModeConcurrent
)

// TexelFilter mirrors VkFilter.
type TexelFilter int

const (
	TexelFilterNearest TexelFilter = iota
	TexelFilterLinear
)

// MipmapMode mirrors VkSamplerMipmapMode.
type MipmapMode int

const (
	MipmapModeNearest MipmapMode = iota
	MipmapModeLinear
)

// SamplerAddress mirrors VkSamplerAddressMode.
type SamplerAddress int

const (
	SamplerAddressRepeat SamplerAddress = iota
	SamplerAddressMirroredRepeat
	SamplerAddressClampToEdge
	SamplerAddressClampToBorder
)

// CompareOp mirrors VkCompareOp.
type CompareOp int

const (
	CompareOpNever CompareOp = iota
	CompareOpLess
	CompareOpEqual
	CompareOpLessOrEqual
	CompareOpGreater
	CompareOpNotEqual
	CompareOpGreaterOrEqual
	CompareOpAlways
)

// BorderColor mirrors VkBorderColor.
type BorderColor int

const (
	BorderColorTransparentBlack BorderColor = iota
	BorderColorOpaqueBlack
	BorderColorOpaqueWhite
)

// AttachmentLoadOp mirrors VkAttachmentLoadOp.
type AttachmentLoadOp int

const (
	AttachmentLoadOpLoad AttachmentLoadOp = iota
	AttachmentLoadOpClear
	AttachmentLoadOpDontCare
	AttachmentLoadOpNone
)

// AttachmentStoreOp mirrors VkAttachmentStoreOp.
type AttachmentStoreOp int

const (
	AttachmentStoreOpStore AttachmentStoreOp = iota
	AttachmentStoreOpDontCare
	AttachmentStoreOpNone
)

// SwapchainPresentMode mirrors VkPresentModeKHR.
type SwapchainPresentMode int

const (
	SwapchainPresentModeImmediate SwapchainPresentMode = iota
	SwapchainPresentModeMailbox
	SwapchainPresentModeFifo
	SwapchainPresentModeFifoRelaxed
	SwapchainPresentModeSharedDemandRefresh
	SwapchainPresentModeSharedContinuousRefresh
)

// TopologyType mirrors VkPrimitiveTopology.
type TopologyType int

const (
	TopologyTypeTriangleList TopologyType = iota
	TopologyTypeTriangleStrip
	TopologyTypeLineList
	TopologyTypeLineStrip
	TopologyTypePointList
)

// PolygonMode mirrors VkPolygonMode.
type PolygonMode int

const (
	PolygonModeFill PolygonMode = iota
	PolygonModeLine
	PolygonModePoint
)

// CullingMode is a bitmask mirroring VkCullModeFlags.
type CullingMode int

const (
	CullingModeNone CullingMode = iota
	CullingModeFront
	CullingModeBack
	CullingModeFrontAndBack
)

// FrontFace mirrors VkFrontFace.
type FrontFace int

const (
	FrontFaceCounterClockwise FrontFace = iota
	FrontFaceClockwise
)

// BlendFactor mirrors VkBlendFactor.
type BlendFactor int

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
)

// BlendOp mirrors VkBlendOp.
type BlendOp int

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// PipelineStage is a bitmask mirroring VkPipelineStageFlags2.
type PipelineStage uint64

const (
	PipelineStageTopOfPipe PipelineStage = 1 << iota
	PipelineStageBottomOfPipe
	PipelineStageTransfer
	PipelineStageVertexInput
	PipelineStageVertexShader
	PipelineStageFragmentShader
	PipelineStageEarlyFragmentTests
	PipelineStageLateFragmentTests
	PipelineStageColorAttachmentOutput
	PipelineStageComputeShader
	PipelineStageAllCommands
)

// MemoryAccessType is a bitmask mirroring VkAccessFlags2.
type MemoryAccessType uint64

const MemoryAccessNone MemoryAccessType = 0

const (
	MemoryAccessIndirectCommandRead MemoryAccessType = 1 << iota
	MemoryAccessIndexRead
	MemoryAccessVertexAttributeRead
	MemoryAccessUniformRead
	MemoryAccessShaderRead
	MemoryAccessShaderWrite
	MemoryAccessColorAttachmentRead
	MemoryAccessColorAttachmentWrite
	MemoryAccessDepthStencilAttachmentRead
	MemoryAccessDepthStencilAttachmentWrite
	MemoryAccessTransferRead
	MemoryAccessTransferWrite
	MemoryAccessHostRead
	MemoryAccessHostWrite
	MemoryAccessMemoryRead
	MemoryAccessMemoryWrite
)

// DeviceQueue selects which of the device's queue families an operation
// targets.
type DeviceQueue int

const (
	DeviceQueueNone DeviceQueue = iota
	DeviceQueueMain
	DeviceQueueTransfer
	DeviceQueueCompute
)

// ShaderType selects the pipeline stage a shader module targets.
type ShaderType int

const (
	ShaderTypeVertex ShaderType = iota
	ShaderTypeFragment
	ShaderTypeCompute
	ShaderTypeRayGen
	ShaderTypeRayMiss
	ShaderTypeRayClosestHit
)

// ShaderStage is a bitmask mirroring VkShaderStageFlags, used when a single
// push-constant range must be visible to more than one stage.
type ShaderStage uint32

const (
	ShaderStageVertex ShaderStage = 1 << iota
	ShaderStageFragment
	ShaderStageCompute
	ShaderStageAll ShaderStage = 0x7FFFFFFF
)

// IndexType selects the width of an index buffer's elements.
type IndexType int

const (
	IndexTypeUint8 IndexType = iota
	IndexTypeUint16
	IndexTypeUint32
)

// CommandBufferState tracks where a CommandBuffer sits in the
// begin/record/end lifecycle.
type CommandBufferState int

const (
	CommandBufferStateInitial CommandBufferState = iota
	CommandBufferStateRecording
	CommandBufferStateExecutable
)

// PipelineType tags which variant a Pipeline was created as.
type PipelineType int

const (
	PipelineTypeRasterization PipelineType = iota
	PipelineTypeCompute
	PipelineTypeRayTracing
)

// SwapchainState is the result of an acquire or present operation.
type SwapchainState int

const (
	SwapchainStateOk SwapchainState = iota
	SwapchainStateSuboptimal
	SwapchainStateTimedOut
	SwapchainStateNotReady
	SwapchainStateError
)
