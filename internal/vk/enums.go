package vk

// StructureType mirrors VkStructureType. Core values below 1000000000 match
// the Vulkan registry; the promoted-extension values at 1000xxxyyy match
// their real Khronos-assigned numbers so a genuine 1.2/1.3 driver parses
// the pNext chains this runtime builds.
type StructureType uint32

const (
	StructureTypeApplicationInfo              StructureType = 0
	StructureTypeInstanceCreateInfo           StructureType = 1
	StructureTypeDeviceQueueCreateInfo        StructureType = 2
	StructureTypeDeviceCreateInfo             StructureType = 3
	StructureTypeSubmitInfo                   StructureType = 4
	StructureTypeMemoryAllocateInfo           StructureType = 5
	StructureTypeFenceCreateInfo              StructureType = 8
	StructureTypeSemaphoreCreateInfo          StructureType = 9
	StructureTypeBufferCreateInfo             StructureType = 12
	StructureTypeImageCreateInfo              StructureType = 14
	StructureTypeImageViewCreateInfo          StructureType = 15
	StructureTypeShaderModuleCreateInfo       StructureType = 16
	StructureTypePipelineShaderStageCreateInfo          StructureType = 18
	StructureTypePipelineVertexInputStateCreateInfo     StructureType = 19
	StructureTypePipelineInputAssemblyStateCreateInfo   StructureType = 20
	StructureTypePipelineViewportStateCreateInfo        StructureType = 22
	StructureTypePipelineRasterizationStateCreateInfo   StructureType = 23
	StructureTypePipelineMultisampleStateCreateInfo     StructureType = 24
	StructureTypePipelineDepthStencilStateCreateInfo    StructureType = 25
	StructureTypePipelineColorBlendStateCreateInfo      StructureType = 26
	StructureTypePipelineDynamicStateCreateInfo         StructureType = 27
	StructureTypeGraphicsPipelineCreateInfo   StructureType = 28
	StructureTypePipelineLayoutCreateInfo     StructureType = 30
	StructureTypeSamplerCreateInfo            StructureType = 31
	StructureTypeDescriptorSetLayoutCreateInfo StructureType = 32
	StructureTypeDescriptorPoolCreateInfo     StructureType = 33
	StructureTypeDescriptorSetAllocateInfo    StructureType = 34
	StructureTypeWriteDescriptorSet           StructureType = 35
	StructureTypeCommandPoolCreateInfo        StructureType = 39
	StructureTypeCommandBufferAllocateInfo    StructureType = 40
	StructureTypeCommandBufferBeginInfo       StructureType = 42
	StructureTypePresentInfo                  StructureType = 1000001001
	StructureTypeSwapchainCreateInfo          StructureType = 1000001000

	// Core 1.1/1.2 feature-query chain.
	StructureTypePhysicalDeviceVulkan12Features StructureType = 51
	StructureTypePhysicalDeviceVulkan13Features StructureType = 53

	// VK_KHR_get_physical_device_properties2, promoted to core 1.1.
	StructureTypePhysicalDeviceFeatures2   StructureType = 1000059000
	StructureTypePhysicalDeviceProperties2 StructureType = 1000059001

	// VK_EXT_descriptor_indexing, promoted to core 1.2.
	StructureTypeDescriptorSetLayoutBindingFlagsCreateInfo StructureType = 1000161000

	// VK_KHR_buffer_device_address, promoted to core 1.2.
	StructureTypeBufferDeviceAddressInfo StructureType = 1000244001

	// VK_KHR_timeline_semaphore, promoted to core 1.2.
	StructureTypeSemaphoreTypeCreateInfo     StructureType = 1000207002
	StructureTypeTimelineSemaphoreSubmitInfo StructureType = 1000207003
	StructureTypeSemaphoreWaitInfo           StructureType = 1000207004
	StructureTypeSemaphoreSignalInfo         StructureType = 1000207005

	// VK_KHR_dynamic_rendering, promoted to core 1.3.
	StructureTypeRenderingInfo                StructureType = 1000044000
	StructureTypeRenderingAttachmentInfo      StructureType = 1000044001
	StructureTypePipelineRenderingCreateInfo  StructureType = 1000044002

	// VK_KHR_synchronization2, promoted to core 1.3.
	StructureTypeMemoryBarrier2         StructureType = 1000314000
	StructureTypeBufferMemoryBarrier2   StructureType = 1000314001
	StructureTypeImageMemoryBarrier2    StructureType = 1000314002
	StructureTypeDependencyInfo         StructureType = 1000314003
	StructureTypeSubmitInfo2            StructureType = 1000314004
	StructureTypeSemaphoreSubmitInfo    StructureType = 1000314005
	StructureTypeCommandBufferSubmitInfo StructureType = 1000314006

	// VK_EXT_debug_utils.
	StructureTypeDebugUtilsLabelExt StructureType = 1000128002
)

// Format mirrors VkFormat. Values match the Vulkan registry.
type Format int32

const (
	FormatUndefined          Format = 0
	FormatR8Unorm            Format = 9
	FormatR8Uint             Format = 13
	FormatR8Sint             Format = 14
	FormatR8g8Unorm          Format = 16
	FormatR8g8b8Unorm        Format = 23
	FormatR8g8b8a8Unorm      Format = 37
	FormatR8g8b8a8Uint       Format = 41
	FormatR8g8b8a8Sint       Format = 42
	FormatR8g8b8a8Srgb       Format = 43
	FormatB8g8r8a8Unorm      Format = 44
	FormatB8g8r8a8Srgb       Format = 50
	FormatA2r10g10b10UnormPack32 Format = 58
	FormatR16Unorm           Format = 70
	FormatR16Uint            Format = 74
	FormatR16Sint            Format = 75
	FormatR16Sfloat          Format = 76
	FormatR16g16Sfloat       Format = 83
	FormatR16g16b16a16Unorm  Format = 91
	FormatR16g16b16a16Sfloat Format = 97
	FormatR32Uint            Format = 98
	FormatR32Sint            Format = 99
	FormatR32Sfloat          Format = 100
	FormatR32g32Sfloat       Format = 103
	FormatR32g32b32Sfloat    Format = 106
	FormatR32g32b32a32Uint   Format = 107
	FormatR32g32b32a32Sfloat Format = 109
	FormatR64Uint            Format = 110
	FormatR64Sint            Format = 111
	FormatR64Sfloat          Format = 112
	FormatB10g11r11UfloatPack32 Format = 122
	FormatD16Unorm           Format = 124
	FormatD32Sfloat          Format = 126
	FormatS8Uint             Format = 127
	FormatD16UnormS8Uint     Format = 128
	FormatD24UnormS8Uint     Format = 129
	FormatD32SfloatS8Uint    Format = 130
)

type ColorSpace int32

const ColorspaceSrgbNonlinear ColorSpace = 0

type ImageLayout int32

const (
	ImageLayoutUndefined                     ImageLayout = 0
	ImageLayoutGeneral                       ImageLayout = 1
	ImageLayoutColorAttachmentOptimal        ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutDepthStencilReadOnlyOptimal   ImageLayout = 4
	ImageLayoutShaderReadOnlyOptimal         ImageLayout = 5
	ImageLayoutTransferSrcOptimal            ImageLayout = 6
	ImageLayoutTransferDstOptimal            ImageLayout = 7
	ImageLayoutPresentSrcKhr                 ImageLayout = 1000001002
)

type ImageType int32

const (
	ImageType1d ImageType = 0
	ImageType2d ImageType = 1
	ImageType3d ImageType = 2
)

type ImageViewType int32

const (
	ImageViewType1d ImageViewType = 0
	ImageViewType2d ImageViewType = 1
	ImageViewType3d ImageViewType = 2
)

type ImageTiling int32

const (
	ImageTilingOptimal ImageTiling = 0
	ImageTilingLinear  ImageTiling = 1
)

type SharingMode int32

const (
	SharingModeExclusive  SharingMode = 0
	SharingModeConcurrent SharingMode = 1
)

type SampleCountFlagBits uint32

const SampleCount1Bit SampleCountFlagBits = 1

type ImageAspectFlags Flags

const (
	ImageAspectColorBit   ImageAspectFlags = 1
	ImageAspectDepthBit   ImageAspectFlags = 2
	ImageAspectStencilBit ImageAspectFlags = 4
)

type ImageUsageFlags Flags

const (
	ImageUsageTransferSrcBit            ImageUsageFlags = 0x1
	ImageUsageTransferDstBit            ImageUsageFlags = 0x2
	ImageUsageSampledBit                ImageUsageFlags = 0x4
	ImageUsageStorageBit                ImageUsageFlags = 0x8
	ImageUsageColorAttachmentBit        ImageUsageFlags = 0x10
	ImageUsageDepthStencilAttachmentBit ImageUsageFlags = 0x20
)

type BufferUsageFlags Flags

const (
	BufferUsageTransferSrcBit         BufferUsageFlags = 0x1
	BufferUsageTransferDstBit         BufferUsageFlags = 0x2
	BufferUsageUniformBufferBit       BufferUsageFlags = 0x10
	BufferUsageStorageBufferBit       BufferUsageFlags = 0x20
	BufferUsageIndexBufferBit         BufferUsageFlags = 0x40
	BufferUsageVertexBufferBit        BufferUsageFlags = 0x80
	BufferUsageIndirectBufferBit      BufferUsageFlags = 0x100
	BufferUsageShaderDeviceAddressBit BufferUsageFlags = 0x20000
)

type MemoryPropertyFlags Flags

const (
	MemoryPropertyDeviceLocalBit     MemoryPropertyFlags = 0x1
	MemoryPropertyHostVisibleBit     MemoryPropertyFlags = 0x2
	MemoryPropertyHostCoherentBit    MemoryPropertyFlags = 0x4
	MemoryPropertyHostCachedBit      MemoryPropertyFlags = 0x8
	MemoryPropertyLazilyAllocatedBit MemoryPropertyFlags = 0x10
)

type MemoryHeapFlags Flags

const MemoryHeapDeviceLocalBit MemoryHeapFlags = 0x1

type QueueFlags Flags

const (
	QueueGraphicsBit QueueFlags = 0x1
	QueueComputeBit  QueueFlags = 0x2
	QueueTransferBit QueueFlags = 0x4
)

type PhysicalDeviceType int32

const (
	PhysicalDeviceTypeOther         PhysicalDeviceType = 0
	PhysicalDeviceTypeIntegratedGpu PhysicalDeviceType = 1
	PhysicalDeviceTypeDiscreteGpu   PhysicalDeviceType = 2
)

type CommandPoolCreateFlags Flags

const CommandPoolCreateResetCommandBufferBit CommandPoolCreateFlags = 0x2

type CommandBufferLevel int32

const CommandBufferLevelPrimary CommandBufferLevel = 0

type CommandBufferUsageFlags Flags

const CommandBufferUsageOneTimeSubmitBit CommandBufferUsageFlags = 0x1

type DescriptorType int32

const (
	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeStorageBuffer        DescriptorType = 7
)

type DescriptorPoolCreateFlags Flags

const DescriptorPoolCreateUpdateAfterBindBit DescriptorPoolCreateFlags = 0x2

type DescriptorSetLayoutCreateFlags Flags

const DescriptorSetLayoutCreateUpdateAfterBindPoolBit DescriptorSetLayoutCreateFlags = 0x2

// DescriptorBindingFlags mirrors VkDescriptorBindingFlags (VK_EXT_descriptor_indexing,
// promoted to core 1.2) — the bit values the bindless descriptor cache sets
// on every binding.
type DescriptorBindingFlags Flags

const (
	DescriptorBindingUpdateAfterBindBit          DescriptorBindingFlags = 0x1
	DescriptorBindingPartiallyBoundBit           DescriptorBindingFlags = 0x4
	DescriptorBindingVariableDescriptorCountBit  DescriptorBindingFlags = 0x8
)

type Filter int32

const (
	FilterNearest Filter = 0
	FilterLinear  Filter = 1
)

type SamplerMipmapMode int32

const (
	SamplerMipmapModeNearest SamplerMipmapMode = 0
	SamplerMipmapModeLinear  SamplerMipmapMode = 1
)

type SamplerAddressMode int32

const (
	SamplerAddressModeRepeat         SamplerAddressMode = 0
	SamplerAddressModeMirroredRepeat SamplerAddressMode = 1
	SamplerAddressModeClampToEdge    SamplerAddressMode = 2
	SamplerAddressModeClampToBorder  SamplerAddressMode = 3
)

type CompareOp int32

const (
	CompareOpNever          CompareOp = 0
	CompareOpLess           CompareOp = 1
	CompareOpEqual          CompareOp = 2
	CompareOpLessOrEqual    CompareOp = 3
	CompareOpGreater        CompareOp = 4
	CompareOpNotEqual       CompareOp = 5
	CompareOpGreaterOrEqual CompareOp = 6
	CompareOpAlways         CompareOp = 7
)

type BorderColor int32

const (
	BorderColorFloatTransparentBlack BorderColor = 0
	BorderColorFloatOpaqueBlack      BorderColor = 2
	BorderColorFloatOpaqueWhite      BorderColor = 4
)

type AttachmentLoadOp int32

const (
	AttachmentLoadOpLoad     AttachmentLoadOp = 0
	AttachmentLoadOpClear    AttachmentLoadOp = 1
	AttachmentLoadOpDontCare AttachmentLoadOp = 2
)

type AttachmentStoreOp int32

const (
	AttachmentStoreOpStore    AttachmentStoreOp = 0
	AttachmentStoreOpDontCare AttachmentStoreOp = 1
)

type PresentMode int32

const (
	PresentModeImmediate              PresentMode = 0
	PresentModeMailbox                PresentMode = 1
	PresentModeFifo                   PresentMode = 2
	PresentModeFifoRelaxed            PresentMode = 3
	PresentModeSharedDemandRefresh    PresentMode = 1000111000
	PresentModeSharedContinuousRefresh PresentMode = 1000111001
)

type CompositeAlphaFlagBits uint32

const CompositeAlphaOpaqueBit CompositeAlphaFlagBits = 0x1

type PrimitiveTopology int32

const (
	PrimitiveTopologyTriangleList  PrimitiveTopology = 3
	PrimitiveTopologyTriangleStrip PrimitiveTopology = 4
	PrimitiveTopologyLineList      PrimitiveTopology = 1
	PrimitiveTopologyLineStrip     PrimitiveTopology = 2
	PrimitiveTopologyPointList     PrimitiveTopology = 0
)

type PolygonMode int32

const (
	PolygonModeFill  PolygonMode = 0
	PolygonModeLine  PolygonMode = 1
	PolygonModePoint PolygonMode = 2
)

type CullModeFlags Flags

const (
	CullModeNone         CullModeFlags = 0
	CullModeFrontBit     CullModeFlags = 0x1
	CullModeBackBit      CullModeFlags = 0x2
	CullModeFrontAndBack CullModeFlags = 0x3
)

type FrontFace int32

const (
	FrontFaceCounterClockwise FrontFace = 0
	FrontFaceClockwise        FrontFace = 1
)

type BlendFactor int32

const (
	BlendFactorZero              BlendFactor = 0
	BlendFactorOne               BlendFactor = 1
	BlendFactorSrcColor          BlendFactor = 2
	BlendFactorOneMinusSrcColor  BlendFactor = 3
	BlendFactorDstColor          BlendFactor = 4
	BlendFactorOneMinusDstColor  BlendFactor = 5
	BlendFactorSrcAlpha          BlendFactor = 6
	BlendFactorOneMinusSrcAlpha  BlendFactor = 7
	BlendFactorDstAlpha          BlendFactor = 8
	BlendFactorOneMinusDstAlpha  BlendFactor = 9
)

type BlendOp int32

const (
	BlendOpAdd             BlendOp = 0
	BlendOpSubtract        BlendOp = 1
	BlendOpReverseSubtract BlendOp = 2
	BlendOpMin             BlendOp = 3
	BlendOpMax             BlendOp = 4
)

type DynamicState int32

const (
	DynamicStateViewport DynamicState = 0
	DynamicStateScissor  DynamicState = 1
)

type ShaderStageFlagBits uint32

const (
	ShaderStageVertexBit      ShaderStageFlagBits = 0x1
	ShaderStageFragmentBit    ShaderStageFlagBits = 0x10
	ShaderStageComputeBit     ShaderStageFlagBits = 0x20
	ShaderStageRaygenBitNv    ShaderStageFlagBits = 0x100
	ShaderStageMissBitNv      ShaderStageFlagBits = 0x400
	ShaderStageClosestHitBitNv ShaderStageFlagBits = 0x200
)

type ShaderStageFlags Flags

const ShaderStageAll ShaderStageFlags = 0x7FFFFFFF

type IndexType int32

const (
	IndexTypeUint16 IndexType = 0
	IndexTypeUint32 IndexType = 1
	IndexTypeUint8  IndexType = 1000265000
)

// PipelineStageFlags mirrors the legacy 32-bit VkPipelineStageFlags.
type PipelineStageFlags uint32

const (
	PipelineStageTopOfPipeBit             PipelineStageFlags = 0x1
	PipelineStageVertexInputBit           PipelineStageFlags = 0x4
	PipelineStageVertexShaderBit          PipelineStageFlags = 0x8
	PipelineStageEarlyFragmentTestsBit    PipelineStageFlags = 0x100
	PipelineStageFragmentShaderBit        PipelineStageFlags = 0x80
	PipelineStageLateFragmentTestsBit     PipelineStageFlags = 0x200
	PipelineStageColorAttachmentOutputBit PipelineStageFlags = 0x400
	PipelineStageComputeShaderBit         PipelineStageFlags = 0x800
	PipelineStageTransferBit              PipelineStageFlags = 0x1000
	PipelineStageBottomOfPipeBit          PipelineStageFlags = 0x2000
	PipelineStageAllCommandsBit           PipelineStageFlags = 0x10000
)

// PipelineStageFlags2 mirrors VkPipelineStageFlags2 (VK_KHR_synchronization2,
// promoted to core 1.3): a 64-bit bitmask sharing the same low bit values
// as the legacy flags it supersedes.
type PipelineStageFlags2 uint64

// AccessFlags mirrors the legacy 32-bit VkAccessFlags.
type AccessFlags uint32

const (
	AccessIndirectCommandReadBit         AccessFlags = 0x1
	AccessIndexReadBit                   AccessFlags = 0x2
	AccessVertexAttributeReadBit         AccessFlags = 0x4
	AccessUniformReadBit                 AccessFlags = 0x8
	AccessShaderReadBit                  AccessFlags = 0x20
	AccessShaderWriteBit                 AccessFlags = 0x40
	AccessColorAttachmentReadBit         AccessFlags = 0x80
	AccessColorAttachmentWriteBit        AccessFlags = 0x100
	AccessDepthStencilAttachmentReadBit  AccessFlags = 0x200
	AccessDepthStencilAttachmentWriteBit AccessFlags = 0x400
	AccessTransferReadBit                AccessFlags = 0x800
	AccessTransferWriteBit               AccessFlags = 0x1000
	AccessHostReadBit                    AccessFlags = 0x2000
	AccessHostWriteBit                   AccessFlags = 0x4000
	AccessMemoryReadBit                  AccessFlags = 0x8000
	AccessMemoryWriteBit                 AccessFlags = 0x10000
)

// AccessFlags2 mirrors VkAccessFlags2, the 64-bit sync2 counterpart.
type AccessFlags2 uint64

// SemaphoreType mirrors VkSemaphoreType (VK_KHR_timeline_semaphore,
// promoted to core 1.2).
type SemaphoreType int32

const (
	SemaphoreTypeBinary   SemaphoreType = 0
	SemaphoreTypeTimeline SemaphoreType = 1
)

type PipelineBindPoint int32

const PipelineBindPointGraphics PipelineBindPoint = 0

type VertexInputRate int32

const VertexInputRateVertex VertexInputRate = 0
