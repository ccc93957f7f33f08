package vk

import "unsafe"

// Structs below mirror the xlab-generated binding's surface: PNext is a
// bare unsafe.Pointer (callers build their own chains), Go string fields
// stand in for C char* members, and Go slices stand in for C
// array-of-T/array-of-pointer members. Deref is a no-op retained only so
// call sites that dereference a generated binding's internal C-aligned
// copy compile unchanged.

type ApplicationInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	PApplicationName   string
	ApplicationVersion uint32
	PEngineName        string
	EngineVersion      uint32
	ApiVersion         uint32
}

type InstanceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	PApplicationInfo        *ApplicationInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     []string
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames []string
}

type PhysicalDeviceLimits struct {
	MaxPushConstantsSize              uint32
	MaxMemoryAllocationCount          uint32
	MaxBoundDescriptorSets            uint32
	MaxPerStageDescriptorSampledImages uint32
	MaxImageDimension2D               uint32
	MaxImageDimension3D               uint32
	MinUniformBufferOffsetAlignment   uint64
	MinStorageBufferOffsetAlignment   uint64
}

func (*PhysicalDeviceLimits) Deref() {}

type PhysicalDeviceSparseProperties struct{}

type PhysicalDeviceProperties struct {
	ApiVersion       uint32
	DriverVersion    uint32
	VendorID         uint32
	DeviceID         uint32
	DeviceType       PhysicalDeviceType
	DeviceName       [256]byte
	PipelineCacheUUID [16]byte
	Limits           PhysicalDeviceLimits
	SparseProperties PhysicalDeviceSparseProperties
}

func (*PhysicalDeviceProperties) Deref() {}

type PhysicalDeviceFeatures struct {
	SamplerAnisotropy Bool32
}

type PhysicalDeviceFeatures2 struct {
	SType    StructureType
	PNext    unsafe.Pointer
	Features PhysicalDeviceFeatures
}

type PhysicalDeviceVulkan12Features struct {
	SType                                      StructureType
	PNext                                      unsafe.Pointer
	DescriptorIndexing                         Bool32
	ShaderSampledImageArrayNonUniformIndexing  Bool32
	DescriptorBindingPartiallyBound            Bool32
	DescriptorBindingUpdateUnusedWhilePending  Bool32
	DescriptorBindingVariableDescriptorCount   Bool32
	RuntimeDescriptorArray                     Bool32
	TimelineSemaphore                          Bool32
	BufferDeviceAddress                        Bool32
}

type PhysicalDeviceVulkan13Features struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Synchronization2 Bool32
	DynamicRendering Bool32
}

type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

func (*MemoryType) Deref() {}

type MemoryHeap struct {
	Size  DeviceSize
	Flags MemoryHeapFlags
}

func (*MemoryHeap) Deref() {}

type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [32]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [16]MemoryHeap
}

func (*PhysicalDeviceMemoryProperties) Deref() {}

type QueueFamilyProperties struct {
	QueueFlags         QueueFlags
	QueueCount         uint32
	TimestampValidBits uint32
}

func (*QueueFamilyProperties) Deref() {}

type ExtensionProperties struct {
	ExtensionName [256]byte
	SpecVersion   uint32
}

func (*ExtensionProperties) Deref() {}

type DeviceQueueCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	QueueFamilyIndex uint32
	QueueCount       uint32
	PQueuePriorities []float32
}

type DeviceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       []DeviceQueueCreateInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     []string
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames []string
	PEnabledFeatures        *PhysicalDeviceFeatures
}

type MemoryAllocateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	AllocationSize  DeviceSize
	MemoryTypeIndex uint32
}

type MemoryRequirements struct {
	Size           DeviceSize
	Alignment      DeviceSize
	MemoryTypeBits uint32
}

func (*MemoryRequirements) Deref() {}

type BufferCreateInfo struct {
	SType       StructureType
	PNext       unsafe.Pointer
	Flags       Flags
	Size        DeviceSize
	Usage       BufferUsageFlags
	SharingMode SharingMode
}

type BufferDeviceAddressInfo struct {
	SType  StructureType
	PNext  unsafe.Pointer
	Buffer Buffer
}

type Extent2D struct{ Width, Height uint32 }
type Extent3D struct{ Width, Height, Depth uint32 }
type Offset2D struct{ X, Y int32 }
type Offset3D struct{ X, Y, Z int32 }
type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

type ImageSubresourceRange struct {
	AspectMask     ImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageSubresourceLayers struct {
	AspectMask     ImageAspectFlags
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	Flags         Flags
	ImageType     ImageType
	Format        Format
	Extent        Extent3D
	MipLevels     uint32
	ArrayLayers   uint32
	Samples       SampleCountFlagBits
	Tiling        ImageTiling
	Usage         ImageUsageFlags
	SharingMode   SharingMode
	InitialLayout ImageLayout
}

type ImageViewCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Image            Image
	ViewType         ImageViewType
	Format           Format
	SubresourceRange ImageSubresourceRange
}

type SamplerCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	MagFilter               Filter
	MinFilter               Filter
	MipmapMode              SamplerMipmapMode
	AddressModeU            SamplerAddressMode
	AddressModeV            SamplerAddressMode
	AddressModeW            SamplerAddressMode
	MipLodBias              float32
	AnisotropyEnable        Bool32
	MaxAnisotropy           float32
	CompareEnable           Bool32
	CompareOp               CompareOp
	MinLod                  float32
	MaxLod                  float32
	BorderColor             BorderColor
	UnnormalizedCoordinates Bool32
}

type ShaderModuleCreateInfo struct {
	SType    StructureType
	PNext    unsafe.Pointer
	CodeSize uint
	PCode    []uint32
}

type PipelineShaderStageCreateInfo struct {
	SType  StructureType
	PNext  unsafe.Pointer
	Stage  ShaderStageFlagBits
	Module ShaderModule
	PName  string
}

type VertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate VertexInputRate
}

type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

type PipelineVertexInputStateCreateInfo struct {
	SType                           StructureType
	PNext                           unsafe.Pointer
	VertexBindingDescriptionCount   uint32
	PVertexBindingDescriptions      []VertexInputBindingDescription
	VertexAttributeDescriptionCount uint32
	PVertexAttributeDescriptions    []VertexInputAttributeDescription
}

type PipelineInputAssemblyStateCreateInfo struct {
	SType                  StructureType
	PNext                  unsafe.Pointer
	Topology               PrimitiveTopology
	PrimitiveRestartEnable Bool32
}

type Viewport struct {
	X, Y, Width, Height, MinDepth, MaxDepth float32
}

type PipelineViewportStateCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	ViewportCount uint32
	PViewports    []Viewport
	ScissorCount  uint32
	PScissors     []Rect2D
}

type PipelineRasterizationStateCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	DepthClampEnable        Bool32
	RasterizerDiscardEnable Bool32
	PolygonMode             PolygonMode
	CullMode                CullModeFlags
	FrontFace               FrontFace
	DepthBiasEnable         Bool32
	LineWidth               float32
}

type PipelineMultisampleStateCreateInfo struct {
	SType                StructureType
	PNext                unsafe.Pointer
	RasterizationSamples SampleCountFlagBits
	SampleShadingEnable  Bool32
}

type StencilOpState struct {
	FailOp      uint32
	PassOp      uint32
	DepthFailOp uint32
	CompareOp   CompareOp
}

type PipelineDepthStencilStateCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	DepthTestEnable       Bool32
	DepthWriteEnable      Bool32
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable Bool32
	StencilTestEnable     Bool32
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

type PipelineColorBlendAttachmentState struct {
	BlendEnable         Bool32
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	ColorWriteMask      Flags
}

type PipelineColorBlendStateCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	LogicOpEnable   Bool32
	AttachmentCount uint32
	PAttachments    []PipelineColorBlendAttachmentState
}

type PipelineDynamicStateCreateInfo struct {
	SType             StructureType
	PNext             unsafe.Pointer
	DynamicStateCount uint32
	PDynamicStates    []DynamicState
}

type PipelineRenderingCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	ColorAttachmentCount    uint32
	PColorAttachmentFormats []Format
	DepthAttachmentFormat   Format
}

type GraphicsPipelineCreateInfo struct {
	SType               StructureType
	PNext               unsafe.Pointer
	StageCount          uint32
	PStages             []PipelineShaderStageCreateInfo
	PVertexInputState   *PipelineVertexInputStateCreateInfo
	PInputAssemblyState *PipelineInputAssemblyStateCreateInfo
	PViewportState      *PipelineViewportStateCreateInfo
	PRasterizationState *PipelineRasterizationStateCreateInfo
	PMultisampleState   *PipelineMultisampleStateCreateInfo
	PDepthStencilState  *PipelineDepthStencilStateCreateInfo
	PColorBlendState    *PipelineColorBlendStateCreateInfo
	PDynamicState       *PipelineDynamicStateCreateInfo
	Layout              PipelineLayout
	RenderPass          uintptr
	Subpass             uint32
	BasePipelineHandle  Pipeline
	BasePipelineIndex   int32
}

type PushConstantRange struct {
	StageFlags ShaderStageFlags
	Offset     uint32
	Size       uint32
}

type PipelineLayoutCreateInfo struct {
	SType                  StructureType
	PNext                  unsafe.Pointer
	SetLayoutCount         uint32
	PSetLayouts            []DescriptorSetLayout
	PushConstantRangeCount uint32
	PPushConstantRanges    []PushConstantRange
}

type DescriptorPoolSize struct {
	Type            DescriptorType
	DescriptorCount uint32
}

type DescriptorPoolCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	Flags         DescriptorPoolCreateFlags
	MaxSets       uint32
	PoolSizeCount uint32
	PPoolSizes    []DescriptorPoolSize
}

type DescriptorSetLayoutBinding struct {
	Binding            uint32
	DescriptorType     DescriptorType
	DescriptorCount    uint32
	StageFlags         ShaderStageFlags
	PImmutableSamplers []Sampler
}

type DescriptorSetLayoutBindingFlagsCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	BindingCount  uint32
	PBindingFlags []DescriptorBindingFlags
}

type DescriptorSetLayoutCreateInfo struct {
	SType        StructureType
	PNext        unsafe.Pointer
	Flags        DescriptorSetLayoutCreateFlags
	BindingCount uint32
	PBindings    []DescriptorSetLayoutBinding
}

type DescriptorSetAllocateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	DescriptorPool     DescriptorPool
	DescriptorSetCount uint32
	PSetLayouts        []DescriptorSetLayout
}

type DescriptorBufferInfo struct {
	Buffer Buffer
	Offset DeviceSize
	Range  DeviceSize
}

type DescriptorImageInfo struct {
	Sampler     Sampler
	ImageView   ImageView
	ImageLayout ImageLayout
}

type WriteDescriptorSet struct {
	SType           StructureType
	PNext           unsafe.Pointer
	DstSet          DescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
	DescriptorType  DescriptorType
	PImageInfo      []DescriptorImageInfo
	PBufferInfo     []DescriptorBufferInfo
}

type CommandPoolCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            CommandPoolCreateFlags
	QueueFamilyIndex uint32
}

type CommandBufferAllocateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	CommandPool        CommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

type CommandBufferBeginInfo struct {
	SType StructureType
	PNext unsafe.Pointer
	Flags CommandBufferUsageFlags
}

type SemaphoreCreateInfo struct {
	SType StructureType
	PNext unsafe.Pointer
}

type SemaphoreTypeCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	SemaphoreType SemaphoreType
	InitialValue  uint64
}

type SemaphoreSignalInfo struct {
	SType     StructureType
	PNext     unsafe.Pointer
	Semaphore Semaphore
	Value     uint64
}

type SemaphoreWaitInfo struct {
	SType          StructureType
	PNext          unsafe.Pointer
	Flags          Flags
	SemaphoreCount uint32
	PSemaphores    []Semaphore
	PValues        []uint64
}

type SemaphoreSubmitInfo struct {
	SType       StructureType
	PNext       unsafe.Pointer
	Semaphore   Semaphore
	Value       uint64
	StageMask   PipelineStageFlags2
	DeviceIndex uint32
}

type CommandBufferSubmitInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	CommandBuffer CommandBuffer
	DeviceMask    uint32
}

type SubmitInfo2 struct {
	SType                        StructureType
	PNext                        unsafe.Pointer
	Flags                        Flags
	WaitSemaphoreInfoCount       uint32
	PWaitSemaphoreInfos          []SemaphoreSubmitInfo
	CommandBufferInfoCount       uint32
	PCommandBufferInfos          []CommandBufferSubmitInfo
	SignalSemaphoreInfoCount     uint32
	PSignalSemaphoreInfos        []SemaphoreSubmitInfo
}

type MemoryBarrier2 struct {
	SType         StructureType
	PNext         unsafe.Pointer
	SrcStageMask  PipelineStageFlags2
	SrcAccessMask AccessFlags2
	DstStageMask  PipelineStageFlags2
	DstAccessMask AccessFlags2
}

type BufferMemoryBarrier2 struct {
	SType               StructureType
	PNext               unsafe.Pointer
	SrcStageMask        PipelineStageFlags2
	SrcAccessMask       AccessFlags2
	DstStageMask        PipelineStageFlags2
	DstAccessMask       AccessFlags2
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Buffer              Buffer
	Offset              DeviceSize
	Size                DeviceSize
}

type ImageMemoryBarrier2 struct {
	SType               StructureType
	PNext               unsafe.Pointer
	SrcStageMask        PipelineStageFlags2
	SrcAccessMask       AccessFlags2
	DstStageMask        PipelineStageFlags2
	DstAccessMask       AccessFlags2
	OldLayout           ImageLayout
	NewLayout           ImageLayout
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               Image
	SubresourceRange    ImageSubresourceRange
}

type DependencyInfo struct {
	SType                     StructureType
	PNext                     unsafe.Pointer
	DependencyFlags           Flags
	MemoryBarrierCount        uint32
	PMemoryBarriers           []MemoryBarrier2
	BufferMemoryBarrierCount  uint32
	PBufferMemoryBarriers     []BufferMemoryBarrier2
	ImageMemoryBarrierCount   uint32
	PImageMemoryBarriers      []ImageMemoryBarrier2
}

type ClearColorValue struct {
	raw [16]byte
}

func (c *ClearColorValue) SetFloat32(v []float32) {
	for i := 0; i < 4 && i < len(v); i++ {
		*(*float32)(unsafe.Pointer(&c.raw[i*4])) = v[i]
	}
}

type ClearDepthStencilValue struct {
	Depth   float32
	Stencil uint32
}

type ClearValue struct {
	raw [16]byte
}

func (c *ClearValue) SetColor(v ClearColorValue) { c.raw = v.raw }

func (c *ClearValue) SetDepthStencil(v ClearDepthStencilValue) {
	*(*float32)(unsafe.Pointer(&c.raw[0])) = v.Depth
	*(*uint32)(unsafe.Pointer(&c.raw[4])) = v.Stencil
}

type RenderingAttachmentInfo struct {
	SType       StructureType
	PNext       unsafe.Pointer
	ImageView   ImageView
	ImageLayout ImageLayout
	LoadOp      AttachmentLoadOp
	StoreOp     AttachmentStoreOp
	ClearValue  ClearValue
}

type RenderingInfo struct {
	SType                StructureType
	PNext                unsafe.Pointer
	Flags                Flags
	RenderArea           Rect2D
	LayerCount           uint32
	ViewMask             uint32
	ColorAttachmentCount uint32
	PColorAttachments    []RenderingAttachmentInfo
	PDepthAttachment     *RenderingAttachmentInfo
	PStencilAttachment   *RenderingAttachmentInfo
}

type BufferCopy struct {
	SrcOffset DeviceSize
	DstOffset DeviceSize
	Size      DeviceSize
}

type BufferImageCopy struct {
	BufferOffset      DeviceSize
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       Offset3D
	ImageExtent       Extent3D
}

type ImageCopy struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffset      Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffset      Offset3D
	Extent         Extent3D
}

type ImageBlit struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffsets     [2]Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffsets     [2]Offset3D
}

type SwapchainCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Surface          Surface
	MinImageCount    uint32
	ImageFormat      Format
	ImageColorSpace  ColorSpace
	ImageExtent      Extent2D
	ImageArrayLayers uint32
	ImageUsage       ImageUsageFlags
	ImageSharingMode SharingMode
	PreTransform     SurfaceTransformFlagBits
	CompositeAlpha   CompositeAlphaFlagBits
	PresentMode      PresentMode
	Clipped          Bool32
	OldSwapchain     Swapchain
}

type SurfaceTransformFlagBits uint32

const SurfaceTransformIdentityBit SurfaceTransformFlagBits = 0x1

type SurfaceCapabilities struct {
	MinImageCount           uint32
	MaxImageCount           uint32
	CurrentExtent           Extent2D
	MinImageExtent          Extent2D
	MaxImageExtent          Extent2D
	MaxImageArrayLayers     uint32
	SupportedTransforms     SurfaceTransformFlagBits
	CurrentTransform        SurfaceTransformFlagBits
	SupportedCompositeAlpha CompositeAlphaFlagBits
	SupportedUsageFlags     ImageUsageFlags
}

func (*SurfaceCapabilities) Deref() {}

type SurfaceFormat struct {
	Format     Format
	ColorSpace ColorSpace
}

func (*SurfaceFormat) Deref() {}

type PresentInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	WaitSemaphoreCount uint32
	PWaitSemaphores    []Semaphore
	SwapchainCount     uint32
	PSwapchains        []Swapchain
	PImageIndices      []uint32
	PResults           []Result
}

type DebugUtilsLabel struct {
	SType      StructureType
	PNext      unsafe.Pointer
	PLabelName string
	Color      [4]float32
}

// AllocationCallbacks is never populated by this runtime; every call site
// passes nil, matching the driver's default-allocator behavior.
type AllocationCallbacks struct{}
