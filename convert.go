package rhi

import vulkan "github.com/ashforge/rhi/internal/vk"

// Enum-to-Vulkan translation tables. Kept table-driven and centralized here
// rather than scattered switch statements in each resource constructor, the
// way the Vulkan backend translators this runtime is modeled on do it.

var formatTable = map[Format]vulkan.Format{
	FormatUndefined:        vulkan.FormatUndefined,
	FormatR8Unorm:          vulkan.FormatR8Unorm,
	FormatR8G8Unorm:        vulkan.FormatR8g8Unorm,
	FormatR8G8B8Unorm:      vulkan.FormatR8g8b8Unorm,
	FormatR8G8B8A8Unorm:    vulkan.FormatR8g8b8a8Unorm,
	FormatR8G8B8A8Srgb:     vulkan.FormatR8g8b8a8Srgb,
	FormatB8G8R8A8Unorm:    vulkan.FormatB8g8r8a8Unorm,
	FormatB8G8R8A8Srgb:     vulkan.FormatB8g8r8a8Srgb,
	FormatR8Uint:           vulkan.FormatR8Uint,
	FormatR8Sint:           vulkan.FormatR8Sint,
	FormatR8G8B8A8Uint:     vulkan.FormatR8g8b8a8Uint,
	FormatR8G8B8A8Sint:     vulkan.FormatR8g8b8a8Sint,
	FormatR16Unorm:         vulkan.FormatR16Unorm,
	FormatR16Uint:          vulkan.FormatR16Uint,
	FormatR16Sint:          vulkan.FormatR16Sint,
	FormatR16Sfloat:        vulkan.FormatR16Sfloat,
	FormatR16G16Sfloat:     vulkan.FormatR16g16Sfloat,
	FormatR16G16B16A16Sfloat: vulkan.FormatR16g16b16a16Sfloat,
	FormatR16G16B16A16Unorm: vulkan.FormatR16g16b16a16Unorm,
	FormatR32Uint:          vulkan.FormatR32Uint,
	FormatR32Sint:          vulkan.FormatR32Sint,
	FormatR32Sfloat:        vulkan.FormatR32Sfloat,
	FormatR32G32Sfloat:     vulkan.FormatR32g32Sfloat,
	FormatR32G32B32Sfloat:  vulkan.FormatR32g32b32Sfloat,
	FormatR32G32B32A32Sfloat: vulkan.FormatR32g32b32a32Sfloat,
	FormatR32G32B32A32Uint: vulkan.FormatR32g32b32a32Uint,
	FormatR64Uint:          vulkan.FormatR64Uint,
	FormatR64Sint:          vulkan.FormatR64Sint,
	FormatR64Sfloat:        vulkan.FormatR64Sfloat,
	FormatA2R10G10B10Unorm: vulkan.FormatA2r10g10b10UnormPack32,
	FormatB10G11R11Ufloat:  vulkan.FormatB10g11r11UfloatPack32,
	FormatD16Unorm:         vulkan.FormatD16Unorm,
	FormatD24UnormS8Uint:   vulkan.FormatD24UnormS8Uint,
	FormatD32Sfloat:        vulkan.FormatD32Sfloat,
	FormatD32SfloatS8Uint:  vulkan.FormatD32SfloatS8Uint,
	FormatS8Uint:           vulkan.FormatS8Uint,
	FormatD16UnormS8Uint:   vulkan.FormatD16UnormS8Uint,
}

// vkFormat translates a Format to its Vulkan equivalent.
func vkFormat(f Format) vulkan.Format {
	if vf, ok := formatTable[f]; ok {
		return vf
	}
	return vulkan.FormatUndefined
}

var reverseFormatTable map[vulkan.Format]Format

func init() {
	reverseFormatTable = make(map[vulkan.Format]Format, len(formatTable))
	for f, vf := range formatTable {
		if _, exists := reverseFormatTable[vf]; !exists {
			reverseFormatTable[vf] = f
		}
	}
}

// rhiFormat translates a Vulkan format back to its Format equivalent, used
// when wrapping swapchain images whose format was negotiated against the
// surface rather than requested by the caller.
func rhiFormat(vf vulkan.Format) Format {
	if f, ok := reverseFormatTable[vf]; ok {
		return f
	}
	return FormatUndefined
}

var imageLayoutTable = map[ImageLayout]vulkan.ImageLayout{
	ImageLayoutUndefined:              vulkan.ImageLayoutUndefined,
	ImageLayoutGeneral:                vulkan.ImageLayoutGeneral,
	ImageLayoutColorAttachment:        vulkan.ImageLayoutColorAttachmentOptimal,
	ImageLayoutDepthStencilAttachment: vulkan.ImageLayoutDepthStencilAttachmentOptimal,
	ImageLayoutDepthStencilReadOnly:   vulkan.ImageLayoutDepthStencilReadOnlyOptimal,
	ImageLayoutShaderReadOnly:         vulkan.ImageLayoutShaderReadOnlyOptimal,
	ImageLayoutTransferSrc:            vulkan.ImageLayoutTransferSrcOptimal,
	ImageLayoutTransferDst:            vulkan.ImageLayoutTransferDstOptimal,
	ImageLayoutPresentSrc:             vulkan.ImageLayoutPresentSrcKhr,
}

func vkImageLayout(l ImageLayout) vulkan.ImageLayout {
	if vl, ok := imageLayoutTable[l]; ok {
		return vl
	}
	return vulkan.ImageLayoutUndefined
}

func vkImageType(t ImageType) vulkan.ImageType {
	switch t {
	case ImageType1D:
		return vulkan.ImageType1d
	case ImageType3D:
		return vulkan.ImageType3d
	default:
		return vulkan.ImageType2d
	}
}

func vkImageViewType(t ImageType) vulkan.ImageViewType {
	switch t {
	case ImageType1D:
		return vulkan.ImageViewType1d
	case ImageType3D:
		return vulkan.ImageViewType3d
	default:
		return vulkan.ImageViewType2d
	}
}

func vkImageAspect(a ImageAspect) vulkan.ImageAspectFlags {
	var f vulkan.ImageAspectFlags
	if a&ImageAspectColor != 0 {
		f |= vulkan.ImageAspectFlags(vulkan.ImageAspectColorBit)
	}
	if a&ImageAspectDepth != 0 {
		f |= vulkan.ImageAspectFlags(vulkan.ImageAspectDepthBit)
	}
	if a&ImageAspectStencil != 0 {
		f |= vulkan.ImageAspectFlags(vulkan.ImageAspectStencilBit)
	}
	return f
}

func vkImageUsage(u ImageUsage) vulkan.ImageUsageFlags {
	var f vulkan.ImageUsageFlags
	if u&ImageUsageTransferSrc != 0 {
		f |= vulkan.ImageUsageFlags(vulkan.ImageUsageTransferSrcBit)
	}
	if u&ImageUsageTransferDst != 0 {
		f |= vulkan.ImageUsageFlags(vulkan.ImageUsageTransferDstBit)
	}
	if u&ImageUsageSampled != 0 {
		f |= vulkan.ImageUsageFlags(vulkan.ImageUsageSampledBit)
	}
	if u&ImageUsageStorage != 0 {
		f |= vulkan.ImageUsageFlags(vulkan.ImageUsageStorageBit)
	}
	if u&ImageUsageColorAttachment != 0 {
		f |= vulkan.ImageUsageFlags(vulkan.ImageUsageColorAttachmentBit)
	}
	if u&ImageUsageDepthStencilAttachment != 0 {
		f |= vulkan.ImageUsageFlags(vulkan.ImageUsageDepthStencilAttachmentBit)
	}
	return f
}

func vkImageTiling(t ImageTiling) vulkan.ImageTiling {
	if t == ImageTilingLinear {
		return vulkan.ImageTilingLinear
	}
	return vulkan.ImageTilingOptimal
}

func vkBufferUsage(u BufferUsage) vulkan.BufferUsageFlags {
	var f vulkan.BufferUsageFlags
	if u&BufferUsageVertex != 0 {
		f |= vulkan.BufferUsageFlags(vulkan.BufferUsageVertexBufferBit)
	}
	if u&BufferUsageIndex != 0 {
		f |= vulkan.BufferUsageFlags(vulkan.BufferUsageIndexBufferBit)
	}
	if u&BufferUsageUniform != 0 {
		f |= vulkan.BufferUsageFlags(vulkan.BufferUsageUniformBufferBit)
	}
	if u&BufferUsageStorage != 0 {
		f |= vulkan.BufferUsageFlags(vulkan.BufferUsageStorageBufferBit)
	}
	if u&BufferUsageTransferSrc != 0 {
		f |= vulkan.BufferUsageFlags(vulkan.BufferUsageTransferSrcBit)
	}
	if u&BufferUsageTransferDst != 0 {
		f |= vulkan.BufferUsageFlags(vulkan.BufferUsageTransferDstBit)
	}
	if u&BufferUsageIndirect != 0 {
		f |= vulkan.BufferUsageFlags(vulkan.BufferUsageIndirectBufferBit)
	}
	// Every buffer may additionally carry its device address into the
	// bindless BDA table.
	f |= vulkan.BufferUsageFlags(vulkan.BufferUsageShaderDeviceAddressBit)
	return f
}

func vkSharingMode(m SharingMode) vulkan.SharingMode {
	if m == SharingModeConcurrent {
		return vulkan.SharingModeConcurrent
	}
	return vulkan.SharingModeExclusive
}

func vkFilter(f TexelFilter) vulkan.Filter {
	if f == TexelFilterNearest {
		return vulkan.FilterNearest
	}
	return vulkan.FilterLinear
}

func vkMipmapMode(m MipmapMode) vulkan.SamplerMipmapMode {
	if m == MipmapModeNearest {
		return vulkan.SamplerMipmapModeNearest
	}
	return vulkan.SamplerMipmapModeLinear
}

func vkSamplerAddress(a SamplerAddress) vulkan.SamplerAddressMode {
	switch a {
	case SamplerAddressMirroredRepeat:
		return vulkan.SamplerAddressModeMirroredRepeat
	case SamplerAddressClampToEdge:
		return vulkan.SamplerAddressModeClampToEdge
	case SamplerAddressClampToBorder:
		return vulkan.SamplerAddressModeClampToBorder
	default:
		return vulkan.SamplerAddressModeRepeat
	}
}

func vkCompareOp(c CompareOp) vulkan.CompareOp {
	switch c {
	case CompareOpLess:
		return vulkan.CompareOpLess
	case CompareOpEqual:
		return vulkan.CompareOpEqual
	case CompareOpLessOrEqual:
		return vulkan.CompareOpLessOrEqual
	case CompareOpGreater:
		return vulkan.CompareOpGreater
	case CompareOpNotEqual:
		return vulkan.CompareOpNotEqual
	case CompareOpGreaterOrEqual:
		return vulkan.CompareOpGreaterOrEqual
	case CompareOpAlways:
		return vulkan.CompareOpAlways
	default:
		return vulkan.CompareOpNever
	}
}

func vkBorderColor(b BorderColor) vulkan.BorderColor {
	switch b {
	case BorderColorOpaqueBlack:
		return vulkan.BorderColorFloatOpaqueBlack
	case BorderColorOpaqueWhite:
		return vulkan.BorderColorFloatOpaqueWhite
	default:
		return vulkan.BorderColorFloatTransparentBlack
	}
}

func vkAttachmentLoadOp(op AttachmentLoadOp) vulkan.AttachmentLoadOp {
	switch op {
	case AttachmentLoadOpClear:
		return vulkan.AttachmentLoadOpClear
	case AttachmentLoadOpDontCare, AttachmentLoadOpNone:
		return vulkan.AttachmentLoadOpDontCare
	default:
		return vulkan.AttachmentLoadOpLoad
	}
}

func vkAttachmentStoreOp(op AttachmentStoreOp) vulkan.AttachmentStoreOp {
	switch op {
	case AttachmentStoreOpDontCare, AttachmentStoreOpNone:
		return vulkan.AttachmentStoreOpDontCare
	default:
		return vulkan.AttachmentStoreOpStore
	}
}

func vkPresentMode(p SwapchainPresentMode) vulkan.PresentMode {
	switch p {
	case SwapchainPresentModeImmediate:
		return vulkan.PresentModeImmediate
	case SwapchainPresentModeMailbox:
		return vulkan.PresentModeMailbox
	case SwapchainPresentModeFifoRelaxed:
		return vulkan.PresentModeFifoRelaxed
	case SwapchainPresentModeSharedDemandRefresh:
		return vulkan.PresentModeSharedDemandRefresh
	case SwapchainPresentModeSharedContinuousRefresh:
		return vulkan.PresentModeSharedContinuousRefresh
	default:
		return vulkan.PresentModeFifo
	}
}

func vkTopology(t TopologyType) vulkan.PrimitiveTopology {
	switch t {
	case TopologyTypeTriangleStrip:
		return vulkan.PrimitiveTopologyTriangleStrip
	case TopologyTypeLineList:
		return vulkan.PrimitiveTopologyLineList
	case TopologyTypeLineStrip:
		return vulkan.PrimitiveTopologyLineStrip
	case TopologyTypePointList:
		return vulkan.PrimitiveTopologyPointList
	default:
		return vulkan.PrimitiveTopologyTriangleList
	}
}

func vkPolygonMode(p PolygonMode) vulkan.PolygonMode {
	switch p {
	case PolygonModeLine:
		return vulkan.PolygonModeLine
	case PolygonModePoint:
		return vulkan.PolygonModePoint
	default:
		return vulkan.PolygonModeFill
	}
}

func vkCullMode(c CullingMode) vulkan.CullModeFlags {
	switch c {
	case CullingModeFront:
		return vulkan.CullModeFlags(vulkan.CullModeFrontBit)
	case CullingModeBack:
		return vulkan.CullModeFlags(vulkan.CullModeBackBit)
	case CullingModeFrontAndBack:
		return vulkan.CullModeFlags(vulkan.CullModeFrontAndBack)
	default:
		return vulkan.CullModeFlags(vulkan.CullModeNone)
	}
}

func vkFrontFace(f FrontFace) vulkan.FrontFace {
	if f == FrontFaceClockwise {
		return vulkan.FrontFaceClockwise
	}
	return vulkan.FrontFaceCounterClockwise
}

func vkBlendFactor(b BlendFactor) vulkan.BlendFactor {
	switch b {
	case BlendFactorOne:
		return vulkan.BlendFactorOne
	case BlendFactorSrcColor:
		return vulkan.BlendFactorSrcColor
	case BlendFactorOneMinusSrcColor:
		return vulkan.BlendFactorOneMinusSrcColor
	case BlendFactorDstColor:
		return vulkan.BlendFactorDstColor
	case BlendFactorOneMinusDstColor:
		return vulkan.BlendFactorOneMinusDstColor
	case BlendFactorSrcAlpha:
		return vulkan.BlendFactorSrcAlpha
	case BlendFactorOneMinusSrcAlpha:
		return vulkan.BlendFactorOneMinusSrcAlpha
	case BlendFactorDstAlpha:
		return vulkan.BlendFactorDstAlpha
	case BlendFactorOneMinusDstAlpha:
		return vulkan.BlendFactorOneMinusDstAlpha
	default:
		return vulkan.BlendFactorZero
	}
}

func vkBlendOp(b BlendOp) vulkan.BlendOp {
	switch b {
	case BlendOpSubtract:
		return vulkan.BlendOpSubtract
	case BlendOpReverseSubtract:
		return vulkan.BlendOpReverseSubtract
	case BlendOpMin:
		return vulkan.BlendOpMin
	case BlendOpMax:
		return vulkan.BlendOpMax
	default:
		return vulkan.BlendOpAdd
	}
}

func vkShaderStage(t ShaderType) vulkan.ShaderStageFlagBits {
	switch t {
	case ShaderTypeFragment:
		return vulkan.ShaderStageFragmentBit
	case ShaderTypeCompute:
		return vulkan.ShaderStageComputeBit
	case ShaderTypeRayGen:
		return vulkan.ShaderStageRaygenBitNv
	case ShaderTypeRayMiss:
		return vulkan.ShaderStageMissBitNv
	case ShaderTypeRayClosestHit:
		return vulkan.ShaderStageClosestHitBitNv
	default:
		return vulkan.ShaderStageVertexBit
	}
}

func vkShaderStageFlags(s ShaderStage) vulkan.ShaderStageFlags {
	if s == ShaderStageAll {
		return vulkan.ShaderStageFlags(vulkan.ShaderStageAll)
	}
	var f vulkan.ShaderStageFlags
	if s&ShaderStageVertex != 0 {
		f |= vulkan.ShaderStageFlags(vulkan.ShaderStageVertexBit)
	}
	if s&ShaderStageFragment != 0 {
		f |= vulkan.ShaderStageFlags(vulkan.ShaderStageFragmentBit)
	}
	if s&ShaderStageCompute != 0 {
		f |= vulkan.ShaderStageFlags(vulkan.ShaderStageComputeBit)
	}
	return f
}

// vkPipelineStage2 translates the PipelineStage bitmask to a
// VkPipelineStageFlags2 value for synchronization-2 barrier calls.
func vkPipelineStage2(s PipelineStage) vulkan.PipelineStageFlags {
	if s&PipelineStageAllCommands != 0 {
		return vulkan.PipelineStageFlags(vulkan.PipelineStageAllCommandsBit)
	}
	var f vulkan.PipelineStageFlags
	if s&PipelineStageTopOfPipe != 0 {
		f |= vulkan.PipelineStageFlags(vulkan.PipelineStageTopOfPipeBit)
	}
	if s&PipelineStageBottomOfPipe != 0 {
		f |= vulkan.PipelineStageFlags(vulkan.PipelineStageBottomOfPipeBit)
	}
	if s&PipelineStageTransfer != 0 {
		f |= vulkan.PipelineStageFlags(vulkan.PipelineStageTransferBit)
	}
	if s&PipelineStageVertexInput != 0 {
		f |= vulkan.PipelineStageFlags(vulkan.PipelineStageVertexInputBit)
	}
	if s&PipelineStageVertexShader != 0 {
		f |= vulkan.PipelineStageFlags(vulkan.PipelineStageVertexShaderBit)
	}
	if s&PipelineStageFragmentShader != 0 {
		f |= vulkan.PipelineStageFlags(vulkan.PipelineStageFragmentShaderBit)
	}
	if s&PipelineStageEarlyFragmentTests != 0 {
		f |= vulkan.PipelineStageFlags(vulkan.PipelineStageEarlyFragmentTestsBit)
	}
	if s&PipelineStageLateFragmentTests != 0 {
		f |= vulkan.PipelineStageFlags(vulkan.PipelineStageLateFragmentTestsBit)
	}
	if s&PipelineStageColorAttachmentOutput != 0 {
		f |= vulkan.PipelineStageFlags(vulkan.PipelineStageColorAttachmentOutputBit)
	}
	if s&PipelineStageComputeShader != 0 {
		f |= vulkan.PipelineStageFlags(vulkan.PipelineStageComputeShaderBit)
	}
	return f
}

// vkAccessMask2 translates the MemoryAccessType bitmask to a
// VkAccessFlags2 value.
func vkAccessMask2(a MemoryAccessType) vulkan.AccessFlags {
	var f vulkan.AccessFlags
	if a&MemoryAccessIndirectCommandRead != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessIndirectCommandReadBit)
	}
	if a&MemoryAccessIndexRead != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessIndexReadBit)
	}
	if a&MemoryAccessVertexAttributeRead != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessVertexAttributeReadBit)
	}
	if a&MemoryAccessUniformRead != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessUniformReadBit)
	}
	if a&MemoryAccessShaderRead != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessShaderReadBit)
	}
	if a&MemoryAccessShaderWrite != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessShaderWriteBit)
	}
	if a&MemoryAccessColorAttachmentRead != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessColorAttachmentReadBit)
	}
	if a&MemoryAccessColorAttachmentWrite != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessColorAttachmentWriteBit)
	}
	if a&MemoryAccessDepthStencilAttachmentRead != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessDepthStencilAttachmentReadBit)
	}
	if a&MemoryAccessDepthStencilAttachmentWrite != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessDepthStencilAttachmentWriteBit)
	}
	if a&MemoryAccessTransferRead != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessTransferReadBit)
	}
	if a&MemoryAccessTransferWrite != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessTransferWriteBit)
	}
	if a&MemoryAccessHostRead != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessHostReadBit)
	}
	if a&MemoryAccessHostWrite != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessHostWriteBit)
	}
	if a&MemoryAccessMemoryRead != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessMemoryReadBit)
	}
	if a&MemoryAccessMemoryWrite != 0 {
		f |= vulkan.AccessFlags(vulkan.AccessMemoryWriteBit)
	}
	return f
}

func vkIndexType(t IndexType) vulkan.IndexType {
	switch t {
	case IndexTypeUint8:
		return vulkan.IndexTypeUint8
	case IndexTypeUint32:
		return vulkan.IndexTypeUint32
	default:
		return vulkan.IndexTypeUint16
	}
}

// vkQueueFamily translates a DeviceQueue to the device's corresponding
// queue-family index, or vulkan.QueueFamilyIgnored for DeviceQueueNone.
func vkQueueFamily(d *Device, q DeviceQueue) uint32 {
	switch q {
	case DeviceQueueMain:
		return d.queues.mainFamily
	case DeviceQueueTransfer:
		return d.queues.transferFamily
	case DeviceQueueCompute:
		return d.queues.computeFamily
	default:
		return vulkan.QueueFamilyIgnored
	}
}
