package rhi

import (
	"fmt"
	"unsafe"

	vulkan "github.com/ashforge/rhi/internal/vk"
)

// MemoryBarrierInfo is a global memory barrier: no resource is named, only
// the stage/access transition.
type MemoryBarrierInfo struct {
	SrcAccess Access
	DstAccess Access
}

// BufferBarrierInfo describes a barrier (and optional queue-family
// ownership transfer) on a buffer range.
type BufferBarrierInfo struct {
	Offset    uint64
	Size      uint64
	SrcAccess Access
	DstAccess Access
	SrcQueue  DeviceQueue
	DstQueue  DeviceQueue
}

// ImageBarrierInfo describes a layout transition (and optional
// queue-family ownership transfer) on an image.
type ImageBarrierInfo struct {
	OldLayout    ImageLayout
	NewLayout    ImageLayout
	SrcAccess    Access
	DstAccess    Access
	SrcQueue     DeviceQueue
	DstQueue     DeviceQueue
	BaseMipLevel uint32
	LevelCount   uint32
}

// Viewport is a normalized device viewport.
type Viewport struct {
	X, Y, Width, Height, MinDepth, MaxDepth float32
}

// Scissor is an integer render-target rectangle.
type Scissor struct {
	X, Y          int32
	Width, Height uint32
}

// ColorAttachmentRenderInfo is one dynamic-rendering color attachment.
type ColorAttachmentRenderInfo struct {
	Image   *Image
	LoadOp  AttachmentLoadOp
	StoreOp AttachmentStoreOp
}

// DepthAttachmentRenderInfo is the optional dynamic-rendering depth
// attachment.
type DepthAttachmentRenderInfo struct {
	Image   *Image
	LoadOp  AttachmentLoadOp
	StoreOp AttachmentStoreOp
}

// RenderingInfo configures a BeginRendering/EndRendering scope.
type RenderingInfo struct {
	RenderArea       Scissor
	ColorAttachments []ColorAttachmentRenderInfo
	DepthAttachment  *DepthAttachmentRenderInfo
}

// DrawInfo parameterizes a non-indexed draw call.
type DrawInfo struct {
	VertexCount, InstanceCount, FirstVertex, FirstInstance uint32
}

// DrawIndexedInfo parameterizes an indexed draw call.
type DrawIndexedInfo struct {
	IndexCount, InstanceCount, FirstIndex uint32
	VertexOffset                         int32
	FirstInstance                        uint32
}

// CommandBuffer records commands between Begin and End. It batches pending
// pipeline barriers into three small arrays (memory, buffer, image), each
// capped at MaxCommandBufferBarrierCount; every recording verb flushes the
// pending batch before issuing its own API call.
type CommandBuffer struct {
	RefCountedResource
	DeviceResource

	handle            vulkan.CommandBuffer
	pool              *CommandPool
	slot              uint16
	queue             DeviceQueue
	recordingTimeline uint64
	state             CommandBufferState
	name              string

	pendingMemory []vulkan.MemoryBarrier2
	pendingBuffer []vulkan.BufferMemoryBarrier2
	pendingImage  []vulkan.ImageMemoryBarrier2

	boundPipeline *Pipeline
}

// isExecutable reports whether End() completed successfully since the last
// Begin(), matching Device.Submit's precondition on every command buffer it
// is given.
func (cb *CommandBuffer) isExecutable() bool { return cb.state == CommandBufferStateExecutable }

// State returns the command buffer's current lifecycle state.
func (cb *CommandBuffer) State() CommandBufferState { return cb.state }

// RecordingTimeline returns the CPU timeline value stamped at the most
// recent Begin().
func (cb *CommandBuffer) RecordingTimeline() uint64 { return cb.recordingTimeline }

// Begin advances the device's CPU timeline by one, stamps this buffer's
// recordingTimeline with the new value, and starts a one-time-submit
// recording.
func (cb *CommandBuffer) Begin() error {
	cb.recordingTimeline = cb.device.advanceCPUTimeline()
	info := vulkan.CommandBufferBeginInfo{
		SType: vulkan.StructureTypeCommandBufferBeginInfo,
		Flags: vulkan.CommandBufferUsageFlags(vulkan.CommandBufferUsageOneTimeSubmitBit),
	}
	if result := vulkan.BeginCommandBuffer(cb.handle, &info); result != vulkan.Success {
		return newError(Unsupported, "CommandBuffer.begin", fmt.Errorf("vkBeginCommandBuffer: %d", result))
	}
	cb.state = CommandBufferStateRecording
	return nil
}

// End flushes any pending barriers, ends recording, and leaves the buffer in
// the Executable state.
func (cb *CommandBuffer) End() error {
	cb.FlushBarriers()
	if result := vulkan.EndCommandBuffer(cb.handle); result != vulkan.Success {
		return newError(Unsupported, "CommandBuffer.end", fmt.Errorf("vkEndCommandBuffer: %d", result))
	}
	cb.state = CommandBufferStateExecutable
	return nil
}

// Reset resets the underlying API command buffer, but only if its recording
// timeline has already been retired by the GPU; otherwise it is a no-op,
// since resetting in-flight work would be undefined behavior.
func (cb *CommandBuffer) Reset() error {
	if cb.recordingTimeline > cb.device.GPUTimeline() {
		return nil
	}
	if result := vulkan.ResetCommandBuffer(cb.handle, 0); result != vulkan.Success {
		return newError(Unsupported, "CommandBuffer.reset", fmt.Errorf("vkResetCommandBuffer: %d", result))
	}
	cb.state = CommandBufferStateInitial
	return nil
}

// PipelineBarrierMemory queues a global memory barrier, flushing the batch
// first if the memory array is already at capacity.
func (cb *CommandBuffer) PipelineBarrierMemory(info MemoryBarrierInfo) {
	if len(cb.pendingMemory) >= MaxCommandBufferBarrierCount {
		cb.FlushBarriers()
	}
	cb.pendingMemory = append(cb.pendingMemory, vulkan.MemoryBarrier2{
		SType:     vulkan.StructureTypeMemoryBarrier2,
		SrcStageMask: vulkan.PipelineStageFlags2(vkPipelineStage2(info.SrcAccess.Stage)),
		SrcAccessMask: vulkan.AccessFlags2(vkAccessMask2(info.SrcAccess.Access)),
		DstStageMask: vulkan.PipelineStageFlags2(vkPipelineStage2(info.DstAccess.Stage)),
		DstAccessMask: vulkan.AccessFlags2(vkAccessMask2(info.DstAccess.Access)),
	})
}

// PipelineBarrierBuffer queues a buffer barrier, optionally transferring
// queue-family ownership when SrcQueue and DstQueue differ.
func (cb *CommandBuffer) PipelineBarrierBuffer(buf *Buffer, info BufferBarrierInfo) {
	if len(cb.pendingBuffer) >= MaxCommandBufferBarrierCount {
		cb.FlushBarriers()
	}
	size := info.Size
	if size == 0 {
		size = uint64(vulkan.WholeSize)
	}
	cb.pendingBuffer = append(cb.pendingBuffer, vulkan.BufferMemoryBarrier2{
		SType:               vulkan.StructureTypeBufferMemoryBarrier2,
		SrcStageMask:        vulkan.PipelineStageFlags2(vkPipelineStage2(info.SrcAccess.Stage)),
		SrcAccessMask:       vulkan.AccessFlags2(vkAccessMask2(info.SrcAccess.Access)),
		DstStageMask:        vulkan.PipelineStageFlags2(vkPipelineStage2(info.DstAccess.Stage)),
		DstAccessMask:       vulkan.AccessFlags2(vkAccessMask2(info.DstAccess.Access)),
		SrcQueueFamilyIndex: vkQueueFamily(cb.device, info.SrcQueue),
		DstQueueFamilyIndex: vkQueueFamily(cb.device, info.DstQueue),
		Buffer:              buf.handle,
		Offset:               vulkan.DeviceSize(info.Offset),
		Size:                 vulkan.DeviceSize(size),
	})
}

// PipelineBarrierImage queues an image layout transition, optionally
// transferring queue-family ownership when SrcQueue and DstQueue differ.
func (cb *CommandBuffer) PipelineBarrierImage(img *Image, info ImageBarrierInfo) {
	if len(cb.pendingImage) >= MaxCommandBufferBarrierCount {
		cb.FlushBarriers()
	}
	levelCount := info.LevelCount
	if levelCount == 0 {
		levelCount = vulkan.RemainingMipLevels
	}
	cb.pendingImage = append(cb.pendingImage, vulkan.ImageMemoryBarrier2{
		SType:               vulkan.StructureTypeImageMemoryBarrier2,
		SrcStageMask:        vulkan.PipelineStageFlags2(vkPipelineStage2(info.SrcAccess.Stage)),
		SrcAccessMask:       vulkan.AccessFlags2(vkAccessMask2(info.SrcAccess.Access)),
		DstStageMask:        vulkan.PipelineStageFlags2(vkPipelineStage2(info.DstAccess.Stage)),
		DstAccessMask:       vulkan.AccessFlags2(vkAccessMask2(info.DstAccess.Access)),
		OldLayout:           vkImageLayout(info.OldLayout),
		NewLayout:           vkImageLayout(info.NewLayout),
		SrcQueueFamilyIndex: vkQueueFamily(cb.device, info.SrcQueue),
		DstQueueFamilyIndex: vkQueueFamily(cb.device, info.DstQueue),
		Image:               img.handle,
		SubresourceRange: vulkan.ImageSubresourceRange{
			AspectMask:     vkImageAspect(img.aspect),
			BaseMipLevel:   info.BaseMipLevel,
			LevelCount:     levelCount,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
	})
	img.layout = info.NewLayout
}

// FlushBarriers issues a single vkCmdPipelineBarrier2 covering every
// currently pending memory, buffer, and image barrier, then clears the
// batch. Every recording verb calls this at entry; End calls it once more.
func (cb *CommandBuffer) FlushBarriers() {
	if len(cb.pendingMemory) == 0 && len(cb.pendingBuffer) == 0 && len(cb.pendingImage) == 0 {
		return
	}
	depInfo := vulkan.DependencyInfo{
		SType:                    vulkan.StructureTypeDependencyInfo,
		MemoryBarrierCount:       uint32(len(cb.pendingMemory)),
		BufferMemoryBarrierCount: uint32(len(cb.pendingBuffer)),
		ImageMemoryBarrierCount:  uint32(len(cb.pendingImage)),
	}
	if len(cb.pendingMemory) > 0 {
		depInfo.PMemoryBarriers = cb.pendingMemory
	}
	if len(cb.pendingBuffer) > 0 {
		depInfo.PBufferMemoryBarriers = cb.pendingBuffer
	}
	if len(cb.pendingImage) > 0 {
		depInfo.PImageMemoryBarriers = cb.pendingImage
	}
	vulkan.CmdPipelineBarrier2(cb.handle, &depInfo)
	cb.pendingMemory = cb.pendingMemory[:0]
	cb.pendingBuffer = cb.pendingBuffer[:0]
	cb.pendingImage = cb.pendingImage[:0]
}

func (cb *CommandBuffer) flushAndBeginLabelIfDebug() {}

// ClearImage records a color or depth/stencil clear on img, using clear when
// non-nil or falling back to img.Info().ClearValue.
func (cb *CommandBuffer) ClearImage(img *Image, clear *[4]float32) {
	cb.FlushBarriers()
	value := img.info.ClearValue
	if clear != nil {
		value = *clear
	}
	ranges := []vulkan.ImageSubresourceRange{{
		AspectMask:     vkImageAspect(img.aspect),
		BaseMipLevel:   0,
		LevelCount:     img.info.MipLevel,
		BaseArrayLayer: 0,
		LayerCount:     1,
	}}
	if img.aspect == ImageAspectColor {
		color := vulkan.ClearColorValue{}
		color.SetFloat32(value[:])
		vulkan.CmdClearColorImage(cb.handle, img.handle, vkImageLayout(img.layout), &color, 1, ranges)
		return
	}
	depthStencil := vulkan.ClearDepthStencilValue{Depth: value[0], Stencil: uint32(value[1])}
	vulkan.CmdClearDepthStencilImage(cb.handle, img.handle, vkImageLayout(img.layout), &depthStencil, 1, ranges)
}

// ClearBuffer zero-fills [offset, offset+size) of buf via vkCmdFillBuffer.
func (cb *CommandBuffer) ClearBuffer(buf *Buffer, offset, size uint64) {
	cb.FlushBarriers()
	if size == 0 {
		size = uint64(vulkan.WholeSize)
	}
	vulkan.CmdFillBuffer(cb.handle, buf.handle, vulkan.DeviceSize(offset), vulkan.DeviceSize(size), 0)
}

// Draw records a non-indexed draw call.
func (cb *CommandBuffer) Draw(info DrawInfo) {
	cb.FlushBarriers()
	vulkan.CmdDraw(cb.handle, info.VertexCount, info.InstanceCount, info.FirstVertex, info.FirstInstance)
}

// DrawIndexed records an indexed draw call.
func (cb *CommandBuffer) DrawIndexed(info DrawIndexedInfo) {
	cb.FlushBarriers()
	vulkan.CmdDrawIndexed(cb.handle, info.IndexCount, info.InstanceCount, info.FirstIndex, info.VertexOffset, info.FirstInstance)
}

// DrawIndirect records an indirect draw call sourcing parameters from buf.
func (cb *CommandBuffer) DrawIndirect(buf *Buffer, offset uint64, drawCount, stride uint32) {
	cb.FlushBarriers()
	vulkan.CmdDrawIndirect(cb.handle, buf.handle, vulkan.DeviceSize(offset), drawCount, stride)
}

// DrawIndirectCount records an indirect draw call whose draw count is itself
// read from a GPU buffer.
func (cb *CommandBuffer) DrawIndirectCount(buf *Buffer, offset uint64, countBuf *Buffer, countOffset uint64, maxDrawCount, stride uint32) {
	cb.FlushBarriers()
	vulkan.CmdDrawIndirectCount(cb.handle, buf.handle, vulkan.DeviceSize(offset), countBuf.handle, vulkan.DeviceSize(countOffset), maxDrawCount, stride)
}

// BindVertexBuffer binds buf at the given vertex binding slot.
func (cb *CommandBuffer) BindVertexBuffer(buf *Buffer, binding uint32, offset uint64) {
	cb.FlushBarriers()
	vulkan.CmdBindVertexBuffers(cb.handle, binding, 1, []vulkan.Buffer{buf.handle}, []vulkan.DeviceSize{vulkan.DeviceSize(offset)})
}

// BindIndexBuffer binds buf as the active index buffer.
func (cb *CommandBuffer) BindIndexBuffer(buf *Buffer, offset uint64, indexType IndexType) {
	cb.FlushBarriers()
	vulkan.CmdBindIndexBuffer(cb.handle, buf.handle, vulkan.DeviceSize(offset), vkIndexType(indexType))
}

// BindPushConstant selects the pipeline layout keyed by (size+3)&^3 and
// pushes data at offset. Both offset and size must be multiples of 4; this
// is asserted in debug, and in release both values are passed to
// vkCmdPushConstants unchanged.
func (cb *CommandBuffer) BindPushConstant(data []byte, offset, size uint32, stage ShaderStage) {
	cb.FlushBarriers()
	debugAssert(offset%4 == 0, "CommandBuffer.bind_push_constant: offset must be a multiple of 4")
	debugAssert(size%4 == 0, "CommandBuffer.bind_push_constant: size must be a multiple of 4")
	layout, err := cb.device.descriptors.pipelineLayoutFor(size)
	if err != nil {
		return
	}
	vulkan.CmdPushConstants(cb.handle, layout, vulkan.ShaderStageFlags(vkShaderStageFlags(stage)), offset, size, unsafe.Pointer(&data[0]))
}

// BindPipeline binds the bindless descriptor set at set 0, then binds
// pipeline at the bind point matching its PipelineType.
func (cb *CommandBuffer) BindPipeline(p *Pipeline) {
	cb.FlushBarriers()
	sets := []vulkan.DescriptorSet{cb.device.descriptors.set}
	vulkan.CmdBindDescriptorSets(cb.handle, p.bindPoint, p.layout, 0, 1, sets, 0, nil)
	vulkan.CmdBindPipeline(cb.handle, p.bindPoint, p.handle)
	cb.boundPipeline = p
}

// BeginRendering starts a dynamic-rendering scope with up to
// MaxCommandBufferAttachment color attachments and an optional depth
// attachment.
func (cb *CommandBuffer) BeginRendering(info RenderingInfo) {
	cb.FlushBarriers()
	colorAttachments := make([]vulkan.RenderingAttachmentInfo, len(info.ColorAttachments))
	for i, ca := range info.ColorAttachments {
		clear := vulkan.ClearValue{}
		color := vulkan.ClearColorValue{}
		color.SetFloat32(ca.Image.info.ClearValue[:])
		clear.SetColor(color)
		colorAttachments[i] = vulkan.RenderingAttachmentInfo{
			SType:       vulkan.StructureTypeRenderingAttachmentInfo,
			ImageView:   ca.Image.view,
			ImageLayout: vkImageLayout(ca.Image.layout),
			LoadOp:      vkAttachmentLoadOp(ca.LoadOp),
			StoreOp:     vkAttachmentStoreOp(ca.StoreOp),
			ClearValue:  clear,
		}
	}

	renderingInfo := vulkan.RenderingInfo{
		SType: vulkan.StructureTypeRenderingInfo,
		RenderArea: vulkan.Rect2D{
			Offset: vulkan.Offset2D{X: info.RenderArea.X, Y: info.RenderArea.Y},
			Extent: vulkan.Extent2D{Width: info.RenderArea.Width, Height: info.RenderArea.Height},
		},
		LayerCount:           1,
		ColorAttachmentCount: uint32(len(colorAttachments)),
	}
	if len(colorAttachments) > 0 {
		renderingInfo.PColorAttachments = colorAttachments
	}
	if info.DepthAttachment != nil {
		da := info.DepthAttachment
		depthClear := vulkan.ClearValue{}
		depthClear.SetDepthStencil(vulkan.ClearDepthStencilValue{Depth: da.Image.info.ClearValue[0]})
		depthInfo := vulkan.RenderingAttachmentInfo{
			SType:       vulkan.StructureTypeRenderingAttachmentInfo,
			ImageView:   da.Image.view,
			ImageLayout: vkImageLayout(da.Image.layout),
			LoadOp:      vkAttachmentLoadOp(da.LoadOp),
			StoreOp:     vkAttachmentStoreOp(da.StoreOp),
			ClearValue:  depthClear,
		}
		renderingInfo.PDepthAttachment = &depthInfo
	}

	vulkan.CmdBeginRendering(cb.handle, &renderingInfo)
}

// EndRendering ends the current dynamic-rendering scope.
func (cb *CommandBuffer) EndRendering() {
	cb.FlushBarriers()
	vulkan.CmdEndRendering(cb.handle)
}

// CopyBufferToBuffer records a single-region buffer copy.
func (cb *CommandBuffer) CopyBufferToBuffer(src, dst *Buffer, srcOffset, dstOffset, size uint64) {
	cb.FlushBarriers()
	region := vulkan.BufferCopy{SrcOffset: vulkan.DeviceSize(srcOffset), DstOffset: vulkan.DeviceSize(dstOffset), Size: vulkan.DeviceSize(size)}
	vulkan.CmdCopyBuffer(cb.handle, src.handle, dst.handle, 1, []vulkan.BufferCopy{region})
}

// CopyBufferToImage records a single-region buffer-to-image copy at the
// given mip level.
func (cb *CommandBuffer) CopyBufferToImage(src *Buffer, srcOffset uint64, dst *Image, mipLevel uint32, extent Extent3D) {
	cb.FlushBarriers()
	region := vulkan.BufferImageCopy{
		BufferOffset: vulkan.DeviceSize(srcOffset),
		ImageSubresource: vulkan.ImageSubresourceLayers{
			AspectMask:     vkImageAspect(dst.aspect),
			MipLevel:       mipLevel,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
		ImageExtent: vulkan.Extent3D{Width: extent.Width, Height: extent.Height, Depth: extent.Depth},
	}
	vulkan.CmdCopyBufferToImage(cb.handle, src.handle, dst.handle, vkImageLayout(dst.layout), 1, []vulkan.BufferImageCopy{region})
}

// CopyImageToBuffer records a single-region image-to-buffer copy.
func (cb *CommandBuffer) CopyImageToBuffer(src *Image, mipLevel uint32, extent Extent3D, dst *Buffer, dstOffset uint64) {
	cb.FlushBarriers()
	region := vulkan.BufferImageCopy{
		BufferOffset: vulkan.DeviceSize(dstOffset),
		ImageSubresource: vulkan.ImageSubresourceLayers{
			AspectMask:     vkImageAspect(src.aspect),
			MipLevel:       mipLevel,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
		ImageExtent: vulkan.Extent3D{Width: extent.Width, Height: extent.Height, Depth: extent.Depth},
	}
	vulkan.CmdCopyImageToBuffer(cb.handle, src.handle, vkImageLayout(src.layout), dst.handle, 1, []vulkan.BufferImageCopy{region})
}

// CopyImageToImage records a whole-image copy at mip level 0.
func (cb *CommandBuffer) CopyImageToImage(src, dst *Image, extent Extent3D) {
	cb.FlushBarriers()
	region := vulkan.ImageCopy{
		SrcSubresource: vulkan.ImageSubresourceLayers{AspectMask: vkImageAspect(src.aspect), LayerCount: 1},
		DstSubresource: vulkan.ImageSubresourceLayers{AspectMask: vkImageAspect(dst.aspect), LayerCount: 1},
		Extent:         vulkan.Extent3D{Width: extent.Width, Height: extent.Height, Depth: extent.Depth},
	}
	vulkan.CmdCopyImage(cb.handle, src.handle, vkImageLayout(src.layout), dst.handle, vkImageLayout(dst.layout), 1, []vulkan.ImageCopy{region})
}

// BlitImage records a filtered whole-image blit, used both for image-to-image
// mip generation by callers and for image-to-swapchain presentation blits.
func (cb *CommandBuffer) BlitImage(src, dst *Image, srcExtent, dstExtent Extent3D, filter TexelFilter) {
	cb.FlushBarriers()
	region := vulkan.ImageBlit{
		SrcSubresource: vulkan.ImageSubresourceLayers{AspectMask: vkImageAspect(src.aspect), LayerCount: 1},
		DstSubresource: vulkan.ImageSubresourceLayers{AspectMask: vkImageAspect(dst.aspect), LayerCount: 1},
	}
	region.SrcOffsets[1] = vulkan.Offset3D{X: int32(srcExtent.Width), Y: int32(srcExtent.Height), Z: 1}
	region.DstOffsets[1] = vulkan.Offset3D{X: int32(dstExtent.Width), Y: int32(dstExtent.Height), Z: 1}
	vulkan.CmdBlitImage(cb.handle, src.handle, vkImageLayout(src.layout), dst.handle, vkImageLayout(dst.layout), 1, []vulkan.ImageBlit{region}, vkFilter(filter))
}

// SetViewport sets the single dynamic viewport.
func (cb *CommandBuffer) SetViewport(v Viewport) {
	cb.FlushBarriers()
	vulkan.CmdSetViewport(cb.handle, 0, 1, []vulkan.Viewport{{
		X: v.X, Y: v.Y, Width: v.Width, Height: v.Height, MinDepth: v.MinDepth, MaxDepth: v.MaxDepth,
	}})
}

// SetScissor sets the single dynamic scissor rectangle.
func (cb *CommandBuffer) SetScissor(s Scissor) {
	cb.FlushBarriers()
	vulkan.CmdSetScissor(cb.handle, 0, 1, []vulkan.Rect2D{{
		Offset: vulkan.Offset2D{X: s.X, Y: s.Y},
		Extent: vulkan.Extent2D{Width: s.Width, Height: s.Height},
	}})
}

// BeginDebugLabel opens a named debug-utils label region, visible in
// graphics debuggers.
func (cb *CommandBuffer) BeginDebugLabel(name string, color [4]float32) {
	cb.FlushBarriers()
	label := vulkan.DebugUtilsLabel{
		SType:      vulkan.StructureTypeDebugUtilsLabelExt,
		PLabelName: name + "\x00",
		Color:      color,
	}
	vulkan.CmdBeginDebugUtilsLabel(cb.handle, &label)
}

// EndDebugLabel closes the most recently opened debug label region.
func (cb *CommandBuffer) EndDebugLabel() {
	cb.FlushBarriers()
	vulkan.CmdEndDebugUtilsLabel(cb.handle)
}

func (cb *CommandBuffer) destroyNow() {
	cb.pool.releaseSlot(cb.slot)
}
