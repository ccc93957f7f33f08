package rhi

import (
	"fmt"
	"unsafe"

	vulkan "github.com/ashforge/rhi/internal/vk"
)

// descriptorCache is the device's single process-wide bindless descriptor
// set: one pool sized by the device config's maxima, one set layout with
// fixed bindings 0..4, one set allocated up front and bound implicitly
// whenever a pipeline is bound. Pipeline layouts are keyed by push-constant
// size class.
type descriptorCache struct {
	device *Device

	pool   vulkan.DescriptorPool
	layout vulkan.DescriptorSetLayout
	set    vulkan.DescriptorSet

	// bdaBuffer backs the buffer-device-address table: maxBuffers * uint64
	// of host-visible storage. Each bound buffer writes its device address
	// into the slot referenced by the caller's index.
	bdaBuffer *Buffer
	bdaSlots  []uint64

	pipelineLayouts map[uint32]vulkan.PipelineLayout
}

func newDescriptorCache(d *Device, cfg DeviceConfig) (*descriptorCache, error) {
	poolSizes := []vulkan.DescriptorPoolSize{
		{Type: vulkan.DescriptorTypeStorageImage, DescriptorCount: cfg.MaxImages},
		{Type: vulkan.DescriptorTypeCombinedImageSampler, DescriptorCount: cfg.MaxImages},
		{Type: vulkan.DescriptorTypeSampledImage, DescriptorCount: cfg.MaxImages},
		{Type: vulkan.DescriptorTypeSampler, DescriptorCount: cfg.MaxSamplers},
	}
	poolInfo := vulkan.DescriptorPoolCreateInfo{
		SType:         vulkan.StructureTypeDescriptorPoolCreateInfo,
		Flags:         vulkan.DescriptorPoolCreateFlags(vulkan.DescriptorPoolCreateUpdateAfterBindBit),
		MaxSets:       1,
		PoolSizeCount: uint32(len(poolSizes)),
		PPoolSizes:    poolSizes,
	}
	var pool vulkan.DescriptorPool
	if result := vulkan.CreateDescriptorPool(d.handle, &poolInfo, nil, &pool); result != vulkan.Success {
		return nil, fmt.Errorf("vkCreateDescriptorPool: %d", result)
	}

	bindingFlag := vulkan.DescriptorBindingFlags(
		vulkan.DescriptorBindingUpdateAfterBindBit |
			vulkan.DescriptorBindingPartiallyBoundBit |
			vulkan.DescriptorBindingVariableDescriptorCountBit,
	)
	bindingFlags := []vulkan.DescriptorBindingFlags{bindingFlag, bindingFlag, bindingFlag, bindingFlag, bindingFlag}
	bindingFlagsInfo := vulkan.DescriptorSetLayoutBindingFlagsCreateInfo{
		SType:         vulkan.StructureTypeDescriptorSetLayoutBindingFlagsCreateInfo,
		BindingCount:  uint32(len(bindingFlags)),
		PBindingFlags: bindingFlags,
	}

	bindings := []vulkan.DescriptorSetLayoutBinding{
		{Binding: BindingStorageImage, DescriptorType: vulkan.DescriptorTypeStorageImage, DescriptorCount: cfg.MaxImages, StageFlags: vulkan.ShaderStageFlags(vulkan.ShaderStageAll)},
		{Binding: BindingCombinedImageSampler, DescriptorType: vulkan.DescriptorTypeCombinedImageSampler, DescriptorCount: cfg.MaxImages, StageFlags: vulkan.ShaderStageFlags(vulkan.ShaderStageAll)},
		{Binding: BindingSampledImage, DescriptorType: vulkan.DescriptorTypeSampledImage, DescriptorCount: cfg.MaxImages, StageFlags: vulkan.ShaderStageFlags(vulkan.ShaderStageAll)},
		{Binding: BindingSampler, DescriptorType: vulkan.DescriptorTypeSampler, DescriptorCount: cfg.MaxSamplers, StageFlags: vulkan.ShaderStageFlags(vulkan.ShaderStageAll)},
		{Binding: BindingBufferDeviceAddressTable, DescriptorType: vulkan.DescriptorTypeStorageBuffer, DescriptorCount: 1, StageFlags: vulkan.ShaderStageFlags(vulkan.ShaderStageAll)},
	}
	layoutInfo := vulkan.DescriptorSetLayoutCreateInfo{
		SType:        vulkan.StructureTypeDescriptorSetLayoutCreateInfo,
		PNext:        unsafe.Pointer(&bindingFlagsInfo),
		Flags:        vulkan.DescriptorSetLayoutCreateFlags(vulkan.DescriptorSetLayoutCreateUpdateAfterBindPoolBit),
		BindingCount: uint32(len(bindings)),
		PBindings:    bindings,
	}
	var layout vulkan.DescriptorSetLayout
	if result := vulkan.CreateDescriptorSetLayout(d.handle, &layoutInfo, nil, &layout); result != vulkan.Success {
		vulkan.DestroyDescriptorPool(d.handle, pool, nil)
		return nil, fmt.Errorf("vkCreateDescriptorSetLayout: %d", result)
	}

	allocInfo := vulkan.DescriptorSetAllocateInfo{
		SType:              vulkan.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     pool,
		DescriptorSetCount: 1,
		PSetLayouts:        []vulkan.DescriptorSetLayout{layout},
	}
	sets := make([]vulkan.DescriptorSet, 1)
	if result := vulkan.AllocateDescriptorSets(d.handle, &allocInfo, &sets[0]); result != vulkan.Success {
		vulkan.DestroyDescriptorSetLayout(d.handle, layout, nil)
		vulkan.DestroyDescriptorPool(d.handle, pool, nil)
		return nil, fmt.Errorf("vkAllocateDescriptorSets: %d", result)
	}

	c := &descriptorCache{
		device:          d,
		pool:            pool,
		layout:          layout,
		set:             sets[0],
		bdaSlots:        make([]uint64, cfg.MaxBuffers),
		pipelineLayouts: make(map[uint32]vulkan.PipelineLayout),
	}

	bdaBuffer, err := newBufferInternal(d, BufferInfo{
		Name:        "descriptorCache.bufferDeviceAddressTable",
		Size:        uint64(cfg.MaxBuffers) * 8,
		BufferUsage: BufferUsageStorage | BufferUsageTransferDst,
		MemoryUsage: MemoryUsageHostAccessible | MemoryUsageHostWritable,
	})
	if err != nil {
		c.destroy()
		return nil, err
	}
	c.bdaBuffer = bdaBuffer
	c.writeBDABinding()

	return c, nil
}

func (c *descriptorCache) writeBDABinding() {
	bufferInfo := vulkan.DescriptorBufferInfo{
		Buffer: c.bdaBuffer.handle,
		Offset: 0,
		Range:  vulkan.DeviceSize(vulkan.WholeSize),
	}
	write := vulkan.WriteDescriptorSet{
		SType:           vulkan.StructureTypeWriteDescriptorSet,
		DstSet:          c.set,
		DstBinding:      BindingBufferDeviceAddressTable,
		DescriptorCount: 1,
		DescriptorType:  vulkan.DescriptorTypeStorageBuffer,
		PBufferInfo:     []vulkan.DescriptorBufferInfo{bufferInfo},
	}
	vulkan.UpdateDescriptorSets(c.device.handle, 1, []vulkan.WriteDescriptorSet{write}, 0, nil)
}

// writeBufferAddress writes addr into the BDA table slot at index %
// len(bdaSlots) and mirrors it host-side for callers that want to read it
// back without a device round-trip.
func (c *descriptorCache) writeBufferAddress(index uint32, addr uint64) {
	slot := int(index) % len(c.bdaSlots)
	c.bdaSlots[slot] = addr
	if c.bdaBuffer.mappedPtr != 0 {
		dst := (*uint64)(unsafe.Pointer(c.bdaBuffer.mappedPtr + uintptr(slot)*8))
		*dst = addr
	}
}

// writeImageBinding writes a sampled-image/storage-image/combined-sampler
// descriptor at the given binding and index.
func (c *descriptorCache) writeImageBinding(binding uint32, index uint32, view vulkan.ImageView, sampler vulkan.Sampler, layout vulkan.ImageLayout, descriptorType vulkan.DescriptorType) {
	imageInfo := vulkan.DescriptorImageInfo{
		ImageView:   view,
		Sampler:     sampler,
		ImageLayout: layout,
	}
	write := vulkan.WriteDescriptorSet{
		SType:           vulkan.StructureTypeWriteDescriptorSet,
		DstSet:          c.set,
		DstBinding:      binding,
		DstArrayElement: index,
		DescriptorCount: 1,
		DescriptorType:  descriptorType,
		PImageInfo:      []vulkan.DescriptorImageInfo{imageInfo},
	}
	vulkan.UpdateDescriptorSets(c.device.handle, 1, []vulkan.WriteDescriptorSet{write}, 0, nil)
}

func (c *descriptorCache) writeSamplerBinding(index uint32, sampler vulkan.Sampler) {
	imageInfo := vulkan.DescriptorImageInfo{Sampler: sampler}
	write := vulkan.WriteDescriptorSet{
		SType:           vulkan.StructureTypeWriteDescriptorSet,
		DstSet:          c.set,
		DstBinding:      BindingSampler,
		DstArrayElement: index,
		DescriptorCount: 1,
		DescriptorType:  vulkan.DescriptorTypeSampler,
		PImageInfo:      []vulkan.DescriptorImageInfo{imageInfo},
	}
	vulkan.UpdateDescriptorSets(c.device.handle, 1, []vulkan.WriteDescriptorSet{write}, 0, nil)
}

// pipelineLayoutFor returns the pipeline layout keyed by pushConstantSize
// rounded up to a multiple of 4 and capped by the device's configured
// maximum, creating it on first use.
func (c *descriptorCache) pipelineLayoutFor(pushConstantSize uint32) (vulkan.PipelineLayout, error) {
	size := (pushConstantSize + 3) &^ 3
	if size > c.device.info.MaxPushConstants {
		size = c.device.info.MaxPushConstants
	}
	if layout, ok := c.pipelineLayouts[size]; ok {
		return layout, nil
	}

	layoutInfo := vulkan.PipelineLayoutCreateInfo{
		SType:                  vulkan.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount:         1,
		PSetLayouts:            []vulkan.DescriptorSetLayout{c.layout},
	}
	if size > 0 {
		layoutInfo.PushConstantRangeCount = 1
		layoutInfo.PPushConstantRanges = []vulkan.PushConstantRange{{
			StageFlags: vulkan.ShaderStageFlags(vulkan.ShaderStageAll),
			Offset:     0,
			Size:       size,
		}}
	}

	var layout vulkan.PipelineLayout
	if result := vulkan.CreatePipelineLayout(c.device.handle, &layoutInfo, nil, &layout); result != vulkan.Success {
		return nil, fmt.Errorf("vkCreatePipelineLayout: %d", result)
	}
	c.pipelineLayouts[size] = layout
	return layout, nil
}

func (c *descriptorCache) destroy() {
	if c.bdaBuffer != nil {
		c.bdaBuffer.destroyNow()
	}
	for _, layout := range c.pipelineLayouts {
		vulkan.DestroyPipelineLayout(c.device.handle, layout, nil)
	}
	if c.layout != nil {
		vulkan.DestroyDescriptorSetLayout(c.device.handle, c.layout, nil)
	}
	if c.pool != nil {
		vulkan.DestroyDescriptorPool(c.device.handle, c.pool, nil)
	}
}
