package rhi

import (
	"fmt"
	"unsafe"

	vulkan "github.com/ashforge/rhi/internal/vk"
)

// ColorAttachmentInfo describes one dynamic-rendering color attachment's
// format and blend state for a raster pipeline.
type ColorAttachmentInfo struct {
	Format         Format
	BlendEnable    bool
	SrcColorBlend  BlendFactor
	DstColorBlend  BlendFactor
	ColorBlendOp   BlendOp
	SrcAlphaBlend  BlendFactor
	DstAlphaBlend  BlendFactor
	AlphaBlendOp   BlendOp
}

// DepthStencilInfo describes a raster pipeline's depth/stencil state.
type DepthStencilInfo struct {
	Format          Format
	DepthTestEnable bool
	DepthWriteEnable bool
	DepthCompareOp  CompareOp
}

// RasterPipelineInfo is the frozen configuration of a raster pipeline:
// attachments, vertex bindings, rasterization, depth, topology, and
// push-constant size.
type RasterPipelineInfo struct {
	Name                  string
	VertexShader          *Shader
	FragmentShader        *Shader
	ColorAttachments      []ColorAttachmentInfo
	DepthStencil          *DepthStencilInfo
	VertexStride          uint32
	VertexInputAttributes []VertexInputAttribute
	Topology              TopologyType
	PolygonMode           PolygonMode
	CullMode              CullingMode
	FrontFace             FrontFace
	PushConstantSize      uint32
}

// Pipeline is a pipeline object tagged by the variant it was created as.
// Only the raster variant is implemented; Compute and RayTracing are
// declared for PipelineType completeness but have no constructor.
type Pipeline struct {
	RefCountedResource
	DeviceResource

	handle     vulkan.Pipeline
	layout     vulkan.PipelineLayout
	pipeType   PipelineType
	bindPoint  vulkan.PipelineBindPoint
	info       RasterPipelineInfo
}

// NewRasterPipeline builds a graphics pipeline configured for dynamic
// rendering (no render pass or framebuffer object): attachment formats are
// supplied directly via VkPipelineRenderingCreateInfo.
func NewRasterPipeline(d *Device, info RasterPipelineInfo) (Resource[*Pipeline], error) {
	if info.VertexShader == nil || info.FragmentShader == nil {
		debugAssert(false, "Pipeline.from: raster pipeline requires vertex and fragment shaders")
		return Resource[*Pipeline]{}, newError(InvalidArgument, "Pipeline.from", fmt.Errorf("raster pipeline %q missing vertex or fragment shader", info.Name))
	}

	layout, err := d.descriptors.pipelineLayoutFor(info.PushConstantSize)
	if err != nil {
		return Resource[*Pipeline]{}, newError(Unsupported, "Pipeline.from", err)
	}

	stages := []vulkan.PipelineShaderStageCreateInfo{
		info.VertexShader.StageInfo(),
		info.FragmentShader.StageInfo(),
	}

	var bindingDescs []vulkan.VertexInputBindingDescription
	var attrDescs []vulkan.VertexInputAttributeDescription
	if info.VertexStride > 0 {
		bindingDescs = []vulkan.VertexInputBindingDescription{{
			Binding:   0,
			Stride:    info.VertexStride,
			InputRate: vulkan.VertexInputRateVertex,
		}}
		for _, a := range info.VertexInputAttributes {
			attrDescs = append(attrDescs, vulkan.VertexInputAttributeDescription{
				Location: a.Location,
				Binding:  0,
				Format:   vkFormat(a.Format),
				Offset:   a.Offset,
			})
		}
	}
	vertexInput := vulkan.PipelineVertexInputStateCreateInfo{
		SType:                           vulkan.StructureTypePipelineVertexInputStateCreateInfo,
		VertexBindingDescriptionCount:   uint32(len(bindingDescs)),
		PVertexBindingDescriptions:      bindingDescs,
		VertexAttributeDescriptionCount: uint32(len(attrDescs)),
		PVertexAttributeDescriptions:    attrDescs,
	}

	inputAssembly := vulkan.PipelineInputAssemblyStateCreateInfo{
		SType:    vulkan.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology: vkTopology(info.Topology),
	}

	viewportState := vulkan.PipelineViewportStateCreateInfo{
		SType:         vulkan.StructureTypePipelineViewportStateCreateInfo,
		ViewportCount: 1,
		ScissorCount:  1,
	}

	rasterization := vulkan.PipelineRasterizationStateCreateInfo{
		SType:       vulkan.StructureTypePipelineRasterizationStateCreateInfo,
		PolygonMode: vkPolygonMode(info.PolygonMode),
		CullMode:    vulkan.CullModeFlags(vkCullMode(info.CullMode)),
		FrontFace:   vkFrontFace(info.FrontFace),
		LineWidth:   1,
	}

	multisample := vulkan.PipelineMultisampleStateCreateInfo{
		SType:                vulkan.StructureTypePipelineMultisampleStateCreateInfo,
		RasterizationSamples: vulkan.SampleCount1Bit,
	}

	var depthStencil vulkan.PipelineDepthStencilStateCreateInfo
	depthStencil.SType = vulkan.StructureTypePipelineDepthStencilStateCreateInfo
	if info.DepthStencil != nil {
		ds := info.DepthStencil
		depthStencil.DepthTestEnable = vulkan.False
		if ds.DepthTestEnable {
			depthStencil.DepthTestEnable = vulkan.True
		}
		depthStencil.DepthWriteEnable = vulkan.False
		if ds.DepthWriteEnable {
			depthStencil.DepthWriteEnable = vulkan.True
		}
		depthStencil.DepthCompareOp = vkCompareOp(ds.DepthCompareOp)
	}

	colorBlendAttachments := make([]vulkan.PipelineColorBlendAttachmentState, len(info.ColorAttachments))
	colorFormats := make([]vulkan.Format, len(info.ColorAttachments))
	for i, ca := range info.ColorAttachments {
		blendEnable := vulkan.False
		if ca.BlendEnable {
			blendEnable = vulkan.True
		}
		colorBlendAttachments[i] = vulkan.PipelineColorBlendAttachmentState{
			BlendEnable:         blendEnable,
			SrcColorBlendFactor: vkBlendFactor(ca.SrcColorBlend),
			DstColorBlendFactor: vkBlendFactor(ca.DstColorBlend),
			ColorBlendOp:        vkBlendOp(ca.ColorBlendOp),
			SrcAlphaBlendFactor: vkBlendFactor(ca.SrcAlphaBlend),
			DstAlphaBlendFactor: vkBlendFactor(ca.DstAlphaBlend),
			AlphaBlendOp:        vkBlendOp(ca.AlphaBlendOp),
			ColorWriteMask:      0xF,
		}
		colorFormats[i] = vkFormat(ca.Format)
	}
	colorBlend := vulkan.PipelineColorBlendStateCreateInfo{
		SType:           vulkan.StructureTypePipelineColorBlendStateCreateInfo,
		AttachmentCount: uint32(len(colorBlendAttachments)),
		PAttachments:    colorBlendAttachments,
	}

	dynamicStates := []vulkan.DynamicState{vulkan.DynamicStateViewport, vulkan.DynamicStateScissor}
	dynamicState := vulkan.PipelineDynamicStateCreateInfo{
		SType:             vulkan.StructureTypePipelineDynamicStateCreateInfo,
		DynamicStateCount: uint32(len(dynamicStates)),
		PDynamicStates:    dynamicStates,
	}

	renderingInfo := vulkan.PipelineRenderingCreateInfo{
		SType:                vulkan.StructureTypePipelineRenderingCreateInfo,
		ColorAttachmentCount: uint32(len(colorFormats)),
		PColorAttachmentFormats: colorFormats,
	}
	if info.DepthStencil != nil {
		renderingInfo.DepthAttachmentFormat = vkFormat(info.DepthStencil.Format)
	}

	createInfo := vulkan.GraphicsPipelineCreateInfo{
		SType:               vulkan.StructureTypeGraphicsPipelineCreateInfo,
		PNext:                unsafe.Pointer(&renderingInfo),
		StageCount:           uint32(len(stages)),
		PStages:              stages,
		PVertexInputState:    &vertexInput,
		PInputAssemblyState:  &inputAssembly,
		PViewportState:       &viewportState,
		PRasterizationState:  &rasterization,
		PMultisampleState:    &multisample,
		PDepthStencilState:   &depthStencil,
		PColorBlendState:     &colorBlend,
		PDynamicState:        &dynamicState,
		Layout:               layout,
		BasePipelineIndex:    -1,
	}

	handles := make([]vulkan.Pipeline, 1)
	if result := vulkan.CreateGraphicsPipelines(d.handle, nil, 1, []vulkan.GraphicsPipelineCreateInfo{createInfo}, nil, handles); result != vulkan.Success {
		return Resource[*Pipeline]{}, newError(Unsupported, "Pipeline.from", fmt.Errorf("vkCreateGraphicsPipelines: %d", result))
	}

	p := &Pipeline{
		DeviceResource: DeviceResource{device: d},
		handle:         handles[0],
		layout:         layout,
		pipeType:       PipelineTypeRasterization,
		bindPoint:      vulkan.PipelineBindPointGraphics,
		info:           info,
	}
	p.initRefCount()
	d.pipelines.Insert(p)
	return newResource(p), nil
}

// Type reports which PipelineType variant this pipeline was created as.
func (p *Pipeline) Type() PipelineType { return p.pipeType }

// Info returns the raster pipeline's frozen configuration.
func (p *Pipeline) Info() RasterPipelineInfo { return p.info }

func (p *Pipeline) destroyNow() {
	if p.handle != nil {
		vulkan.DestroyPipeline(p.device.handle, p.handle, nil)
		p.handle = nil
	}
}
