package rhi

import (
	"fmt"

	vulkan "github.com/ashforge/rhi/internal/vk"
)

// VertexInputAttribute describes one vertex shader input location, used by
// raster pipelines to build their vertex input state.
type VertexInputAttribute struct {
	Location uint32
	Format   Format
	Offset   uint32
}

// CompiledShaderInfo carries a single already-compiled SPIR-V module plus
// the metadata needed to wire it into a pipeline.
type CompiledShaderInfo struct {
	Name                   string
	Path                   string
	Type                   ShaderType
	EntryPoint             string
	Binary                 []uint32
	VertexInputAttributes  []VertexInputAttribute
}

// Shader is a compiled shader module ready to be referenced by a Pipeline.
type Shader struct {
	RefCountedResource
	DeviceResource

	handle vulkan.ShaderModule
	info   CompiledShaderInfo
}

// NewShader creates a shader module from an already-compiled SPIR-V binary.
// A nil or empty binary is rejected as InvalidArgument.
func NewShader(d *Device, info CompiledShaderInfo) (Resource[*Shader], error) {
	if len(info.Binary) == 0 {
		debugAssert(false, "Shader.from: binary must not be empty")
		return Resource[*Shader]{}, newError(InvalidArgument, "Shader.from", fmt.Errorf("shader %q has empty binary", info.Name))
	}
	if info.EntryPoint == "" {
		info.EntryPoint = "main"
	}

	createInfo := vulkan.ShaderModuleCreateInfo{
		SType:    vulkan.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint(len(info.Binary)) * 4,
		PCode:    info.Binary,
	}
	var handle vulkan.ShaderModule
	if result := vulkan.CreateShaderModule(d.handle, &createInfo, nil, &handle); result != vulkan.Success {
		return Resource[*Shader]{}, newError(Unsupported, "Shader.from", fmt.Errorf("vkCreateShaderModule: %d", result))
	}

	s := &Shader{DeviceResource: DeviceResource{device: d}, handle: handle, info: info}
	s.initRefCount()
	d.shaders.Insert(s)
	return newResource(s), nil
}

// Info returns the shader's creation parameters.
func (s *Shader) Info() CompiledShaderInfo { return s.info }

// StageInfo builds the VkPipelineShaderStageCreateInfo entry a pipeline
// uses to reference this module.
func (s *Shader) StageInfo() vulkan.PipelineShaderStageCreateInfo {
	return vulkan.PipelineShaderStageCreateInfo{
		SType:  vulkan.StructureTypePipelineShaderStageCreateInfo,
		Stage:  vkShaderStage(s.info.Type),
		Module: s.handle,
		PName:  s.info.EntryPoint + "\x00",
	}
}

func (s *Shader) destroyNow() {
	if s.handle != nil {
		vulkan.DestroyShaderModule(s.device.handle, s.handle, nil)
		s.handle = nil
	}
}
