package rhi

import (
	"testing"

	vulkan "github.com/ashforge/rhi/internal/vk"
)

func TestVkFormatTranslatesKnownFormats(t *testing.T) {
	cases := map[Format]vulkan.Format{
		FormatR8G8B8A8Unorm: vulkan.FormatR8g8b8a8Unorm,
		FormatB8G8R8A8Srgb:  vulkan.FormatB8g8r8a8Srgb,
		FormatD32Sfloat:     vulkan.FormatD32Sfloat,
	}
	for in, want := range cases {
		if got := vkFormat(in); got != want {
			t.Errorf("vkFormat(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestVkFormatUnknownFallsBackToUndefined(t *testing.T) {
	if got := vkFormat(Format(9999)); got != vulkan.FormatUndefined {
		t.Fatalf("vkFormat(unknown) = %v, want FormatUndefined", got)
	}
}

func TestVkIndexTypeTranslation(t *testing.T) {
	cases := map[IndexType]vulkan.IndexType{
		IndexTypeUint8:  vulkan.IndexTypeUint8,
		IndexTypeUint16: vulkan.IndexTypeUint16,
		IndexTypeUint32: vulkan.IndexTypeUint32,
	}
	for in, want := range cases {
		if got := vkIndexType(in); got != want {
			t.Errorf("vkIndexType(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestVkAttachmentLoadOpDontCareAndNoneCollapse(t *testing.T) {
	if vkAttachmentLoadOp(AttachmentLoadOpDontCare) != vkAttachmentLoadOp(AttachmentLoadOpNone) {
		t.Fatalf("Dont_Care and None should translate to the same VkAttachmentLoadOp")
	}
	if vkAttachmentLoadOp(AttachmentLoadOpLoad) != vulkan.AttachmentLoadOpLoad {
		t.Fatalf("AttachmentLoadOpLoad did not translate to VK_ATTACHMENT_LOAD_OP_LOAD")
	}
}

func TestVkQueueFamilyNoneIsIgnored(t *testing.T) {
	d := &Device{}
	if got := vkQueueFamily(d, DeviceQueueNone); got != vulkan.QueueFamilyIgnored {
		t.Fatalf("vkQueueFamily(None) = %v, want QueueFamilyIgnored", got)
	}
}

func TestVkPipelineStage2CombinesBits(t *testing.T) {
	combined := vkPipelineStage2(PipelineStageVertexShader | PipelineStageFragmentShader)
	if combined&vulkan.PipelineStageFlags(vulkan.PipelineStageVertexShaderBit) == 0 {
		t.Errorf("missing vertex shader bit")
	}
	if combined&vulkan.PipelineStageFlags(vulkan.PipelineStageFragmentShaderBit) == 0 {
		t.Errorf("missing fragment shader bit")
	}
}

func TestVkPipelineStage2AllCommandsShortCircuits(t *testing.T) {
	got := vkPipelineStage2(PipelineStageAllCommands)
	want := vulkan.PipelineStageFlags(vulkan.PipelineStageAllCommandsBit)
	if got != want {
		t.Fatalf("vkPipelineStage2(AllCommands) = %v, want %v", got, want)
	}
}
