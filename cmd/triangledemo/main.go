// Command triangledemo draws a single hard-coded triangle to a window,
// exercising the full device/surface/swapchain/command-buffer path.
package main

import (
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	vulkan "github.com/ashforge/rhi/internal/vk"

	"github.com/ashforge/rhi"
)

func init() {
	// GLFW and Vulkan must both be driven from the thread that created the
	// window.
	runtime.LockOSThread()
}

var vertexSPV = []uint32{}
var fragmentSPV = []uint32{}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw.Init: %v", err)
	}
	defer glfw.Terminate()
	vulkan.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	if err := vulkan.Init(); err != nil {
		log.Fatalf("vulkan.Init: %v", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(1024, 768, "rhi triangle", nil, nil)
	if err != nil {
		log.Fatalf("glfw.CreateWindow: %v", err)
	}
	defer window.Destroy()

	// Graphics device bring-up needs the window system's required instance
	// extensions before the instance is created.
	requiredExt := window.GetRequiredInstanceExtensions()

	device, err := rhi.DeviceFrom(rhi.DeviceInitInfo{
		AppName:            "triangledemo",
		EngineName:         "rhi",
		PreferredType:      rhi.DeviceTypeDiscrete,
		InstanceExtensions: requiredExt,
		Config:             rhi.DefaultDeviceConfig(),
	})
	if err != nil {
		log.Fatalf("rhi.DeviceFrom: %v", err)
	}

	surfPtr, err := window.CreateWindowSurface(device.Instance(), nil)
	if err != nil {
		log.Fatalf("CreateWindowSurface: %v", err)
	}
	surface, err := rhi.NewSurface(device, rhi.SurfaceInfo{
		Name:             "triangledemo",
		PreferredFormats: []rhi.Format{rhi.FormatB8G8R8A8Srgb, rhi.FormatR8G8B8A8Unorm},
		Handle:           vulkan.SurfaceFromPointer(surfPtr),
	})
	if err != nil {
		log.Fatalf("rhi.NewSurface: %v", err)
	}

	swapchainRes, err := rhi.NewSwapchain(device, surface, rhi.SwapchainInfo{
		Name:             "triangledemo",
		Dimension:        rhi.Extent3D{Width: 1024, Height: 768, Depth: 1},
		ImageCount:       3,
		PresentationMode: rhi.SwapchainPresentModeFifo,
		ImageUsage:       rhi.ImageUsageColorAttachment,
	}, nil)
	if err != nil {
		log.Fatalf("rhi.NewSwapchain: %v", err)
	}
	swapchain := swapchainRes.Get()

	vertexShaderRes, err := rhi.NewShader(device, rhi.CompiledShaderInfo{
		Name:       "triangle.vert",
		Type:       rhi.ShaderTypeVertex,
		EntryPoint: "main",
		Binary:     vertexSPV,
	})
	if err != nil {
		log.Fatalf("rhi.NewShader (vertex): %v", err)
	}
	fragmentShaderRes, err := rhi.NewShader(device, rhi.CompiledShaderInfo{
		Name:       "triangle.frag",
		Type:       rhi.ShaderTypeFragment,
		EntryPoint: "main",
		Binary:     fragmentSPV,
	})
	if err != nil {
		log.Fatalf("rhi.NewShader (fragment): %v", err)
	}

	pipelineRes, err := rhi.NewRasterPipeline(device, rhi.RasterPipelineInfo{
		Name:           "triangle",
		VertexShader:   vertexShaderRes.Get(),
		FragmentShader: fragmentShaderRes.Get(),
		ColorAttachments: []rhi.ColorAttachmentInfo{
			{Format: swapchain.ColorFormat()},
		},
		Topology:    rhi.TopologyTypeTriangleList,
		PolygonMode: rhi.PolygonModeFill,
		CullMode:    rhi.CullingModeNone,
		FrontFace:   rhi.FrontFaceClockwise,
	})
	if err != nil {
		log.Fatalf("rhi.NewRasterPipeline: %v", err)
	}
	pipeline := pipelineRes.Get()

	submissionQueue := rhi.NewSubmissionQueue(device)
	commandQueue := rhi.NewCommandQueue(device, submissionQueue, rhi.DeviceQueueMain)
	thread, err := commandQueue.RegisterThread()
	if err != nil {
		log.Fatalf("commandQueue.RegisterThread: %v", err)
	}

	for !window.ShouldClose() {
		glfw.PollEvents()

		if swapchain.AcquireNextImage() == rhi.SwapchainStateError {
			log.Println("swapchain acquire failed, stopping")
			break
		}
		image := swapchain.CurrentImage()

		cb, ok := commandQueue.NextCommandBuffer(thread)
		if !ok {
			log.Println("no command buffer available this frame, skipping")
			continue
		}
		if err := cb.Begin(); err != nil {
			log.Printf("cb.Begin: %v", err)
			continue
		}

		cb.PipelineBarrierImage(image, rhi.ImageBarrierInfo{
			OldLayout:  rhi.ImageLayoutUndefined,
			NewLayout:  rhi.ImageLayoutColorAttachment,
			SrcAccess:  rhi.AccessNone,
			DstAccess:  rhi.AccessColorAttachmentWrite,
			LevelCount: 1,
		})

		w, h := image.Info().Dimension.Width, image.Info().Dimension.Height
		cb.BeginRendering(rhi.RenderingInfo{
			RenderArea: rhi.Scissor{Width: w, Height: h},
			ColorAttachments: []rhi.ColorAttachmentRenderInfo{
				{Image: image, LoadOp: rhi.AttachmentLoadOpClear, StoreOp: rhi.AttachmentStoreOpStore},
			},
		})
		cb.SetViewport(rhi.Viewport{Width: float32(w), Height: float32(h), MinDepth: 0, MaxDepth: 1})
		cb.SetScissor(rhi.Scissor{Width: w, Height: h})
		cb.BindPipeline(pipeline)
		cb.Draw(rhi.DrawInfo{VertexCount: 3, InstanceCount: 1})
		cb.EndRendering()

		cb.PipelineBarrierImage(image, rhi.ImageBarrierInfo{
			OldLayout:  rhi.ImageLayoutColorAttachment,
			NewLayout:  rhi.ImageLayoutPresentSrc,
			SrcAccess:  rhi.AccessColorAttachmentWrite,
			DstAccess:  rhi.AccessNone,
			LevelCount: 1,
		})

		if err := cb.End(); err != nil {
			log.Printf("cb.End: %v", err)
			continue
		}

		if !device.Submit(rhi.SubmitInfo{
			Queue:            rhi.DeviceQueueMain,
			CommandBuffers:   []*rhi.CommandBuffer{cb},
			WaitSemaphores:   []*rhi.Semaphore{swapchain.CurrentAcquireSemaphore()},
			WaitStageMasks:   []rhi.PipelineStage{rhi.PipelineStageColorAttachmentOutput},
			SignalSemaphores: []*rhi.Semaphore{swapchain.CurrentPresentSemaphore()},
			SignalFences: []rhi.FenceWait{
				{Fence: swapchain.GetGPUFence(), Value: swapchain.CPUFrameCount()},
			},
		}) {
			log.Println("device.Submit failed")
			continue
		}

		if !device.Present(rhi.PresentInfo{Swapchains: []*rhi.Swapchain{swapchain}}) {
			log.Println("present reported a stale swapchain, a resize handler would recreate it here")
		}
	}

	device.WaitIdle()
	commandQueue.Terminate()
}
