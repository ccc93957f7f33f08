// Package rhi is a low-level, Vulkan-class GPU abstraction layer.
//
// It owns the device resource runtime: a Device that owns the API instance,
// physical/logical device, queues, memory allocator, and a unified bindless
// descriptor table; typed reference-counted resources (buffers, images,
// samplers, shaders, pipelines, semaphores, timeline fences, swapchains,
// command pools and command buffers) with deferred ("zombie") destruction
// gated on GPU progress; command recording with automatic pipeline-barrier
// batching and dynamic rendering; a multi-queue submission/presentation
// engine; and a staging upload heap.
//
// # Resource Lifecycle
//
// Every resource is obtained as a Resource[T], a reference-counted handle.
// Cloning a handle shares ownership; releasing the last handle schedules the
// resource for deferred destruction rather than destroying it immediately,
// because the GPU may still be executing commands that reference it. Call
// [Device.ClearGarbage] once per frame to reclaim anything the GPU has
// caught up to.
//
// # Out of Scope
//
// This package does not implement a render graph, material system, scene
// representation, shader cross-compilation, or cross-API portability. A
// single backend (Vulkan 1.3, via the hand-rolled internal/vk binding) is
// assumed.
//
// # Thread Safety
//
// Device, resource pools, and the zombie queue are safe for concurrent use.
// CommandBuffer recording is not: a command buffer is recorded by exactly
// one goroutine between Begin and End.
package rhi
