// Package respool implements the paged, index-stable resource pools shared
// by every resource kind in the device runtime: a page/offset address packed
// into a uint32, plus a generic slot store keyed by that address.
package respool

import "fmt"

// Page identifies a page within a pool.
type Page = uint16

// Offset identifies a slot within a page.
type Offset = uint16

// Addr is the packed {page, offset} address of a pool slot.
// Layout: lower 16 bits = offset, upper 16 bits = page. Addresses are stable
// across the lifetime of the slot they name: pools never relocate live
// elements, only reuse freed slots.
type Addr uint32

// Zip packs a page and offset into an Addr.
func Zip(page Page, offset Offset) Addr {
	return Addr(offset) | (Addr(page) << 16)
}

// Unzip extracts the page and offset from an Addr.
func (a Addr) Unzip() (Page, Offset) {
	return Page(a >> 16), Offset(a & 0xFFFF)
}

// Page returns the page component of the address.
func (a Addr) Page() Page { return Page(a >> 16) }

// Offset returns the offset component of the address.
func (a Addr) Offset() Offset { return Offset(a & 0xFFFF) }

// IsNull reports whether a is the sentinel null address.
func (a Addr) IsNull() bool { return a == NullAddr }

// NullAddr is the sentinel address of an invalid/absent slot.
const NullAddr Addr = 0xFFFFFFFF

func (a Addr) String() string {
	p, o := a.Unzip()
	return fmt.Sprintf("Addr(page=%d,offset=%d)", p, o)
}

// Marker is a compile-time tag distinguishing ID[T] instantiations for
// different resource kinds so a BufferID can never be used where an
// ImageID is expected.
type Marker interface {
	marker()
}

// ID is a type-safe handle identifier: a packed pool Addr plus a generation
// counter, parameterized by a resource-kind marker. The generation makes
// every pool lookup reject a stale ID once its slot has been reused, in all
// builds; it plays no role in addressing.
type ID[T Marker] struct {
	addr Addr
	gen  uint32
}

// NewID builds an ID from an address and generation.
func NewID[T Marker](addr Addr, gen uint32) ID[T] {
	return ID[T]{addr: addr, gen: gen}
}

// Addr returns the packed pool address.
func (id ID[T]) Addr() Addr { return id.addr }

// Generation returns the slot generation captured at allocation time.
func (id ID[T]) Generation() uint32 { return id.gen }

// IsNull reports whether id names no slot.
func (id ID[T]) IsNull() bool { return id.addr.IsNull() }

func (id ID[T]) String() string {
	return fmt.Sprintf("ID(%s,gen=%d)", id.addr, id.gen)
}

type bufferMarker struct{}

func (bufferMarker) marker() {}

type imageMarker struct{}

func (imageMarker) marker() {}

type samplerMarker struct{}

func (samplerMarker) marker() {}

type shaderMarker struct{}

func (shaderMarker) marker() {}

type pipelineMarker struct{}

func (pipelineMarker) marker() {}

type semaphoreMarker struct{}

func (semaphoreMarker) marker() {}

type fenceMarker struct{}

func (fenceMarker) marker() {}

type swapchainMarker struct{}

func (swapchainMarker) marker() {}

type commandPoolMarker struct{}

func (commandPoolMarker) marker() {}

type commandBufferMarker struct{}

func (commandBufferMarker) marker() {}

// BufferID identifies a Buffer resource.
type BufferID = ID[bufferMarker]

// ImageID identifies an Image resource.
type ImageID = ID[imageMarker]

// SamplerID identifies a Sampler resource.
type SamplerID = ID[samplerMarker]

// ShaderID identifies a Shader resource.
type ShaderID = ID[shaderMarker]

// PipelineID identifies a Pipeline resource.
type PipelineID = ID[pipelineMarker]

// SemaphoreID identifies a Semaphore resource.
type SemaphoreID = ID[semaphoreMarker]

// FenceID identifies a Fence resource.
type FenceID = ID[fenceMarker]

// SwapchainID identifies a Swapchain resource.
type SwapchainID = ID[swapchainMarker]

// CommandPoolID identifies a CommandPool resource.
type CommandPoolID = ID[commandPoolMarker]

// CommandBufferID identifies a CommandBuffer resource.
type CommandBufferID = ID[commandBufferMarker]

// Per-kind pool aliases and constructors. The marker types above are
// unexported, so callers outside this package reach them only through these
// names rather than naming respool.Pool[T, M] directly.

type (
	BufferPool[T any]        = Pool[T, bufferMarker]
	ImagePool[T any]         = Pool[T, imageMarker]
	SamplerPool[T any]       = Pool[T, samplerMarker]
	ShaderPool[T any]        = Pool[T, shaderMarker]
	PipelinePool[T any]      = Pool[T, pipelineMarker]
	SemaphorePool[T any]     = Pool[T, semaphoreMarker]
	FencePool[T any]         = Pool[T, fenceMarker]
	SwapchainPool[T any]     = Pool[T, swapchainMarker]
	CommandPoolPool[T any]   = Pool[T, commandPoolMarker]
	CommandBufferPool[T any] = Pool[T, commandBufferMarker]
)

func NewBufferPool[T any]() *BufferPool[T]             { return NewPool[T, bufferMarker]() }
func NewImagePool[T any]() *ImagePool[T]               { return NewPool[T, imageMarker]() }
func NewSamplerPool[T any]() *SamplerPool[T]           { return NewPool[T, samplerMarker]() }
func NewShaderPool[T any]() *ShaderPool[T]             { return NewPool[T, shaderMarker]() }
func NewPipelinePool[T any]() *PipelinePool[T]         { return NewPool[T, pipelineMarker]() }
func NewSemaphorePool[T any]() *SemaphorePool[T]       { return NewPool[T, semaphoreMarker]() }
func NewFencePool[T any]() *FencePool[T]               { return NewPool[T, fenceMarker]() }
func NewSwapchainPool[T any]() *SwapchainPool[T]       { return NewPool[T, swapchainMarker]() }
func NewCommandPoolPool[T any]() *CommandPoolPool[T]   { return NewPool[T, commandPoolMarker]() }
func NewCommandBufferPool[T any]() *CommandBufferPool[T] {
	return NewPool[T, commandBufferMarker]()
}
