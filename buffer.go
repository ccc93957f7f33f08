package rhi

import (
	"fmt"
	"unsafe"

	"github.com/ashforge/rhi/internal/galloc"
	vulkan "github.com/ashforge/rhi/internal/vk"
)

// BufferInfo describes a Buffer's creation parameters.
type BufferInfo struct {
	Name        string
	Size        uint64
	BufferUsage BufferUsage
	MemoryUsage MemoryUsage
	SharingMode SharingMode
}

// MemoryRequirements reports a resource's size, alignment, and the bitmask
// of memory type indices it can be backed by.
type MemoryRequirements struct {
	Size           uint64
	Alignment      uint64
	MemoryTypeBits uint32
}

// BufferBindInfo selects the buffer-device-address table slot a Buffer's
// address is written to.
type BufferBindInfo struct {
	Offset uint64
	Size   uint64
	Index  uint32
}

// Buffer is a GPU buffer with an optional host-mapped pointer and GPU
// device address. Host-visible buffers keep a persistent mapped pointer;
// device-local buffers do not, and GPUAddress is non-zero only for buffers
// backed by device-address-capable memory.
type Buffer struct {
	RefCountedResource
	DeviceResource

	handle        vulkan.Buffer
	deviceAddress vulkan.DeviceAddress
	allocation    *galloc.MemoryBlock
	mappedPtr     uintptr

	info BufferInfo
}

// NewBuffer creates a buffer of info.Size and returns the first handle to
// it at reference count 1. A zero size yields an invalid (null) resource,
// matching the reference design's boundary behavior.
func NewBuffer(d *Device, info BufferInfo) (Resource[*Buffer], error) {
	if info.Size == 0 {
		return Resource[*Buffer]{}, nil
	}
	b, err := newBufferInternal(d, info)
	if err != nil {
		return Resource[*Buffer]{}, err
	}
	d.buffers.Insert(b)
	return newResource(b), nil
}

func newBufferInternal(d *Device, info BufferInfo) (*Buffer, error) {
	usageFlags := vkBufferUsage(info.BufferUsage)

	createInfo := vulkan.BufferCreateInfo{
		SType:       vulkan.StructureTypeBufferCreateInfo,
		Size:        vulkan.DeviceSize(info.Size),
		Usage:       usageFlags,
		SharingMode: vkSharingMode(info.SharingMode),
	}
	var handle vulkan.Buffer
	if result := vulkan.CreateBuffer(d.handle, &createInfo, nil, &handle); result != vulkan.Success {
		return nil, newError(Unsupported, "Buffer.from", fmt.Errorf("vkCreateBuffer: %d", result))
	}

	var memReqs vulkan.MemoryRequirements
	vulkan.GetBufferMemoryRequirements(d.handle, handle, &memReqs)
	memReqs.Deref()

	usage := memoryUsageToAllocFlags(info.MemoryUsage)
	allocation, err := d.allocator.Alloc(galloc.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          usage,
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		vulkan.DestroyBuffer(d.handle, handle, nil)
		return nil, newError(OutOfMemory, "Buffer.from", err)
	}

	if result := vulkan.BindBufferMemory(d.handle, handle, allocation.Memory, vulkan.DeviceSize(allocation.Offset)); result != vulkan.Success {
		d.allocator.Free(allocation)
		vulkan.DestroyBuffer(d.handle, handle, nil)
		return nil, newError(Unsupported, "Buffer.from", fmt.Errorf("vkBindBufferMemory: %d", result))
	}

	b := &Buffer{
		DeviceResource: DeviceResource{device: d},
		handle:         handle,
		allocation:     allocation,
		info:           info,
	}
	b.initRefCount()

	if d.allocator.Selector().IsHostVisible(allocation.MemoryTypeIndex()) {
		ptr, err := d.allocator.Map(allocation)
		if err != nil {
			b.destroyNow()
			return nil, newError(OutOfMemory, "Buffer.from", err)
		}
		b.mappedPtr = ptr
	}

	addrInfo := vulkan.BufferDeviceAddressInfo{
		SType:  vulkan.StructureTypeBufferDeviceAddressInfo,
		Buffer: handle,
	}
	b.deviceAddress = vulkan.GetBufferDeviceAddress(d.handle, &addrInfo)

	return b, nil
}

func memoryUsageToAllocFlags(usage MemoryUsage) galloc.UsageFlags {
	var flags galloc.UsageFlags
	if usage&MemoryUsageHostAccessible != 0 || usage&MemoryUsageHostWritable != 0 || usage&MemoryUsageHostTransferable != 0 {
		flags |= galloc.UsageHostAccess
	}
	if usage&MemoryUsageHostWritable != 0 {
		flags |= galloc.UsageUpload
	}
	if flags == 0 {
		flags = galloc.UsageFastDeviceAccess
	}
	return flags
}

// Size returns the buffer's size in bytes.
func (b *Buffer) Size() uint64 { return b.info.Size }

// Info returns the buffer's creation parameters.
func (b *Buffer) Info() BufferInfo { return b.info }

// Data returns the host-mapped pointer backing the buffer, or 0 if the
// buffer is not host-visible.
func (b *Buffer) Data() uintptr { return b.mappedPtr }

// Write memcpys src into the mapped range starting at offset. Requires a
// host-visible buffer; returns InvalidArgument otherwise or if the range
// exceeds the buffer's size.
func (b *Buffer) Write(src []byte, offset uint64) error {
	if b.mappedPtr == 0 {
		debugAssert(false, "Buffer.Write: buffer is not host-visible")
		return newError(InvalidArgument, "Buffer.Write", fmt.Errorf("buffer %q is not host-visible", b.info.Name))
	}
	if offset+uint64(len(src)) > b.info.Size {
		debugAssert(false, "Buffer.Write: range exceeds buffer size")
		return newError(InvalidArgument, "Buffer.Write", fmt.Errorf("offset+size exceeds buffer size"))
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(b.mappedPtr+uintptr(offset))), len(src))
	copy(dst, src)
	return nil
}

// Clear zeros the entire host-visible mapped range.
func (b *Buffer) Clear() error {
	if b.mappedPtr == 0 {
		debugAssert(false, "Buffer.Clear: buffer is not host-visible")
		return newError(InvalidArgument, "Buffer.Clear", fmt.Errorf("buffer %q is not host-visible", b.info.Name))
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(b.mappedPtr)), b.info.Size)
	for i := range dst {
		dst[i] = 0
	}
	return nil
}

// GPUAddress returns the buffer's captured device address, non-zero only
// for buffers backed by device-address-capable memory (always true here,
// since every buffer is created with VK_BUFFER_USAGE_SHADER_DEVICE_ADDRESS_BIT).
func (b *Buffer) GPUAddress() uint64 { return uint64(b.deviceAddress) }

// Bind writes the buffer's device address into the BDA table slot at
// info.Index % maxBuffers; this is the system's "descriptor" for buffers.
func (b *Buffer) Bind(info BufferBindInfo) {
	b.device.descriptors.writeBufferAddress(info.Index, uint64(b.deviceAddress))
}

// MemoryRequirements returns the buffer's {size, alignment, memoryTypeBits}.
func (b *Buffer) MemoryRequirements() MemoryRequirements {
	var reqs vulkan.MemoryRequirements
	vulkan.GetBufferMemoryRequirements(b.device.handle, b.handle, &reqs)
	reqs.Deref()
	return MemoryRequirements{Size: uint64(reqs.Size), Alignment: uint64(reqs.Alignment), MemoryTypeBits: reqs.MemoryTypeBits}
}

func (b *Buffer) destroyNow() {
	if b.allocation != nil && b.mappedPtr != 0 {
		b.device.allocator.Unmap(b.allocation)
		b.mappedPtr = 0
	}
	if b.handle != nil {
		vulkan.DestroyBuffer(b.device.handle, b.handle, nil)
		b.handle = nil
	}
	if b.allocation != nil {
		b.device.allocator.Free(b.allocation)
		b.allocation = nil
	}
}
