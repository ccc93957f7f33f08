package rhi

import (
	"fmt"
	"math"

	vulkan "github.com/ashforge/rhi/internal/vk"
)

// SamplerInfo describes a Sampler's creation parameters. Two SamplerInfo
// values with identical fields pack to the same uint64 key and therefore
// deduplicate to the same Sampler.
type SamplerInfo struct {
	MinFilter    TexelFilter
	MagFilter    TexelFilter
	MipmapMode   MipmapMode
	AddressU     SamplerAddress
	AddressV     SamplerAddress
	AddressW     SamplerAddress
	CompareOp    CompareOp
	CompareEnable bool
	BorderColor  BorderColor
	MaxAnisotropy float32
	MinLod       float32
	MaxLod       float32
}

// packedKey packs every bounded field of info into a uint64, matching the
// reference design's sampler_info_packed_uint64. MaxAnisotropy and the LOD
// range are quantized into a handful of bits each; callers that need
// sub-representable precision differences will see them collapse to the
// same cached sampler, which is the intended dedup behavior.
func (info SamplerInfo) packedKey() uint64 {
	var k uint64
	k |= uint64(info.MinFilter) & 0x1
	k |= (uint64(info.MagFilter) & 0x1) << 1
	k |= (uint64(info.MipmapMode) & 0x1) << 2
	k |= (uint64(info.AddressU) & 0x3) << 3
	k |= (uint64(info.AddressV) & 0x3) << 5
	k |= (uint64(info.AddressW) & 0x3) << 7
	k |= (uint64(info.CompareOp) & 0x7) << 9
	if info.CompareEnable {
		k |= 1 << 12
	}
	k |= (uint64(info.BorderColor) & 0x3) << 13
	k |= uint64(quantizeUnit(info.MaxAnisotropy/16)) << 15
	k |= uint64(quantizeUnit(info.MinLod/16)) << 23
	k |= uint64(quantizeUnit(info.MaxLod/16)) << 31
	return k
}

func quantizeUnit(v float32) uint32 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint32(v * math.MaxUint8)
}

// Sampler is a GPU sampler object, deduplicated per-device by its packed
// SamplerInfo key.
type Sampler struct {
	RefCountedResource
	DeviceResource

	handle vulkan.Sampler
	info   SamplerInfo
	key    uint64
}

// NewSampler returns a Sampler for info, creating one on first use and
// returning the cached instance (with an incremented reference count) on
// every subsequent call with an equivalent info.
func NewSampler(d *Device, info SamplerInfo) (Resource[*Sampler], error) {
	key := info.packedKey()
	if cached, ok := d.samplerCache.Load(key); ok {
		s := cached.(*Sampler)
		return newResource(s), nil
	}

	anisotropyEnable := vulkan.False
	maxAnisotropy := float32(1)
	if info.MaxAnisotropy > 1 {
		anisotropyEnable = vulkan.True
		maxAnisotropy = info.MaxAnisotropy
	}
	compareEnable := vulkan.False
	if info.CompareEnable {
		compareEnable = vulkan.True
	}

	createInfo := vulkan.SamplerCreateInfo{
		SType:                   vulkan.StructureTypeSamplerCreateInfo,
		MagFilter:               vkFilter(info.MagFilter),
		MinFilter:               vkFilter(info.MinFilter),
		MipmapMode:              vkMipmapMode(info.MipmapMode),
		AddressModeU:            vkSamplerAddress(info.AddressU),
		AddressModeV:            vkSamplerAddress(info.AddressV),
		AddressModeW:            vkSamplerAddress(info.AddressW),
		AnisotropyEnable:        anisotropyEnable,
		MaxAnisotropy:           maxAnisotropy,
		CompareEnable:           compareEnable,
		CompareOp:               vkCompareOp(info.CompareOp),
		MinLod:                  info.MinLod,
		MaxLod:                  info.MaxLod,
		BorderColor:             vkBorderColor(info.BorderColor),
		UnnormalizedCoordinates: vulkan.False,
	}
	var handle vulkan.Sampler
	if result := vulkan.CreateSampler(d.handle, &createInfo, nil, &handle); result != vulkan.Success {
		return Resource[*Sampler]{}, newError(Unsupported, "Sampler.from", fmt.Errorf("vkCreateSampler: %d", result))
	}

	s := &Sampler{DeviceResource: DeviceResource{device: d}, handle: handle, info: info, key: key}
	s.initRefCount()
	d.samplers.Insert(s)
	d.samplerCache.Store(key, s)
	return newResource(s), nil
}

// Info returns the sampler's creation parameters.
func (s *Sampler) Info() SamplerInfo { return s.info }

// Bind writes the sampler into the bindless descriptor table's sampler
// binding at index.
func (s *Sampler) Bind(index uint32) {
	s.device.descriptors.writeSamplerBinding(index, s.handle)
}

func (s *Sampler) destroyNow() {
	s.device.samplerCache.Delete(s.key)
	if s.handle != nil {
		vulkan.DestroySampler(s.device.handle, s.handle, nil)
		s.handle = nil
	}
}
