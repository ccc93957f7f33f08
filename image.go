package rhi

import (
	"fmt"
	"math/bits"

	"github.com/ashforge/rhi/internal/galloc"
	vulkan "github.com/ashforge/rhi/internal/vk"
)

// Extent3D is a width/height/depth triple.
type Extent3D struct {
	Width, Height, Depth uint32
}

// ImageInfo describes an Image's creation parameters.
type ImageInfo struct {
	Name       string
	Type       ImageType
	Format     Format
	Dimension  Extent3D
	MipLevel   uint32
	ImageUsage ImageUsage
	ClearValue [4]float32
}

// ImageBindInfo binds an image into the bindless descriptor table.
type ImageBindInfo struct {
	Sampler *Sampler
	Index   uint32
}

// Image is a GPU image plus a view covering all mip levels and one array
// layer. Swapchain images are non-allocation-owning: their allocation field
// is nil and destroyNow skips the allocator free.
type Image struct {
	RefCountedResource
	DeviceResource

	handle     vulkan.Image
	view       vulkan.ImageView
	allocation *galloc.MemoryBlock
	aspect     ImageAspect
	layout     ImageLayout

	info           ImageInfo
	ownsAllocation bool
}

// NewImage allocates an image, a full-mip/single-layer view, and backing
// memory. Rejects mipLevel == 0 or mipLevel exceeding log2(max(w,h)) as
// InvalidArgument.
func NewImage(d *Device, info ImageInfo) (Resource[*Image], error) {
	if info.MipLevel == 0 {
		debugAssert(false, "Image.from: mipLevel must be >= 1")
		return Resource[*Image]{}, newError(InvalidArgument, "Image.from", fmt.Errorf("mipLevel must be >= 1"))
	}
	maxDim := info.Dimension.Width
	if info.Dimension.Height > maxDim {
		maxDim = info.Dimension.Height
	}
	maxMips := uint32(bits.Len32(maxDim))
	if info.MipLevel > maxMips {
		debugAssert(false, "Image.from: mipLevel exceeds log2(max(width,height))")
		return Resource[*Image]{}, newError(InvalidArgument, "Image.from", fmt.Errorf("mipLevel %d exceeds max %d", info.MipLevel, maxMips))
	}

	depth := info.Dimension.Depth
	if depth == 0 {
		depth = 1
	}

	createInfo := vulkan.ImageCreateInfo{
		SType:     vulkan.StructureTypeImageCreateInfo,
		ImageType: vkImageType(info.Type),
		Format:    vkFormat(info.Format),
		Extent: vulkan.Extent3D{
			Width:  info.Dimension.Width,
			Height: info.Dimension.Height,
			Depth:  depth,
		},
		MipLevels:     info.MipLevel,
		ArrayLayers:   1,
		Samples:       vulkan.SampleCount1Bit,
		Tiling:        vulkan.ImageTilingOptimal,
		Usage:         vkImageUsage(info.ImageUsage),
		SharingMode:   vulkan.SharingModeExclusive,
		InitialLayout: vulkan.ImageLayoutUndefined,
	}

	var handle vulkan.Image
	if result := vulkan.CreateImage(d.handle, &createInfo, nil, &handle); result != vulkan.Success {
		return Resource[*Image]{}, newError(Unsupported, "Image.from", fmt.Errorf("vkCreateImage: %d", result))
	}

	var memReqs vulkan.MemoryRequirements
	vulkan.GetImageMemoryRequirements(d.handle, handle, &memReqs)
	memReqs.Deref()

	allocation, err := d.allocator.Alloc(galloc.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          galloc.UsageFastDeviceAccess,
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		vulkan.DestroyImage(d.handle, handle, nil)
		return Resource[*Image]{}, newError(OutOfMemory, "Image.from", err)
	}
	if result := vulkan.BindImageMemory(d.handle, handle, allocation.Memory, vulkan.DeviceSize(allocation.Offset)); result != vulkan.Success {
		d.allocator.Free(allocation)
		vulkan.DestroyImage(d.handle, handle, nil)
		return Resource[*Image]{}, newError(Unsupported, "Image.from", fmt.Errorf("vkBindImageMemory: %d", result))
	}

	aspect := AspectForFormat(info.Format)
	view, err := createImageView(d, handle, info.Type, vkFormat(info.Format), aspect, info.MipLevel)
	if err != nil {
		d.allocator.Free(allocation)
		vulkan.DestroyImage(d.handle, handle, nil)
		return Resource[*Image]{}, newError(Unsupported, "Image.from", err)
	}

	img := &Image{
		DeviceResource: DeviceResource{device: d},
		handle:         handle,
		view:           view,
		allocation:     allocation,
		aspect:         aspect,
		layout:         ImageLayoutUndefined,
		info:           info,
		ownsAllocation: true,
	}
	img.initRefCount()
	d.images.Insert(img)
	return newResource(img), nil
}

// wrapSwapchainImage wraps a driver-retrieved swapchain image in a pooled,
// non-allocation-owning Image resource.
func wrapSwapchainImage(d *Device, handle vulkan.Image, format vulkan.Format, extent Extent3D) (*Image, error) {
	view, err := createImageView(d, handle, ImageType2D, format, ImageAspectColor, 1)
	if err != nil {
		return nil, err
	}
	img := &Image{
		DeviceResource: DeviceResource{device: d},
		handle:         handle,
		view:           view,
		aspect:         ImageAspectColor,
		layout:         ImageLayoutUndefined,
		info: ImageInfo{
			Name:      "swapchain image",
			Type:      ImageType2D,
			Format:    rhiFormat(format),
			Dimension: extent,
			MipLevel:  1,
		},
		ownsAllocation: false,
	}
	img.initRefCount()
	d.images.Insert(img)
	return img, nil
}

func createImageView(d *Device, image vulkan.Image, imgType ImageType, format vulkan.Format, aspect ImageAspect, mipLevels uint32) (vulkan.ImageView, error) {
	info := vulkan.ImageViewCreateInfo{
		SType:    vulkan.StructureTypeImageViewCreateInfo,
		Image:    image,
		ViewType: vkImageViewType(imgType),
		Format:   format,
		SubresourceRange: vulkan.ImageSubresourceRange{
			AspectMask:     vkImageAspect(aspect),
			BaseMipLevel:   0,
			LevelCount:     mipLevels,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
	}
	var view vulkan.ImageView
	if result := vulkan.CreateImageView(d.handle, &info, nil, &view); result != vulkan.Success {
		return nil, fmt.Errorf("vkCreateImageView: %d", result)
	}
	return view, nil
}

// Info returns the image's creation parameters.
func (img *Image) Info() ImageInfo { return img.info }

// Aspect returns the image's aspect mask, derived from its format.
func (img *Image) Aspect() ImageAspect { return img.aspect }

// Layout returns the image's last-known layout as tracked by barrier
// recording; it is informational only and not re-derived from the driver.
func (img *Image) Layout() ImageLayout { return img.layout }

// Bind writes descriptor updates for up to two bindings: SampledImage (or
// CombinedImageSampler when a sampler is provided) when usage includes
// Sampled, and StorageImage when usage includes Storage. Idempotent: two
// identical Bind calls leave the table in the same state.
func (img *Image) Bind(info ImageBindInfo) {
	c := img.device.descriptors
	if img.info.ImageUsage&ImageUsageSampled != 0 {
		if info.Sampler != nil {
			c.writeImageBinding(BindingCombinedImageSampler, info.Index, img.view, info.Sampler.handle,
				vkImageLayout(ImageLayoutShaderReadOnly), vulkan.DescriptorTypeCombinedImageSampler)
		} else {
			c.writeImageBinding(BindingSampledImage, info.Index, img.view, nil,
				vkImageLayout(ImageLayoutShaderReadOnly), vulkan.DescriptorTypeSampledImage)
		}
	}
	if img.info.ImageUsage&ImageUsageStorage != 0 {
		c.writeImageBinding(BindingStorageImage, info.Index, img.view, nil,
			vkImageLayout(ImageLayoutGeneral), vulkan.DescriptorTypeStorageImage)
	}
}

func (img *Image) destroyNow() {
	if img.view != nil {
		vulkan.DestroyImageView(img.device.handle, img.view, nil)
		img.view = nil
	}
	if img.ownsAllocation {
		if img.handle != nil {
			vulkan.DestroyImage(img.device.handle, img.handle, nil)
			img.handle = nil
		}
		if img.allocation != nil {
			img.device.allocator.Free(img.allocation)
			img.allocation = nil
		}
	}
}
