// Command uploaddemo uploads data to a GPU buffer and an image through the
// upload heap and blocks until the transfer's timeline fence retires.
package main

import (
	"log"
	"time"

	"github.com/ashforge/rhi"
)

func main() {
	device, err := rhi.DeviceFrom(rhi.DeviceInitInfo{
		AppName:       "uploaddemo",
		EngineName:    "rhi",
		PreferredType: rhi.DeviceTypeAny,
		Config:        rhi.DefaultDeviceConfig(),
	})
	if err != nil {
		log.Fatalf("rhi.DeviceFrom: %v", err)
	}

	bufRes, err := rhi.NewBuffer(device, rhi.BufferInfo{
		Name:        "uploaddemo.dst",
		Size:        4096,
		BufferUsage: rhi.BufferUsageStorage | rhi.BufferUsageTransferDst,
		MemoryUsage: rhi.MemoryUsageBestFit,
	})
	if err != nil {
		log.Fatalf("rhi.NewBuffer: %v", err)
	}
	dstBuffer := bufRes.Get()

	imgRes, err := rhi.NewImage(device, rhi.ImageInfo{
		Name:       "uploaddemo.image",
		Type:       rhi.ImageType2D,
		Format:     rhi.FormatR8G8B8A8Unorm,
		Dimension:  rhi.Extent3D{Width: 64, Height: 64, Depth: 1},
		MipLevel:   1,
		ImageUsage: rhi.ImageUsageSampled | rhi.ImageUsageTransferDst,
	})
	if err != nil {
		log.Fatalf("rhi.NewImage: %v", err)
	}
	dstImage := imgRes.Get()

	submissionQueue := rhi.NewSubmissionQueue(device)
	heap, err := rhi.NewUploadHeap(device, submissionQueue)
	if err != nil {
		log.Fatalf("rhi.NewUploadHeap: %v", err)
	}
	defer heap.Terminate()

	bufferPayload := make([]byte, 4096)
	for i := range bufferPayload {
		bufferPayload[i] = byte(i)
	}
	bufferUploadID, err := heap.UploadDataToBuffer(rhi.BufferDataUploadInfo{
		Dst:      dstBuffer,
		Data:     bufferPayload,
		DstQueue: rhi.DeviceQueueMain,
	})
	if err != nil {
		log.Fatalf("heap.UploadDataToBuffer: %v", err)
	}

	imagePayload := make([]byte, 64*64*4)
	for i := range imagePayload {
		imagePayload[i] = 0xFF
	}
	imageUploadID, err := heap.UploadDataToImage(rhi.ImageDataUploadInfo{
		Image:      dstImage,
		Data:       imagePayload,
		AspectMask: rhi.ImageAspectColor,
		DstQueue:   rhi.DeviceQueueMain,
	})
	if err != nil {
		log.Fatalf("heap.UploadDataToImage: %v", err)
	}

	fenceInfo, err := heap.SendToGPU()
	if err != nil {
		log.Fatalf("heap.SendToGPU: %v", err)
	}

	if err := fenceInfo.Fence.WaitForValue(fenceInfo.Value, rhi.InfiniteTimeout); err != nil {
		log.Fatalf("waiting on upload fence: %v", err)
	}

	for !heap.UploadCompleted(bufferUploadID) || !heap.UploadCompleted(imageUploadID) {
		time.Sleep(time.Millisecond)
	}

	log.Printf("upload %d (buffer) and %d (image) completed", bufferUploadID, imageUploadID)
	device.WaitIdle()
}
