package rhi

import "fmt"

// BufferDataUploadInfo parameterizes UploadHeap.UploadDataToBuffer.
type BufferDataUploadInfo struct {
	Dst       *Buffer
	Data      []byte
	DstOffset uint64
	SrcQueue  DeviceQueue
	DstQueue  DeviceQueue
}

// ImageDataUploadInfo parameterizes UploadHeap.UploadDataToImage.
type ImageDataUploadInfo struct {
	Image      *Image
	Data       []byte
	MipLevel   uint32
	AspectMask ImageAspect
	SrcQueue   DeviceQueue
	DstQueue   DeviceQueue
}

// bufferUploadInfo is one chunk of a buffer upload recorded against a
// staging allocation, replayed into a copy command at send_to_gpu time.
type bufferUploadInfo struct {
	dst           *Buffer
	dstOffset     uint64
	stagingBuffer *Buffer
	stagingOffset uint64
	size          uint64
	srcQueue      DeviceQueue
	dstQueue      DeviceQueue
}

// imageUploadInfo is one queued image upload.
type imageUploadInfo struct {
	image         *Image
	stagingBuffer *Buffer
	stagingOffset uint64
	mipLevel      uint32
	extent        Extent3D
	srcQueue      DeviceQueue
	dstQueue      DeviceQueue
}

// FenceInfo pairs a timeline fence with the value a consumer should wait for.
type FenceInfo struct {
	Fence *Fence
	Value uint64
}

// uploadPool is one ring slot of an UploadHeap: a lazily-grown set of
// staging buffers, bounded info queues, and its own timeline fence.
type uploadPool struct {
	stagingBuffers []Resource[*Buffer]
	writeBuffer    int
	writeOffset    uint64

	bufferUploads []bufferUploadInfo
	imageUploads  []imageUploadInfo

	fence      Resource[*Fence]
	nextValue  uint64
	lastSignal uint64
}

// reserve finds room for size bytes of staging space, lazily allocating a
// new HeapBlockSize staging buffer (up to MaxUploadHeapBuffersPerPool) when
// the current one does not have enough room. Returns ok=false when the pool
// is entirely out of capacity.
func (p *uploadPool) reserve(d *Device, size uint64) (*Buffer, uint64, bool) {
	if size > HeapBlockSize {
		debugAssert(false, "UploadHeap: single upload exceeds HeapBlockSize")
		return nil, 0, false
	}

	if len(p.stagingBuffers) == 0 {
		if !p.allocateBuffer(d) {
			return nil, 0, false
		}
	}

	if p.writeOffset+size > HeapBlockSize {
		p.writeBuffer++
		p.writeOffset = 0
		if p.writeBuffer >= len(p.stagingBuffers) {
			if !p.allocateBuffer(d) {
				return nil, 0, false
			}
		}
	}

	buf := p.stagingBuffers[p.writeBuffer].Get()
	offset := p.writeOffset
	p.writeOffset += size
	return buf, offset, true
}

func (p *uploadPool) allocateBuffer(d *Device) bool {
	if len(p.stagingBuffers) >= MaxUploadHeapBuffersPerPool {
		return false
	}
	res, err := NewBuffer(d, BufferInfo{
		Name:        "upload-heap-staging",
		Size:        HeapBlockSize,
		BufferUsage: BufferUsageTransferSrc,
		MemoryUsage: MemoryUsageHostWritable | MemoryUsageHostAccessible,
	})
	if err != nil || !res.Valid() {
		return false
	}
	p.stagingBuffers = append(p.stagingBuffers, res)
	p.writeBuffer = len(p.stagingBuffers) - 1
	p.writeOffset = 0
	return true
}

func (p *uploadPool) reset() {
	p.writeBuffer = 0
	p.writeOffset = 0
	p.bufferUploads = p.bufferUploads[:0]
	p.imageUploads = p.imageUploads[:0]
}

// uploadRecord tracks which pool an upload id was assigned to and the
// signal value its completion corresponds to (0 until send_to_gpu assigns
// one).
type uploadRecord struct {
	pool  int
	value uint64
}

// UploadHeap streams host bytes into device-local buffers and images over
// the transfer queue, then releases ownership to the consuming queue via
// queue-family barriers. It rotates through MaxPoolInQueue staging pools so
// one pool can still be in flight on the GPU while the next is recorded.
type UploadHeap struct {
	device       *Device
	commandQueue *CommandQueue
	thread       ThreadToken

	pools     [MaxPoolInQueue]*uploadPool
	poolIndex int

	nextID  uint64
	records map[uint64]uploadRecord
}

// NewUploadHeap creates an upload heap that records onto a dedicated
// transfer-queue command pool.
func NewUploadHeap(d *Device, submitter *SubmissionQueue) (*UploadHeap, error) {
	cq := NewCommandQueue(d, submitter, DeviceQueueTransfer)
	tid, err := cq.RegisterThread()
	if err != nil {
		return nil, err
	}

	h := &UploadHeap{
		device:       d,
		commandQueue: cq,
		thread:       tid,
		records:      make(map[uint64]uploadRecord),
	}
	for i := range h.pools {
		fence, err := NewFence(d, "upload-heap-pool", 0)
		if err != nil {
			return nil, err
		}
		h.pools[i] = &uploadPool{fence: fence}
	}
	return h, nil
}

// CurrentUploadID returns the id that will be assigned to the next upload
// call.
func (h *UploadHeap) CurrentUploadID() uint64 { return h.nextID }

// UploadCompleted reports whether the upload identified by id has finished:
// its owning pool was sent to the GPU and that pool's fence has reached the
// assigned signal value.
func (h *UploadHeap) UploadCompleted(id uint64) bool {
	rec, ok := h.records[id]
	if !ok {
		return false
	}
	if rec.value == 0 {
		return false
	}
	pool := h.pools[rec.pool]
	value, err := pool.fence.Get().Value()
	if err != nil {
		return false
	}
	return value >= rec.value
}

// UploadDataToBuffer chunks data across staging blocks as needed and queues
// one bufferUploadInfo per chunk against the active pool. When the active
// pool's upload-info queue overflows MaxUploadsPerPool, the pool is sent to
// the GPU (waiting for completion) and rotation advances to the next pool.
func (h *UploadHeap) UploadDataToBuffer(info BufferDataUploadInfo) (uint64, error) {
	id := h.nextID
	h.nextID++

	remaining := info.Data
	dstOffset := info.DstOffset
	for len(remaining) > 0 {
		pool := h.pools[h.poolIndex]
		if len(pool.bufferUploads) >= MaxUploadsPerPool {
			sent, err := h.SendToGPU()
			if err != nil {
				return id, err
			}
			if err := sent.Fence.WaitForValue(sent.Value, InfiniteTimeout); err != nil {
				return id, err
			}
			pool = h.pools[h.poolIndex]
		}

		chunkSize := uint64(len(remaining))
		if chunkSize > HeapBlockSize {
			chunkSize = HeapBlockSize
		}
		staging, offset, ok := pool.reserve(h.device, chunkSize)
		if !ok {
			if _, err := h.SendToGPU(); err != nil {
				return id, err
			}
			continue
		}
		if err := staging.Write(remaining[:chunkSize], offset); err != nil {
			return id, err
		}

		pool.bufferUploads = append(pool.bufferUploads, bufferUploadInfo{
			dst:           info.Dst,
			dstOffset:     dstOffset,
			stagingBuffer: staging,
			stagingOffset: offset,
			size:          chunkSize,
			srcQueue:      info.SrcQueue,
			dstQueue:      info.DstQueue,
		})

		remaining = remaining[chunkSize:]
		dstOffset += chunkSize
	}

	h.records[id] = uploadRecord{pool: h.poolIndex}
	return id, nil
}

// UploadDataToImage queues an unchunked image upload against the active
// pool, requiring the full payload to fit in one staging reservation.
func (h *UploadHeap) UploadDataToImage(info ImageDataUploadInfo) (uint64, error) {
	id := h.nextID
	h.nextID++

	pool := h.pools[h.poolIndex]
	if len(pool.imageUploads) >= MaxUploadsPerPool {
		if _, err := h.SendToGPU(); err != nil {
			return id, err
		}
		pool = h.pools[h.poolIndex]
	}

	staging, offset, ok := pool.reserve(h.device, uint64(len(info.Data)))
	if !ok {
		return id, fmt.Errorf("rhi: UploadDataToImage: staging capacity exhausted")
	}
	if err := staging.Write(info.Data, offset); err != nil {
		return id, err
	}

	dim := info.Image.info.Dimension
	extent := Extent3D{
		Width:  dim.Width >> info.MipLevel,
		Height: dim.Height >> info.MipLevel,
		Depth:  max32(dim.Depth>>info.MipLevel, 1),
	}

	pool.imageUploads = append(pool.imageUploads, imageUploadInfo{
		image:         info.Image,
		stagingBuffer: staging,
		stagingOffset: offset,
		mipLevel:      info.MipLevel,
		extent:        extent,
		srcQueue:      info.SrcQueue,
		dstQueue:      info.DstQueue,
	})

	h.records[id] = uploadRecord{pool: h.poolIndex}
	return id, nil
}

func max32(v, floor uint32) uint32 {
	if v < floor {
		return floor
	}
	return v
}

// SendToGPU records and submits the active pool's pending uploads on the
// transfer queue, waiting on the pool's own previous signal value and
// signaling its next one, then rotates to the following pool. Returns the
// fence/value pair a consumer should wait on before touching the uploaded
// resources.
func (h *UploadHeap) SendToGPU() (FenceInfo, error) {
	idx := h.poolIndex
	pool := h.pools[idx]
	fence := pool.fence.Get()

	if len(pool.bufferUploads) == 0 && len(pool.imageUploads) == 0 {
		return FenceInfo{Fence: fence, Value: pool.nextValue}, nil
	}

	cb, ok := h.commandQueue.NextCommandBuffer(h.thread)
	if !ok {
		return FenceInfo{}, fmt.Errorf("rhi: UploadHeap.SendToGPU: no free command buffer")
	}
	if err := cb.Begin(); err != nil {
		return FenceInfo{}, err
	}

	for _, bu := range pool.bufferUploads {
		if bu.srcQueue != DeviceQueueTransfer && bu.srcQueue != DeviceQueueNone {
			cb.PipelineBarrierBuffer(bu.dst, BufferBarrierInfo{
				Offset: bu.dstOffset, Size: bu.size,
				SrcAccess: AccessNone, DstAccess: AccessTransferWrite,
				SrcQueue: bu.srcQueue, DstQueue: DeviceQueueTransfer,
			})
		}
	}
	cb.PipelineBarrierMemory(MemoryBarrierInfo{SrcAccess: AccessNone, DstAccess: AccessTransferWrite})

	for _, iu := range pool.imageUploads {
		oldLayout := ImageLayoutUndefined
		if iu.srcQueue != DeviceQueueTransfer && iu.srcQueue != DeviceQueueNone {
			oldLayout = iu.image.layout
		}
		cb.PipelineBarrierImage(iu.image, ImageBarrierInfo{
			OldLayout: oldLayout, NewLayout: ImageLayoutTransferDst,
			SrcAccess: AccessNone, DstAccess: AccessTransferWrite,
			SrcQueue: iu.srcQueue, DstQueue: DeviceQueueTransfer,
			LevelCount: 1, BaseMipLevel: iu.mipLevel,
		})
	}

	for _, bu := range pool.bufferUploads {
		cb.CopyBufferToBuffer(bu.stagingBuffer, bu.dst, bu.stagingOffset, bu.dstOffset, bu.size)
	}
	for _, iu := range pool.imageUploads {
		cb.CopyBufferToImage(iu.stagingBuffer, iu.stagingOffset, iu.image, iu.mipLevel, iu.extent)
	}

	for _, iu := range pool.imageUploads {
		cb.PipelineBarrierImage(iu.image, ImageBarrierInfo{
			OldLayout: ImageLayoutTransferDst, NewLayout: ImageLayoutTransferDst,
			SrcAccess: AccessTransferWrite, DstAccess: AccessNone,
			SrcQueue: DeviceQueueTransfer, DstQueue: iu.dstQueue,
			LevelCount: 1, BaseMipLevel: iu.mipLevel,
		})
	}
	for _, bu := range pool.bufferUploads {
		if bu.dstQueue != DeviceQueueTransfer && bu.dstQueue != DeviceQueueNone {
			cb.PipelineBarrierBuffer(bu.dst, BufferBarrierInfo{
				Offset: bu.dstOffset, Size: bu.size,
				SrcAccess: AccessTransferWrite, DstAccess: AccessNone,
				SrcQueue: DeviceQueueTransfer, DstQueue: bu.dstQueue,
			})
		}
	}

	if err := cb.End(); err != nil {
		return FenceInfo{}, err
	}

	group, ok := h.commandQueue.NewSubmissionGroup()
	if !ok {
		return FenceInfo{}, fmt.Errorf("rhi: UploadHeap.SendToGPU: no free submission group")
	}
	group.SubmitCommandBuffer(cb)
	if pool.lastSignal > 0 {
		group.WaitOnFence(fence, pool.lastSignal)
	}
	pool.nextValue++
	group.SignalFence(fence, pool.nextValue)

	if !h.commandQueue.submitter.SendToGPU() {
		return FenceInfo{}, fmt.Errorf("rhi: UploadHeap.SendToGPU: submit failed")
	}
	h.commandQueue.submitter.Clear()

	for id, rec := range h.records {
		if rec.pool == idx && rec.value == 0 {
			rec.value = pool.nextValue
			h.records[id] = rec
		}
	}

	pool.lastSignal = pool.nextValue
	result := FenceInfo{Fence: fence, Value: pool.nextValue}

	pool.reset()
	h.poolIndex = (h.poolIndex + 1) % MaxPoolInQueue
	return result, nil
}

// Terminate tears down the heap's command queue façade.
func (h *UploadHeap) Terminate() {
	h.commandQueue.Terminate()
}
