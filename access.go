package rhi

// Access pairs a pipeline stage with a memory access type; it is the value
// used for the srcAccess/dstAccess fields of every barrier verb. Pairing the
// two together (rather than letting callers mismatch a stage with an
// unrelated access flag) is the whole point of the catalog below.
type Access struct {
	Stage  PipelineStage
	Access MemoryAccessType
}

// Pre-composed access catalog, named the way callers reach for them when
// building barriers: one constant per (stage, access) pair actually used by
// the recording verbs and the upload heap's ownership-transfer barriers.
var (
	AccessNone = Access{Stage: PipelineStageTopOfPipe, Access: MemoryAccessNone}

	AccessTransferRead  = Access{Stage: PipelineStageTransfer, Access: MemoryAccessTransferRead}
	AccessTransferWrite = Access{Stage: PipelineStageTransfer, Access: MemoryAccessTransferWrite}

	AccessVertexAttributeInputRead = Access{Stage: PipelineStageVertexInput, Access: MemoryAccessVertexAttributeRead}
	AccessIndexInputRead           = Access{Stage: PipelineStageVertexInput, Access: MemoryAccessIndexRead}

	AccessVertexShaderRead  = Access{Stage: PipelineStageVertexShader, Access: MemoryAccessShaderRead}
	AccessFragmentShaderRead = Access{Stage: PipelineStageFragmentShader, Access: MemoryAccessShaderRead}
	AccessComputeShaderRead  = Access{Stage: PipelineStageComputeShader, Access: MemoryAccessShaderRead}
	AccessComputeShaderWrite = Access{Stage: PipelineStageComputeShader, Access: MemoryAccessShaderWrite}

	AccessColorAttachmentReadWrite = Access{
		Stage:  PipelineStageColorAttachmentOutput,
		Access: MemoryAccessColorAttachmentRead | MemoryAccessColorAttachmentWrite,
	}
	AccessColorAttachmentWrite = Access{Stage: PipelineStageColorAttachmentOutput, Access: MemoryAccessColorAttachmentWrite}

	AccessDepthStencilAttachmentReadWrite = Access{
		Stage:  PipelineStageEarlyFragmentTests | PipelineStageLateFragmentTests,
		Access: MemoryAccessDepthStencilAttachmentRead | MemoryAccessDepthStencilAttachmentWrite,
	}

	AccessHostRead  = Access{Stage: PipelineStageTopOfPipe, Access: MemoryAccessHostRead}
	AccessHostWrite = Access{Stage: PipelineStageTopOfPipe, Access: MemoryAccessHostWrite}

	AccessPresent = Access{Stage: PipelineStageBottomOfPipe, Access: MemoryAccessNone}
)
