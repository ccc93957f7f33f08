package rhi

import "testing"

func TestAccessCatalogPairsNonZeroStageAndMatchingAccessBits(t *testing.T) {
	cases := []struct {
		name         string
		access       Access
		wantStage    PipelineStage
		wantAnyBits  MemoryAccessType
	}{
		{"TransferRead", AccessTransferRead, PipelineStageTransfer, MemoryAccessTransferRead},
		{"TransferWrite", AccessTransferWrite, PipelineStageTransfer, MemoryAccessTransferWrite},
		{"VertexShaderRead", AccessVertexShaderRead, PipelineStageVertexShader, MemoryAccessShaderRead},
		{"FragmentShaderRead", AccessFragmentShaderRead, PipelineStageFragmentShader, MemoryAccessShaderRead},
		{"ComputeShaderWrite", AccessComputeShaderWrite, PipelineStageComputeShader, MemoryAccessShaderWrite},
		{"ColorAttachmentWrite", AccessColorAttachmentWrite, PipelineStageColorAttachmentOutput, MemoryAccessColorAttachmentWrite},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.access.Stage != c.wantStage {
				t.Errorf("Stage = %v, want %v", c.access.Stage, c.wantStage)
			}
			if c.access.Access&c.wantAnyBits == 0 {
				t.Errorf("Access = %v, want to include %v", c.access.Access, c.wantAnyBits)
			}
		})
	}
}

func TestAccessNoneCarriesNoMemoryAccess(t *testing.T) {
	if AccessNone.Access != MemoryAccessNone {
		t.Fatalf("AccessNone.Access = %v, want MemoryAccessNone", AccessNone.Access)
	}
}

func TestAccessColorAttachmentReadWriteCarriesBothBits(t *testing.T) {
	rw := AccessColorAttachmentReadWrite
	if rw.Access&MemoryAccessColorAttachmentRead == 0 {
		t.Errorf("missing read bit in %v", rw.Access)
	}
	if rw.Access&MemoryAccessColorAttachmentWrite == 0 {
		t.Errorf("missing write bit in %v", rw.Access)
	}
}
