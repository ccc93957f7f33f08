package galloc

import "testing"

func TestBuddyAllocatorAllocFree(t *testing.T) {
	b, err := NewBuddyAllocator(1<<20, 256)
	if err != nil {
		t.Fatalf("NewBuddyAllocator: %v", err)
	}

	blk, err := b.Alloc(1000)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if blk.Size < 1000 || !isPowerOfTwo(blk.Size) {
		t.Fatalf("Alloc returned size %d, want power-of-two >= 1000", blk.Size)
	}

	if err := b.Free(blk); err != nil {
		t.Fatalf("Free: %v", err)
	}
	if err := b.Free(blk); err == nil {
		t.Fatalf("second Free should fail with double-free")
	}
}

func TestBuddyAllocatorMergeReclaimsFullRegion(t *testing.T) {
	b, err := NewBuddyAllocator(4096, 256)
	if err != nil {
		t.Fatalf("NewBuddyAllocator: %v", err)
	}

	var blocks []BuddyBlock
	for i := 0; i < 16; i++ {
		blk, err := b.Alloc(256)
		if err != nil {
			t.Fatalf("Alloc #%d: %v", i, err)
		}
		blocks = append(blocks, blk)
	}

	if _, err := b.Alloc(256); err != ErrOutOfMemory {
		t.Fatalf("expected ErrOutOfMemory once full, got %v", err)
	}

	for _, blk := range blocks {
		if err := b.Free(blk); err != nil {
			t.Fatalf("Free: %v", err)
		}
	}

	whole, err := b.Alloc(4096)
	if err != nil {
		t.Fatalf("Alloc full region after merge: %v", err)
	}
	if whole.Size != 4096 {
		t.Fatalf("merged allocation size = %d, want 4096", whole.Size)
	}
}

func TestBuddyAllocatorRejectsBadConfig(t *testing.T) {
	if _, err := NewBuddyAllocator(1000, 256); err != ErrInvalidConfig {
		t.Fatalf("non-power-of-two total should fail, got %v", err)
	}
	if _, err := NewBuddyAllocator(1024, 0); err == nil {
		t.Fatalf("zero min block size should fail")
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[uint64]uint64{0: 1, 1: 1, 2: 2, 3: 4, 255: 256, 256: 256, 257: 512}
	for in, want := range cases {
		if got := nextPowerOfTwo(in); got != want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", in, got, want)
		}
	}
}
