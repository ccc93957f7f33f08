package rhi

import "testing"

func TestSamplerInfoPackedKeyIsDeterministic(t *testing.T) {
	info := SamplerInfo{
		MinFilter: TexelFilterLinear, MagFilter: TexelFilterLinear,
		MipmapMode: MipmapModeLinear,
		AddressU:   SamplerAddressRepeat, AddressV: SamplerAddressRepeat, AddressW: SamplerAddressRepeat,
		CompareOp: CompareOpLess, CompareEnable: false,
		BorderColor:   BorderColorOpaqueBlack,
		MaxAnisotropy: 16, MinLod: 0, MaxLod: 16,
	}
	if info.packedKey() != info.packedKey() {
		t.Fatalf("packedKey is not deterministic for identical SamplerInfo values")
	}
}

func TestSamplerInfoPackedKeyDistinguishesFilters(t *testing.T) {
	a := SamplerInfo{MinFilter: TexelFilterNearest, MagFilter: TexelFilterNearest}
	b := SamplerInfo{MinFilter: TexelFilterLinear, MagFilter: TexelFilterNearest}
	if a.packedKey() == b.packedKey() {
		t.Fatalf("distinct MinFilter values packed to the same key")
	}
}

func TestSamplerInfoPackedKeyDistinguishesAddressModes(t *testing.T) {
	a := SamplerInfo{AddressU: SamplerAddressRepeat}
	b := SamplerInfo{AddressU: SamplerAddressClampToBorder}
	if a.packedKey() == b.packedKey() {
		t.Fatalf("distinct AddressU values packed to the same key")
	}
}

func TestSamplerInfoPackedKeyDistinguishesCompareEnable(t *testing.T) {
	a := SamplerInfo{CompareEnable: false}
	b := SamplerInfo{CompareEnable: true}
	if a.packedKey() == b.packedKey() {
		t.Fatalf("CompareEnable toggling did not change the packed key")
	}
}

func TestQuantizeUnitClampsToRange(t *testing.T) {
	cases := []struct {
		name string
		in   float32
		want uint32
	}{
		{"below zero clamps to 0", -1, 0},
		{"zero", 0, 0},
		{"above one clamps to max", 2, 255},
		{"one maps to max", 1, 255},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := quantizeUnit(c.in); got != c.want {
				t.Errorf("quantizeUnit(%v) = %d, want %d", c.in, got, c.want)
			}
		})
	}
}
