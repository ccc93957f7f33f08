package vk

import (
	"fmt"
	"sync"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// Vulkan has several hundred entry points but only a few dozen distinct C
// signatures once every handle, enum, and flags type is reduced to its ABI
// width. Rather than hand-declare one named types.CallInterface per shape
// the way the generated bindings do, sig caches one CallInterface per
// (return, args...) shape the first time it is asked for and reuses it for
// every proc that shares that shape.
var (
	tPtr    = types.PointerTypeDescriptor
	tU32    = types.UInt32TypeDescriptor
	tU64    = types.UInt64TypeDescriptor
	tI32    = types.SInt32TypeDescriptor
	tF32    = types.FloatTypeDescriptor
	tVoid   = types.VoidTypeDescriptor
	tResult = types.SInt32TypeDescriptor // VkResult's underlying C type is int32_t
)

var (
	sigMu    sync.Mutex
	sigCache = map[string]*types.CallInterface{}
)

func sig(ret *types.TypeDescriptor, args ...*types.TypeDescriptor) *types.CallInterface {
	key := fmt.Sprintf("%p", ret)
	for _, a := range args {
		key += fmt.Sprintf(",%p", a)
	}

	sigMu.Lock()
	defer sigMu.Unlock()

	if cif, ok := sigCache[key]; ok {
		return cif
	}

	cif := &types.CallInterface{}
	argDescs := make([]*types.TypeDescriptor, len(args))
	copy(argDescs, args)
	if err := ffi.PrepareCallInterface(cif, types.DefaultCall, ret, argDescs); err != nil {
		panic(fmt.Sprintf("vk: prepare call interface: %v", err))
	}
	sigCache[key] = cif
	return cif
}
