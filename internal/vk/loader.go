package vk

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

var (
	vulkanLib             unsafe.Pointer
	vkGetInstanceProcAddr unsafe.Pointer
	cifGetInstanceProcAddr types.CallInterface

	initOnce sync.Once
	errInit  error

	// loadedInstance is the instance handed to InitInstance. Every proc in
	// calls.go resolves against it through vkGetInstanceProcAddr, which the
	// spec guarantees can also resolve device-level functions (just less
	// efficiently than vkGetDeviceProcAddr would) -- this codebase never
	// loads a separate device-level proc table, so one resolution path
	// covers every call site.
	loadedInstance Instance
)

// vulkanLibraryName returns the platform-specific Vulkan loader name.
func vulkanLibraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "vulkan-1.dll"
	case "darwin":
		return "libvulkan.dylib"
	default:
		return "libvulkan.so.1"
	}
}

// Init loads the Vulkan loader library and prepares the proc-address call
// interface. Safe to call more than once; only the first call does work.
func Init() error {
	initOnce.Do(func() {
		errInit = doInit()
	})
	return errInit
}

func doInit() error {
	var err error

	vulkanLib, err = ffi.LoadLibrary(vulkanLibraryName())
	if err != nil {
		return fmt.Errorf("vk: load %s: %w", vulkanLibraryName(), err)
	}

	vkGetInstanceProcAddr, err = ffi.GetSymbol(vulkanLib, "vkGetInstanceProcAddr")
	if err != nil {
		return fmt.Errorf("vk: resolve vkGetInstanceProcAddr: %w", err)
	}

	// PFN_vkVoidFunction vkGetInstanceProcAddr(VkInstance, const char*)
	err = ffi.PrepareCallInterface(&cifGetInstanceProcAddr, types.DefaultCall,
		types.PointerTypeDescriptor,
		[]*types.TypeDescriptor{
			types.UInt64TypeDescriptor,
			types.PointerTypeDescriptor,
		})
	if err != nil {
		return fmt.Errorf("vk: prepare GetInstanceProcAddr interface: %w", err)
	}

	return nil
}

// SetGetInstanceProcAddr lets a caller that already owns a loader context
// (e.g. one shared with another Vulkan-using library in process) supply its
// own vkGetInstanceProcAddr rather than dlopen-ing a second copy of the
// driver.
func SetGetInstanceProcAddr(proc unsafe.Pointer) {
	vkGetInstanceProcAddr = proc
}

// InitInstance records the instance used to resolve every subsequent
// instance- and device-level proc address.
func InitInstance(instance Instance) {
	loadedInstance = instance
}

func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// GetInstanceProcAddr resolves name against instance (0 for global
// functions such as vkCreateInstance).
func GetInstanceProcAddr(instance Instance, name string) unsafe.Pointer {
	if vkGetInstanceProcAddr == nil {
		return nil
	}

	cname := cString(name)
	namePtr := unsafe.Pointer(&cname[0])

	var result unsafe.Pointer
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&namePtr),
	}
	_ = ffi.CallFunction(&cifGetInstanceProcAddr, vkGetInstanceProcAddr, unsafe.Pointer(&result), args[:])
	return result
}

// GetDeviceProcAddr resolves name the same way GetInstanceProcAddr does;
// device is unused by the instance-level resolver but kept for call-site
// symmetry with the generated bindings this package replaces.
func GetDeviceProcAddr(device Device, name string) unsafe.Pointer {
	return GetInstanceProcAddr(loadedInstance, name)
}

// Close releases the loaded Vulkan library.
func Close() error {
	if vulkanLib == nil {
		return nil
	}
	err := ffi.FreeLibrary(vulkanLib)
	vulkanLib = nil
	vkGetInstanceProcAddr = nil
	return err
}
