package rhi

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a DeviceError per the taxonomy every fallible
// operation in this package surfaces.
type ErrorKind int

const (
	// Unsupported means the selected device lacks a required feature, or a
	// requested format/usage combination is not supported.
	Unsupported ErrorKind = iota
	// OutOfMemory means the memory allocator returned failure.
	OutOfMemory
	// InvalidArgument means a shape contract was violated (null handles,
	// unaligned push-constant offsets, writing to non-host-visible memory).
	InvalidArgument
	// Exhausted means a bounded internal structure (command-buffer pool
	// slots, upload-heap pool capacity) reached its cap.
	Exhausted
	// Transient means a swapchain operation returned a recoverable,
	// caller-must-retry-or-recreate state.
	Transient
	// Fatal means the device was lost.
	Fatal
)

func (k ErrorKind) String() string {
	switch k {
	case Unsupported:
		return "unsupported"
	case OutOfMemory:
		return "out of memory"
	case InvalidArgument:
		return "invalid argument"
	case Exhausted:
		return "exhausted"
	case Transient:
		return "transient"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// DeviceError is the error type returned by every fallible operation in
// this package. It carries a taxonomy Kind alongside the wrapped cause.
type DeviceError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *DeviceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rhi: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("rhi: %s: %s", e.Op, e.Kind)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// Is reports whether target is a kind sentinel (an unexported kindError)
// with the same Kind, so callers can match with errors.Is(err,
// rhi.ErrUnsupported) and the other Err* sentinels.
func (e *DeviceError) Is(target error) bool {
	var ke kindError
	if errors.As(target, &ke) {
		return e.Kind == ErrorKind(ke)
	}
	return false
}

type kindError ErrorKind

func (k kindError) Error() string { return ErrorKind(k).String() }

// newError builds a *DeviceError for op with the given kind and cause.
func newError(kind ErrorKind, op string, cause error) *DeviceError {
	return &DeviceError{Kind: kind, Op: op, Err: cause}
}

// Sentinel errors for errors.Is matching against a DeviceError's Kind.
var (
	ErrUnsupported     error = kindError(Unsupported)
	ErrOutOfMemory     error = kindError(OutOfMemory)
	ErrInvalidArgument error = kindError(InvalidArgument)
	ErrExhausted       error = kindError(Exhausted)
	ErrTransient       error = kindError(Transient)
	ErrFatal           error = kindError(Fatal)
)

// ErrReleased is returned when operating on a resource whose last handle has
// already been released.
var ErrReleased = errors.New("rhi: resource already released")

// debugAssertionsEnabled is flipped by the "debug" build tag (see
// debug_on.go / debug_off.go). In release builds debugAssert is a no-op;
// in debug builds it panics, surfacing invariant violations immediately
// instead of degrading silently.
func debugAssert(cond bool, msg string) {
	if debugAssertionsEnabled && !cond {
		panic("rhi: assertion failed: " + msg)
	}
}
