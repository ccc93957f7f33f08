package rhi

import (
	"errors"
	"fmt"
	"testing"
)

func TestDeviceErrorMatchesItsKindSentinel(t *testing.T) {
	err := newError(InvalidArgument, "Buffer.Write", fmt.Errorf("range exceeds buffer size"))

	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("errors.Is(err, ErrInvalidArgument) = false, want true")
	}
	if errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("errors.Is(err, ErrOutOfMemory) = true, want false")
	}
}

func TestDeviceErrorUnwrapsToCause(t *testing.T) {
	cause := fmt.Errorf("vkCreateBuffer: 42")
	err := newError(Unsupported, "Buffer.from", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false, want true")
	}
}

func TestErrorKindStringIsStable(t *testing.T) {
	cases := map[ErrorKind]string{
		Unsupported:     "unsupported",
		OutOfMemory:     "out of memory",
		InvalidArgument: "invalid argument",
		Exhausted:       "exhausted",
		Transient:       "transient",
		Fatal:           "fatal",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
