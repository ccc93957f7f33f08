package rhi

import "sync/atomic"

// RefCountedResource gives every device-owned resource type an atomic
// reference count. Embed it by value; its methods promote to the embedding
// type. The counter reaching zero is the only trigger for scheduling
// deferred ("zombie") destruction — nothing else destroys a resource.
type RefCountedResource struct {
	refs atomic.Uint64
}

// initRefCount seeds the counter at 1; called once by each resource's
// constructor before the first Resource[T] handle is handed to the caller.
func (r *RefCountedResource) initRefCount() {
	r.refs.Store(1)
}

// reference increments the reference count, returning the new value.
func (r *RefCountedResource) reference() uint64 {
	return r.refs.Add(1)
}

// dereference decrements the reference count, returning the new value. A
// return of 0 means the caller just dropped the last handle.
func (r *RefCountedResource) dereference() uint64 {
	return r.refs.Add(^uint64(0))
}

// refCount reads the current reference count.
func (r *RefCountedResource) refCount() uint64 {
	return r.refs.Load()
}

// DeviceResource is embedded by every resource type that is owned by, and
// holds a non-owning back-reference to, a Device. All validity queries
// require the device pointer to be non-nil.
type DeviceResource struct {
	device *Device
}

// Device returns the owning device, or nil for an unattached resource.
func (d *DeviceResource) Device() *Device { return d.device }

// zombiable is implemented by every concrete resource type. destroyNow
// performs the actual API destruction and returns the resource's pool slot;
// Device.ClearGarbage calls it once the GPU timeline has caught up to the
// resource's drop point, and a few owners and creation error paths (a
// Swapchain on its images and semaphores, for one) also call it directly.
type zombiable interface {
	destroyNow()
}

// resource is the constraint satisfied by every type usable as Resource[T]'s
// type parameter: reference-countable, device-owned, and destroyable.
type resource interface {
	comparable
	zombiable
	reference() uint64
	dereference() uint64
	refCount() uint64
}

// Resource is a strongly-typed, reference-counted handle: `{id, T*}` in the
// language of the underlying design, realized here as a pointer to a
// reference-counted, device-owned value. Constructing a Resource from an
// existing one (Clone) increments the reference count; Release decrements
// it and, on reaching zero, schedules the underlying object for deferred
// destruction. The zero value is the null handle.
type Resource[T resource] struct {
	ptr T
}

// newResource wraps a freshly-constructed, ref-count-1 object as the first
// handle to it.
func newResource[T resource](ptr T) Resource[T] {
	return Resource[T]{ptr: ptr}
}

// Valid reports whether the handle names a live resource.
func (r Resource[T]) Valid() bool {
	var zero T
	return r.ptr != zero
}

// Get returns the underlying resource pointer. Callers must not retain it
// beyond the handle's lifetime.
func (r Resource[T]) Get() T {
	return r.ptr
}

// Clone shares ownership of the same underlying resource, incrementing its
// reference count.
func (r Resource[T]) Clone() Resource[T] {
	var zero T
	if r.ptr == zero {
		return r
	}
	r.ptr.reference()
	return r
}

// Release decrements the reference count. If this was the last handle, the
// resource is scheduled for deferred destruction (see Device.scheduleZombie)
// rather than destroyed immediately, since in-flight GPU work may still
// reference its API object.
func (r Resource[T]) Release(d *Device) {
	var zero T
	if r.ptr == zero {
		return
	}
	if r.ptr.dereference() == 0 {
		d.scheduleZombie(r.ptr)
	}
}
