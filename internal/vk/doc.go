// Package vk is a pure-Go Vulkan 1.3 binding built on goffi, resolving every
// function pointer at runtime through vkGetInstanceProcAddr rather than
// linking against a pre-generated C binding. It exists because the
// pre-generated bindings available to this module predate dynamic
// rendering, synchronization2, timeline semaphores, and buffer device
// address, all of which the bindless renderer on top of it requires.
//
// The package mirrors the surface of the xlab-style generated bindings
// (PascalCase struct fields, Go string/slice fields standing in for C
// char*/array-of-pointer members, a Deref no-op on structs whose upstream
// form needs dereferencing) so that callers read like a conventional
// generated binding despite being hand-written.
package vk
