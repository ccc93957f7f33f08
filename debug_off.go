//go:build !debug

package rhi

const debugAssertionsEnabled = false
