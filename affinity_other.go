//go:build !linux

package parmat

// PinToCPU is a no-op outside Linux.
func PinToCPU(int) error { return nil }
