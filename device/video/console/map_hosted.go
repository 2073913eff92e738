//go:build !baremetal

package console

import "vgatext/kernel"

// Hosted builds cannot reinterpret physical memory, so the framebuffer is
// emulated with ordinary process memory and the frontend packages present
// its contents in place of the display hardware. The fixed physical
// address is ignored.
var mapRegionFn = mapEmulatedRegion

func mapEmulatedRegion(_ uintptr, cells int) ([]uint16, *kernel.Error) {
	return make([]uint16, cells), nil
}
