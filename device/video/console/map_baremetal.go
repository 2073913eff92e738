//go:build baremetal

package console

import (
	"unsafe"

	"vgatext/kernel"
)

// Bare metal builds overlay the cell slice directly on top of the
// physical framebuffer address. The resulting writes hit the display
// hardware with no copies in between.
var mapRegionFn = mapPhysicalRegion

func mapPhysicalRegion(physAddr uintptr, cells int) ([]uint16, *kernel.Error) {
	return unsafe.Slice((*uint16)(unsafe.Pointer(physAddr)), cells), nil
}
