// Package device defines the driver interface implemented by all device
// drivers together with the probe registry that the hal package walks at
// startup.
package device

import (
	"io"

	"vgatext/kernel"
)

// Driver is an interface implemented by all drivers.
type Driver interface {
	// DriverName returns the name of the driver.
	DriverName() string

	// DriverVersion returns the driver version.
	DriverVersion() (major uint16, minor uint16, patch uint16)

	// DriverInit initializes the device driver. If the driver init code
	// needs to log some output, it can use the supplied io.Writer in
	// conjunction with a call to kfmt.Fprintf.
	DriverInit(io.Writer) *kernel.Error
}

// ProbeFn is a function that scans for the presence of a particular piece
// of hardware and returns a driver for it, or nil if the hardware is not
// present.
type ProbeFn func() Driver

var probeFns []ProbeFn

// RegisterProbe appends a probe function to the registry. Drivers are
// expected to call it from an init() block.
func RegisterProbe(fn ProbeFn) {
	probeFns = append(probeFns, fn)
}

// Probes returns the list of registered probe functions in registration
// order.
func Probes() []ProbeFn {
	return probeFns
}
