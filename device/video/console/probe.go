package console

import "vgatext/device"

// probeForVgaText checks for the presence of a text-mode console. The
// text buffer is always present on this class of hardware so the probe
// never fails.
func probeForVgaText() device.Driver {
	return NewVgaText()
}

func init() {
	device.RegisterProbe(probeForVgaText)
}
