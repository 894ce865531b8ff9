package usbwrap

import "github.com/clktmr/esp32s3/soc/system"

// EnableBusClock gates the USB Wrap module's APB bus clock.
func EnableBusClock(enable bool) {
	system.EnableClock(system.USB, enable)
}

// Reset pulses the USB Wrap module's reset line. It returns immediately
// after deasserting the reset, any required settle time is up to the caller.
func Reset() {
	system.Reset(system.USB)
}
