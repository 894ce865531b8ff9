// Package system accesses the SYSTEM block, which contains clock gating and
// reset control for the peripherals on the APB/AHB bus.
package system

import (
	"embedded/mmio"

	"github.com/clktmr/esp32s3/soc"
)

var regs *registers = soc.MMIO[registers](baseAddr)

const baseAddr soc.Addr = 0x600c_0000

type registers struct {
	_           [6]mmio.U32
	peripClkEn0 mmio.R32[Peripheral]
	peripClkEn1 mmio.U32
	peripRstEn0 mmio.R32[Peripheral]
	peripRstEn1 mmio.U32
}

// Peripheral identifies one of the bit pairs in the SYSTEM block's first
// clock enable and reset register. Clock enable and reset share the same bit
// layout.
type Peripheral uint32

const (
	Timers      Peripheral = 1 << 0
	SPI01       Peripheral = 1 << 1
	UART0       Peripheral = 1 << 2
	WDG         Peripheral = 1 << 3
	I2S0        Peripheral = 1 << 4
	UART1       Peripheral = 1 << 5
	SPI2        Peripheral = 1 << 6
	I2CExt0     Peripheral = 1 << 7
	UHCI0       Peripheral = 1 << 8
	RMT         Peripheral = 1 << 9
	PCNT        Peripheral = 1 << 10
	LEDC        Peripheral = 1 << 11
	UHCI1       Peripheral = 1 << 12
	TimerGroup0 Peripheral = 1 << 13
	TimerGroup1 Peripheral = 1 << 15
	SPI3        Peripheral = 1 << 16
	PWM0        Peripheral = 1 << 17
	I2CExt1     Peripheral = 1 << 18
	TWAI        Peripheral = 1 << 19
	I2S1        Peripheral = 1 << 21
	USB         Peripheral = 1 << 23
	UARTMem     Peripheral = 1 << 24
	SysTimer    Peripheral = 1 << 29
)

// EnableClock gates the bus clock of the given peripherals. Without its
// clock a peripheral's registers aren't accessible.
func EnableClock(p Peripheral, enable bool) {
	if enable {
		regs.peripClkEn0.SetBits(p)
	} else {
		regs.peripClkEn0.ClearBits(p)
	}
}

// ClockEnabled reports whether the bus clock of all given peripherals is
// enabled.
func ClockEnabled(p Peripheral) bool {
	return regs.peripClkEn0.LoadBits(p) == p
}

// Reset resets the given peripherals by asserting and immediately
// deasserting their reset lines. It doesn't wait for the peripherals to come
// up again.
func Reset(p Peripheral) {
	regs.peripRstEn0.SetBits(p)
	regs.peripRstEn0.ClearBits(p)
}
