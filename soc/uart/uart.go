// Package uart implements a polled driver for the UART peripherals.
//
// It's primarily meant as a console for debugging and testing. It relies on
// the clock and baudrate setup the ROM bootloader leaves behind on UART0
// (115200 8N1 on the boot console) and only reads and writes the FIFOs.
// Don't expect any throughput, reads and writes busy-wait on the FIFO
// counters.
package uart

import (
	"embedded/mmio"

	"github.com/clktmr/esp32s3/soc"
)

const (
	uart0Addr soc.Addr = 0x6000_0000
	uart1Addr soc.Addr = 0x6000_1000
)

type registers struct {
	fifo   mmio.U32
	intRaw mmio.U32
	intSt  mmio.U32
	intEna mmio.U32
	intClr mmio.U32
	clkdiv mmio.U32
	rxFilt mmio.U32
	status mmio.U32
	conf0  mmio.U32
	conf1  mmio.U32
}

// Bit fields of the status register.
const (
	rxCountMask  = 0x3ff
	txCountShift = 16
	txCountMask  = 0x3ff << txCountShift
)

const fifoDepth = 128

// UART is a single UART peripheral. Safe for use by a single reader and a
// single writer goroutine.
type UART struct {
	regs *registers
}

// UART0 returns the uart the ROM bootloader uses as boot console.
func UART0() *UART { return &UART{soc.MMIO[registers](uart0Addr)} }

// UART1 returns the second uart. Unlike UART0 it has no setup left behind by
// the ROM, the caller must configure pins and baudrate before use.
func UART1() *UART { return &UART{soc.MMIO[registers](uart1Addr)} }

func (u *UART) rxCount() int {
	return int(u.regs.status.Load() & rxCountMask)
}

func (u *UART) txCount() int {
	return int((u.regs.status.Load() & txCountMask) >> txCountShift)
}

// WriteByte writes a single byte to the TX FIFO, busy-waiting for space.
func (u *UART) WriteByte(b byte) error {
	for u.txCount() >= fifoDepth-1 {
	}
	u.regs.fifo.Store(uint32(b))
	return nil
}

// Write implements [io.Writer]. It never fails, but might busy-wait for the
// FIFO to drain.
func (u *UART) Write(p []byte) (n int, err error) {
	for _, b := range p {
		u.WriteByte(b)
		n++
	}
	return
}

// Read implements [io.Reader]. It blocks until at least one byte was
// received.
func (u *UART) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	for u.rxCount() == 0 {
	}
	for n < len(p) && u.rxCount() > 0 {
		p[n] = byte(u.regs.fifo.Load())
		n++
	}
	return
}

// Flush busy-waits until the TX FIFO has fully drained.
func (u *UART) Flush() {
	for u.txCount() > 0 {
	}
}
