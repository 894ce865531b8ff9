// Package rtccntl accesses the RTC control block. Only the USB related
// configuration is implemented so far.
package rtccntl

import (
	"embedded/mmio"

	"github.com/clktmr/esp32s3/soc"
)

var regs *registers = soc.MMIO[registers](baseAddr)

const baseAddr soc.Addr = 0x6000_8000

type registers struct {
	_       [72]mmio.U32
	usbConf mmio.R32[USBConf]
}

// USBConf is the value of the RTC_CNTL_USB_CONF_REG register.
type USBConf uint32

const (
	IOMuxResetDisable USBConf = 1 << 18 // keep io mux out of system reset
	SWUSBPhySelEnable USBConf = 1 << 19 // enables software control of the PHY mux
	SWUSBPhySel       USBConf = 1 << 20 // 1: internal PHY to USB Wrap, 0: to USB Serial/JTAG
)

// SelectUSBPhy routes the internal USB FSLS PHY to the USB Wrap (OTG
// controller) if toWrap is true, else to the USB Serial/JTAG controller,
// taking control of the mux from the hardware default.
//
// The mux select and its enable are written with a single store, so the
// hardware never observes the mux enabled with a stale select value.
func SelectUSBPhy(toWrap bool) {
	conf := regs.usbConf.Load() | SWUSBPhySelEnable
	if toWrap {
		conf |= SWUSBPhySel
	} else {
		conf &^= SWUSBPhySel
	}
	regs.usbConf.Store(conf)
}

// DisableIOMuxReset excludes the io mux from system resets. Keeps the USB
// pads configured across a warm reset, e.g. to hold a CDC connection up
// while flashing.
func DisableIOMuxReset(disable bool) {
	if disable {
		regs.usbConf.SetBits(IOMuxResetDisable)
	} else {
		regs.usbConf.ClearBits(IOMuxResetDisable)
	}
}
