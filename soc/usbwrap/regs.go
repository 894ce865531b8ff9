// Package usbwrap controls the USB Wrap peripheral, which connects the USB
// OTG controller to either the internal USB FSLS PHY or an external PHY via
// the GPIO matrix.
//
// The package is a thin facade over the peripheral's two configuration
// registers. It does not implement the USB protocol, interrupt handling or
// any initialization sequencing with settle delays. Those are the
// responsibility of the USB stack built on top. There is also no locking, if
// multiple goroutines or an interrupt handler reconfigure the PHY they must
// synchronize externally.
package usbwrap

import (
	"embedded/mmio"

	"github.com/clktmr/esp32s3/soc"
)

const baseAddr soc.Addr = 0x6003_9000

// USB returns the USB Wrap register block. It's the only instance on this
// chip, but all PHY operations take the block receiver explicitly, mirroring
// the hardware's handle based register layout.
func USB() *Registers { return soc.MMIO[Registers](baseAddr) }

// Registers is the USB Wrap register block.
type Registers struct {
	otgConf  mmio.R32[OtgConf]
	testConf mmio.R32[TestConf]
	_        [253]mmio.U32
	date     mmio.U32
}

// Date returns the peripheral's version date register.
func (r *Registers) Date() uint32 { return r.date.Load() }

// OtgConf is the value of the USB_WRAP_OTG_CONF_REG register.
type OtgConf uint32

const (
	SessEndOverride   OtgConf = 1 << 0  // enables software control of the session end signal
	SessEndValue      OtgConf = 1 << 1  // 1: VBus below 0.2V, 0: VBus above 0.8V
	PhySelect         OtgConf = 1 << 2  // 0: internal FSLS PHY, 1: external PHY via GPIO matrix
	DFifoForcePD      OtgConf = 1 << 3
	DbnceFltrBypass   OtgConf = 1 << 4
	ExchgPinsOverride OtgConf = 1 << 5  // enables software control of pin exchange
	ExchgPins         OtgConf = 1 << 6  // 1: D+ and D- swapped
	VrefOverride      OtgConf = 1 << 11 // enables software control of the input thresholds
	PadPullOverride   OtgConf = 1 << 12 // enables software control of the pull resistors
	DpPullup          OtgConf = 1 << 13
	DpPulldown        OtgConf = 1 << 14
	DmPullup          OtgConf = 1 << 15
	DmPulldown        OtgConf = 1 << 16
	PullupValue       OtgConf = 1 << 17 // 0: ~2.4kΩ pullup, 1: ~1.4kΩ pullup
	PadEnable         OtgConf = 1 << 18
	AHBClkForceOn     OtgConf = 1 << 19
	PhyClkForceOn     OtgConf = 1 << 20
	PhyTxEdgeSel      OtgConf = 1 << 21 // 0: TX on posedge, 1: TX on negedge
	DFifoForcePU      OtgConf = 1 << 22
	ClkEn             OtgConf = 1 << 31
)

// The vrefh and vrefl fields are two bits wide.
const (
	VrefHMask OtgConf = 0x3 << vrefHShift
	VrefLMask OtgConf = 0x3 << vrefLShift

	vrefHShift = 7
	vrefLShift = 9
)

func (c OtgConf) with(bits OtgConf, set bool) OtgConf {
	if set {
		return c | bits
	}
	return c &^ bits
}

// TestConf is the value of the USB_WRAP_TEST_CONF_REG register.
type TestConf uint32

const (
	TestEnable TestConf = 1 << 0 // 1: signal lines driven from this register
	TestOE     TestConf = 1 << 1 // output enable, active low
	TestTxDp   TestConf = 1 << 2
	TestTxDm   TestConf = 1 << 3
	TestRxRcv  TestConf = 1 << 4
	TestRxDp   TestConf = 1 << 5
	TestRxDm   TestConf = 1 << 6
)

func (c TestConf) with(bits TestConf, set bool) TestConf {
	if set {
		return c | bits
	}
	return c &^ bits
}

// VrefStep selects a single-ended input threshold voltage in 80mV steps.
// Steps start at 1.76V for the high and at 0.8V for the low threshold.
type VrefStep uint8

const (
	VrefStep0 VrefStep = iota // vrefh 1.76V, vrefl 0.80V
	VrefStep1                 // vrefh 1.84V, vrefl 0.88V
	VrefStep2                 // vrefh 1.92V, vrefl 0.96V
	VrefStep3                 // vrefh 2.00V, vrefl 1.04V
)
