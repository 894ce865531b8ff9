package usbwrap

import (
	"github.com/clktmr/esp32s3/debug"
	"github.com/clktmr/esp32s3/soc/rtccntl"
)

// Indirection for tests.
var muxSelectInternal = rtccntl.SelectUSBPhy

// EnableExternalPhy selects whether the USB Wrap's FSLS PHY interface is
// routed to an external PHY via the GPIO matrix or to the internal PHY.
//
// The internal PHY is shared with the USB Serial/JTAG controller. Besides
// selecting the PHY source this also reprograms the RTC mux accordingly, so
// the internal PHY is attached to the USB Wrap iff it's not routed
// externally. Both registers are updated in this single call to avoid a half
// applied routing.
func (r *Registers) EnableExternalPhy(enable bool) {
	conf := r.otgConf.Load()
	r.otgConf.Store(conf.with(PhySelect, enable))
	muxSelectInternal(!enable)
}

// SetSessEndOverride enables software control of the session end signal
// reported by the PHY. With sessEnd true the PHY reports VBus below 0.2V,
// otherwise above 0.8V. Used for SRP in OTG power negotiation.
//
// Disabling clears only the override enable. The last written value stays
// latched but has no electrical effect.
func (r *Registers) SetSessEndOverride(enable, sessEnd bool) {
	if !enable {
		r.otgConf.ClearBits(SessEndOverride)
		return
	}
	conf := r.otgConf.Load().with(SessEndValue, sessEnd)
	r.otgConf.Store(conf | SessEndOverride)
}

// SetPinExchange enables or disables swapping of the D+/D- pins.
//
// The exchange value and its override enable are written in separate stores,
// ordered so the hardware never observes the exchange active without the
// override enabled.
func (r *Registers) SetPinExchange(enable bool) {
	if enable {
		r.otgConf.SetBits(ExchgPins)
		r.otgConf.SetBits(ExchgPinsOverride)
	} else {
		r.otgConf.ClearBits(ExchgPinsOverride)
		r.otgConf.ClearBits(ExchgPins)
	}
}

// SetVrefOverride enables software control of the PHY's single-ended input
// thresholds and programs both of them. Used for non-standard signaling
// levels during charger detection.
func (r *Registers) SetVrefOverride(high, low VrefStep) {
	debug.Assert(high <= VrefStep3 && low <= VrefStep3, "vref step out of range")
	conf := r.otgConf.Load() &^ (VrefHMask | VrefLMask)
	conf |= OtgConf(high&0x3)<<vrefHShift | OtgConf(low&0x3)<<vrefLShift
	r.otgConf.Store(conf | VrefOverride)
}

// ClearVrefOverride disables the input threshold override. The programmed
// steps stay latched.
func (r *Registers) ClearVrefOverride() {
	r.otgConf.ClearBits(VrefOverride)
}

// SetPullOverride enables software control of the PHY's pull resistors and
// programs all four of them with a single register write.
//
// Enabling pullup and pulldown on the same line at once is representable in
// the register but electrically invalid. The hardware doesn't reject it and
// neither does this function.
func (r *Registers) SetPullOverride(dpPullup, dmPullup, dpPulldown, dmPulldown bool) {
	conf := r.otgConf.Load().
		with(DpPullup, dpPullup).
		with(DmPullup, dmPullup).
		with(DpPulldown, dpPulldown).
		with(DmPulldown, dmPulldown)
	r.otgConf.Store(conf | PadPullOverride)
}

// ClearPullOverride disables the pull resistor override. The programmed
// resistor enables stay latched.
func (r *Registers) ClearPullOverride() {
	r.otgConf.ClearBits(PadPullOverride)
}

// SetPullupStrength selects a ~1.4kΩ (strong) or ~2.4kΩ pullup resistor.
// The value is always latched, independent of the pull override.
func (r *Registers) SetPullupStrength(strong bool) {
	conf := r.otgConf.Load()
	r.otgConf.Store(conf.with(PullupValue, strong))
}

// PadEnabled reports whether the USB pads are enabled.
func (r *Registers) PadEnabled() bool {
	return r.otgConf.LoadBits(PadEnable) != 0
}

// EnablePad enables or disables the USB pads.
func (r *Registers) EnablePad(enable bool) {
	conf := r.otgConf.Load()
	r.otgConf.Store(conf.with(PadEnable, enable))
}

// SetTxEdge selects the clock edge the PHY outputs TX signals on, the
// negative edge if negedge is true, the positive edge otherwise.
func (r *Registers) SetTxEdge(negedge bool) {
	conf := r.otgConf.Load()
	r.otgConf.Store(conf.with(PhyTxEdgeSel, negedge))
}
