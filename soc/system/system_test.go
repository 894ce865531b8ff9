package system

import (
	"testing"

	esptesting "github.com/clktmr/esp32s3/testing"
)

func TestMain(m *testing.M) { esptesting.TestMain(m) }

// fakeRegs points the package at a register block in RAM, so tests don't
// reconfigure the running system.
func fakeRegs(t *testing.T) {
	t.Helper()
	orig := regs
	regs = new(registers)
	t.Cleanup(func() { regs = orig })
}

func TestEnableClock(t *testing.T) {
	fakeRegs(t)

	EnableClock(USB, true)
	if !ClockEnabled(USB) {
		t.Error("usb clock not enabled")
	}
	EnableClock(USB, true) // idempotent
	if got := regs.peripClkEn0.Load(); got != USB {
		t.Errorf("clk_en0 = %#x, want %#x", uint32(got), uint32(USB))
	}

	EnableClock(UART1|LEDC, true)
	EnableClock(USB, false)
	if ClockEnabled(USB) {
		t.Error("usb clock still enabled")
	}
	if !ClockEnabled(UART1 | LEDC) {
		t.Error("unrelated clocks were disabled")
	}
}

func TestReset(t *testing.T) {
	fakeRegs(t)

	regs.peripRstEn0.Store(LEDC) // held in reset by someone else
	Reset(USB)
	if got := regs.peripRstEn0.Load(); got != LEDC {
		t.Errorf("rst_en0 = %#x, want %#x", uint32(got), uint32(LEDC))
	}
}
