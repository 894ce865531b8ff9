package efuse

import (
	"encoding/binary"
	"testing"

	esptesting "github.com/clktmr/esp32s3/testing"

	"github.com/sigurn/crc8"
)

func TestMain(m *testing.M) { esptesting.TestMain(m) }

func fakeRegs(t *testing.T) {
	t.Helper()
	orig := regs
	regs = new(registers)
	t.Cleanup(func() { regs = orig })
}

func TestMAC(t *testing.T) {
	fakeRegs(t)

	regs.mac1.Store(0x84f7)
	regs.mac0.Store(0x0312_3456)
	if got, want := MAC(), ([6]byte{0x84, 0xf7, 0x03, 0x12, 0x34, 0x56}); got != want {
		t.Errorf("mac = %x, want %x", got, want)
	}
}

func TestCustomMAC(t *testing.T) {
	fakeRegs(t)

	if _, err := CustomMAC(); err != ErrNoCustomMAC {
		t.Errorf("err = %v, want %v", err, ErrNoCustomMAC)
	}

	want := [6]byte{0x84, 0xf7, 0x03, 0x12, 0x34, 0x56}
	var b [8]byte
	for i, v := range want {
		b[5-i] = v
	}
	b[6] = crc8.Checksum(b[:6], crc8.MakeTable(crc8.CRC8_MAXIM))
	regs.usrData[6].Store(binary.LittleEndian.Uint32(b[0:]))
	regs.usrData[7].Store(binary.LittleEndian.Uint32(b[4:]))

	got, err := CustomMAC()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("mac = %x, want %x", got, want)
	}

	// Flip one bit of the burned checksum.
	regs.usrData[7].Store(regs.usrData[7].Load() ^ 1<<16)
	if _, err := CustomMAC(); err != ErrMACChecksum {
		t.Errorf("err = %v, want %v", err, ErrMACChecksum)
	}
}
