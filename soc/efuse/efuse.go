// Package efuse reads device identity from the eFuse controller's shadow
// registers. Burning fuses is intentionally not implemented.
package efuse

import (
	"embedded/mmio"
	"encoding/binary"
	"errors"

	"github.com/sigurn/crc8"

	"github.com/clktmr/esp32s3/soc"
)

var (
	ErrNoCustomMAC = errors.New("no custom mac burned")
	ErrMACChecksum = errors.New("custom mac checksum mismatch")
)

var regs *registers = soc.MMIO[registers](baseAddr)

const baseAddr soc.Addr = 0x6000_7000

type registers struct {
	_       [17]mmio.U32
	mac0    mmio.U32     // EFUSE_RD_MAC_SPI_SYS_0_REG
	mac1    mmio.U32     // EFUSE_RD_MAC_SPI_SYS_1_REG
	_       [12]mmio.U32
	usrData [8]mmio.U32  // user data block
}

// MAC returns the factory programmed base MAC address.
func MAC() (mac [6]byte) {
	lo, hi := regs.mac0.Load(), regs.mac1.Load()
	mac[0] = byte(hi >> 8)
	mac[1] = byte(hi)
	mac[2] = byte(lo >> 24)
	mac[3] = byte(lo >> 16)
	mac[4] = byte(lo >> 8)
	mac[5] = byte(lo)
	return
}

var macCRC = crc8.MakeTable(crc8.CRC8_MAXIM)

// CustomMAC returns the user programmed MAC address from the last eight
// bytes of the user data block, where espefuse's burn_custom_mac stores it:
// the six address bytes in reversed order, followed by a CRC-8/MAXIM over
// them. Returns ErrNoCustomMAC if those bytes are still unburned.
func CustomMAC() (mac [6]byte, err error) {
	var b [8]byte
	binary.LittleEndian.PutUint32(b[0:], regs.usrData[6].Load())
	binary.LittleEndian.PutUint32(b[4:], regs.usrData[7].Load())
	if b == ([8]byte{}) {
		return mac, ErrNoCustomMAC
	}
	if crc8.Checksum(b[:6], macCRC) != b[6] {
		return mac, ErrMACChecksum
	}
	for i := range mac {
		mac[i] = b[5-i]
	}
	return mac, nil
}
