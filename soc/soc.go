// Package soc provides primitives shared by the ESP32-S3's peripheral
// packages.
//
// It implements low-level access to the hardware. All hardware capabilities
// are directly exposed and in general unsafe. Use the higher level libraries
// to write applications instead.
package soc

import "unsafe"

// The APB bus clock speed, which most peripherals are clocked from.
const APBClockSpeed = 80e6

// Addr represents a physical memory address. Peripherals are accessed
// through the uncached data bus at 0x6000_0000.
type Addr uint32

// MMIO returns a typed pointer to the memory mapped registers at addr. Fields
// of the returned struct must be embedded/mmio cells to guarantee volatile
// access.
func MMIO[T any](addr Addr) *T {
	return (*T)(unsafe.Pointer(uintptr(addr)))
}
