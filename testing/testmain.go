// Package testing provides utilities for writing esp32s3 specific tests.
package testing

import (
	"embedded/rtos"
	"os"
	"syscall"
	"testing"

	"github.com/clktmr/esp32s3/soc/uart"

	"github.com/embeddedgo/fs/termfs"
)

// TestMain should be used as TestMain for esp32s3 specific tests.
//
// It mounts a console on UART0, which the ROM bootloader has already set up
// as the boot console, and redirects the test output there.
func TestMain(m *testing.M) {
	var err error

	u := uart.UART0()
	fs := termfs.NewLight("termfs", u, u)
	rtos.Mount(fs, "/dev/console")
	os.Stdout, err = os.OpenFile("/dev/console", syscall.O_WRONLY, 0)
	if err != nil {
		panic(err)
	}
	os.Stderr = os.Stdout

	// TODO find a way to pass these from the 'go test' command
	os.Args = append(os.Args, "-test.v")

	code := m.Run()
	u.Flush()
	os.Exit(code)
}
