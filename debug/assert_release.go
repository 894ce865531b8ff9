//go:build !debug

// Package debug provides assertions that compile to no-ops unless the debug
// build tag is set.
//
// Assertions aren't considered idiomatic Go, but checking caller contracts
// this way is cheap enough for a hardware access layer that can't return
// errors.
package debug

// Wrap assertions that do any work themselves (i.e. anything that could
// allocate or panic) in `if debug.Enabled{...}`, otherwise the compiler can't
// remove them from release builds.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
