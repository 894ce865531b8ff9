//go:build debug

package debug

// Wrap assertions that do any work themselves (i.e. anything that could
// allocate or panic) in `if debug.Enabled{...}`, otherwise the compiler can't
// remove them from release builds.
const Enabled = true

func Assert(b bool, message string) {
	if !b {
		panic(message)
	}
}

func AssertErrNil(err error) {
	if err != nil {
		panic(err)
	}
}
