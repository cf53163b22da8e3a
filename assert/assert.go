package assert

import "github.com/strafekit/strafekit/skerror"

// IsTrue panics with a skerror.Error if ok is false. It is used for internal
// invariants of the simulation that can only fail through programmer error.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(skerror.New(message, args...))
	}
}
