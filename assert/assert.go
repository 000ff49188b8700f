package assert

import "github.com/oomph-ac/pathrec/oerror"

// IsTrue panics with a formatted OomphError if ok is false. It guards internal
// invariants that can only break through a programming error.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
