// Package disabled tests switching off the built-in union shapes.
package disabled

import (
	"os"

	"example.com/result"
)

//vt:helper
func lookup() (string, bool) { return "", false }

//vt:helper
func wrapped() <-chan error { return nil }

// ===== SHOULD NOT REPORT =====

// [GOOD]: Built-in shapes switched off
//
// Errors, comma-ok results and channels are not checked.
func goodDisabled() {
	os.Remove("/nope")
	lookup()
	<-wrapped()
}

// ===== SHOULD REPORT =====

// [BAD]: Sum types stay enabled
//
// Marked named types do not depend on the shape flags.
func badSumType() {
	result.Ok(1) // want `return value of "Ok" must be used`
}
