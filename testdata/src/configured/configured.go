// Package configured tests options read from a -config file.
package configured

import (
	"os"
	"strconv"

	"example.com/option"
)

//vt:helper
func lookup() (string, bool) { return "", false }

// ===== SHOULD NOT REPORT =====

// [GOOD]: Exempt by the configured name
//
// Close is listed in the file.
func goodException(f *os.File) {
	f.Close()
}

// [GOOD]: Comma-ok switched off by the file
//
// The file overrides the flag default.
func goodCommaOK() {
	lookup()
}

// ===== SHOULD REPORT =====

// [BAD]: Union type listed in the file
//
// The option package is configured as a sum type.
func badUnionType() {
	option.Some(1) // want `return value of "Some" must be used`
}

// [BAD]: Deferred call enabled by the file
//
// defer-stmt is switched on.
func badDefer() {
	defer os.Remove("/nope") // want `return value of "Remove" must be used`
}

// [BAD]: Defaults kept for unset keys
//
// Error results are still checked.
func badDefault() {
	strconv.Atoi("1") // want `return value of "Atoi" must be used`
}
