// Package exceptions tests the -exceptions flag.
package exceptions

import (
	"strconv"

	"example.com/result"
)

//vt:helper
func ignored() (int, bool) { return 0, false }

//vt:helper
func notIgnored() (int, bool) { return 0, false }

type cache struct{}

//vt:helper
func (cache) ignored() (string, error) { return "", nil }

// ===== SHOULD NOT REPORT =====

// [GOOD]: Exempt by name
//
// A bare name matches functions and methods alike.
func goodByName() {
	ignored()

	var c cache
	c.ignored()
}

// [GOOD]: Exempt by qualified function
//
// The package path identifies the callee.
func goodByPackage() {
	strconv.Atoi("1")
}

// [GOOD]: Exempt by qualified method
//
// The receiver type identifies the method.
func goodByMethod() {
	var p result.Parser
	p.Parse("1")
}

// ===== SHOULD REPORT =====

// [BAD]: Function not listed
//
// Only listed functions are exempt.
func badNotListed() {
	notIgnored()             // want `return value of "notIgnored" must be used`
	strconv.ParseBool("yes") // want `return value of "ParseBool" must be used`
}

// [BAD]: Same name in another package
//
// A qualified entry does not exempt other packages.
func badOtherPackage() {
	f := strconv.Atoi
	f("1") // want `return value of "f" must be used`
}
