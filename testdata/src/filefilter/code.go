// Package filefilter tests file filtering functionality.
// Tests that:
// - Generated files are always skipped (see generated.go)
// - Test files are analyzed by default (see code_test.go)
package filefilter

//vt:helper
func fails() error { return nil }

// [BAD]: Regular file
//
// Discards are reported in hand-written files.
func badRegular() {
	fails() // want `return value of "fails" must be used`
}
