package filefilter

// [BAD]: Test file
//
// Test files are analyzed unless the driver's -test flag is false.
func badInTest() {
	fails() // want `return value of "fails" must be used`
}
