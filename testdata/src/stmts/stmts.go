// Package stmts tests the -go-stmt and -defer-stmt flags.
package stmts

//vt:helper
func fails() error { return nil }

//vt:helper
func plain() int { return 0 }

// ===== SHOULD REPORT =====

// [BAD]: Deferred union call
//
// The error of a deferred call is lost.
func badDefer() {
	defer fails() // want `return value of "fails" must be used`
}

// [BAD]: Spawned union call
//
// The error of a goroutine call is lost.
func badGo() {
	go fails() // want `return value of "fails" must be used`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Deferred closure handling the error
//
// The closure itself returns nothing.
func goodDeferClosure() {
	defer func() {
		_ = fails()
	}()
}

// [GOOD]: Spawned non-union call
//
// Plain results are not checked.
func goodGoPlain() {
	go plain()
}
