// Package async tests values received from returned channels.
package async

//vt:helper
func ignored() <-chan error { return nil }

//vt:helper
func notIgnored() <-chan error { return nil }

//vt:helper
func bidirectional() chan error { return nil }

type Result chan error

//vt:helper
func named() Result { return nil }

//vt:helper
func counts() <-chan int { return nil }

//vt:helper
func sink() chan<- error { return nil }

// Future looks like an async wrapper but is a plain struct.
type Future struct{ err error }

//vt:helper
func future() Future { return Future{} }

// ===== SHOULD REPORT =====

// [BAD]: Received value dropped
//
// The error received from the returned channel is not used.
func badReceive() {
	<-ignored() // want `return value of "ignored" must be used`
}

// [BAD]: Parenthesized receive
//
// Parentheses around the call or the receive do not hide the discard.
func badParenthesized() {
	<-(ignored()) // want `return value of "ignored" must be used`
	(<-ignored()) // want `return value of "ignored" must be used`
}

// [BAD]: Bidirectional and named channel types
//
// Any receivable channel counts.
func badChannelKinds() {
	<-bidirectional() // want `return value of "bidirectional" must be used`
	<-named()         // want `return value of "named" must be used`
}

// [BAD]: Select case without assignment
//
// The received value is dropped by the case clause.
func badSelect() {
	select {
	case <-ignored(): // want `return value of "ignored" must be used`
	default:
	}
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Received value bound
//
// The receive result is assigned.
func goodReceive() {
	err := <-notIgnored()
	_ = err
}

// [GOOD]: Received value compared
//
// The receive is an operand, not a statement.
func goodCompared() {
	if <-notIgnored() != nil {
		return
	}
}

// [GOOD]: Channel kept for later
//
// Without a receive nothing is dropped yet.
func goodNoReceive() {
	ch := notIgnored()
	_ = ch
	notIgnored()
}

// [GOOD]: Non-union element
//
// The channel carries plain values.
func goodPlainElement() {
	<-counts()
}

// [GOOD]: Send-only channel
//
// Nothing can be received.
func goodSendOnly() {
	sink() <- nil
}

// [GOOD]: Wrapper-named struct
//
// Only channel types are async wrappers.
func goodFuture() {
	future()
}

// [GOOD]: Select case with assignment
//
// The case binds the received error.
func goodSelect() {
	select {
	case err := <-notIgnored():
		_ = err
	default:
	}
}
