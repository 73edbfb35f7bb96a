// Package uniontype tests named sum types marked by directive, by fact from
// a dependency, and by the -union-types flag.
package uniontype

import (
	"example.com/option"
	"example.com/result"
)

// Shape is one of a closed set of shapes.
//
//ignoredunion:union
type Shape interface{ isShape() } // want Shape:"union Shape"

type (
	//ignoredunion:union
	Event struct{ kind int } // want Event:"union Event"

	Plain struct{}
)

type Alias = Event

//vt:helper
func newShape() Shape { return nil }

//vt:helper
func newEvent() Event { return Event{} }

//vt:helper
func newEventPtr() *Event { return nil }

//vt:helper
func newAlias() Alias { return Event{} }

//vt:helper
func newPlain() Plain { return Plain{} }

//vt:helper
func events() <-chan Event { return nil }

//vt:helper
func maybe() option.Option[int] { return option.Some(1) }

// ===== SHOULD REPORT =====

// [BAD]: Local sum types
//
// Types marked in this package are unions.
func badLocal() {
	newShape() // want `return value of "newShape" must be used`
	newEvent() // want `return value of "newEvent" must be used`
	newAlias() // want `return value of "newAlias" must be used`
}

// [BAD]: Sum type from a dependency
//
// The mark travels with the type as a fact.
func badDependency() {
	result.Ok(1)             // want `return value of "Ok" must be used`
	result.Err[string](nil)  // want `return value of "Err" must be used`
}

// [BAD]: Sum type configured by flag
//
// The option package carries no directive.
func badConfigured() {
	maybe()            // want `return value of "maybe" must be used`
	option.None[int]() // want `return value of "None" must be used`
}

// [BAD]: Sum type received from a channel
//
// The element type is a union.
func badAsync() {
	<-events() // want `return value of "events" must be used`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Pointers and unmarked types
//
// A pointer to a sum type is a plain pointer.
func goodNotMarked() {
	newEventPtr()
	newPlain()
}

// [GOOD]: Sum types consumed
//
// The values are bound or passed on.
func goodConsumed() {
	s := newShape()
	_ = s
	v, err := result.Ok(1).Get()
	_, _ = v, err
	_ = []option.Option[int]{maybe()}
}
