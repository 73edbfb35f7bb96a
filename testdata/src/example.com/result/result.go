// Package result declares a sum type with a directive, for use by other packages.
package result

// Result holds either a value or an error.
//
//ignoredunion:union
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a value.
func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

// Err wraps an error.
func Err[T any](err error) Result[T] { return Result[T]{err: err} }

// Get unwraps the result.
func (r Result[T]) Get() (T, error) { return r.value, r.err }

// Parser parses integers.
type Parser struct{}

// Parse parses s.
func (Parser) Parse(s string) (int, error) { return len(s), nil }
