// Package option declares an optional value without any directive.
package option

// Option holds a value or nothing.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a value.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None is the empty option.
func None[T any]() Option[T] { return Option[T]{} }
