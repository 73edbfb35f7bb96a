package classify

import (
	"go/types"

	"github.com/mpyw/ignoredunion/internal/typeutil"
)

// Kind tags the classification of a call's result type.
type Kind int

const (
	// NotApplicable means the result carries no alternatives worth checking.
	NotApplicable Kind = iota
	// Direct means the result type itself is a union.
	Direct
	// WrappedAsync means the result is a channel whose element type is a union.
	WrappedAsync
)

var kindNames = map[Kind]string{
	NotApplicable: "n/a",
	Direct:        "union",
	WrappedAsync:  "async",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "invalid"
}

// Classification is the result of [Classifier.Classify].
type Classification struct {
	Kind Kind
	// Payload is the union type: the result itself for Direct,
	// the channel element for WrappedAsync, nil otherwise.
	Payload types.Type
}

// Applicable reports whether the classification is Direct or WrappedAsync.
func (c Classification) Applicable() bool {
	return c.Kind != NotApplicable
}

// SumTypes reports whether a named type is declared as a closed set of alternatives.
type SumTypes interface {
	IsSumType(obj *types.TypeName) bool
}

// Options selects which result shapes count as unions.
type Options struct {
	Errors   bool     // lone error results and (T, error) tuples
	CommaOK  bool     // (T, bool) tuples
	Channels bool     // receiving from a returned channel
	SumTypes SumTypes // named types marked as unions; may be nil
}

// Classifier decides whether a call's result type must be used.
// It holds no per-call state and is safe for concurrent use
// as long as its SumTypes is.
type Classifier struct {
	opts Options
}

// New creates a classifier.
func New(opts Options) *Classifier {
	return &Classifier{opts: opts}
}

// Classify returns the classification of t. It never panics;
// nil and invalid types are NotApplicable.
func (c *Classifier) Classify(t types.Type) Classification {
	if t == nil || t == types.Typ[types.Invalid] {
		return Classification{}
	}

	if c.IsUnion(t) {
		return Classification{Kind: Direct, Payload: t}
	}

	if elem, ok := c.asyncPayload(t); ok && c.IsUnion(elem) {
		return Classification{Kind: WrappedAsync, Payload: elem}
	}

	return Classification{}
}

// IsUnion reports whether t is a union result shape.
func (c *Classifier) IsUnion(t types.Type) bool {
	if tuple, ok := t.(*types.Tuple); ok {
		return c.isUnionTuple(tuple)
	}

	if c.opts.Errors && typeutil.IsErrorType(t) {
		return true
	}

	if c.opts.SumTypes == nil {
		return false
	}

	// Pointers to sum types are plain pointers.
	named, ok := typeutil.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	return c.opts.SumTypes.IsSumType(named.Obj())
}

// isUnionTuple checks the trailing result of a multi-value signature.
func (c *Classifier) isUnionTuple(tuple *types.Tuple) bool {
	if tuple.Len() < 2 {
		return false
	}

	last := tuple.At(tuple.Len() - 1).Type()

	switch {
	case c.opts.Errors && typeutil.IsErrorType(last):
		return true
	case c.opts.CommaOK && typeutil.IsBoolType(last):
		return true
	default:
		return false
	}
}

// asyncPayload returns the element type of a receivable channel.
// The wrapper is recognized by its type constructor, not by name:
// a user type called Future or Promise is never a channel.
func (c *Classifier) asyncPayload(t types.Type) (types.Type, bool) {
	if !c.opts.Channels {
		return nil, false
	}

	if _, ok := t.(*types.Tuple); ok {
		return nil, false
	}

	ch, ok := t.Underlying().(*types.Chan)
	if !ok || ch.Dir() == types.SendOnly {
		return nil, false
	}

	return ch.Elem(), true
}
