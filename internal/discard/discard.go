// Package discard decides from syntactic context whether a call's result is dropped.
package discard

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/mpyw/ignoredunion/internal/classify"
	"github.com/mpyw/ignoredunion/internal/funcspec"
)

// Placeholder names a callee with no stable readable name, such as fns[0]() or f()().
const Placeholder = "<function>"

// Finding is one call whose must-use result is discarded.
type Finding struct {
	Pos          token.Pos
	End          token.Pos
	FunctionName string
	Kind         classify.Kind
	Callee       *types.Func // nil when not statically known
}

// Options selects statements besides expression statements that count as discards.
type Options struct {
	GoStmt    bool // go f()
	DeferStmt bool // defer f()
}

// Detector judges call sites. It holds no state between calls.
type Detector struct {
	info *types.Info
	opts Options
}

// New creates a detector. info may be nil; names of instantiated
// generic callees and callee objects are then unavailable.
func New(info *types.Info, opts Options) *Detector {
	return &Detector{info: info, opts: opts}
}

// Visit returns a finding when call's result is discarded in context.
// stack is the inspector stack with call as its last element.
func (d *Detector) Visit(call *ast.CallExpr, stack []ast.Node, c classify.Classification) (Finding, bool) {
	if !c.Applicable() || !d.Discarded(call, stack, c.Kind) {
		return Finding{}, false
	}

	f := Finding{
		Pos:          call.Pos(),
		End:          call.End(),
		FunctionName: FunctionName(call.Fun, d.info),
		Kind:         c.Kind,
	}
	if d.info != nil {
		f.Callee = funcspec.ExtractFunc(d.info, call)
	}

	return f, true
}

// Discarded reports whether the value of call is dropped, given its classification kind:
//   - Direct: the call is a bare statement;
//   - WrappedAsync: the call is received from, and the receive is a bare statement.
func (d *Detector) Discarded(call *ast.CallExpr, stack []ast.Node, kind classify.Kind) bool {
	last := len(stack) - 1
	if last < 0 || stack[last] != call {
		return false
	}

	parent, i := enclosing(stack, last)

	switch kind {
	case classify.Direct:
		return d.isBareStatement(parent)
	case classify.WrappedAsync:
		recv, ok := parent.(*ast.UnaryExpr)
		if !ok || recv.Op != token.ARROW {
			return false
		}

		grandparent, _ := enclosing(stack, i)
		_, ok = grandparent.(*ast.ExprStmt)

		return ok
	default:
		return false
	}
}

func (d *Detector) isBareStatement(n ast.Node) bool {
	switch n.(type) {
	case *ast.ExprStmt:
		return true
	case *ast.GoStmt:
		return d.opts.GoStmt
	case *ast.DeferStmt:
		return d.opts.DeferStmt
	default:
		return false
	}
}

// enclosing returns the nearest non-parenthesis ancestor of stack[i] and its index.
func enclosing(stack []ast.Node, i int) (ast.Node, int) {
	for i--; i >= 0; i-- {
		if _, ok := stack[i].(*ast.ParenExpr); !ok {
			return stack[i], i
		}
	}

	return nil, -1
}

// FunctionName derives a readable name for a callee:
//
//	ignored()       -> "ignored"
//	o.ignored()     -> "ignored"
//	pkg.Parse[T]()  -> "Parse"
//	fns[0]()        -> Placeholder
func FunctionName(callee ast.Expr, info *types.Info) string {
	switch fun := astutil.Unparen(callee).(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		return fun.Sel.Name
	case *ast.IndexExpr:
		return instantiatedName(fun.X, info)
	case *ast.IndexListExpr:
		return instantiatedName(fun.X, info)
	default:
		return Placeholder
	}
}

// instantiatedName names F in F[T] when F is a generic function, not a container.
func instantiatedName(x ast.Expr, info *types.Info) string {
	var id *ast.Ident

	switch x := astutil.Unparen(x).(type) {
	case *ast.Ident:
		id = x
	case *ast.SelectorExpr:
		id = x.Sel
	}

	if id == nil || info == nil {
		return Placeholder
	}

	if _, ok := info.Instances[id]; !ok {
		return Placeholder
	}

	return id.Name
}
