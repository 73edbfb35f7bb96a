// Package funcspec provides shared function specification parsing and matching.
package funcspec

import (
	"go/ast"
	"go/types"
	"strings"
	"unicode"

	xtypeutil "golang.org/x/tools/go/types/typeutil"

	"github.com/mpyw/ignoredunion/internal/typeutil"
)

// Spec holds parsed components of a function specification.
// Format: "pkg/path.Func" or "pkg/path.Type.Method".
type Spec struct {
	PkgPath  string
	TypeName string // empty for package-level functions
	FuncName string
}

// Parse parses a single function specification string into components.
// Format: "pkg/path.Func" or "pkg/path.Type.Method".
func Parse(s string) Spec {
	spec := Spec{}

	lastDot := strings.LastIndex(s, ".")
	if lastDot == -1 {
		spec.FuncName = s

		return spec
	}

	spec.FuncName = s[lastDot+1:]
	prefix := s[:lastDot]

	// Check if there's another dot (indicating Type.Method)
	// Type names start with uppercase in Go, except unexported ones
	// which are only reachable from within their own package path segment.
	secondLastDot := strings.LastIndex(prefix, ".")
	if secondLastDot != -1 && !strings.Contains(prefix[secondLastDot+1:], "/") {
		possibleType := prefix[secondLastDot+1:]
		if len(possibleType) > 0 && unicode.IsUpper(rune(possibleType[0])) {
			spec.TypeName = possibleType
			spec.PkgPath = prefix[:secondLastDot]

			return spec
		}
	}

	spec.PkgPath = prefix

	return spec
}

// Qualified reports whether the spec names a package.
func (s Spec) Qualified() bool {
	return s.PkgPath != ""
}

// Matches checks if a types.Func matches this specification.
// Instantiated generic functions and methods match their origin.
func (s Spec) Matches(fn *types.Func) bool {
	if fn == nil {
		return false
	}

	fn = fn.Origin()
	if fn.Name() != s.FuncName {
		return false
	}

	pkg := fn.Pkg()
	if pkg == nil || !typeutil.MatchPkg(pkg.Path(), s.PkgPath) {
		return false
	}

	// Check if it's a method
	sig := fn.Type().(*types.Signature)
	recv := sig.Recv()

	if s.TypeName == "" {
		// Package-level function: should have no receiver
		return recv == nil
	}

	// Method: should have receiver of correct type
	if recv == nil {
		return false
	}

	obj := typeutil.NamedObject(recv.Type())
	if obj == nil {
		return false
	}

	return obj.Name() == s.TypeName
}

// FullName returns the short display form, e.g. "result.Parser.Parse".
func (s Spec) FullName() string {
	pkg := s.PkgPath
	if i := strings.LastIndex(pkg, "/"); i >= 0 {
		pkg = pkg[i+1:]
	}

	parts := make([]string, 0, 3)
	if pkg != "" {
		parts = append(parts, pkg)
	}
	if s.TypeName != "" {
		parts = append(parts, s.TypeName)
	}

	return strings.Join(append(parts, s.FuncName), ".")
}

// ExtractFunc extracts the types.Func from a call expression.
// Interface methods resolve to the abstract method.
// Returns nil if the callee cannot be determined statically.
func ExtractFunc(info *types.Info, call *ast.CallExpr) *types.Func {
	fn, _ := xtypeutil.Callee(info, call).(*types.Func)

	return fn
}
