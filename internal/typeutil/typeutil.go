package typeutil

import (
	"go/types"
	"strings"
)

var errorType = types.Universe.Lookup("error").Type()

// errorIface is the method set every error result must satisfy.
var errorIface = errorType.Underlying().(*types.Interface)

// UnwrapPointer returns the element type if t is a pointer, otherwise returns t.
func UnwrapPointer(t types.Type) types.Type {
	if ptr, ok := t.(*types.Pointer); ok {
		return ptr.Elem()
	}

	return t
}

// IsErrorType checks if t is the error interface or an interface type embedding it.
// Concrete error implementations are not considered: a function returning *MyError
// does not signal success-or-failure through its type.
func IsErrorType(t types.Type) bool {
	if t == nil {
		return false
	}

	t = Unalias(t)
	if types.Identical(t, errorType) {
		return true
	}

	if !types.IsInterface(t) {
		return false
	}

	// Type parameters are interfaces to IsInterface; their constraint is not a result shape.
	if _, ok := t.(*types.TypeParam); ok {
		return false
	}

	return types.Implements(t, errorIface)
}

// IsBoolType checks if t has a boolean underlying type.
func IsBoolType(t types.Type) bool {
	if t == nil {
		return false
	}

	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return false
	}

	return basic.Info()&types.IsBoolean != 0
}

// NamedObject returns the declaring type name of t, looking through aliases and pointers.
// Returns nil for unnamed types.
func NamedObject(t types.Type) *types.TypeName {
	t = UnwrapPointer(Unalias(t))

	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}

	return named.Obj()
}

// MatchPkg checks if pkgPath matches targetPkg, allowing version suffixes.
func MatchPkg(pkgPath, targetPkg string) bool {
	if pkgPath == targetPkg {
		return true
	}
	// Check for version suffix like /v2, /v3, etc.
	prefix := targetPkg + "/v"
	if !strings.HasPrefix(pkgPath, prefix) {
		return false
	}
	rest := pkgPath[len(prefix):]
	return len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9'
}
