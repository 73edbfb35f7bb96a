//go:build !go1.22

package typeutil

import "go/types"

// Unalias returns t unchanged: before go1.22 go/types never materializes
// alias types, so there is nothing to resolve.
func Unalias(t types.Type) types.Type {
	return t
}
