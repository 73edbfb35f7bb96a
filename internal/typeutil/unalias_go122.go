//go:build go1.22

package typeutil

import "go/types"

// Unalias returns t with any alias types resolved (types.Unalias).
func Unalias(t types.Type) types.Type {
	return types.Unalias(t)
}
