// Package exception filters findings for functions exempted by configuration.
//
// An entry without a dot matches the finding's display name exactly, so
// "Lookup" exempts both Lookup() and cache.Lookup(). An entry with a dot is
// a function specification (see funcspec) matched against the resolved
// callee: "strconv.Atoi" or "github.com/example/result.Parser.Parse".
// There are no wildcards.
package exception

import (
	"slices"
	"strings"

	"github.com/mpyw/ignoredunion/internal/discard"
	"github.com/mpyw/ignoredunion/internal/funcspec"
)

// Set is a parsed exceptions list. The zero value exempts nothing.
type Set struct {
	names map[string]struct{}
	specs []funcspec.Spec
}

// Parse builds a Set from configured entries. Blank entries are dropped.
func Parse(entries []string) Set {
	s := Set{names: make(map[string]struct{})}

	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}

		spec := funcspec.Parse(e)
		if !spec.Qualified() {
			s.names[spec.FuncName] = struct{}{}
			continue
		}

		s.specs = append(s.specs, spec)
	}

	return s
}

// Len returns the number of entries.
func (s Set) Len() int {
	return len(s.names) + len(s.specs)
}

// Names returns the entries in short display form, sorted.
func (s Set) Names() []string {
	names := make([]string, 0, s.Len())
	for name := range s.names {
		names = append(names, name)
	}
	for _, spec := range s.specs {
		names = append(names, spec.FullName())
	}
	slices.Sort(names)

	return names
}

// Skip reports whether f is exempted.
func (s Set) Skip(f discard.Finding) bool {
	if _, ok := s.names[f.FunctionName]; ok {
		return true
	}

	if f.Callee == nil {
		return false
	}

	for _, spec := range s.specs {
		if spec.Matches(f.Callee) {
			return true
		}
	}

	return false
}
