// Package union handles //ignoredunion:union directives and the -union-types flag.
package union

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/ignoredunion/internal/typeutil"
)

// Fact marks a named type declared as a closed set of alternatives.
// It is exported on the *types.TypeName so importing packages see the mark.
type Fact struct {
	Name string // gob refuses structs without exported fields
}

// AFact implements analysis.Fact.
func (*Fact) AFact() {}

func (f *Fact) String() string { return "union " + f.Name }

// Spec identifies a sum type by provenance.
// Format: "pkg/path.TypeName" (e.g., "github.com/example/result.Result").
type Spec struct {
	PkgPath  string
	TypeName string
}

// Matches checks if the given type name matches this spec.
func (s Spec) Matches(obj *types.TypeName) bool {
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	return typeutil.MatchPkg(obj.Pkg().Path(), s.PkgPath) && obj.Name() == s.TypeName
}

// Parse parses -union-types values, dropping malformed entries.
func Parse(values []string) []Spec {
	specs := make([]Spec, 0, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)

		lastDot := strings.LastIndex(v, ".")
		if lastDot <= 0 || lastDot == len(v)-1 {
			continue // Invalid format
		}

		specs = append(specs, Spec{
			PkgPath:  v[:lastDot],
			TypeName: v[lastDot+1:],
		})
	}

	return specs
}

// Map tracks named types treated as unions.
type Map struct {
	local    map[*types.TypeName]struct{} // from directives in this package
	external []Spec                       // from -union-types flag
	pass     *analysis.Pass               // for facts exported by dependencies
}

// Build scans files for types marked with the directive, exports a fact
// for each of them and keeps the configured specs.
func Build(pass *analysis.Pass, specs []Spec) *Map {
	m := &Map{
		local:    make(map[*types.TypeName]struct{}),
		external: specs,
		pass:     pass,
	}

	for _, file := range pass.Files {
		buildUnionsForFile(pass, file, m.local)
	}

	for obj := range m.local {
		pass.ExportObjectFact(obj, &Fact{Name: obj.Name()})
	}

	return m
}

// IsSumType reports whether obj was declared as a union, here or in a dependency.
func (m *Map) IsSumType(obj *types.TypeName) bool {
	if m == nil || obj == nil {
		return false
	}

	if _, ok := m.local[obj]; ok {
		return true
	}

	for _, spec := range m.external {
		if spec.Matches(obj) {
			return true
		}
	}

	if m.pass != nil && obj.Pkg() != nil && obj.Pkg() != m.pass.Pkg {
		return m.pass.ImportObjectFact(obj, new(Fact))
	}

	return false
}

// Len returns the number of types known without consulting facts.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.local) + len(m.external)
}

// buildUnionsForFile scans a single file for union directives.
func buildUnionsForFile(pass *analysis.Pass, file *ast.File, m map[*types.TypeName]struct{}) {
	lines := make(map[int]bool)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if isUnionComment(c.Text) {
				lines[pass.Fset.Position(c.Pos()).Line] = true
			}
		}
	}

	if len(lines) == 0 {
		return
	}

	marked := func(pos token.Pos) bool {
		return lines[pass.Fset.Position(pos).Line-1]
	}

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, s := range gen.Specs {
			ts := s.(*ast.TypeSpec)

			// A single ungrouped spec carries the directive above the type keyword.
			if !marked(ts.Pos()) && !(gen.Lparen == token.NoPos && marked(gen.Pos())) {
				continue
			}

			obj, ok := pass.TypesInfo.Defs[ts.Name].(*types.TypeName)
			if !ok || obj.IsAlias() {
				continue
			}

			m[obj] = struct{}{}
		}
	}
}

// isUnionComment checks if a comment is a union directive.
func isUnionComment(text string) bool {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	rest, ok := strings.CutPrefix(text, "ignoredunion:union")
	if !ok {
		return false
	}

	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}
