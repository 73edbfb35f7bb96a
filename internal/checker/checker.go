package checker

import (
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/ignoredunion/internal/classify"
	"github.com/mpyw/ignoredunion/internal/directives/ignore"
	"github.com/mpyw/ignoredunion/internal/discard"
	"github.com/mpyw/ignoredunion/internal/exception"
)

// Checker reports discarded union results.
type Checker struct {
	classifier *classify.Classifier
	detector   *discard.Detector
	exceptions exception.Set
	ignoreMaps map[string]ignore.Map
	skipFiles  map[string]bool
}

// New creates a checker for one pass.
func New(
	classifier *classify.Classifier,
	detector *discard.Detector,
	exceptions exception.Set,
	ignoreMaps map[string]ignore.Map,
	skipFiles map[string]bool,
) *Checker {
	return &Checker{
		classifier: classifier,
		detector:   detector,
		exceptions: exceptions,
		ignoreMaps: ignoreMaps,
		skipFiles:  skipFiles,
	}
}

// Run visits every call expression once, in document order, and returns
// the findings it reported.
func (c *Checker) Run(pass *analysis.Pass, insp *inspector.Inspector) []discard.Finding {
	var findings []discard.Finding

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	insp.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		call := n.(*ast.CallExpr)

		filename := pass.Fset.Position(call.Pos()).Filename
		if c.skipFiles[filename] {
			return true
		}

		f, ok := c.check(pass, call, stack)
		if !ok {
			return true
		}

		findings = append(findings, f)
		pass.Report(analysis.Diagnostic{
			Pos:      f.Pos,
			End:      f.End,
			Category: f.Kind.String(),
			Message:  Message(f),
		})

		return true
	})

	return findings
}

// check judges a single call. Conversions and builtins are never findings.
func (c *Checker) check(pass *analysis.Pass, call *ast.CallExpr, stack []ast.Node) (discard.Finding, bool) {
	if tv, ok := pass.TypesInfo.Types[call.Fun]; ok && (tv.IsType() || tv.IsBuiltin()) {
		return discard.Finding{}, false
	}

	cls := c.classifier.Classify(pass.TypesInfo.TypeOf(call))

	f, ok := c.detector.Visit(call, stack, cls)
	if !ok {
		return discard.Finding{}, false
	}

	if c.exceptions.Skip(f) {
		return discard.Finding{}, false
	}

	if c.shouldIgnore(pass, f.Pos, ignore.Category(f.Kind.String())) {
		return discard.Finding{}, false
	}

	return f, true
}

// shouldIgnore checks if the position should be ignored for the given category.
func (c *Checker) shouldIgnore(pass *analysis.Pass, pos token.Pos, category ignore.Category) bool {
	filename := pass.Fset.Position(pos).Filename
	ignoreMap, ok := c.ignoreMaps[filename]
	if !ok {
		return false
	}

	return ignoreMap.ShouldIgnore(pass.Fset.Position(pos).Line, category)
}

// ReportUnusedIgnores reports ignore directives that suppressed nothing.
func (c *Checker) ReportUnusedIgnores(pass *analysis.Pass) {
	for _, ignoreMap := range c.ignoreMaps {
		for _, unused := range ignoreMap.GetUnusedIgnores() {
			if len(unused.Categories) == 0 {
				pass.Reportf(unused.Pos, "unused ignoredunion:ignore directive")
				continue
			}

			names := make([]string, len(unused.Categories))
			for i, cat := range unused.Categories {
				names[i] = string(cat)
			}
			pass.Reportf(unused.Pos, "unused ignoredunion:ignore directive for category(s): %s", strings.Join(names, ", "))
		}
	}
}

// Message formats the diagnostic for a finding.
func Message(f discard.Finding) string {
	return `return value of "` + f.FunctionName + `" must be used`
}
