// Package funcspec provides function specification parsing and matching.
//
// # Overview
//
// This package parses function specifications from flag and configuration
// values and matches them against types.Func objects. The exception filter
// uses it for qualified entries.
//
// # Specification Format
//
// A function specification has the format:
//
//	pkg/path.FuncName           # Package-level function
//	pkg/path.TypeName.Method    # Method on type
//
// Examples:
//
//	strconv.Atoi
//	github.com/example/result.Parser.Parse
//
// # Parsing
//
// Use [Parse] to create a Spec from a string:
//
//	spec := funcspec.Parse("github.com/example/result.Parser.Parse")
//	// spec.PkgPath  = "github.com/example/result"
//	// spec.TypeName = "Parser"
//	// spec.FuncName = "Parse"
//
//	spec := funcspec.Parse("ignored")
//	// spec.PkgPath  = ""  (not qualified)
//	// spec.FuncName = "ignored"
//
// # Matching
//
// Use [Spec.Matches] to check if a types.Func matches:
//
//	fn := funcspec.ExtractFunc(pass.TypesInfo, call)
//	if fn != nil && spec.Matches(fn) {
//	    // Call matches the specification
//	}
//
// The matching handles:
//   - Package path matching (including version suffixes like /v2)
//   - Type name for methods, with pointer receivers
//   - Instantiated generic functions and methods (matched by origin)
package funcspec
