// Package typeutil provides type checking utilities for ignoredunion.
//
// # Overview
//
// This package provides the small predicates the classifier is built from:
//
//	IsErrorType(t)   // error, or an interface embedding error
//	IsBoolType(t)    // bool, or a named type with a bool underlying type
//	NamedObject(t)   // *types.TypeName behind aliases and pointers
//
// # Package Matching
//
// [MatchPkg] accepts major version suffixes, so a type listed as
// github.com/example/result.Result also matches github.com/example/result/v2.Result:
//
//	MatchPkg("github.com/example/result/v2", "github.com/example/result") // true
//	MatchPkg("github.com/example/result/sub", "github.com/example/result") // false
package typeutil
