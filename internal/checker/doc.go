// Package checker provides the core analysis engine for ignoredunion.
//
// # Architecture Overview
//
//	                  +------------------+
//	                  |   analyzer.go    |  Entry point, flags, -config
//	                  +--------+---------+
//	                           |
//	                  +--------v---------+
//	                  |     Checker      |  Orchestration, reporting
//	                  +--------+---------+
//	                           |
//	     +-----------+---------+---------+--------------+
//	     |           |                   |              |
//	+----v-----+ +---v------+    +-------v-----+ +------v------+
//	| classify | | discard  |    |  exception  | | directives  |
//	| (types)  | | (syntax) |    |  (config)   | | ignore/union|
//	+----+-----+ +---+------+    +-------+-----+ +-------------+
//	     |           |                   |
//	     +-----------+---------+---------+
//	                           |
//	                +----------v----------+
//	                | typeutil / funcspec |
//	                +---------------------+
//
// # Execution Flow
//
//  1. The analyzer resolves options from flags and the optional config file
//  2. Ignore maps and sum types are built from directives and facts
//  3. [Checker.Run] walks every call expression with its ancestor stack
//  4. For each call:
//     - conversions and builtins are skipped
//     - the result type is classified
//     - the syntactic context decides whether the value is discarded
//     - exceptions and ignore directives filter the finding
//  5. Findings are reported via pass.Report, in document order
//  6. [Checker.ReportUnusedIgnores] reports directives that suppressed nothing
package checker
