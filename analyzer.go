// Package ignoredunion provides a go/analysis based analyzer for detecting
// discarded union results: calls whose (T, error), (T, bool), error or
// sum-type result, or whose received channel value of such a type, is dropped.
package ignoredunion

import (
	"errors"
	"flag"
	"go/ast"
	"io"
	"log/slog"
	"os"
	"reflect"

	"github.com/spf13/pflag"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/ignoredunion/internal/checker"
	"github.com/mpyw/ignoredunion/internal/classify"
	"github.com/mpyw/ignoredunion/internal/config"
	"github.com/mpyw/ignoredunion/internal/directives/ignore"
	"github.com/mpyw/ignoredunion/internal/directives/union"
	"github.com/mpyw/ignoredunion/internal/discard"
	"github.com/mpyw/ignoredunion/internal/exception"
)

// Flags for the analyzer.
var (
	exceptions []string
	unionTypes []string
	configPath string

	enableErrors    bool
	enableCommaOK   bool
	enableChan      bool
	enableGoStmt    bool
	enableDeferStmt bool
	verbose         bool
)

const name = "ignoredunion"

// listFlags holds the repeatable list flags; their values are shared with Analyzer.Flags.
var listFlags = pflag.NewFlagSet(name, pflag.ContinueOnError)

func init() {
	listFlags.StringSliceVar(&exceptions, "exceptions", nil,
		"comma-separated function names to skip (e.g., Lookup or pkg/path.Type.Method)")
	listFlags.StringSliceVar(&unionTypes, "union-types", nil,
		"comma-separated named types to treat as unions (e.g., github.com/example/result.Result)")
	listFlags.VisitAll(func(f *pflag.Flag) {
		Analyzer.Flags.Var(sliceFlag{f.Value}, f.Name, f.Usage)
	})

	Analyzer.Flags.StringVar(&configPath, "config", "", "path to a YAML configuration file")

	defaults := config.Defaults()
	Analyzer.Flags.BoolVar(&enableErrors, "errors", defaults.Errors, "treat error results as unions")
	Analyzer.Flags.BoolVar(&enableCommaOK, "comma-ok", defaults.CommaOK, "treat (T, bool) results as unions")
	Analyzer.Flags.BoolVar(&enableChan, "chan", defaults.Chan, "check values received from returned channels")
	Analyzer.Flags.BoolVar(&enableGoStmt, "go-stmt", defaults.GoStmt, "treat go statements as discards")
	Analyzer.Flags.BoolVar(&enableDeferStmt, "defer-stmt", defaults.DeferStmt, "treat defer statements as discards")
	Analyzer.Flags.BoolVar(&verbose, "verbose", false, "log per-package debug information to stderr")
}

// sliceFlag exposes a pflag slice value to the standard flag package.
// Repeated flags append; a comma-separated value adds several entries.
type sliceFlag struct {
	v pflag.Value
}

func (s sliceFlag) String() string {
	if s.v == nil {
		return ""
	}

	return s.v.String()
}

func (s sliceFlag) Set(value string) error {
	return s.v.Set(value)
}

// Analyzer is the main analyzer for ignoredunion.
var Analyzer = &analysis.Analyzer{
	Name:             name,
	Doc:              "checks that union results of function calls are not discarded",
	URL:              "https://github.com/mpyw/ignoredunion",
	Requires:         []*analysis.Analyzer{inspect.Analyzer},
	Run:              run,
	RunDespiteErrors: true,
	ResultType:       reflect.TypeOf((*Result)(nil)),
	FactTypes:        []analysis.Fact{(*union.Fact)(nil)},
	Flags:            flag.FlagSet{},
}

// Result is the analyzer result: the findings reported for the package.
type Result struct {
	Findings []discard.Finding
	// Degraded is set when type information was unavailable and the package was skipped.
	Degraded bool
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

// logOutput receives advisories; diagnostics go through the pass.
var logOutput io.Writer = os.Stderr

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: level}))
}

func run(pass *analysis.Pass) (any, error) {
	logger := newLogger()

	if !typesAvailable(pass) {
		logger.Warn("type information unavailable, package skipped",
			slog.String("analyzer", name),
			slog.String("package", pkgPath(pass)),
			slog.Int("type_errors", len(pass.TypeErrors)),
		)

		return &Result{Degraded: true}, nil
	}

	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	opts, err := resolveOptions()
	if err != nil {
		return nil, err
	}

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	// Build ignore maps for each file (excluding skipped files)
	ignoreMaps := buildIgnoreMaps(pass, skipFiles)

	// Sum types from //ignoredunion:union directives, facts and -union-types
	sumTypes := union.Build(pass, union.Parse(opts.UnionTypes))

	classifier := classify.New(classify.Options{
		Errors:   opts.Errors,
		CommaOK:  opts.CommaOK,
		Channels: opts.Chan,
		SumTypes: sumTypes,
	})
	detector := discard.New(pass.TypesInfo, discard.Options{
		GoStmt:    opts.GoStmt,
		DeferStmt: opts.DeferStmt,
	})

	exempt := exception.Parse(opts.Exceptions)

	c := checker.New(classifier, detector, exempt, ignoreMaps, skipFiles)
	findings := c.Run(pass, insp)

	// Report unused ignore directives
	c.ReportUnusedIgnores(pass)

	logger.Debug("package analyzed",
		slog.String("package", pkgPath(pass)),
		slog.Int("files", len(pass.Files)-len(skipFiles)),
		slog.Int("union_types", sumTypes.Len()),
		slog.Any("exceptions", exempt.Names()),
		slog.Int("findings", len(findings)),
	)

	return &Result{Findings: findings}, nil
}

// typesAvailable is checked once per pass before any traversal.
// Partial type information would produce false findings, so a package
// with type errors is skipped as a whole.
func typesAvailable(pass *analysis.Pass) bool {
	return pass.TypesInfo != nil && pass.TypesInfo.Types != nil && len(pass.TypeErrors) == 0
}

// resolveOptions merges the flags with the -config file.
func resolveOptions() (config.Options, error) {
	opts := config.Options{
		Exceptions: exceptions,
		UnionTypes: unionTypes,
		Errors:     enableErrors,
		CommaOK:    enableCommaOK,
		Chan:       enableChan,
		GoStmt:     enableGoStmt,
		DeferStmt:  enableDeferStmt,
	}

	if configPath == "" {
		return opts, nil
	}

	f, err := config.Load(configPath)
	if err != nil {
		return config.Options{}, err
	}

	return f.Apply(opts), nil
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
// Test files can be skipped via the driver's built-in -test flag.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename

		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass, skipFiles map[string]bool) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

func pkgPath(pass *analysis.Pass) string {
	if pass.Pkg == nil {
		return ""
	}

	return pass.Pkg.Path()
}
