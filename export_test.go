package ignoredunion

import (
	"io"

	"github.com/spf13/pflag"
)

// ResetListFlags clears -exceptions and -union-types.
// Repeated Flags.Set calls append, so tests reset them when done.
func ResetListFlags() {
	listFlags.VisitAll(func(f *pflag.Flag) {
		if v, ok := f.Value.(pflag.SliceValue); ok {
			_ = v.Replace(nil)
		}
	})
}

// SetLogOutput redirects advisories and returns a func restoring the previous writer.
func SetLogOutput(w io.Writer) func() {
	prev := logOutput
	logOutput = w

	return func() { logOutput = prev }
}
