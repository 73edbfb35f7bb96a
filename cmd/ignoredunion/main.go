// Command ignoredunion is a linter that reports discarded union results.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/ignoredunion"
)

func main() {
	singlechecker.Main(ignoredunion.Analyzer)
}
