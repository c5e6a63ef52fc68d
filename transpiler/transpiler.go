// Package transpiler converts modern module-syntax source into the
// restricted legacy dialect the Apps Script sandbox accepts: no
// import/export system, no module loader, ES3-era output.
//
// The compiler itself lives in package tsc; this package wraps it with
// a touch-up pipeline. Import statements are commented out, compiler
// module markers are suppressed, identifier spelling is preserved, and
// an exports/module compatibility preamble is injected when, and only
// when, the emitted code references `exports`.
package transpiler

import (
	"fmt"

	"github.com/gscript-labs/ts2gs/internal/version"
	"github.com/gscript-labs/ts2gs/tsc"
)

// Transform compiles source with the touch-up pipeline applied and
// returns the final text, starting with the version banner. It is a
// pure function of its arguments: nothing is shared between
// invocations, and concurrent calls need no locking.
//
// A *tsc.ParseError is returned when the compiler cannot build a tree
// from source; there is no partial output and retrying is pointless.
func Transform(source string, opts *Options) (string, error) {
	res, err := tsc.Compile(source, buildRequest(opts))
	if err != nil {
		return "", err
	}

	if referencesExports(res.File) {
		injectExportsPreamble(res.File)
	}
	return banner() + res.Text(), nil
}

// banner stamps the tool and compiler versions as the first output
// line.
func banner() string {
	return fmt.Sprintf("// Compiled using %s %s (Compiler %s)\n", version.Name, version.Version, tsc.Version)
}
