package transpiler

import (
	"github.com/gscript-labs/ts2gs/tsast"
	"github.com/gscript-labs/ts2gs/tsc"
)

// Emit-time substitutions. Each one targets a single node kind and is
// appended to the request's substitution list, never installed over an
// existing hook: the compiler runs all substitutions for a kind in
// registration order.

func notEmitted(n tsast.Node) *tsast.NotEmitted {
	placeholder := &tsast.NotEmitted{}
	placeholder.Start, placeholder.End = n.Pos()
	return placeholder
}

// SuppressExportFrom drops re-export declarations that reached the
// emitted tree. The lowering passes them through untouched because no
// module system exists to resolve them.
func SuppressExportFrom() tsc.Substitution {
	return tsc.Substitution{
		Kind: tsast.KindExportDecl,
		Fn: func(n tsast.Node) tsast.Node {
			if isExportFrom(n) {
				return notEmitted(n)
			}
			return n
		},
	}
}

// SuppressModuleMarker drops the `exports.__esModule = true;` marker
// the compiler injects when lowering export syntax. It must run as an
// emit-time substitution: the sentinel range that proves the statement
// was injected only exists after lowering has happened.
func SuppressModuleMarker() tsc.Substitution {
	return tsc.Substitution{
		Kind: tsast.KindExprStmt,
		Fn: func(n tsast.Node) tsast.Node {
			if isModuleMarker(n) {
				return notEmitted(n)
			}
			return n
		},
	}
}

// SuppressDefaultExport drops the `exports["default"] = <temp>;`
// assignment produced by lowering `export default`. The intermediate
// value binding stays; only the default-slot assignment goes, since
// the sandbox has no importer that could ever read it.
func SuppressDefaultExport() tsc.Substitution {
	return tsc.Substitution{
		Kind: tsast.KindExprStmt,
		Fn: func(n tsast.Node) tsast.Node {
			if isDefaultExportAssign(n) {
				return notEmitted(n)
			}
			return n
		},
	}
}
