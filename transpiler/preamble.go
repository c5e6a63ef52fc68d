package transpiler

import (
	"github.com/gscript-labs/ts2gs/tsast"
)

// referencesExports reports whether any identifier in the emitted tree
// is spelled `exports`. The scan short-circuits on the first hit; the
// rest of the tree is never visited.
func referencesExports(n tsast.Node) bool {
	if id, ok := n.(*tsast.Ident); ok {
		return id.Name == "exports"
	}
	for _, c := range tsast.Children(n) {
		if referencesExports(c) {
			return true
		}
	}
	return false
}

// injectExportsPreamble prepends the guarded declarations
//
//	var exports = exports || {};
//	var module = module || { exports: exports };
//
// to the file. They are built as declaration nodes, not spliced text,
// so later node-kind passes see them like any other statement. The
// caller only invokes this when the tree references `exports`; scripts
// that assign no exports never get a dead preamble.
func injectExportsPreamble(file *tsast.SourceFile) {
	file.Stmts = append([]tsast.Stmt{exportsGuard(), moduleGuard()}, file.Stmts...)
	tsast.ResolveParents(file)
}

func exportsGuard() tsast.Stmt {
	return &tsast.VarDecl{
		NodeBase: tsast.Synth(),
		Keyword:  "var",
		Name:     tsast.NewIdent("exports"),
		Init: &tsast.BinaryExpr{
			NodeBase: tsast.Synth(),
			Op:       "||",
			X:        tsast.NewIdent("exports"),
			Y:        &tsast.ObjectLit{NodeBase: tsast.Synth()},
		},
	}
}

func moduleGuard() tsast.Stmt {
	return &tsast.VarDecl{
		NodeBase: tsast.Synth(),
		Keyword:  "var",
		Name:     tsast.NewIdent("module"),
		Init: &tsast.BinaryExpr{
			NodeBase: tsast.Synth(),
			Op:       "||",
			X:        tsast.NewIdent("module"),
			Y: &tsast.ObjectLit{
				NodeBase: tsast.Synth(),
				Props: []*tsast.Property{{
					NodeBase: tsast.Synth(),
					Name:     "exports",
					Value:    tsast.NewIdent("exports"),
				}},
			},
		},
	}
}
