package tsc

import (
	"github.com/gscript-labs/ts2gs/tsast"
)

// esModuleMarkerProperty is assigned on exports when any module
// export syntax is lowered, mirroring the CommonJS interop marker.
const esModuleMarkerProperty = "__esModule"

// defaultExportTemp is the intermediate binding for a lowered
// `export default` expression.
const defaultExportTemp = "exports_default_1"

// exportAssign builds `exports.<name> = <rhs>;` with the sentinel
// range on every node.
func exportAssign(name string, rhs tsast.Expr) *tsast.ExprStmt {
	return &tsast.ExprStmt{
		NodeBase: tsast.Synth(),
		X: &tsast.BinaryExpr{
			NodeBase: tsast.Synth(),
			Op:       "=",
			X: &tsast.PropertyAccess{
				NodeBase: tsast.Synth(),
				X:        tsast.NewIdent("exports"),
				Name:     name,
			},
			Y: rhs,
		},
	}
}

// moduleMarker builds the synthetic `exports.__esModule = true;`
// statement. Its sentinel range is what distinguishes it from the
// same expression authored by a user.
func moduleMarker() *tsast.ExprStmt {
	return &tsast.ExprStmt{
		NodeBase: tsast.Synth(),
		X: &tsast.BinaryExpr{
			NodeBase: tsast.Synth(),
			Op:       "=",
			X: &tsast.PropertyAccess{
				NodeBase: tsast.Synth(),
				X:        tsast.NewIdent("exports"),
				Name:     esModuleMarkerProperty,
			},
			Y: &tsast.BoolLit{NodeBase: tsast.Synth(), Value: true},
		},
	}
}

// defaultExportAssign builds `exports["default"] = <temp>;`.
func defaultExportAssign(tempName string) *tsast.ExprStmt {
	return &tsast.ExprStmt{
		NodeBase: tsast.Synth(),
		X: &tsast.BinaryExpr{
			NodeBase: tsast.Synth(),
			Op:       "=",
			X: &tsast.ElementAccess{
				NodeBase: tsast.Synth(),
				X:        tsast.NewIdent("exports"),
				Index:    &tsast.StringLit{NodeBase: tsast.Synth(), Value: "default"},
			},
			Y: tsast.NewIdent(tempName),
		},
	}
}

// lowerFile rewrites the input tree into its legacy-target form:
// let/const become var, export syntax becomes exports assignments, and
// the __esModule marker is injected when any export was lowered.
func lowerFile(file *tsast.SourceFile) *tsast.SourceFile {
	out := &tsast.SourceFile{Source: file.Source}
	out.Start = file.Start
	out.End = file.End

	stmts, loweredExport := lowerStmts(file.Stmts)
	if loweredExport {
		stmts = append([]tsast.Stmt{moduleMarker()}, stmts...)
	}
	out.Stmts = stmts
	return out
}

func lowerStmts(stmts []tsast.Stmt) ([]tsast.Stmt, bool) {
	var out []tsast.Stmt
	loweredExport := false
	for _, stmt := range stmts {
		lowered, sawExport := lowerStmt(stmt)
		out = append(out, lowered...)
		loweredExport = loweredExport || sawExport
	}
	return out, loweredExport
}

// lowerStmt lowers one statement, possibly into several. The second
// result reports whether export syntax was lowered anywhere inside.
func lowerStmt(stmt tsast.Stmt) ([]tsast.Stmt, bool) {
	switch v := stmt.(type) {
	case *tsast.VarDecl:
		v.Keyword = "var"
		if !v.Exported {
			return []tsast.Stmt{v}, false
		}
		return []tsast.Stmt{v, exportAssign(v.Name.Name, tsast.NewIdent(v.Name.Name))}, true

	case *tsast.FuncDecl:
		sawExport := false
		if v.Body != nil {
			v.Body.Stmts, sawExport = lowerStmts(v.Body.Stmts)
		}
		if !v.Exported {
			return []tsast.Stmt{v}, sawExport
		}
		return []tsast.Stmt{v, exportAssign(v.Name.Name, tsast.NewIdent(v.Name.Name))}, true

	case *tsast.EnumDecl:
		qualifyEnumMemberRefs(v)
		if !v.Exported {
			return []tsast.Stmt{v}, false
		}
		return []tsast.Stmt{v, exportAssign(v.Name.Name, tsast.NewIdent(v.Name.Name))}, true

	case *tsast.ExportDefault:
		binding := &tsast.VarDecl{
			NodeBase: tsast.Synth(),
			Keyword:  "var",
			Name:     tsast.NewIdent(defaultExportTemp),
			Init:     v.X,
		}
		return []tsast.Stmt{binding, defaultExportAssign(defaultExportTemp)}, true

	case *tsast.ExportDecl:
		if v.HasFrom {
			// re-exports cannot be resolved without a module system;
			// passed through for the suppression hooks to handle
			return []tsast.Stmt{v}, false
		}
		out := make([]tsast.Stmt, 0, len(v.Specs))
		for _, spec := range v.Specs {
			name := spec.Name.Name
			exported := name
			if spec.Alias != nil {
				exported = spec.Alias.Name
			}
			out = append(out, exportAssign(exported, tsast.NewIdent(name)))
		}
		return out, len(out) > 0

	case *tsast.BlockStmt:
		var sawExport bool
		v.Stmts, sawExport = lowerStmts(v.Stmts)
		return []tsast.Stmt{v}, sawExport

	case *tsast.IfStmt:
		thenStmts, sawThen := lowerStmt(v.Then)
		if len(thenStmts) == 1 {
			v.Then = thenStmts[0]
		}
		sawElse := false
		if v.Else != nil {
			var elseStmts []tsast.Stmt
			elseStmts, sawElse = lowerStmt(v.Else)
			if len(elseStmts) == 1 {
				v.Else = elseStmts[0]
			}
		}
		return []tsast.Stmt{v}, sawThen || sawElse
	}
	return []tsast.Stmt{stmt}, false
}

// qualifyEnumMemberRefs applies the compiler's default identifier
// substitution inside an enum body: a member initializer referring to
// another member of the same enum is rewritten to the qualified
// `Enum["Member"]` form. Identifiers marked PreserveName are exempt,
// which is why name-preserving passes must not mark enum internals.
func qualifyEnumMemberRefs(decl *tsast.EnumDecl) {
	members := make(map[string]bool, len(decl.Members))
	for _, m := range decl.Members {
		members[m.Name.Name] = true
	}
	for _, m := range decl.Members {
		if m.Init == nil {
			continue
		}
		rewritten := tsast.Rewrite(m.Init, func(n tsast.Node) tsast.Node {
			id, ok := n.(*tsast.Ident)
			if !ok || id.PreserveName || !members[id.Name] {
				return n
			}
			return &tsast.ElementAccess{
				NodeBase: tsast.Synth(),
				X:        tsast.NewIdent(decl.Name.Name),
				Index:    &tsast.StringLit{NodeBase: tsast.Synth(), Value: id.Name},
			}
		})
		if init, ok := rewritten.(tsast.Expr); ok {
			m.Init = init
		}
	}
}
