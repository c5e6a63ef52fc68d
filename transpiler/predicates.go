package transpiler

import (
	"github.com/gscript-labs/ts2gs/tsast"
)

// Node classifiers used by the pipeline passes. All of them are pure
// and return false for any shape they do not recognize, including
// partial matches on sub-fields.

// isImport reports whether the node is an import declaration, in
// either the standard `import ... from ...` form or the aliasing
// `import X = Y` form.
func isImport(n tsast.Node) bool {
	switch n.(type) {
	case *tsast.ImportDecl, *tsast.ImportAlias:
		return true
	}
	return false
}

// isExportFrom reports whether the node is an export declaration with
// a `from` clause, i.e. a re-export.
func isExportFrom(n tsast.Node) bool {
	decl, ok := n.(*tsast.ExportDecl)
	return ok && decl.HasFrom
}

// isIdent reports whether the node is a bare identifier reference.
func isIdent(n tsast.Node) bool {
	_, ok := n.(*tsast.Ident)
	return ok
}

// isModuleMarker matches the compiler-injected
// `exports.__esModule = true;` statement. The structural shape is the
// primary check; the sentinel range corroborates that the statement
// was injected rather than authored, which the embedded compiler
// guarantees for nodes it synthesizes.
func isModuleMarker(n tsast.Node) bool {
	stmt, ok := n.(*tsast.ExprStmt)
	if !ok || !stmt.Synthetic() {
		return false
	}
	assign, ok := stmt.X.(*tsast.BinaryExpr)
	if !ok || assign.Op != "=" {
		return false
	}
	access, ok := assign.X.(*tsast.PropertyAccess)
	if !ok || access.Name != "__esModule" {
		return false
	}
	recv, ok := access.X.(*tsast.Ident)
	if !ok || recv.Name != "exports" {
		return false
	}
	lit, ok := assign.Y.(*tsast.BoolLit)
	return ok && lit.Value
}

// isDefaultExportAssign matches `exports["default"] = <identifier>;`
// (or the dotted access spelling). The match is structural only: user
// code can legitimately contain this pattern, and suppressing it there
// is equally correct.
func isDefaultExportAssign(n tsast.Node) bool {
	stmt, ok := n.(*tsast.ExprStmt)
	if !ok {
		return false
	}
	assign, ok := stmt.X.(*tsast.BinaryExpr)
	if !ok || assign.Op != "=" {
		return false
	}
	if !isIdent(assign.Y) {
		return false
	}
	switch access := assign.X.(type) {
	case *tsast.ElementAccess:
		recv, ok := access.X.(*tsast.Ident)
		if !ok || recv.Name != "exports" {
			return false
		}
		index, ok := access.Index.(*tsast.StringLit)
		return ok && index.Value == "default"
	case *tsast.PropertyAccess:
		recv, ok := access.X.(*tsast.Ident)
		return ok && recv.Name == "exports" && access.Name == "default"
	}
	return false
}
