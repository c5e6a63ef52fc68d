package transpiler

import (
	"strings"

	"github.com/gscript-labs/ts2gs/tsast"
	"github.com/gscript-labs/ts2gs/tsc"
)

// CommentOutModuleSyntax returns a transformer that replaces every
// import statement and every `export ... from` re-export with a
// not-emitted placeholder carrying the statement's verbatim source as
// a single-line comment. Editors tend to auto-insert imports for the
// host's ambient namespaces, which do not exist at runtime; commenting
// them out keeps a visible record in the output instead of silently
// dropping lines.
//
// Only the outermost matching statement is elided; traversal continues
// into everything else.
func CommentOutModuleSyntax() tsc.Transformer {
	return func(file *tsast.SourceFile) *tsast.SourceFile {
		file.Stmts = commentOutList(file, file.Stmts)
		return file
	}
}

func commentOutList(file *tsast.SourceFile, stmts []tsast.Stmt) []tsast.Stmt {
	for i, stmt := range stmts {
		if isImport(stmt) || isExportFrom(stmt) {
			start, end := stmt.Pos()
			placeholder := &tsast.NotEmitted{Comment: escapeNewlines(file.Text(stmt))}
			placeholder.Start = start
			placeholder.End = end
			stmts[i] = placeholder
			continue
		}
		switch v := stmt.(type) {
		case *tsast.BlockStmt:
			v.Stmts = commentOutList(file, v.Stmts)
		case *tsast.FuncDecl:
			if v.Body != nil {
				v.Body.Stmts = commentOutList(file, v.Body.Stmts)
			}
		case *tsast.IfStmt:
			arms := commentOutList(file, []tsast.Stmt{v.Then})
			v.Then = arms[0]
			if v.Else != nil {
				arms = commentOutList(file, []tsast.Stmt{v.Else})
				v.Else = arms[0]
			}
		}
	}
	return stmts
}

// escapeNewlines flattens a multi-line statement into a single comment
// line by replacing each line break with the two-character sequence
// `\n`.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	return strings.ReplaceAll(s, "\n", `\n`)
}

// PreserveIdentifierSpelling returns a transformer that marks every
// identifier outside enum declarations so the compiler keeps its
// spelling instead of applying the default substitution. Identifiers
// inside enums stay unmarked: member renaming to the qualified form is
// required for the lowered enum to be valid.
func PreserveIdentifierSpelling() tsc.Transformer {
	return func(file *tsast.SourceFile) *tsast.SourceFile {
		tsast.ResolveParents(file)
		tsast.Inspect(file, func(n tsast.Node) bool {
			if id, ok := n.(*tsast.Ident); ok && !withinEnum(id) {
				id.PreserveName = true
			}
			return true
		})
		return file
	}
}

func withinEnum(n tsast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Kind() == tsast.KindEnumDecl {
			return true
		}
	}
	return false
}

// importRenamer rewrites references to bindings imported from renamed
// dependencies into references to the host-global name the caller
// mapped the dependency to. The collect transformer runs before
// CommentOutModuleSyntax so the import clauses are still visible; the
// substitute hook rewrites identifiers in the emitted tree. State is
// local to one compilation.
type importRenamer struct {
	renames  map[string]string     // module specifier -> host global
	bindings map[string]tsast.Expr // local binding -> replacement expression
}

func newImportRenamer(renames map[string]string) *importRenamer {
	return &importRenamer{renames: renames, bindings: map[string]tsast.Expr{}}
}

func (r *importRenamer) collect() tsc.Transformer {
	return func(file *tsast.SourceFile) *tsast.SourceFile {
		for _, stmt := range file.Stmts {
			decl, ok := stmt.(*tsast.ImportDecl)
			if !ok {
				continue
			}
			global, ok := r.renames[decl.Module]
			if !ok {
				continue
			}
			if decl.Default != nil {
				r.bindings[decl.Default.Name] = tsast.NewIdent(global)
			}
			if decl.Namespace != nil {
				r.bindings[decl.Namespace.Name] = tsast.NewIdent(global)
			}
			for _, spec := range decl.Named {
				local := spec.Name.Name
				if spec.Alias != nil {
					local = spec.Alias.Name
				}
				r.bindings[local] = &tsast.PropertyAccess{
					NodeBase: tsast.Synth(),
					X:        tsast.NewIdent(global),
					Name:     spec.Name.Name,
				}
			}
		}
		return file
	}
}

func (r *importRenamer) substitute() tsc.Substitution {
	return tsc.Substitution{
		Kind: tsast.KindIdent,
		Fn: func(n tsast.Node) tsast.Node {
			id, ok := n.(*tsast.Ident)
			if !ok {
				return n
			}
			if replacement, ok := r.bindings[id.Name]; ok {
				return cloneExpr(replacement)
			}
			return n
		},
	}
}

// cloneExpr copies the small replacement shapes importRenamer builds,
// so a binding used in several places never shares nodes.
func cloneExpr(e tsast.Expr) tsast.Expr {
	switch v := e.(type) {
	case *tsast.Ident:
		return tsast.NewIdent(v.Name)
	case *tsast.PropertyAccess:
		return &tsast.PropertyAccess{NodeBase: tsast.Synth(), X: cloneExpr(v.X), Name: v.Name}
	}
	return e
}
