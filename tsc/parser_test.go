package tsc

import (
	"errors"
	"testing"

	"github.com/gscript-labs/ts2gs/tsast"
	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, src string) *tsast.SourceFile {
	t.Helper()
	file, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return file
}

func TestParseImportForms(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		check func(t *testing.T, stmt tsast.Stmt)
	}{
		{
			name: "default import",
			src:  `import lodash from "lodash";`,
			check: func(t *testing.T, stmt tsast.Stmt) {
				decl := stmt.(*tsast.ImportDecl)
				assert.Equal(t, "lodash", decl.Default.Name)
				assert.Equal(t, "lodash", decl.Module)
			},
		},
		{
			name: "named imports with alias",
			src:  `import { chunk, zip as zap } from "lodash";`,
			check: func(t *testing.T, stmt tsast.Stmt) {
				decl := stmt.(*tsast.ImportDecl)
				if assert.Len(t, decl.Named, 2) {
					assert.Equal(t, "chunk", decl.Named[0].Name.Name)
					assert.Nil(t, decl.Named[0].Alias)
					assert.Equal(t, "zip", decl.Named[1].Name.Name)
					assert.Equal(t, "zap", decl.Named[1].Alias.Name)
				}
			},
		},
		{
			name: "namespace import",
			src:  `import * as helpers from "./helpers";`,
			check: func(t *testing.T, stmt tsast.Stmt) {
				decl := stmt.(*tsast.ImportDecl)
				assert.Equal(t, "helpers", decl.Namespace.Name)
				assert.Equal(t, "./helpers", decl.Module)
			},
		},
		{
			name: "side effect import",
			src:  `import "./polyfill";`,
			check: func(t *testing.T, stmt tsast.Stmt) {
				decl := stmt.(*tsast.ImportDecl)
				assert.Nil(t, decl.Default)
				assert.Equal(t, "./polyfill", decl.Module)
			},
		},
		{
			name: "aliasing form",
			src:  `import App = GoogleAppsScript.App;`,
			check: func(t *testing.T, stmt tsast.Stmt) {
				alias := stmt.(*tsast.ImportAlias)
				assert.Equal(t, "App", alias.Name.Name)
				target := alias.Target.(*tsast.PropertyAccess)
				assert.Equal(t, "App", target.Name)
				assert.Equal(t, "GoogleAppsScript", target.X.(*tsast.Ident).Name)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := mustParse(t, tt.src)
			if len(file.Stmts) != 1 {
				t.Fatalf("got %d statements, want 1", len(file.Stmts))
			}
			tt.check(t, file.Stmts[0])
		})
	}
}

func TestParseExportForms(t *testing.T) {
	file := mustParse(t, `export { pi, tau as doublePi } from "./math";`)
	decl := file.Stmts[0].(*tsast.ExportDecl)
	assert.True(t, decl.HasFrom)
	assert.Equal(t, "./math", decl.From)
	assert.Len(t, decl.Specs, 2)

	file = mustParse(t, `export { pi };`)
	decl = file.Stmts[0].(*tsast.ExportDecl)
	assert.False(t, decl.HasFrom)

	file = mustParse(t, `export default 3.141592;`)
	def := file.Stmts[0].(*tsast.ExportDefault)
	assert.Equal(t, "3.141592", def.X.(*tsast.NumberLit).Value)

	file = mustParse(t, `export const pi: number = 3.141592;`)
	varDecl := file.Stmts[0].(*tsast.VarDecl)
	assert.True(t, varDecl.Exported)
	assert.Equal(t, "const", varDecl.Keyword)
	assert.Equal(t, "number", varDecl.TypeText)
}

func TestParseStatementRange(t *testing.T) {
	src := `import { a } from "b";`
	file := mustParse(t, src)
	assert.Equal(t, src, file.Text(file.Stmts[0]))
}

func TestParseFunctionErasesTypes(t *testing.T) {
	file := mustParse(t, "function add(a: number, b: Array<string>): number {\n\treturn a + b;\n}")
	decl := file.Stmts[0].(*tsast.FuncDecl)
	assert.Equal(t, "add", decl.Name.Name)
	if assert.Len(t, decl.Params, 2) {
		assert.Equal(t, "number", decl.Params[0].TypeText)
		assert.Equal(t, "Array<string>", decl.Params[1].TypeText)
	}
	assert.Equal(t, "number", decl.ResultText)
	assert.Len(t, decl.Body.Stmts, 1)
}

func TestParseEnum(t *testing.T) {
	file := mustParse(t, "enum Color { Red, Green = 5, Blue }")
	decl := file.Stmts[0].(*tsast.EnumDecl)
	assert.Equal(t, "Color", decl.Name.Name)
	if assert.Len(t, decl.Members, 3) {
		assert.Nil(t, decl.Members[0].Init)
		assert.Equal(t, "5", decl.Members[1].Init.(*tsast.NumberLit).Value)
	}
}

func TestParsePrecedence(t *testing.T) {
	file := mustParse(t, "x = a || b && c;")
	assign := file.Stmts[0].(*tsast.ExprStmt).X.(*tsast.BinaryExpr)
	assert.Equal(t, "=", assign.Op)
	or := assign.Y.(*tsast.BinaryExpr)
	assert.Equal(t, "||", or.Op)
	and := or.Y.(*tsast.BinaryExpr)
	assert.Equal(t, "&&", and.Op)
}

func TestParseSetsParents(t *testing.T) {
	file := mustParse(t, "enum Color { Red }")
	decl := file.Stmts[0].(*tsast.EnumDecl)
	assert.Same(t, file, decl.Parent())
	assert.Same(t, decl, decl.Members[0].Parent())
	assert.Same(t, decl.Members[0], decl.Members[0].Name.Parent())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "missing identifier", src: "const = 1;"},
		{name: "missing module specifier", src: "import { a } from;"},
		{name: "unterminated block", src: "function f() { return 1;"},
		{name: "unsupported export form", src: "export from;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tt.src)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("error is %T, want *ParseError", err)
			}
		})
	}
}
