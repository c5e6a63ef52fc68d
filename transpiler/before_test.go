package transpiler

import (
	"testing"

	"github.com/gscript-labs/ts2gs/tsast"
	"github.com/stretchr/testify/assert"
)

func TestCommentOutModuleSyntax(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		wantComment string
	}{
		{
			name:        "named import",
			code:        `import { chunk } from "lodash";`,
			wantComment: `import { chunk } from "lodash";`,
		},
		{
			name:        "aliasing import",
			code:        `import App = GoogleAppsScript.App;`,
			wantComment: `import App = GoogleAppsScript.App;`,
		},
		{
			name:        "re-export",
			code:        `export { pi } from "./math";`,
			wantComment: `export { pi } from "./math";`,
		},
		{
			name:        "multi-line import is escaped onto one line",
			code:        "import {\n    alpha,\n    beta\n} from \"./mod\";",
			wantComment: `import {\n    alpha,\n    beta\n} from "./mod";`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := CommentOutModuleSyntax()(parseFile(t, tt.code))
			if len(file.Stmts) != 1 {
				t.Fatalf("got %d statements, want 1", len(file.Stmts))
			}
			placeholder, ok := file.Stmts[0].(*tsast.NotEmitted)
			if !ok {
				t.Fatalf("statement is %T, want *tsast.NotEmitted", file.Stmts[0])
			}
			assert.Equal(t, tt.wantComment, placeholder.Comment)
		})
	}
}

func TestCommentOutRecursesIntoBodies(t *testing.T) {
	code := "function setup() {\n\timport App = Host.App;\n\tconst a = 1;\n}\n"
	file := CommentOutModuleSyntax()(parseFile(t, code))

	body := file.Stmts[0].(*tsast.FuncDecl).Body
	if _, ok := body.Stmts[0].(*tsast.NotEmitted); !ok {
		t.Errorf("nested import was not commented out: %T", body.Stmts[0])
	}
	if _, ok := body.Stmts[1].(*tsast.VarDecl); !ok {
		t.Errorf("sibling statement was disturbed: %T", body.Stmts[1])
	}
}

func TestCommentOutLeavesOtherStatements(t *testing.T) {
	file := CommentOutModuleSyntax()(parseFile(t, "const a = 1;\nexport const b = 2;\n"))
	for i, stmt := range file.Stmts {
		if _, ok := stmt.(*tsast.NotEmitted); ok {
			t.Errorf("statement %d was commented out", i)
		}
	}
}

func TestPreserveIdentifierSpelling(t *testing.T) {
	code := "const tau = pi * 2;\nenum Color { Red, Blue = Red }\n"
	file := PreserveIdentifierSpelling()(parseFile(t, code))

	decl := file.Stmts[0].(*tsast.VarDecl)
	assert.True(t, decl.Name.PreserveName, "declaration names are preserved")
	ref := decl.Init.(*tsast.BinaryExpr).X.(*tsast.Ident)
	assert.True(t, ref.PreserveName, "references are preserved")

	enum := file.Stmts[1].(*tsast.EnumDecl)
	assert.False(t, enum.Members[0].Name.PreserveName, "enum members keep the default substitution")
	assert.False(t, enum.Members[1].Init.(*tsast.Ident).PreserveName, "enum member references keep the default substitution")
}

func TestEscapeNewlines(t *testing.T) {
	assert.Equal(t, `a\nb\nc`, escapeNewlines("a\nb\r\nc"))
}
