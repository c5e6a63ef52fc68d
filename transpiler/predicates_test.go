package transpiler

import (
	"testing"

	"github.com/gscript-labs/ts2gs/tsast"
	"github.com/gscript-labs/ts2gs/tsc"
)

func parseFile(t *testing.T, src string) *tsast.SourceFile {
	t.Helper()
	file, err := tsc.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return file
}

func firstStmt(t *testing.T, src string) tsast.Stmt {
	t.Helper()
	file := parseFile(t, src)
	if len(file.Stmts) == 0 {
		t.Fatalf("Parse(%q): no statements", src)
	}
	return file.Stmts[0]
}

// syntheticMarker builds the compiler-injected module marker shape.
func syntheticMarker() tsast.Stmt {
	return &tsast.ExprStmt{
		NodeBase: tsast.Synth(),
		X: &tsast.BinaryExpr{
			NodeBase: tsast.Synth(),
			Op:       "=",
			X: &tsast.PropertyAccess{
				NodeBase: tsast.Synth(),
				X:        tsast.NewIdent("exports"),
				Name:     "__esModule",
			},
			Y: &tsast.BoolLit{NodeBase: tsast.Synth(), Value: true},
		},
	}
}

func TestIsImport(t *testing.T) {
	tests := []struct {
		name string
		node tsast.Node
		want bool
	}{
		{name: "standard form", node: firstStmt(t, `import { a } from "b";`), want: true},
		{name: "aliasing form", node: firstStmt(t, `import A = B.C;`), want: true},
		{name: "variable declaration", node: firstStmt(t, `const a = 1;`), want: false},
		{name: "export from", node: firstStmt(t, `export { a } from "b";`), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isImport(tt.node); got != tt.want {
				t.Errorf("isImport() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsExportFrom(t *testing.T) {
	tests := []struct {
		name string
		node tsast.Node
		want bool
	}{
		{name: "re-export", node: firstStmt(t, `export { a } from "b";`), want: true},
		{name: "local export clause", node: firstStmt(t, `export { a };`), want: false},
		{name: "import", node: firstStmt(t, `import { a } from "b";`), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isExportFrom(tt.node); got != tt.want {
				t.Errorf("isExportFrom() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsModuleMarker(t *testing.T) {
	authored := firstStmt(t, "exports.__esModule = true;")

	tests := []struct {
		name string
		node tsast.Node
		want bool
	}{
		{name: "synthetic marker", node: syntheticMarker(), want: true},
		{name: "user-authored marker shape is kept", node: authored, want: false},
		{name: "different property", node: firstStmt(t, "exports.other = true;"), want: false},
		{name: "different receiver", node: firstStmt(t, "thing.__esModule = true;"), want: false},
		{name: "not an assignment", node: firstStmt(t, "exports.__esModule === true;"), want: false},
		{name: "unrelated statement", node: firstStmt(t, "doWork();"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isModuleMarker(tt.node); got != tt.want {
				t.Errorf("isModuleMarker() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDefaultExportAssign(t *testing.T) {
	tests := []struct {
		name string
		node tsast.Node
		want bool
	}{
		{name: "element access form", node: firstStmt(t, `exports["default"] = value_1;`), want: true},
		{name: "property access form", node: firstStmt(t, `exports.default = value_1;`), want: true},
		{name: "non-identifier right side", node: firstStmt(t, `exports["default"] = f();`), want: false},
		{name: "different key", node: firstStmt(t, `exports["other"] = value_1;`), want: false},
		{name: "different receiver", node: firstStmt(t, `thing["default"] = value_1;`), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDefaultExportAssign(tt.node); got != tt.want {
				t.Errorf("isDefaultExportAssign() = %v, want %v", got, tt.want)
			}
		})
	}
}
