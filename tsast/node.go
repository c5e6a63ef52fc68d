// Package tsast defines the syntax tree shared by the compile
// collaborator (package tsc) and the transpiler pipeline.
//
// Nodes carry a kind tag and a [Start, End) byte range into the source
// text they were parsed from. Nodes synthesized by the compiler rather
// than authored by the user carry SentinelPos for both ends of the
// range.
package tsast

// SentinelPos marks a position that does not exist in the source text.
// A node whose entire range is SentinelPos was synthesized during
// compilation.
const SentinelPos = -1

type Kind int

const (
	KindUnknown Kind = iota
	KindSourceFile
	KindIdent
	KindNumberLit
	KindStringLit
	KindBoolLit
	KindObjectLit
	KindProperty
	KindPropertyAccess
	KindElementAccess
	KindCall
	KindUnary
	KindBinary
	KindParen
	KindVarDecl
	KindParam
	KindFuncDecl
	KindBlock
	KindReturn
	KindIf
	KindExprStmt
	KindEmptyStmt
	KindEnumDecl
	KindEnumMember
	KindImportDecl
	KindImportAlias
	KindExportDecl
	KindExportDefault
	KindNotEmitted
)

// Node is the interface implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	Pos() (start, end int)
	Parent() Node
	SetParent(Node)
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// NodeBase carries the position range and the parent back-reference.
// The parent pointer is informational only; it is never owned and is
// repaired with ResolveParents after structural edits.
type NodeBase struct {
	Start, End int
	parent     Node
}

func (b *NodeBase) Pos() (int, int)  { return b.Start, b.End }
func (b *NodeBase) Parent() Node     { return b.parent }
func (b *NodeBase) SetParent(p Node) { b.parent = p }

// Synthetic reports whether the node range is the sentinel range, i.e.
// the node was injected during compilation rather than parsed.
func (b *NodeBase) Synthetic() bool {
	return b.Start == SentinelPos && b.End == SentinelPos
}

// Synth returns a NodeBase with the sentinel range, for nodes built
// during lowering.
func Synth() NodeBase {
	return NodeBase{Start: SentinelPos, End: SentinelPos}
}

// NewIdent returns a synthetic identifier with preserved spelling,
// for use in compiler- and pipeline-generated statements.
func NewIdent(name string) *Ident {
	return &Ident{NodeBase: Synth(), Name: name, PreserveName: true}
}

// SourceFile is the root node. It retains the source text so that
// transforms can recover the verbatim spelling of any node.
type SourceFile struct {
	NodeBase
	Source string
	Stmts  []Stmt
}

func (f *SourceFile) Kind() Kind { return KindSourceFile }

// Text returns the verbatim source text of n, or "" for synthetic
// nodes and ranges that fall outside the file.
func (f *SourceFile) Text(n Node) string {
	start, end := n.Pos()
	if start < 0 || end > len(f.Source) || start > end {
		return ""
	}
	return f.Source[start:end]
}

// Ident is a bare identifier reference or declaration name.
// PreserveName tells the emitter to keep the spelling verbatim instead
// of applying its default substitution.
type Ident struct {
	NodeBase
	Name         string
	PreserveName bool
}

func (n *Ident) Kind() Kind { return KindIdent }
func (n *Ident) exprNode()  {}

type NumberLit struct {
	NodeBase
	Value string
}

func (n *NumberLit) Kind() Kind { return KindNumberLit }
func (n *NumberLit) exprNode()  {}

type StringLit struct {
	NodeBase
	Value string
}

func (n *StringLit) Kind() Kind { return KindStringLit }
func (n *StringLit) exprNode()  {}

type BoolLit struct {
	NodeBase
	Value bool
}

func (n *BoolLit) Kind() Kind { return KindBoolLit }
func (n *BoolLit) exprNode()  {}

type Property struct {
	NodeBase
	Name  string
	Value Expr
}

func (n *Property) Kind() Kind { return KindProperty }

type ObjectLit struct {
	NodeBase
	Props []*Property
}

func (n *ObjectLit) Kind() Kind { return KindObjectLit }
func (n *ObjectLit) exprNode()  {}

// PropertyAccess is x.Name. The property name is a plain string, not
// an Ident, so identifier passes never see member names.
type PropertyAccess struct {
	NodeBase
	X    Expr
	Name string
}

func (n *PropertyAccess) Kind() Kind { return KindPropertyAccess }
func (n *PropertyAccess) exprNode()  {}

// ElementAccess is x[Index].
type ElementAccess struct {
	NodeBase
	X     Expr
	Index Expr
}

func (n *ElementAccess) Kind() Kind { return KindElementAccess }
func (n *ElementAccess) exprNode()  {}

type CallExpr struct {
	NodeBase
	Fun  Expr
	Args []Expr
}

func (n *CallExpr) Kind() Kind { return KindCall }
func (n *CallExpr) exprNode()  {}

type UnaryExpr struct {
	NodeBase
	Op string
	X  Expr
}

func (n *UnaryExpr) Kind() Kind { return KindUnary }
func (n *UnaryExpr) exprNode()  {}

type BinaryExpr struct {
	NodeBase
	Op   string
	X, Y Expr
}

func (n *BinaryExpr) Kind() Kind { return KindBinary }
func (n *BinaryExpr) exprNode()  {}

type ParenExpr struct {
	NodeBase
	X Expr
}

func (n *ParenExpr) Kind() Kind { return KindParen }
func (n *ParenExpr) exprNode()  {}

// VarDecl is a single-name var/let/const declaration. The type
// annotation is kept as raw text; it is erased on emission.
type VarDecl struct {
	NodeBase
	Keyword  string // "var", "let" or "const"
	Name     *Ident
	TypeText string
	Init     Expr
	Exported bool
}

func (n *VarDecl) Kind() Kind { return KindVarDecl }
func (n *VarDecl) stmtNode()  {}

type Param struct {
	NodeBase
	Name     *Ident
	TypeText string
}

func (n *Param) Kind() Kind { return KindParam }

type FuncDecl struct {
	NodeBase
	Name       *Ident
	Params     []*Param
	ResultText string
	Body       *BlockStmt
	Exported   bool
}

func (n *FuncDecl) Kind() Kind { return KindFuncDecl }
func (n *FuncDecl) stmtNode()  {}

type BlockStmt struct {
	NodeBase
	Stmts []Stmt
}

func (n *BlockStmt) Kind() Kind { return KindBlock }
func (n *BlockStmt) stmtNode()  {}

type ReturnStmt struct {
	NodeBase
	Result Expr // may be nil
}

func (n *ReturnStmt) Kind() Kind { return KindReturn }
func (n *ReturnStmt) stmtNode()  {}

type IfStmt struct {
	NodeBase
	Cond Expr
	Then Stmt
	Else Stmt // may be nil
}

func (n *IfStmt) Kind() Kind { return KindIf }
func (n *IfStmt) stmtNode()  {}

type ExprStmt struct {
	NodeBase
	X Expr
}

func (n *ExprStmt) Kind() Kind { return KindExprStmt }
func (n *ExprStmt) stmtNode()  {}

type EmptyStmt struct {
	NodeBase
}

func (n *EmptyStmt) Kind() Kind { return KindEmptyStmt }
func (n *EmptyStmt) stmtNode()  {}

type EnumMember struct {
	NodeBase
	Name *Ident
	Init Expr // may be nil
}

func (n *EnumMember) Kind() Kind { return KindEnumMember }

type EnumDecl struct {
	NodeBase
	Name     *Ident
	Members  []*EnumMember
	Exported bool
}

func (n *EnumDecl) Kind() Kind { return KindEnumDecl }
func (n *EnumDecl) stmtNode()  {}

// ImportSpec is one name inside an import or export clause,
// optionally aliased.
type ImportSpec struct {
	NodeBase
	Name  *Ident
	Alias *Ident // may be nil
}

func (n *ImportSpec) Kind() Kind { return KindUnknown }

// ImportDecl is the standard "import ... from ..." form. At most one
// of Default, Namespace or Named is populated per clause position.
type ImportDecl struct {
	NodeBase
	Default   *Ident // import d from "m"
	Namespace *Ident // import * as ns from "m"
	Named     []*ImportSpec
	Module    string
}

func (n *ImportDecl) Kind() Kind { return KindImportDecl }
func (n *ImportDecl) stmtNode()  {}

// ImportAlias is the legacy aliasing form "import X = Y.Z".
type ImportAlias struct {
	NodeBase
	Name   *Ident
	Target Expr
}

func (n *ImportAlias) Kind() Kind { return KindImportAlias }
func (n *ImportAlias) stmtNode()  {}

// ExportDecl is "export { ... }", with or without a trailing
// `from "module"` clause.
type ExportDecl struct {
	NodeBase
	Specs   []*ImportSpec
	From    string
	HasFrom bool
}

func (n *ExportDecl) Kind() Kind { return KindExportDecl }
func (n *ExportDecl) stmtNode()  {}

// ExportDefault is "export default <expr>".
type ExportDefault struct {
	NodeBase
	X Expr
}

func (n *ExportDefault) Kind() Kind { return KindExportDefault }
func (n *ExportDefault) stmtNode()  {}

// NotEmitted is a placeholder that produces no output. When Comment is
// non-empty the emitter prints it as a single line comment in the
// statement's place.
type NotEmitted struct {
	NodeBase
	Comment string
}

func (n *NotEmitted) Kind() Kind { return KindNotEmitted }
func (n *NotEmitted) stmtNode()  {}
