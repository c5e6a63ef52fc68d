package tsast

// Children returns the direct child nodes of n in source order.
// Unrecognized nodes have no children.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c == nil || isNil(c) {
			return
		}
		out = append(out, c)
	}
	switch v := n.(type) {
	case *SourceFile:
		for _, s := range v.Stmts {
			add(s)
		}
	case *ObjectLit:
		for _, p := range v.Props {
			add(p)
		}
	case *Property:
		add(v.Value)
	case *PropertyAccess:
		add(v.X)
	case *ElementAccess:
		add(v.X)
		add(v.Index)
	case *CallExpr:
		add(v.Fun)
		for _, a := range v.Args {
			add(a)
		}
	case *UnaryExpr:
		add(v.X)
	case *BinaryExpr:
		add(v.X)
		add(v.Y)
	case *ParenExpr:
		add(v.X)
	case *VarDecl:
		add(v.Name)
		add(v.Init)
	case *Param:
		add(v.Name)
	case *FuncDecl:
		add(v.Name)
		for _, p := range v.Params {
			add(p)
		}
		add(v.Body)
	case *BlockStmt:
		for _, s := range v.Stmts {
			add(s)
		}
	case *ReturnStmt:
		add(v.Result)
	case *IfStmt:
		add(v.Cond)
		add(v.Then)
		add(v.Else)
	case *ExprStmt:
		add(v.X)
	case *EnumDecl:
		add(v.Name)
		for _, m := range v.Members {
			add(m)
		}
	case *EnumMember:
		add(v.Name)
		add(v.Init)
	case *ImportDecl:
		add(v.Default)
		add(v.Namespace)
		for _, s := range v.Named {
			add(s)
		}
	case *ImportSpec:
		add(v.Name)
		add(v.Alias)
	case *ImportAlias:
		add(v.Name)
		add(v.Target)
	case *ExportDecl:
		for _, s := range v.Specs {
			add(s)
		}
	case *ExportDefault:
		add(v.X)
	}
	return out
}

// Inspect traverses the tree rooted at n in depth-first order, calling
// f for each node. If f returns false the children of that node are
// skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || isNil(n) {
		return
	}
	if !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// ResolveParents repairs the parent back-references of the whole tree
// rooted at n. Call it after any structural edit that moves nodes.
func ResolveParents(n Node) {
	if n == nil || isNil(n) {
		return
	}
	for _, c := range Children(n) {
		c.SetParent(n)
		ResolveParents(c)
	}
}

// Rewrite walks the tree bottom-up and replaces each node with the
// result of fn. A replacement is only accepted where it fits the slot:
// a statement position takes any Stmt, an expression position any
// Expr; elsewhere the original node is kept. Parent references are not
// repaired; callers run ResolveParents on the root when done.
func Rewrite(n Node, fn func(Node) Node) Node {
	if n == nil || isNil(n) {
		return n
	}
	switch v := n.(type) {
	case *SourceFile:
		for i, s := range v.Stmts {
			v.Stmts[i] = rewriteStmt(s, fn)
		}
	case *ObjectLit:
		for _, p := range v.Props {
			Rewrite(p, fn)
		}
	case *Property:
		v.Value = rewriteExpr(v.Value, fn)
	case *PropertyAccess:
		v.X = rewriteExpr(v.X, fn)
	case *ElementAccess:
		v.X = rewriteExpr(v.X, fn)
		v.Index = rewriteExpr(v.Index, fn)
	case *CallExpr:
		v.Fun = rewriteExpr(v.Fun, fn)
		for i, a := range v.Args {
			v.Args[i] = rewriteExpr(a, fn)
		}
	case *UnaryExpr:
		v.X = rewriteExpr(v.X, fn)
	case *BinaryExpr:
		v.X = rewriteExpr(v.X, fn)
		v.Y = rewriteExpr(v.Y, fn)
	case *ParenExpr:
		v.X = rewriteExpr(v.X, fn)
	case *VarDecl:
		v.Init = rewriteExpr(v.Init, fn)
	case *FuncDecl:
		if v.Body != nil {
			Rewrite(v.Body, fn)
		}
	case *BlockStmt:
		for i, s := range v.Stmts {
			v.Stmts[i] = rewriteStmt(s, fn)
		}
	case *ReturnStmt:
		v.Result = rewriteExpr(v.Result, fn)
	case *IfStmt:
		v.Cond = rewriteExpr(v.Cond, fn)
		v.Then = rewriteStmt(v.Then, fn)
		if v.Else != nil {
			v.Else = rewriteStmt(v.Else, fn)
		}
	case *ExprStmt:
		v.X = rewriteExpr(v.X, fn)
	case *EnumDecl:
		for _, m := range v.Members {
			m.Init = rewriteExpr(m.Init, fn)
		}
	case *ExportDefault:
		v.X = rewriteExpr(v.X, fn)
	}
	return fn(n)
}

func rewriteStmt(s Stmt, fn func(Node) Node) Stmt {
	if s == nil {
		return nil
	}
	if out, ok := Rewrite(s, fn).(Stmt); ok {
		return out
	}
	return s
}

func rewriteExpr(e Expr, fn func(Node) Node) Expr {
	if e == nil {
		return nil
	}
	if out, ok := Rewrite(e, fn).(Expr); ok {
		return out
	}
	return e
}

// isNil guards against typed-nil interface values produced by optional
// child fields.
func isNil(n Node) bool {
	switch v := n.(type) {
	case *Ident:
		return v == nil
	case *BlockStmt:
		return v == nil
	case *Param:
		return v == nil
	case *EnumMember:
		return v == nil
	case *ImportSpec:
		return v == nil
	case *Property:
		return v == nil
	default:
		return n == nil
	}
}
