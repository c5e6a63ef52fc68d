package tsc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gscript-labs/ts2gs/tsast"
)

type printer struct {
	buf        strings.Builder
	file       *tsast.SourceFile
	indentUnit string
	exported   map[string]bool
}

func printFile(file *tsast.SourceFile, indentUnit string) string {
	p := &printer{file: file, indentUnit: indentUnit, exported: exportedNames(file)}
	for _, s := range file.Stmts {
		p.stmt(s, 0)
	}
	return p.buf.String()
}

// exportedNames collects module bindings declared with an export
// modifier. References to them are respelled to `exports.<name>` by
// the default identifier substitution.
func exportedNames(file *tsast.SourceFile) map[string]bool {
	names := map[string]bool{}
	for _, s := range file.Stmts {
		switch v := s.(type) {
		case *tsast.VarDecl:
			if v.Exported {
				names[v.Name.Name] = true
			}
		case *tsast.FuncDecl:
			if v.Exported {
				names[v.Name.Name] = true
			}
		case *tsast.EnumDecl:
			if v.Exported {
				names[v.Name.Name] = true
			}
		}
	}
	return names
}

func (p *printer) indent(depth int) {
	for i := 0; i < depth; i++ {
		p.buf.WriteString(p.indentUnit)
	}
}

func (p *printer) line(depth int, text string) {
	p.indent(depth)
	p.buf.WriteString(text)
	p.buf.WriteString("\n")
}

func (p *printer) stmt(s tsast.Stmt, depth int) {
	switch v := s.(type) {
	case *tsast.NotEmitted:
		if v.Comment != "" {
			p.line(depth, "// "+v.Comment)
		}

	case *tsast.VarDecl:
		text := "var " + v.Name.Name
		if v.Init != nil {
			text += " = " + p.expr(v.Init)
		}
		p.line(depth, text+";")

	case *tsast.FuncDecl:
		params := make([]string, len(v.Params))
		for i, param := range v.Params {
			params[i] = param.Name.Name
		}
		p.line(depth, "function "+v.Name.Name+"("+strings.Join(params, ", ")+") {")
		if v.Body != nil {
			for _, inner := range v.Body.Stmts {
				p.stmt(inner, depth+1)
			}
		}
		p.line(depth, "}")

	case *tsast.EnumDecl:
		p.enumDecl(v, depth)

	case *tsast.ExprStmt:
		p.line(depth, p.expr(v.X)+";")

	case *tsast.ReturnStmt:
		if v.Result != nil {
			p.line(depth, "return "+p.expr(v.Result)+";")
		} else {
			p.line(depth, "return;")
		}

	case *tsast.IfStmt:
		p.ifStmt(v, depth)

	case *tsast.BlockStmt:
		p.line(depth, "{")
		for _, inner := range v.Stmts {
			p.stmt(inner, depth+1)
		}
		p.line(depth, "}")

	case *tsast.EmptyStmt:
		p.line(depth, ";")

	default:
		// module syntax that survived to emission is printed verbatim
		if text := p.file.Text(s); text != "" {
			for _, l := range strings.Split(text, "\n") {
				p.line(depth, strings.TrimSpace(l))
			}
		}
	}
}

func (p *printer) ifStmt(v *tsast.IfStmt, depth int) {
	p.indent(depth)
	p.buf.WriteString("if (" + p.expr(v.Cond) + ")")
	p.branch(v.Then, depth)
	if v.Else == nil {
		p.buf.WriteString("\n")
		return
	}
	p.buf.WriteString(" else")
	if elseIf, ok := v.Else.(*tsast.IfStmt); ok {
		p.buf.WriteString(" ")
		p.ifStmt(elseIf, 0) // already indented by the surrounding line
		return
	}
	p.branch(v.Else, depth)
	p.buf.WriteString("\n")
}

// branch prints one arm of an if statement inline when it is a block,
// or on its own indented line otherwise. It leaves no trailing newline
// so an else clause can follow on the same line.
func (p *printer) branch(s tsast.Stmt, depth int) {
	if block, ok := s.(*tsast.BlockStmt); ok {
		p.buf.WriteString(" {\n")
		for _, inner := range block.Stmts {
			p.stmt(inner, depth+1)
		}
		p.indent(depth)
		p.buf.WriteString("}")
		return
	}
	p.buf.WriteString("\n")
	nested := printer{file: p.file, indentUnit: p.indentUnit, exported: p.exported}
	nested.stmt(s, depth+1)
	p.buf.WriteString(strings.TrimRight(nested.buf.String(), "\n"))
}

func (p *printer) enumDecl(v *tsast.EnumDecl, depth int) {
	name := v.Name.Name
	p.line(depth, "var "+name+";")
	p.line(depth, "(function ("+name+") {")
	next := 0
	for _, m := range v.Members {
		key := quoteString(m.Name.Name)
		switch init := m.Init.(type) {
		case nil:
			value := strconv.Itoa(next)
			next++
			p.line(depth+1, fmt.Sprintf("%s[%s[%s] = %s] = %s;", name, name, key, value, key))
		case *tsast.StringLit:
			// string-valued members get no reverse mapping
			p.line(depth+1, fmt.Sprintf("%s[%s] = %s;", name, key, p.expr(init)))
		case *tsast.NumberLit:
			if n, err := strconv.Atoi(init.Value); err == nil {
				next = n + 1
			}
			p.line(depth+1, fmt.Sprintf("%s[%s[%s] = %s] = %s;", name, name, key, init.Value, key))
		default:
			next++
			p.line(depth+1, fmt.Sprintf("%s[%s[%s] = %s] = %s;", name, name, key, p.expr(init), key))
		}
	}
	p.line(depth, "})("+name+" || ("+name+" = {}));")
}

func (p *printer) expr(e tsast.Expr) string {
	switch v := e.(type) {
	case *tsast.Ident:
		if !v.PreserveName && p.exported[v.Name] {
			return "exports." + v.Name
		}
		return v.Name
	case *tsast.NumberLit:
		return v.Value
	case *tsast.StringLit:
		return quoteString(v.Value)
	case *tsast.BoolLit:
		if v.Value {
			return "true"
		}
		return "false"
	case *tsast.ObjectLit:
		if len(v.Props) == 0 {
			return "{}"
		}
		props := make([]string, len(v.Props))
		for i, prop := range v.Props {
			key := prop.Name
			if !identLike(key) {
				key = quoteString(key)
			}
			props[i] = key + ": " + p.expr(prop.Value)
		}
		return "{ " + strings.Join(props, ", ") + " }"
	case *tsast.PropertyAccess:
		return p.expr(v.X) + "." + v.Name
	case *tsast.ElementAccess:
		return p.expr(v.X) + "[" + p.expr(v.Index) + "]"
	case *tsast.CallExpr:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = p.expr(a)
		}
		return p.expr(v.Fun) + "(" + strings.Join(args, ", ") + ")"
	case *tsast.UnaryExpr:
		return v.Op + p.expr(v.X)
	case *tsast.BinaryExpr:
		return p.expr(v.X) + " " + v.Op + " " + p.expr(v.Y)
	case *tsast.ParenExpr:
		return "(" + p.expr(v.X) + ")"
	}
	return ""
}

// quoteString prints a double-quoted string literal, escaping bare
// double quotes. Escape sequences already present in the source are
// kept verbatim.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteByte(c)
			if i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			}
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func identLike(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(i > 0 && r >= '0' && r <= '9') {
			continue
		}
		return false
	}
	return true
}
