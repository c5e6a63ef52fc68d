package tsc

import (
	"github.com/gscript-labs/ts2gs/tsast"
)

// Parse builds a syntax tree for the supported language subset. The
// returned error is always a *ParseError.
func Parse(source string) (*tsast.SourceFile, error) {
	lex := newLexer(source)
	var toks []token
	for {
		tok, err := lex.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			break
		}
	}

	p := &parser{src: source, toks: toks}
	file := &tsast.SourceFile{Source: source}
	file.Start = 0
	file.End = len(source)
	for !p.atEOF() {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		file.Stmts = append(file.Stmts, stmt)
	}
	tsast.ResolveParents(file)
	return file, nil
}

type parser struct {
	src  string
	toks []token
	pos  int
}

func (p *parser) cur() token  { return p.toks[p.pos] }
func (p *parser) atEOF() bool { return p.cur().kind == tokenEOF }

func (p *parser) peek() token {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) advance() token {
	tok := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

// prevEnd is the end offset of the last consumed token.
func (p *parser) prevEnd() int {
	if p.pos == 0 {
		return 0
	}
	return p.toks[p.pos-1].end
}

func (p *parser) errorf(format string, args ...interface{}) *ParseError {
	tok := p.cur()
	return newParseError(tok.line, tok.col, format, args...)
}

func (p *parser) expectPunct(lit string) *ParseError {
	if !p.cur().is(tokenPunct, lit) {
		return p.errorf("expected %q, found %q", lit, p.cur().lit)
	}
	p.advance()
	return nil
}

func (p *parser) expectKeyword(lit string) *ParseError {
	if !p.cur().is(tokenKeyword, lit) {
		return p.errorf("expected %q, found %q", lit, p.cur().lit)
	}
	p.advance()
	return nil
}

func (p *parser) parseIdent() (*tsast.Ident, *ParseError) {
	tok := p.cur()
	if tok.kind != tokenIdent {
		return nil, p.errorf("expected identifier, found %q", tok.lit)
	}
	p.advance()
	return &tsast.Ident{NodeBase: tsast.NodeBase{Start: tok.start, End: tok.end}, Name: tok.lit}, nil
}

// eatSemi consumes one optional statement terminator.
func (p *parser) eatSemi() {
	if p.cur().is(tokenPunct, ";") {
		p.advance()
	}
}

func (p *parser) finish(b *tsast.NodeBase, start int) {
	b.Start = start
	b.End = p.prevEnd()
}

func (p *parser) parseStmt() (tsast.Stmt, *ParseError) {
	tok := p.cur()
	switch {
	case tok.is(tokenKeyword, "import"):
		return p.parseImport()
	case tok.is(tokenKeyword, "export"):
		return p.parseExport()
	case tok.is(tokenKeyword, "var") || tok.is(tokenKeyword, "let") || tok.is(tokenKeyword, "const"):
		return p.parseVarDecl(false)
	case tok.is(tokenKeyword, "function"):
		return p.parseFuncDecl(false)
	case tok.is(tokenKeyword, "enum"):
		return p.parseEnumDecl(false)
	case tok.is(tokenKeyword, "return"):
		return p.parseReturn()
	case tok.is(tokenKeyword, "if"):
		return p.parseIf()
	case tok.is(tokenPunct, "{"):
		return p.parseBlock()
	case tok.is(tokenPunct, ";"):
		p.advance()
		return &tsast.EmptyStmt{NodeBase: tsast.NodeBase{Start: tok.start, End: tok.end}}, nil
	}

	x, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	p.eatSemi()
	stmt := &tsast.ExprStmt{X: x}
	p.finish(&stmt.NodeBase, tok.start)
	return stmt, nil
}

func (p *parser) parseImport() (tsast.Stmt, *ParseError) {
	start := p.cur().start
	p.advance() // import

	// import "module";
	if p.cur().kind == tokenString {
		mod := p.advance().lit
		p.eatSemi()
		decl := &tsast.ImportDecl{Module: mod}
		p.finish(&decl.NodeBase, start)
		return decl, nil
	}

	// import X = Y.Z;
	if p.cur().kind == tokenIdent && p.peek().is(tokenPunct, "=") {
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		p.advance() // =
		target, perr := p.parsePostfix()
		if perr != nil {
			return nil, perr
		}
		p.eatSemi()
		alias := &tsast.ImportAlias{Name: name, Target: target}
		p.finish(&alias.NodeBase, start)
		return alias, nil
	}

	decl := &tsast.ImportDecl{}
	if p.cur().kind == tokenIdent {
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		decl.Default = name
		if p.cur().is(tokenPunct, ",") {
			p.advance()
		}
	}
	switch {
	case p.cur().is(tokenPunct, "*"):
		p.advance()
		if err := p.expectKeyword("as"); err != nil {
			return nil, err
		}
		ns, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		decl.Namespace = ns
	case p.cur().is(tokenPunct, "{"):
		specs, err := p.parseSpecList()
		if err != nil {
			return nil, err
		}
		decl.Named = specs
	}
	if err := p.expectKeyword("from"); err != nil {
		return nil, err
	}
	if p.cur().kind != tokenString {
		return nil, p.errorf("expected module specifier string, found %q", p.cur().lit)
	}
	decl.Module = p.advance().lit
	p.eatSemi()
	p.finish(&decl.NodeBase, start)
	return decl, nil
}

// parseSpecList parses `{ a, b as c, }`.
func (p *parser) parseSpecList() ([]*tsast.ImportSpec, *ParseError) {
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	var specs []*tsast.ImportSpec
	for !p.cur().is(tokenPunct, "}") {
		specStart := p.cur().start
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		spec := &tsast.ImportSpec{Name: name}
		if p.cur().is(tokenKeyword, "as") {
			p.advance()
			alias, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			spec.Alias = alias
		}
		p.finish(&spec.NodeBase, specStart)
		specs = append(specs, spec)
		if p.cur().is(tokenPunct, ",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return specs, nil
}

func (p *parser) parseExport() (tsast.Stmt, *ParseError) {
	start := p.cur().start
	p.advance() // export

	tok := p.cur()
	switch {
	case tok.is(tokenKeyword, "default"):
		p.advance()
		x, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		p.eatSemi()
		stmt := &tsast.ExportDefault{X: x}
		p.finish(&stmt.NodeBase, start)
		return stmt, nil

	case tok.is(tokenPunct, "{"):
		specs, err := p.parseSpecList()
		if err != nil {
			return nil, err
		}
		decl := &tsast.ExportDecl{Specs: specs}
		if p.cur().is(tokenKeyword, "from") {
			p.advance()
			if p.cur().kind != tokenString {
				return nil, p.errorf("expected module specifier string, found %q", p.cur().lit)
			}
			decl.From = p.advance().lit
			decl.HasFrom = true
		}
		p.eatSemi()
		p.finish(&decl.NodeBase, start)
		return decl, nil

	case tok.is(tokenKeyword, "var") || tok.is(tokenKeyword, "let") || tok.is(tokenKeyword, "const"):
		stmt, err := p.parseVarDecl(true)
		if err != nil {
			return nil, err
		}
		stmt.(*tsast.VarDecl).Start = start
		return stmt, nil

	case tok.is(tokenKeyword, "function"):
		stmt, err := p.parseFuncDecl(true)
		if err != nil {
			return nil, err
		}
		stmt.(*tsast.FuncDecl).Start = start
		return stmt, nil

	case tok.is(tokenKeyword, "enum"):
		stmt, err := p.parseEnumDecl(true)
		if err != nil {
			return nil, err
		}
		stmt.(*tsast.EnumDecl).Start = start
		return stmt, nil
	}
	return nil, p.errorf("unsupported export form starting with %q", tok.lit)
}

func (p *parser) parseVarDecl(exported bool) (tsast.Stmt, *ParseError) {
	start := p.cur().start
	keyword := p.advance().lit
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	decl := &tsast.VarDecl{Keyword: keyword, Name: name, Exported: exported}
	if p.cur().is(tokenPunct, ":") {
		p.advance()
		decl.TypeText = p.scanTypeText(func(t token) bool {
			return t.is(tokenPunct, "=") || t.is(tokenPunct, ";")
		})
	}
	if p.cur().is(tokenPunct, "=") {
		p.advance()
		init, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		decl.Init = init
	}
	p.eatSemi()
	p.finish(&decl.NodeBase, start)
	return decl, nil
}

// scanTypeText consumes an erased type annotation: every token up to
// the first stop token at bracket depth zero. The verbatim text is
// kept only for diagnostics.
func (p *parser) scanTypeText(stop func(token) bool) string {
	start := p.cur().start
	depth := 0
	for !p.atEOF() {
		tok := p.cur()
		if depth == 0 && stop(tok) {
			break
		}
		if tok.kind == tokenPunct {
			switch tok.lit {
			case "(", "[", "{", "<":
				depth++
			case ")", "]", "}", ">":
				if depth == 0 {
					// closing bracket belongs to the enclosing construct
					return p.src[start:p.prevEnd()]
				}
				depth--
			}
		}
		p.advance()
	}
	return p.src[start:p.prevEnd()]
}

func (p *parser) parseFuncDecl(exported bool) (tsast.Stmt, *ParseError) {
	start := p.cur().start
	p.advance() // function
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	decl := &tsast.FuncDecl{Name: name, Exported: exported}
	if perr := p.expectPunct("("); perr != nil {
		return nil, perr
	}
	for !p.cur().is(tokenPunct, ")") {
		paramStart := p.cur().start
		pname, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		param := &tsast.Param{Name: pname}
		if p.cur().is(tokenPunct, "?") {
			p.advance()
		}
		if p.cur().is(tokenPunct, ":") {
			p.advance()
			param.TypeText = p.scanTypeText(func(t token) bool {
				return t.is(tokenPunct, ",") || t.is(tokenPunct, ")")
			})
		}
		p.finish(&param.NodeBase, paramStart)
		decl.Params = append(decl.Params, param)
		if p.cur().is(tokenPunct, ",") {
			p.advance()
		}
	}
	p.advance() // )
	if p.cur().is(tokenPunct, ":") {
		p.advance()
		decl.ResultText = p.scanTypeText(func(t token) bool {
			return t.is(tokenPunct, "{") || t.is(tokenPunct, ";")
		})
	}
	body, perr := p.parseBlock()
	if perr != nil {
		return nil, perr
	}
	decl.Body = body.(*tsast.BlockStmt)
	p.finish(&decl.NodeBase, start)
	return decl, nil
}

func (p *parser) parseEnumDecl(exported bool) (tsast.Stmt, *ParseError) {
	start := p.cur().start
	p.advance() // enum
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	decl := &tsast.EnumDecl{Name: name, Exported: exported}
	if perr := p.expectPunct("{"); perr != nil {
		return nil, perr
	}
	for !p.cur().is(tokenPunct, "}") {
		memberStart := p.cur().start
		mname, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		member := &tsast.EnumMember{Name: mname}
		if p.cur().is(tokenPunct, "=") {
			p.advance()
			init, err := p.parseAssign()
			if err != nil {
				return nil, err
			}
			member.Init = init
		}
		p.finish(&member.NodeBase, memberStart)
		decl.Members = append(decl.Members, member)
		if p.cur().is(tokenPunct, ",") {
			p.advance()
			continue
		}
		break
	}
	if perr := p.expectPunct("}"); perr != nil {
		return nil, perr
	}
	p.finish(&decl.NodeBase, start)
	return decl, nil
}

func (p *parser) parseReturn() (tsast.Stmt, *ParseError) {
	start := p.cur().start
	p.advance() // return
	stmt := &tsast.ReturnStmt{}
	if !p.cur().is(tokenPunct, ";") && !p.cur().is(tokenPunct, "}") && !p.atEOF() {
		x, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		stmt.Result = x
	}
	p.eatSemi()
	p.finish(&stmt.NodeBase, start)
	return stmt, nil
}

func (p *parser) parseIf() (tsast.Stmt, *ParseError) {
	start := p.cur().start
	p.advance() // if
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	cond, perr := p.parseAssign()
	if perr != nil {
		return nil, perr
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	then, perr := p.parseStmt()
	if perr != nil {
		return nil, perr
	}
	stmt := &tsast.IfStmt{Cond: cond, Then: then}
	if p.cur().is(tokenKeyword, "else") {
		p.advance()
		els, perr := p.parseStmt()
		if perr != nil {
			return nil, perr
		}
		stmt.Else = els
	}
	p.finish(&stmt.NodeBase, start)
	return stmt, nil
}

func (p *parser) parseBlock() (tsast.Stmt, *ParseError) {
	start := p.cur().start
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	block := &tsast.BlockStmt{}
	for !p.cur().is(tokenPunct, "}") {
		if p.atEOF() {
			return nil, p.errorf("unterminated block")
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	p.advance() // }
	p.finish(&block.NodeBase, start)
	return block, nil
}

// expression parsing, lowest precedence first

var binaryLevels = [][]string{
	{"||"},
	{"&&"},
	{"===", "!==", "==", "!="},
	{"<", "<=", ">", ">="},
	{"+", "-"},
	{"*", "/", "%", "**"},
}

func (p *parser) parseAssign() (tsast.Expr, *ParseError) {
	left, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	tok := p.cur()
	if tok.kind == tokenPunct {
		switch tok.lit {
		case "=", "+=", "-=", "*=", "/=":
			p.advance()
			right, err := p.parseAssign()
			if err != nil {
				return nil, err
			}
			bin := &tsast.BinaryExpr{Op: tok.lit, X: left, Y: right}
			s, _ := left.Pos()
			p.finish(&bin.NodeBase, s)
			return bin, nil
		}
	}
	return left, nil
}

func (p *parser) parseBinary(level int) (tsast.Expr, *ParseError) {
	if level >= len(binaryLevels) {
		return p.parseUnary()
	}
	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		tok := p.cur()
		matched := false
		for _, op := range binaryLevels[level] {
			if tok.is(tokenPunct, op) {
				matched = true
				break
			}
		}
		if !matched {
			return left, nil
		}
		p.advance()
		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		bin := &tsast.BinaryExpr{Op: tok.lit, X: left, Y: right}
		s, _ := left.Pos()
		p.finish(&bin.NodeBase, s)
		left = bin
	}
}

func (p *parser) parseUnary() (tsast.Expr, *ParseError) {
	tok := p.cur()
	if tok.is(tokenPunct, "!") || tok.is(tokenPunct, "-") || tok.is(tokenPunct, "+") {
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		u := &tsast.UnaryExpr{Op: tok.lit, X: x}
		p.finish(&u.NodeBase, tok.start)
		return u, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (tsast.Expr, *ParseError) {
	start := p.cur().start
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.cur()
		switch {
		case tok.is(tokenPunct, "."):
			p.advance()
			name := p.cur()
			if name.kind != tokenIdent && name.kind != tokenKeyword {
				return nil, p.errorf("expected property name, found %q", name.lit)
			}
			p.advance()
			access := &tsast.PropertyAccess{X: x, Name: name.lit}
			p.finish(&access.NodeBase, start)
			x = access
		case tok.is(tokenPunct, "["):
			p.advance()
			index, err := p.parseAssign()
			if err != nil {
				return nil, err
			}
			if perr := p.expectPunct("]"); perr != nil {
				return nil, perr
			}
			access := &tsast.ElementAccess{X: x, Index: index}
			p.finish(&access.NodeBase, start)
			x = access
		case tok.is(tokenPunct, "("):
			p.advance()
			call := &tsast.CallExpr{Fun: x}
			for !p.cur().is(tokenPunct, ")") {
				arg, err := p.parseAssign()
				if err != nil {
					return nil, err
				}
				call.Args = append(call.Args, arg)
				if p.cur().is(tokenPunct, ",") {
					p.advance()
				}
			}
			p.advance() // )
			p.finish(&call.NodeBase, start)
			x = call
		default:
			return x, nil
		}
	}
}

func (p *parser) parsePrimary() (tsast.Expr, *ParseError) {
	tok := p.cur()
	switch {
	case tok.kind == tokenIdent:
		return p.parseIdent()
	case tok.kind == tokenNumber:
		p.advance()
		return &tsast.NumberLit{NodeBase: tsast.NodeBase{Start: tok.start, End: tok.end}, Value: tok.lit}, nil
	case tok.kind == tokenString:
		p.advance()
		return &tsast.StringLit{NodeBase: tsast.NodeBase{Start: tok.start, End: tok.end}, Value: tok.lit}, nil
	case tok.is(tokenKeyword, "true"), tok.is(tokenKeyword, "false"):
		p.advance()
		return &tsast.BoolLit{NodeBase: tsast.NodeBase{Start: tok.start, End: tok.end}, Value: tok.lit == "true"}, nil
	case tok.is(tokenPunct, "("):
		p.advance()
		x, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		if perr := p.expectPunct(")"); perr != nil {
			return nil, perr
		}
		paren := &tsast.ParenExpr{X: x}
		p.finish(&paren.NodeBase, tok.start)
		return paren, nil
	case tok.is(tokenPunct, "{"):
		return p.parseObjectLit()
	}
	return nil, p.errorf("unexpected token %q", tok.lit)
}

func (p *parser) parseObjectLit() (tsast.Expr, *ParseError) {
	start := p.cur().start
	p.advance() // {
	lit := &tsast.ObjectLit{}
	for !p.cur().is(tokenPunct, "}") {
		propStart := p.cur().start
		key := p.cur()
		if key.kind != tokenIdent && key.kind != tokenString && key.kind != tokenKeyword {
			return nil, p.errorf("expected property key, found %q", key.lit)
		}
		p.advance()
		prop := &tsast.Property{Name: key.lit}
		if p.cur().is(tokenPunct, ":") {
			p.advance()
			value, err := p.parseAssign()
			if err != nil {
				return nil, err
			}
			prop.Value = value
		} else {
			// shorthand property
			prop.Value = &tsast.Ident{NodeBase: tsast.NodeBase{Start: key.start, End: key.end}, Name: key.lit}
		}
		p.finish(&prop.NodeBase, propStart)
		lit.Props = append(lit.Props, prop)
		if p.cur().is(tokenPunct, ",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	p.finish(&lit.NodeBase, start)
	return lit, nil
}
