package tsc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// multi-character punctuators, longest first so maximal munch wins
var punctuators = []string{
	"===", "!==", "**", "=>", "==", "!=", "<=", ">=", "&&", "||",
	"+=", "-=", "*=", "/=", "++", "--",
	"(", ")", "{", "}", "[", "]", ",", ";", ":", ".", "=", "!",
	"<", ">", "+", "-", "*", "/", "%", "?",
}

type lexer struct {
	src  string
	off  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) errorf(format string, args ...interface{}) *ParseError {
	return newParseError(l.line, l.col, format, args...)
}

func (l *lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.off >= len(l.src) {
			return
		}
		if l.src[l.off] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.off++
	}
}

func (l *lexer) skipTrivia() *ParseError {
	for l.off < len(l.src) {
		c := l.src[l.off]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance(1)
		case strings.HasPrefix(l.src[l.off:], "//"):
			for l.off < len(l.src) && l.src[l.off] != '\n' {
				l.advance(1)
			}
		case strings.HasPrefix(l.src[l.off:], "/*"):
			end := strings.Index(l.src[l.off+2:], "*/")
			if end < 0 {
				return l.errorf("unterminated block comment")
			}
			l.advance(end + 4)
		default:
			return nil
		}
	}
	return nil
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// next returns the token starting at the current offset. It returns a
// tokenEOF token at end of input.
func (l *lexer) next() (token, *ParseError) {
	if err := l.skipTrivia(); err != nil {
		return token{}, err
	}
	tok := token{start: l.off, line: l.line, col: l.col}
	if l.off >= len(l.src) {
		tok.kind = tokenEOF
		tok.end = l.off
		return tok, nil
	}

	c := l.src[l.off]
	switch {
	case c == '"' || c == '\'' || c == '`':
		return l.scanString(tok, c)
	case c >= '0' && c <= '9':
		return l.scanNumber(tok)
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.off:])
	if isIdentStart(r) {
		return l.scanIdent(tok)
	}

	for _, p := range punctuators {
		if strings.HasPrefix(l.src[l.off:], p) {
			l.advance(len(p))
			tok.kind = tokenPunct
			tok.lit = p
			tok.end = l.off
			return tok, nil
		}
	}
	return token{}, l.errorf("unexpected character %q", string(r))
}

func (l *lexer) scanString(tok token, quote byte) (token, *ParseError) {
	l.advance(1)
	inner := l.off
	for l.off < len(l.src) {
		c := l.src[l.off]
		if c == '\\' {
			l.advance(2)
			continue
		}
		if c == quote {
			tok.kind = tokenString
			tok.lit = l.src[inner:l.off]
			tok.quote = quote
			l.advance(1)
			tok.end = l.off
			return tok, nil
		}
		if c == '\n' && quote != '`' {
			return token{}, l.errorf("unterminated string literal")
		}
		l.advance(1)
	}
	return token{}, l.errorf("unterminated string literal")
}

func (l *lexer) scanNumber(tok token) (token, *ParseError) {
	start := l.off
	for l.off < len(l.src) {
		c := l.src[l.off]
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '.' || c == '_' {
			l.advance(1)
			continue
		}
		// exponent sign
		if (c == '+' || c == '-') && l.off > start {
			prev := l.src[l.off-1]
			if prev == 'e' || prev == 'E' {
				l.advance(1)
				continue
			}
		}
		break
	}
	tok.kind = tokenNumber
	tok.lit = l.src[start:l.off]
	tok.end = l.off
	return tok, nil
}

func (l *lexer) scanIdent(tok token) (token, *ParseError) {
	start := l.off
	for l.off < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.off:])
		if !isIdentPart(r) {
			break
		}
		l.advance(size)
	}
	tok.lit = l.src[start:l.off]
	tok.end = l.off
	if keywords[tok.lit] {
		tok.kind = tokenKeyword
	} else {
		tok.kind = tokenIdent
	}
	return tok, nil
}
