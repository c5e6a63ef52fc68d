package tsc

import (
	"testing"
)

func lexAll(t *testing.T, src string) []token {
	t.Helper()
	lex := newLexer(src)
	var toks []token
	for {
		tok, err := lex.next()
		if err != nil {
			t.Fatalf("lexing %q: %v", src, err)
		}
		if tok.kind == tokenEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexer(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token
	}{
		{
			name: "keywords and identifiers",
			src:  "import foo from",
			want: []token{
				{kind: tokenKeyword, lit: "import"},
				{kind: tokenIdent, lit: "foo"},
				{kind: tokenKeyword, lit: "from"},
			},
		},
		{
			name: "maximal munch punctuators",
			src:  "a === b || c => d",
			want: []token{
				{kind: tokenIdent, lit: "a"},
				{kind: tokenPunct, lit: "==="},
				{kind: tokenIdent, lit: "b"},
				{kind: tokenPunct, lit: "||"},
				{kind: tokenIdent, lit: "c"},
				{kind: tokenPunct, lit: "=>"},
				{kind: tokenIdent, lit: "d"},
			},
		},
		{
			name: "string literals keep inner text",
			src:  `'single' "double" ` + "`tick`",
			want: []token{
				{kind: tokenString, lit: "single"},
				{kind: tokenString, lit: "double"},
				{kind: tokenString, lit: "tick"},
			},
		},
		{
			name: "numbers",
			src:  "1 3.141592 0x1f 1e-9",
			want: []token{
				{kind: tokenNumber, lit: "1"},
				{kind: tokenNumber, lit: "3.141592"},
				{kind: tokenNumber, lit: "0x1f"},
				{kind: tokenNumber, lit: "1e-9"},
			},
		},
		{
			name: "comments are trivia",
			src:  "a // line\n/* block */ b",
			want: []token{
				{kind: tokenIdent, lit: "a"},
				{kind: tokenIdent, lit: "b"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexAll(t, tt.src)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, want := range tt.want {
				if got[i].kind != want.kind || got[i].lit != want.lit {
					t.Errorf("token %d = (%v, %q), want (%v, %q)", i, got[i].kind, got[i].lit, want.kind, want.lit)
				}
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	src := "const pi = 3.14;"
	toks := lexAll(t, src)
	if len(toks) != 5 {
		t.Fatalf("got %d tokens, want 5", len(toks))
	}
	pi := toks[1]
	if src[pi.start:pi.end] != "pi" {
		t.Errorf("token range [%d, %d) = %q, want %q", pi.start, pi.end, src[pi.start:pi.end], "pi")
	}
	if pi.line != 1 || pi.col != 7 {
		t.Errorf("token position = %d:%d, want 1:7", pi.line, pi.col)
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "unterminated string", src: `const s = "oops`},
		{name: "newline in string", src: "const s = 'a\nb'"},
		{name: "unterminated block comment", src: "/* never closed"},
		{name: "stray character", src: "const a = #"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex := newLexer(tt.src)
			for {
				tok, err := lex.next()
				if err != nil {
					return
				}
				if tok.kind == tokenEOF {
					t.Fatalf("lexing %q: expected an error", tt.src)
				}
			}
		})
	}
}
