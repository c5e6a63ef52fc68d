package tsc

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenKeyword
	tokenNumber
	tokenString
	tokenPunct
)

type token struct {
	kind  tokenKind
	lit   string // identifier/keyword name, punctuator, number text, or string inner text
	quote byte   // original quote character for tokenString
	start int
	end   int
	line  int
	col   int
}

var keywords = map[string]bool{
	"import":   true,
	"export":   true,
	"from":     true,
	"as":       true,
	"default":  true,
	"var":      true,
	"let":      true,
	"const":    true,
	"function": true,
	"return":   true,
	"if":       true,
	"else":     true,
	"enum":     true,
	"true":     true,
	"false":    true,
}

func (t token) is(kind tokenKind, lit string) bool {
	return t.kind == kind && t.lit == lit
}
