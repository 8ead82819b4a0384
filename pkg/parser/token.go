package parser

import "fmt"

// tokenType identifies a lexical token in dtab text.
type tokenType int

const (
	tokenEOF tokenType = iota
	tokenPath          // a slash-led path, kept verbatim
	tokenNumber        // a weight literal
	tokenArrow         // =>
	tokenSemi          // ;
	tokenAmp           // &
	tokenPipe          // |
	tokenStar          // *
	tokenNeg           // ~
	tokenBang          // !
	tokenDollar        // $
)

// token is one lexical unit with its position (1-based line and column of
// its first character).
type token struct {
	typ  tokenType
	text string
	line int
	col  int
}

// describe renders a token for error messages.
func (t token) describe() string {
	switch t.typ {
	case tokenEOF:
		return "end of input"
	case tokenPath:
		return fmt.Sprintf("path %q", t.text)
	case tokenNumber:
		return fmt.Sprintf("number %q", t.text)
	default:
		return fmt.Sprintf("%q", t.text)
	}
}
