package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/routelab/dtab/pkg/errors"
	"github.com/routelab/dtab/pkg/path"
)

// lexer walks dtab text rune by rune, tracking line and column for
// diagnostics. Comments run from '#' to end of line; '#' only starts a
// comment between tokens, since inside a path it is an ordinary label
// character.
type lexer struct {
	input string
	pos   int
	line  int
	col   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input, line: 1, col: 1}
}

func (l *lexer) peek() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r, true
}

func (l *lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

// next returns the next token, skipping whitespace and comments.
func (l *lexer) next() (token, error) {
	for {
		r, ok := l.peek()
		if !ok {
			return token{typ: tokenEOF, line: l.line, col: l.col}, nil
		}
		switch r {
		case ' ', '\t', '\r', '\n':
			l.advance()
			continue
		case '#':
			for {
				r, ok := l.peek()
				if !ok || r == '\n' {
					break
				}
				l.advance()
			}
			continue
		}
		break
	}

	line, col := l.line, l.col
	r, _ := l.peek()

	switch r {
	case ';':
		l.advance()
		return token{typ: tokenSemi, text: ";", line: line, col: col}, nil
	case '&':
		l.advance()
		return token{typ: tokenAmp, text: "&", line: line, col: col}, nil
	case '|':
		l.advance()
		return token{typ: tokenPipe, text: "|", line: line, col: col}, nil
	case '*':
		l.advance()
		return token{typ: tokenStar, text: "*", line: line, col: col}, nil
	case '~':
		l.advance()
		return token{typ: tokenNeg, text: "~", line: line, col: col}, nil
	case '!':
		l.advance()
		return token{typ: tokenBang, text: "!", line: line, col: col}, nil
	case '$':
		l.advance()
		return token{typ: tokenDollar, text: "$", line: line, col: col}, nil
	case '=':
		l.advance()
		if r, ok := l.peek(); ok && r == '>' {
			l.advance()
			return token{typ: tokenArrow, text: "=>", line: line, col: col}, nil
		}
		return token{}, errors.Newf(errors.ErrParseSyntax,
			"expected \"=>\" at line %d, column %d", line, col).
			WithDetail("line", line).WithDetail("column", col)
	case '/':
		return l.lexPath(line, col), nil
	}

	if r >= '0' && r <= '9' || r == '.' {
		return l.lexNumber(line, col)
	}

	return token{}, errors.Newf(errors.ErrParseSyntax,
		"unexpected character %q at line %d, column %d", r, line, col).
		WithDetail("line", line).WithDetail("column", col)
}

// lexPath consumes a slash-led path verbatim: slashes, label characters,
// segment wildcards, and backslash escapes. Non-ASCII runes are consumed
// too, so that prefix validation reports them as NonAscii with a segment
// position instead of the lexer rejecting them blind. Segment-level
// validation is the prefix parser's job, not the lexer's.
func (l *lexer) lexPath(line, col int) token {
	start := l.pos
	for {
		r, ok := l.peek()
		if !ok {
			break
		}
		if r == '/' || r == '*' || r == '\\' || r > unicode.MaxASCII || path.IsLabelRune(r) {
			l.advance()
			continue
		}
		break
	}
	return token{typ: tokenPath, text: l.input[start:l.pos], line: line, col: col}
}

// lexNumber consumes a weight literal: digits with an optional decimal
// point on either side.
func (l *lexer) lexNumber(line, col int) (token, error) {
	start := l.pos
	sawDot := false
	for {
		r, ok := l.peek()
		if !ok {
			break
		}
		if r >= '0' && r <= '9' {
			l.advance()
			continue
		}
		if r == '.' && !sawDot {
			sawDot = true
			l.advance()
			continue
		}
		break
	}
	text := l.input[start:l.pos]
	if text == "." {
		return token{}, errors.Newf(errors.ErrParseSyntax,
			"malformed number at line %d, column %d", line, col).
			WithDetail("line", line).WithDetail("column", col)
	}
	return token{typ: tokenNumber, text: text, line: line, col: col}, nil
}
