// Package parser reads dtab text into the value types of pkg/dtab,
// pkg/path, and pkg/nametree. It implements the canonical grammar:
//
//	dtab     := (dentry)*
//	dentry   := prefix "=>" tree ";"
//	tree     := alt
//	alt      := union ("|" union)*
//	union    := weighted ("&" weighted)*
//	weighted := [number "*"] atom
//	atom     := path | "~" | "!" | "$"
//
// Whitespace between tokens is insignificant and "#" starts a comment that
// runs to end of line. Alternation and union chains associate to the left;
// an n-way "&" chain folds into nested binary unions, the accumulated left
// union taking the default weight exactly as chained And calls would.
//
// A weight is only legal on an operand of "&": the algebra has no home for
// a weighted tree outside a union, so a dangling weight is a syntax error.
package parser

import (
	"strconv"

	"github.com/routelab/dtab/pkg/dtab"
	"github.com/routelab/dtab/pkg/errors"
	"github.com/routelab/dtab/pkg/logging"
	"github.com/routelab/dtab/pkg/nametree"
	"github.com/routelab/dtab/pkg/path"
)

var log = logging.GetLogger("parser")

type parser struct {
	lex *lexer
	tok token // one-token lookahead
}

func newParser(input string) (*parser, error) {
	p := &parser{lex: newLexer(input)}
	if err := p.bump(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) bump() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) unexpected(want string) error {
	return errors.Newf(errors.ErrParseSyntax,
		"expected %s, found %s at line %d, column %d",
		want, p.tok.describe(), p.tok.line, p.tok.col).
		WithDetail("line", p.tok.line).
		WithDetail("column", p.tok.col)
}

// ParseDtab parses zero or more dentries into a dtab, preserving their
// order.
func ParseDtab(input string) (dtab.Dtab, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, err
	}
	var entries []dtab.Dentry
	for p.tok.typ != tokenEOF {
		entry, err := p.parseDentry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	log.Debug().Int("entries", len(entries)).Msg("parsed dtab")
	return dtab.New(entries...), nil
}

// ParseDentry parses exactly one "prefix => tree;" rule.
func ParseDentry(input string) (dtab.Dentry, error) {
	p, err := newParser(input)
	if err != nil {
		return dtab.Dentry{}, err
	}
	entry, err := p.parseDentry()
	if err != nil {
		return dtab.Dentry{}, err
	}
	if p.tok.typ != tokenEOF {
		return dtab.Dentry{}, p.unexpected("end of input")
	}
	return entry, nil
}

// ParseTree parses a bare name-tree expression with no trailing ";".
func ParseTree(input string) (nametree.NameTree[string], error) {
	p, err := newParser(input)
	if err != nil {
		return nametree.NameTree[string]{}, err
	}
	tree, err := p.parseTree()
	if err != nil {
		return nametree.NameTree[string]{}, err
	}
	if p.tok.typ != tokenEOF {
		return nametree.NameTree[string]{}, p.unexpected("end of input")
	}
	return tree, nil
}

func (p *parser) parseDentry() (dtab.Dentry, error) {
	var prefix path.Prefix

	switch p.tok.typ {
	case tokenPath:
		parsed, err := path.ParsePrefix(p.tok.text)
		if err != nil {
			code := errors.ErrInvalidCharacter
			if labelErr, ok := err.(*path.LabelError); ok && labelErr.Kind == path.NonAscii {
				code = errors.ErrNonAscii
			}
			return dtab.Dentry{}, errors.Wrapf(err, code,
				"invalid prefix %q at line %d, column %d",
				p.tok.text, p.tok.line, p.tok.col).
				WithDetail("line", p.tok.line).
				WithDetail("column", p.tok.col)
		}
		prefix = parsed
		if err := p.bump(); err != nil {
			return dtab.Dentry{}, err
		}
	case tokenArrow:
		// A rule for the degenerate empty prefix: " => tree;".
	default:
		return dtab.Dentry{}, p.unexpected("prefix")
	}

	if p.tok.typ != tokenArrow {
		return dtab.Dentry{}, p.unexpected(`"=>"`)
	}
	if err := p.bump(); err != nil {
		return dtab.Dentry{}, err
	}

	tree, err := p.parseTree()
	if err != nil {
		return dtab.Dentry{}, err
	}

	if p.tok.typ != tokenSemi {
		return dtab.Dentry{}, p.unexpected(`";"`)
	}
	if err := p.bump(); err != nil {
		return dtab.Dentry{}, err
	}

	return dtab.NewDentry(prefix, tree), nil
}

func (p *parser) parseTree() (nametree.NameTree[string], error) {
	acc, err := p.parseUnion()
	if err != nil {
		return nametree.NameTree[string]{}, err
	}
	for p.tok.typ == tokenPipe {
		if err := p.bump(); err != nil {
			return nametree.NameTree[string]{}, err
		}
		right, err := p.parseUnion()
		if err != nil {
			return nametree.NameTree[string]{}, err
		}
		acc = nametree.Alt(acc, right)
	}
	return acc, nil
}

// operand is a parsed union operand with its (possibly implicit) weight.
type operand struct {
	tree      nametree.NameTree[string]
	weight    float64
	hasWeight bool
	line, col int // position of the weight token, when explicit
}

func (o operand) weighted() nametree.Weighted[string] {
	if o.hasWeight {
		return nametree.Weigh(o.weight, o.tree)
	}
	return nametree.Weigh(nametree.DefaultWeight, o.tree)
}

func (p *parser) parseUnion() (nametree.NameTree[string], error) {
	first, err := p.parseWeighted()
	if err != nil {
		return nametree.NameTree[string]{}, err
	}
	operands := []operand{first}
	for p.tok.typ == tokenAmp {
		if err := p.bump(); err != nil {
			return nametree.NameTree[string]{}, err
		}
		next, err := p.parseWeighted()
		if err != nil {
			return nametree.NameTree[string]{}, err
		}
		operands = append(operands, next)
	}

	if len(operands) == 1 {
		if first.hasWeight {
			return nametree.NameTree[string]{}, errors.Newf(errors.ErrParseSyntax,
				"weight without union at line %d, column %d",
				first.line, first.col).
				WithDetail("line", first.line).
				WithDetail("column", first.col)
		}
		return first.tree, nil
	}

	acc := nametree.Union(operands[0].weighted(), operands[1].weighted())
	for _, op := range operands[2:] {
		acc = nametree.Union(acc.Weighted(nametree.DefaultWeight), op.weighted())
	}
	return acc, nil
}

func (p *parser) parseWeighted() (operand, error) {
	if p.tok.typ != tokenNumber {
		tree, err := p.parseAtom()
		if err != nil {
			return operand{}, err
		}
		return operand{tree: tree}, nil
	}

	line, col := p.tok.line, p.tok.col
	weight, err := strconv.ParseFloat(p.tok.text, 64)
	if err != nil {
		return operand{}, errors.Wrapf(err, errors.ErrParseSyntax,
			"malformed weight %q at line %d, column %d",
			p.tok.text, line, col).
			WithDetail("line", line).
			WithDetail("column", col)
	}
	if err := p.bump(); err != nil {
		return operand{}, err
	}
	if p.tok.typ != tokenStar {
		return operand{}, p.unexpected(`"*"`)
	}
	if err := p.bump(); err != nil {
		return operand{}, err
	}
	tree, err := p.parseAtom()
	if err != nil {
		return operand{}, err
	}
	return operand{tree: tree, weight: weight, hasWeight: true, line: line, col: col}, nil
}

func (p *parser) parseAtom() (nametree.NameTree[string], error) {
	var tree nametree.NameTree[string]
	switch p.tok.typ {
	case tokenPath:
		tree = nametree.Leaf(p.tok.text)
	case tokenNeg:
		tree = nametree.Neg[string]()
	case tokenBang:
		tree = nametree.Fail[string]()
	case tokenDollar:
		tree = nametree.Empty[string]()
	default:
		return nametree.NameTree[string]{}, p.unexpected("name tree")
	}
	if err := p.bump(); err != nil {
		return nametree.NameTree[string]{}, err
	}
	return tree, nil
}
