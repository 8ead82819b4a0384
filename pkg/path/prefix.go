package path

import "strings"

// Elem is one element of a prefix: a validated label or the `*` wildcard.
type Elem struct {
	wildcard bool
	label    Label
}

// Wildcard returns the `*` element.
func Wildcard() Elem {
	return Elem{wildcard: true}
}

// LabelElem wraps an already-validated label as a prefix element.
func LabelElem(l Label) Elem {
	return Elem{label: l}
}

// ParseElem parses a single path segment. Exactly "*" becomes the wildcard;
// everything else goes through label validation.
func ParseElem(s string) (Elem, error) {
	if s == "*" {
		return Wildcard(), nil
	}
	l, err := ParseLabel(s)
	if err != nil {
		return Elem{}, err
	}
	return LabelElem(l), nil
}

// IsWildcard reports whether the element is `*`.
func (e Elem) IsWildcard() bool {
	return e.wildcard
}

// Label returns the element's label. It is the zero label for the wildcard.
func (e Elem) Label() Label {
	return e.label
}

func (e Elem) String() string {
	if e.wildcard {
		return "*"
	}
	return e.label.String()
}

// Prefix is an ordered, possibly-empty sequence of elements forming the
// left-hand match pattern of a delegation rule. Prefixes are never mutated
// after construction; Join produces a new value.
type Prefix struct {
	elems []Elem
}

// NewPrefix builds a prefix from already-validated elements.
func NewPrefix(elems ...Elem) Prefix {
	if len(elems) == 0 {
		return Prefix{}
	}
	cp := make([]Elem, len(elems))
	copy(cp, elems)
	return Prefix{elems: cp}
}

// ParsePrefix parses a slash-separated path into a prefix. Empty segments
// (leading, trailing, or doubled slashes) are dropped rather than rejected,
// so "", "/", and "//" all parse to the empty prefix. The first invalid
// segment aborts the whole parse with its LabelError.
func ParsePrefix(s string) (Prefix, error) {
	var elems []Elem
	for _, seg := range strings.Split(s, "/") {
		if seg == "" {
			continue
		}
		elem, err := ParseElem(seg)
		if err != nil {
			return Prefix{}, err
		}
		elems = append(elems, elem)
	}
	return Prefix{elems: elems}, nil
}

// Elems returns a copy of the prefix's elements in source order.
func (p Prefix) Elems() []Elem {
	if len(p.elems) == 0 {
		return nil
	}
	cp := make([]Elem, len(p.elems))
	copy(cp, p.elems)
	return cp
}

// Len returns the number of elements.
func (p Prefix) Len() int {
	return len(p.elems)
}

// IsEmpty reports whether the prefix has no elements.
func (p Prefix) IsEmpty() bool {
	return len(p.elems) == 0
}

// Join returns a new prefix with other's elements appended to p's.
func (p Prefix) Join(other Prefix) Prefix {
	if other.IsEmpty() {
		return p
	}
	elems := make([]Elem, 0, len(p.elems)+len(other.elems))
	elems = append(elems, p.elems...)
	elems = append(elems, other.elems...)
	return Prefix{elems: elems}
}

// Equal reports whether two prefixes have the same elements in the same
// order.
func (p Prefix) Equal(other Prefix) bool {
	if len(p.elems) != len(other.elems) {
		return false
	}
	for i, e := range p.elems {
		if e != other.elems[i] {
			return false
		}
	}
	return true
}

// String renders the prefix as "/elem" per element. The empty prefix
// renders as the empty string, not "/": parsing and rendering deliberately
// do not round-trip for the degenerate case.
func (p Prefix) String() string {
	if len(p.elems) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range p.elems {
		b.WriteByte('/')
		b.WriteString(e.String())
	}
	return b.String()
}

// MarshalText renders the prefix in its canonical text form.
func (p Prefix) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
