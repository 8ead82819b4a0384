package nametree

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultWeight is the weight assigned to both sides of a union built
// without explicit weights.
const DefaultWeight = 0.5

// Kind identifies a tree node's variant.
type Kind int

const (
	// KindLeaf is an opaque named destination.
	KindLeaf Kind = iota
	// KindAlt is ordered alternation: try left, fall through to right.
	KindAlt
	// KindUnion is an unordered weighted combination of exactly two
	// weighted sub-trees.
	KindUnion
	// KindNeg is the explicit negative result, rendered "~".
	KindNeg
	// KindEmpty is the explicit empty result, rendered "$".
	KindEmpty
	// KindFail is the explicit failure result, rendered "!".
	KindFail
)

// NameTree is an immutable name-tree expression over leaf type T. The zero
// value is Leaf of T's zero value. Build trees with the constructors and
// combinators; the fields are never mutated after construction.
type NameTree[T any] struct {
	kind        Kind
	value       T
	left, right *NameTree[T]  // Alt children
	wl, wr      *Weighted[T]  // Union children
}

// Weighted pairs a weight with a tree for use under a Union. The weight's
// range is not enforced: negative, zero, and >1 values are accepted and
// rendered verbatim; weighting semantics belong to the downstream resolver.
type Weighted[T any] struct {
	weight float64
	tree   NameTree[T]
}

// Leaf wraps an opaque destination value.
func Leaf[T any](v T) NameTree[T] {
	return NameTree[T]{kind: KindLeaf, value: v}
}

// Neg returns the negation sentinel.
func Neg[T any]() NameTree[T] {
	return NameTree[T]{kind: KindNeg}
}

// Empty returns the empty sentinel.
func Empty[T any]() NameTree[T] {
	return NameTree[T]{kind: KindEmpty}
}

// Fail returns the failure sentinel.
func Fail[T any]() NameTree[T] {
	return NameTree[T]{kind: KindFail}
}

// Alt builds an ordered alternation of two trees. Chained calls nest to the
// left, so Alt(Alt(a, b), c) renders flat as "a | b | c".
func Alt[T any](left, right NameTree[T]) NameTree[T] {
	return NameTree[T]{kind: KindAlt, left: &left, right: &right}
}

// Union builds a weighted union of exactly two weighted sub-trees. Wider
// unions are expressed by nesting.
func Union[T any](left, right Weighted[T]) NameTree[T] {
	return NameTree[T]{kind: KindUnion, wl: &left, wr: &right}
}

// Weigh attaches an explicit weight to a tree for use under a Union.
func Weigh[T any](weight float64, tree NameTree[T]) Weighted[T] {
	return Weighted[T]{weight: weight, tree: tree}
}

// From converts text into a tree. The three reserved literals become
// sentinels instead of leaves: "~" is Neg, "!" is Fail, and "$" is Empty.
// Any other text becomes a plain Leaf holding it verbatim. This shortcut
// exists only for the textual leaf type.
func From(s string) NameTree[string] {
	switch s {
	case "~":
		return Neg[string]()
	case "!":
		return Fail[string]()
	case "$":
		return Empty[string]()
	default:
		return Leaf(s)
	}
}

// Or builds the alternation t | right. Chaining associates left.
func (t NameTree[T]) Or(right NameTree[T]) NameTree[T] {
	return Alt(t, right)
}

// And builds the union t & right with DefaultWeight on both sides. Use
// Union with Weigh to override the weights.
func (t NameTree[T]) And(right NameTree[T]) NameTree[T] {
	return Union(t.Weighted(DefaultWeight), right.Weighted(DefaultWeight))
}

// Weighted pairs the tree with an explicit weight.
func (t NameTree[T]) Weighted(weight float64) Weighted[T] {
	return Weigh(weight, t)
}

// OrString is Or with the textual sentinel conversion applied to the right
// operand.
func OrString(t NameTree[string], s string) NameTree[string] {
	return Alt(t, From(s))
}

// AndString is And with the textual sentinel conversion applied to the
// right operand.
func AndString(t NameTree[string], s string) NameTree[string] {
	return t.And(From(s))
}

// WeighString weights the tree parsed from s via the sentinel conversion.
func WeighString(weight float64, s string) Weighted[string] {
	return Weigh(weight, From(s))
}

// Kind returns the node's variant.
func (t NameTree[T]) Kind() Kind {
	return t.kind
}

// Value returns the leaf value. It is T's zero value for non-leaf nodes.
func (t NameTree[T]) Value() T {
	return t.value
}

// AltBranches returns the alternation's children; ok is false for any
// other kind.
func (t NameTree[T]) AltBranches() (left, right NameTree[T], ok bool) {
	if t.kind != KindAlt {
		return NameTree[T]{}, NameTree[T]{}, false
	}
	return *t.left, *t.right, true
}

// UnionBranches returns the union's weighted children; ok is false for any
// other kind.
func (t NameTree[T]) UnionBranches() (left, right Weighted[T], ok bool) {
	if t.kind != KindUnion {
		return Weighted[T]{}, Weighted[T]{}, false
	}
	return *t.wl, *t.wr, true
}

// Weight returns the weight of the pair.
func (w Weighted[T]) Weight() float64 {
	return w.weight
}

// Tree returns the tree of the pair.
func (w Weighted[T]) Tree() NameTree[T] {
	return w.tree
}

// String renders the tree in canonical form. No parentheses are emitted:
// the structure alone carries precedence.
func (t NameTree[T]) String() string {
	var b strings.Builder
	t.render(&b)
	return b.String()
}

func (t NameTree[T]) render(b *strings.Builder) {
	switch t.kind {
	case KindLeaf:
		fmt.Fprint(b, t.value)
	case KindAlt:
		t.left.render(b)
		b.WriteString(" | ")
		t.right.render(b)
	case KindUnion:
		t.wl.render(b)
		b.WriteString(" & ")
		t.wr.render(b)
	case KindNeg:
		b.WriteByte('~')
	case KindEmpty:
		b.WriteByte('$')
	case KindFail:
		b.WriteByte('!')
	}
}

// String renders the pair as "weight * tree", the weight in its shortest
// decimal form.
func (w Weighted[T]) String() string {
	var b strings.Builder
	w.render(&b)
	return b.String()
}

func (w Weighted[T]) render(b *strings.Builder) {
	b.WriteString(FormatWeight(w.weight))
	b.WriteString(" * ")
	w.tree.render(b)
}

// FormatWeight renders a weight in its natural decimal form: 0.5 stays
// "0.5", 0.7 stays "0.7", 1 renders "1".
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// MarshalText renders the tree in its canonical text form.
func (t NameTree[T]) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Equal reports structural equality of two trees over a comparable leaf
// type. Weights are compared exactly.
func Equal[T comparable](a, b NameTree[T]) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindLeaf:
		return a.value == b.value
	case KindAlt:
		return Equal(*a.left, *b.left) && Equal(*a.right, *b.right)
	case KindUnion:
		return a.wl.weight == b.wl.weight && a.wr.weight == b.wr.weight &&
			Equal(a.wl.tree, b.wl.tree) && Equal(a.wr.tree, b.wr.tree)
	default:
		return true
	}
}
