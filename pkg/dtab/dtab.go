// Package dtab implements delegation tables: ordered lists of rules pairing
// a path prefix with a destination name-tree, with canonical text rendering
// and marshaling glue for embedding dtabs in larger documents.
//
// A dtab carries no resolution semantics of its own. Order is preserved
// exactly as given — duplicate or overlapping prefixes are legal here, and
// first-match or priority behavior is the downstream resolver's concern.
package dtab

import (
	"strings"

	"github.com/routelab/dtab/pkg/nametree"
	"github.com/routelab/dtab/pkg/path"
)

// Dentry is one delegation rule: a prefix match pattern and the name-tree
// it rewrites to. Dentries are immutable once built.
type Dentry struct {
	prefix path.Prefix
	dst    nametree.NameTree[string]
}

// NewDentry pairs a prefix with a destination tree. Both operands are
// already valid by construction, so there is nothing further to check.
func NewDentry(prefix path.Prefix, dst nametree.NameTree[string]) Dentry {
	return Dentry{prefix: prefix, dst: dst}
}

// Prefix returns the rule's match pattern.
func (d Dentry) Prefix() path.Prefix {
	return d.prefix
}

// Dst returns the rule's destination tree.
func (d Dentry) Dst() nametree.NameTree[string] {
	return d.dst
}

// String renders the rule as "prefix => tree;".
func (d Dentry) String() string {
	return d.prefix.String() + " => " + d.dst.String() + ";"
}

// MarshalText renders the dentry in its canonical text form.
func (d Dentry) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalYAML renders the dentry as a YAML string node.
func (d Dentry) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// Dtab is an ordered sequence of delegation rules. Insertion order is
// significant and preserved exactly: no deduplication, no reordering, no
// distinctness checks on prefixes.
type Dtab []Dentry

// New builds a dtab from entries in the given order.
func New(entries ...Dentry) Dtab {
	if len(entries) == 0 {
		return nil
	}
	t := make(Dtab, len(entries))
	copy(t, entries)
	return t
}

// Append returns a new dtab with the entries added at the end. The
// receiver is left untouched.
func (t Dtab) Append(entries ...Dentry) Dtab {
	out := make(Dtab, 0, len(t)+len(entries))
	out = append(out, t...)
	out = append(out, entries...)
	return out
}

// String renders each dentry followed by a newline, in order. The empty
// dtab renders as the empty string.
func (t Dtab) String() string {
	var b strings.Builder
	for _, entry := range t {
		b.WriteString(entry.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// MarshalText renders the dtab in its canonical text form.
func (t Dtab) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// MarshalYAML renders the dtab as a YAML string node.
func (t Dtab) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}
