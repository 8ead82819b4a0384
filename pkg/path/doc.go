// Package path implements the delegation-table path grammar: validated
// labels, path elements (labels or the `*` wildcard), and prefixes.
//
// A prefix is the left-hand match pattern of a delegation rule. Parsing
// validates every segment against the label character set and fails fast
// with a positional LabelError on the first offending character. All types
// are immutable once constructed.
package path
