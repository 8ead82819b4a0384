// Package nametree implements the name-tree expression algebra used by
// delegation tables: a recursive, generic sum type over an opaque leaf type
// with ordered alternation (Alt), binary weighted union (Union), and the
// three sentinel outcomes negation (~), empty ($), and failure (!).
//
// Trees are built compositionally and never parsed here; once the leaf
// values are valid, every combinator is total. Wider unions are built by
// nesting binary Union nodes — there is no n-ary variant, and downstream
// resolvers flatten nested unions themselves if they need to.
//
//	dst := nametree.From("/smitten").
//		Or(nametree.From("/humphrys")).
//		Or(nametree.From("/birite"))
//	// dst.String() == "/smitten | /humphrys | /birite"
//
// Rendering is canonical and parenthesis-free: precedence is carried by the
// tree structure alone.
package nametree
