// SPDX-License-Identifier: MIT
package entitylist

import "github.com/katalvlaran/edakernel/sexpr"

// LoadFromSExpr clears l and appends one element per direct child of node
// whose head equals tag, parsed by parse. If parse fails on any child,
// l is left empty and the error is returned — a partially loaded list
// would let a caller silently work from a document that does not match
// what was actually on disk.
func LoadFromSExpr[T Identifiable](l *List[T], node *sexpr.Node, tag string, parse func(*sexpr.Node) (T, error)) error {
	l.Clear()
	for _, child := range node.ChildrenWithHead(tag) {
		item, err := parse(child)
		if err != nil {
			l.Clear()
			return err
		}
		l.Append(item)
	}
	return nil
}

// AppendSerialized appends each element of l to root as a child node
// produced by encode (which is responsible for heading it with the
// element's own tag), each marked with EnsureLineBreak so the pretty
// printer puts one element per line. Order is whatever l's own order
// currently is — serialization never reorders a list.
func AppendSerialized[T Identifiable](l *List[T], root *sexpr.Node, encode func(T) *sexpr.Node) {
	for _, item := range l.Values() {
		child := encode(item)
		sexpr.EnsureLineBreak(child)
		root.AppendChild(child)
	}
}
