// SPDX-License-Identifier: MIT
package sexpr

import "github.com/katalvlaran/edakernel/internal/errkind"

// Kind discriminates the two node shapes.
type Kind int

const (
	TokenKind Kind = iota
	ListKind
)

// Node is either a token (an identifier/number, or a double-quoted string)
// or a list, whose first logical element is a head token followed by zero
// or more children. BreakBefore records whether the author's source had an
// explicit line break immediately before this node, so the pretty printer
// can reproduce it instead of collapsing everything onto one line.
type Node struct {
	kind        Kind
	text        string
	quoted      bool
	head        string
	children    []*Node
	BreakBefore bool
}

// NewToken builds a bare (unquoted) token node.
func NewToken(text string) *Node {
	return &Node{kind: TokenKind, text: text}
}

// NewString builds a double-quoted string token node.
func NewString(text string) *Node {
	return &Node{kind: TokenKind, text: text, quoted: true}
}

// NewList builds a list node with the given head and children.
func NewList(head string, children ...*Node) *Node {
	return &Node{kind: ListKind, head: head, children: children}
}

// IsToken reports whether n is a token node.
func (n *Node) IsToken() bool { return n.kind == TokenKind }

// IsList reports whether n is a list node.
func (n *Node) IsList() bool { return n.kind == ListKind }

// TokenValue returns the token's text (unescaped) and whether n is a token
// node at all.
func (n *Node) TokenValue() (string, bool) {
	if n.kind != TokenKind {
		return "", false
	}
	return n.text, true
}

// IsQuoted reports whether a token node was written as a quoted string.
func (n *Node) IsQuoted() bool { return n.kind == TokenKind && n.quoted }

// Head returns a list node's head token and whether n is a list node.
func (n *Node) Head() (string, bool) {
	if n.kind != ListKind {
		return "", false
	}
	return n.head, true
}

// Children returns a list node's children, or nil for a token node.
func (n *Node) Children() []*Node { return n.children }

// AppendChild appends child to a list node.
func (n *Node) AppendChild(child *Node) {
	n.children = append(n.children, child)
}

// At returns the i'th child of a list node, or a MissingChild-equivalent
// error (carried as errkind.InvalidSExpression, per the codec's shared
// structural-error category) if i is out of range.
func (n *Node) At(i int) (*Node, error) {
	if n.kind != ListKind || i < 0 || i >= len(n.children) {
		return nil, errkind.New(errkind.InvalidSExpression, "missing child at index")
	}
	return n.children[i], nil
}

// FirstChildWithHead returns the first direct child list node whose head
// equals tag.
func (n *Node) FirstChildWithHead(tag string) (*Node, bool) {
	for _, c := range n.children {
		if h, ok := c.Head(); ok && h == tag {
			return c, true
		}
	}
	return nil, false
}

// ChildrenWithHead returns every direct child list node whose head equals
// tag, in document order.
func (n *Node) ChildrenWithHead(tag string) []*Node {
	var out []*Node
	for _, c := range n.children {
		if h, ok := c.Head(); ok && h == tag {
			out = append(out, c)
		}
	}
	return out
}

// RequireChildWithHead is FirstChildWithHead, but returns an
// InvalidSExpression error instead of a boolean when absent — the
// "fixed-layout child" accessor typed codecs use for required fields.
func (n *Node) RequireChildWithHead(tag string) (*Node, error) {
	if c, ok := n.FirstChildWithHead(tag); ok {
		return c, nil
	}
	return nil, errkind.New(errkind.InvalidSExpression, "missing required child: "+tag)
}

// Equal reports deep structural equality, ignoring BreakBefore hints
// (those are a formatting concern, not part of the tree's meaning).
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.kind != other.kind {
		return false
	}
	if n.kind == TokenKind {
		return n.text == other.text && n.quoted == other.quoted
	}
	if n.head != other.head || len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}
