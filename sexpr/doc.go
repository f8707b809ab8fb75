// SPDX-License-Identifier: MIT

// Package sexpr implements the Lisp-like tree that is this kernel's
// persisted file format: a node is either a token (identifier, number, or
// quoted string) or a list whose first child is a head token. It provides
// the tokenizer, the tree type, a pretty printer that honors explicit
// line-break hints left by the author, and the Parse/Error surface typed
// codecs build on.
package sexpr
