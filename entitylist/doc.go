// SPDX-License-Identifier: MIT

// Package entitylist provides one generic container, List[T], used
// everywhere this kernel's aggregates hold an ordered collection of child
// entities (a footprint's pads, a symbol's pins, a board's traces and
// vias, a project's net signals and buses). It generalizes the uniform
// query/iteration/mutation/codec/ordering surface every one of those
// collections needs into a single generic type instead of hand-writing it
// per element type.
package entitylist
