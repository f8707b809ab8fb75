// SPDX-License-Identifier: MIT

// Package netsimplify reduces the raw anchors and lines of one net
// segment (all the junctions, vias, pins/pads and the wires/traces
// between them, for one electrical net) to a canonical minimal form: it
// adds junctions where lines cross, splits lines that pass through an
// existing anchor, drops duplicate junctions and redundant parallel
// lines, and merges colinear runs through a junction back into one line.
//
// The algorithm is layer-agnostic: it runs the same way over a
// schematic segment (all anchors and lines on the single LayerSchematic)
// and a board segment (anchors with a LayerInterval, lines pinned to one
// copper layer), which is why Anchor and Line here are a small
// standalone representation rather than the model package's NetLine/
// Trace/Junction/Via types directly — those carry editing and signal
// machinery this algorithm has no use for, and operating on one shared
// shape lets the same Simplify run over either domain.
package netsimplify
