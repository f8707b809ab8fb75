// Package edakernel is a small EDA connectivity kernel: the exact
// integer-backed geometry and electrical-entity types an editor needs to
// read, simplify, and write back a board or schematic net, plus the
// S-expression codec those entities round-trip through on disk.
//
// Under the hood, everything is organized under several subpackages:
//
//	units/              — exact fixed-point length, angle and ratio types
//	geometry/           — points, vertices, paths and pad outlines built on units
//	model/              — connectivity entities (Junction, Trace, Pad, Via, ...)
//	sexpr/              — the S-expression parser/printer every entity codec uses
//	entitylist/         — a generic, order-preserving typed object list
//	netsimplify/        — the net-segment simplification pipeline
//	internal/graphconn/ — a union-find connectivity-preservation check
//	cmd/edakernel/      — a thin CLI driving the simplifier over a file
//
// internal/graphconn operates directly on model.Uuid to verify that
// netsimplify.Simplify never silently merges or splits a net.
package edakernel
