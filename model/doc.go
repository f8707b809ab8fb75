// SPDX-License-Identifier: MIT

// Package model implements the connectivity and footprint entities that
// sit on top of geometry: Uuid identities, Junction, the NetLineAnchor/
// TraceAnchor tagged unions and the NetLine/Trace segments they connect,
// Pad/PadHole/Via/Zone/StrokeText/Polygon/Image/SymbolPin, and the
// smaller named entities (Bus, NetSignal, AssemblyVariant, ...).
//
// Every mutating method follows the same convention: it reports whether
// anything actually changed, and on a real change it fires the entity's
// onEdited signal synchronously before returning. There is no background
// work and no locking — the model is single-threaded and cooperative.
package model
