// Package graphconn partitions a set of anchor identities into connected
// components under the lines joining them, using a disjoint-set forest
// keyed directly on their Uuid. Net-segment simplification must never
// split a segment's connectivity apart; this package is the check used to
// assert that a before/after pair of anchor sets describes the same
// partition into connected pieces.
package graphconn
