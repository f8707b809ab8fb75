// SPDX-License-Identifier: MIT
package netsimplify

import (
	"log"
	"sort"

	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/model"
	"github.com/katalvlaran/edakernel/units"
)

// Option customizes a Simplifier.
type Option func(*Simplifier)

// WithLogger installs l as the destination for recoverable-anomaly
// warnings (currently just the step 4 split overflow). The default
// Simplifier uses log.Default().
func WithLogger(l *log.Logger) Option {
	return func(s *Simplifier) { s.logger = l }
}

// Simplifier runs the net-segment simplification pipeline. The zero value
// is not usable; construct one with NewSimplifier.
type Simplifier struct {
	logger *log.Logger
}

// NewSimplifier builds a Simplifier with the given options applied over
// the default collaborators.
func NewSimplifier(opts ...Option) *Simplifier {
	s := &Simplifier{logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simplify reduces seg to its canonical minimal form in place, running
// the fixed seven-step pipeline (one step function each, called below in
// order), and reports what changed.
func (s *Simplifier) Simplify(seg *Segment) Result {
	res := Result{NewJunctions: map[model.Uuid]geometry.Point{}}

	buckets := groupAnchorsByPosition(seg)
	before := snapshotConnectedPinsOrPads(seg)

	addOrthogonalJunctions(seg, buckets, &res)
	splitLinesAtIntermediateAnchors(seg, &res)
	removeDuplicateJunctions(seg, &res)
	removeRedundantLines(seg, &res)
	mergeColinearThroughJunctions(seg, &res)

	after := snapshotConnectedPinsOrPads(seg)
	res.DisconnectedPinsOrPads = diffUuidSets(before, after)

	if res.SplitOverflow {
		s.logger.Printf("netsimplify: split safety cap reached on segment with %d lines, left unsplit", len(seg.Lines))
	}
	return res
}

// Simplify is a convenience wrapper around NewSimplifier().Simplify for
// callers that don't need a custom logger.
func Simplify(seg *Segment) Result {
	return NewSimplifier().Simplify(seg)
}

func anchorIndex(seg *Segment, id model.Uuid) int {
	for i := range seg.Anchors {
		if seg.Anchors[i].ID == id {
			return i
		}
	}
	return -1
}

func anchorByID(seg *Segment, id model.Uuid) (Anchor, bool) {
	i := anchorIndex(seg, id)
	if i < 0 {
		return Anchor{}, false
	}
	return seg.Anchors[i], true
}

// groupAnchorsByPosition implements step 1: bucket anchors by exact
// position, each bucket sorted Via < PinOrPad < Junction.
func groupAnchorsByPosition(seg *Segment) map[geometry.Point][]model.Uuid {
	buckets := map[geometry.Point][]model.Uuid{}
	for _, a := range seg.Anchors {
		buckets[a.Position] = append(buckets[a.Position], a.ID)
	}
	for pos, ids := range buckets {
		sort.SliceStable(ids, func(i, j int) bool {
			ai, _ := anchorByID(seg, ids[i])
			aj, _ := anchorByID(seg, ids[j])
			return ai.Kind < aj.Kind
		})
		buckets[pos] = ids
	}
	return buckets
}

// snapshotConnectedPinsOrPads implements step 2: the set of pin/pad
// anchor ids referenced by at least one line, at the moment it is
// called.
func snapshotConnectedPinsOrPads(seg *Segment) map[model.Uuid]bool {
	pinOrPad := map[model.Uuid]bool{}
	for _, a := range seg.Anchors {
		if a.Kind == AnchorPinOrPad {
			pinOrPad[a.ID] = false
		}
	}
	for _, ln := range seg.Lines {
		if _, ok := pinOrPad[ln.A]; ok {
			pinOrPad[ln.A] = true
		}
		if _, ok := pinOrPad[ln.B]; ok {
			pinOrPad[ln.B] = true
		}
	}
	out := map[model.Uuid]bool{}
	for id, connected := range pinOrPad {
		if connected {
			out[id] = true
		}
	}
	return out
}

func diffUuidSets(before, after map[model.Uuid]bool) []model.Uuid {
	var out []model.Uuid
	for id := range before {
		if !after[id] {
			out = append(out, id)
		}
	}
	return out
}

// addOrthogonalJunctions implements step 3.
func addOrthogonalJunctions(seg *Segment, buckets map[geometry.Point][]model.Uuid, res *Result) {
	for i := 0; i < len(seg.Lines); i++ {
		li := seg.Lines[i]
		aI, okA := anchorByID(seg, li.A)
		bI, okB := anchorByID(seg, li.B)
		if !okA || !okB || !isHorizontal(aI.Position, bI.Position) {
			continue
		}
		for j := 0; j < len(seg.Lines); j++ {
			if i == j {
				continue
			}
			lj := seg.Lines[j]
			if lj.Layer != li.Layer {
				continue
			}
			aJ, okC := anchorByID(seg, lj.A)
			bJ, okD := anchorByID(seg, lj.B)
			if !okC || !okD || !isVertical(aJ.Position, bJ.Position) {
				continue
			}
			cross, ok := linesCross(aI.Position, bI.Position, aJ.Position, bJ.Position)
			if !ok {
				continue
			}
			if bucketHasLayerCoverage(seg, buckets[cross], li.Layer) {
				continue
			}
			junction := newAnchor(AnchorJunction, cross, model.SingleLayer(li.Layer))
			seg.Anchors = append(seg.Anchors, junction)
			buckets[cross] = append(buckets[cross], junction.ID)
			res.NewJunctions[junction.ID] = cross
			res.Modified = true
		}
	}
}

func bucketHasLayerCoverage(seg *Segment, ids []model.Uuid, layer model.Layer) bool {
	for _, id := range ids {
		a, ok := anchorByID(seg, id)
		if ok && a.Layers.Covers(layer) {
			return true
		}
	}
	return false
}

// splitLinesAtIntermediateAnchors implements step 4, including the
// overflow safety cap.
func splitLinesAtIntermediateAnchors(seg *Segment, res *Result) {
	initialCount := len(seg.Lines)
	limit := 2*initialCount + 10
	snapshot := make([]Line, len(seg.Lines))
	copy(snapshot, seg.Lines)

	overflowed := false
	anySplit := false
	for {
		splitAny := false
		for i := 0; i < len(seg.Lines); i++ {
			mid, ok := findIntermediateAnchor(seg, seg.Lines[i])
			if !ok {
				continue
			}
			original := seg.Lines[i]
			seg.Lines[i].B = mid
			seg.Lines[i].Modified = true
			seg.Lines = append(seg.Lines, Line{
				ID:       model.NewUuid(),
				A:        mid,
				B:        original.B,
				Layer:    original.Layer,
				Width:    original.Width,
				Modified: true,
			})
			splitAny = true
			anySplit = true
			if len(seg.Lines) > limit {
				overflowed = true
			}
			break
		}
		if overflowed || !splitAny {
			break
		}
	}

	if overflowed {
		seg.Lines = snapshot
		res.SplitOverflow = true
		return
	}
	if anySplit {
		res.Modified = true
	}
}

func findIntermediateAnchor(seg *Segment, ln Line) (model.Uuid, bool) {
	a, okA := anchorByID(seg, ln.A)
	b, okB := anchorByID(seg, ln.B)
	if !okA || !okB {
		return model.NilUuid, false
	}
	for _, cand := range seg.Anchors {
		if cand.ID == ln.A || cand.ID == ln.B {
			continue
		}
		if !cand.Layers.Covers(ln.Layer) {
			continue
		}
		if isStraightLine(a.Position, cand.Position, b.Position) {
			return cand.ID, true
		}
	}
	return model.NilUuid, false
}

// removeDuplicateJunctions implements step 5.
func removeDuplicateJunctions(seg *Segment, res *Result) {
	buckets := groupAnchorsByPosition(seg)

	kept := seg.Lines[:0]
	for _, ln := range seg.Lines {
		a, _ := anchorByID(seg, ln.A)
		b, _ := anchorByID(seg, ln.B)
		newA := resolveAnchor(seg, buckets, a, ln.Layer)
		newB := resolveAnchor(seg, buckets, b, ln.Layer)
		if newA != ln.A || newB != ln.B {
			ln.A, ln.B = newA, newB
			ln.Modified = true
			res.Modified = true
		}
		if newA == newB {
			res.Modified = true
			continue // endpoints collapsed: the line disappears entirely
		}
		kept = append(kept, ln)
	}
	seg.Lines = kept
}

// resolveAnchor replaces a Junction anchor by the first (highest-ranked)
// anchor in its position bucket that covers layer, if any. Non-Junction
// anchors are returned unchanged.
func resolveAnchor(seg *Segment, buckets map[geometry.Point][]model.Uuid, a Anchor, layer model.Layer) model.Uuid {
	if a.Kind != AnchorJunction {
		return a.ID
	}
	for _, id := range buckets[a.Position] {
		cand, ok := anchorByID(seg, id)
		if ok && cand.Layers.Covers(layer) {
			return cand.ID
		}
	}
	return a.ID
}

// removeRedundantLines implements step 6.
func removeRedundantLines(seg *Segment, res *Result) {
	removed := make(map[model.Uuid]bool)
	for i := range seg.Lines {
		li := seg.Lines[i]
		if removed[li.ID] {
			continue
		}
		for j := range seg.Lines {
			if i == j {
				continue
			}
			lj := seg.Lines[j]
			if removed[lj.ID] || !sameLayerAndEndpoints(li, lj) {
				continue
			}
			if lj.Width.Value() >= li.Width.Value() && !(lj.Width.Value() == li.Width.Value() && lj.ID.Cmp(li.ID) < 0) {
				removed[li.ID] = true
				break
			}
		}
	}
	if len(removed) == 0 {
		return
	}
	res.Modified = true
	kept := seg.Lines[:0]
	for _, ln := range seg.Lines {
		if !removed[ln.ID] {
			kept = append(kept, ln)
		}
	}
	seg.Lines = kept
}

func sameLayerAndEndpoints(a, b Line) bool {
	if a.Layer != b.Layer {
		return false
	}
	return (a.A == b.A && a.B == b.B) || (a.A == b.B && a.B == b.A)
}

// mergeColinearThroughJunctions implements step 7.
func mergeColinearThroughJunctions(seg *Segment, res *Result) {
	for {
		if !mergeOneColinearJunction(seg, res) {
			return
		}
	}
}

func mergeOneColinearJunction(seg *Segment, res *Result) bool {
	for _, anchor := range seg.Anchors {
		if anchor.Kind != AnchorJunction {
			continue
		}
		var incident []int
		for i, ln := range seg.Lines {
			if ln.A == anchor.ID || ln.B == anchor.ID {
				incident = append(incident, i)
			}
		}
		if len(incident) != 2 {
			continue
		}
		l1, l2 := seg.Lines[incident[0]], seg.Lines[incident[1]]
		if l1.Layer != l2.Layer || l1.Width.Value() != l2.Width.Value() {
			continue
		}
		opp1 := otherEndpoint(l1, anchor.ID)
		opp2 := otherEndpoint(l2, anchor.ID)
		if opp1 == opp2 {
			continue // would merge a line with itself
		}
		p1, ok1 := anchorByID(seg, opp1)
		p2, ok2 := anchorByID(seg, opp2)
		if !ok1 || !ok2 || !isStraightLine(p1.Position, anchor.Position, p2.Position) {
			continue
		}

		if direct, ok := findLine(seg, opp1, opp2, l1.Layer); ok {
			if l1.Width.Value() > direct.Width.Value() {
				setLineWidth(seg, direct.ID, l1.Width)
			}
			removeLines(seg, l1.ID, l2.ID)
		} else {
			setLineEndpoints(seg, l1.ID, opp1, opp2)
			removeLines(seg, l2.ID)
		}
		res.Modified = true
		return true
	}
	return false
}

func otherEndpoint(ln Line, anchorID model.Uuid) model.Uuid {
	if ln.A == anchorID {
		return ln.B
	}
	return ln.A
}

func findLine(seg *Segment, a, b model.Uuid, layer model.Layer) (Line, bool) {
	for _, ln := range seg.Lines {
		if ln.Layer == layer && ((ln.A == a && ln.B == b) || (ln.A == b && ln.B == a)) {
			return ln, true
		}
	}
	return Line{}, false
}

func setLineWidth(seg *Segment, id model.Uuid, w units.PositiveLength) {
	for i := range seg.Lines {
		if seg.Lines[i].ID == id {
			seg.Lines[i].Width = w
			seg.Lines[i].Modified = true
			return
		}
	}
}

func setLineEndpoints(seg *Segment, id, a, b model.Uuid) {
	for i := range seg.Lines {
		if seg.Lines[i].ID == id {
			seg.Lines[i].A = a
			seg.Lines[i].B = b
			seg.Lines[i].Modified = true
			return
		}
	}
}

func removeLines(seg *Segment, ids ...model.Uuid) {
	drop := make(map[model.Uuid]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := seg.Lines[:0]
	for _, ln := range seg.Lines {
		if !drop[ln.ID] {
			kept = append(kept, ln)
		}
	}
	seg.Lines = kept
}
