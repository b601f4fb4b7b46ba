// Package engine computes minimal-count coverings of polygonal regions by
// axis-aligned squares, rectangles, or circles. The covering is exposed as a
// lazy sequence of intermediate states so callers can animate or batch the
// merge progression at their own pace.
package engine

import (
	"sort"

	"github.com/piwi3910/TileCover/internal/geom"
	"github.com/piwi3910/TileCover/internal/model"
	"github.com/piwi3910/TileCover/internal/region"
)

// squareKey identifies a live square by its exact coordinates and size.
// Coordinates are always derived from exact integer multiples of the grid
// cell size, so exact float equality is safe here; no epsilon tolerance.
type squareKey struct {
	x, y, size float64
}

func keyOf(s model.Square) squareKey {
	return squareKey{x: s.X, y: s.Y, size: s.Size}
}

type runPhase int

const (
	phaseStart runPhase = iota
	phaseSquares
	phaseRects
	phaseCircles
	phaseTerminal
	phaseDone
)

// Run is a cold, single-pass producer of covering steps. Each Next call
// advances the covering by one merge event and returns the new snapshot; once
// the terminal state has been yielded the run is exhausted and cannot be
// rewound. A Run shares no state with other runs, performs no I/O, and is
// agnostic to consumer pacing: the output is identical however fast or slow
// it is drained.
type Run struct {
	polygons []model.Ring
	opts     model.CoverOptions

	regions []model.Region
	ladder  []int

	// Squares phase: live set keyed for O(1) membership, ordered list for
	// scan order and tie-breaking.
	set  map[squareKey]struct{}
	live []model.Square

	// Rectangles phase
	rects []model.Rect

	// Circles phase
	circles   []model.Circle
	ladderIdx int

	iteration int
	phase     runPhase
	lastStep  model.CoveringStep
}

// RunCovering starts a covering computation over the given polygons. The
// returned Run performs no work until its first Next call. Options are
// clamped to their documented ranges; invalid values fall back to defaults.
func RunCovering(polygons []model.Ring, opts model.CoverOptions) *Run {
	return &Run{
		polygons: polygons,
		opts:     opts.Normalized(),
		phase:    phaseStart,
	}
}

// Next advances the covering by one merge event and reports whether a step
// was produced. After the final merge the last state is repeated once as an
// idempotent terminal marker; subsequent calls return false.
func (r *Run) Next() (model.CoveringStep, bool) {
	for {
		switch r.phase {
		case phaseStart:
			return r.begin(), true
		case phaseSquares:
			if r.stepSquares() {
				return r.emitSquares(), true
			}
			if r.opts.Shape == model.ShapeRectangles {
				r.beginRects()
				continue
			}
			r.phase = phaseTerminal
		case phaseRects:
			if r.stepRects() {
				return r.emitRects(), true
			}
			r.phase = phaseTerminal
		case phaseCircles:
			if r.stepCircles() {
				return r.emitCircles(), true
			}
			r.phase = phaseTerminal
		case phaseTerminal:
			r.phase = phaseDone
			return r.lastStep, true
		default:
			return model.CoveringStep{}, false
		}
	}
}

// All drains the run and returns every remaining step.
func (r *Run) All() []model.CoveringStep {
	var steps []model.CoveringStep
	for {
		step, ok := r.Next()
		if !ok {
			return steps
		}
		steps = append(steps, step)
	}
}

// begin computes the union, discretizes it, and emits the initial snapshot.
// An empty union is not an error: it yields a single empty step and the run
// is immediately exhausted, with no terminal repeat.
func (r *Run) begin() model.CoveringStep {
	r.regions = region.UnionPolygons(r.polygons)
	r.ladder = KHalvingRange(r.opts.MaxK, r.opts.MinK)

	if len(r.regions) == 0 {
		r.phase = phaseDone
		r.lastStep = model.CoveringStep{
			Rectangles: []model.Rect{},
			Remaining:  []model.Rect{},
		}
		return r.lastStep
	}

	if r.opts.Shape == model.ShapeCircles {
		r.phase = phaseCircles
		return r.emitCircles()
	}

	r.set = make(map[squareKey]struct{})
	for _, reg := range r.regions {
		for _, cell := range FillGrid(reg, r.opts.MinSize) {
			r.set[keyOf(cell)] = struct{}{}
			r.live = append(r.live, cell)
		}
	}
	r.phase = phaseSquares
	return r.emitSquares()
}

// stepSquares performs one square block merge if any is possible.
//
// The most recently added square is tried first as a block anchor: the
// previous merge's result is the most likely next merge candidate, which
// keeps the typical cost near O(1) instead of rescanning the whole set. Only
// when that fails does the full scan run, with the already-tried anchor
// excluded.
func (r *Run) stepSquares() bool {
	if len(r.live) == 0 {
		return false
	}
	last := r.live[len(r.live)-1]
	for _, k := range r.ladder {
		if r.canMerge(last, k) {
			r.merge(last, k)
			return true
		}
	}
	return r.findMerge(keyOf(last))
}

// findMerge scans the live squares for the first feasible block merge:
// largest ladder multiplier first, then smallest square size, then insertion
// order. The exclude key marks the anchor already tried at every ladder value
// this scan, so it is never re-derived.
func (r *Run) findMerge(exclude squareKey) bool {
	bySize := make(map[float64][]model.Square)
	var sizes []float64
	for _, sq := range r.live {
		if _, seen := bySize[sq.Size]; !seen {
			sizes = append(sizes, sq.Size)
		}
		bySize[sq.Size] = append(bySize[sq.Size], sq)
	}
	sort.Float64s(sizes)

	for _, k := range r.ladder {
		for _, s := range sizes {
			for _, sq := range bySize[s] {
				if keyOf(sq) == exclude {
					continue
				}
				if r.canMerge(sq, k) {
					r.merge(sq, k)
					return true
				}
			}
		}
	}
	return false
}

// canMerge reports whether a k-by-k block of size-s squares exists with the
// anchor as its top-left corner. All k*k constituents must be present, which
// guarantees the merged square is fully inside the region without re-running
// the containment test: every constituent cell was already validated.
func (r *Run) canMerge(anchor model.Square, k int) bool {
	s := anchor.Size
	for a := 0; a < k; a++ {
		for b := 0; b < k; b++ {
			key := squareKey{x: anchor.X + float64(a)*s, y: anchor.Y + float64(b)*s, size: s}
			if _, ok := r.set[key]; !ok {
				return false
			}
		}
	}
	return true
}

// merge consumes the k*k block anchored at the given square and replaces it
// with one square of k times the size. Consumed squares leave the set
// permanently and are never revisited.
func (r *Run) merge(anchor model.Square, k int) {
	s := anchor.Size
	for a := 0; a < k; a++ {
		for b := 0; b < k; b++ {
			delete(r.set, squareKey{x: anchor.X + float64(a)*s, y: anchor.Y + float64(b)*s, size: s})
		}
	}
	merged := model.Square{X: anchor.X, Y: anchor.Y, Size: s * float64(k)}
	r.set[keyOf(merged)] = struct{}{}
	r.live = append(r.live, merged)

	kept := make([]model.Square, 0, len(r.live))
	for _, sq := range r.live {
		if _, ok := r.set[keyOf(sq)]; ok {
			kept = append(kept, sq)
		}
	}
	r.live = kept
	r.iteration++
}

// beginRects switches a rectangles-mode run into its second phase once no
// further square merge exists.
func (r *Run) beginRects() {
	r.rects = make([]model.Rect, len(r.live))
	for i, sq := range r.live {
		r.rects[i] = sq.Rect()
	}
	r.phase = phaseRects
}

// stepRects merges one pair of rectangles that share an equal-length
// axis-aligned edge. The search is greedy: index order i < j over the current
// list, first match wins, with no attempt at a globally optimal pairing. The
// merged rectangle is re-validated against the regions because post-merge
// rectangles are no longer grid-cell-derived.
func (r *Run) stepRects() bool {
	for i := 0; i < len(r.rects); i++ {
		for j := i + 1; j < len(r.rects); j++ {
			merged, ok := mergeAdjacent(r.rects[i], r.rects[j])
			if !ok || !r.rectInAnyRegion(merged) {
				continue
			}
			r.rects[i] = merged
			r.rects = append(r.rects[:j], r.rects[j+1:]...)
			r.iteration++
			return true
		}
	}
	return false
}

// mergeAdjacent returns the union of two rectangles that share a full edge:
// same row band and touching in x, or same column band and touching in y.
// Coordinates compare exactly; both rectangles descend from the same grid.
func mergeAdjacent(a, b model.Rect) (model.Rect, bool) {
	if a.Y == b.Y && a.H == b.H {
		if a.X+a.W == b.X {
			return model.Rect{X: a.X, Y: a.Y, W: a.W + b.W, H: a.H}, true
		}
		if b.X+b.W == a.X {
			return model.Rect{X: b.X, Y: a.Y, W: a.W + b.W, H: a.H}, true
		}
	}
	if a.X == b.X && a.W == b.W {
		if a.Y+a.H == b.Y {
			return model.Rect{X: a.X, Y: a.Y, W: a.W, H: a.H + b.H}, true
		}
		if b.Y+b.H == a.Y {
			return model.Rect{X: a.X, Y: b.Y, W: a.W, H: a.H + b.H}, true
		}
	}
	return model.Rect{}, false
}

func (r *Run) rectInAnyRegion(rc model.Rect) bool {
	for _, reg := range r.regions {
		if geom.RectInsideRegion(rc.X, rc.Y, rc.W, rc.H, reg) {
			return true
		}
	}
	return false
}

// stepCircles runs diameter passes from the ladder, largest first, until one
// of them places at least one circle. Each pass scans a fresh grid with step
// equal to the pass diameter and fills gaps the previous, larger pass left;
// circles are never removed or merged.
func (r *Run) stepCircles() bool {
	for r.ladderIdx < len(r.ladder) {
		k := r.ladder[r.ladderIdx]
		r.ladderIdx++

		d := float64(k) * r.opts.MinSize
		radius := d / 2
		added := false
		for _, reg := range r.regions {
			bb := geom.BoundingBox(reg)
			for i := 0; float64(i)*d < bb.W; i++ {
				for j := 0; float64(j)*d < bb.H; j++ {
					cx := bb.X + float64(i)*d + radius
					cy := bb.Y + float64(j)*d + radius
					if !geom.CircleInsideRegion(cx, cy, radius, reg) {
						continue
					}
					if r.overlapsAny(cx, cy, radius) {
						continue
					}
					r.circles = append(r.circles, model.Circle{CX: cx, CY: cy, R: radius})
					added = true
				}
			}
		}
		if added {
			r.iteration++
			return true
		}
	}
	return false
}

// overlapsAny reports whether a circle at (cx, cy) with the given radius
// strictly overlaps any placed circle. Touching is allowed.
func (r *Run) overlapsAny(cx, cy, radius float64) bool {
	for _, c := range r.circles {
		dx := c.CX - cx
		dy := c.CY - cy
		rr := c.R + radius
		if dx*dx+dy*dy < rr*rr {
			return true
		}
	}
	return false
}

func (r *Run) emitSquares() model.CoveringStep {
	rects := make([]model.Rect, len(r.live))
	for i, sq := range r.live {
		rects[i] = sq.Rect()
	}
	r.lastStep = model.CoveringStep{
		Rectangles: rects,
		Remaining:  []model.Rect{},
		Iteration:  r.iteration,
	}
	return r.lastStep
}

func (r *Run) emitRects() model.CoveringStep {
	rects := make([]model.Rect, len(r.rects))
	copy(rects, r.rects)
	r.lastStep = model.CoveringStep{
		Rectangles: rects,
		Remaining:  []model.Rect{},
		Iteration:  r.iteration,
	}
	return r.lastStep
}

func (r *Run) emitCircles() model.CoveringStep {
	circles := make([]model.Circle, len(r.circles))
	copy(circles, r.circles)
	r.lastStep = model.CoveringStep{
		Rectangles: []model.Rect{},
		Circles:    circles,
		Remaining:  []model.Rect{},
		Iteration:  r.iteration,
	}
	return r.lastStep
}

// Cover runs a covering to completion and packages the final state with its
// statistics.
func Cover(polygons []model.Ring, opts model.CoverOptions) model.CoverResult {
	opts = opts.Normalized()
	steps := RunCovering(polygons, opts).All()

	var final model.CoveringStep
	if len(steps) > 0 {
		final = steps[len(steps)-1]
	}
	return model.CoverResult{
		Shape:      opts.Shape,
		Rectangles: final.Rectangles,
		Circles:    final.Circles,
		Steps:      len(steps),
		Stats:      model.NewCoverStats(region.UnionArea(polygons), final),
	}
}
