// Package geom provides the 2D containment and intersection primitives the
// covering engine is built on. All polygon tests use the even-odd ray-casting
// rule; boundary-exact behavior for points lying precisely on an edge is not
// guaranteed, which is the usual trade-off of crossing tests.
package geom

import (
	"math"

	"github.com/piwi3910/TileCover/internal/model"
)

// PointInRing reports whether the point (px, py) lies inside the ring using
// the even-odd crossing test. Rings with fewer than 3 points contain nothing.
func PointInRing(px, py float64, ring model.Ring) bool {
	if len(ring) < 3 {
		return false
	}
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		xi, yi := ring[i].X, ring[i].Y
		xj, yj := ring[j].X, ring[j].Y
		if (yi > py) != (yj > py) &&
			px < (xj-xi)*(py-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// PointInRegion reports whether the point lies inside the region's exterior
// ring and outside every hole ring.
func PointInRegion(px, py float64, reg model.Region) bool {
	if !PointInRing(px, py, reg.Exterior) {
		return false
	}
	for _, hole := range reg.Holes {
		if PointInRing(px, py, hole) {
			return false
		}
	}
	return true
}

// containEps shrinks containment test shapes by a hair so that rectangles and
// disks sharing an edge with the region boundary count as inside. Without it
// the crossing tests would reject every cell that touches the boundary
// exactly, and an 80x60 rectangle could never be tiled edge to edge.
const containEps = 1e-7

// RectInsideRegion reports whether the axis-aligned rectangle lies fully
// inside the region. All four corners must be inside the region, and no edge
// of the exterior or any hole ring may cross any edge of the rectangle.
// Corner containment alone is not enough: a concave indentation of the
// boundary can pass through the rectangle's interior without containing any
// corner.
func RectInsideRegion(x, y, w, h float64, reg model.Region) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	x += containEps
	y += containEps
	w -= 2 * containEps
	h -= 2 * containEps
	corners := [4]model.Point2D{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
	for _, c := range corners {
		if !PointInRegion(c.X, c.Y, reg) {
			return false
		}
	}

	if ringCrossesRect(reg.Exterior, corners) {
		return false
	}
	for _, hole := range reg.Holes {
		if ringCrossesRect(hole, corners) {
			return false
		}
	}
	return true
}

// ringCrossesRect reports whether any edge of the ring intersects any of the
// four rectangle edges.
func ringCrossesRect(ring model.Ring, corners [4]model.Point2D) bool {
	if len(ring) < 2 {
		return false
	}
	for i := 0; i < len(ring); i++ {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		for j := 0; j < 4; j++ {
			c := corners[j]
			d := corners[(j+1)%4]
			if SegmentsIntersect(a, b, c, d) {
				return true
			}
		}
	}
	return false
}

// CircleInsideRegion reports whether the full disk of radius r centered at
// (cx, cy) lies inside the region: the center must be inside, and every edge
// of the exterior and every hole ring must keep at least distance r from the
// center. The distance condition covers both boundary crossings and rings
// swallowed whole by the disk.
func CircleInsideRegion(cx, cy, r float64, reg model.Region) bool {
	if r <= 0 {
		return false
	}
	if !PointInRegion(cx, cy, reg) {
		return false
	}
	r -= containEps
	if ringWithinDist(reg.Exterior, cx, cy, r) {
		return false
	}
	for _, hole := range reg.Holes {
		if ringWithinDist(hole, cx, cy, r) {
			return false
		}
	}
	return true
}

// ringWithinDist reports whether any edge of the ring comes closer than r to
// the point (cx, cy).
func ringWithinDist(ring model.Ring, cx, cy, r float64) bool {
	if len(ring) < 2 {
		return false
	}
	for i := 0; i < len(ring); i++ {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		if PointToSegmentDist(cx, cy, a, b) < r {
			return true
		}
	}
	return false
}

// orientation returns the turn direction of the ordered triplet (p, q, r):
// 0 for collinear, 1 for clockwise, 2 for counterclockwise.
func orientation(p, q, r model.Point2D) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if val == 0 {
		return 0
	}
	if val > 0 {
		return 1
	}
	return 2
}

// onSegment reports whether point q lies on segment pr, assuming the three
// points are collinear.
func onSegment(p, q, r model.Point2D) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// SegmentsIntersect reports whether segments p1-p2 and p3-p4 intersect,
// including degenerate collinear touching.
func SegmentsIntersect(p1, p2, p3, p4 model.Point2D) bool {
	o1 := orientation(p1, p2, p3)
	o2 := orientation(p1, p2, p4)
	o3 := orientation(p3, p4, p1)
	o4 := orientation(p3, p4, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear special cases
	if o1 == 0 && onSegment(p1, p3, p2) {
		return true
	}
	if o2 == 0 && onSegment(p1, p4, p2) {
		return true
	}
	if o3 == 0 && onSegment(p3, p1, p4) {
		return true
	}
	if o4 == 0 && onSegment(p3, p2, p4) {
		return true
	}
	return false
}

// BoundingBox returns the axis-aligned bounding box of the region's exterior
// ring. Holes never expand the box.
func BoundingBox(reg model.Region) model.Rect {
	min, max := reg.Exterior.BoundingBox()
	return model.Rect{X: min.X, Y: min.Y, W: max.X - min.X, H: max.Y - min.Y}
}

// PointToSegmentDist returns the Euclidean distance from point (px, py) to
// the segment a-b: the scalar projection onto the segment is clamped to
// [0, 1] and the distance taken to the clamped projection point.
func PointToSegmentDist(px, py float64, a, b model.Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((px-a.X)*dx + (py-a.Y)*dy) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	cx := a.X + t*dx
	cy := a.Y + t*dy
	return math.Hypot(px-cx, py-cy)
}
