package geom

import (
	"testing"

	"github.com/piwi3910/TileCover/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectRing(x, y, w, h float64) model.Ring {
	return model.Ring{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

func TestPointInRing_SquareInsideOutside(t *testing.T) {
	ring := rectRing(0, 0, 10, 10)

	assert.True(t, PointInRing(5, 5, ring))
	assert.True(t, PointInRing(0.001, 0.001, ring))
	assert.False(t, PointInRing(-1, 5, ring))
	assert.False(t, PointInRing(5, 11, ring))
	assert.False(t, PointInRing(15, 15, ring))
}

func TestPointInRing_DegenerateRings(t *testing.T) {
	assert.False(t, PointInRing(0, 0, model.Ring{}))
	assert.False(t, PointInRing(0, 0, model.Ring{{X: 1, Y: 1}}))
	assert.False(t, PointInRing(0, 0, model.Ring{{X: 0, Y: 0}, {X: 5, Y: 5}}))
}

func TestPointInRing_ConcavePolygon(t *testing.T) {
	// L-shape: 10x10 square with the top-right 5x5 quadrant removed.
	ring := model.Ring{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5},
		{X: 5, Y: 5}, {X: 5, Y: 10}, {X: 0, Y: 10},
	}

	assert.True(t, PointInRing(2, 2, ring))
	assert.True(t, PointInRing(2, 8, ring))
	assert.True(t, PointInRing(8, 2, ring))
	assert.False(t, PointInRing(8, 8, ring), "point in the removed quadrant")
}

func TestPointInRegion_HoleExcludesPoint(t *testing.T) {
	reg := model.Region{
		Exterior: rectRing(0, 0, 20, 20),
		Holes:    []model.Ring{rectRing(5, 5, 10, 10)},
	}

	assert.True(t, PointInRegion(2, 2, reg))
	assert.False(t, PointInRegion(10, 10, reg), "point inside the hole")
	assert.True(t, PointInRegion(17, 17, reg))
}

func TestRectInsideRegion_Basic(t *testing.T) {
	reg := model.Region{Exterior: rectRing(0, 0, 80, 60)}

	assert.True(t, RectInsideRegion(10, 10, 20, 20, reg))
	assert.False(t, RectInsideRegion(70, 50, 20, 20, reg), "sticks out past the corner")
	assert.False(t, RectInsideRegion(100, 100, 5, 5, reg), "fully outside")
}

func TestRectInsideRegion_BoundaryCellsCount(t *testing.T) {
	// Grid cells that share an edge with the region boundary must pass,
	// otherwise an 80x60 region could never be tiled edge to edge.
	reg := model.Region{Exterior: rectRing(0, 0, 80, 60)}

	assert.True(t, RectInsideRegion(0, 0, 20, 20, reg))
	assert.True(t, RectInsideRegion(60, 40, 20, 20, reg))
	assert.True(t, RectInsideRegion(0, 0, 80, 60, reg), "region-sized rect is inside itself")
}

func TestRectInsideRegion_ZeroAndNegativeSize(t *testing.T) {
	reg := model.Region{Exterior: rectRing(0, 0, 80, 60)}

	assert.False(t, RectInsideRegion(10, 10, 0, 5, reg))
	assert.False(t, RectInsideRegion(10, 10, 5, -1, reg))
}

func TestRectInsideRegion_HoleRejectsOverlap(t *testing.T) {
	reg := model.Region{
		Exterior: rectRing(0, 0, 40, 40),
		Holes:    []model.Ring{rectRing(15, 15, 10, 10)},
	}

	assert.False(t, RectInsideRegion(10, 10, 20, 20, reg), "overlaps the hole")
	assert.True(t, RectInsideRegion(0, 0, 10, 10, reg))
	assert.True(t, RectInsideRegion(30, 30, 10, 10, reg))
}

func TestRectInsideRegion_ConcaveEdgeThroughInterior(t *testing.T) {
	// U-shape whose notch passes through the middle of a wide rectangle:
	// all four corners are inside but the boundary cuts through it.
	ring := model.Ring{
		{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 30}, {X: 20, Y: 30},
		{X: 20, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 30}, {X: 0, Y: 30},
	}
	reg := model.Region{Exterior: ring}

	assert.False(t, RectInsideRegion(2, 2, 26, 12, reg), "notch edge crosses the rect")
	assert.True(t, RectInsideRegion(2, 2, 26, 6, reg), "below the notch")
}

func TestCircleInsideRegion_Basic(t *testing.T) {
	reg := model.Region{Exterior: rectRing(0, 0, 100, 100)}

	assert.True(t, CircleInsideRegion(50, 50, 40, reg))
	assert.True(t, CircleInsideRegion(50, 50, 50, reg), "inscribed circle touches all sides")
	assert.False(t, CircleInsideRegion(50, 50, 51, reg), "radius exceeds the half-width")
	assert.False(t, CircleInsideRegion(10, 10, 20, reg), "crosses the near corner")
	assert.False(t, CircleInsideRegion(-10, 50, 5, reg), "center outside")
}

func TestCircleInsideRegion_NonPositiveRadius(t *testing.T) {
	reg := model.Region{Exterior: rectRing(0, 0, 100, 100)}

	assert.False(t, CircleInsideRegion(50, 50, 0, reg))
	assert.False(t, CircleInsideRegion(50, 50, -3, reg))
}

func TestCircleInsideRegion_HoleDistance(t *testing.T) {
	reg := model.Region{
		Exterior: rectRing(0, 0, 100, 100),
		Holes:    []model.Ring{rectRing(40, 40, 20, 20)},
	}

	assert.False(t, CircleInsideRegion(20, 50, 25, reg), "disk reaches into the hole")
	assert.True(t, CircleInsideRegion(20, 50, 15, reg))
}

func TestSegmentsIntersect(t *testing.T) {
	a := model.Point2D{X: 0, Y: 0}
	b := model.Point2D{X: 10, Y: 10}
	c := model.Point2D{X: 0, Y: 10}
	d := model.Point2D{X: 10, Y: 0}

	assert.True(t, SegmentsIntersect(a, b, c, d), "diagonals of a square cross")
	assert.False(t, SegmentsIntersect(a, model.Point2D{X: 4, Y: 0}, c, model.Point2D{X: 4, Y: 10}))

	// Collinear overlap
	assert.True(t, SegmentsIntersect(
		model.Point2D{X: 0, Y: 0}, model.Point2D{X: 10, Y: 0},
		model.Point2D{X: 5, Y: 0}, model.Point2D{X: 15, Y: 0},
	))
	// Collinear but disjoint
	assert.False(t, SegmentsIntersect(
		model.Point2D{X: 0, Y: 0}, model.Point2D{X: 4, Y: 0},
		model.Point2D{X: 5, Y: 0}, model.Point2D{X: 9, Y: 0},
	))
	// Shared endpoint counts as intersecting
	assert.True(t, SegmentsIntersect(a, b, b, model.Point2D{X: 20, Y: 0}))
}

func TestBoundingBox_IgnoresHoles(t *testing.T) {
	reg := model.Region{
		Exterior: rectRing(10, 20, 30, 40),
		Holes:    []model.Ring{rectRing(-100, -100, 5, 5)},
	}

	bb := BoundingBox(reg)
	assert.Equal(t, model.Rect{X: 10, Y: 20, W: 30, H: 40}, bb)
}

func TestPointToSegmentDist(t *testing.T) {
	a := model.Point2D{X: 0, Y: 0}
	b := model.Point2D{X: 10, Y: 0}

	assert.InDelta(t, 5.0, PointToSegmentDist(5, 5, a, b), 1e-12, "perpendicular drop")
	assert.InDelta(t, 5.0, PointToSegmentDist(-5, 0, a, b), 1e-12, "clamped to endpoint a")
	assert.InDelta(t, 5.0, PointToSegmentDist(15, 0, a, b), 1e-12, "clamped to endpoint b")
	assert.InDelta(t, 0.0, PointToSegmentDist(3, 0, a, b), 1e-12, "on the segment")

	// Degenerate zero-length segment behaves like point distance.
	p := model.Point2D{X: 2, Y: 2}
	require.InDelta(t, 5.0, PointToSegmentDist(5, 6, p, p), 1e-12)
}
