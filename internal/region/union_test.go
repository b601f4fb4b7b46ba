package region

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

func TestUnionPolygons_Empty(t *testing.T) {
	assert.Nil(t, UnionPolygons(nil))
	assert.Nil(t, UnionPolygons([]model.Ring{}))
}

func TestUnionPolygons_DegenerateRingsDropped(t *testing.T) {
	degenerate := []model.Ring{
		{},
		{{X: 1, Y: 1}},
		{{X: 0, Y: 0}, {X: 5, Y: 5}},
	}
	assert.Nil(t, UnionPolygons(degenerate))

	// A degenerate ring next to a valid one leaves just the valid one,
	// still without invoking the clipper.
	mixed := append(degenerate, rectRing(0, 0, 10, 10))
	regions := UnionPolygons(mixed)
	require.Len(t, regions, 1)
	assert.Empty(t, regions[0].Holes)
	assert.InDelta(t, 100.0, regions[0].Area(), 1e-9)
}

func TestUnionPolygons_SinglePolygonNoClipper(t *testing.T) {
	ring := rectRing(0, 0, 80, 60)
	regions := UnionPolygons([]model.Ring{ring})

	require.Len(t, regions, 1)
	assert.Equal(t, ring, regions[0].Exterior)
	assert.Empty(t, regions[0].Holes)
}

func TestUnionPolygons_OverlappingPairMergesToOne(t *testing.T) {
	a := rectRing(0, 0, 20, 20)
	b := rectRing(10, 0, 20, 20)

	regions := UnionPolygons([]model.Ring{a, b})

	require.Len(t, regions, 1)
	assert.Empty(t, regions[0].Holes)
	assert.InDelta(t, 600.0, regions[0].Area(), 1e-6, "20x20 + 20x20 minus 10x20 overlap")
}

func TestUnionPolygons_DisjointPolygonsStaySeparate(t *testing.T) {
	a := rectRing(0, 0, 10, 10)
	b := rectRing(100, 100, 10, 10)

	regions := UnionPolygons([]model.Ring{a, b})

	require.Len(t, regions, 2)
	for _, reg := range regions {
		assert.Empty(t, reg.Holes)
		assert.InDelta(t, 100.0, reg.Area(), 1e-6)
	}
}

func TestUnionPolygons_AnnulusProducesHole(t *testing.T) {
	// Four overlapping bars forming a closed frame around an empty middle.
	left := rectRing(0, 0, 10, 50)
	right := rectRing(40, 0, 10, 50)
	bottom := rectRing(0, 0, 50, 10)
	top := rectRing(0, 40, 50, 10)

	regions := UnionPolygons([]model.Ring{left, right, bottom, top})

	require.Len(t, regions, 1)
	require.Len(t, regions[0].Holes, 1)
	// Frame area: 50x50 outer minus 30x30 middle.
	assert.InDelta(t, 1600.0, regions[0].Area(), 1e-6)
	assert.InDelta(t, 2500.0, regions[0].Exterior.Area(), 1e-6)
	assert.InDelta(t, 900.0, regions[0].Holes[0].Area(), 1e-6)
}

func TestUnionPolygons_ContainedPolygonAbsorbed(t *testing.T) {
	outer := rectRing(0, 0, 100, 100)
	inner := rectRing(25, 25, 10, 10)

	regions := UnionPolygons([]model.Ring{outer, inner})

	require.Len(t, regions, 1)
	assert.Empty(t, regions[0].Holes)
	assert.InDelta(t, 10000.0, regions[0].Area(), 1e-6)
}

type emptyClipper struct{}

func (emptyClipper) Union(subject, clip []model.Ring) []model.Ring { return nil }

func TestUnionPolygonsWith_TotalCancellationYieldsNoRegions(t *testing.T) {
	a := rectRing(0, 0, 10, 10)
	b := rectRing(0, 0, 10, 10)

	regions := UnionPolygonsWith(emptyClipper{}, []model.Ring{a, b})
	assert.Nil(t, regions, "empty clipper output means no coverable area")
}

func TestUnionArea(t *testing.T) {
	assert.Zero(t, UnionArea(nil))

	single := []model.Ring{rectRing(0, 0, 80, 60)}
	assert.InDelta(t, 4800.0, UnionArea(single), 1e-9)

	disjoint := []model.Ring{rectRing(0, 0, 10, 10), rectRing(50, 50, 10, 10)}
	assert.InDelta(t, 200.0, UnionArea(disjoint), 1e-6)
}
