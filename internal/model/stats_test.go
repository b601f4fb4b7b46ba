package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCoverStats(t *testing.T) {
	final := CoveringStep{
		Rectangles: []Rect{{W: 40, H: 40}, {W: 40, H: 40}, {W: 20, H: 20}},
		Iteration:  5,
	}
	stats := NewCoverStats(4000, final)

	assert.InDelta(t, 4000.0, stats.UnionArea, 1e-12)
	assert.InDelta(t, 3600.0, stats.CoveredArea, 1e-12)
	assert.InDelta(t, 90.0, stats.Efficiency, 1e-12)
	assert.Equal(t, 3, stats.ShapeCount)
	assert.Equal(t, 5, stats.MergeCount)
}

func TestNewCoverStats_CirclesCountTowardShapes(t *testing.T) {
	final := CoveringStep{
		Circles:   []Circle{{R: 10}, {R: 5}},
		Iteration: 2,
	}
	stats := NewCoverStats(1000, final)

	assert.Equal(t, 2, stats.ShapeCount)
	assert.InDelta(t, math.Pi*125, stats.CoveredArea, 1e-9)
}

func TestNewCoverStats_ZeroUnionArea(t *testing.T) {
	stats := NewCoverStats(0, CoveringStep{})

	assert.Zero(t, stats.Efficiency, "no division by zero")
	assert.Zero(t, stats.ShapeCount)
}

func TestCalculatePanelEstimate(t *testing.T) {
	rects := []Rect{
		{W: 40, H: 40},
		{W: 40, H: 40},
		{W: 20, H: 20},
	}
	est := CalculatePanelEstimate(rects, 15, 2.5)

	assert.Equal(t, 3, est.PanelCount)
	assert.Equal(t, 2, est.DistinctSizes)
	assert.InDelta(t, 3600.0, est.TotalPanelArea, 1e-12)
	assert.Equal(t, 4, est.PanelsWithWaste, "ceil(3 * 1.15)")
	assert.InDelta(t, 15.0, est.WastePercent, 1e-12)
	assert.InDelta(t, 3600*1.15*2.5, est.EstimatedCost, 1e-9)
}

func TestCalculatePanelEstimate_ZeroWasteAndNoPricing(t *testing.T) {
	rects := []Rect{{W: 10, H: 10}}
	est := CalculatePanelEstimate(rects, 0, 0)

	assert.Equal(t, 1, est.PanelsWithWaste)
	assert.Zero(t, est.EstimatedCost)
}

func TestCalculatePanelEstimate_Empty(t *testing.T) {
	est := CalculatePanelEstimate(nil, 20, 1)

	assert.Zero(t, est.PanelCount)
	assert.Zero(t, est.PanelsWithWaste)
	assert.Zero(t, est.DistinctSizes)
}
