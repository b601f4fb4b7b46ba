package engine

import (
	"fmt"

	"github.com/piwi3910/TileCover/internal/model"
)

// ComparisonScenario defines a named option set to compare.
type ComparisonScenario struct {
	Name    string
	Options model.CoverOptions
}

// ComparisonResult holds the covering result and computed statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Result       model.CoverResult
	ShapeCount   int
	StepCount    int
	WastePercent float64
}

// CompareScenarios runs the covering to completion for each scenario and
// returns the results in scenario order. This enables side-by-side comparison
// of different covering parameters (shape modes, grid resolutions, ladder
// bounds).
func CompareScenarios(scenarios []ComparisonScenario, polygons []model.Ring) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result := Cover(polygons, scenario.Options)
		results = append(results, ComparisonResult{
			Scenario:     scenario,
			Result:       result,
			ShapeCount:   result.Stats.ShapeCount,
			StepCount:    result.Steps,
			WastePercent: 100.0 - result.Stats.Efficiency,
		})
	}
	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios based on the
// given options, varying key parameters to show what-if alternatives.
func BuildDefaultScenarios(base model.CoverOptions) []ComparisonScenario {
	base = base.Normalized()
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Options: base},
	}

	// Scenario: the other panel shapes
	for _, shape := range []model.ShapeMode{model.ShapeSquares, model.ShapeRectangles, model.ShapeCircles} {
		if shape == base.Shape {
			continue
		}
		alt := base
		alt.Shape = shape
		scenarios = append(scenarios, ComparisonScenario{
			Name:    fmt.Sprintf("Shape: %s", shape),
			Options: alt,
		})
	}

	// Scenario: finer grid (smaller cells hug the boundary better)
	if base.MinSize/2 >= model.MinSizeFloor {
		fine := base
		fine.MinSize = base.MinSize / 2
		scenarios = append(scenarios, ComparisonScenario{
			Name:    fmt.Sprintf("Cell size %.0f (half)", fine.MinSize),
			Options: fine,
		})
	}

	// Scenario: taller ladder (bigger merged blocks possible)
	if base.MaxK*2 <= model.KCeil {
		tall := base
		tall.MaxK = base.MaxK * 2
		scenarios = append(scenarios, ComparisonScenario{
			Name:    fmt.Sprintf("Max block %dx", tall.MaxK),
			Options: tall,
		})
	}

	return scenarios
}
