package model

import "math"

// CoverStats summarizes a completed covering run.
type CoverStats struct {
	UnionArea   float64 `json:"union_area"`   // Net area of the unioned input zones
	CoveredArea float64 `json:"covered_area"` // Total area of the final shapes
	Efficiency  float64 `json:"efficiency"`   // CoveredArea / UnionArea as a percentage
	ShapeCount  int     `json:"shape_count"`  // Shapes in the final covering
	MergeCount  int     `json:"merge_count"`  // Successful merges (final iteration value)
}

// NewCoverStats computes summary statistics from the final covering step.
func NewCoverStats(unionArea float64, final CoveringStep) CoverStats {
	covered := final.CoveredArea()
	efficiency := 0.0
	if unionArea > 0 {
		efficiency = covered / unionArea * 100.0
	}
	return CoverStats{
		UnionArea:   unionArea,
		CoveredArea: covered,
		Efficiency:  efficiency,
		ShapeCount:  len(final.Rectangles) + len(final.Circles),
		MergeCount:  final.Iteration,
	}
}

// PanelEstimate holds the results of a panel purchasing calculation.
type PanelEstimate struct {
	TotalPanelArea  float64 `json:"total_panel_area"` // Total area of all panels (sq units)
	PanelCount      int     `json:"panel_count"`      // Panels in the covering
	DistinctSizes   int     `json:"distinct_sizes"`   // Number of different panel dimensions
	PanelsWithWaste int     `json:"panels_with_waste"` // Recommended panels including waste factor
	WastePercent    float64 `json:"waste_percent"`    // Waste factor applied (e.g., 15 for 15%)
	EstimatedCost   float64 `json:"estimated_cost"`   // Total cost if pricing available
	PricePerArea    float64 `json:"price_per_area"`   // Price per square unit used for estimation
}

// CalculatePanelEstimate computes how many panels to order for a covering.
// It accounts for breakage via an additional waste percentage factor and
// prices by panel area when a price per square unit is given.
func CalculatePanelEstimate(rects []Rect, wastePercent, pricePerArea float64) PanelEstimate {
	var totalArea float64
	sizes := make(map[[2]float64]bool)
	for _, r := range rects {
		totalArea += r.Area()
		sizes[[2]float64{r.W, r.H}] = true
	}

	wasteFactor := 1.0 + wastePercent/100.0
	withWaste := int(math.Ceil(float64(len(rects)) * wasteFactor))
	if withWaste < len(rects) {
		withWaste = len(rects)
	}

	return PanelEstimate{
		TotalPanelArea:  totalArea,
		PanelCount:      len(rects),
		DistinctSizes:   len(sizes),
		PanelsWithWaste: withWaste,
		WastePercent:    wastePercent,
		EstimatedCost:   totalArea * wasteFactor * pricePerArea,
		PricePerArea:    pricePerArea,
	}
}
