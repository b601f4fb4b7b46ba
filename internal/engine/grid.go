package engine

import (
	"github.com/piwi3910/TileCover/internal/geom"
	"github.com/piwi3910/TileCover/internal/model"
)

// FillGrid lays an axis-aligned grid of minSize cells over the region's
// bounding box and keeps only the cells fully contained in the region.
//
// Cells are emitted column by column: the outer loop walks grid columns left
// to right, the inner loop walks rows top to bottom. This order feeds the
// merge engine's tie-breaking and must stay stable for deterministic output.
// Degenerate bounding boxes simply produce an empty grid.
func FillGrid(reg model.Region, minSize float64) []model.Square {
	if minSize <= 0 {
		return nil
	}
	bb := geom.BoundingBox(reg)

	var cells []model.Square
	for i := 0; float64(i)*minSize < bb.W; i++ {
		for j := 0; float64(j)*minSize < bb.H; j++ {
			x := bb.X + float64(i)*minSize
			y := bb.Y + float64(j)*minSize
			if geom.RectInsideRegion(x, y, minSize, minSize, reg) {
				cells = append(cells, model.Square{X: x, Y: y, Size: minSize})
			}
		}
	}
	return cells
}
