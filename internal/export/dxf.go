package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/TileCover/internal/model"
)

// ExportDXF writes the covering result as a DXF drawing for CAD/CNC handoff:
// region outlines on an OUTLINE layer, panels on a PANELS layer. Rectangles
// become four LINE entities each; circles stay circles.
func ExportDXF(path string, regions []model.Region, result model.CoverResult) error {
	if len(result.Rectangles) == 0 && len(result.Circles) == 0 {
		return fmt.Errorf("no panels to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("OUTLINE", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to create outline layer: %w", err)
	}
	for _, reg := range regions {
		writeRing(d, reg.Exterior)
		for _, hole := range reg.Holes {
			writeRing(d, hole)
		}
	}

	if _, err := d.AddLayer("PANELS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to create panels layer: %w", err)
	}
	for _, r := range result.Rectangles {
		d.Line(r.X, r.Y, 0, r.X+r.W, r.Y, 0)
		d.Line(r.X+r.W, r.Y, 0, r.X+r.W, r.Y+r.H, 0)
		d.Line(r.X+r.W, r.Y+r.H, 0, r.X, r.Y+r.H, 0)
		d.Line(r.X, r.Y+r.H, 0, r.X, r.Y, 0)
	}
	for _, c := range result.Circles {
		d.Circle(c.CX, c.CY, 0, c.R)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF file: %w", err)
	}
	return nil
}

// writeRing emits a closed ring as LINE entities.
func writeRing(d *drawing.Drawing, ring model.Ring) {
	if len(ring) < 2 {
		return
	}
	for i := 0; i < len(ring); i++ {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		d.Line(a.X, a.Y, 0, b.X, b.Y, 0)
	}
}
