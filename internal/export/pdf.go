// Package export provides functionality for exporting covering results to
// various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/TileCover/internal/model"
)

// panelColor represents an RGB color for a placed panel.
type panelColor struct {
	R, G, B int
}

// panelColors cycles through a fixed palette so adjacent panels stay
// distinguishable.
var panelColors = []panelColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document containing the covering result: a plan
// page with the region outlines and the final panels drawn to scale, followed
// by a summary page with overall statistics.
func ExportPDF(path string, regions []model.Region, result model.CoverResult) error {
	if len(result.Rectangles) == 0 && len(result.Circles) == 0 {
		return fmt.Errorf("no panels to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderPlanPage(pdf, regions, result)

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// renderPlanPage draws the covering on the current PDF page.
func renderPlanPage(pdf *fpdf.Fpdf, regions []model.Region, result model.CoverResult) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Covering Plan — %d panels (%s)", result.Stats.ShapeCount, result.Shape)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Area: %.0f | Covered: %.0f | Coverage: %.1f%% | Merges: %d",
		result.Stats.UnionArea, result.Stats.CoveredArea, result.Stats.Efficiency, result.Stats.MergeCount)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	bb := combinedBounds(regions)
	if bb.W <= 0 || bb.H <= 0 {
		return
	}

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight
	scale := math.Min(drawWidth/bb.W, drawHeight/bb.H)

	canvasW := bb.W * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	toPage := func(x, y float64) (float64, float64) {
		return offsetX + (x-bb.X)*scale, offsetY + (y-bb.Y)*scale
	}

	// Region outlines first so panels draw on top
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	for _, reg := range regions {
		drawRing(pdf, reg.Exterior, toPage)
		pdf.SetDrawColor(200, 0, 0)
		pdf.SetLineWidth(0.3)
		for _, hole := range reg.Holes {
			drawRing(pdf, hole, toPage)
		}
		pdf.SetDrawColor(100, 100, 100)
		pdf.SetLineWidth(0.5)
	}

	// Panels
	for i, r := range result.Rectangles {
		col := panelColors[i%len(panelColors)]
		px, py := toPage(r.X, r.Y)
		pw := r.W * scale
		ph := r.H * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Dimension label, only if the panel is large enough on the page
		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)
			dims := fmt.Sprintf("%.0fx%.0f", r.W, r.H)
			dimsW := pdf.GetStringWidth(dims)
			if dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2-2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	for i, c := range result.Circles {
		col := panelColors[i%len(panelColors)]
		px, py := toPage(c.CX, c.CY)
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Circle(px, py, c.R*scale, "FD")
	}
}

// drawRing renders a closed ring as line segments in page coordinates.
func drawRing(pdf *fpdf.Fpdf, ring model.Ring, toPage func(float64, float64) (float64, float64)) {
	if len(ring) < 2 {
		return
	}
	for i := 0; i < len(ring); i++ {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		x1, y1 := toPage(a.X, a.Y)
		x2, y2 := toPage(b.X, b.Y)
		pdf.Line(x1, y1, x2, y2)
	}
}

// combinedBounds returns the bounding box of all region exteriors.
func combinedBounds(regions []model.Region) model.Rect {
	first := true
	var minX, minY, maxX, maxY float64
	for _, reg := range regions {
		min, max := reg.Exterior.BoundingBox()
		if first {
			minX, minY, maxX, maxY = min.X, min.Y, max.X, max.Y
			first = false
			continue
		}
		minX = math.Min(minX, min.X)
		minY = math.Min(minY, min.Y)
		maxX = math.Max(maxX, max.X)
		maxY = math.Max(maxY, max.Y)
	}
	if first {
		return model.Rect{}
	}
	return model.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// labelFontSize picks a font size that fits the panel's page footprint.
func labelFontSize(w, h float64) float64 {
	size := math.Min(w, h) / 4
	if size > 8 {
		return 8
	}
	if size < 4 {
		return 4
	}
	return size
}

// renderSummaryPage draws overall covering statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.CoverResult) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Summary", "", 1, "L", false, 0, "")

	sizeCounts := make(map[string]int)
	var order []string
	for _, r := range result.Rectangles {
		key := fmt.Sprintf("%.0f x %.0f", r.W, r.H)
		if _, seen := sizeCounts[key]; !seen {
			order = append(order, key)
		}
		sizeCounts[key]++
	}
	for _, c := range result.Circles {
		key := fmt.Sprintf("diameter %.0f", c.R*2)
		if _, seen := sizeCounts[key]; !seen {
			order = append(order, key)
		}
		sizeCounts[key]++
	}

	pdf.SetFont("Helvetica", "", 10)
	y := marginTop + headerHeight + 5
	lines := []string{
		fmt.Sprintf("Shape mode: %s", result.Shape),
		fmt.Sprintf("Panels: %d", result.Stats.ShapeCount),
		fmt.Sprintf("Animation steps: %d", result.Steps),
		fmt.Sprintf("Region area: %.0f", result.Stats.UnionArea),
		fmt.Sprintf("Covered area: %.0f", result.Stats.CoveredArea),
		fmt.Sprintf("Coverage: %.1f%%", result.Stats.Efficiency),
	}
	for _, line := range lines {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(120, 5, line, "", 1, "L", false, 0, "")
		y += 6
	}

	y += 4
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(120, 5, "Panel schedule", "", 1, "L", false, 0, "")
	y += 7
	pdf.SetFont("Helvetica", "", 10)
	for _, key := range order {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(120, 5, fmt.Sprintf("%d x %s", sizeCounts[key], key), "", 1, "L", false, 0, "")
		y += 6
	}
}
