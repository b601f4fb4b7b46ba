package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/TileCover/internal/model"
)

// ExportXLSX writes a workbook with two sheets: a step log (one row per
// covering step with iteration, shape count, and covered area) and a panel
// schedule listing every final panel with its placement.
func ExportXLSX(path string, steps []model.CoveringStep, result model.CoverResult) error {
	if len(steps) == 0 {
		return fmt.Errorf("no covering steps to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	stepSheet := f.GetSheetName(0)
	if err := f.SetSheetName(stepSheet, "Steps"); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	stepHeaders := []string{"Step", "Iteration", "Shapes", "Covered Area"}
	for i, h := range stepHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue("Steps", cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for i, step := range steps {
		row := i + 2
		values := []interface{}{
			i + 1,
			step.Iteration,
			len(step.Rectangles) + len(step.Circles),
			step.CoveredArea(),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue("Steps", cell, v); err != nil {
				return fmt.Errorf("failed to write step row: %w", err)
			}
		}
	}

	if _, err := f.NewSheet("Panels"); err != nil {
		return fmt.Errorf("failed to create panels sheet: %w", err)
	}
	panelHeaders := []string{"Panel", "X", "Y", "Width", "Height"}
	for i, h := range panelHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue("Panels", cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for i, info := range CollectLabelInfos(result) {
		row := i + 2
		values := []interface{}{info.Panel, info.X, info.Y, info.Width, info.Height}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue("Panels", cell, v); err != nil {
				return fmt.Errorf("failed to write panel row: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
