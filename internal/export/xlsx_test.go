package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/TileCover/internal/model"
)

func TestExportXLSX_WritesStepAndPanelSheets(t *testing.T) {
	_, result := buildTestResult()
	steps := []model.CoveringStep{
		{Rectangles: make([]model.Rect, 12), Iteration: 0},
		{Rectangles: make([]model.Rect, 9), Iteration: 1},
		{Rectangles: result.Rectangles, Iteration: 2},
	}
	path := filepath.Join(t.TempDir(), "steps.xlsx")

	require.NoError(t, ExportXLSX(path, steps, result))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Steps", "Panels"}, f.GetSheetList())

	rows, err := f.GetRows("Steps")
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus one row per step")
	assert.Equal(t, []string{"Step", "Iteration", "Shapes", "Covered Area"}, rows[0])
	assert.Equal(t, "12", rows[1][2])
	assert.Equal(t, "6", rows[3][2])

	panels, err := f.GetRows("Panels")
	require.NoError(t, err)
	require.Len(t, panels, 7, "header plus six panels")
	assert.Equal(t, []string{"Panel", "X", "Y", "Width", "Height"}, panels[0])
	assert.Equal(t, "40", panels[1][3])
}

func TestExportXLSX_NoSteps(t *testing.T) {
	err := ExportXLSX(filepath.Join(t.TempDir(), "none.xlsx"), nil, model.CoverResult{})
	assert.Error(t, err)
}
