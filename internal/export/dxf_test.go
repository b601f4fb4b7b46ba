package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/TileCover/internal/model"
)

func TestExportDXF_WritesEntities(t *testing.T) {
	regions, result := buildTestResult()
	path := filepath.Join(t.TempDir(), "plan.dxf")

	require.NoError(t, ExportDXF(path, regions, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "OUTLINE")
	assert.Contains(t, content, "PANELS")
	assert.Contains(t, content, "LINE")
}

func TestExportDXF_CirclesStayCircles(t *testing.T) {
	regions, result := buildCircleResult()
	path := filepath.Join(t.TempDir(), "circles.dxf")

	require.NoError(t, ExportDXF(path, regions, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CIRCLE")
}

func TestExportDXF_HoleOutlinesIncluded(t *testing.T) {
	regions := []model.Region{{
		Exterior: model.Ring{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}},
		Holes: []model.Ring{
			{{X: 40, Y: 40}, {X: 60, Y: 40}, {X: 60, Y: 60}, {X: 40, Y: 60}},
		},
	}}
	result := model.CoverResult{
		Rectangles: []model.Rect{{X: 0, Y: 0, W: 20, H: 20}},
	}
	path := filepath.Join(t.TempDir(), "hole.dxf")

	require.NoError(t, ExportDXF(path, regions, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// Exterior (4) + hole (4) + one rect (4) = 12 LINE entities.
	assert.GreaterOrEqual(t, strings.Count(string(data), "LINE"), 12)
}

func TestExportDXF_NoPanels(t *testing.T) {
	err := ExportDXF(filepath.Join(t.TempDir(), "none.dxf"), nil, model.CoverResult{})
	assert.Error(t, err)
}
