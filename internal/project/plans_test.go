package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/TileCover/internal/model"
)

func samplePlan() model.Plan {
	plan := model.NewPlan()
	plan.Name = "Garden"
	plan.Zones = []model.Zone{
		model.NewZone("Lawn", model.Ring{
			{X: 0, Y: 0}, {X: 80, Y: 0}, {X: 80, Y: 60}, {X: 0, Y: 60},
		}),
	}
	plan.Options = model.CoverOptions{MinSize: 20, MaxK: 4, MinK: 2, Shape: model.ShapeRectangles}
	return plan
}

func TestSaveAndLoadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans", "garden.json")
	plan := samplePlan()

	require.NoError(t, SavePlan(path, plan))

	loaded, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, plan, loaded)
}

func TestLoadPlan_MissingFile(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadPlan_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte("][ nope"), 0644))

	_, err := LoadPlan(path)
	assert.Error(t, err)
}

func TestLoadPlan_NormalizesOptionsAndZones(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	raw := `{"name":"Old","options":{"min_size":-5,"max_k":9999,"min_k":0,"shape":"blobs"}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	loaded, err := LoadPlan(path)
	require.NoError(t, err)
	assert.NotNil(t, loaded.Zones)
	assert.Equal(t, model.DefaultOptions().MinSize, loaded.Options.MinSize)
	assert.Equal(t, model.KCeil, loaded.Options.MaxK)
	assert.Equal(t, model.ShapeSquares, loaded.Options.Shape)
}

func TestRememberRecentPlan(t *testing.T) {
	config := model.DefaultAppConfig()

	RememberRecentPlan(&config, "/plans/a.json")
	RememberRecentPlan(&config, "/plans/b.json")
	assert.Equal(t, []string{"/plans/b.json", "/plans/a.json"}, config.RecentPlans)

	// Re-opening an existing plan moves it to the front without duplicating.
	RememberRecentPlan(&config, "/plans/a.json")
	assert.Equal(t, []string{"/plans/a.json", "/plans/b.json"}, config.RecentPlans)
}

func TestRememberRecentPlan_CapsAtTen(t *testing.T) {
	config := model.DefaultAppConfig()
	for i := 0; i < 15; i++ {
		RememberRecentPlan(&config, filepath.Join("/plans", string(rune('a'+i))+".json"))
	}

	assert.Len(t, config.RecentPlans, 10)
	assert.Equal(t, filepath.Join("/plans", "o.json"), config.RecentPlans[0])
}
