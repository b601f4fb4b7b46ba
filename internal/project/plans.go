package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/TileCover/internal/model"
)

// SavePlan writes a plan to the specified JSON file.
// It creates parent directories if they do not exist.
func SavePlan(path string, plan model.Plan) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create plan directory: %w", err)
	}
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	return nil
}

// LoadPlan reads a plan from the specified JSON file. Options are normalized
// on load so hand-edited files cannot smuggle out-of-range values into a run.
func LoadPlan(path string) (model.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Plan{}, fmt.Errorf("failed to read plan file: %w", err)
	}
	var plan model.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return model.Plan{}, fmt.Errorf("failed to parse plan file: %w", err)
	}
	if plan.Zones == nil {
		plan.Zones = []model.Zone{}
	}
	plan.Options = plan.Options.Normalized()
	return plan, nil
}

// RememberRecentPlan prepends the path to the config's recent plan list,
// de-duplicating and keeping at most 10 entries.
func RememberRecentPlan(config *model.AppConfig, path string) {
	recent := []string{path}
	for _, p := range config.RecentPlans {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	config.RecentPlans = recent
}
