package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/TileCover/internal/model"
)

// DefaultPresetsPath returns the default file path for custom option presets.
func DefaultPresetsPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// SaveCustomPresets saves custom presets to a JSON file.
func SaveCustomPresets(path string, presets []model.Preset) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomPresets loads custom presets from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomPresets(path string) ([]model.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Preset{}, nil
		}
		return nil, err
	}

	var presets []model.Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, err
	}
	for i := range presets {
		presets[i].Options = presets[i].Options.Normalized()
	}
	return presets, nil
}

// RememberCustomPreset adds or replaces a preset by name and saves the list
// back to the given path.
func RememberCustomPreset(path string, preset model.Preset) error {
	if preset.Name == "" {
		return fmt.Errorf("preset name must not be empty")
	}
	presets, err := LoadCustomPresets(path)
	if err != nil {
		return err
	}

	replaced := false
	for i, p := range presets {
		if p.Name == preset.Name {
			presets[i] = preset
			replaced = true
			break
		}
	}
	if !replaced {
		presets = append(presets, preset)
	}
	return SaveCustomPresets(path, presets)
}

// ExportPreset saves a single preset to a standalone JSON file for sharing.
func ExportPreset(path string, preset model.Preset) error {
	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportPreset loads a single preset from a standalone JSON file.
func ImportPreset(path string) (model.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Preset{}, err
	}

	var preset model.Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		return model.Preset{}, err
	}
	if preset.Name == "" {
		return model.Preset{}, fmt.Errorf("preset file has no name")
	}
	preset.Options = preset.Options.Normalized()
	return preset, nil
}
