package model

// Preset is a named, reusable set of covering options.
type Preset struct {
	Name    string       `json:"name"`
	Options CoverOptions `json:"options"`
}

// BuiltinPresets returns the presets shipped with the application. Custom
// presets saved by the user are layered on top of these.
func BuiltinPresets() []Preset {
	return []Preset{
		{
			Name:    "Default",
			Options: DefaultOptions(),
		},
		{
			Name: "Fine Squares",
			Options: CoverOptions{
				MinSize: 4,
				MaxK:    16,
				MinK:    2,
				Shape:   ShapeSquares,
			},
		},
		{
			Name: "Coarse Rectangles",
			Options: CoverOptions{
				MinSize: 20,
				MaxK:    8,
				MinK:    2,
				Shape:   ShapeRectangles,
			},
		},
		{
			Name: "Circle Pack",
			Options: CoverOptions{
				MinSize: 8,
				MaxK:    16,
				MinK:    2,
				Shape:   ShapeCircles,
			},
		},
	}
}

// FindPreset looks up a preset by name, custom presets taking precedence over
// the builtins. The match is exact.
func FindPreset(name string, custom []Preset) (Preset, bool) {
	for _, p := range custom {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range BuiltinPresets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
