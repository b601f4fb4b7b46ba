package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default covering options applied to new plans
	DefaultMinSize float64   `json:"default_min_size"`
	DefaultMaxK    int       `json:"default_max_k"`
	DefaultMinK    int       `json:"default_min_k"`
	DefaultShape   ShapeMode `json:"default_shape"`

	// Default waste factor for panel purchase estimates
	DefaultWastePercent float64 `json:"default_waste_percent"`

	// Application preferences
	RecentPlans []string `json:"recent_plans"`
	Theme       string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultOptions().
func DefaultAppConfig() AppConfig {
	defaults := DefaultOptions()
	return AppConfig{
		DefaultMinSize:      defaults.MinSize,
		DefaultMaxK:         defaults.MaxK,
		DefaultMinK:         defaults.MinK,
		DefaultShape:        defaults.Shape,
		DefaultWastePercent: 10.0,
		RecentPlans:         []string{},
		Theme:               "system",
	}
}

// ApplyToOptions copies the default values from AppConfig into a CoverOptions
// struct. This is used when creating a new plan so it inherits the user's
// saved defaults.
func (c AppConfig) ApplyToOptions(o *CoverOptions) {
	o.MinSize = c.DefaultMinSize
	o.MaxK = c.DefaultMaxK
	o.MinK = c.DefaultMinK
	o.Shape = c.DefaultShape
	*o = o.Normalized()
}
