package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for placement and app behavior.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Placement parameters
	Scale    float64 `json:"scale"`
	Parallel bool    `json:"parallel"`

	// Selection rectangle in template pixel coordinates. All zero means no
	// selection was configured; the app then falls back to the centered
	// default area.
	SelectionX1 int `json:"selection_x1"`
	SelectionY1 int `json:"selection_y1"`
	SelectionX2 int `json:"selection_x2"`
	SelectionY2 int `json:"selection_y2"`

	// Warp response curve
	WaveAmplitude  float64 `json:"wave_amplitude"`
	SagAmplitude   float64 `json:"sag_amplitude"`
	WavePeriod     float64 `json:"wave_period"`
	CreaseExponent float64 `json:"crease_exponent"`

	// Preview output bounding box; zero disables the preview.
	PreviewMaxW int `json:"preview_max_w"`
	PreviewMaxH int `json:"preview_max_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		Scale:          1.0,
		Parallel:       false,
		WaveAmplitude:  8,
		SagAmplitude:   6,
		WavePeriod:     10,
		CreaseExponent: 1.5,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.Scale <= 0 || c.Scale > 2 {
		c.Scale = 1.0
	}
	if c.WaveAmplitude <= 0 {
		c.WaveAmplitude = 8
	}
	if c.SagAmplitude <= 0 {
		c.SagAmplitude = 6
	}
	if c.WavePeriod <= 0 {
		c.WavePeriod = 10
	}
	if c.CreaseExponent <= 0 {
		c.CreaseExponent = 1.5
	}
	if c.PreviewMaxW < 0 {
		c.PreviewMaxW = 0
	}
	if c.PreviewMaxH < 0 {
		c.PreviewMaxH = 0
	}
	return nil
}

// HasSelection reports whether a selection rectangle was configured.
func (c *Config) HasSelection() bool {
	return c.SelectionX1 != c.SelectionX2 && c.SelectionY1 != c.SelectionY2
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
