package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds generator-wide configuration settings.
type Config struct {
	Grid    GridConfig     `yaml:"grid"`
	Rules   RulesConfig    `yaml:"rules"`
	Palette []PaletteEntry `yaml:"palette"`
}

// GridConfig holds the dimensions of the synthesized board.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RulesConfig holds rule-learning settings.
type RulesConfig struct {
	// Rotate records every learned adjacency under all four directions
	// instead of only the one observed. This coarsens directionality
	// into pure co-occurrence, which dead-ends less often on sparse
	// samples.
	Rotate bool `yaml:"rotate"`
}

// PaletteEntry maps one exact sample color to a named tile type and the
// glyph used to render it.
type PaletteEntry struct {
	Name  string   `yaml:"name"`
	RGB   [3]uint8 `yaml:"rgb,flow"`
	Glyph string   `yaml:"glyph"`
}

// DefaultConfig returns a Config matching the reference sample set: a
// 20x20 board and the water/coast/grass palette.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
		},
		Rules: RulesConfig{
			Rotate: false,
		},
		Palette: []PaletteEntry{
			{Name: "water", RGB: [3]uint8{63, 72, 204}, Glyph: "\U0001f7e6"},
			{Name: "coast", RGB: [3]uint8{255, 201, 14}, Glyph: "\U0001f7e8"},
			{Name: "grass", RGB: [3]uint8{34, 177, 76}, Glyph: "\U0001f7e9"},
		},
	}
}

// LoadConfig loads generator configuration from a YAML file.
// If the file doesn't exist, returns default config.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil // Use defaults if file doesn't exist
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// Validate checks the loaded settings for values the generator cannot
// run with.
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: grid dimensions must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("config: palette has no entries")
	}
	seen := make(map[string]bool, len(c.Palette))
	for _, e := range c.Palette {
		if e.Name == "" {
			return fmt.Errorf("config: palette entry with color %v has no name", e.RGB)
		}
		if seen[e.Name] {
			return fmt.Errorf("config: duplicate palette entry %q", e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}
