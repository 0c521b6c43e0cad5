package export

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/terragen/internal/sample"
	"github.com/lawnchairsociety/terragen/internal/wfc"
)

// MapYAML is the on-disk form of a synthesized map.
type MapYAML struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Seed   int64      `yaml:"seed"`
	Sample string     `yaml:"sample"`
	Rows   [][]string `yaml:"rows"`
}

// BuildMapYAML converts a board into its exportable form, naming tiles
// through the palette. Exhausted cells export as "invalid" and
// unrevealed cells as "hidden".
func BuildMapYAML(b *wfc.Board, p *sample.Palette, samplePath string, seed int64) *MapYAML {
	m := &MapYAML{
		Width:  b.Width,
		Height: b.Height,
		Seed:   seed,
		Sample: samplePath,
		Rows:   make([][]string, 0, b.Height),
	}

	for y := 0; y < b.Height; y++ {
		row := make([]string, 0, b.Width)
		for x := 0; x < b.Width; x++ {
			tile, revealed := b.At(x, y).Revealed()
			if !revealed {
				row = append(row, "hidden")
				continue
			}
			row = append(row, p.Name(tile))
		}
		m.Rows = append(m.Rows, row)
	}

	return m
}

// WriteMapYAML writes the synthesized board to path with a short header
// comment so the file is self-describing.
func WriteMapYAML(b *wfc.Board, p *sample.Palette, path, samplePath string, seed int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "# terragen map %dx%d\n", b.Width, b.Height)
	fmt.Fprintf(f, "# sample: %s\n", samplePath)
	fmt.Fprintf(f, "# seed: %d\n\n", seed)

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)

	if err := encoder.Encode(BuildMapYAML(b, p, samplePath, seed)); err != nil {
		return fmt.Errorf("failed to encode map: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush map: %w", err)
	}

	return nil
}
