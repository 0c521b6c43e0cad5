package sample

import (
	"errors"
	"fmt"

	"github.com/lawnchairsociety/terragen/internal/config"
	"github.com/lawnchairsociety/terragen/internal/wfc"
)

// ErrUnknownPixel marks a sample pixel whose color is not in the
// palette. Learning aborts on it; silently defaulting the pixel to some
// tile would corrupt the alphabet.
var ErrUnknownPixel = errors.New("pixel color not in palette")

// Placeholder glyphs for cells no palette entry covers.
const (
	// GlyphInvalid renders a cell whose candidate set was exhausted.
	GlyphInvalid = "\U0001f7e5"
	// GlyphHidden renders a cell the synthesis run never reached.
	GlyphHidden = "⬜"
)

// Palette maps exact RGB triples to tile types, and tile types back to
// display names and glyphs. Tile types are minted in entry order, so
// the alphabet is fixed once the palette is built.
type Palette struct {
	byColor map[[3]uint8]wfc.TileType
	names   []string
	glyphs  []string
}

// NewPalette builds a palette from config entries.
func NewPalette(entries []config.PaletteEntry) (*Palette, error) {
	if len(entries) == 0 {
		return nil, errors.New("palette has no entries")
	}

	p := &Palette{
		byColor: make(map[[3]uint8]wfc.TileType, len(entries)),
		names:   make([]string, 0, len(entries)),
		glyphs:  make([]string, 0, len(entries)),
	}

	for i, entry := range entries {
		key := [3]uint8{entry.RGB[0], entry.RGB[1], entry.RGB[2]}
		if prev, dup := p.byColor[key]; dup {
			return nil, fmt.Errorf("palette color %v assigned to both %q and %q",
				entry.RGB, p.names[prev], entry.Name)
		}
		p.byColor[key] = wfc.TileType(i)

		glyph := entry.Glyph
		if glyph == "" {
			glyph = "?"
		}
		p.names = append(p.names, entry.Name)
		p.glyphs = append(p.glyphs, glyph)
	}

	return p, nil
}

// Classify maps an exact RGB triple to its tile type.
func (p *Palette) Classify(r, g, b uint8) (wfc.TileType, error) {
	t, ok := p.byColor[[3]uint8{r, g, b}]
	if !ok {
		return wfc.TileInvalid, fmt.Errorf("%w: (%d, %d, %d)", ErrUnknownPixel, r, g, b)
	}
	return t, nil
}

// Name returns the display name for a tile type. The sentinel and any
// tile outside the palette report as "invalid".
func (p *Palette) Name(t wfc.TileType) string {
	if t < 0 || int(t) >= len(p.names) {
		return "invalid"
	}
	return p.names[t]
}

// Glyph returns the display glyph for a tile type, or the invalid
// placeholder for the sentinel.
func (p *Palette) Glyph(t wfc.TileType) string {
	if t < 0 || int(t) >= len(p.glyphs) {
		return GlyphInvalid
	}
	return p.glyphs[t]
}

// Size returns the number of palette entries.
func (p *Palette) Size() int {
	return len(p.names)
}
