package render

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/terragen/internal/sample"
	"github.com/lawnchairsociety/terragen/internal/wfc"
)

// Board renders the synthesized board as rows of palette glyphs, one
// text line per board row. Exhausted cells render as the invalid glyph;
// cells a run never reached render as the hidden placeholder.
func Board(b *wfc.Board, p *sample.Palette) string {
	var out strings.Builder

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			tile, revealed := b.At(x, y).Revealed()
			if !revealed {
				out.WriteString(sample.GlyphHidden)
				continue
			}
			out.WriteString(p.Glyph(tile))
		}
		out.WriteString("\n")
	}

	return out.String()
}

// Legend lists each palette glyph with its tile name, plus the two
// placeholder glyphs.
func Legend(p *sample.Palette) string {
	var out strings.Builder

	out.WriteString("Legend:\n")
	for i := 0; i < p.Size(); i++ {
		t := wfc.TileType(i)
		out.WriteString(fmt.Sprintf("  %s %s\n", p.Glyph(t), p.Name(t)))
	}
	out.WriteString(fmt.Sprintf("  %s exhausted (no legal tile)\n", sample.GlyphInvalid))
	out.WriteString(fmt.Sprintf("  %s unrevealed\n", sample.GlyphHidden))

	return out.String()
}
