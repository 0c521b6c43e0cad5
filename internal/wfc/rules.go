package wfc

import (
	"fmt"
	"math"
)

// Rule is a directional adjacency fact learned from the sample: a cell
// of type From may have a cell of type To as its Direction-neighbor.
type Rule struct {
	From      TileType
	To        TileType
	Direction Direction
}

// Mirror returns the symmetric counterpart of the rule. If water may
// sit left of coast, coast may sit right of water.
func (r Rule) Mirror() Rule {
	return Rule{From: r.To, To: r.From, Direction: r.Direction.Opposite()}
}

// RuleSet is the set of adjacency facts learned from a sample.
// Insertion order is irrelevant and duplicates collapse.
type RuleSet map[Rule]struct{}

// Add inserts a rule together with its mirror, keeping the set
// symmetric by construction.
func (rs RuleSet) Add(r Rule) {
	rs[r] = struct{}{}
	rs[r.Mirror()] = struct{}{}
}

// Contains reports whether the exact rule has been learned.
func (rs RuleSet) Contains(r Rule) bool {
	_, ok := rs[r]
	return ok
}

// TileTypes returns every tile type referenced by any rule. This is the
// alphabet a fresh board starts from.
func (rs RuleSet) TileTypes() map[TileType]struct{} {
	types := make(map[TileType]struct{})
	for r := range rs {
		types[r.From] = struct{}{}
		types[r.To] = struct{}{}
	}
	return types
}

// AllowedFrom returns the tile types permitted as the direction-neighbor
// of the given source tile.
func (rs RuleSet) AllowedFrom(source TileType, dir Direction) map[TileType]struct{} {
	allowed := make(map[TileType]struct{})
	for r := range rs {
		if r.From == source && r.Direction == dir {
			allowed[r.To] = struct{}{}
		}
	}
	return allowed
}

// Frequencies counts how often each tile type occurred in the sample.
type Frequencies map[TileType]int

// Increment bumps the count for a tile, saturating instead of
// overflowing.
func (f Frequencies) Increment(t TileType) {
	if f[t] == math.MaxInt {
		return
	}
	f[t]++
}

// Generation is the read-only knowledge base shared across one
// synthesis run: the learned rules plus the tile frequencies.
type Generation struct {
	Rules       RuleSet
	Frequencies Frequencies
}

// TileSource is a 2-D grid of classified tiles, usually a sample image
// seen through a palette.
type TileSource interface {
	Dimensions() (width, height int)
	TileAt(x, y int) (TileType, error)
}

// Learn scans the sample once in row-major order and records an
// adjacency rule (plus its mirror) for every pair of 4-adjacent cells,
// along with per-tile occurrence counts. Neighbors outside the sample
// are skipped, so no rule ever references the boundary. When rotate is
// true each learned pair is recorded under all four directions, trading
// directional fidelity for a denser rule set that dead-ends less often
// on sparse samples.
//
// A tile the source cannot classify aborts learning; a partial rule set
// would silently corrupt the alphabet.
func Learn(src TileSource, rotate bool) (*Generation, error) {
	width, height := src.Dimensions()
	gen := &Generation{
		Rules:       make(RuleSet),
		Frequencies: make(Frequencies),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			from, err := src.TileAt(x, y)
			if err != nil {
				return nil, fmt.Errorf("sample (%d,%d): %w", x, y, err)
			}
			gen.Frequencies.Increment(from)

			for _, dir := range AllDirections() {
				dx, dy := dir.Deltas()
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				to, err := src.TileAt(nx, ny)
				if err != nil {
					return nil, fmt.Errorf("sample (%d,%d): %w", nx, ny, err)
				}
				gen.Rules.Add(Rule{From: from, To: to, Direction: dir})
				if rotate {
					for _, rot := range AllDirections() {
						gen.Rules.Add(Rule{From: from, To: to, Direction: rot})
					}
				}
			}
		}
	}

	// Every tile named by a rule gets a frequency entry so downstream
	// lookups never miss.
	for t := range gen.Rules.TileTypes() {
		if _, ok := gen.Frequencies[t]; !ok {
			gen.Frequencies[t] = 0
		}
	}

	return gen, nil
}
