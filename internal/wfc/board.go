package wfc

// Cell is a single board position. It is either hidden, carrying the
// set of tile types still consistent with everything propagated so far,
// or revealed with one committed tile. The fields are unexported so a
// revealed cell can never carry stale candidates.
type Cell struct {
	revealed   bool
	tile       TileType
	candidates map[TileType]struct{}
}

// Revealed returns the committed tile and true once the cell has been
// revealed.
func (c *Cell) Revealed() (TileType, bool) {
	return c.tile, c.revealed
}

// Entropy returns the number of remaining candidates. Revealed cells
// have none.
func (c *Cell) Entropy() int {
	return len(c.candidates)
}

// HasCandidate reports whether the tile type is still possible for a
// hidden cell.
func (c *Cell) HasCandidate(t TileType) bool {
	_, ok := c.candidates[t]
	return ok
}

// Narrow intersects the cell's candidates with the tiles the rules
// permit as the direction-neighbor of source. Narrowing only ever
// shrinks the set; revealed cells are left alone.
func (c *Cell) Narrow(source TileType, dir Direction, rules RuleSet) {
	if c.revealed {
		return
	}
	NarrowCandidates(source, dir, rules, c.candidates)
}

// reveal commits the cell to a tile and drops its candidate set.
func (c *Cell) reveal(t TileType) {
	c.revealed = true
	c.tile = t
	c.candidates = nil
}

// NarrowCandidates removes from candidates every tile type not
// permitted as the direction-neighbor of source. It is a deterministic
// set intersection with no other side effects; an empty result is legal
// and resolved later, at reveal time.
func NarrowCandidates(source TileType, dir Direction, rules RuleSet, candidates map[TileType]struct{}) {
	allowed := rules.AllowedFrom(source, dir)
	for t := range candidates {
		if _, ok := allowed[t]; !ok {
			delete(candidates, t)
		}
	}
}

// Board is a fixed-size row-major grid of cells addressed by (x, y)
// with x as the column. It is owned by a single synthesis run; once the
// scan finishes it is immutable output.
type Board struct {
	Width, Height int
	cells         []Cell
}

// NewBoard allocates a fully hidden board whose every cell starts with
// the complete alphabet as candidates.
func NewBoard(width, height int, alphabet map[TileType]struct{}) *Board {
	b := &Board{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range b.cells {
		candidates := make(map[TileType]struct{}, len(alphabet))
		for t := range alphabet {
			candidates[t] = struct{}{}
		}
		b.cells[i].candidates = candidates
	}
	return b
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the cell at (x, y). Callers must stay in bounds.
func (b *Board) At(x, y int) *Cell {
	return &b.cells[y*b.Width+x]
}

// Counts tallies revealed tiles by type. Exhausted cells count under
// TileInvalid; cells the run never reached are not counted.
func (b *Board) Counts() map[TileType]int {
	counts := make(map[TileType]int)
	for i := range b.cells {
		if tile, ok := b.cells[i].Revealed(); ok {
			counts[tile]++
		}
	}
	return counts
}
