package wfc

import (
	"math/rand"
	"sort"
)

// Solver runs the collapse loop over a board: reveal a cell, then
// narrow its four direct neighbors. Narrowing is applied once per
// neighbor and never re-propagated to a fixpoint, so a neighbor
// narrowed early is not revisited when cells near it change later.
// That is an intentional trade: the occasional contradiction it lets
// through is absorbed at reveal time by the invalid-tile fallback.
type Solver struct {
	gen *Generation
	rng *rand.Rand
}

// NewSolver creates a solver over the learned generation. The seed
// fully determines the output for a given board size.
func NewSolver(gen *Generation, seed int64) *Solver {
	return &Solver{
		gen: gen,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Synthesize allocates a width x height board and reveals every cell in
// a single row-major pass: all columns of row 0, then row 1, and so on.
// A cell's candidates at reveal time reflect only narrowing from
// neighbors revealed earlier in the scan (its up and left neighbors),
// never from cells the scan has not reached yet. The pass is bounded by
// width*height reveals and always terminates.
func (s *Solver) Synthesize(width, height int) *Board {
	board := NewBoard(width, height, s.gen.Rules.TileTypes())

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s.Reveal(board, x, y)
		}
	}

	return board
}

// Reveal commits the cell at (x, y) to a frequency-weighted random pick
// from its remaining candidates, then narrows the candidate sets of its
// four in-bounds neighbors using the chosen tile as the source. Cells
// that are already revealed are left untouched.
func (s *Solver) Reveal(board *Board, x, y int) {
	cell := board.At(x, y)
	if _, done := cell.Revealed(); done {
		return
	}

	cell.reveal(s.chooseTile(cell.candidates))
	tile, _ := cell.Revealed()

	for _, dir := range AllDirections() {
		dx, dy := dir.Deltas()
		nx, ny := x+dx, y+dy
		if !board.InBounds(nx, ny) {
			continue
		}
		board.At(nx, ny).Narrow(tile, dir, s.gen.Rules)
	}
}

// chooseTile picks a tile from the candidate set, weighted by how often
// each tile occurred in the sample. An exhausted candidate set, or one
// whose candidates all have frequency zero, resolves to TileInvalid so
// the scan always completes.
func (s *Solver) chooseTile(candidates map[TileType]struct{}) TileType {
	var pool []TileType
	for _, t := range sortedTiles(candidates) {
		for i := 0; i < s.gen.Frequencies[t]; i++ {
			pool = append(pool, t)
		}
	}

	if len(pool) == 0 {
		return TileInvalid
	}
	return pool[s.rng.Intn(len(pool))]
}

// sortedTiles returns the set's members in ascending order so the
// weighted pool is identical across runs with the same seed.
func sortedTiles(set map[TileType]struct{}) []TileType {
	tiles := make([]TileType, 0, len(set))
	for t := range set {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })
	return tiles
}
