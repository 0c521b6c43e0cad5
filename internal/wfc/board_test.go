package wfc

import "testing"

func alphabet(tiles ...TileType) map[TileType]struct{} {
	set := make(map[TileType]struct{}, len(tiles))
	for _, t := range tiles {
		set[t] = struct{}{}
	}
	return set
}

func TestNewBoard(t *testing.T) {
	board := NewBoard(4, 3, alphabet(0, 1, 2))

	if board.Width != 4 || board.Height != 3 {
		t.Errorf("Board is %dx%d, want 4x3", board.Width, board.Height)
	}

	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			cell := board.At(x, y)
			if _, revealed := cell.Revealed(); revealed {
				t.Errorf("Cell (%d,%d) starts revealed", x, y)
			}
			if cell.Entropy() != 3 {
				t.Errorf("Cell (%d,%d) entropy = %d, want full alphabet (3)", x, y, cell.Entropy())
			}
		}
	}
}

func TestBoardInBounds(t *testing.T) {
	board := NewBoard(3, 2, alphabet(0))

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 2, false},
	}

	for _, tc := range tests {
		if got := board.InBounds(tc.x, tc.y); got != tc.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestCellNarrowShrinksMonotonically(t *testing.T) {
	rules := make(RuleSet)
	rules.Add(Rule{From: 0, To: 1, Direction: Right})
	rules.Add(Rule{From: 0, To: 2, Direction: Right})
	rules.Add(Rule{From: 1, To: 2, Direction: Right})

	board := NewBoard(1, 1, alphabet(0, 1, 2))
	cell := board.At(0, 0)

	cell.Narrow(0, Right, rules)
	if cell.Entropy() != 2 {
		t.Fatalf("Entropy after first narrow = %d, want 2", cell.Entropy())
	}
	if cell.HasCandidate(0) {
		t.Error("Tile 0 survived narrowing despite not being allowed right of 0")
	}

	// Narrowing again with a different source may only remove, never
	// restore, candidates.
	cell.Narrow(1, Right, rules)
	if cell.Entropy() != 1 {
		t.Fatalf("Entropy after second narrow = %d, want 1", cell.Entropy())
	}
	if !cell.HasCandidate(2) {
		t.Error("Tile 2 should survive both narrowings")
	}

	// Same narrow twice is a no-op.
	cell.Narrow(1, Right, rules)
	if cell.Entropy() != 1 {
		t.Errorf("Repeated narrow changed entropy to %d", cell.Entropy())
	}
}

func TestCellNarrowCanExhaust(t *testing.T) {
	board := NewBoard(1, 1, alphabet(0, 1))
	cell := board.At(0, 0)

	// Empty rule set allows nothing, so narrowing zeroes the cell out.
	cell.Narrow(0, Up, make(RuleSet))

	if cell.Entropy() != 0 {
		t.Errorf("Entropy = %d, want 0 after narrowing against empty rules", cell.Entropy())
	}
}

func TestCellRevealDropsCandidates(t *testing.T) {
	board := NewBoard(1, 1, alphabet(0, 1))
	cell := board.At(0, 0)

	cell.reveal(1)

	tile, revealed := cell.Revealed()
	if !revealed || tile != 1 {
		t.Fatalf("Revealed() = (%d, %v), want (1, true)", tile, revealed)
	}
	if cell.Entropy() != 0 {
		t.Error("Revealed cell still carries candidates")
	}

	// Narrowing a revealed cell is a no-op; it stays committed.
	cell.Narrow(0, Up, make(RuleSet))
	tile, revealed = cell.Revealed()
	if !revealed || tile != 1 {
		t.Error("Narrow changed a revealed cell")
	}
}

func TestNarrowCandidatesIntersection(t *testing.T) {
	rules := make(RuleSet)
	rules.Add(Rule{From: 0, To: 1, Direction: Down})
	rules.Add(Rule{From: 0, To: 2, Direction: Down})

	candidates := map[TileType]struct{}{1: {}, 3: {}}
	NarrowCandidates(0, Down, rules, candidates)

	if len(candidates) != 1 {
		t.Fatalf("Intersection has %d entries, want 1", len(candidates))
	}
	if _, ok := candidates[1]; !ok {
		t.Error("Tile 1 is allowed below tile 0 and should survive")
	}
}

func TestBoardCounts(t *testing.T) {
	board := NewBoard(2, 2, alphabet(0, 1))
	board.At(0, 0).reveal(0)
	board.At(1, 0).reveal(0)
	board.At(0, 1).reveal(TileInvalid)

	counts := board.Counts()
	if counts[0] != 2 {
		t.Errorf("counts[0] = %d, want 2", counts[0])
	}
	if counts[TileInvalid] != 1 {
		t.Errorf("counts[TileInvalid] = %d, want 1", counts[TileInvalid])
	}
	if total := counts[0] + counts[TileInvalid]; total != 3 {
		t.Errorf("Counted %d revealed cells, want 3 (one cell is still hidden)", total)
	}
}
