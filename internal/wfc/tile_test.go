package wfc

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}

	for _, tc := range tests {
		if got := tc.dir.Opposite(); got != tc.want {
			t.Errorf("%s.Opposite() = %s, want %s", tc.dir, got, tc.want)
		}
	}
}

func TestDirectionOppositeIsInvolution(t *testing.T) {
	for _, dir := range AllDirections() {
		if got := dir.Opposite().Opposite(); got != dir {
			t.Errorf("%s.Opposite().Opposite() = %s, want %s", dir, got, dir)
		}
	}
}

func TestDirectionDeltas(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
	}

	for _, tc := range tests {
		dx, dy := tc.dir.Deltas()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%s.Deltas() = (%d, %d), want (%d, %d)", tc.dir, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{Up, "up"},
		{Down, "down"},
		{Left, "left"},
		{Right, "right"},
		{Direction(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.dir.String(); got != tc.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tc.dir, got, tc.want)
		}
	}
}

func TestAllDirections(t *testing.T) {
	dirs := AllDirections()
	if len(dirs) != 4 {
		t.Fatalf("AllDirections() returned %d directions, want 4", len(dirs))
	}

	seen := make(map[Direction]bool)
	for _, dir := range dirs {
		if seen[dir] {
			t.Errorf("Direction %s appears twice", dir)
		}
		seen[dir] = true
	}
}
