package wfc

// TileType identifies a semantic terrain tile learned from a sample.
// Concrete values are minted by the palette when the sample colors are
// registered, so the alphabet is closed for the whole run.
type TileType int

// TileInvalid is the fallback tile committed to a cell whose candidate
// set was exhausted before it could be revealed.
const TileInvalid TileType = -1

// Direction represents a cardinal direction on the board
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Deltas returns the (dx, dy) offset for the direction. Rows grow from
// top to bottom, so Up decreases y.
func (d Direction) Deltas() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// AllDirections returns all four cardinal directions
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}
