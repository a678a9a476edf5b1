package engine

import "fmt"

// Position is a bounds-validated (row, column) coordinate.
// A Position can only be built through NewPosition (or Grid.Position), so any
// Position handed to the grid is already known to be inside the board it was
// validated against. Out-of-range coordinates fail construction instead of
// being clamped.
type Position struct {
	Row int
	Col int
}

// NewPosition validates (row, col) against a board of the given size.
// Returns false when the coordinate falls outside [0, size).
func NewPosition(row, col, size int) (Position, bool) {
	if row < 0 || row >= size || col < 0 || col >= size {
		return Position{}, false
	}
	return Position{Row: row, Col: col}, true
}

// MustPosition is NewPosition for coordinates known to be valid.
// Panics on out-of-range input; intended for tests and fixed setups.
func MustPosition(row, col, size int) Position {
	p, ok := NewPosition(row, col, size)
	if !ok {
		panic(fmt.Sprintf("engine: position (%d,%d) outside %dx%d board", row, col, size, size))
	}
	return p
}

// String returns a (row,col) representation for logs and test failures.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Chebyshev returns the Chebyshev distance between two positions: the ring
// index used by the nearest-placement search.
func Chebyshev(a, b Position) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}
