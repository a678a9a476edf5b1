package engine

import "fmt"

// Grid is the authoritative N×N cell matrix.
// Cells are stored row-major: index = row*size + col. All mutating methods
// take pre-validated Positions, so no bounds checks are repeated here.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates an all-empty board of the given size.
func NewGrid(size int) (*Grid, error) {
	if size < 2 {
		return nil, fmt.Errorf("engine: grid size %d too small", size)
	}
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}, nil
}

// Size returns the board dimension N.
func (g *Grid) Size() int {
	return g.size
}

// Position validates (row, col) against this board.
func (g *Grid) Position(row, col int) (Position, bool) {
	return NewPosition(row, col, g.size)
}

func (g *Grid) index(p Position) int {
	return p.Row*g.size + p.Col
}

// Cell returns the cell at the given position.
func (g *Grid) Cell(p Position) Cell {
	return g.cells[g.index(p)]
}

// IsOccupied reports whether the position blocks placement.
// True for Occupied and Locked cells; Preview cells never block.
func (g *Grid) IsOccupied(p Position) bool {
	return g.cells[g.index(p)].Occupies()
}

// Place sets every listed position to Occupied with the given color.
// The write is all-or-nothing: if any target is already occupied the board is
// left untouched and false is returned. This re-check is defensive; callers
// are expected to validate first, but the store itself never partially
// applies a placement.
func (g *Grid) Place(cells []Position, color Color) bool {
	for _, p := range cells {
		if g.IsOccupied(p) {
			return false
		}
	}
	for _, p := range cells {
		g.cells[g.index(p)] = OccupiedCell(color)
	}
	return true
}

// ClearCells sets every listed position to Empty.
func (g *Grid) ClearCells(cells []Position) {
	for _, p := range cells {
		g.cells[g.index(p)] = EmptyCell()
	}
}

// SetLocked turns a cell into an obstacle. Used when seeding obstacle boards.
func (g *Grid) SetLocked(p Position, color Color) {
	g.cells[g.index(p)] = LockedCell(color)
}

// SetPreview marks free cells as ghost cells for UI feedback.
// Cells that block placement keep their state.
func (g *Grid) SetPreview(cells []Position, color Color) {
	for _, p := range cells {
		if !g.IsOccupied(p) {
			g.cells[g.index(p)] = PreviewCell(color)
		}
	}
}

// ClearPreview resets every ghost cell back to Empty.
func (g *Grid) ClearPreview() {
	for i, c := range g.cells {
		if c.State == CellPreview {
			g.cells[i] = EmptyCell()
		}
	}
}

// Reset empties the whole board in place.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = EmptyCell()
	}
}

// RowOccupancy counts the blocking cells in row r.
func (g *Grid) RowOccupancy(r int) int {
	count := 0
	for c := 0; c < g.size; c++ {
		if g.cells[r*g.size+c].Occupies() {
			count++
		}
	}
	return count
}

// ColOccupancy counts the blocking cells in column c.
func (g *Grid) ColOccupancy(c int) int {
	count := 0
	for r := 0; r < g.size; r++ {
		if g.cells[r*g.size+c].Occupies() {
			count++
		}
	}
	return count
}

// OccupiedCount returns the number of blocking cells on the board.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, c := range g.cells {
		if c.Occupies() {
			count++
		}
	}
	return count
}

// IsEmpty reports whether no cell blocks placement (perfect-clear check).
func (g *Grid) IsEmpty() bool {
	return g.OccupiedCount() == 0
}

// Clone returns a deep copy of the board.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Equal reports whether two boards have identical size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
