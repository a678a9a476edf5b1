// Package engine implements the deterministic grid puzzle core: the cell
// matrix, block placement validation and line-clear resolution. It is
// UI-agnostic and synchronous; the presentation layer owns an Engine and
// drives it with placement requests, the engine never calls back out.
package engine

import "sync"

// Engine is the facade composing the grid store, the placement validator and
// the line-clear resolver. It is the only type external packages touch.
//
// All methods are safe for use from multiple goroutines: a single mutex
// serializes every read and mutation. TryPlace validates and commits under
// one lock acquisition, so there is no window where another caller can
// occupy a cell between validation and commit.
type Engine struct {
	mu   sync.Mutex
	grid *Grid
}

// New constructs a fresh all-empty engine with an N×N board.
func New(size int) (*Engine, error) {
	g, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	return &Engine{grid: g}, nil
}

// Size returns the board dimension N.
func (e *Engine) Size() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.size
}

// Position validates (row, col) against this engine's board.
func (e *Engine) Position(row, col int) (Position, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Position(row, col)
}

// TryPlace atomically validates and commits a placement. On a Valid result
// the listed cells are already Occupied with the pattern's color; on any
// Invalid result the board is untouched.
func (e *Engine) TryPlace(pat BlockPattern, origin Position) PlacementResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	res := Validate(e.grid, pat, origin)
	if !res.Valid {
		return res
	}
	if !e.grid.Place(res.Positions, pat.Color()) {
		// Unreachable while the lock is held, but the store's all-or-nothing
		// contract makes the failure safe to surface.
		return invalidPlacement(ReasonCollision)
	}
	return res
}

// CanPlace is a read-only validity check for ghost rendering.
func (e *Engine) CanPlace(pat BlockPattern, origin Position) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Validate(e.grid, pat, origin).Valid
}

// NearestPlacement suggests the closest legal origin within maxRadius
// Chebyshev rings of the desired one, without committing anything.
func (e *Engine) NearestPlacement(pat BlockPattern, desired Position, maxRadius int) PlacementResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return NearestValid(e.grid, pat, desired, maxRadius)
}

// CanPlaceAnywhere reports whether any origin on the board accepts the
// pattern. Used for game-over detection.
func (e *Engine) CanPlaceAnywhere(pat BlockPattern) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if pat.CellCount() == 0 {
		return false
	}
	for r := 0; r < e.grid.size; r++ {
		for c := 0; c < e.grid.size; c++ {
			origin := Position{Row: r, Col: c}
			if Validate(e.grid, pat, origin).Valid {
				return true
			}
		}
	}
	return false
}

// ResolveLineClears vacates every full row and column and reports the result.
// Call after every successful placement.
func (e *Engine) ResolveLineClears() LineClearResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ResolveLineClears(e.grid)
}

// CellState returns the cell at the given position, for rendering.
func (e *Engine) CellState(p Position) Cell {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Cell(p)
}

// SetLocked seeds an obstacle cell. Intended for board setup before play.
func (e *Engine) SetLocked(p Position, color Color) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.SetLocked(p, color)
}

// ShowPreview replaces the current ghost with the pattern's footprint at
// origin, marking only free cells. Call HidePreview (or ShowPreview again)
// as the cursor moves.
func (e *Engine) ShowPreview(pat BlockPattern, origin Position) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.grid.ClearPreview()
	for _, o := range pat.Offsets() {
		if p, ok := e.grid.Position(origin.Row+o.Row, origin.Col+o.Col); ok {
			e.grid.SetPreview([]Position{p}, pat.Color())
		}
	}
}

// HidePreview removes all ghost cells.
func (e *Engine) HidePreview() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.ClearPreview()
}

// RowOccupancy counts the blocking cells in row r. Scoring reads these
// before a placement to reward near-complete lines.
func (e *Engine) RowOccupancy(r int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.RowOccupancy(r)
}

// ColOccupancy counts the blocking cells in column c.
func (e *Engine) ColOccupancy(c int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.ColOccupancy(c)
}

// IsEmpty reports whether the board holds no blocking cells (perfect clear).
func (e *Engine) IsEmpty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.IsEmpty()
}

// Reset empties the board for a new round without reallocating.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.Reset()
}

// Save encodes the board into the flat persistence payload.
// Ghost cells are collapsed to empty.
func (e *Engine) Save() GridPayload {
	e.mu.Lock()
	defer e.mu.Unlock()
	return EncodeGrid(e.grid)
}

// Restore replaces the board with a decoded payload.
// The payload's size must match the engine's board.
func (e *Engine) Restore(payload GridPayload) error {
	g, err := DecodeGrid(payload)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if g.size != e.grid.size {
		return errSizeMismatch(e.grid.size, g.size)
	}
	e.grid = g
	return nil
}

// snapshotGrid returns a deep copy of the board for tests that need to
// compare pre/post states.
func (e *Engine) snapshotGrid() *Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Clone()
}
