package engine

import "sort"

// LineClearResult describes one resolution pass: which rows and columns were
// full and every individual cell that was vacated. Rows and columns are
// counted separately in TotalLines even though the vacated cells are
// deduplicated, so a row/column cross scores as two lines while its
// intersection cell appears in Cells exactly once.
type LineClearResult struct {
	Rows    []int
	Columns []int
	Cells   []Position
}

// TotalLines returns the number of cleared lines, rows and columns combined.
func (r LineClearResult) TotalLines() int {
	return len(r.Rows) + len(r.Columns)
}

// IsEmpty reports whether nothing cleared.
func (r LineClearResult) IsEmpty() bool {
	return r.TotalLines() == 0
}

// ResolveLineClears finds every fully-occupied row and column, vacates them
// atomically and reports what happened.
//
// Fullness is decided from a single snapshot of the board taken before any
// cell is cleared, so an intersecting row and column cannot knock each other
// out of the full set. Locked cells count toward fullness but survive the
// clear: only Occupied cells are vacated.
func ResolveLineClears(g *Grid) LineClearResult {
	size := g.Size()

	var fullRows, fullCols []int
	for r := 0; r < size; r++ {
		if g.RowOccupancy(r) == size {
			fullRows = append(fullRows, r)
		}
	}
	for c := 0; c < size; c++ {
		if g.ColOccupancy(c) == size {
			fullCols = append(fullCols, c)
		}
	}

	if len(fullRows) == 0 && len(fullCols) == 0 {
		return LineClearResult{}
	}

	// Union of the affected cells, set semantics: the intersection of a full
	// row and a full column is vacated and listed once.
	seen := make(map[Position]struct{})
	add := func(p Position) {
		if g.Cell(p).State != CellOccupied {
			return // locked cells stay, empty/preview cells have nothing to vacate
		}
		seen[p] = struct{}{}
	}
	for _, r := range fullRows {
		for c := 0; c < size; c++ {
			add(MustPosition(r, c, size))
		}
	}
	for _, c := range fullCols {
		for r := 0; r < size; r++ {
			add(MustPosition(r, c, size))
		}
	}

	cells := make([]Position, 0, len(seen))
	for p := range seen {
		cells = append(cells, p)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})

	g.ClearCells(cells)

	return LineClearResult{Rows: fullRows, Columns: fullCols, Cells: cells}
}
