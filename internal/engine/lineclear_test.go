package engine

import "testing"

func fillRow(g *Grid, r int, color Color) {
	for c := 0; c < g.Size(); c++ {
		g.Place([]Position{MustPosition(r, c, g.Size())}, color)
	}
}

func fillCol(g *Grid, c int, color Color) {
	for r := 0; r < g.Size(); r++ {
		p := MustPosition(r, c, g.Size())
		if !g.IsOccupied(p) {
			g.Place([]Position{p}, color)
		}
	}
}

func TestResolveNothingFull(t *testing.T) {
	g := mustGrid(t, 8)
	g.Place([]Position{MustPosition(0, 0, 8)}, ColorRed)

	res := ResolveLineClears(g)
	if !res.IsEmpty() {
		t.Errorf("nothing full, got %+v", res)
	}
	if g.OccupiedCount() != 1 {
		t.Error("no cell should have been cleared")
	}
}

func TestResolveSingleRow(t *testing.T) {
	g := mustGrid(t, 8)
	fillRow(g, 3, ColorGreen)
	g.Place([]Position{MustPosition(5, 5, 8)}, ColorRed) // bystander

	res := ResolveLineClears(g)

	if len(res.Rows) != 1 || res.Rows[0] != 3 {
		t.Errorf("Rows = %v, want [3]", res.Rows)
	}
	if len(res.Columns) != 0 {
		t.Errorf("Columns = %v, want none", res.Columns)
	}
	if res.TotalLines() != 1 {
		t.Errorf("TotalLines() = %d, want 1", res.TotalLines())
	}
	if len(res.Cells) != 8 {
		t.Errorf("cleared %d cells, want 8", len(res.Cells))
	}
	for c := 0; c < 8; c++ {
		if g.Cell(MustPosition(3, c, 8)).State != CellEmpty {
			t.Errorf("cell (3,%d) not cleared", c)
		}
	}
	if !g.IsOccupied(MustPosition(5, 5, 8)) {
		t.Error("bystander cell outside row 3 must be unaffected")
	}
}

func TestResolveIntersection(t *testing.T) {
	g := mustGrid(t, 8)
	fillRow(g, 2, ColorBlue)
	fillCol(g, 4, ColorBlue)

	res := ResolveLineClears(g)

	if len(res.Rows) != 1 || res.Rows[0] != 2 {
		t.Errorf("Rows = %v, want [2]", res.Rows)
	}
	if len(res.Columns) != 1 || res.Columns[0] != 4 {
		t.Errorf("Columns = %v, want [4]", res.Columns)
	}
	if res.TotalLines() != 2 {
		t.Errorf("TotalLines() = %d, want 2 (rows and columns count separately)", res.TotalLines())
	}

	// 8 + 8 - 1: the crossing cell is listed once.
	if len(res.Cells) != 15 {
		t.Errorf("cleared cell list has %d entries, want 15", len(res.Cells))
	}
	seen := 0
	for _, p := range res.Cells {
		if p.Row == 2 && p.Col == 4 {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("intersection cell appears %d times, want exactly 1", seen)
	}
	if !g.IsEmpty() {
		t.Error("board should be empty after clearing the cross")
	}
}

func TestResolveUsesPreClearSnapshot(t *testing.T) {
	// Two full rows and one full column. Clearing the first row must not
	// make the column non-full for the same pass.
	g := mustGrid(t, 4)
	fillRow(g, 0, ColorRed)
	fillRow(g, 2, ColorRed)
	fillCol(g, 1, ColorRed)

	res := ResolveLineClears(g)

	if res.TotalLines() != 3 {
		t.Errorf("TotalLines() = %d, want 3", res.TotalLines())
	}
	if len(res.Rows) != 2 || len(res.Columns) != 1 {
		t.Errorf("Rows=%v Columns=%v, want two rows and one column", res.Rows, res.Columns)
	}
}

func TestResolveCellOrderDeterministic(t *testing.T) {
	g := mustGrid(t, 4)
	fillRow(g, 1, ColorRed)
	fillCol(g, 2, ColorRed)

	res := ResolveLineClears(g)
	for i := 1; i < len(res.Cells); i++ {
		prev, cur := res.Cells[i-1], res.Cells[i]
		if cur.Row < prev.Row || (cur.Row == prev.Row && cur.Col <= prev.Col) {
			t.Fatalf("cells not in row-major order: %s before %s", prev, cur)
		}
	}
}

func TestResolveLockedCellsSurvive(t *testing.T) {
	g := mustGrid(t, 4)
	locked := MustPosition(1, 0, 4)
	g.SetLocked(locked, ColorPurple)
	for c := 1; c < 4; c++ {
		g.Place([]Position{MustPosition(1, c, 4)}, ColorGreen)
	}

	res := ResolveLineClears(g)

	if len(res.Rows) != 1 || res.Rows[0] != 1 {
		t.Fatalf("locked cell should count toward fullness, Rows = %v", res.Rows)
	}
	if len(res.Cells) != 3 {
		t.Errorf("cleared %d cells, want 3 (locked cell stays)", len(res.Cells))
	}
	if g.Cell(locked).State != CellLocked {
		t.Error("locked cell must survive the clear")
	}
	for c := 1; c < 4; c++ {
		if g.Cell(MustPosition(1, c, 4)).State != CellEmpty {
			t.Errorf("occupied cell (1,%d) should have been vacated", c)
		}
	}
}
