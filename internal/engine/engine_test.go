package engine

import (
	"sync"
	"testing"
)

func mustEngine(t *testing.T, size int) *Engine {
	t.Helper()
	e, err := New(size)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", size, err)
	}
	return e
}

func TestTryPlaceCommits(t *testing.T) {
	e := mustEngine(t, 8)
	square := mustPattern(t, PatternSquare2, ColorCyan)

	res := e.TryPlace(square, MustPosition(1, 1, 8))
	if !res.Valid {
		t.Fatalf("placement rejected: %s", res.Reason)
	}

	for _, p := range res.Positions {
		cell := e.CellState(p)
		if cell.State != CellOccupied || cell.Color != ColorCyan {
			t.Errorf("cell %s = %+v, want occupied cyan", p, cell)
		}
	}

	// Only the four listed cells changed.
	occupied := 0
	for r := 0; r < 8; r++ {
		occupied += e.RowOccupancy(r)
	}
	if occupied != square.CellCount() {
		t.Errorf("%d cells occupied, want %d", occupied, square.CellCount())
	}
}

func TestTryPlaceInvalidIsIdempotent(t *testing.T) {
	e := mustEngine(t, 8)
	e.TryPlace(mustPattern(t, PatternSingle, ColorRed), MustPosition(0, 1, 8))
	before := e.snapshotGrid()

	tests := []struct {
		name   string
		typ    PatternType
		origin Position
		reason InvalidReason
	}{
		{"collision", PatternLine2H, MustPosition(0, 0, 8), ReasonCollision},
		{"out of bounds", PatternLine5H, MustPosition(0, 5, 8), ReasonOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.TryPlace(mustPattern(t, tt.typ, ColorBlue), tt.origin)
			if res.Valid || res.Reason != tt.reason {
				t.Fatalf("got %+v, want %s", res, tt.reason)
			}
			if !e.snapshotGrid().Equal(before) {
				t.Error("invalid TryPlace must leave the board untouched")
			}
		})
	}
}

func TestFillRowWithSinglesEndToEnd(t *testing.T) {
	e := mustEngine(t, 8)
	single := mustPattern(t, PatternSingle, ColorOrange)

	for c := 0; c < 8; c++ {
		res := e.TryPlace(single, MustPosition(3, c, 8))
		if !res.Valid {
			t.Fatalf("single at (3,%d) rejected: %s", c, res.Reason)
		}
	}
	e.TryPlace(single, MustPosition(6, 0, 8)) // bystander

	clears := e.ResolveLineClears()
	if clears.TotalLines() != 1 {
		t.Fatalf("TotalLines() = %d, want 1", clears.TotalLines())
	}
	if len(clears.Rows) != 1 || clears.Rows[0] != 3 {
		t.Errorf("Rows = %v, want [3]", clears.Rows)
	}
	for c := 0; c < 8; c++ {
		if e.CellState(MustPosition(3, c, 8)).State != CellEmpty {
			t.Errorf("cell (3,%d) should be empty after the clear", c)
		}
	}
	if e.CellState(MustPosition(6, 0, 8)).State != CellOccupied {
		t.Error("cells outside row 3 must be unaffected")
	}
}

func TestCanPlaceDoesNotCommit(t *testing.T) {
	e := mustEngine(t, 8)
	square := mustPattern(t, PatternSquare2, ColorGreen)
	origin := MustPosition(2, 2, 8)

	if !e.CanPlace(square, origin) {
		t.Fatal("empty board should accept the square")
	}
	if e.CellState(origin).State != CellEmpty {
		t.Error("CanPlace must not mutate the board")
	}
}

func TestCanPlaceAnywhere(t *testing.T) {
	e := mustEngine(t, 4)
	single := mustPattern(t, PatternSingle, ColorRed)

	if !e.CanPlaceAnywhere(single) {
		t.Error("empty board should fit a single")
	}

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			e.TryPlace(single, MustPosition(r, c, 4))
		}
	}
	if e.CanPlaceAnywhere(single) {
		t.Error("full board fits nothing")
	}
	if e.CanPlaceAnywhere(BlockPattern{}) {
		t.Error("empty mask fits nowhere")
	}
}

func TestPreviewDoesNotBlockOrPersist(t *testing.T) {
	e := mustEngine(t, 8)
	square := mustPattern(t, PatternSquare2, ColorBlue)
	origin := MustPosition(4, 4, 8)

	e.ShowPreview(square, origin)
	if e.CellState(origin).State != CellPreview {
		t.Fatal("ghost should be visible")
	}

	res := e.TryPlace(square, origin)
	if !res.Valid {
		t.Fatalf("ghost blocked its own placement: %s", res.Reason)
	}

	e.HidePreview()
	payload := e.Save()
	for _, rec := range payload.Cells {
		if rec.State == "preview" {
			t.Fatal("preview state must never be persisted")
		}
	}
}

func TestResetKeepsSize(t *testing.T) {
	e := mustEngine(t, 10)
	e.TryPlace(mustPattern(t, PatternSquare3, ColorYellow), MustPosition(0, 0, 10))

	e.Reset()
	if !e.IsEmpty() {
		t.Error("Reset should empty the board")
	}
	if e.Size() != 10 {
		t.Errorf("Size() = %d after reset, want 10", e.Size())
	}
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	e := mustEngine(t, 8)
	e.TryPlace(mustPattern(t, PatternTee, ColorPurple), MustPosition(1, 1, 8))
	e.SetLocked(MustPosition(7, 7, 8), ColorRed)
	e.ShowPreview(mustPattern(t, PatternSingle, ColorCyan), MustPosition(5, 5, 8))

	payload := e.Save()

	restored := mustEngine(t, 8)
	if err := restored.Restore(payload); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := MustPosition(r, c, 8)
			got := restored.CellState(p)
			want := e.CellState(p)
			if want.State == CellPreview {
				want = EmptyCell() // previews collapse on save
			}
			if got != want {
				t.Errorf("cell %s = %+v, want %+v", p, got, want)
			}
		}
	}
}

// Exercises every accessor alongside Restore's grid swap; run with -race.
func TestConcurrentAccessDuringRestore(t *testing.T) {
	e := mustEngine(t, 8)
	single := mustPattern(t, PatternSingle, ColorRed)
	payload := e.Save()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				switch w {
				case 0:
					if err := e.Restore(payload); err != nil {
						t.Errorf("Restore failed: %v", err)
						return
					}
				case 1:
					if e.Size() != 8 {
						t.Error("Size changed under Restore")
						return
					}
					e.Position(i%8, i%8)
				case 2:
					e.TryPlace(single, MustPosition(i%8, i%8, 8))
					e.ResolveLineClears()
				default:
					e.CanPlace(single, MustPosition(i%8, i%8, 8))
					e.RowOccupancy(i % 8)
				}
			}
		}(w)
	}
	wg.Wait()
}

func TestRestoreRejectsWrongSize(t *testing.T) {
	e := mustEngine(t, 8)
	other := mustEngine(t, 10)

	if err := e.Restore(other.Save()); err == nil {
		t.Error("restoring a 10x10 payload into an 8x8 engine should fail")
	}
}
