package blocks

import (
	"reflect"
	"testing"

	"github.com/pkorman/blockline/internal/core"
	"github.com/pkorman/blockline/internal/engine"
)

func newTestGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func catalogPiece(t *testing.T, typ engine.PatternType, color engine.Color) *engine.BlockPattern {
	t.Helper()
	pat, ok := engine.PatternOf(typ, color)
	if !ok {
		t.Fatalf("PatternOf(%q) failed", typ)
	}
	return &pat
}

// occupy places a single block directly on the board, bypassing the tray.
func occupy(t *testing.T, g *Game, row, col int) {
	t.Helper()
	pat := catalogPiece(t, engine.PatternSingle, engine.ColorBlue)
	origin := engine.MustPosition(row, col, g.eng.Size())
	if res := g.eng.TryPlace(*pat, origin); !res.Valid {
		t.Fatalf("setup placement at (%d,%d) rejected: %v", row, col, res.Reason)
	}
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame(t, New(), 1)

	st := g.State()
	if st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("fresh state = %+v, want zeroed", st)
	}
	if g.eng.Size() != 8 {
		t.Errorf("classic board size = %d, want 8", g.eng.Size())
	}
	if len(g.tray) != 3 {
		t.Fatalf("tray slots = %d, want 3", len(g.tray))
	}
	for i, pat := range g.tray {
		if pat == nil {
			t.Errorf("tray slot %d should start filled", i)
		}
	}
}

func TestBigModeBoardSize(t *testing.T) {
	g := newTestGame(t, NewBig(), 1)
	if g.eng.Size() != 10 {
		t.Errorf("big board size = %d, want 10", g.eng.Size())
	}
}

func TestObstacleModeSeedsLockedCells(t *testing.T) {
	g := newTestGame(t, NewObstacle(), 7)

	locked := 0
	for row := 0; row < g.eng.Size(); row++ {
		for col := 0; col < g.eng.Size(); col++ {
			p := engine.MustPosition(row, col, g.eng.Size())
			if g.eng.CellState(p).State == engine.CellLocked {
				locked++
			}
		}
	}
	if locked != 6 {
		t.Errorf("locked cells = %d, want 6", locked)
	}
}

func TestCursorMovementClamps(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.tray[g.slot] = catalogPiece(t, engine.PatternSquare2, engine.ColorRed)

	for i := 0; i < 20; i++ {
		g.Step(frame(core.ActionLeft, core.ActionUp))
	}
	if got := g.Snapshot().Cursor; got.Row != 0 || got.Col != 0 {
		t.Errorf("cursor after clamping = %v, want (0,0)", got)
	}

	for i := 0; i < 20; i++ {
		g.Step(frame(core.ActionRight, core.ActionDown))
	}
	// A 2x2 piece must stay fully on an 8x8 board.
	if got := g.Snapshot().Cursor; got.Row != 6 || got.Col != 6 {
		t.Errorf("cursor after clamping = %v, want (6,6)", got)
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(t, New(), 1)
	before := g.Snapshot().Cursor

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	g.Step(frame(core.ActionRight))
	if got := g.Snapshot().Cursor; got != before {
		t.Errorf("cursor moved while paused: %v -> %v", before, got)
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("game should have unpaused")
	}
}

func TestPlacementScoresCells(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.tray = []*engine.BlockPattern{catalogPiece(t, engine.PatternSingle, engine.ColorRed), nil, nil}
	g.slot = 0
	g.setCursor(0, 0)

	g.Step(frame(core.ActionPlace))

	w := g.scoreWeights()
	if g.score != w.CellPoint {
		t.Errorf("score = %d, want %d", g.score, w.CellPoint)
	}
	p := engine.MustPosition(0, 0, 8)
	if g.eng.CellState(p).State != engine.CellOccupied {
		t.Error("placed cell should be occupied")
	}
}

func TestPlacementClearsLineAndScores(t *testing.T) {
	g := newTestGame(t, New(), 1)
	for col := 0; col < 7; col++ {
		occupy(t, g, 3, col)
	}
	g.tray = []*engine.BlockPattern{catalogPiece(t, engine.PatternSingle, engine.ColorRed), nil, nil}
	g.slot = 0
	g.setCursor(3, 7)

	g.Step(frame(core.ActionPlace))

	// The only occupied row clears, which also empties the board.
	w := g.scoreWeights()
	want := w.CellPoint + w.LineBase + w.PerfectClearBonus
	if g.score != want {
		t.Errorf("score = %d, want %d", g.score, want)
	}
	if !g.eng.IsEmpty() {
		t.Error("board should be empty after the clear")
	}
	if g.scorer.Combo() != 1 {
		t.Errorf("combo = %d, want 1", g.scorer.Combo())
	}
}

func TestPlacementNearFullBonus(t *testing.T) {
	g := newTestGame(t, New(), 1)
	for col := 0; col < 6; col++ {
		occupy(t, g, 2, col)
	}
	g.tray = []*engine.BlockPattern{catalogPiece(t, engine.PatternSingle, engine.ColorRed), nil, nil}
	g.slot = 0
	g.setCursor(2, 6)

	g.Step(frame(core.ActionPlace))

	// Row 2 is one hole from full after the placement.
	w := g.scoreWeights()
	want := w.CellPoint + w.NearFullBonus
	if g.score != want {
		t.Errorf("score = %d, want %d", g.score, want)
	}
}

func TestPlacementSnapAssist(t *testing.T) {
	g := newTestGame(t, New(), 1)
	occupy(t, g, 4, 4)
	// A second piece keeps the tray from refilling when slot 0 is consumed.
	g.tray = []*engine.BlockPattern{
		catalogPiece(t, engine.PatternSingle, engine.ColorRed),
		catalogPiece(t, engine.PatternSingle, engine.ColorGreen),
		nil,
	}
	g.slot = 0
	g.setCursor(4, 4)

	g.Step(frame(core.ActionPlace))

	// The assist scans ring distance 1 in row-major order, so (3,3) wins.
	p := engine.MustPosition(3, 3, 8)
	if g.eng.CellState(p).State != engine.CellOccupied {
		t.Errorf("snap assist should have placed at (3,3), cell is %v", g.eng.CellState(p).State)
	}
	if g.tray[0] != nil {
		t.Error("piece should have been consumed")
	}
	if g.tray[1] == nil {
		t.Error("only the placed slot should have been consumed")
	}
}

func TestPlacementRejectedKeepsPiece(t *testing.T) {
	g := newTestGame(t, New(), 1)
	// Block the cursor cell and its whole snap neighborhood.
	for row := 1; row <= 7; row++ {
		for col := 1; col <= 7; col++ {
			occupy(t, g, row, col)
		}
	}
	g.tray = []*engine.BlockPattern{catalogPiece(t, engine.PatternSingle, engine.ColorRed), nil, nil}
	g.slot = 0
	g.setCursor(4, 4)

	g.Step(frame(core.ActionPlace))

	if g.tray[0] == nil {
		t.Error("rejected placement should keep the piece in the tray")
	}
	if g.score != 0 {
		t.Errorf("rejected placement should not score, got %d", g.score)
	}
}

func TestTrayRefillsWhenExhausted(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.tray = []*engine.BlockPattern{
		catalogPiece(t, engine.PatternSingle, engine.ColorRed),
		catalogPiece(t, engine.PatternSingle, engine.ColorGreen),
		catalogPiece(t, engine.PatternSingle, engine.ColorBlue),
	}
	g.slot = 0

	for i := 0; i < 3; i++ {
		g.setCursor(0, i*2)
		g.Step(frame(core.ActionPlace))
	}

	for i, pat := range g.tray {
		if pat == nil {
			t.Errorf("tray slot %d should have been refilled", i)
		}
	}
}

func TestCycleSelectsNextPiece(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.tray = []*engine.BlockPattern{
		catalogPiece(t, engine.PatternSingle, engine.ColorRed),
		nil,
		catalogPiece(t, engine.PatternSingle, engine.ColorBlue),
	}
	g.slot = 0

	g.Step(frame(core.ActionCycle))
	if g.slot != 2 {
		t.Errorf("cycle should skip the empty slot, got slot %d", g.slot)
	}
	g.Step(frame(core.ActionCycle))
	if g.slot != 0 {
		t.Errorf("cycle should wrap around, got slot %d", g.slot)
	}
}

func TestGameOverWhenNoPieceFits(t *testing.T) {
	g := newTestGame(t, New(), 1)
	// Checkerboard leaves no full line and no 3x3 hole.
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if (row+col)%2 == 0 && !(row == 0 && col == 0) {
				occupy(t, g, row, col)
			}
		}
	}
	g.tray = []*engine.BlockPattern{
		catalogPiece(t, engine.PatternSingle, engine.ColorRed),
		catalogPiece(t, engine.PatternSquare3, engine.ColorBlue),
		nil,
	}
	g.slot = 0
	g.setCursor(0, 0)

	g.Step(frame(core.ActionPlace))

	if !g.State().GameOver {
		t.Error("game should be over: the remaining 3x3 piece fits nowhere")
	}
}

func TestDeterminismSameSeedSameRun(t *testing.T) {
	script := []core.InputFrame{
		frame(core.ActionRight),
		frame(core.ActionDown, core.ActionRight),
		frame(core.ActionPlace),
		frame(core.ActionCycle),
		frame(core.ActionUp),
		frame(core.ActionPlace),
		frame(core.ActionLeft),
		frame(core.ActionPlace),
	}

	run := func() Snapshot {
		g := newTestGame(t, New(), 42)
		for _, f := range script {
			g.Step(f)
		}
		return g.Snapshot()
	}

	first, second := run(), run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed diverged:\n%+v\n%+v", first, second)
	}
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	g := newTestGame(t, New(), 42)
	g.Step(frame(core.ActionPlace))
	g.Step(frame(core.ActionRight))
	before := g.Snapshot()

	data, err := g.SaveState()
	if err != nil {
		t.Fatalf("SaveState() failed: %v", err)
	}

	restored := newTestGame(t, New(), 99)
	if err := restored.RestoreState(data); err != nil {
		t.Fatalf("RestoreState() failed: %v", err)
	}

	after := restored.Snapshot()
	if after.Score != before.Score {
		t.Errorf("score = %d, want %d", after.Score, before.Score)
	}
	if after.Combo != before.Combo {
		t.Errorf("combo = %d, want %d", after.Combo, before.Combo)
	}
	if after.Occupied != before.Occupied {
		t.Errorf("occupied = %d, want %d", after.Occupied, before.Occupied)
	}
	if !reflect.DeepEqual(after.Tray, before.Tray) {
		t.Errorf("tray = %v, want %v", after.Tray, before.Tray)
	}
}

func TestRestoreRejectsWrongMode(t *testing.T) {
	g := newTestGame(t, New(), 1)
	data, err := g.SaveState()
	if err != nil {
		t.Fatalf("SaveState() failed: %v", err)
	}

	big := newTestGame(t, NewBig(), 1)
	if err := big.RestoreState(data); err == nil {
		t.Error("restoring a classic save into big mode should fail")
	}
}

func TestSaveStateAfterGameOver(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.gameOver = true
	if _, err := g.SaveState(); err == nil {
		t.Error("a finished game should not be saveable")
	}
}

func TestTooSmallScreenPauses(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, Seed: 1})

	if !g.State().Paused {
		t.Error("tiny terminal should report paused")
	}
	before := g.Snapshot().Cursor
	g.Step(frame(core.ActionRight))
	if g.Snapshot().Cursor != before {
		t.Error("input should be ignored while the screen is too small")
	}
}

func TestRenderSmoke(t *testing.T) {
	g := newTestGame(t, New(), 1)
	screen := core.NewScreen(80, 24)

	g.Step(frame())
	g.Render(screen)

	out := screen.String()
	if out == "" {
		t.Fatal("render produced nothing")
	}
	if screen.Get(boardX, 0) != 'B' {
		t.Errorf("title should start at (%d,0), got %q", boardX, screen.Get(boardX, 0))
	}
}
