package blocks

import (
	"encoding/json"
	"fmt"

	"github.com/pkorman/blockline/internal/engine"
)

// Snapshot captures the observable game state for determinism tests.
type Snapshot struct {
	Tick     uint64
	Mode     Mode
	Score    int
	Combo    int
	Occupied int
	Tray     []string // pattern type tags, "" for empty slots
	Slot     int
	Cursor   engine.Position
	GameOver bool
	Paused   bool
}

// Snapshot returns the current state snapshot.
func (g *Game) Snapshot() Snapshot {
	tray := make([]string, len(g.tray))
	occupied := 0
	size := g.eng.Size()
	for row := 0; row < size; row++ {
		occupied += g.eng.RowOccupancy(row)
	}
	for i, pat := range g.tray {
		if pat != nil {
			tray[i] = string(pat.Type())
		}
	}
	return Snapshot{
		Tick:     g.tick,
		Mode:     g.mode,
		Score:    g.score,
		Combo:    g.scorer.Combo(),
		Occupied: occupied,
		Tray:     tray,
		Slot:     g.slot,
		Cursor:   g.cursor,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// saveState is the persisted shape of a run in progress.
type saveState struct {
	Mode   string             `json:"mode"`
	Score  int                `json:"score"`
	Combo  int                `json:"combo"`
	Board  engine.GridPayload `json:"board"`
	Tray   engine.TrayPayload `json:"tray"`
	Slot   int                `json:"slot"`
	Cursor [2]int             `json:"cursor"`
}

// SaveState serializes the run for the save slot. Finished games are not
// resumable.
func (g *Game) SaveState() ([]byte, error) {
	if g.gameOver {
		return nil, fmt.Errorf("blocks: game is over, nothing to save")
	}

	state := saveState{
		Mode:   string(g.mode),
		Score:  g.score,
		Combo:  g.scorer.Combo(),
		Board:  g.eng.Save(),
		Tray:   engine.EncodeTray(g.tray),
		Slot:   g.slot,
		Cursor: [2]int{g.cursor.Row, g.cursor.Col},
	}
	return json.Marshal(state)
}

// RestoreState resumes a run saved by SaveState. Call Reset first so the
// config and board are initialized; the saved board must match this mode.
func (g *Game) RestoreState(data []byte) error {
	var state saveState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("blocks: cannot decode save: %w", err)
	}
	if state.Mode != string(g.mode) {
		return fmt.Errorf("blocks: save is for mode %q, this game is %q", state.Mode, g.mode)
	}

	if err := g.eng.Restore(state.Board); err != nil {
		return fmt.Errorf("blocks: cannot restore board: %w", err)
	}
	tray, err := engine.DecodeTray(state.Tray)
	if err != nil {
		return fmt.Errorf("blocks: cannot restore tray: %w", err)
	}

	g.tray = tray
	g.score = state.Score
	g.scorer.SetCombo(state.Combo)
	g.gameOver = false
	g.paused = false

	g.slot = state.Slot
	if g.slot < 0 || g.slot >= len(g.tray) || g.tray[g.slot] == nil {
		g.slot = g.firstOccupiedSlot()
	}
	g.setCursor(state.Cursor[0], state.Cursor[1])
	return nil
}
