package blocks

import (
	"math/rand"

	"github.com/pkorman/blockline/internal/config"
	"github.com/pkorman/blockline/internal/core"
	"github.com/pkorman/blockline/internal/engine"
	"github.com/pkorman/blockline/internal/registry"
)

// Mode selects the board variant.
type Mode string

const (
	ModeClassic  Mode = "classic"  // 8x8, empty board
	ModeBig      Mode = "big"      // 10x10, empty board
	ModeObstacle Mode = "obstacle" // 8x8 seeded with locked cells
)

// clearFlashTicks is how long cleared lines stay highlighted in the HUD.
const clearFlashTicks = 30

// Package-level knobs set by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath points the game at a custom tuning YAML.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects easy/normal/hard/fixed.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game is the block puzzle: place tray pieces on the grid, clear full rows
// and columns, survive as long as the tray still fits somewhere.
type Game struct {
	mode Mode
	cfg  config.BlocksConfig
	rng  *rand.Rand
	tick uint64

	eng    *engine.Engine
	scorer *engine.Scorer
	score  int

	tray   []*engine.BlockPattern
	slot   int             // selected tray slot
	cursor engine.Position // top-left origin of the aimed placement

	lastClear  engine.LineClearResult
	clearTicks int

	screenW  int
	screenH  int
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a classic-mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewBig creates a big-board game.
func NewBig() *Game {
	return &Game{mode: ModeBig}
}

// NewObstacle creates an obstacle-mode game.
func NewObstacle() *Game {
	return &Game{mode: ModeObstacle}
}

func init() {
	registry.Register("classic", func() registry.Game { return New() })
	registry.Register("big", func() registry.Game { return NewBig() })
	registry.Register("obstacle", func() registry.Game { return NewObstacle() })
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeBig:
		return "Blockline (10x10)"
	case ModeObstacle:
		return "Blockline (Obstacles)"
	default:
		return "Blockline (8x8)"
	}
}

// boardSize returns the board dimension for this mode.
func (g *Game) boardSize() int {
	if g.mode == ModeBig {
		if g.cfg.Board.BigSize >= 2 {
			return g.cfg.Board.BigSize
		}
		return 10
	}
	if g.cfg.Board.Size >= 2 {
		return g.cfg.Board.Size
	}
	return 8
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadBlocks(configPath)
	if err != nil {
		loaded = config.DefaultBlocksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlocksPreset(&loaded, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false
	g.lastClear = engine.LineClearResult{}
	g.clearTicks = 0

	size := g.boardSize()
	eng, err := engine.New(size)
	if err != nil {
		// Config supplied an unusable size; fall back to the classic board.
		eng, _ = engine.New(8)
		size = 8
	}
	g.eng = eng
	g.scorer = engine.NewScorer(g.scoreWeights())

	if g.mode == ModeObstacle {
		g.seedObstacles()
	}

	g.tray = make([]*engine.BlockPattern, g.traySlots())
	g.refillTray()
	g.slot = g.firstOccupiedSlot()
	g.cursor = engine.MustPosition(size/2, size/2, size)
	g.clampCursor()

	g.checkScreenSize()
}

// scoreWeights maps the YAML scoring section onto the engine's weights.
func (g *Game) scoreWeights() engine.ScoreWeights {
	sc := g.cfg.Scoring
	w := engine.ScoreWeights{
		CellPoint:         sc.CellPoint,
		LineBase:          sc.LineBase,
		MultiLineBonus:    sc.MultiLineBonus,
		ComboBonus:        sc.ComboBonus,
		NearFullBonus:     sc.NearFullBonus,
		NearFullAt:        sc.NearFullAt,
		PerfectClearBonus: sc.PerfectClearBonus,
	}
	if w.LineBase == 0 {
		w = engine.DefaultScoreWeights()
	}
	return w
}

// seedObstacles locks random cells on the fresh board.
func (g *Game) seedObstacles() {
	size := g.eng.Size()
	count := g.cfg.Board.Obstacles
	if count <= 0 || count >= size*size/2 {
		count = 6
	}

	placed := 0
	for placed < count {
		p := engine.MustPosition(g.rng.Intn(size), g.rng.Intn(size), size)
		if g.eng.CellState(p).State != engine.CellEmpty {
			continue
		}
		g.eng.SetLocked(p, engine.ColorPurple)
		placed++
	}
}

// checkScreenSize checks whether the board, tray and HUD fit the terminal.
func (g *Game) checkScreenSize() {
	minW := g.eng.Size()*2 + 20 // board + tray column
	minH := g.eng.Size() + 6    // board + HUD
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.clearTicks > 0 {
		g.clearTicks--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		g.eng.HidePreview()
		return core.StepResult{State: g.State()}
	}

	g.handleMovement(in)

	if in.Has(core.ActionCycle) {
		g.slot = g.nextOccupiedSlot(g.slot)
		g.clampCursor()
	}

	if in.Has(core.ActionPlace) {
		g.tryPlaceSelected()
	}

	// Refresh the ghost for the renderer.
	if pat := g.selectedPattern(); pat != nil && !g.gameOver {
		g.eng.ShowPreview(*pat, g.cursor)
	} else {
		g.eng.HidePreview()
	}

	return core.StepResult{State: g.State()}
}

// handleMovement moves the placement cursor, keeping the selected piece's
// bounding box on the board.
func (g *Game) handleMovement(in core.InputFrame) {
	row, col := g.cursor.Row, g.cursor.Col
	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}
	g.setCursor(row, col)
}

// setCursor clamps and assigns the cursor.
func (g *Game) setCursor(row, col int) {
	maxRow, maxCol := g.eng.Size()-1, g.eng.Size()-1
	if pat := g.selectedPattern(); pat != nil {
		maxRow = g.eng.Size() - pat.Rows()
		maxCol = g.eng.Size() - pat.Cols()
	}
	row = core.Clamp(row, 0, maxRow)
	col = core.Clamp(col, 0, maxCol)
	g.cursor = engine.MustPosition(row, col, g.eng.Size())
}

func (g *Game) clampCursor() {
	g.setCursor(g.cursor.Row, g.cursor.Col)
}

// selectedPattern returns the piece in the active tray slot, nil when empty.
func (g *Game) selectedPattern() *engine.BlockPattern {
	if g.slot < 0 || g.slot >= len(g.tray) {
		return nil
	}
	return g.tray[g.slot]
}

// tryPlaceSelected commits the active piece at the cursor, with a snap
// assist: when the exact cell is illegal, the nearest legal origin within
// the configured radius is used instead.
func (g *Game) tryPlaceSelected() {
	pat := g.selectedPattern()
	if pat == nil {
		return
	}

	origin := g.cursor
	if !g.eng.CanPlace(*pat, origin) {
		near := g.eng.NearestPlacement(*pat, origin, g.snapRadius())
		if !near.Valid {
			return // piece stays in the tray, board untouched
		}
		off := pat.Offsets()[0]
		snapped, ok := g.eng.Position(near.Positions[0].Row-off.Row, near.Positions[0].Col-off.Col)
		if !ok {
			return
		}
		origin = snapped
	}

	// Pre-placement occupancy per touched line, for the near-full bonus.
	preRows := make(map[int]int)
	preCols := make(map[int]int)
	addedRows := make(map[int]int)
	addedCols := make(map[int]int)
	for _, o := range pat.Offsets() {
		r, c := origin.Row+o.Row, origin.Col+o.Col
		if _, seen := preRows[r]; !seen {
			preRows[r] = g.eng.RowOccupancy(r)
		}
		if _, seen := preCols[c]; !seen {
			preCols[c] = g.eng.ColOccupancy(c)
		}
		addedRows[r]++
		addedCols[c]++
	}

	res := g.eng.TryPlace(*pat, origin)
	if !res.Valid {
		return
	}

	g.score += g.scorer.Placement(pat.CellCount())
	g.score += g.scorer.NearFull(g.eng.Size(), preRows, preCols, addedRows, addedCols)

	clears := g.eng.ResolveLineClears()
	perfect := !clears.IsEmpty() && g.eng.IsEmpty()
	g.score += g.scorer.Clears(clears, perfect)
	if !clears.IsEmpty() {
		g.lastClear = clears
		g.clearTicks = clearFlashTicks
	}

	g.tray[g.slot] = nil
	if g.trayExhausted() {
		g.refillTray()
	}
	g.slot = g.firstOccupiedSlot()
	g.clampCursor()

	if g.noPieceFits() {
		g.gameOver = true
		g.eng.HidePreview()
	}
}

// noPieceFits reports whether every remaining tray piece is unplaceable.
func (g *Game) noPieceFits() bool {
	for _, pat := range g.tray {
		if pat == nil {
			continue
		}
		if g.eng.CanPlaceAnywhere(*pat) {
			return false
		}
	}
	return true
}

func (g *Game) snapRadius() int {
	if g.cfg.Tray.SnapRadius > 0 {
		return g.cfg.Tray.SnapRadius
	}
	return 2
}

func (g *Game) traySlots() int {
	if g.cfg.Tray.Slots > 0 {
		return g.cfg.Tray.Slots
	}
	return 3
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
