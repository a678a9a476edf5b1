package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkorman/blockline/internal/core"
	"github.com/pkorman/blockline/internal/registry"
	"github.com/pkorman/blockline/internal/storage"
)

// Model is the Bubble Tea model for running a single mode standalone.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	resume     bool // restore the saved run on startup
	quitting   bool
	scoreSaved bool // whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, resume bool) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		resume:     resume,
	}
}

// Init initializes the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.resume {
		m.restoreSavedRun()
	}
	return tickCmd(m.config.TickRate)
}

// restoreSavedRun loads the save slot for this mode, if any. The slot is
// consumed: a restored run that ends without saving again leaves no save.
func (m Model) restoreSavedRun() {
	p, ok := m.game.(registry.Persistable)
	if !ok || m.store == nil {
		return
	}

	save, err := m.store.LoadGame(m.game.ID())
	if err != nil || save == nil {
		return
	}
	if err := p.RestoreState(save.Payload); err != nil {
		return
	}
	//nolint:errcheck // Best-effort slot cleanup
	m.store.DeleteSave(m.game.ID())
}

// saveRunInProgress persists the current run so it can be resumed later.
func (m Model) saveRunInProgress() {
	p, ok := m.game.(registry.Persistable)
	if !ok || m.store == nil || m.gameState.GameOver {
		return
	}

	data, err := p.SaveState()
	if err != nil {
		return
	}
	//nolint:errcheck // Best-effort save on exit
	m.store.SaveGame(m.game.ID(), data, m.gameState.Score)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRunInProgress()
		m.quitting = true
		return m, tea.Quit
	}

	// Drop restart unless the game is actually over.
	if m.inputFrame.Has(core.ActionRestart) && !m.gameState.GameOver {
		delete(m.inputFrame.Actions, core.ActionRestart)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Preserve the run across a resize when the mode supports it.
	if !m.gameState.GameOver {
		if p, ok := m.game.(registry.Persistable); ok {
			if data, err := p.SaveState(); err == nil {
				m.game.Reset(m.config)
				//nolint:errcheck // Falls back to the fresh board
				p.RestoreState(data)
				return m, nil
			}
		}
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
			//nolint:errcheck // A finished run is no longer resumable
			m.store.DeleteSave(m.game.ID())
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one mode.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, resume bool) error {
	model := NewModel(game, store, cfg, resume)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
