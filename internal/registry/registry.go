// Package registry is a global registry of playable board modes. Modes
// register themselves in init() functions so the platform can discover and
// instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pkorman/blockline/internal/core"
)

// Game is the interface every playable mode implements. Implementations
// contain pure logic with no UI dependencies; the platform handles input
// mapping, timing and rendering.
type Game interface {
	// ID returns the unique mode identifier (e.g. "classic", "big").
	// Used for CLI commands, score storage and save slots.
	ID() string

	// Title returns the human-readable name for menus.
	Title() string

	// Reset initializes or restarts the game. Called once at start and again
	// on restart after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	// The buffer is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current score/game-over/paused status.
	State() core.GameState
}

// Persistable is implemented by modes that can save a run in progress and
// resume it later. The payload is opaque to the platform; it stores and
// returns it verbatim.
type Persistable interface {
	// SaveState serializes the current run. Returns an error when there is
	// nothing worth saving (e.g. the run is already over).
	SaveState() ([]byte, error)

	// RestoreState replaces the current run with a previously saved one.
	// Call after Reset so screen dimensions are already applied.
	RestoreState(data []byte) error
}

// Info describes a registered mode.
type Info struct {
	ID    string
	Title string
}

// Factory creates a fresh instance of a mode.
type Factory func() Game

type entry struct {
	factory Factory
	info    Info
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode factory to the registry, typically from an init()
// function. Panics on duplicate IDs: that is a programming error, not a
// runtime condition.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	g := f()
	entries[id] = entry{
		factory: f,
		info:    Info{ID: id, Title: g.Title()},
	}
}

// List returns every registered mode, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
