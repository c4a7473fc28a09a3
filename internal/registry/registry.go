// Package registry provides a global registry for game factories.
// Game variants register themselves in init() functions, so the window,
// terminal and SSH frontends can create them by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/photonics/internal/core"
)

// Game is the core interface that every game variant implements.
// Games contain pure logic with no rendering dependencies (no Ebiten, no Bubble Tea).
// The platform handles input mapping, timing, sound and drawing.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "photon", "photon_free").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Photon → Power").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when the player restarts.
	// The RuntimeConfig provides the tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Left, Answer1, Pause...).
	// Returns the result of this tick including state and emitted events.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into a terminal cell buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, phase, quiz result).
	State() core.GameState
}

// Describer is implemented by games that carry a one-line summary for menus.
type Describer interface {
	Summary() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID      string
	Title   string
	Summary string // Empty if the game is not a Describer
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Metadata comes from a throwaway instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Summary = d.Summary()
	}
	infos[id] = info
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
