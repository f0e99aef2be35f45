// Package registry maps game IDs to factories. Games register themselves in
// init(), so the host can build one per session without importing them
// directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game is the contract between a game and its host.
// Games hold pure logic; the host maps keys to actions, measures time and
// turns the screen buffer into terminal output.
type Game interface {
	// ID returns a unique identifier (e.g. "runner").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game for the given screen and seed.
	// Hosts call it once per session; restarts happen through input.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances the simulation one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. It must not change the game.
	Render(dst *core.Screen)

	// State returns the current summary.
	State() core.GameState
}

// Configurable is implemented by games that take runner tuning.
// A new config applies from the next run on.
type Configurable interface {
	Configure(cfg config.RunnerConfig)
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// IDs returns all registered game IDs, sorted.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}
