// Package registry provides a global registry for game factories.
// Games register themselves in init() functions so the platform and the
// CLI can create them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/mobhold/internal/core"
)

// Game is the interface the terminal platform drives.
// Implementations hold pure logic; the platform owns input mapping,
// timing and rendering.
type Game interface {
	// ID returns a unique identifier, used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by the wall-clock time since the
	// previous frame. Games clamp dt themselves.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
