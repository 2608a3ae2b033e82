// Package registry provides a global registry for presentation backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chicken-run/internal/assets"
	"github.com/vovakirdan/chicken-run/internal/config"
	"github.com/vovakirdan/chicken-run/internal/replay"
)

// Session is everything a backend needs to play one game.
type Session struct {
	Rules    config.Game
	Seed     int64 // Already resolved; never 0
	Textures assets.Set
	Logger   *log.Logger
}

// Backend runs the game loop against a concrete terminal.
// The simulation itself lives in the game package; a backend only supplies
// input, drawing and pacing.
type Backend interface {
	// Name returns the identifier used by the --backend flag (e.g., "tea").
	Name() string

	// Description returns a one-line summary for help output.
	Description() string

	// Play runs a game until the player quits and returns the recorded input.
	Play(s Session) (replay.Recording, error)
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of a backend.
type Factory func() Backend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend package's init() function.
// Panics if a backend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BackendInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new backend by its name.
// Returns an error if the name is not registered.
func Create(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	return f(), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
