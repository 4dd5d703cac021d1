// Package registry provides a global registry for sort algorithm factories.
// Algorithms register themselves in init() functions, allowing the visualizer
// and CLI to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/sortviz/internal/core"
)

// Factory creates a stepper that sorts data in place in the given direction.
type Factory func(data []int, ascending bool) core.Stepper

// AlgorithmInfo contains metadata about a registered algorithm.
type AlgorithmInfo struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an algorithm factory to the registry.
// Typically called from an algorithm's init() function.
// Panics if an algorithm with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: algorithm %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered algorithms, sorted by ID.
// The order doubles as the cycle order for switching algorithms.
func List() []AlgorithmInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]AlgorithmInfo, 0, len(factories))
	for id := range factories {
		result = append(result, AlgorithmInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a stepper for the algorithm with the given ID.
// Returns an error if the ID is not registered.
func Create(id string, data []int, ascending bool) (core.Stepper, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown algorithm %q", id)
	}

	return f(data, ascending), nil
}

// Exists checks if an algorithm with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display title for id, or id itself if unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}

// Next returns the ID following id in List order, wrapping around.
// An unknown id yields the first registered algorithm; an empty registry
// yields "".
func Next(id string) string {
	algos := List()
	if len(algos) == 0 {
		return ""
	}
	for i, a := range algos {
		if a.ID == id {
			return algos[(i+1)%len(algos)].ID
		}
	}
	return algos[0].ID
}
