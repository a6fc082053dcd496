package engine

import (
	"sort"
	"sync"
)

// Engine name constants.
const (
	// EngineRlottie is the name of the librlottie binding (build tag rlottie).
	EngineRlottie = "rlottie"
	// EngineSoftware is the name of the pure Go reference engine.
	EngineSoftware = "software"
)

// Factory creates a new engine instance.
// A factory may return nil when the engine is not compiled in.
type Factory func() Engine

var (
	registryMu sync.RWMutex
	engines    = make(map[string]Factory)
	// Priority order for engine selection (first available wins).
	enginePriority = []string{EngineRlottie, EngineSoftware}
)

// Register registers an engine factory with the given name.
// This is typically called from init() functions in engine packages.
// If an engine with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	engines[name] = factory
}

// Unregister removes an engine from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(engines, name)
}

// Available returns the sorted names of registered engines whose factory
// yields an instance.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(engines))
	for name, factory := range engines {
		if factory() != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if an engine with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := engines[name]
	return ok
}

// Get returns an engine instance by name.
// Returns nil if the engine is not registered or not compiled in.
func Get(name string) Engine {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := engines[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available engine based on priority.
// Priority order: rlottie > software.
// Returns nil if no engines are available.
func Default() Engine {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range enginePriority {
		if factory, ok := engines[name]; ok {
			if e := factory(); e != nil {
				return e
			}
		}
	}

	// Fallback: first available in name order, for determinism.
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if e := engines[name](); e != nil {
			return e
		}
	}

	return nil
}
