package script

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rotisserie/eris"
)

// Factory builds a behavior instance from scene-file properties.
type Factory func(props map[string]any) Behavior

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a named behavior available to the scene loader. Registering
// the same name twice panics; registration happens from init functions where
// a duplicate is a programming error.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("script %q already registered", name))
	}
	registry[name] = factory
}

// New creates a registered behavior by name.
func New(name string, props map[string]any) (Behavior, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, eris.Errorf("script %q not registered", name)
	}
	return factory(props), nil
}

// Registered returns all registered script names in sorted order.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
