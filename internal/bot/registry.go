package bot

import (
	"fmt"
	"sync"
)

// Registry collects the bot's feature modules in registration order. Module
// names must be unique; the name keys command routing, so a duplicate is a
// wiring error caught at startup.
type Registry struct {
	mu      sync.RWMutex
	modules []Module
	names   map[string]struct{}
}

// NewRegistry creates an empty module registry.
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]struct{}),
	}
}

// Register adds a module to the registry. It panics on a duplicate module
// name, since registration happens from init() and cannot return an error.
func (r *Registry) Register(m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.names[m.Name()]; exists {
		panic(fmt.Sprintf("bot: module %q registered twice", m.Name()))
	}
	r.names[m.Name()] = struct{}{}
	r.modules = append(r.modules, m)
}

// Modules returns the registered modules in registration order. The returned
// slice is a copy.
func (r *Registry) Modules() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Module, len(r.modules))
	copy(result, r.modules)
	return result
}

// globalRegistry backs module self-registration: importing a module package
// for its init() side effect is all it takes to enable the module.
var globalRegistry = NewRegistry()

// Register adds a module to the global registry. Called from module init()
// functions.
func Register(m Module) {
	globalRegistry.Register(m)
}

// Modules returns all modules from the global registry.
func Modules() []Module {
	return globalRegistry.Modules()
}

// ResetGlobalRegistry replaces the global registry with an empty one. Test
// use only.
func ResetGlobalRegistry() {
	globalRegistry = NewRegistry()
}
