// Package mod defines the module contract shared by built-in handlers and
// on-disk provisioning scripts, plus the registry that holds them.
package mod

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Module is an independently invocable unit of system configuration logic.
type Module interface {
	// Name returns the module's unique identifier
	Name() string

	// Description returns a one-line summary for list output
	Description() string

	// Validate checks the arguments without executing anything
	Validate(args []string) error

	// Execute runs the module with the given arguments
	Execute(ctx context.Context, args []string) (Result, error)
}

// Result contains the outcome of a module execution.
type Result struct {
	// ExitCode is the child's exit status for script modules, 0 for
	// successful built-ins.
	ExitCode int
	// Duration is the wall-clock time spent executing.
	Duration time.Duration
}

// Registry stores all available built-in modules
type Registry struct {
	modules map[string]Module
	sync.RWMutex
}

// NewRegistry creates an empty module registry
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
	}
}

// Register adds a module to the registry
func (r *Registry) Register(m Module) error {
	if m == nil {
		return fmt.Errorf("cannot register nil module")
	}

	name := m.Name()
	if name == "" {
		return fmt.Errorf("module name cannot be empty")
	}

	r.Lock()
	defer r.Unlock()

	if _, exists := r.modules[name]; exists {
		return fmt.Errorf("module %s is already registered", name)
	}

	r.modules[name] = m
	return nil
}

// Get retrieves a module by name. The bool reports whether it was found so
// callers can fall back to on-disk resolution.
func (r *Registry) Get(name string) (Module, bool) {
	r.RLock()
	defer r.RUnlock()

	module, exists := r.modules[name]
	return module, exists
}

// List returns all registered modules sorted by name
func (r *Registry) List() []Module {
	r.RLock()
	defer r.RUnlock()

	modules := make([]Module, 0, len(r.modules))
	for _, m := range r.modules {
		modules = append(modules, m)
	}
	sort.Slice(modules, func(i, j int) bool {
		return modules[i].Name() < modules[j].Name()
	})
	return modules
}
