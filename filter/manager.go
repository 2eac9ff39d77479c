package filter

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Manager holds named filters, typically the presets from the config file
type Manager struct {
	compiler *Compiler
	filters  map[string]*Filter
	mu       sync.RWMutex
}

// NewManager creates a manager compiling with compiler, or a default one
func NewManager(compiler *Compiler) *Manager {
	if compiler == nil {
		compiler = NewCompiler()
	}

	return &Manager{
		compiler: compiler,
		filters:  make(map[string]*Filter),
	}
}

// Register compiles and stores a named filter, replacing any previous one
func (m *Manager) Register(name, expression string) error {
	f, err := m.compiler.Compile(expression)
	if err != nil {
		return fmt.Errorf("failed to compile filter '%s': %w", name, err)
	}

	m.mu.Lock()
	m.filters[name] = f
	m.mu.Unlock()

	return nil
}

// RegisterAll compiles every filter first and stores them only if all succeed
func (m *Manager) RegisterAll(filters map[string]string) error {
	compiled := make(map[string]*Filter, len(filters))

	for _, name := range slices.Sorted(maps.Keys(filters)) {
		f, err := m.compiler.Compile(filters[name])
		if err != nil {
			return fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		compiled[name] = f
	}

	m.mu.Lock()
	maps.Copy(m.filters, compiled)
	m.mu.Unlock()

	return nil
}

// Get returns a named filter
func (m *Manager) Get(name string) (*Filter, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.filters[name]
	return f, ok
}

// Names returns the registered filter names, sorted
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.filters))
}

// Resolve picks the filter to use: a preset name wins over an inline
// expression, and neither yields a nil filter that matches everything.
func (m *Manager) Resolve(preset, expression string) (*Filter, error) {
	if preset != "" {
		f, ok := m.Get(preset)
		if !ok {
			return nil, fmt.Errorf("filter preset '%s' not found", preset)
		}
		return f, nil
	}

	if expression == "" {
		return nil, nil
	}

	return m.compiler.Compile(expression)
}
