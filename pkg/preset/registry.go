package preset

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound is returned by Get for unknown preset names.
var ErrNotFound = errors.New("preset: not found")

// Registry stores presets by name. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	presets map[string]Preset
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{presets: make(map[string]Preset)}
}

// Register adds a preset. Duplicate names return an error.
func (r *Registry) Register(p Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.presets[p.Name]; exists {
		return fmt.Errorf("preset: %q already registered", p.Name)
	}
	r.presets[p.Name] = p
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(p Preset) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// RegisterAll registers presets in order and stops at the first failure.
func (r *Registry) RegisterAll(presets ...Preset) error {
	for _, p := range presets {
		if err := r.Register(p); err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves a preset by name.
func (r *Registry) Get(name string) (Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p, nil
}

// Names returns a sorted list of preset names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a preset is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.presets[name]
	return ok
}
