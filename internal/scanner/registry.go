// Package scanner maintains the set of scanner backends available to a scan run.
package scanner

import (
	"slices"
	"sync"

	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options is backend-specific configuration, opaque to the registry.
type Options map[string]any

// Factory constructs a scanner backend from its options.
type Factory func(Options) (ports.Scanner, error)

// Registry maintains known scanner factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register installs a scanner factory under name.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return zerr.New("scanner name is required")
	}
	if factory == nil {
		return zerr.With(zerr.New("scanner factory is required"), "scanner", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return zerr.With(domain.ErrScannerAlreadyRegistered, "scanner", name)
	}
	r.factories[name] = factory
	return nil
}

// MustRegister panics if registration fails.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Resolve constructs the scanner registered under name.
func (r *Registry) Resolve(name string, opts Options) (ports.Scanner, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, zerr.With(domain.ErrUnknownScanner, "scanner", name)
	}

	if opts == nil {
		opts = Options{}
	}

	s, err := factory(opts)
	if err != nil {
		return nil, zerr.With(err, "scanner", name)
	}
	return s, nil
}

// Names returns the sorted names of all registered scanners.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
