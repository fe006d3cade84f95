// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Factory creates a Surface for the given options.
type Factory func(opts Options) (Surface, error)

// Backend is a registered surface implementation.
type Backend struct {
	Name string

	// Priority orders backends when none is named; higher is preferred.
	Priority int

	New Factory
}

// Registry maps backend names to factories. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry. Most code uses the package-level
// functions, which share one registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// Register adds a backend to the default registry, replacing any backend
// with the same name.
func Register(name string, priority int, f Factory) {
	defaultRegistry.Register(name, priority, f)
}

// Backends lists the backends of the default registry, preferred first.
func Backends() []Backend {
	return defaultRegistry.Backends()
}

// Open creates a surface with the named backend of the default registry.
// An empty name picks the preferred backend that succeeds.
func Open(name string, opts Options) (Surface, error) {
	return defaultRegistry.Open(name, opts)
}

// Register adds a backend, replacing any backend with the same name.
func (r *Registry) Register(name string, priority int, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[name] = Backend{Name: name, Priority: priority, New: f}
}

// Unregister removes the named backend.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// Backends returns all backends ordered by priority, then name.
func (r *Registry) Backends() []Backend {
	r.mu.RLock()
	list := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		list = append(list, b)
	}
	r.mu.RUnlock()

	slices.SortFunc(list, func(a, b Backend) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return list
}

// Open creates a surface with the named backend. With an empty name every
// backend is tried in priority order and the first success is returned;
// failures are logged at debug level.
func (r *Registry) Open(name string, opts Options) (Surface, error) {
	if name != "" {
		r.mu.RLock()
		b, ok := r.backends[name]
		r.mu.RUnlock()
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
		}
		return b.New(opts)
	}

	var lastErr error = ErrNoBackendAvailable
	for _, b := range r.Backends() {
		s, err := b.New(opts)
		if err == nil {
			return s, nil
		}
		Logger().Debug("surface: backend unavailable",
			slog.String("backend", b.Name),
			slog.Any("error", err))
		lastErr = fmt.Errorf("surface: backend %q: %w", b.Name, err)
	}
	return nil, lastErr
}

func init() {
	Register("image", 10, func(opts Options) (Surface, error) {
		return NewImageSurfaceWithOptions(opts), nil
	})
}
