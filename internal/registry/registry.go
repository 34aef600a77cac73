// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package registry provides lookup of published website templates. It
// loads definitions through the template store, compiles the skeletons
// once, and caches the compiled form in memory — templates are immutable
// after publication, so cached entries never go stale.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"platefront/internal/models"
	"platefront/internal/renderer"
	"platefront/internal/store"
)

// ErrTemplateNotFound is returned for unknown template IDs. Callers decide
// whether to fall back to a default template or abort.
var ErrTemplateNotFound = errors.New("template not found")

// Registry resolves template IDs to compiled templates.
type Registry struct {
	templates *store.TemplateStore

	mu       sync.RWMutex
	compiled map[string]*renderer.Compiled
}

// New creates a registry backed by the given template store.
func New(templates *store.TemplateStore) *Registry {
	return &Registry{
		templates: templates,
		compiled:  make(map[string]*renderer.Compiled),
	}
}

// Get returns the compiled template with the given ID, loading and
// compiling it on first use. Returns ErrTemplateNotFound for unknown IDs.
func (r *Registry) Get(id string) (*renderer.Compiled, error) {
	r.mu.RLock()
	ct := r.compiled[id]
	r.mu.RUnlock()
	if ct != nil {
		return ct, nil
	}

	t, err := r.templates.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("registry load %s: %w", id, err)
	}
	if t == nil {
		return nil, fmt.Errorf("registry: %w: %s", ErrTemplateNotFound, id)
	}

	ct, err = renderer.Compile(t)
	if err != nil {
		// A published template that fails to compile is a seed bug, not a
		// caller mistake.
		return nil, fmt.Errorf("registry compile %s: %w", id, err)
	}

	r.mu.Lock()
	r.compiled[id] = ct
	r.mu.Unlock()

	return ct, nil
}

// List returns the published template definitions, optionally filtered by
// category. An empty category returns all templates.
func (r *Registry) List(category string) ([]models.Template, error) {
	templates, err := r.templates.List(category)
	if err != nil {
		return nil, fmt.Errorf("registry list: %w", err)
	}
	return templates, nil
}
