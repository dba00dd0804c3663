// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package genealogy

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tomtom215/genealogy/internal/post"
)

// Registry maps genealogist names to procurers. Genealogists are registered
// explicitly at startup instead of being discovered at runtime.
type Registry struct {
	mu        sync.RWMutex
	procurers map[string]Procurer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{procurers: make(map[string]Procurer)}
}

// Register adds a procurer under name. Blank names, nil procurers and
// duplicate names fail with ErrInvalidArgument.
func (r *Registry) Register(name string, p Procurer) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: genealogist name must not be blank", ErrInvalidArgument)
	}
	if p == nil {
		return fmt.Errorf("%w: genealogist %q has no procurer", ErrInvalidArgument, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.procurers[name]; exists {
		return fmt.Errorf("%w: genealogist %q already registered", ErrInvalidArgument, name)
	}
	r.procurers[name] = p
	return nil
}

// Names returns the registered genealogist names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNamesLocked()
}

// Procure creates the named genealogists in the requested order.
//
// An empty name list fails with ErrNoGenealogists, unknown names with
// ErrUnknownGenealogist and repeated names with ErrInvalidArgument.
func (r *Registry) Procure(names []string, posts []post.Post) ([]Genealogist, error) {
	if len(names) == 0 {
		return nil, ErrNoGenealogists
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(names))
	genealogists := make([]Genealogist, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: genealogist %q requested twice", ErrInvalidArgument, name)
		}
		seen[name] = struct{}{}

		procure, ok := r.procurers[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (registered: %s)",
				ErrUnknownGenealogist, name, strings.Join(r.sortedNamesLocked(), ", "))
		}

		g, err := procure(posts)
		if err != nil {
			return nil, fmt.Errorf("procure genealogist %q: %w", name, err)
		}
		if g == nil {
			return nil, fmt.Errorf("procure genealogist %q: %w", name, ErrNoGenealogists)
		}
		genealogists = append(genealogists, g)
	}

	return genealogists, nil
}

func (r *Registry) sortedNamesLocked() []string {
	names := make([]string, 0, len(r.procurers))
	for name := range r.procurers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
