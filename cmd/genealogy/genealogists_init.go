// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package main

import (
	"fmt"

	"github.com/tomtom215/genealogy/internal/config"
	"github.com/tomtom215/genealogy/internal/genealogy"
	"github.com/tomtom215/genealogy/internal/genealogy/genealogists"
	"github.com/tomtom215/genealogy/internal/logging"
)

// newRegistry registers the built-in genealogists and checks that every
// configured name resolves.
func newRegistry(cfg *config.Config) (*genealogy.Registry, error) {
	reg := genealogy.NewRegistry()
	if err := registerGenealogists(reg, cfg.Genealogy.Seed); err != nil {
		return nil, fmt.Errorf("failed to register genealogists: %w", err)
	}

	known := make(map[string]bool)
	for _, name := range reg.Names() {
		known[name] = true
	}
	for _, name := range cfg.Genealogy.Genealogists {
		if !known[name] {
			return nil, fmt.Errorf("%w: %q (available: %v)", genealogy.ErrUnknownGenealogist, name, reg.Names())
		}
	}

	logging.Debug().
		Strs("registered", reg.Names()).
		Strs("enabled", cfg.Genealogy.Genealogists).
		Int64("seed", cfg.Genealogy.Seed).
		Msg("Genealogists registered")
	return reg, nil
}

func registerGenealogists(reg *genealogy.Registry, seed int64) error {
	return genealogists.Register(reg, genealogists.Options{Seed: seed})
}
