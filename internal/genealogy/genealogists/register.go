// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package genealogists

import (
	"github.com/tomtom215/genealogy/internal/genealogy"
	"github.com/tomtom215/genealogy/internal/post"
)

// Options configures the built-in procurers.
type Options struct {
	// Seed seeds the random baseline. Zero seeds from the clock.
	Seed int64
}

// Procurers returns the built-in procurers keyed by genealogist name.
func Procurers(opts Options) map[string]genealogy.Procurer {
	return map[string]genealogy.Procurer{
		TagType.String(): func(posts []post.Post) (genealogy.Genealogist, error) {
			return NewTagOverlap(posts), nil
		},
		KindType.String(): func([]post.Post) (genealogy.Genealogist, error) {
			return NewTypeAffinity(), nil
		},
		RepoType.String(): func([]post.Post) (genealogy.Genealogist, error) {
			return NewRepositoryAffinity(), nil
		},
		SillyType.String(): func(posts []post.Post) (genealogy.Genealogist, error) {
			return NewTitleLetterOverlap(posts), nil
		},
		RandomType.String(): func([]post.Post) (genealogy.Genealogist, error) {
			return NewRandomBaseline(opts.Seed), nil
		},
	}
}

// Register adds every built-in procurer to reg.
func Register(reg *genealogy.Registry, opts Options) error {
	for name, procure := range Procurers(opts) {
		if err := reg.Register(name, procure); err != nil {
			return err
		}
	}
	return nil
}
