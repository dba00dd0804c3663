// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

// Package genealogists implements the built-in genealogist strategies.
//
// # Strategies
//
//   - tag: Dice coefficient of the tag sets
//   - type: fixed affinity per kind of the destination post
//   - repo: whether both posts share a source repository
//   - silly: share of title letters of the source found in the destination title
//   - random: uniform noise baseline for calibration
//
// Every strategy is stateless after procurement, except random, whose
// generator is guarded by a mutex. All of them are safe for concurrent use.
package genealogists

import (
	"github.com/tomtom215/genealogy/internal/genealogy"
	"github.com/tomtom215/genealogy/internal/post"
)

// baseGenealogist provides the fixed relation type shared by all strategies.
type baseGenealogist struct {
	relType genealogy.RelationType
}

func newBaseGenealogist(relType genealogy.RelationType) baseGenealogist {
	return baseGenealogist{relType: relType}
}

// Type returns the relation type.
func (b *baseGenealogist) Type() genealogy.RelationType {
	return b.relType
}

// relation wraps a computed score in a TypedRelation of this genealogist's type.
//
//nolint:gocritic // Post is a small immutable value
func (b *baseGenealogist) relation(p1, p2 post.Post, score int) (genealogy.TypedRelation, error) {
	return genealogy.NewTypedRelation(p1, p2, b.relType, score)
}

// bySlug indexes a precomputed value per post slug.
func bySlug[T any](posts []post.Post, compute func(post.Post) T) map[string]T {
	index := make(map[string]T, len(posts))
	for _, p := range posts {
		index[p.Slug()] = compute(p)
	}
	return index
}
