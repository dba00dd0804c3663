// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package genealogy

import "github.com/tomtom215/genealogy/internal/post"

// Genealogist scores how strongly one post relates to another for a single
// relation type.
//
// Infer is only called with distinct posts and must return exactly one
// TypedRelation of the genealogist's Type with a score in [MinScore, MaxScore].
// Implementations must not perform I/O and must be safe for concurrent use,
// because Genealogy scores source posts in parallel.
type Genealogist interface {
	// Type returns the fixed relation type of this genealogist.
	Type() RelationType

	// Infer scores the ordered pair (p1, p2).
	Infer(p1, p2 post.Post) (TypedRelation, error)
}

// Procurer creates a Genealogist for one run. It receives the whole post
// collection so that the genealogist can precompute what it needs.
type Procurer func(posts []post.Post) (Genealogist, error)

// GenealogistFunc adapts a scoring function to the Genealogist interface.
type GenealogistFunc struct {
	relType RelationType
	score   func(p1, p2 post.Post) int
}

// NewGenealogistFunc returns a Genealogist of the given type that scores with fn.
func NewGenealogistFunc(relType RelationType, fn func(p1, p2 post.Post) int) *GenealogistFunc {
	return &GenealogistFunc{relType: relType, score: fn}
}

// Type returns the relation type.
func (g *GenealogistFunc) Type() RelationType {
	return g.relType
}

// Infer scores the pair with the wrapped function.
//
//nolint:gocritic // Post is a small immutable value
func (g *GenealogistFunc) Infer(p1, p2 post.Post) (TypedRelation, error) {
	return NewTypedRelation(p1, p2, g.relType, g.score(p1, p2))
}

var _ Genealogist = (*GenealogistFunc)(nil)
