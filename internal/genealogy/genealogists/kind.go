// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package genealogists

import (
	"github.com/tomtom215/genealogy/internal/genealogy"
	"github.com/tomtom215/genealogy/internal/post"
)

// KindType is the relation type of TypeAffinity.
var KindType = genealogy.MustRelationType("type")

// kindAffinity is the score of a destination post by kind.
var kindAffinity = map[post.Kind]int{
	post.KindArticle: 50,
	post.KindVideo:   90,
	post.KindTalk:    20,
}

// TypeAffinity scores only the kind of the destination post, so A -> B and
// B -> A may differ. Unknown kinds score 0.
type TypeAffinity struct {
	baseGenealogist
}

// NewTypeAffinity creates the genealogist.
func NewTypeAffinity() *TypeAffinity {
	return &TypeAffinity{baseGenealogist: newBaseGenealogist(KindType)}
}

// Infer scores p2's kind.
//
//nolint:gocritic // Post is a small immutable value
func (g *TypeAffinity) Infer(p1, p2 post.Post) (genealogy.TypedRelation, error) {
	return g.relation(p1, p2, kindAffinity[p2.Kind()])
}

var _ genealogy.Genealogist = (*TypeAffinity)(nil)
