// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package genealogists

import (
	"github.com/tomtom215/genealogy/internal/genealogy"
	"github.com/tomtom215/genealogy/internal/post"
)

// TagType is the relation type of TagOverlap.
var TagType = genealogy.MustRelationType("tag")

// TagOverlap scores the Dice coefficient of both tag sets:
//
//	round(100 * 2*|T1 ∩ T2| / (|T1| + |T2|))
//
// Two posts without any tags score 0.
type TagOverlap struct {
	baseGenealogist
	tags map[string]map[string]struct{}
}

// NewTagOverlap precomputes the tag set of every post.
func NewTagOverlap(posts []post.Post) *TagOverlap {
	return &TagOverlap{
		baseGenealogist: newBaseGenealogist(TagType),
		tags:            bySlug(posts, tagSet),
	}
}

// Infer scores the tag overlap of p1 and p2.
//
//nolint:gocritic // Post is a small immutable value
func (g *TagOverlap) Infer(p1, p2 post.Post) (genealogy.TypedRelation, error) {
	t1, t2 := g.tagsOf(p1), g.tagsOf(p2)

	total := len(t1) + len(t2)
	if total == 0 {
		return g.relation(p1, p2, 0)
	}

	shared := 0
	for tag := range t1 {
		if _, ok := t2[tag]; ok {
			shared++
		}
	}

	return g.relation(p1, p2, genealogy.Round(100*2*float64(shared)/float64(total)))
}

//nolint:gocritic // Post is a small immutable value
func (g *TagOverlap) tagsOf(p post.Post) map[string]struct{} {
	if tags, ok := g.tags[p.Slug()]; ok {
		return tags
	}
	return tagSet(p)
}

//nolint:gocritic // Post is a small immutable value
func tagSet(p post.Post) map[string]struct{} {
	tags := p.Tags()
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

var _ genealogy.Genealogist = (*TagOverlap)(nil)
