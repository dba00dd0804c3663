// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package genealogists

import (
	"strings"

	"github.com/tomtom215/genealogy/internal/genealogy"
	"github.com/tomtom215/genealogy/internal/post"
)

// SillyType is the relation type of TitleLetterOverlap.
var SillyType = genealogy.MustRelationType("silly")

// TitleLetterOverlap is a silly baseline. With L(p) the set of
// distinct lower-cased characters of p's title, it scores
//
//	round(100 * |L(p1) ∩ L(p2)| / |L(p1)|)
//
// The denominator only uses p1, so the score is asymmetric.
type TitleLetterOverlap struct {
	baseGenealogist
	letters map[string]map[rune]struct{}
}

// NewTitleLetterOverlap precomputes the title letters of every post.
func NewTitleLetterOverlap(posts []post.Post) *TitleLetterOverlap {
	return &TitleLetterOverlap{
		baseGenealogist: newBaseGenealogist(SillyType),
		letters:         bySlug(posts, titleLetters),
	}
}

// Infer scores how many of p1's title letters occur in p2's title.
//
//nolint:gocritic // Post is a small immutable value
func (g *TitleLetterOverlap) Infer(p1, p2 post.Post) (genealogy.TypedRelation, error) {
	l1, l2 := g.lettersOf(p1), g.lettersOf(p2)

	// Titles are never blank, but guard the division anyway.
	if len(l1) == 0 {
		return g.relation(p1, p2, 0)
	}

	shared := 0
	for r := range l1 {
		if _, ok := l2[r]; ok {
			shared++
		}
	}

	return g.relation(p1, p2, genealogy.Round(100*float64(shared)/float64(len(l1))))
}

//nolint:gocritic // Post is a small immutable value
func (g *TitleLetterOverlap) lettersOf(p post.Post) map[rune]struct{} {
	if letters, ok := g.letters[p.Slug()]; ok {
		return letters
	}
	return titleLetters(p)
}

//nolint:gocritic // Post is a small immutable value
func titleLetters(p post.Post) map[rune]struct{} {
	letters := make(map[rune]struct{})
	for _, r := range strings.ToLower(p.Title()) {
		letters[r] = struct{}{}
	}
	return letters
}

var _ genealogy.Genealogist = (*TitleLetterOverlap)(nil)
