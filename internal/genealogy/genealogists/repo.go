// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package genealogists

import (
	"github.com/tomtom215/genealogy/internal/genealogy"
	"github.com/tomtom215/genealogy/internal/post"
)

// RepoType is the relation type of RepositoryAffinity.
var RepoType = genealogy.MustRelationType("repo")

const (
	repoNeither   = 20
	repoOnlyOne   = 0
	repoSame      = 100
	repoDifferent = 50
)

// RepositoryAffinity scores whether both posts link the same source repository.
type RepositoryAffinity struct {
	baseGenealogist
}

// NewRepositoryAffinity creates the genealogist.
func NewRepositoryAffinity() *RepositoryAffinity {
	return &RepositoryAffinity{baseGenealogist: newBaseGenealogist(RepoType)}
}

// Infer scores the repositories of p1 and p2.
//
//nolint:gocritic // Post is a small immutable value
func (g *RepositoryAffinity) Infer(p1, p2 post.Post) (genealogy.TypedRelation, error) {
	r1, ok1 := p1.Repository()
	r2, ok2 := p2.Repository()

	var score int
	switch {
	case !ok1 && !ok2:
		score = repoNeither
	case ok1 != ok2:
		score = repoOnlyOne
	case r1 == r2:
		score = repoSame
	default:
		score = repoDifferent
	}

	return g.relation(p1, p2, score)
}

var _ genealogy.Genealogist = (*RepositoryAffinity)(nil)
