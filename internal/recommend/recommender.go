// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package recommend

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/genealogy/internal/genealogy"
	"github.com/tomtom215/genealogy/internal/post"
)

// Recommender turns aggregated relations into per-post top-K recommendations.
// It is stateless and safe for concurrent use.
type Recommender struct {
	logger zerolog.Logger
}

// New creates a recommender.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(logger zerolog.Logger) *Recommender {
	return &Recommender{
		logger: logger.With().Str("component", "recommend").Logger(),
	}
}

// sourceGroup collects the outgoing relations of one source post.
type sourceGroup struct {
	source post.Post
	items  []ScoredPost
}

// Recommend groups relations by source post, ranks each group by
// descending score with ties broken by destination slug, and keeps the
// first k entries.
//
// Self-relations are dropped. Sources without outgoing relations produce no
// Recommendation. The result is sorted by source slug. A k below 1 fails
// with genealogy.ErrInvalidArgument.
func (r *Recommender) Recommend(relations []genealogy.Relation, k int) ([]Recommendation, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: K must be positive, got %d", genealogy.ErrInvalidArgument, k)
	}

	groups := make(map[string]*sourceGroup)
	dropped := 0
	for _, rel := range relations {
		if rel.Post1().Equal(rel.Post2()) {
			dropped++
			continue
		}
		slug := rel.Post1().Slug()
		group, ok := groups[slug]
		if !ok {
			group = &sourceGroup{source: rel.Post1()}
			groups[slug] = group
		}
		group.items = append(group.items, ScoredPost{Post: rel.Post2(), Score: rel.Score()})
	}

	sources := make([]string, 0, len(groups))
	for slug := range groups {
		sources = append(sources, slug)
	}
	sort.Strings(sources)

	recommendations := make([]Recommendation, 0, len(sources))
	for _, slug := range sources {
		group := groups[slug]
		rankItems(group.items)
		if len(group.items) > k {
			group.items = group.items[:k]
		}
		recommendations = append(recommendations, Recommendation{
			Post:        group.source,
			Recommended: group.items,
		})
	}

	r.logger.Debug().
		Int("relations", len(relations)).
		Int("self_relations_dropped", dropped).
		Int("recommendations", len(recommendations)).
		Int("k", k).
		Msg("recommendations ranked")

	return recommendations, nil
}

// rankItems sorts by descending score, then ascending destination slug.
func rankItems(items []ScoredPost) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].Post.Slug() < items[j].Post.Slug()
	})
}
