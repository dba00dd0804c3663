// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

// Package genealogy infers how strongly posts relate to each other.
//
// # Overview
//
// A Genealogist scores an ordered pair of distinct posts for one relation
// type (tags, kind, repository, ...). Genealogy runs every genealogist on
// every ordered pair and folds the typed scores of each pair into one
// Relation:
//
//	score = round(sum(score_i * weightOf(type_i)) / count)
//
// where count is the number of typed relations of the pair. The division
// is by the count and not by the sum of weights, so weights above 1 can push
// a result past MaxScore; such results fail with ErrInvalidScore.
//
// # Pipeline
//
//  1. Pairing: N*(N-1) ordered pairs of posts with distinct slugs
//  2. Scoring: every pair by every genealogist, sharded by source post
//  3. Grouping: by (source slug, destination slug)
//  4. Aggregation: the weighted mean above, rounded half up
//
// # Registry
//
// Genealogists are made available through a Registry of named Procurers.
// A procurer is called once per run with the whole post collection and
// returns a Genealogist that is then shared by all scoring goroutines.
//
// # Usage
//
//	reg := genealogy.NewRegistry()
//	genealogists.Register(reg)
//
//	gens, err := reg.Procure([]string{"tag", "type", "repo"}, posts)
//	if err != nil {
//	    return err
//	}
//
//	g := genealogy.New(posts, gens, genealogy.AllEqual(),
//	    genealogy.WithWorkers(4),
//	    genealogy.WithTimeout(5*time.Minute),
//	)
//	relations, err := g.InferRelations(ctx)
package genealogy
