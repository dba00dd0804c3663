// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

// Package recommend ranks inferred relations into per-post recommendations.
//
// # Algorithm
//
// For every source post, the outgoing relations are sorted by descending
// score and the first K destinations are kept. Equal scores are ordered by
// destination slug so that output never depends on map iteration order.
//
// # Usage
//
//	recommender := recommend.New(logger)
//	recs, err := recommender.Recommend(relations, 3)
//	if err != nil {
//	    return err
//	}
//	for _, rec := range recs {
//	    fmt.Println(rec.Post.Title(), rec.Slugs())
//	}
package recommend
