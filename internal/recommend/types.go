// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package recommend

import "github.com/tomtom215/genealogy/internal/post"

// ScoredPost is a recommended post with the score of the relation leading to it.
type ScoredPost struct {
	Post  post.Post
	Score int
}

// Recommendation holds the top-ranked destinations of one source post.
type Recommendation struct {
	// Post is the source post.
	Post post.Post

	// Recommended is sorted by descending score, then destination slug.
	// It never contains Post and holds at most K entries.
	Recommended []ScoredPost
}

// RecommendedPosts returns the recommended posts without scores.
func (r Recommendation) RecommendedPosts() []post.Post {
	posts := make([]post.Post, len(r.Recommended))
	for i, sp := range r.Recommended {
		posts[i] = sp.Post
	}
	return posts
}

// Slugs returns the slugs of the recommended posts.
func (r Recommendation) Slugs() []string {
	slugs := make([]string, len(r.Recommended))
	for i, sp := range r.Recommended {
		slugs[i] = sp.Post.Slug()
	}
	return slugs
}
