// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package genealogy

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/genealogy/internal/post"
)

// testPost builds a valid article with the given slug.
func testPost(t *testing.T, slug string, tags ...string) post.Post {
	t.Helper()

	p, err := post.New(post.Attributes{
		Kind:        post.KindArticle,
		Slug:        slug,
		Title:       "Title of " + slug,
		Description: "Description of " + slug,
		Date:        time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Tags:        tags,
	})
	if err != nil {
		t.Fatalf("post.New(%q) error = %v", slug, err)
	}
	return p
}

func testPosts(t *testing.T, slugs ...string) []post.Post {
	t.Helper()

	posts := make([]post.Post, len(slugs))
	for i, slug := range slugs {
		posts[i] = testPost(t, slug)
	}
	return posts
}

func mustTyped(t *testing.T, p1, p2 post.Post, relType RelationType, score int) TypedRelation {
	t.Helper()

	tr, err := NewTypedRelation(p1, p2, relType, score)
	if err != nil {
		t.Fatalf("NewTypedRelation() error = %v", err)
	}
	return tr
}

// mockGenealogist scores pairs from a lookup table keyed by slug pair.
type mockGenealogist struct {
	relType  RelationType
	scores   map[PairKey]int
	fallback int
	err      error
	calls    atomic.Int64
}

func (m *mockGenealogist) Type() RelationType {
	return m.relType
}

func (m *mockGenealogist) Infer(p1, p2 post.Post) (TypedRelation, error) {
	m.calls.Add(1)
	if m.err != nil {
		return TypedRelation{}, m.err
	}
	score, ok := m.scores[PairKey{Source: p1.Slug(), Destination: p2.Slug()}]
	if !ok {
		score = m.fallback
	}
	return NewTypedRelation(p1, p2, m.relType, score)
}

// wrongTypeGenealogist violates the contract by returning a foreign relation type.
type wrongTypeGenealogist struct{}

func (wrongTypeGenealogist) Type() RelationType { return "claimed" }

func (wrongTypeGenealogist) Infer(p1, p2 post.Post) (TypedRelation, error) {
	return NewTypedRelation(p1, p2, "actual", 50)
}

var errMockInfer = errors.New("mock infer failure")
