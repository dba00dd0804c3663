// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package recommend

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/genealogy/internal/genealogy"
	"github.com/tomtom215/genealogy/internal/post"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// fixture builds posts by slug and relations between them.
type fixture struct {
	t     *testing.T
	posts map[string]post.Post
}

func newFixture(t *testing.T, slugs ...string) *fixture {
	t.Helper()

	f := &fixture{t: t, posts: make(map[string]post.Post, len(slugs))}
	for _, slug := range slugs {
		p, err := post.New(post.Attributes{
			Kind:        post.KindArticle,
			Slug:        slug,
			Title:       "Title " + slug,
			Description: "Description " + slug,
			Date:        time.Date(2019, 9, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("post.New(%q) error = %v", slug, err)
		}
		f.posts[slug] = p
	}
	return f
}

func (f *fixture) rel(from, to string, score int) genealogy.Relation {
	f.t.Helper()

	r, err := genealogy.NewRelation(f.posts[from], f.posts[to], score)
	if err != nil {
		f.t.Fatalf("NewRelation(%s, %s, %d) error = %v", from, to, score, err)
	}
	return r
}

// summary maps source slug to recommended slugs.
func summary(recs []Recommendation) map[string][]string {
	out := make(map[string][]string, len(recs))
	for _, rec := range recs {
		out[rec.Post.Slug()] = rec.Slugs()
	}
	return out
}

// --- Test: Recommend ---

func TestRecommend_SingleSource(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "A", "B", "C")
	relations := []genealogy.Relation{
		f.rel("A", "B", 60),
		f.rel("A", "C", 40),
	}

	recs, err := New(testLogger()).Recommend(relations, 1)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	want := map[string][]string{"A": {"B"}}
	if got := summary(recs); !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend() = %v, want %v", got, want)
	}
	if recs[0].Recommended[0].Score != 60 {
		t.Errorf("score = %d, want 60", recs[0].Recommended[0].Score)
	}
}

func TestRecommend_ThreePosts(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "A", "B", "C")
	relations := []genealogy.Relation{
		f.rel("A", "B", 60), f.rel("A", "C", 40),
		f.rel("B", "A", 50), f.rel("B", "C", 70),
		f.rel("C", "A", 80), f.rel("C", "B", 60),
	}

	recs, err := New(testLogger()).Recommend(relations, 1)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	want := map[string][]string{"A": {"B"}, "B": {"C"}, "C": {"A"}}
	if got := summary(recs); !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend() = %v, want %v", got, want)
	}

	gotOrder := []string{recs[0].Post.Slug(), recs[1].Post.Slug(), recs[2].Post.Slug()}
	if !reflect.DeepEqual(gotOrder, []string{"A", "B", "C"}) {
		t.Errorf("source order = %v, want [A B C]", gotOrder)
	}
}

func TestRecommend_Ranking(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "src", "a", "b", "c", "d", "e")
	relations := []genealogy.Relation{
		f.rel("src", "e", 10),
		f.rel("src", "c", 70),
		f.rel("src", "b", 70),
		f.rel("src", "a", 30),
		f.rel("src", "d", 90),
	}

	tests := []struct {
		k    int
		want []string
	}{
		{k: 1, want: []string{"d"}},
		{k: 2, want: []string{"d", "b"}},
		{k: 3, want: []string{"d", "b", "c"}},
		{k: 5, want: []string{"d", "b", "c", "a", "e"}},
		{k: 10, want: []string{"d", "b", "c", "a", "e"}},
	}

	for _, tt := range tests {
		recs, err := New(testLogger()).Recommend(relations, tt.k)
		if err != nil {
			t.Fatalf("Recommend(k=%d) error = %v", tt.k, err)
		}
		if len(recs) != 1 {
			t.Fatalf("Recommend(k=%d) len = %d, want 1", tt.k, len(recs))
		}
		if got := recs[0].Slugs(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Recommend(k=%d) = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestRecommend_BoundedAndExcludesSource(t *testing.T) {
	t.Parallel()

	slugs := []string{"a", "b", "c", "d", "e"}
	f := newFixture(t, slugs...)

	var relations []genealogy.Relation
	for i, from := range slugs {
		for j, to := range slugs {
			if from == to {
				continue
			}
			relations = append(relations, f.rel(from, to, (i*17+j*31)%101))
		}
	}
	// A zero relation compares equal to itself and must be dropped.
	relations = append(relations, genealogy.Relation{})

	for k := 1; k <= 6; k++ {
		recs, err := New(testLogger()).Recommend(relations, k)
		if err != nil {
			t.Fatalf("Recommend(k=%d) error = %v", k, err)
		}
		if len(recs) != len(slugs) {
			t.Errorf("Recommend(k=%d) len = %d, want %d", k, len(recs), len(slugs))
		}
		for _, rec := range recs {
			if len(rec.Recommended) > k {
				t.Errorf("k=%d: %s has %d recommendations", k, rec.Post.Slug(), len(rec.Recommended))
			}
			for i, sp := range rec.Recommended {
				if sp.Post.Equal(rec.Post) {
					t.Errorf("k=%d: %s recommends itself", k, rec.Post.Slug())
				}
				if i > 0 && sp.Score > rec.Recommended[i-1].Score {
					t.Errorf("k=%d: %s not sorted by descending score", k, rec.Post.Slug())
				}
			}
		}
	}
}

func TestRecommend_NoRelations(t *testing.T) {
	t.Parallel()

	recs, err := New(testLogger()).Recommend(nil, 3)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("Recommend() len = %d, want 0", len(recs))
	}
}

func TestRecommend_InvalidK(t *testing.T) {
	t.Parallel()

	for _, k := range []int{0, -1} {
		if _, err := New(testLogger()).Recommend(nil, k); !errors.Is(err, genealogy.ErrInvalidArgument) {
			t.Errorf("Recommend(k=%d) error = %v, want ErrInvalidArgument", k, err)
		}
	}
}

func TestRecommendation_RecommendedPosts(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "a", "b", "c")
	rec := Recommendation{
		Post: f.posts["a"],
		Recommended: []ScoredPost{
			{Post: f.posts["c"], Score: 80},
			{Post: f.posts["b"], Score: 20},
		},
	}

	posts := rec.RecommendedPosts()
	if len(posts) != 2 || posts[0].Slug() != "c" || posts[1].Slug() != "b" {
		t.Errorf("RecommendedPosts() = %v, want [c b]", posts)
	}
}
