// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package genealogy

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/genealogy/internal/post"
)

// --- Test: InferRelations ---

func TestInferRelations_PairsEveryOrderedPair(t *testing.T) {
	t.Parallel()

	posts := testPosts(t, "c", "a", "b")
	tag := &mockGenealogist{relType: "tag", fallback: 40}
	repo := &mockGenealogist{relType: "repo", fallback: 80}

	g := New(posts, []Genealogist{tag, repo}, AllEqual(), WithWorkers(2))
	relations, err := g.InferRelations(context.Background())
	if err != nil {
		t.Fatalf("InferRelations() error = %v", err)
	}

	// N*(N-1) relations, sorted by slug pair.
	wantKeys := []PairKey{
		{"a", "b"}, {"a", "c"},
		{"b", "a"}, {"b", "c"},
		{"c", "a"}, {"c", "b"},
	}
	gotKeys := make([]PairKey, len(relations))
	for i, r := range relations {
		gotKeys[i] = r.Key()
		if r.Score() != 60 {
			t.Errorf("relation %s score = %d, want 60", r.Key(), r.Score())
		}
	}
	if !reflect.DeepEqual(gotKeys, wantKeys) {
		t.Errorf("InferRelations() keys = %v, want %v", gotKeys, wantKeys)
	}

	// N*(N-1)*G typed relations.
	if got := tag.calls.Load() + repo.calls.Load(); got != 12 {
		t.Errorf("Infer calls = %d, want 12", got)
	}
	if g.PairCount() != 6 {
		t.Errorf("PairCount() = %d, want 6", g.PairCount())
	}
}

func TestInferRelations_AppliesWeights(t *testing.T) {
	t.Parallel()

	posts := testPosts(t, "a", "b")
	tag := &mockGenealogist{relType: "tag", fallback: 40}
	repo := &mockGenealogist{relType: "repo", fallback: 80}

	weights, err := NewWeights(map[RelationType]float64{"repo": 0.25}, 1.0)
	if err != nil {
		t.Fatalf("NewWeights() error = %v", err)
	}

	relations, err := New(posts, []Genealogist{tag, repo}, weights).InferRelations(context.Background())
	if err != nil {
		t.Fatalf("InferRelations() error = %v", err)
	}
	for _, r := range relations {
		if r.Score() != 30 {
			t.Errorf("relation %s score = %d, want 30", r.Key(), r.Score())
		}
	}
}

func TestInferRelations_PerPairScores(t *testing.T) {
	t.Parallel()

	posts := testPosts(t, "a", "b", "c")
	gen := &mockGenealogist{
		relType: "tag",
		scores: map[PairKey]int{
			{"a", "b"}: 60, {"a", "c"}: 40,
			{"b", "a"}: 50, {"b", "c"}: 70,
			{"c", "a"}: 80, {"c", "b"}: 60,
		},
	}

	relations, err := New(posts, []Genealogist{gen}, AllEqual()).InferRelations(context.Background())
	if err != nil {
		t.Fatalf("InferRelations() error = %v", err)
	}
	for _, r := range relations {
		if want := gen.scores[r.Key()]; r.Score() != want {
			t.Errorf("relation %s score = %d, want %d", r.Key(), r.Score(), want)
		}
	}
}

func TestInferRelations_Deterministic(t *testing.T) {
	t.Parallel()

	posts := testPosts(t, "e", "d", "c", "b", "a", "f", "g")
	gen := &mockGenealogist{relType: "tag", fallback: 33}

	first, err := New(posts, []Genealogist{gen}, AllEqual(), WithWorkers(1)).InferRelations(context.Background())
	if err != nil {
		t.Fatalf("InferRelations() error = %v", err)
	}
	second, err := New(posts, []Genealogist{gen}, AllEqual(), WithWorkers(8)).InferRelations(context.Background())
	if err != nil {
		t.Fatalf("InferRelations() error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("len = %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Key() != second[i].Key() || first[i].Score() != second[i].Score() {
			t.Errorf("relation %d differs: %s:%d vs %s:%d",
				i, first[i].Key(), first[i].Score(), second[i].Key(), second[i].Score())
		}
	}
}

func TestInferRelations_Empty(t *testing.T) {
	t.Parallel()

	gen := &mockGenealogist{relType: "tag", fallback: 50}

	tests := []struct {
		name  string
		posts []post.Post
		gens  []Genealogist
	}{
		{name: "no posts", posts: nil, gens: []Genealogist{gen}},
		{name: "single post", posts: testPosts(t, "a"), gens: []Genealogist{gen}},
		{name: "no genealogists", posts: testPosts(t, "a", "b"), gens: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			relations, err := New(tt.posts, tt.gens, AllEqual()).InferRelations(context.Background())
			if err != nil {
				t.Fatalf("InferRelations() error = %v", err)
			}
			if len(relations) != 0 {
				t.Errorf("InferRelations() len = %d, want 0", len(relations))
			}
		})
	}
}

func TestInferRelations_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		posts   []post.Post
		gens    []Genealogist
		weights Weights
		wantErr error
	}{
		{
			name:    "genealogist error",
			posts:   testPosts(t, "a", "b", "c"),
			gens:    []Genealogist{&mockGenealogist{relType: "tag", err: errMockInfer}},
			weights: AllEqual(),
			wantErr: errMockInfer,
		},
		{
			name:    "wrong relation type",
			posts:   testPosts(t, "a", "b"),
			gens:    []Genealogist{wrongTypeGenealogist{}},
			weights: AllEqual(),
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "duplicate slugs",
			posts:   testPosts(t, "a", "b", "a"),
			gens:    []Genealogist{&mockGenealogist{relType: "tag", fallback: 1}},
			weights: AllEqual(),
			wantErr: ErrInvalidArgument,
		},
		{
			name:  "aggregate out of range",
			posts: testPosts(t, "a", "b"),
			gens:  []Genealogist{&mockGenealogist{relType: "tag", fallback: 90}},
			weights: func() Weights {
				w, err := NewWeights(map[RelationType]float64{"tag": 2}, 1)
				if err != nil {
					t.Fatalf("NewWeights() error = %v", err)
				}
				return w
			}(),
			wantErr: ErrInvalidScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.posts, tt.gens, tt.weights, WithWorkers(2)).InferRelations(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("InferRelations() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestInferRelations_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &mockGenealogist{relType: "tag", fallback: 1}
	_, err := New(testPosts(t, "a", "b", "c"), []Genealogist{gen}, AllEqual()).InferRelations(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("InferRelations() error = %v, want context.Canceled", err)
	}
}

func TestInferRelations_Timeout(t *testing.T) {
	t.Parallel()

	gen := NewGenealogistFunc("slow", func(_, _ post.Post) int {
		time.Sleep(20 * time.Millisecond)
		return 1
	})

	posts := testPosts(t, "a", "b", "c", "d", "e", "f")
	_, err := New(posts, []Genealogist{gen}, AllEqual(),
		WithWorkers(1),
		WithTimeout(5*time.Millisecond),
	).InferRelations(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("InferRelations() error = %v, want context.DeadlineExceeded", err)
	}
}

// --- Test: Options ---

func TestOptions(t *testing.T) {
	t.Parallel()

	g := New(nil, nil, AllEqual(), WithWorkers(0), WithTimeout(-time.Second))
	if g.workers < 1 {
		t.Errorf("workers = %d, want default >= 1", g.workers)
	}
	if g.timeout != 0 {
		t.Errorf("timeout = %v, want 0", g.timeout)
	}

	g = New(nil, nil, AllEqual(), WithWorkers(3), WithTimeout(time.Minute))
	if g.workers != 3 || g.timeout != time.Minute {
		t.Errorf("options = (%d, %v), want (3, 1m)", g.workers, g.timeout)
	}
}

// --- Test: GenealogistFunc ---

func TestGenealogistFunc(t *testing.T) {
	t.Parallel()

	a := testPost(t, "a")
	b := testPost(t, "b")

	gen := NewGenealogistFunc("const", func(_, _ post.Post) int { return 7 })
	if gen.Type() != "const" {
		t.Errorf("Type() = %q, want const", gen.Type())
	}

	tr, err := gen.Infer(a, b)
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}
	if tr.Score() != 7 || tr.Type() != "const" {
		t.Errorf("Infer() = %s:%d, want const:7", tr.Type(), tr.Score())
	}

	bad := NewGenealogistFunc("bad", func(_, _ post.Post) int { return 101 })
	if _, err := bad.Infer(a, b); !errors.Is(err, ErrInvalidScore) {
		t.Errorf("Infer() error = %v, want ErrInvalidScore", err)
	}
}
