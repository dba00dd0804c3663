// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package genealogy

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/genealogy/internal/post"
)

// Genealogy infers one aggregated Relation per ordered pair of posts.
// It holds no state besides its inputs and may be run repeatedly.
type Genealogy struct {
	posts        []post.Post
	genealogists []Genealogist
	weights      Weights

	workers int
	timeout time.Duration
	logger  zerolog.Logger
}

// Option configures a Genealogy.
type Option func(*Genealogy)

// WithWorkers bounds the number of source posts scored concurrently.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(g *Genealogy) {
		if n >= 1 {
			g.workers = n
		}
	}
}

// WithTimeout bounds a whole InferRelations call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(g *Genealogy) {
		if d >= 0 {
			g.timeout = d
		}
	}
}

// WithLogger sets the logger. The default discards everything.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Genealogy) {
		g.logger = logger
	}
}

// New creates a Genealogy over copies of the given posts and genealogists.
func New(posts []post.Post, genealogists []Genealogist, weights Weights, opts ...Option) *Genealogy {
	g := &Genealogy{
		posts:        append([]post.Post(nil), posts...),
		genealogists: append([]Genealogist(nil), genealogists...),
		weights:      weights,
		workers:      runtime.NumCPU(),
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With().Str("component", "genealogy").Logger()
	return g
}

// PairCount returns the number of ordered pairs, N*(N-1).
func (g *Genealogy) PairCount() int {
	n := len(g.posts)
	if n < 2 {
		return 0
	}
	return n * (n - 1)
}

// InferRelations scores every ordered pair of distinct posts with every
// genealogist and aggregates the scores per pair.
//
// Scoring is sharded by source post over at most WithWorkers goroutines;
// the first error cancels the remaining work. The result is sorted by
// source slug, then destination slug, so it does not depend on scheduling.
// Fewer than two posts, or no genealogists, yield an empty result.
func (g *Genealogy) InferRelations(ctx context.Context) ([]Relation, error) {
	if err := g.checkSlugs(); err != nil {
		return nil, err
	}
	if g.PairCount() == 0 || len(g.genealogists) == 0 {
		g.logger.Debug().
			Int("posts", len(g.posts)).
			Int("genealogists", len(g.genealogists)).
			Msg("nothing to infer")
		return []Relation{}, nil
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	g.logger.Debug().
		Int("posts", len(g.posts)).
		Int("genealogists", len(g.genealogists)).
		Int("pairs", g.PairCount()).
		Int("workers", g.workers).
		Msg("inferring relations")

	shards := make([][]TypedRelation, len(g.posts))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i := range g.posts {
		eg.Go(func() error {
			typed, err := g.scoreSource(egCtx, g.posts[i])
			if err != nil {
				return err
			}
			shards[i] = typed
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	typed := make([]TypedRelation, 0, g.PairCount()*len(g.genealogists))
	for _, shard := range shards {
		typed = append(typed, shard...)
	}

	relations, err := Aggregate(typed, g.weights)
	if err != nil {
		return nil, err
	}

	g.logger.Debug().
		Int("typed_relations", len(typed)).
		Int("relations", len(relations)).
		Dur("duration", time.Since(start)).
		Msg("relations inferred")

	return relations, nil
}

// scoreSource produces the typed relations of every pair starting at source.
//
//nolint:gocritic // Post is a small immutable value
func (g *Genealogy) scoreSource(ctx context.Context, source post.Post) ([]TypedRelation, error) {
	typed := make([]TypedRelation, 0, (len(g.posts)-1)*len(g.genealogists))
	for _, dest := range g.posts {
		if source.Equal(dest) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scoring %s: %w", source.Slug(), err)
		}
		for _, gen := range g.genealogists {
			tr, err := infer(gen, source, dest)
			if err != nil {
				return nil, err
			}
			typed = append(typed, tr)
		}
	}
	return typed, nil
}

// infer calls the genealogist and checks its postcondition.
//
//nolint:gocritic // Post is a small immutable value
func infer(gen Genealogist, p1, p2 post.Post) (TypedRelation, error) {
	tr, err := gen.Infer(p1, p2)
	if err != nil {
		return TypedRelation{}, fmt.Errorf("genealogist %s on %s -> %s: %w", gen.Type(), p1.Slug(), p2.Slug(), err)
	}
	if tr.Type() != gen.Type() {
		return TypedRelation{}, fmt.Errorf("%w: genealogist %s returned relation of type %q",
			ErrInvalidArgument, gen.Type(), tr.Type())
	}
	if want := (PairKey{Source: p1.Slug(), Destination: p2.Slug()}); tr.Key() != want {
		return TypedRelation{}, fmt.Errorf("%w: genealogist %s returned relation %s for pair %s",
			ErrInvalidArgument, gen.Type(), tr.Key(), want)
	}
	return tr, nil
}

func (g *Genealogy) checkSlugs() error {
	seen := make(map[string]struct{}, len(g.posts))
	for _, p := range g.posts {
		if _, dup := seen[p.Slug()]; dup {
			return fmt.Errorf("%w: duplicate post slug %q", ErrInvalidArgument, p.Slug())
		}
		seen[p.Slug()] = struct{}{}
	}
	return nil
}
