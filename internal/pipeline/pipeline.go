// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

// Package pipeline runs one complete recommendation pass: load posts,
// infer relations, recommend and render.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/genealogy/internal/config"
	"github.com/tomtom215/genealogy/internal/content"
	"github.com/tomtom215/genealogy/internal/genealogy"
	"github.com/tomtom215/genealogy/internal/logging"
	"github.com/tomtom215/genealogy/internal/metrics"
	"github.com/tomtom215/genealogy/internal/post"
	"github.com/tomtom215/genealogy/internal/recommend"
	"github.com/tomtom215/genealogy/internal/render"
)

// Result summarizes a successful run.
type Result struct {
	CorrelationID   string
	Posts           int
	PostsByKind     map[post.Kind]int
	Genealogists    []string
	Pairs           int
	Relations       int
	Recommendations []recommend.Recommendation
	Duration        time.Duration
}

// RecommendedCount returns the total number of recommended posts.
func (r *Result) RecommendedCount() int {
	n := 0
	for _, rec := range r.Recommendations {
		n += len(rec.Recommended)
	}
	return n
}

// Pipeline wires the content loader, the genealogy engine, the recommender
// and the renderer. It is safe to Run repeatedly; every run recomputes
// everything from the content directory.
type Pipeline struct {
	cfg         *config.Config
	registry    *genealogy.Registry
	loader      *content.Loader
	recommender *recommend.Recommender
	stdout      io.Writer
	base        zerolog.Logger
	logger      zerolog.Logger
}

// New creates a pipeline for cfg. Genealogist names in cfg are resolved
// against registry on every run.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(cfg *config.Config, registry *genealogy.Registry, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		registry: registry,
		loader: content.NewLoader(content.Config{
			Dir:         cfg.Content.Dir,
			ArticlesDir: cfg.Content.ArticlesDir,
			VideosDir:   cfg.Content.VideosDir,
			TalksDir:    cfg.Content.TalksDir,
		}, logger),
		recommender: recommend.New(logger),
		stdout:      os.Stdout,
		base:        logger,
		logger:      logger.With().Str("component", "pipeline").Logger(),
	}
}

// SetOutput redirects output meant for stdout, used when no output file is
// configured.
func (p *Pipeline) SetOutput(w io.Writer) {
	p.stdout = w
}

// Run executes one pass. Each run gets its own correlation ID, which is
// attached to every log line of the run.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	ctx = logging.ContextWithLogger(ctx, p.logger)
	logger := logging.Ctx(ctx)

	start := time.Now()
	result, err := p.run(ctx, logger)
	duration := time.Since(start)

	metrics.RecordPipelineRun(duration, err)
	p.writeMetrics(logger)

	if err != nil {
		logger.Error().Err(err).Dur("duration", duration).Msg("Pipeline run failed")
		return nil, err
	}

	result.CorrelationID = logging.CorrelationIDFromContext(ctx)
	result.Duration = duration
	logger.Info().
		Int("posts", result.Posts).
		Int("relations", result.Relations).
		Int("recommendations", result.RecommendedCount()).
		Dur("duration", duration).
		Msg("Pipeline run complete")
	return result, nil
}

func (p *Pipeline) run(ctx context.Context, logger *zerolog.Logger) (*Result, error) {
	posts, err := p.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading posts: %w", err)
	}

	byKind := make(map[post.Kind]int)
	kindCounts := make(map[string]int)
	for _, pst := range posts {
		byKind[pst.Kind()]++
		kindCounts[pst.Kind().String()]++
	}
	metrics.RecordPostsLoaded(kindCounts)
	logger.Debug().Int("posts", len(posts)).Msg("Posts loaded")

	names := p.cfg.Genealogy.Genealogists
	genealogists, err := p.registry.Procure(names, posts)
	if err != nil {
		return nil, fmt.Errorf("procuring genealogists: %w", err)
	}

	weights, err := genealogy.ParseWeights(p.cfg.Genealogy.Weights, p.cfg.Genealogy.DefaultWeight)
	if err != nil {
		return nil, fmt.Errorf("building weights: %w", err)
	}

	engineLogger := p.base.With().
		Str("correlation_id", logging.CorrelationIDFromContext(ctx)).
		Logger()
	engine := genealogy.New(posts, genealogists, weights,
		genealogy.WithWorkers(p.cfg.Genealogy.Workers),
		genealogy.WithTimeout(p.cfg.Genealogy.Timeout),
		genealogy.WithLogger(engineLogger),
	)

	inferStart := time.Now()
	relations, err := engine.InferRelations(ctx)
	if err != nil {
		return nil, fmt.Errorf("inferring relations: %w", err)
	}

	typed := make(map[string]int, len(genealogists))
	for _, gen := range genealogists {
		typed[gen.Type().String()] += engine.PairCount()
	}
	metrics.RecordInference(engine.PairCount(), typed, len(relations), time.Since(inferStart))

	recs, err := p.recommender.Recommend(relations, p.cfg.Recommend.PerPost)
	if err != nil {
		return nil, fmt.Errorf("recommending: %w", err)
	}

	result := &Result{
		Posts:           len(posts),
		PostsByKind:     byKind,
		Genealogists:    append([]string(nil), names...),
		Pairs:           engine.PairCount(),
		Relations:       len(relations),
		Recommendations: recs,
	}
	metrics.RecordRecommendations(result.RecommendedCount())

	if err := p.render(recs); err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Pipeline) render(recs []recommend.Recommendation) error {
	if p.cfg.Output.File == "" {
		return render.Write(p.stdout, recs)
	}
	return render.WriteFile(p.cfg.Output.File, recs)
}

func (p *Pipeline) writeMetrics(logger *zerolog.Logger) {
	path := p.cfg.Metrics.Textfile
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Failed to write metrics textfile")
	}
}
