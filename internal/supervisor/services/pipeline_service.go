// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/genealogy/internal/pipeline"
)

// DefaultInterval is used when PipelineServiceConfig.Interval is not positive.
const DefaultInterval = 5 * time.Minute

// PipelineRunner runs one recommendation pass.
type PipelineRunner interface {
	Run(ctx context.Context) (*pipeline.Result, error)
}

// PipelineServiceConfig holds configuration for the pipeline service.
type PipelineServiceConfig struct {
	// Interval is how often the recommendations are regenerated.
	Interval time.Duration
}

// PipelineService regenerates recommendations under Suture supervision.
// It runs the pipeline immediately and then on every tick. A failed run is
// logged and the next tick starts a fresh one.
type PipelineService struct {
	runner   PipelineRunner
	config   PipelineServiceConfig
	logger   zerolog.Logger
	name     string
	runs     atomic.Int64
	failures atomic.Int64
}

// NewPipelineService creates a new pipeline service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPipelineService(runner PipelineRunner, cfg PipelineServiceConfig, logger zerolog.Logger) *PipelineService {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	return &PipelineService{
		runner: runner,
		config: cfg,
		logger: logger.With().Str("service", "pipeline").Logger(),
		name:   "pipeline-service",
	}
}

// Serve implements the suture.Service interface.
func (s *PipelineService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Msg("pipeline service starting")

	s.run(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("pipeline service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.logger.Debug().Msg("scheduled run triggered")
			s.run(ctx)
		}
	}
}

func (s *PipelineService) run(ctx context.Context) {
	s.runs.Add(1)
	if _, err := s.runner.Run(ctx); err != nil {
		s.failures.Add(1)
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn().Err(err).Msg("pipeline run failed (will retry on schedule)")
	}
}

// Runs returns the number of runs started.
func (s *PipelineService) Runs() int64 {
	return s.runs.Load()
}

// Failures returns the number of failed runs.
func (s *PipelineService) Failures() int64 {
	return s.failures.Load()
}

// String returns the service name for logging.
func (s *PipelineService) String() string {
	return s.name
}
