// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run status label values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	// Content Metrics
	PostsLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "genealogy_posts_loaded",
			Help: "Number of posts loaded by the last run",
		},
		[]string{"kind"}, // "article", "video", "talk"
	)

	// Inference Metrics
	PairsScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genealogy_pairs_scored_total",
			Help: "Total number of ordered post pairs scored",
		},
	)

	TypedRelations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genealogy_typed_relations_total",
			Help: "Total number of typed relations inferred",
		},
		[]string{"type"}, // genealogist relation type
	)

	RelationsAggregated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genealogy_relations_total",
			Help: "Total number of aggregated relations",
		},
	)

	InferenceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "genealogy_inference_duration_seconds",
			Help:    "Duration of relation inference in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4.4m
		},
	)

	// Recommendation Metrics
	RecommendationsEmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genealogy_recommendations_total",
			Help: "Total number of recommended posts emitted",
		},
	)

	// Pipeline Metrics
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genealogy_pipeline_runs_total",
			Help: "Total number of pipeline runs",
		},
		[]string{"status"}, // "success", "failure"
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "genealogy_pipeline_duration_seconds",
			Help:    "Duration of complete pipeline runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	PipelineLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "genealogy_pipeline_last_success_timestamp_seconds",
			Help: "Unix timestamp of the last successful pipeline run",
		},
	)
)

// RecordPostsLoaded sets the loaded post gauge for every kind in counts.
func RecordPostsLoaded(counts map[string]int) {
	PostsLoaded.Reset()
	for kind, n := range counts {
		PostsLoaded.WithLabelValues(kind).Set(float64(n))
	}
}

// RecordInference records the outcome of one relation inference.
func RecordInference(pairs int, typed map[string]int, relations int, duration time.Duration) {
	PairsScored.Add(float64(pairs))
	for relType, n := range typed {
		TypedRelations.WithLabelValues(relType).Add(float64(n))
	}
	RelationsAggregated.Add(float64(relations))
	InferenceDuration.Observe(duration.Seconds())
}

// RecordRecommendations records the number of recommended posts emitted.
func RecordRecommendations(n int) {
	RecommendationsEmitted.Add(float64(n))
}

// RecordPipelineRun records a pipeline run metric
func RecordPipelineRun(duration time.Duration, err error) {
	PipelineDuration.Observe(duration.Seconds())
	if err != nil {
		PipelineRuns.WithLabelValues(StatusFailure).Inc()
		return
	}
	PipelineRuns.WithLabelValues(StatusSuccess).Inc()
	PipelineLastSuccess.Set(float64(time.Now().Unix()))
}

// WriteTextfile writes the default gatherer's metrics to path in the
// Prometheus text format, for node_exporter's textfile collector. The file
// is replaced atomically.
func WriteTextfile(path string) error {
	return WriteTextfileFrom(prometheus.DefaultGatherer, path)
}

// WriteTextfileFrom writes the metrics of gatherer to path.
func WriteTextfileFrom(gatherer prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return fmt.Errorf("writing metrics textfile %s: %w", path, err)
	}
	return nil
}
