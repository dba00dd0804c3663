// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

/*
Package metrics provides Prometheus metrics for the genealogy pipeline.

Collectors are registered with the default registry through promauto.
There is no HTTP endpoint; after each run the pipeline can write the
default gatherer to a file for node_exporter's textfile collector:

	metrics:
	  textfile: /var/lib/node_exporter/textfile/genealogy.prom

# Available Metrics

Content:
  - genealogy_posts_loaded: Posts loaded by the last run (gauge)
    Labels: kind

Inference:
  - genealogy_pairs_scored_total: Ordered post pairs scored (counter)
  - genealogy_typed_relations_total: Typed relations inferred (counter)
    Labels: type
  - genealogy_relations_total: Aggregated relations (counter)
  - genealogy_inference_duration_seconds: Inference latency (histogram)

Recommendations and runs:
  - genealogy_recommendations_total: Recommended posts emitted (counter)
  - genealogy_pipeline_runs_total: Pipeline runs (counter)
    Labels: status (success, failure)
  - genealogy_pipeline_duration_seconds: Pipeline latency (histogram)
  - genealogy_pipeline_last_success_timestamp_seconds: Last successful run (gauge)
*/
package metrics
