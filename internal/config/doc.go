// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

/*
Package config provides configuration management for the genealogy tool.

Configuration is layered with Koanf v2. Later layers override earlier ones:

 1. Defaults built into the binary
 2. An optional YAML file
 3. Mapped environment variables
 4. Positional arguments: [content-dir [output-file]]

# Config File

The file is the first one found of:

  - the path in CONFIG_PATH
  - genealogy.yaml, genealogy.yml or .recs.yaml in the working directory
  - .recs.yaml in the home directory

Example:

	content:
	  dir: ./posts
	output:
	  file: ./recommendations.json
	genealogy:
	  genealogists: [tag, type, repo]
	  weights:
	    tag: 1.5
	    repo: 0.5
	  default_weight: 1.0
	  timeout: 2m
	recommend:
	  per_post: 3
	watch:
	  enabled: true
	  interval: 10m

# Environment Variables

Content:
  - GENEALOGY_CONTENT_DIR: Content root (required unless given as argument)
  - GENEALOGY_ARTICLES_DIR, GENEALOGY_VIDEOS_DIR, GENEALOGY_TALKS_DIR: Kind subdirectories
  - GENEALOGY_OUTPUT_FILE: Output file (default: stdout)

Inference:
  - GENEALOGY_GENEALOGISTS: Comma-separated genealogist names
  - GENEALOGY_WEIGHTS: Comma-separated type=weight pairs, e.g. tag=1.5,repo=0.5
  - GENEALOGY_DEFAULT_WEIGHT: Weight of unlisted relation types (default: 1.0)
  - GENEALOGY_WORKERS: Scoring workers (default: CPU count)
  - GENEALOGY_TIMEOUT: Inference deadline (default: 5m)
  - GENEALOGY_SEED: Random baseline seed (default: clock)

Other:
  - RECOMMEND_PER_POST: Recommendations per post (default: 3)
  - WATCH_ENABLED, WATCH_INTERVAL: Periodic regeneration (default: off, 5m)
  - METRICS_TEXTFILE: Prometheus textfile written after each run
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER: Logging

Empty and unmapped variables are ignored.

# Validation

Struct tags are checked with go-playground/validator, followed by checks
that need the filesystem: the content root must be a directory and an
existing output file must be writable.
*/
package config
