// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

/*
Command genealogy infers relations between the posts of a content
directory and writes the top recommendations for every post as JSON.

Usage:

	genealogy [content-dir [output-file]]

The content directory holds articles as Markdown files at its root or in
articles/, and videos and talks in videos/ and talks/. Every file starts
with a front matter block carrying title, tags, date, description and slug.

Without an output file the JSON document is written to stdout and all
logging goes to stderr, so the command can be piped:

	genealogy ./content | jq '.[0]'

Configuration is layered: built-in defaults, then a YAML file (CONFIG_PATH,
genealogy.yaml, genealogy.yml, .recs.yaml, ~/.recs.yaml), then environment
variables, then the positional arguments. Run "genealogy -h" for the list
of environment variables.

With WATCH_ENABLED=true the command stays in the foreground and regenerates
the recommendations every WATCH_INTERVAL under a supervisor until it
receives SIGINT or SIGTERM.
*/
package main
