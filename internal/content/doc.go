// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

/*
Package content loads posts from markdown files with front matter.

# Layout

Markdown files directly in the content root are articles. The
subdirectories named in Config hold articles, videos and talks:

	content/
	  intro.md            article
	  articles/java.md    article
	  videos/modules.md   video
	  talks/jigsaw.md     talk

Missing kind subdirectories are skipped. A missing root is an error.

# Front Matter

The front matter is the block between the first two lines equal to
"---", parsed as YAML:

	---
	title: "Code-First Java Module System Tutorial"
	tags: [java-9, j_ms]
	date: 2017-09-11
	description: "Get started with the Java module system"
	slug: java-module-system-tutorial
	repo: demo-jpms
	---

title, tags, date, description and slug are required. Videos also need
videoSlug; talks need slides and may not carry repo. tags may be a YAML
list or a bracketed, comma separated string. Everything after the second
separator is the article body.
*/
package content
