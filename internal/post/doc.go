// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

// Package post defines the content items relations are inferred between.
//
// A Post is an article, a video or a talk. It is immutable once built and
// identified solely by its slug: Equal compares slugs, and every grouping
// in the engine keys on the slug rather than on the value itself.
//
// Kind-specific rules enforced by New:
//   - video: requires a video slug, may carry a repository
//   - talk: requires an absolute slides URL, may carry a video slug, never a repository
//   - article: may carry a repository
package post
