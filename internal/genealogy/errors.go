// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package genealogy

import "errors"

// Sentinel errors. Callers wrap them with context and check with errors.Is.
var (
	// ErrInvalidScore is returned when a relation score falls outside [MinScore, MaxScore].
	ErrInvalidScore = errors.New("score out of range")

	// ErrInvalidArgument is returned for malformed inputs such as a
	// non-positive K, incomplete weights or relations of mixed pairs.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyAggregation is returned when aggregating zero typed relations.
	ErrEmptyAggregation = errors.New("no relations to aggregate")

	// ErrInvalidRelationType is returned for blank relation type names.
	ErrInvalidRelationType = errors.New("invalid relation type")

	// ErrNoGenealogists is returned when no genealogist could be procured.
	ErrNoGenealogists = errors.New("no genealogists found")

	// ErrUnknownGenealogist is returned when a requested genealogist is not registered.
	ErrUnknownGenealogist = errors.New("unknown genealogist")
)
