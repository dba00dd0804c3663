// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package genealogy

import (
	"fmt"
	"math"
	"strings"

	"github.com/tomtom215/genealogy/internal/post"
)

// Score bounds shared by typed and aggregated relations.
const (
	MinScore = 0
	MaxScore = 100
)

// RelationType names the genealogist that produced a score.
// It is an open set: genealogists define their own names.
type RelationType string

// NewRelationType validates and returns a relation type.
func NewRelationType(name string) (RelationType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidRelationType
	}
	return RelationType(name), nil
}

// MustRelationType is like NewRelationType but panics on blank names.
// It is intended for package-level relation types of built-in genealogists.
func MustRelationType(name string) RelationType {
	t, err := NewRelationType(name)
	if err != nil {
		panic(fmt.Sprintf("genealogy: relation type %q: %v", name, err))
	}
	return t
}

// String returns the relation type name.
func (t RelationType) String() string {
	return string(t)
}

// PairKey identifies an ordered pair of posts by slug.
type PairKey struct {
	Source      string
	Destination string
}

// Less orders keys by source slug, then destination slug.
func (k PairKey) Less(other PairKey) bool {
	if k.Source != other.Source {
		return k.Source < other.Source
	}
	return k.Destination < other.Destination
}

// String renders the key as "source -> destination".
func (k PairKey) String() string {
	return k.Source + " -> " + k.Destination
}

// TypedRelation is one genealogist's score for an ordered pair of posts.
type TypedRelation struct {
	post1   post.Post
	post2   post.Post
	relType RelationType
	score   int
}

// NewTypedRelation validates the pair, type and score.
//
//nolint:gocritic // Post is a small immutable value
func NewTypedRelation(p1, p2 post.Post, relType RelationType, score int) (TypedRelation, error) {
	if p1.Equal(p2) {
		return TypedRelation{}, fmt.Errorf("%w: post %q related to itself", ErrInvalidArgument, p1.Slug())
	}
	if strings.TrimSpace(string(relType)) == "" {
		return TypedRelation{}, ErrInvalidRelationType
	}
	if err := checkScore(score); err != nil {
		return TypedRelation{}, fmt.Errorf("%s relation %s -> %s: %w", relType, p1.Slug(), p2.Slug(), err)
	}
	return TypedRelation{post1: p1, post2: p2, relType: relType, score: score}, nil
}

// Post1 returns the source post.
func (r TypedRelation) Post1() post.Post { return r.post1 }

// Post2 returns the destination post.
func (r TypedRelation) Post2() post.Post { return r.post2 }

// Type returns the relation type.
func (r TypedRelation) Type() RelationType { return r.relType }

// Score returns the score in [MinScore, MaxScore].
func (r TypedRelation) Score() int { return r.score }

// Key returns the ordered slug pair.
func (r TypedRelation) Key() PairKey {
	return PairKey{Source: r.post1.Slug(), Destination: r.post2.Slug()}
}

// Relation is the aggregated score of all typed relations of one ordered pair.
type Relation struct {
	post1 post.Post
	post2 post.Post
	score int
}

// NewRelation validates the pair and score.
//
//nolint:gocritic // Post is a small immutable value
func NewRelation(p1, p2 post.Post, score int) (Relation, error) {
	if p1.Equal(p2) {
		return Relation{}, fmt.Errorf("%w: post %q related to itself", ErrInvalidArgument, p1.Slug())
	}
	if err := checkScore(score); err != nil {
		return Relation{}, fmt.Errorf("relation %s -> %s: %w", p1.Slug(), p2.Slug(), err)
	}
	return Relation{post1: p1, post2: p2, score: score}, nil
}

// Post1 returns the source post.
func (r Relation) Post1() post.Post { return r.post1 }

// Post2 returns the destination post.
func (r Relation) Post2() post.Post { return r.post2 }

// Score returns the aggregated score in [MinScore, MaxScore].
func (r Relation) Score() int { return r.score }

// Key returns the ordered slug pair.
func (r Relation) Key() PairKey {
	return PairKey{Source: r.post1.Slug(), Destination: r.post2.Slug()}
}

func checkScore(score int) error {
	if score < MinScore || score > MaxScore {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidScore, score, MinScore, MaxScore)
	}
	return nil
}

// Round rounds half up, so 0.5 becomes 1 and 2.5 becomes 3.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}
