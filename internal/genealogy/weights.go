// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package genealogy

import (
	"fmt"
	"math"
	"sort"
)

// DefaultWeight is the weight of every relation type in AllEqual.
const DefaultWeight = 1.0

// Weights maps relation types to aggregation weights. It is read-only
// after construction and safe for concurrent use.
type Weights struct {
	byType        map[RelationType]float64
	defaultWeight float64
}

// NewWeights copies the mapping and validates every entry.
// Blank relation types and non-finite weights fail with ErrInvalidArgument.
func NewWeights(weights map[RelationType]float64, defaultWeight float64) (Weights, error) {
	if !isFinite(defaultWeight) {
		return Weights{}, fmt.Errorf("%w: default weight %v is not a number", ErrInvalidArgument, defaultWeight)
	}

	byType := make(map[RelationType]float64, len(weights))
	for relType, weight := range weights {
		if _, err := NewRelationType(string(relType)); err != nil {
			return Weights{}, fmt.Errorf("%w: weight %v has blank relation type", ErrInvalidArgument, weight)
		}
		if !isFinite(weight) {
			return Weights{}, fmt.Errorf("%w: weight of %q is missing", ErrInvalidArgument, relType)
		}
		byType[relType] = weight
	}

	return Weights{byType: byType, defaultWeight: defaultWeight}, nil
}

// ParseWeights builds Weights from configuration, where relation types are plain strings.
func ParseWeights(weights map[string]float64, defaultWeight float64) (Weights, error) {
	typed := make(map[RelationType]float64, len(weights))
	for name, weight := range weights {
		relType, err := NewRelationType(name)
		if err != nil {
			return Weights{}, fmt.Errorf("%w: weight %v has blank relation type", ErrInvalidArgument, weight)
		}
		typed[relType] = weight
	}
	return NewWeights(typed, defaultWeight)
}

// AllEqual weighs every relation type with DefaultWeight.
func AllEqual() Weights {
	return Weights{byType: map[RelationType]float64{}, defaultWeight: DefaultWeight}
}

// WeightOf returns the weight of the relation type, or the default weight.
func (w Weights) WeightOf(relType RelationType) float64 {
	if weight, ok := w.byType[relType]; ok {
		return weight
	}
	return w.defaultWeight
}

// Default returns the weight of unmapped relation types.
func (w Weights) Default() float64 {
	return w.defaultWeight
}

// Types returns the explicitly weighted relation types, sorted.
func (w Weights) Types() []RelationType {
	types := make([]RelationType, 0, len(w.byType))
	for relType := range w.byType {
		types = append(types, relType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
