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

// AggregatePair folds the typed relations of one ordered pair into a Relation.
//
// The score is round(sum(score * weight) / count), where count is the
// number of typed relations and not the sum of the weights. Weights that
// push the result outside [MinScore, MaxScore] fail with ErrInvalidScore.
func AggregatePair(typed []TypedRelation, weights Weights) (Relation, error) {
	if len(typed) == 0 {
		return Relation{}, ErrEmptyAggregation
	}

	key := typed[0].Key()
	var sum float64
	for _, tr := range typed {
		if tr.Key() != key {
			return Relation{}, fmt.Errorf("%w: cannot aggregate %s with %s", ErrInvalidArgument, tr.Key(), key)
		}
		sum += float64(tr.Score()) * weights.WeightOf(tr.Type())
	}

	mean := math.Floor(sum/float64(len(typed)) + 0.5)
	if mean < MinScore || mean > MaxScore {
		return Relation{}, fmt.Errorf("relation %s: %w: aggregated %v not in [%d, %d]",
			key, ErrInvalidScore, mean, MinScore, MaxScore)
	}

	return NewRelation(typed[0].Post1(), typed[0].Post2(), int(mean))
}

// Aggregate groups typed relations by ordered slug pair and folds each group.
// The result is sorted by source slug, then destination slug.
func Aggregate(typed []TypedRelation, weights Weights) ([]Relation, error) {
	if len(typed) == 0 {
		return nil, ErrEmptyAggregation
	}

	groups := make(map[PairKey][]TypedRelation)
	for _, tr := range typed {
		key := tr.Key()
		groups[key] = append(groups[key], tr)
	}

	keys := make([]PairKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	relations := make([]Relation, 0, len(keys))
	for _, key := range keys {
		relation, err := AggregatePair(groups[key], weights)
		if err != nil {
			return nil, err
		}
		relations = append(relations, relation)
	}

	return relations, nil
}
