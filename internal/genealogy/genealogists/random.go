// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package genealogists

import (
	"math/rand"
	"sync"
	"time"

	"github.com/tomtom215/genealogy/internal/genealogy"
	"github.com/tomtom215/genealogy/internal/post"
)

// RandomType is the relation type of RandomBaseline.
var RandomType = genealogy.MustRelationType("random")

// RandomBaseline scores every pair with a uniform integer in [0, 100].
// It is calibration noise, not a similarity measure.
//
// One generator is held for the whole procurement and guarded by a mutex,
// so concurrent Infer calls are safe. With a fixed seed, a single-worker
// run is reproducible; multi-worker runs interleave draws arbitrarily.
type RandomBaseline struct {
	baseGenealogist

	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewRandomBaseline creates the genealogist. A zero seed seeds from the clock.
func NewRandomBaseline(seed int64) *RandomBaseline {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomBaseline{
		baseGenealogist: newBaseGenealogist(RandomType),
		rng:             rand.New(rand.NewSource(seed)), //nolint:gosec // noise baseline, not security sensitive
	}
}

// Infer draws a random score.
//
//nolint:gocritic // Post is a small immutable value
func (g *RandomBaseline) Infer(p1, p2 post.Post) (genealogy.TypedRelation, error) {
	g.rngMu.Lock()
	score := g.rng.Intn(genealogy.MaxScore + 1)
	g.rngMu.Unlock()

	return g.relation(p1, p2, score)
}

var _ genealogy.Genealogist = (*RandomBaseline)(nil)
