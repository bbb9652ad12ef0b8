// SPDX-License-Identifier: MIT
// Package: modpoet/topology
//
// impl_random.go - Random: seeded sparse forward topology.
//
// Canonical model:
//   - Erdős–Rényi-like: every forward pair (i,j), i<j, becomes the edge
//     universe[i] → universe[j] independently with probability Probability.
//   - Only forward pairs are sampled, so the result is acyclic.
//
// Contract:
//   - Probability ∈ [0,1] (else *ParamError for "probability").
//   - A fresh rand.Rand seeded with Seed is used per call; no shared state.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(E).
//
// Determinism:
//   - Stable trial order: i asc, then j asc. Same seed ⇒ same edges.

package topology

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/modpoet/core"
)

// Random samples forward edges with a fixed seed.
type Random struct {
	// Seed drives the pseudo-random source.
	Seed int64
	// Probability is the chance each forward pair becomes an edge.
	Probability float64
	// Method is the declaration verb of every produced edge.
	Method core.Method
}

// Kind implements Topology.
func (Random) Kind() Kind { return KindRandom }

func (Random) sealed() {}

// String implements fmt.Stringer.
func (t Random) String() string {
	return fmt.Sprintf("random(seed=%d, probability=%g, method=%s)", t.Seed, t.Probability, t.Method)
}

// Params implements Topology.
func (t Random) Params() Params {
	return Params{
		KeyType:        KindRandom.String(),
		KeySeed:        fmt.Sprint(t.Seed),
		KeyProbability: fmt.Sprint(t.Probability),
		KeyMethod:      t.Method.String(),
	}
}

// Edges implements Topology.
func (t Random) Edges(universe []core.ModuleName) ([]core.Edge, error) {
	if !validProbability(t.Probability) {
		return nil, paramErrorf(t, KeyProbability, "must be in [%.1f,%.1f], got %g",
			MinProbability, MaxProbability, t.Probability)
	}

	rng := rand.New(rand.NewSource(t.Seed))
	n := len(universe)

	var edges []core.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// Float64 ∈ [0,1): p=0 never fires, p=1 always does.
			if rng.Float64() < t.Probability {
				edges = append(edges, core.Edge{From: universe[i], To: universe[j], Method: t.Method})
			}
		}
	}

	return checkEdges(t, edges)
}
