// SPDX-License-Identifier: MIT
// Package: modpoet/topology
//
// impl_full.go - Full: all-pairs topology.
//
// Contract:
//   • Every module depends on every module that follows it in the universe.
//   • Emits each pair (i,j) with i<j exactly once; no reverse edges, so the
//     result stays acyclic and free of self edges.
//   • n ≤ 1 yields no edges.
//
// Complexity:
//   • Time: O(n²) edges.
//   • Space: O(n²) for the returned slice.
//
// Determinism:
//   • Lexicographic pair order by (i,j).

package topology

import (
	"fmt"

	"github.com/katalvlaran/modpoet/core"
)

// Full connects every module to all modules after it.
type Full struct {
	// Method is the declaration verb of every produced edge.
	Method core.Method
}

// Kind implements Topology.
func (Full) Kind() Kind { return KindFull }

func (Full) sealed() {}

// String implements fmt.Stringer.
func (t Full) String() string {
	return fmt.Sprintf("full(method=%s)", t.Method)
}

// Params implements Topology.
func (t Full) Params() Params {
	return Params{KeyType: KindFull.String(), KeyMethod: t.Method.String()}
}

// Edges implements Topology.
func (t Full) Edges(universe []core.ModuleName) ([]core.Edge, error) {
	n := len(universe)
	if n < 2 {
		return nil, nil
	}

	edges := make([]core.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, core.Edge{From: universe[i], To: universe[j], Method: t.Method})
		}
	}

	return checkEdges(t, edges)
}
