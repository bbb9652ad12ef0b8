// SPDX-License-Identifier: MIT
// Package: modpoet/topology
//
// impl_linear.go - Linear: chain topology.
//
// Contract:
//   - Over the first Length modules (all when Length == 0), module i depends
//     on module i+1 for i = 0..n-2.
//   - Length > len(universe) → *ParamError for "length".
//   - n ≤ 1 yields no edges.
//
// Complexity:
//   - Time: O(n) edges. Space: O(n).
//
// Determinism:
//   - Edge emission order by increasing i.

package topology

import (
	"fmt"

	"github.com/katalvlaran/modpoet/core"
)

// Linear chains modules in universe order.
type Linear struct {
	// Length restricts the chain to the first Length modules; 0 means all.
	Length int
	// Method is the declaration verb of every produced edge.
	Method core.Method
}

// Kind implements Topology.
func (Linear) Kind() Kind { return KindLinear }

func (Linear) sealed() {}

// String implements fmt.Stringer.
func (t Linear) String() string {
	return fmt.Sprintf("linear(length=%d, method=%s)", t.Length, t.Method)
}

// Params implements Topology.
func (t Linear) Params() Params {
	p := Params{KeyType: KindLinear.String(), KeyMethod: t.Method.String()}
	if t.Length > 0 {
		p[KeyLength] = fmt.Sprint(t.Length)
	}
	return p
}

// Edges implements Topology.
func (t Linear) Edges(universe []core.ModuleName) ([]core.Edge, error) {
	mods, err := prefix(t, universe, t.Length)
	if err != nil {
		return nil, err
	}
	return checkEdges(t, chain(mods, t.Method))
}

// chain emits mods[i] → mods[i+1] for every consecutive pair.
func chain(mods []core.ModuleName, m core.Method) []core.Edge {
	if len(mods) < 2 {
		return nil
	}
	edges := make([]core.Edge, 0, len(mods))
	for i := 1; i < len(mods); i++ {
		edges = append(edges, core.Edge{From: mods[i-1], To: mods[i], Method: m})
	}
	return edges
}
