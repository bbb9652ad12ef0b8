// SPDX-License-Identifier: MIT
// Package: modpoet/topology
//
// impl_circle.go - Circle: chain closed into a ring.
//
// Contract:
//   • Same edges as Linear over the first Length modules, plus last → first.
//   • A single-module ring would close on itself: ErrSelfDependency.
//   • An empty universe yields no edges.
//
// Complexity:
//   • Time: O(n) edges. Space: O(n).
//
// Determinism:
//   • Chain edges by increasing i, closing edge last.

package topology

import (
	"fmt"

	"github.com/katalvlaran/modpoet/core"
)

// Circle chains modules in universe order and closes the ring.
type Circle struct {
	// Length restricts the ring to the first Length modules; 0 means all.
	Length int
	// Method is the declaration verb of every produced edge.
	Method core.Method
}

// Kind implements Topology.
func (Circle) Kind() Kind { return KindCircle }

func (Circle) sealed() {}

// String implements fmt.Stringer.
func (t Circle) String() string {
	return fmt.Sprintf("circle(length=%d, method=%s)", t.Length, t.Method)
}

// Params implements Topology.
func (t Circle) Params() Params {
	p := Params{KeyType: KindCircle.String(), KeyMethod: t.Method.String()}
	if t.Length > 0 {
		p[KeyLength] = fmt.Sprint(t.Length)
	}
	return p
}

// Edges implements Topology.
func (t Circle) Edges(universe []core.ModuleName) ([]core.Edge, error) {
	mods, err := prefix(t, universe, t.Length)
	if err != nil {
		return nil, err
	}
	if len(mods) == 0 {
		return nil, nil
	}

	edges := chain(mods, t.Method)
	edges = append(edges, core.Edge{From: mods[len(mods)-1], To: mods[0], Method: t.Method})

	return checkEdges(t, edges)
}
