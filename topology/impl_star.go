// SPDX-License-Identifier: MIT
// Package: modpoet/topology
//
// impl_star.go - Star: hub-and-spoke topology.
//
// Contract:
//   - Center is a universe index in [0,n) (else *ParamError for "center").
//   - DirectionOut: center → leaf for every other module (center depends on
//     all leaves). DirectionIn: leaf → center.
//   - Leaves are never connected to each other.
//
// Complexity:
//   - Time: O(n) edges. Space: O(n).
//
// Determinism:
//   - Spokes emitted by increasing leaf index.

package topology

import (
	"fmt"

	"github.com/katalvlaran/modpoet/core"
)

// Star connects one center module to every other module.
type Star struct {
	// Center is the universe index of the hub.
	Center int
	// Direction orients the spokes; the zero value is DirectionOut.
	Direction Direction
	// Method is the declaration verb of every produced edge.
	Method core.Method
}

// Kind implements Topology.
func (Star) Kind() Kind { return KindStar }

func (Star) sealed() {}

// String implements fmt.Stringer.
func (t Star) String() string {
	return fmt.Sprintf("star(center=%d, direction=%s, method=%s)", t.Center, t.Direction, t.Method)
}

// Params implements Topology.
func (t Star) Params() Params {
	return Params{
		KeyType:      KindStar.String(),
		KeyCenter:    fmt.Sprint(t.Center),
		KeyDirection: t.Direction.String(),
		KeyMethod:    t.Method.String(),
	}
}

// Edges implements Topology.
func (t Star) Edges(universe []core.ModuleName) ([]core.Edge, error) {
	n := len(universe)
	if t.Center < 0 || t.Center >= n {
		return nil, paramErrorf(t, KeyCenter, "index %d out of range [0,%d)", t.Center, n)
	}

	hub := universe[t.Center]
	edges := make([]core.Edge, 0, n-1)
	for i, leaf := range universe {
		if i == t.Center {
			continue
		}
		if t.Direction == DirectionIn {
			edges = append(edges, core.Edge{From: leaf, To: hub, Method: t.Method})
		} else {
			edges = append(edges, core.Edge{From: hub, To: leaf, Method: t.Method})
		}
	}

	return checkEdges(t, edges)
}
