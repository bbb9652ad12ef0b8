// Package dfs provides build ordering for resolved dependency graphs.
//
// BuildOrder computes a linear ordering of modules such that for every edge
// from→to (from depends on to), to appears before from: the order in which
// downstream generators can emit modules dependencies-first.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each module and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/modpoet/core"
)

// orderer encapsulates state for one BuildOrder traversal.
type orderer struct {
	graph *core.Graph
	state map[core.ModuleName]int
	order []core.ModuleName
}

// BuildOrder returns every module of universe, plus any other module named by
// an edge, in dependencies-first order. Roots are visited in universe order
// and dependencies by ascending name, so the result is deterministic.
func BuildOrder(g *core.Graph, universe []core.ModuleName) ([]core.ModuleName, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := &orderer{
		graph: g,
		state: make(map[core.ModuleName]int, len(universe)),
		order: make([]core.ModuleName, 0, len(universe)),
	}
	for _, m := range roots(g, universe) {
		if o.state[m] == White {
			if err := o.visit(m); err != nil {
				return nil, err
			}
		}
	}

	return o.order, nil
}

// visit appends id after all of its dependencies (post-order).
func (o *orderer) visit(id core.ModuleName) error {
	switch o.state[id] {
	case Gray:
		return fmt.Errorf("%w: at %s", ErrCycleDetected, id)
	case Black:
		return nil
	}
	o.state[id] = Gray

	for _, e := range o.graph.EdgesFrom(id) {
		if err := o.visit(e.To); err != nil {
			return err
		}
	}

	o.state[id] = Black
	o.order = append(o.order, id)

	return nil
}

// roots lists universe modules first, then edge sources outside the universe.
func roots(g *core.Graph, universe []core.ModuleName) []core.ModuleName {
	out := make([]core.ModuleName, 0, len(universe))
	inUniverse := make(map[core.ModuleName]struct{}, len(universe))
	for _, m := range universe {
		inUniverse[m] = struct{}{}
		out = append(out, m)
	}
	for _, m := range g.Sources() {
		if _, ok := inUniverse[m]; !ok {
			out = append(out, m)
		}
	}
	return out
}
