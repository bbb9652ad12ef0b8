// File: api.go
// Role: Read-only views over a Graph: Sources/Len/Map/Equal and the
//       publication switch Freeze/Frozen.
// Concurrency:
//   - All methods take the read lock except Freeze.

package core

import "sort"

// Sources returns every module that has at least one outgoing edge,
// sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Sources() []ModuleName {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]ModuleName, 0, len(g.adjacency))
	for from := range g.adjacency {
		out = append(out, from)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Len returns the number of source modules (keys of the mapping).
// Complexity: O(1).
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Map returns a copy of the mapping From → outgoing edges. Slices are sorted
// by To; modules without dependencies are absent, as in the resolved mapping.
// Callers own the returned map.
// Complexity: O(E log E).
func (g *Graph) Map() map[ModuleName][]Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[ModuleName][]Edge, len(g.adjacency))
	for from, targets := range g.adjacency {
		out[from] = sortedEdges(targets)
	}

	return out
}

// Equal reports whether g and other hold the same edges, compared as sets
// keyed by (From,To) with equal Method metadata.
// Complexity: O(E).
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	if g.count != other.count || len(g.adjacency) != len(other.adjacency) {
		return false
	}
	for from, targets := range g.adjacency {
		otherTargets, ok := other.adjacency[from]
		if !ok || len(otherTargets) != len(targets) {
			return false
		}
		for to, e := range targets {
			if oe, ok := otherTargets[to]; !ok || oe != e {
				return false
			}
		}
	}

	return true
}

// Freeze publishes g: every later AddEdge fails with ErrFrozen.
// Freeze is idempotent.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}
