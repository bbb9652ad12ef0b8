// File: methods_edges.go
// Role: Edge insertion and edge queries: AddEdge/HasEdge/Edge/EdgesFrom/Edges/
//       EdgeCount/Dependents.
// Determinism:
//   - Every slice result is sorted by (From, To).
// Concurrency:
//   - AddEdge under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts e under its From key.
//
// The per-module edge set is created on first insertion. A second edge with
// the same (From,To) pair is absorbed: AddEdge returns (false, nil) and the
// stored edge, including its Method, is left untouched.
//
// Errors: ErrEmptyModuleName, ErrSelfDependency, ErrFrozen.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) (bool, error) {
	if err := e.Validate(); err != nil {
		return false, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return false, fmt.Errorf("AddEdge(%s): %w", e, ErrFrozen)
	}

	targets, ok := g.adjacency[e.From]
	if !ok {
		targets = make(map[ModuleName]Edge)
		g.adjacency[e.From] = targets
	}
	if _, dup := targets[e.To]; dup {
		return false, nil
	}
	targets[e.To] = e
	g.count++

	return true, nil
}

// HasEdge reports whether from depends on to.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to ModuleName) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]
	return ok
}

// Edge returns the stored edge for (from,to).
// Complexity: O(1).
func (g *Graph) Edge(from, to ModuleName) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.adjacency[from][to]
	return e, ok
}

// EdgesFrom returns the outgoing edges of from, sorted by To.
// A module without dependencies yields nil.
// Complexity: O(d log d), d = out-degree.
func (g *Graph) EdgesFrom(from ModuleName) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedEdges(g.adjacency[from])
}

// Edges returns every edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.count)
	for _, targets := range g.adjacency {
		for _, e := range targets {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeLess(out[i], out[j]) })

	return out
}

// EdgeCount returns the number of distinct (From,To) pairs.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.count
}

// Dependents returns the modules that depend on to, sorted ascending.
// Complexity: O(V) map probes plus sorting.
func (g *Graph) Dependents(to ModuleName) []ModuleName {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []ModuleName
	for from, targets := range g.adjacency {
		if _, ok := targets[to]; ok {
			out = append(out, from)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// sortedEdges copies one edge set into a slice ordered by To.
func sortedEdges(targets map[ModuleName]Edge) []Edge {
	if len(targets) == 0 {
		return nil
	}
	out := make([]Edge, 0, len(targets))
	for _, e := range targets {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeLess(out[i], out[j]) })

	return out
}

func edgeLess(a, b Edge) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	return a.To < b.To
}
