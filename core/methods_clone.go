// File: methods_clone.go
// Role: Copying a graph.
// Concurrency:
//   - Read lock on the source only; the clone is a fresh, unshared value.

package core

// Clone returns a deep, mutable (unfrozen) copy of g.
// Edges are values, so no storage is shared with the source.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	for from, targets := range g.adjacency {
		copied := make(map[ModuleName]Edge, len(targets))
		for to, e := range targets {
			copied[to] = e
		}
		clone.adjacency[from] = copied
	}
	clone.count = g.count

	return clone
}
