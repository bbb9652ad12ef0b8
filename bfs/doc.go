// Package bfs walks a resolved dependency graph breadth-first from one
// module, yielding its transitive dependencies by distance.
//
// What
//
//   - Walk follows outgoing edges (module → its dependencies) from a root.
//   - Result carries Order (visit sequence), Depth (edges from the root)
//     and Parent (BFS tree), plus PathTo for the chain that pulls a module in.
//   - WithMethods restricts the walk to edges of given methods, e.g. API
//     alone to get what leaks onto a consumer's compile classpath.
//
// Determinism
//
//	Edges are expanded in ascending target order, so the visit sequence is
//	reproducible for a given graph.
//
// Complexity (V = modules reached, E = their edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Walk(g, "androidAppModule0", bfs.WithMaxDepth(2))
//	deps := res.Dependencies()
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - core.ErrEmptyModuleName if the root is empty.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - ctx.Err() on cancellation, or wrapped OnVisit errors.
package bfs
