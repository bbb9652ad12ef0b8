// Package core holds the value types shared by every modpoet package and the
// resolved dependency Graph.
//
// The Graph G maps each source module to the set of modules it depends on:
//
//	adjacency[from][to] = Edge{From: from, To: to, Method: m}
//
// Properties:
//
//   - One edge per (From,To) pair. Re-adding a pair is a no-op that reports
//     added == false; the first inserted Method is kept.
//   - No self edges: AddEdge(Edge{From: a, To: a}) returns ErrSelfDependency.
//   - Lazy per-module sets: a module appears in Sources() only once it has
//     at least one outgoing edge.
//   - Deterministic reads: Sources(), EdgesFrom(), Edges() and Map() are
//     sorted by (From, To).
//   - Publication: Freeze() makes the graph read-only. A frozen graph can be
//     read from any number of goroutines; AddEdge returns ErrFrozen.
//
// Core methods:
//
//	AddEdge(e Edge) (added bool, err error)   // O(1)
//	HasEdge(from, to ModuleName) bool         // O(1)
//	Edge(from, to ModuleName) (Edge, bool)    // O(1)
//	EdgesFrom(from ModuleName) []Edge         // O(d log d)
//	Edges() []Edge                            // O(E log E)
//	Dependents(to ModuleName) []ModuleName    // O(V)
//	Sources() []ModuleName                    // O(V log V)
//	Map() map[ModuleName][]Edge               // O(E log E)
//	Equal(other *Graph) bool                  // O(E)
//	Clone() *Graph                            // O(V+E)
//	Freeze(), Frozen()
//
// Example:
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge(core.NewEdge("module0", "module1"))
//	_, _ = g.AddEdge(core.NewEdge("module0", "module1")) // absorbed
//	g.Freeze()
//	fmt.Println(g.EdgeCount()) // 1
package core
