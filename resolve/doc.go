// Package resolve merges topology-generated and explicit dependency edges
// into the resolved graph of a project, and caches it for the run.
//
// Merge is the pure algorithm: topologies in configured order, then explicit
// edges in input order, grouped by source module with (From,To) duplicates
// absorbed. Project wraps a Config with compute-once accessors so many
// downstream generators can ask for the graph concurrently:
//
//	p := resolve.New(resolve.Config{
//		Modules:    4,
//		Topologies: []topology.Topology{topology.Linear{}},
//	})
//	g, err := p.ResolvedDependencies()
//
// Resolution either fully succeeds or fails with no observable graph.
package resolve
