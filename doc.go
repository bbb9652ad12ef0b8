// Package modpoet resolves the module dependency graph of a synthetic
// multi-module project: the graph that downstream build-file generators read
// to declare which module depends on which.
//
// What is modpoet?
//
//	A small pipeline with one package per step:
//		• naming/   - deterministic module names and the ordered module universe
//		• topology/ - dependency shapes (full, linear, circle, star, random)
//		• resolve/  - merge of topology and explicit edges, computed once per project
//		• core/     - the resolved Graph and its value types (ModuleName, Edge, Method)
//		• dfs/      - build order and cycle detection over a resolved Graph
//		• bfs/      - transitive dependencies of one module
//		• config/   - HCL, YAML and JSON project files
//
// Under cmd/modpoet sits a command that loads a project file and prints the
// resolved graph as text, JSON or YAML.
//
// Quick start:
//
//	f, err := config.Load("project.hcl")
//	cfg, err := f.Project()
//	p := resolve.New(cfg)
//	g, err := p.ResolvedDependencies()
//	for _, e := range g.EdgesFrom(p.ModuleName(naming.KindApp, 0)) {
//		fmt.Println(e)
//	}
//
// Guarantees:
//
//   - Same configuration, same graph: topologies are pure and applied in
//     configured order, explicit edges last.
//   - One edge per (from, to) pair; the first inserted method wins.
//   - Resolution succeeds completely or returns an error and no graph.
//   - A resolved Graph is frozen and safe for concurrent readers.
package modpoet
