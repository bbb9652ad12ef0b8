// Package topology turns dependency-shape descriptors into directed module
// edges. It is the strategy layer between configuration and the merger in
// package resolve.
//
// The package offers the following key components:
//
//   - Descriptor parsing:
//     - Params:     raw string-keyed descriptor, "type" plus parameters.
//     - Parse:      validates a descriptor once and returns a typed variant.
//     - ParseAll:   parses a descriptor list in order, first error wins.
//   - Strategies (the closed set of Topology variants):
//     - Full:       i depends on every j > i.
//     - Linear:     i depends on i+1 (optional "length").
//     - Circle:     Linear plus last → first (optional "length").
//     - Star:       "center" index, "direction" out|in.
//     - Random:     "seed", "probability" over forward pairs.
//     Every variant accepts "method" (implementation, api, compileOnly,
//     testImplementation).
//   - Errors:
//     - ErrInvalidTopologyParameter / *ParamError: missing or bad parameter.
//     - ErrUnknownTopologyKind: "type" names no strategy.
//     - ErrSelfDependency: a strategy produced From == To.
//
// Guarantees:
//
//   - Purity: Edges has no side effects; same variant and universe give the
//     same edge list in the same order.
//   - Fast fail: syntactic problems surface in Parse, universe-dependent ones
//     (center out of range, length too long, one-module circle) in Edges.
//   - No panics at runtime.
//
// Example:
//
//	t, err := topology.Parse(topology.Params{"type": "star", "center": "0"})
//	if err != nil { ... }
//	edges, err := t.Edges(universe)
package topology
