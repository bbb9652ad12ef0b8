// Package dfs implements depth-first analyses over a resolved dependency
// graph (core.Graph).
//
// What:
//
//   - BuildOrder: dependencies-first linear order of all modules, or
//     ErrCycleDetected. Generators use it to emit modules so that each one
//     is written after everything it depends on.
//   - DetectCycles: cycles closed by back-edges, canonically rotated and
//     sorted. Circle topologies always produce one.
//
// Why:
//   - A synthetic project with a dependency cycle does not build; the
//     resolver does not forbid cycles, so callers get a diagnostic instead.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers.
//   - ErrGraphNil, ErrCycleDetected.
//
// Complexity:
//
//   - BuildOrder:   Time O(V+E), Memory O(V)
//   - DetectCycles: Time O(V+E + C*L), Memory O(V+L_max)
//
// Determinism:
//
//   - Roots are visited in universe order, dependencies by ascending name.
package dfs
