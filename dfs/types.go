// Package dfs defines the visitation states and sentinel errors shared by the
// depth-first traversals over a resolved dependency graph.
package dfs

import "errors"

// Visitation states of a module during traversal.
const (
	White = iota // White: the module has not been visited yet.
	Gray         // Gray: the module is on the current traversal stack.
	Black        // Black: the module and all its dependencies are done.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to BuildOrder
	// or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that BuildOrder met a dependency cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)
