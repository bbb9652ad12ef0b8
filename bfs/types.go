// Package bfs provides tunable options and error definitions
// for breadth-first walks over a resolved dependency graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/modpoet/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a module. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(id core.ModuleName, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterEdge can skip edges by returning false.
	FilterEdge func(e core.Edge) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// no filtering and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(core.ModuleName, int) error { return nil },
		FilterEdge: func(core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(id core.ModuleName, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithMethods follows only edges declared with one of methods, e.g. API
// alone for the set of modules exposed on a module's compile classpath.
func WithMethods(methods ...core.Method) Option {
	allowed := make(map[core.Method]struct{}, len(methods))
	for _, m := range methods {
		allowed[m] = struct{}{}
	}
	return WithFilterEdge(func(e core.Edge) bool {
		_, ok := allowed[e.Method]
		return ok
	})
}

// Result holds the outcome of a walk:
//   - Order: modules visited, in visit sequence, starting with the root.
//   - Depth: distance (in edges) from the root.
//   - Parent: predecessor of each module in the BFS tree.
type Result struct {
	Order  []core.ModuleName
	Depth  map[core.ModuleName]int
	Parent map[core.ModuleName]core.ModuleName
}

// Dependencies returns the visited modules without the root.
func (r *Result) Dependencies() []core.ModuleName {
	if len(r.Order) <= 1 {
		return nil
	}
	out := make([]core.ModuleName, len(r.Order)-1)
	copy(out, r.Order[1:])
	return out
}

// PathTo reconstructs the dependency chain from the root to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest core.ModuleName) ([]core.ModuleName, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []core.ModuleName{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
