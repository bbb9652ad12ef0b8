package bfs

import (
	"fmt"

	"github.com/katalvlaran/modpoet/core"
)

type queueItem struct {
	id    core.ModuleName
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[core.ModuleName]bool
	res     *Result
}

// Walk runs breadth-first search over the outgoing edges of g starting from
// start, i.e. over start's transitive dependencies. A start module with no
// outgoing edges yields a result holding only itself.
//
// Returns ErrGraphNil, core.ErrEmptyModuleName, ErrOptionViolation, the
// context error on cancellation, or a wrapped OnVisit error.
func Walk(g *core.Graph, start core.ModuleName, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start == "" {
		return nil, fmt.Errorf("bfs: start: %w", core.ErrEmptyModuleName)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(map[core.ModuleName]bool),
		res: &Result{
			Depth:  make(map[core.ModuleName]int),
			Parent: make(map[core.ModuleName]core.ModuleName),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id core.ModuleName, d int, parent core.ModuleName) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		// EdgesFrom is sorted by target, so the visit order is reproducible.
		for _, e := range w.graph.EdgesFrom(item.id) {
			if !w.opts.FilterEdge(e) || w.visited[e.To] {
				continue
			}
			w.enqueue(e.To, next, item.id)
		}
	}
	return nil
}
