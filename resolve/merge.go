package resolve

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/modpoet/core"
	"github.com/katalvlaran/modpoet/topology"
)

// ErrUnknownModule indicates an explicit edge endpoint outside the module
// universe. It is only raised with WithStrictModules.
var ErrUnknownModule = errors.New("resolve: module not in universe")

// Merge combines topology-generated and explicit edges into one frozen graph.
//
// Topologies are processed in the given order, then explicit edges in input
// order. Each edge is inserted under its From key; a repeated (From,To) pair
// is absorbed and the first inserted edge is kept. The first failing
// topology or explicit edge aborts the merge and no graph is returned.
//
// Complexity: O(Σ edges produced).
func Merge(universe []core.ModuleName, topologies []topology.Topology, explicit []core.Edge, opts ...Option) (*core.Graph, error) {
	cfg := newOptions(opts...)
	g := core.NewGraph()
	absorbed := 0

	for i, t := range topologies {
		if t == nil {
			return nil, fmt.Errorf("Merge: nil topology at index %d: %w", i, topology.ErrInvalidTopologyParameter)
		}
		edges, err := t.Edges(universe)
		if err != nil {
			return nil, fmt.Errorf("Merge: topologies[%d]: %w", i, err)
		}
		n, err := addAll(g, edges, cfg.logger)
		if err != nil {
			return nil, fmt.Errorf("Merge: topologies[%d]: %w", i, err)
		}
		absorbed += n
		cfg.logger.Debug("Applied topology.", "index", i, "topology", t.String(), "edges", len(edges), "absorbed", n)
	}

	var known map[core.ModuleName]struct{}
	if cfg.strict {
		known = make(map[core.ModuleName]struct{}, len(universe))
		for _, m := range universe {
			known[m] = struct{}{}
		}
	}
	for i, e := range explicit {
		if known != nil {
			if err := checkKnown(known, e); err != nil {
				return nil, fmt.Errorf("Merge: dependencies[%d]: %w", i, err)
			}
		}
		n, err := addAll(g, []core.Edge{e}, cfg.logger)
		if err != nil {
			return nil, fmt.Errorf("Merge: dependencies[%d]: %w", i, err)
		}
		absorbed += n
	}

	g.Freeze()
	cfg.logger.Debug("Dependency merge complete.",
		"sources", g.Len(), "edges", g.EdgeCount(), "absorbed", absorbed)

	return g, nil
}

// addAll inserts edges and returns how many were absorbed as duplicates.
func addAll(g *core.Graph, edges []core.Edge, logger *slog.Logger) (int, error) {
	absorbed := 0
	for _, e := range edges {
		added, err := g.AddEdge(e)
		if err != nil {
			return absorbed, err
		}
		if added {
			continue
		}
		absorbed++
		if kept, _ := g.Edge(e.From, e.To); kept.Method != e.Method {
			logger.Debug("Absorbed duplicate edge with different method.",
				"from", e.From, "to", e.To, "kept", kept.Method, "dropped", e.Method)
		}
	}
	return absorbed, nil
}

func checkKnown(known map[core.ModuleName]struct{}, e core.Edge) error {
	if _, ok := known[e.From]; !ok {
		return fmt.Errorf("%s: %w", e.From, ErrUnknownModule)
	}
	if _, ok := known[e.To]; !ok {
		return fmt.Errorf("%s: %w", e.To, ErrUnknownModule)
	}
	return nil
}
