// Package dfs implements cycle detection for resolved dependency graphs.
// DetectCycles reports the cycles closed by DFS back-edges using three-color
// marking; each cycle is rotated so its smallest module comes first, and
// the final list is sorted for deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C=#cycles reported, L=avg cycle length)
//   - Memory: O(V + L_max)
package dfs

import (
	"sort"
	"strings"

	"github.com/katalvlaran/modpoet/core"
)

// DetectCycles returns the cycles found through back-edges, each closed
// ([a, b, c, a]) and canonically rotated. It returns nil when the graph is
// acyclic. Not every elementary cycle of a dense graph is listed, but the
// result is empty if and only if the graph has no cycle.
func DetectCycles(g *core.Graph, universe []core.ModuleName) ([][]core.ModuleName, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	d := &detector{
		graph: g,
		state: make(map[core.ModuleName]int, len(universe)),
		seen:  make(map[string]struct{}),
	}
	for _, m := range roots(g, universe) {
		if d.state[m] == White {
			d.visit(m)
		}
	}

	sort.Slice(d.cycles, func(i, j int) bool {
		return joinSig(d.cycles[i]) < joinSig(d.cycles[j])
	})

	return d.cycles, nil
}

type detector struct {
	graph  *core.Graph
	state  map[core.ModuleName]int
	path   []core.ModuleName
	seen   map[string]struct{}
	cycles [][]core.ModuleName
}

func (d *detector) visit(id core.ModuleName) {
	d.state[id] = Gray
	d.path = append(d.path, id)

	for _, e := range d.graph.EdgesFrom(id) {
		switch d.state[e.To] {
		case White:
			d.visit(e.To)
		case Gray:
			d.record(e.To)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[id] = Black
}

// record extracts the path segment starting at start and stores it once.
func (d *detector) record(start core.ModuleName) {
	idx := 0
	for i, m := range d.path {
		if m == start {
			idx = i
			break
		}
	}

	canon := rotateMin(d.path[idx:])
	canon = append(canon, canon[0])
	sig := joinSig(canon)
	if _, ok := d.seen[sig]; ok {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, canon)
}

// rotateMin returns a copy of an open cycle rotated to start at its smallest module.
func rotateMin(open []core.ModuleName) []core.ModuleName {
	minAt := 0
	for i, m := range open {
		if m < open[minAt] {
			minAt = i
		}
	}
	out := make([]core.ModuleName, 0, len(open)+1)
	out = append(out, open[minAt:]...)
	out = append(out, open[:minAt]...)
	return out
}

func joinSig(cycle []core.ModuleName) string {
	parts := make([]string, len(cycle))
	for i, m := range cycle {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}
