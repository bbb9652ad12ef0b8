package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modpoet/core"
)

// mustAdd inserts every edge and fails the test on error.
func mustAdd(t *testing.T, g *core.Graph, edges ...core.Edge) {
	t.Helper()
	for _, e := range edges {
		_, err := g.AddEdge(e)
		require.NoError(t, err, "AddEdge(%s)", e)
	}
}

func TestAddEdge_DuplicateAbsorbed(t *testing.T) {
	g := core.NewGraph()

	added, err := g.AddEdge(core.NewEdge("A", "B"))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = g.AddEdge(core.NewEdge("A", "C"))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = g.AddEdge(core.Edge{From: "A", To: "B", Method: core.API})
	require.NoError(t, err)
	assert.False(t, added, "second (A,B) must be absorbed")

	want := map[core.ModuleName][]core.Edge{
		"A": {core.NewEdge("A", "B"), core.NewEdge("A", "C")},
	}
	if diff := cmp.Diff(want, g.Map()); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
	kept, ok := g.Edge("A", "B")
	require.True(t, ok)
	assert.Equal(t, core.Implementation, kept.Method, "first inserted method wins")
	assert.Equal(t, 2, g.EdgeCount())
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge(core.NewEdge("A", "A"))
	assert.ErrorIs(t, err, core.ErrSelfDependency)

	_, err = g.AddEdge(core.NewEdge("", "A"))
	assert.ErrorIs(t, err, core.ErrEmptyModuleName)

	assert.Zero(t, g.Len(), "failed inserts must not create edge sets")

	g.Freeze()
	g.Freeze()
	assert.True(t, g.Frozen())
	_, err = g.AddEdge(core.NewEdge("A", "B"))
	assert.ErrorIs(t, err, core.ErrFrozen)
}

func TestQueries(t *testing.T) {
	g := core.NewGraph()
	mustAdd(t, g,
		core.NewEdge("m2", "m0"),
		core.NewEdge("m0", "m2"),
		core.NewEdge("m0", "m1"),
		core.Edge{From: "m1", To: "m2", Method: core.CompileOnly},
	)

	assert.Equal(t, []core.ModuleName{"m0", "m1", "m2"}, g.Sources())
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("m0", "m1"))
	assert.False(t, g.HasEdge("m1", "m0"))
	assert.Nil(t, g.EdgesFrom("m9"))
	assert.Equal(t, []core.Edge{core.NewEdge("m0", "m1"), core.NewEdge("m0", "m2")}, g.EdgesFrom("m0"))
	assert.Equal(t, []core.ModuleName{"m0", "m1"}, g.Dependents("m2"))
	assert.Empty(t, g.Dependents("m9"))

	edges := g.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, core.ModuleName("m0"), edges[0].From)
	assert.Equal(t, core.ModuleName("m2"), edges[3].From)
}

func TestMapIsACopy(t *testing.T) {
	g := core.NewGraph()
	mustAdd(t, g, core.NewEdge("a", "b"))

	m := g.Map()
	m["a"][0].To = "zzz"
	delete(m, "a")

	assert.True(t, g.HasEdge("a", "b"))
}

func TestEqualAndClone(t *testing.T) {
	g := core.NewGraph()
	mustAdd(t, g, core.NewEdge("a", "b"), core.NewEdge("b", "c"))
	g.Freeze()

	c := g.Clone()
	assert.False(t, c.Frozen())
	assert.True(t, g.Equal(c))
	assert.True(t, c.Equal(g))

	mustAdd(t, c, core.NewEdge("c", "a"))
	assert.False(t, g.Equal(c))
	assert.Equal(t, 2, g.EdgeCount())

	other := core.NewGraph()
	mustAdd(t, other, core.Edge{From: "a", To: "b", Method: core.API}, core.NewEdge("b", "c"))
	assert.False(t, g.Equal(other), "method is part of equality")

	assert.False(t, g.Equal(nil))
	assert.True(t, g.Equal(g))
}

func TestConcurrentReadsOfFrozenGraph(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		mustAdd(t, g, core.NewEdge("hub", core.ModuleName(fmt.Sprintf("m%02d", i))))
	}
	g.Freeze()

	const readers = 32
	var wg sync.WaitGroup
	counts := make([]int, readers)
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func(r int) {
			defer wg.Done()
			counts[r] = len(g.EdgesFrom("hub")) + len(g.Map()["hub"])
		}(r)
	}
	wg.Wait()

	for _, c := range counts {
		assert.Equal(t, 100, c)
	}
}

func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	added := make([]bool, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			// every goroutine races on the same pair plus one unique pair
			ok, _ := g.AddEdge(core.NewEdge("X", "shared"))
			added[id] = ok
			_, _ = g.AddEdge(core.NewEdge("X", core.ModuleName(fmt.Sprintf("V%d", id))))
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, ok := range added {
		if ok {
			winners++
		}
	}
	assert.Equal(t, 1, winners, "exactly one insert of the shared pair wins")
	assert.Equal(t, num+1, g.EdgeCount())
}
