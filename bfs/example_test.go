package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/modpoet/bfs"
	"github.com/katalvlaran/modpoet/core"
)

// ExampleWalk lists the transitive dependencies of an app module.
func ExampleWalk() {
	g := core.NewGraph()
	_, _ = g.AddEdge(core.NewEdge("androidAppModule0", "module0"))
	_, _ = g.AddEdge(core.NewEdge("module0", "module1"))
	_, _ = g.AddEdge(core.NewEdge("module1", "module2"))

	res, _ := bfs.Walk(g, "androidAppModule0")
	for _, m := range res.Dependencies() {
		fmt.Println(m, res.Depth[m])
	}
	// Output:
	// module0 1
	// module1 2
	// module2 3
}
