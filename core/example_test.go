package core_test

import (
	"fmt"

	"github.com/katalvlaran/modpoet/core"
)

// ExampleGraph shows duplicate absorption and publication.
func ExampleGraph() {
	g := core.NewGraph()
	added, _ := g.AddEdge(core.NewEdge("module0", "module1"))
	fmt.Println("first:", added)
	added, _ = g.AddEdge(core.Edge{From: "module0", To: "module1", Method: core.API})
	fmt.Println("again:", added)

	g.Freeze()
	_, err := g.AddEdge(core.NewEdge("module1", "module2"))
	fmt.Println(err)

	for _, e := range g.Edges() {
		fmt.Println(e)
	}
	// Output:
	// first: true
	// again: false
	// AddEdge(module1 -> module2 (implementation)): core: graph is frozen
	// module0 -> module1 (implementation)
}
