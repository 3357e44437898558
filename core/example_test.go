package core_test

import (
	"fmt"

	"github.com/katalvlaran/creditflow/amount"
	"github.com/katalvlaran/creditflow/core"
)

// ExampleGraph builds a two-tier edge between A and B.
func ExampleGraph() {
	g := core.NewGraph(core.WithMultiEdges())

	_, _ = g.AddEdge("A", "B", amount.Bounded(500), 0, core.WithKey(0), core.WithRef("ab"))
	_, _ = g.AddEdge("A", "B", amount.Bounded(10000), 1000000, core.WithKey(1), core.WithRef("ab"))

	for _, e := range g.EdgesBetween("A", "B") {
		fmt.Println(e.ID, e.From, "->", e.To, e.Capacity, e.Cost, e.Ref)
	}
	fmt.Println("vertices:", g.Vertices())

	// Output:
	// e1 A -> B 500 0 ab
	// e2 A -> B 10000 1000000 ab
	// vertices: [A B]
}
