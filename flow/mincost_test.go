package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/creditflow/amount"
	"github.com/katalvlaran/creditflow/core"
	"github.com/katalvlaran/creditflow/flow"
)

func TestMinCostFlow_PrefersCheaperPath(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	cheap1, _ := g.AddEdge("A", "B", amount.Bounded(10), 1)
	cheap2, _ := g.AddEdge("B", "D", amount.Bounded(10), 1)
	dear1, _ := g.AddEdge("A", "C", amount.Bounded(10), 5)
	dear2, _ := g.AddEdge("C", "D", amount.Bounded(10), 5)

	res, err := flow.MinCostFlow(g, map[string]int64{"A": -15, "D": 15}, flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, int64(10), res.Flow[cheap1])
	require.Equal(t, int64(10), res.Flow[cheap2])
	require.Equal(t, int64(5), res.Flow[dear1])
	require.Equal(t, int64(5), res.Flow[dear2])
	require.Equal(t, int64(10*2+5*10), res.Cost)
}

func TestMinCostFlow_ParallelEdgesKeepIdentity(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	free, _ := g.AddEdge("A", "B", amount.Bounded(3), 0)
	paid, _ := g.AddEdge("A", "B", amount.Bounded(10), 1_000_000)

	res, err := flow.MinCostFlow(g, map[string]int64{"A": -5, "B": 5}, flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, int64(3), res.Flow[free], "free tier is used first")
	require.Equal(t, int64(2), res.Flow[paid])
	require.Equal(t, int64(2_000_000), res.Cost)
}

func TestMinCostFlow_UnboundedEdge(t *testing.T) {
	g := core.NewGraph()
	e1, _ := g.AddEdge("A", "B", amount.Unbounded(), 0)
	e2, _ := g.AddEdge("B", "C", amount.Bounded(100), 2)

	res, err := flow.MinCostFlow(g, map[string]int64{"A": -40, "C": 40}, flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, map[string]int64{e1: 40, e2: 40}, res.Flow)
	require.Equal(t, int64(80), res.Cost)
}

func TestMinCostFlow_Rerouting(t *testing.T) {
	// The cheapest first path S→A→B→T must be partly undone via the B→A
	// residual arc to route two units.
	g := core.NewGraph()
	sa, _ := g.AddEdge("S", "A", amount.Bounded(1), 1)
	sb, _ := g.AddEdge("S", "B", amount.Bounded(1), 5)
	ab, _ := g.AddEdge("A", "B", amount.Bounded(1), 1)
	at, _ := g.AddEdge("A", "T", amount.Bounded(1), 5)
	bt, _ := g.AddEdge("B", "T", amount.Bounded(1), 1)

	res, err := flow.MinCostFlow(g, map[string]int64{"S": -2, "T": 2}, flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, int64(12), res.Cost)
	require.Equal(t, int64(1), res.Flow[sa])
	require.Equal(t, int64(1), res.Flow[sb])
	require.Equal(t, int64(1), res.Flow[at])
	require.Equal(t, int64(1), res.Flow[bt])
	require.Zero(t, res.Flow[ab])
}

func TestMinCostFlow_Infeasible(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", amount.Bounded(10000), 0)
	_, _ = g.AddEdge("B", "C", amount.Bounded(5000), 0)

	_, err := flow.MinCostFlow(g, map[string]int64{"A": -6000, "C": 6000}, flow.DefaultOptions())
	require.ErrorIs(t, err, flow.ErrInfeasible)
}

func TestMinCostFlow_DemandValidation(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", amount.Bounded(1), 0)

	_, err := flow.MinCostFlow(g, map[string]int64{"A": -1, "B": 2}, flow.DefaultOptions())
	require.ErrorIs(t, err, flow.ErrDemandImbalance)

	_, err = flow.MinCostFlow(g, map[string]int64{"A": -1, "Z": 1}, flow.DefaultOptions())
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	res, err := flow.MinCostFlow(g, nil, flow.FlowOptions{})
	require.NoError(t, err)
	require.Empty(t, res.Flow)
	require.Zero(t, res.Cost)
}

func TestMinCostFlow_Conservation(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge("P", "X", amount.Bounded(30), 3)
	_, _ = g.AddEdge("P", "Y", amount.Bounded(30), 1)
	_, _ = g.AddEdge("X", "R", amount.Bounded(30), 1)
	_, _ = g.AddEdge("Y", "X", amount.Bounded(10), 0)
	_, _ = g.AddEdge("Y", "R", amount.Bounded(15), 4)

	demand := map[string]int64{"P": -40, "R": 40}
	res, err := flow.MinCostFlow(g, demand, flow.DefaultOptions())
	require.NoError(t, err)

	net := map[string]int64{}
	for _, e := range g.Edges() {
		f := res.Flow[e.ID]
		n, _ := e.Capacity.Value()
		require.LessOrEqual(t, f, n, "edge %s over capacity", e.ID)
		net[e.From] -= f
		net[e.To] += f
	}
	for _, v := range g.Vertices() {
		require.Equal(t, demand[v], net[v], "conservation at %s", v)
	}
}
