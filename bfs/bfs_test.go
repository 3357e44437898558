package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/creditflow/amount"
	"github.com/katalvlaran/creditflow/bfs"
	"github.com/katalvlaran/creditflow/core"
)

// chain builds A→B→C→D with bounded edges plus an unbounded shortcut A→C.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithMultiEdges())
	for _, e := range []struct {
		from, to string
		c        amount.Capacity
	}{
		{"A", "B", amount.Bounded(1)},
		{"B", "C", amount.Bounded(1)},
		{"C", "D", amount.Unbounded()},
		{"A", "C", amount.Unbounded()},
	} {
		_, err := g.AddEdge(e.from, e.to, e.c, 0)
		require.NoError(t, err)
	}

	return g
}

func TestBFS_OrderAndDepth(t *testing.T) {
	res, err := bfs.BFS(chain(t), "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, res.Order)

	hops, ok := res.Hops("C")
	require.True(t, ok)
	require.Equal(t, 1, hops, "shortcut A→C")
	hops, _ = res.Hops("D")
	require.Equal(t, 2, hops)
}

func TestBFS_DirectedOnly(t *testing.T) {
	res, err := bfs.BFS(chain(t), "C")
	require.NoError(t, err)
	require.True(t, res.Reached("D"))
	require.False(t, res.Reached("A"), "edges are not walked backwards")

	_, ok := res.Hops("A")
	require.False(t, ok)
}

func TestBFS_FilterEdge(t *testing.T) {
	res, err := bfs.BFS(chain(t), "A", bfs.WithFilterEdge(func(e *core.Edge) bool {
		return e.Capacity.IsUnbounded()
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "D"}, res.Order)
	require.False(t, res.Reached("B"))
}

func TestBFS_TargetStopsEarly(t *testing.T) {
	res, err := bfs.BFS(chain(t), "A", bfs.WithTarget("C"))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Order)
	require.False(t, res.Reached("D"), "D lies beyond the target level")

	res, err = bfs.BFS(chain(t), "A", bfs.WithTarget("A"))
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, res.Order)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(chain(t), "Z")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(chain(t), "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
