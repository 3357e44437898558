package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/creditflow/bfs"
	"github.com/katalvlaran/creditflow/core"
)

// capLimit bounds the stand-in capacity of unbounded edges so that sums of
// residual capacities cannot overflow int64.
const capLimit = math.MaxInt64 / 4

// boundedTotal returns the saturating sum of all bounded capacities in g.
func boundedTotal(g *core.Graph) int64 {
	var total int64
	for _, e := range g.Edges() {
		n, ok := e.Capacity.Value()
		if !ok {
			continue
		}
		if total > capLimit-n {
			return capLimit
		}
		total += n
	}

	return total
}

// buildCapMap constructs a nested map of residual capacities of g,
// aggregating parallel edges and ignoring loops.
//
// capMap[u][v] = total capacity from u → v; unbounded edges contribute
// infinite, the stand-in for unbounded capacity.
//
// Steps:
//  1. Initialize capMap with one inner map per vertex (O(V)).
//  2. For each vertex u in sorted order, check ctx, then add every outgoing
//     non-loop edge capacity into capMap[u][e.To] (saturating at capLimit).
//  3. Drop entries whose aggregated capacity is zero.
//
// Complexity:
//
//	Time:   O(V + E*log d_max).
//	Memory: O(V + E).
func buildCapMap(ctx context.Context, g *core.Graph, infinite int64) (map[string]map[string]int64, error) {
	vertices := g.Vertices()
	capMap := make(map[string]map[string]int64, len(vertices))
	for _, u := range vertices {
		capMap[u] = make(map[string]int64)
	}

	for _, u := range vertices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range neighbors {
			if e.From == e.To {
				continue
			}
			c := e.Capacity.Or(infinite)
			sum := capMap[u][e.To]
			if sum > capLimit-c {
				sum = capLimit
			} else {
				sum += c
			}
			capMap[u][e.To] = sum
		}
		for v, total := range capMap[u] {
			if total <= 0 {
				delete(capMap[u], v)
			}
		}
	}

	return capMap, nil
}

// hasUnboundedPath reports whether sink is reachable from source using only
// unbounded edges.
func hasUnboundedPath(ctx context.Context, g *core.Graph, source, sink string) (bool, error) {
	res, err := bfs.BFS(g, source,
		bfs.WithContext(ctx),
		bfs.WithFilterEdge(func(e *core.Edge) bool { return e.Capacity.IsUnbounded() }),
		bfs.WithTarget(sink),
	)
	if err != nil {
		return false, err
	}

	return res.Reached(sink), nil
}
