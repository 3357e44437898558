package flow

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/creditflow/core"
)

// MinCostResult is the outcome of MinCostFlow.
//   - Cost: Σ flow·cost over all edges.
//   - Flow: units routed on each edge, keyed by Edge.ID; edges without flow are absent.
type MinCostResult struct {
	Cost int64
	Flow map[string]int64
}

// arc is one direction of a residual edge. rev indexes the paired arc in
// arcs[to]; edgeID is empty for reverse arcs and the super source/sink arcs.
type arc struct {
	to     int
	cap    int64
	cost   int64
	rev    int
	edgeID string
	init   int64
}

// residual is the residual network of MinCostFlow with a super source at
// index n and a super sink at index n+1.
type residual struct {
	arcs [][]arc
}

func (r *residual) add(from, to int, capacity, cost int64, edgeID string) {
	r.arcs[from] = append(r.arcs[from], arc{to: to, cap: capacity, cost: cost, rev: len(r.arcs[to]), edgeID: edgeID, init: capacity})
	r.arcs[to] = append(r.arcs[to], arc{to: from, cap: 0, cost: -cost, rev: len(r.arcs[from]) - 1})
}

// MinCostFlow routes flow through g so that every vertex v receives exactly
// demand[v] net units (negative demand = supply), at minimum total cost.
// Vertices absent from demand have zero demand.
//
// Steps:
//  1. Validate demands: known vertices, sum zero (ErrDemandImbalance).
//  2. Build the residual network; attach a super source feeding every supply
//     vertex and a super sink drained by every demand vertex. Unbounded edges
//     get the total supply as capacity, which no feasible flow can exceed on one edge.
//  3. Successive shortest paths: find the cheapest super source → super sink
//     path with a queue-based Bellman–Ford (reverse arcs have negative cost),
//     push its bottleneck, repeat until all supply is routed.
//  4. If the super sink becomes unreachable first, return ErrInfeasible.
//
// Complexity:
//
//	Time:   O(P · V · E) where P is the number of augmenting paths.
//	Memory: O(V + E).
func MinCostFlow(g *core.Graph, demand map[string]int64, opts FlowOptions) (MinCostResult, error) {
	opts.normalize()
	ctx := opts.Ctx

	var balance, supply int64
	for v, d := range demand {
		if !g.HasVertex(v) {
			return MinCostResult{}, fmt.Errorf("flow: demand on %q: %w", v, core.ErrVertexNotFound)
		}
		balance += d
		if d > 0 {
			supply += d
		}
	}
	if balance != 0 {
		return MinCostResult{}, fmt.Errorf("%w: sum is %d", ErrDemandImbalance, balance)
	}
	if supply == 0 {
		return MinCostResult{Flow: map[string]int64{}}, nil
	}

	vertices := g.Vertices()
	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}
	n := len(vertices)
	src, dst := n, n+1
	r := &residual{arcs: make([][]arc, n+2)}

	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		c := min(e.Capacity.Or(supply), supply)
		if c <= 0 {
			continue
		}
		r.add(index[e.From], index[e.To], c, e.Cost, e.ID)
	}
	for _, v := range vertices {
		switch d := demand[v]; {
		case d < 0:
			r.add(src, index[v], -d, 0, "")
		case d > 0:
			r.add(index[v], dst, d, 0, "")
		}
	}

	var routed, cost int64
	for routed < supply {
		if err := ctx.Err(); err != nil {
			return MinCostResult{}, err
		}
		dist, prevNode, prevArc := r.shortestPaths(src)
		if dist[dst] == math.MaxInt64 {
			opts.Logger.Debug("min-cost flow infeasible",
				zap.Int64("routed", routed),
				zap.Int64("supply", supply),
			)
			return MinCostResult{}, ErrInfeasible
		}

		push := supply - routed
		for v := dst; v != src; v = prevNode[v] {
			push = min(push, r.arcs[prevNode[v]][prevArc[v]].cap)
		}
		for v := dst; v != src; v = prevNode[v] {
			a := &r.arcs[prevNode[v]][prevArc[v]]
			a.cap -= push
			r.arcs[v][a.rev].cap += push
		}
		routed += push
		cost += push * dist[dst]
		opts.Logger.Debug("min-cost augmentation",
			zap.Int64("pushed", push),
			zap.Int64("path_cost", dist[dst]),
			zap.Int64("routed", routed),
		)
	}

	flows := make(map[string]int64)
	for _, out := range r.arcs[:n] {
		for _, a := range out {
			if a.edgeID == "" {
				continue
			}
			if f := a.init - a.cap; f > 0 {
				flows[a.edgeID] = f
			}
		}
	}

	return MinCostResult{Cost: cost, Flow: flows}, nil
}

// shortestPaths runs a queue-based Bellman–Ford from src over arcs with
// residual capacity. Successive shortest paths never create negative cycles,
// so the queue drains. Unreached vertices keep distance math.MaxInt64.
func (r *residual) shortestPaths(src int) (dist []int64, prevNode, prevArc []int) {
	size := len(r.arcs)
	dist = make([]int64, size)
	prevNode = make([]int, size)
	prevArc = make([]int, size)
	inQueue := make([]bool, size)
	for i := range dist {
		dist[i] = math.MaxInt64
		prevNode[i] = -1
	}
	dist[src] = 0
	queue := []int{src}
	inQueue[src] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		inQueue[u] = false
		for i, a := range r.arcs[u] {
			if a.cap <= 0 {
				continue
			}
			if nd := dist[u] + a.cost; nd < dist[a.to] {
				dist[a.to] = nd
				prevNode[a.to] = u
				prevArc[a.to] = i
				if !inQueue[a.to] {
					queue = append(queue, a.to)
					inQueue[a.to] = true
				}
			}
		}
	}

	return dist, prevNode, prevArc
}
