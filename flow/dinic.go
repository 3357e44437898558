package flow

import (
	"context"
	"math"

	"go.uber.org/zap"
)

// dinic computes the maximum flow from source to sink over capMap using
// Dinic's algorithm (level graph + blocking flows). capMap is updated in
// place and holds the residual capacities on return.
//
// Steps:
//  1. Repeat until no more augmenting paths:
//     a. Check for cancellation (O(1)).
//     b. BFS to build the level graph: distance from source for each vertex (O(V + E)).
//     c. If sink unreachable, break.
//     d. Build adjacency list `next` for edges in level graph (O(E)).
//     e. DFS-based blocking flow pushes until none remains,
//     optionally rebuilding level graph every LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V² · E).
//	Memory: O(V + E) for auxiliary maps (level, next, iter).
func dinic(capMap map[string]map[string]int64, source, sink string, opts FlowOptions) (int64, error) {
	ctx := opts.Ctx
	var maxFlow int64
	augmentCount := 0
	for {
		if err := ctx.Err(); err != nil {
			return maxFlow, err
		}

		// BFS to compute levels
		level := make(map[string]int, len(capMap))
		for u := range capMap {
			level[u] = -1
		}
		queue := []string{source}
		level[source] = 0
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for v, capUV := range capMap[u] {
				if capUV > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// Level-graph adjacency: next[u] = neighbors v at level+1
		next := make(map[string][]string, len(capMap))
		for u, nbrs := range capMap {
			for v, capUV := range nbrs {
				if capUV > 0 && level[v] == level[u]+1 {
					next[u] = append(next[u], v)
				}
			}
		}

		// DFS-based blocking flow
		iter := make(map[string]int, len(next))
		for {
			if err := ctx.Err(); err != nil {
				return maxFlow, err
			}
			pushed := dfsDinicPush(ctx, capMap, next, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			opts.Logger.Debug("dinic augmentation",
				zap.Int64("pushed", pushed),
				zap.Int64("total", maxFlow),
			)
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, nil
}

// dfsDinicPush recursively pushes flow along the level graph.
// It respects cancellation via ctx, updates capMap in-place,
// and returns the amount actually sent.
func dfsDinicPush(
	ctx context.Context,
	capMap map[string]map[string]int64,
	next map[string][]string,
	iter map[string]int,
	u, sink string,
	available int64,
) int64 {
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for i := iter[u]; i < len(next[u]); i++ {
		v := next[u][i]
		capUV := capMap[u][v]
		if capUV <= 0 {
			iter[u] = i + 1
			continue
		}
		send := available
		if capUV < send {
			send = capUV
		}
		pushed := dfsDinicPush(ctx, capMap, next, iter, v, sink, send)
		if pushed > 0 {
			capMap[u][v] -= pushed
			capMap[v][u] += pushed

			return pushed
		}
		// v is a dead end for this phase.
		iter[u] = i + 1
	}

	return 0
}
