package flow

import (
	"math"
	"sort"

	"go.uber.org/zap"
)

// edmondsKarp computes the maximum flow from source to sink over capMap
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
// capMap is updated in place.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func edmondsKarp(capMap map[string]map[string]int64, source, sink string, opts FlowOptions) (int64, error) {
	var maxFlow int64
	for {
		if err := opts.Ctx.Err(); err != nil {
			return maxFlow, err
		}
		path, bottle := bfsAugmentingPath(capMap, source, sink)
		if len(path) == 0 {
			break
		}
		opts.Logger.Debug("edmonds-karp augmentation",
			zap.Strings("path", path),
			zap.Int64("flow", bottle),
		)
		maxFlow += bottle

		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottle
			capMap[v][u] += bottle
		}
	}

	return maxFlow, nil
}

// bfsAugmentingPath finds the shortest (fewest-edges) path in capMap from
// source→sink with positive residual capacity, and returns that path plus its
// bottleneck capacity. Returns nil if no path exists.
func bfsAugmentingPath(capMap map[string]map[string]int64, source, sink string) ([]string, int64) {
	parent := make(map[string]string, len(capMap))
	bottleneck := map[string]int64{source: math.MaxInt64}

	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		// Sorted successors keep the chosen paths reproducible.
		succ := make([]string, 0, len(capMap[u]))
		for v := range capMap[u] {
			succ = append(succ, v)
		}
		sort.Strings(succ)

		for _, v := range succ {
			capUV := capMap[u][v]
			if _, seen := bottleneck[v]; seen || capUV <= 0 {
				continue
			}
			parent[v] = u
			bottleneck[v] = min(bottleneck[u], capUV)
			if v == sink {
				path := []string{sink}
				for cur := sink; cur != source; {
					p := parent[cur]
					path = append(path, p)
					cur = p
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path, bottleneck[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}
