package bfs

import (
	"fmt"

	"github.com/katalvlaran/creditflow/core"
)

// BFS explores g from start along edge direction, one frontier level at a
// time. Successors are taken in core.Neighbors order, so Order is stable.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil || !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	res := &Result{
		Order: []string{start},
		Depth: map[string]int{start: 0},
	}
	if start == o.target {
		return res, nil
	}

	frontier := []string{start}
	for depth := 1; len(frontier) > 0; depth++ {
		if err := o.ctx.Err(); err != nil {
			return res, err
		}

		var next []string
		for _, u := range frontier {
			edges, err := g.Neighbors(u)
			if err != nil {
				return res, fmt.Errorf("%w: %q: %v", ErrNeighbors, u, err)
			}
			for _, e := range edges {
				if _, seen := res.Depth[e.To]; seen || !o.keep(e) {
					continue
				}
				res.Depth[e.To] = depth
				res.Order = append(res.Order, e.To)
				if e.To == o.target {
					return res, nil
				}
				next = append(next, e.To)
			}
		}
		frontier = next
	}

	return res, nil
}
