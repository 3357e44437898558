// Package bfs answers reachability questions over a core.Graph.
//
// BFS walks edges in their direction (From → To) level by level and records
// the hop count of every vertex it discovers. Edges can be pruned with
// WithFilterEdge, for example to follow only unbounded credit, and
// WithTarget ends the walk once a given vertex is found.
//
//	res, err := bfs.BFS(g, payer,
//	    bfs.WithContext(ctx),
//	    bfs.WithTarget(recipient),
//	)
//	if err != nil { ... }
//	hops, ok := res.Hops(recipient)
//
// Time O(V + E), memory O(V). The context is checked between levels.
package bfs
