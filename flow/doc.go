// Package flow implements network-flow solvers over *core.Graph:
// maximum flow between two vertices and minimum-cost flow under node demands.
//
// Maximum flow:
//
//   - Dinic
//
//   - Method: level graph construction + blocking-flow via DFS.
//
//   - Time:   O(V² · E) in general; near O(E · √V) on unit networks.
//
//   - Default algorithm.
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²).
//
// Both aggregate parallel edges into one residual capacity per ordered pair,
// ignore self-loops, and report ErrUnbounded when source and sink are joined by
// a path made only of unbounded edges. Unbounded edges elsewhere are capped at
// the sum of all bounded capacities, which no finite cut can exceed.
//
// Minimum-cost flow:
//
//	MinCostFlow(g, demand, opts) (MinCostResult, error)
//
// A vertex with negative demand supplies flow, a vertex with positive demand
// absorbs it; demands must sum to zero. The solver routes all supply at the
// least total Σ flow·cost using successive shortest paths (Bellman–Ford queue
// variant on the residual network), and returns per-edge flows keyed by
// Edge.ID, so parallel edges keep their identity. ErrInfeasible reports that
// capacities cannot satisfy the demands.
//
// # Options
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // for cancellation / timeouts
//	    Logger               *zap.Logger     // debug trace of each augmentation
//	    Algorithm            Algorithm       // MaxFlow only
//	    LevelRebuildInterval int             // Dinic only: rebuild level graph every N pushes
//	}
//
// Use DefaultOptions() to obtain production-safe defaults.
//
// # Errors
//
//	ErrSourceNotFound / ErrSinkNotFound - endpoint missing from the graph.
//	ErrUnbounded       - max flow is infinite.
//	ErrInfeasible      - demands cannot be met.
//	ErrDemandImbalance - demands do not sum to zero.
//	ErrUnknownAlgorithm
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is canceled.
package flow
