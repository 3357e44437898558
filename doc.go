// Package creditflow routes payments across a mutual-credit network.
//
// Accounts extend each other bilateral credit lines. A payment from A to C
// with no direct line travels as a chain of IOUs (A→B, B→C), each hop limited
// by what the line still allows. creditflow turns the lines reachable from a
// payer into a flow network and solves it.
//
// Layout:
//
//	amount/             decimal ⇄ scaled int64 amounts, bounded/unbounded capacities
//	core/               thread-safe directed multigraph of capacity/cost edges
//	bfs/                breadth-first traversal over core graphs
//	flow/               max flow (Dinic, Edmonds–Karp) and min-cost flow with demands
//	creditline/         CreditLine model, Store interface, memory store, YAML snapshots
//	creditline/pgstore/ PostgreSQL store
//	payment/            pricing, reachable graph, exact-amount routes, max flow
//	config/             viper configuration and zap logger setup
//	cmd/creditflow/     command-line interface
//
// Quick start:
//
//	store, _ := creditline.LoadFile("network.yaml")
//	fg, _ := payment.NewFlowGraph(ctx, store, "alice", "carol")
//	route, err := fg.ComputeExactAmount(ctx, decimal.NewFromInt(40))
package creditflow
