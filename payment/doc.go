// Package payment computes how a payment travels through a mutual-credit
// network.
//
// A payer can only pay by issuing IOUs along credit lines that others have
// extended, hop by hop, until the value reaches the recipient. The package
// discovers every line reachable from the payer (BuildGraph), prices each line
// (Chunks), and asks the flow solvers for either the cheapest feasible route
// for an exact amount or the largest amount that could be sent at all.
//
// Usage:
//
//	fg, err := payment.NewFlowGraph(ctx, store, "alice", "carol")
//	if err != nil { ... }
//	route, err := fg.ComputeExactAmount(ctx, decimal.NewFromInt(40))
//	switch {
//	case errors.Is(err, payment.ErrNoRoute):
//	case errors.Is(err, payment.ErrInsufficientCredit):
//	}
//	for _, t := range route.Lines() {
//	    fmt.Println(t.Line.ID, t.Amount)
//	}
//
// Pricing:
//
// Cashing in IOUs the partner already holds (positive balance) is free.
// Issuing new IOUs costs 1 plus the current balance relative to the limit, so
// lines that are already heavily used are avoided. Unlimited lines are free.
// Costs reflect utilization before the payment only.
//
// Amounts are decimals with amount.Scale places; finer digits are truncated.
package payment
