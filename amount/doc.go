// Package amount converts monetary amounts between fixed-point decimals and the
// int64 domain the flow solvers operate on.
//
// All amounts use Scale decimal places. Scaling multiplies by 10^Scale and
// truncates toward zero; unscaling divides by 10^Scale exactly, so any decimal
// with at most Scale places survives a round trip unchanged:
//
//	n, _ := amount.ScaleAmount(decimal.RequireFromString("12.34")) // 1234
//	amount.Unscale(n)                                        // 12.34
//
// Capacities are modelled by the Capacity tagged variant {Bounded(n), Unbounded}
// instead of a magic infinite number, so every comparison and subtraction has
// to decide what "unbounded" means explicitly.
//
// Cost weights are scaled separately by CostScaleFactor (see ScaleCost).
//
// Floating point is never used: amounts are money.
package amount
