package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/katalvlaran/creditflow/amount"
	"github.com/katalvlaran/creditflow/bfs"
	"github.com/katalvlaran/creditflow/core"
	"github.com/katalvlaran/creditflow/creditline"
	"github.com/katalvlaran/creditflow/flow"
)

// FlowGraph answers route questions between one payer and one recipient over
// the network reachable from the payer at construction time.
// It is safe for concurrent read-only use.
type FlowGraph struct {
	payer     string
	recipient string
	net       *Network
	opts      options
}

// NewFlowGraph builds the payer's reachable network from store.
func NewFlowGraph(ctx context.Context, store creditline.Store, payer, recipient string, opts ...Option) (*FlowGraph, error) {
	if payer == recipient {
		return nil, fmt.Errorf("%w: %q", ErrSameAccount, payer)
	}
	net, err := BuildGraph(ctx, store, payer, opts...)
	if err != nil {
		return nil, err
	}

	return &FlowGraph{payer: payer, recipient: recipient, net: net, opts: newOptions(opts)}, nil
}

// Network returns the underlying graph and line catalogue.
func (fg *FlowGraph) Network() *Network { return fg.net }

// ComputeExactAmount returns the cheapest way to move amt from payer to
// recipient. Digits of amt beyond amount.Scale are truncated.
//
// Errors: ErrInvalidAmount, ErrNoRoute, ErrInsufficientCredit; anything else
// is a wrapped solver or data error.
func (fg *FlowGraph) ComputeExactAmount(ctx context.Context, amt decimal.Decimal) (Route, error) {
	if !amt.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amt)
	}
	g := fg.net.Graph
	hops, err := fg.hops(ctx)
	if err != nil {
		return nil, err
	}
	n, err := amount.ScaleAmount(amt)
	if err != nil {
		return nil, fmt.Errorf("payment: amount %s: %w", amt, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s is below %d decimal places", ErrInvalidAmount, amt, amount.Scale)
	}

	demand := map[string]int64{fg.payer: -n, fg.recipient: n}
	res, err := flow.MinCostFlow(g, demand, fg.opts.flowOptions(ctx))
	switch {
	case errors.Is(err, flow.ErrInfeasible):
		return nil, ErrInsufficientCredit
	case err != nil:
		return nil, fmt.Errorf("payment: min-cost flow: %w", err)
	}

	route, err := aggregate(g, fg.net.Lines, res.Flow)
	if err != nil {
		return nil, err
	}
	fg.opts.log.Debug("route computed",
		zap.String("payer", fg.payer),
		zap.String("recipient", fg.recipient),
		zap.Stringer("amount", amt),
		zap.Int64("cost", res.Cost),
		zap.Int("hops", hops),
		zap.Int("lines", len(route)),
	)

	return route, nil
}

// hops returns the shortest hop count from payer to recipient, or ErrNoRoute
// when no chain of usable lines connects them.
func (fg *FlowGraph) hops(ctx context.Context) (int, error) {
	g := fg.net.Graph
	if !g.HasVertex(fg.payer) || !g.HasVertex(fg.recipient) {
		return 0, ErrNoRoute
	}
	res, err := bfs.BFS(g, fg.payer, bfs.WithContext(ctx), bfs.WithTarget(fg.recipient))
	if err != nil {
		return 0, fmt.Errorf("payment: reachability: %w", err)
	}
	d, ok := res.Hops(fg.recipient)
	if !ok {
		return 0, ErrNoRoute
	}

	return d, nil
}

// MaxFlowResult is the largest amount the payer can send the recipient.
type MaxFlowResult struct {
	Amount    decimal.Decimal
	Unbounded bool
}

func (r MaxFlowResult) String() string {
	if r.Unbounded {
		return "Infinity"
	}

	return r.Amount.String()
}

// ComputeMaxFlow returns the max flow from payer to recipient. Either
// endpoint being absent from the graph yields zero without error. Unbounded
// is set when unlimited lines alone connect the two.
func (fg *FlowGraph) ComputeMaxFlow(ctx context.Context) (MaxFlowResult, error) {
	g := fg.net.Graph
	if !g.HasVertex(fg.payer) || !g.HasVertex(fg.recipient) {
		return MaxFlowResult{Amount: decimal.Zero}, nil
	}

	flat, err := core.SplitParallel(g)
	if err != nil {
		return MaxFlowResult{}, fmt.Errorf("payment: flatten graph: %w", err)
	}
	v, err := flow.MaxFlow(flat, fg.payer, fg.recipient, fg.opts.flowOptions(ctx))
	switch {
	case errors.Is(err, flow.ErrUnbounded):
		return MaxFlowResult{Unbounded: true}, nil
	case err != nil:
		return MaxFlowResult{}, fmt.Errorf("payment: max flow: %w", err)
	}

	res := MaxFlowResult{Amount: amount.Unscale(v)}
	fg.opts.log.Debug("max flow computed",
		zap.String("payer", fg.payer),
		zap.String("recipient", fg.recipient),
		zap.Stringer("amount", res),
		zap.Stringer("algorithm", fg.opts.algorithm),
	)

	return res, nil
}

// Reputation is the max flow from -> to counting credit limits only.
func Reputation(ctx context.Context, store creditline.Store, from, to string, opts ...Option) (MaxFlowResult, error) {
	fg, err := NewFlowGraph(ctx, store, from, to, append(opts, WithIgnoreBalances())...)
	if err != nil {
		return MaxFlowResult{}, err
	}

	return fg.ComputeMaxFlow(ctx)
}
