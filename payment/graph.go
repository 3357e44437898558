package payment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/creditflow/core"
	"github.com/katalvlaran/creditflow/creditline"
)

// Network is the flow graph reachable from one account together with the
// credit lines its edges were derived from, keyed by line ID (Edge.Ref).
type Network struct {
	Graph *core.Graph
	Lines map[string]creditline.CreditLine
}

// BuildGraph collects every credit line reachable from seed by following
// lines from owner to partner, breadth first, and adds one edge per usable
// chunk (capacity > 0) with Key = chunk index and Ref = line ID.
//
// A line is enqueued at most once per owner, also when the store repeats it.
// seed is always a vertex of the result, even without lines.
//
// Errors: store failures (wrapped), amount.ErrOverflow, ErrGraphTooLarge,
// context cancellation.
func BuildGraph(ctx context.Context, store creditline.Store, seed string, opts ...Option) (*Network, error) {
	o := newOptions(opts)
	price := Chunks
	if o.ignoreBalances {
		price = IgnoreBalancesChunks
	}

	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	if err := g.AddVertex(seed); err != nil {
		return nil, fmt.Errorf("payment: seed %q: %w", seed, err)
	}
	net := &Network{Graph: g, Lines: make(map[string]creditline.CreditLine)}

	visited := make(map[string]map[string]struct{}) // owner alias -> enqueued line IDs
	fetched := make(map[string]struct{})
	var queue []creditline.CreditLine

	expand := func(owner string) error {
		if _, ok := fetched[owner]; ok {
			return nil
		}
		fetched[owner] = struct{}{}
		lines, err := store.OutgoingCreditLines(ctx, owner)
		if err != nil {
			return fmt.Errorf("payment: load credit lines of %q: %w", owner, err)
		}
		for _, l := range lines {
			seen := visited[l.Owner]
			if seen == nil {
				seen = make(map[string]struct{})
				visited[l.Owner] = seen
			}
			if _, ok := seen[l.ID]; ok {
				continue
			}
			seen[l.ID] = struct{}{}
			queue = append(queue, l)
		}

		return nil
	}

	if err := expand(seed); err != nil {
		return nil, err
	}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		l := queue[0]
		queue = queue[1:]

		if prev, dup := net.Lines[l.ID]; dup {
			return nil, fmt.Errorf("payment: credit line id %q owned by both %q and %q: %w",
				l.ID, prev.Owner, l.Owner, creditline.ErrInvalidCreditLine)
		}
		net.Lines[l.ID] = l
		if o.maxLines > 0 && len(net.Lines) > o.maxLines {
			return nil, fmt.Errorf("%w: more than %d lines", ErrGraphTooLarge, o.maxLines)
		}

		if err := addLine(g, l, price, o.log); err != nil {
			return nil, err
		}
		if err := expand(l.Partner); err != nil {
			return nil, err
		}
	}

	o.log.Debug("flow graph built",
		zap.String("seed", seed),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("lines", len(net.Lines)),
		zap.Bool("ignore_balances", o.ignoreBalances),
	)

	return net, nil
}

func addLine(g *core.Graph, l creditline.CreditLine, price func(creditline.CreditLine) ([]Chunk, error), log *zap.Logger) error {
	chunks, err := price(l)
	if err != nil {
		return err
	}
	for i, c := range chunks {
		if c.Capacity.Negative() {
			log.Warn("credit line balance exceeds its limit; chunk dropped",
				zap.String("line", l.ID),
				zap.String("owner", l.Owner),
				zap.String("partner", l.Partner),
				zap.Stringer("capacity", c.Capacity),
			)
			continue
		}
		if !c.Capacity.Positive() {
			continue
		}
		if _, err := g.AddEdge(l.Owner, l.Partner, c.Capacity, c.Cost, core.WithKey(i), core.WithRef(l.ID)); err != nil {
			return fmt.Errorf("payment: credit line %s chunk %d: %w", l.ID, i, err)
		}
	}

	return nil
}
