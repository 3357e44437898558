package payment

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/creditflow/amount"
	"github.com/katalvlaran/creditflow/core"
	"github.com/katalvlaran/creditflow/creditline"
)

// Transfer is the amount moved along one credit line, owner to partner.
type Transfer struct {
	Line   creditline.CreditLine
	Amount decimal.Decimal
}

// Route maps credit-line ID to the transfer on that line. Lines that carry
// nothing are absent.
type Route map[string]Transfer

// Lines returns the transfers ordered by line ID.
func (r Route) Lines() []Transfer {
	out := make([]Transfer, 0, len(r))
	for _, t := range r {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Line.ID < out[j].Line.ID })

	return out
}

// NetFlow returns what alias receives minus what it sends.
func (r Route) NetFlow(alias string) decimal.Decimal {
	net := decimal.Zero
	for _, t := range r {
		if t.Line.Owner == alias {
			net = net.Sub(t.Amount)
		}
		if t.Line.Partner == alias {
			net = net.Add(t.Amount)
		}
	}

	return net
}

// Total returns the sum over all transfers, hops counted separately.
func (r Route) Total() decimal.Decimal {
	total := decimal.Zero
	for _, t := range r {
		total = total.Add(t.Amount)
	}

	return total
}

// aggregate sums per-edge flow into per-line transfers using Edge.Ref.
func aggregate(g *core.Graph, lines map[string]creditline.CreditLine, flows map[string]int64) (Route, error) {
	sums := make(map[string]int64)
	for eid, f := range flows {
		if f == 0 {
			continue
		}
		e, err := g.GetEdge(eid)
		if err != nil {
			return nil, fmt.Errorf("payment: flow on edge %s: %w", eid, err)
		}
		sums[e.Ref] += f
	}

	route := make(Route, len(sums))
	for ref, n := range sums {
		if n == 0 {
			continue
		}
		l, ok := lines[ref]
		if !ok {
			return nil, fmt.Errorf("payment: edge references unknown credit line %q", ref)
		}
		route[ref] = Transfer{Line: l, Amount: amount.Unscale(n)}
	}

	return route, nil
}
