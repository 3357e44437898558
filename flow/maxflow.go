package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/creditflow/core"
)

// ErrSameEndpoints is returned when source and sink are the same vertex.
var ErrSameEndpoints = errors.New("flow: source and sink are the same vertex")

// MaxFlow computes the maximum flow value from source to sink in g with the
// algorithm selected by opts.Algorithm.
//
// Steps:
//  1. Normalize options; validate source, sink and algorithm.
//  2. If unbounded edges alone join source to sink, return ErrUnbounded.
//  3. Build the aggregated capacity map, standing in the bounded total for
//     every other unbounded edge.
//  4. Run the selected algorithm on the map.
//
// Errors: ErrSourceNotFound, ErrSinkNotFound, ErrSameEndpoints, ErrUnbounded,
// ErrUnknownAlgorithm, or context cancellation.
func MaxFlow(g *core.Graph, source, sink string, opts FlowOptions) (int64, error) {
	opts.normalize()
	ctx := opts.Ctx

	if !g.HasVertex(source) {
		return 0, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, ErrSinkNotFound
	}
	if source == sink {
		return 0, ErrSameEndpoints
	}
	if opts.Algorithm != Dinic && opts.Algorithm != EdmondsKarp {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, opts.Algorithm)
	}

	unbounded, err := hasUnboundedPath(ctx, g, source, sink)
	if err != nil {
		return 0, err
	}
	if unbounded {
		return 0, ErrUnbounded
	}

	capMap, err := buildCapMap(ctx, g, boundedTotal(g))
	if err != nil {
		return 0, err
	}

	if opts.Algorithm == EdmondsKarp {
		return edmondsKarp(capMap, source, sink, opts)
	}

	return dinic(capMap, source, sink, opts)
}
