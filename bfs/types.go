package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/creditflow/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures a search.
type Option func(*options)

type options struct {
	ctx    context.Context
	keep   func(e *core.Edge) bool
	target string
}

func defaultOptions() options {
	return options{
		ctx:  context.Background(),
		keep: func(*core.Edge) bool { return true },
	}
}

// WithContext sets a context checked once per frontier level.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithFilterEdge skips edges for which fn returns false.
func WithFilterEdge(fn func(e *core.Edge) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.keep = fn
		}
	}
}

// WithTarget stops the search as soon as id is discovered. The result then
// holds only the levels explored up to that point.
func WithTarget(id string) Option {
	return func(o *options) { o.target = id }
}

// Result is the outcome of a search.
//
// Order lists discovered vertices level by level, start first.
// Depth maps each discovered vertex to its hop count from the start.
type Result struct {
	Order []string
	Depth map[string]int
}

// Reached reports whether id was discovered by the search.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]

	return ok
}

// Hops returns the hop count of id and whether it was reached.
func (r *Result) Hops(id string) (int, bool) {
	d, ok := r.Depth[id]

	return d, ok
}
