package payment

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/creditflow/flow"
)

// Option configures graph building and route computation.
type Option func(*options)

type options struct {
	ignoreBalances bool
	maxLines       int
	algorithm      flow.Algorithm
	log            *zap.Logger
}

func newOptions(opts []Option) options {
	o := options{algorithm: flow.DefaultOptions().Algorithm, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithIgnoreBalances prices every line by its limit alone at zero cost.
// Used for reputation metrics.
func WithIgnoreBalances() Option {
	return func(o *options) { o.ignoreBalances = true }
}

// WithMaxLines fails graph building with ErrGraphTooLarge once more than n
// credit lines have been traversed. n <= 0 means no bound.
func WithMaxLines(n int) Option {
	return func(o *options) { o.maxLines = n }
}

// WithMaxFlowAlgorithm selects the max-flow solver (default flow.Dinic).
func WithMaxFlowAlgorithm(a flow.Algorithm) Option {
	return func(o *options) { o.algorithm = a }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func (o options) flowOptions(ctx context.Context) flow.FlowOptions {
	fo := flow.DefaultOptions()
	fo.Ctx = ctx
	fo.Logger = o.log
	fo.Algorithm = o.algorithm

	return fo
}
