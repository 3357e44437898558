package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Sentinel errors.
var (
	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrUnbounded is returned when unbounded edges alone connect source to sink.
	ErrUnbounded = errors.New("flow: unbounded flow")

	// ErrInfeasible is returned when no flow satisfies the node demands.
	ErrInfeasible = errors.New("flow: no flow satisfies the demands")

	// ErrDemandImbalance is returned when node demands do not sum to zero.
	ErrDemandImbalance = errors.New("flow: demands do not sum to zero")

	// ErrUnknownAlgorithm is returned for an unrecognised Algorithm.
	ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")
)

// Algorithm selects the max-flow implementation.
type Algorithm int

const (
	// Dinic is the level-graph / blocking-flow algorithm.
	Dinic Algorithm = iota
	// EdmondsKarp is the BFS augmenting-path algorithm.
	EdmondsKarp
)

func (a Algorithm) String() string {
	switch a {
	case Dinic:
		return "dinic"
	case EdmondsKarp:
		return "edmonds-karp"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "dinic" or "edmonds-karp" (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dinic":
		return Dinic, nil
	case "edmonds-karp", "edmondskarp":
		return EdmondsKarp, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// FlowOptions configures the solvers.
//   - Ctx: cancellation; checked between augmentations.
//   - Logger: receives one debug entry per augmentation.
//   - Algorithm: max-flow implementation (default Dinic).
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Ctx                  context.Context
	Logger               *zap.Logger
	Algorithm            Algorithm
	LevelRebuildInterval int
}

// DefaultOptions returns background context, a no-op logger and Dinic.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:       context.Background(),
		Logger:    zap.NewNop(),
		Algorithm: Dinic,
	}
}

// normalize fills in zero-valued fields with defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}
