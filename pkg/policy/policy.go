// Package policy implements the order-building engines. Each engine
// consumes the same three inputs (logical inventory, simulated demand
// streams, target order size) and produces an integer order vector summing
// exactly to the target, so callers can swap strategies freely.
package policy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/perchworks/restock/pkg/order"
)

// Input carries the shared read-only inputs of every policy run. Policies
// never mutate Inventory or Streams; replays work on private copies.
type Input struct {
	Inventory order.Inventory
	Streams   [][]int
	OrderSize int
}

// Engine builds a replenishment order. Implementations are pure functions
// of their input; no state survives across calls.
type Engine interface {
	Name() string
	Build(ctx context.Context, in *Input) (order.Vector, error)
}

// Deps holds the per-policy collaborators the registry wires in.
type Deps struct {
	// Reference is the industry size mix in category order (Industry-Match).
	Reference []float64
	// MaxDist bounds the Optimized local search neighborhood.
	MaxDist int
	// Logger receives degeneracy reports from Optimized.
	Logger *slog.Logger
}

// Names lists the registered policies in presentation order.
func Names() []string {
	return []string{"worstcase", "industry", "heuristic", "optimized"}
}

// ByName resolves a policy name to an engine.
func ByName(name string, deps Deps) (Engine, error) {
	switch name {
	case "worstcase":
		return &WorstCase{}, nil
	case "industry":
		return &IndustryMatch{Reference: deps.Reference}, nil
	case "heuristic":
		return &Heuristic{}, nil
	case "optimized":
		return &Optimized{MaxDist: deps.MaxDist, Logger: deps.Logger}, nil
	default:
		return nil, fmt.Errorf("%w: unknown policy %q", order.ErrConfiguration, name)
	}
}

// validate applies the checks every engine shares.
func validate(in *Input) error {
	if in == nil || len(in.Inventory) == 0 {
		return fmt.Errorf("%w: empty inventory", order.ErrConfiguration)
	}
	if in.OrderSize <= 0 {
		return fmt.Errorf("%w: order size must be positive, got %d", order.ErrConfiguration, in.OrderSize)
	}
	return nil
}

// validateStreams extends validate for the stream-driven engines.
func validateStreams(in *Input) error {
	if err := validate(in); err != nil {
		return err
	}
	if len(in.Streams) == 0 {
		return fmt.Errorf("%w: no demand streams", order.ErrConfiguration)
	}
	return nil
}
