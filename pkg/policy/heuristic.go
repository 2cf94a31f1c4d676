package policy

import (
	"context"
	"fmt"

	"github.com/perchworks/restock/pkg/order"
)

// Heuristic approximates the order with maximum expected time to the next
// reorder. Each simulated demand stream is replayed against the starting
// inventory, with no replenishment, until exactly orderSize backorders have
// accumulated; the per-category backorder mass, averaged over all streams,
// is the expected shape of the shortfall the order should cover.
type Heuristic struct{}

func (*Heuristic) Name() string { return "heuristic" }

func (*Heuristic) Build(ctx context.Context, in *Input) (order.Vector, error) {
	if err := validateStreams(in); err != nil {
		return nil, err
	}

	acc, err := accumulateBackorders(in.Inventory, in.Streams, in.OrderSize)
	if err != nil {
		return nil, err
	}

	// Every replay stops at exactly orderSize backorders, so the mass must
	// balance before any rounding happens.
	total := 0
	for _, q := range acc {
		total += q
	}
	if want := len(in.Streams) * in.OrderSize; total != want {
		return nil, fmt.Errorf("%w: accumulated %d backorders across %d streams, want %d",
			order.ErrInvariant, total, len(in.Streams), want)
	}

	expected := make([]float64, len(acc))
	for i, q := range acc {
		expected[i] = float64(q) / float64(len(in.Streams))
	}
	return Reconcile(expected, in.OrderSize)
}
