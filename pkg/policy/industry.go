package policy

import (
	"context"
	"fmt"

	"github.com/perchworks/restock/pkg/order"
)

// IndustryMatch orders toward a published reference size mix. It first
// guarantees at least one unit of every category post-order (filling
// backorders along the way), then spends the remaining units on whichever
// category sits furthest below its reference share.
type IndustryMatch struct {
	// Reference is the target demand distribution in category order.
	Reference []float64
}

func (*IndustryMatch) Name() string { return "industry" }

func (p *IndustryMatch) Build(ctx context.Context, in *Input) (order.Vector, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	if len(p.Reference) != len(in.Inventory) {
		return nil, fmt.Errorf("%w: reference distribution has %d categories, inventory has %d",
			order.ErrConfiguration, len(p.Reference), len(in.Inventory))
	}

	ord := make(order.Vector, len(in.Inventory))
	curr := in.Inventory.Clone()
	for step := 0; step < in.OrderSize; step++ {
		pick := 0
		for j, q := range curr {
			if q < curr[pick] {
				pick = j
			}
		}

		if curr[pick] >= 1 {
			// Everything is stocked; chase the reference mix instead.
			total := curr.Sum()
			worst := 0.0
			pick = -1
			for j, q := range curr {
				diff := float64(q)/float64(total) - p.Reference[j]
				if pick < 0 || diff < worst {
					pick = j
					worst = diff
				}
			}
		}

		ord[pick]++
		curr[pick]++
	}
	return ord, nil
}
