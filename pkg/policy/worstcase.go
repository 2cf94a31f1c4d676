package policy

import (
	"context"

	"github.com/perchworks/restock/pkg/order"
)

// WorstCase conservatively targets equal projected inventory for every
// category, hedging against a future that brings a uniform stream of
// unexpected orders. It builds the order one unit at a time, always topping
// up a category currently at minimum projected inventory; among equally
// scarce categories it prefers the one with the most demand across the
// whole stream library.
type WorstCase struct{}

func (*WorstCase) Name() string { return "worstcase" }

func (*WorstCase) Build(ctx context.Context, in *Input) (order.Vector, error) {
	if err := validateStreams(in); err != nil {
		return nil, err
	}

	// Aggregate demand frequency per category, the tie-break key.
	counts := make([]int, len(in.Inventory))
	for _, stream := range in.Streams {
		for _, cat := range stream {
			counts[cat]++
		}
	}
	minCount := counts[0]
	for _, c := range counts[1:] {
		if c < minCount {
			minCount = c
		}
	}

	ord := make(order.Vector, len(in.Inventory))
	curr := in.Inventory.Clone()
	for step := 0; step < in.OrderSize; step++ {
		scarcest := curr[0]
		for _, q := range curr[1:] {
			if q < scarcest {
				scarcest = q
			}
		}

		// Seed the tie-break at the library-wide minimum so any scarcest
		// category qualifies, then let higher-demand categories take over.
		pick := -1
		best := minCount
		for j, q := range curr {
			if q == scarcest && counts[j] >= best {
				pick = j
				best = counts[j]
			}
		}

		ord[pick]++
		curr[pick]++
	}
	return ord, nil
}
