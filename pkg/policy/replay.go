package policy

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/perchworks/restock/pkg/order"
)

// replayBackorders plays one demand stream against a private copy of the
// starting inventory until the total backorder magnitude first reaches
// exactly orderSize, then reports each category's final backorder
// magnitude. Running off the end of the stream before reaching the target
// is a sizing bug in the stream library.
func replayBackorders(inv order.Inventory, stream []int, orderSize int, out []int) error {
	curr := inv.Clone()
	short := curr.Backordered()
	for t := 0; short < orderSize; t++ {
		if t >= len(stream) {
			return fmt.Errorf("%w: stream of length %d exhausted at %d/%d backorders",
				order.ErrInvariant, len(stream), short, orderSize)
		}
		cat := stream[t]
		curr[cat]--
		if curr[cat] < 0 {
			short++
		}
	}
	for i, q := range curr {
		if q < 0 {
			out[i] += -q
		}
	}
	return nil
}

// accumulateBackorders runs replayBackorders over every stream as a
// parallel map with a per-category summation reduce. Integer summation is
// commutative, so the result is identical regardless of how the streams are
// split across workers.
func accumulateBackorders(inv order.Inventory, streams [][]int, orderSize int) ([]int, error) {
	workers := runtime.NumCPU()
	if workers > len(streams) {
		workers = len(streams)
	}

	partials := make([][]int, workers)
	errs := make([]error, workers)
	chunk := (len(streams) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(streams) {
			hi = len(streams)
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			acc := make([]int, len(inv))
			for _, stream := range streams[lo:hi] {
				if err := replayBackorders(inv, stream, orderSize, acc); err != nil {
					errs[w] = err
					return
				}
			}
			partials[w] = acc
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	total := make([]int, len(inv))
	for _, p := range partials {
		for i, q := range p {
			total[i] += q
		}
	}
	return total, nil
}

// firstStockout returns the time step at which any category first goes
// negative when replaying the stream from the given starting inventory.
// Step 0 is the starting state itself; a stream the inventory survives
// entirely scores len(stream).
func firstStockout(start order.Inventory, stream []int) int {
	for _, q := range start {
		if q < 0 {
			return 0
		}
	}
	curr := start.Clone()
	for t, cat := range stream {
		curr[cat]--
		if curr[cat] < 0 {
			return t + 1
		}
	}
	return len(stream)
}
