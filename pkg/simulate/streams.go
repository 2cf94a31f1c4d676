// Package simulate generates demand-stream libraries: for each sampled
// demand distribution, one long sequence of future category draws.
package simulate

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/perchworks/restock/pkg/order"
)

// StreamLength returns how long each stream must be so that every simulated
// world can reach orderSize backorders: enough draws to exhaust all current
// stock plus the entire planned order, even starting from backorders.
func StreamLength(inv order.Inventory, orderSize int) int {
	return inv.AbsSum() + orderSize
}

// BuildStreams draws one stream of category indices per distribution, each
// row i.i.d. with replacement from its own distribution. Rows are generated
// concurrently; every row's sub-generator is seeded up front from rng, so
// the output depends only on rng's state, never on scheduling.
func BuildStreams(dists [][]float64, streamLength int, rng *rand.Rand) ([][]int, error) {
	if len(dists) == 0 {
		return nil, fmt.Errorf("%w: no demand distributions to simulate", order.ErrConfiguration)
	}
	if streamLength <= 0 {
		return nil, fmt.Errorf("%w: non-positive stream length %d", order.ErrConfiguration, streamLength)
	}

	seeds := make([]int64, len(dists))
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	streams := make([][]int, len(dists))
	workers := runtime.NumCPU()
	if workers > len(dists) {
		workers = len(dists)
	}

	var wg sync.WaitGroup
	rows := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				streams[i] = drawStream(dists[i], streamLength, rand.New(rand.NewSource(seeds[i])))
			}
		}()
	}
	for i := range dists {
		rows <- i
	}
	close(rows)
	wg.Wait()

	return streams, nil
}

// drawStream samples streamLength category indices from one distribution
// via its cumulative form.
func drawStream(dist []float64, streamLength int, rng *rand.Rand) []int {
	cum := make([]float64, len(dist))
	total := 0.0
	for i, p := range dist {
		total += p
		cum[i] = total
	}

	stream := make([]int, streamLength)
	for t := range stream {
		u := rng.Float64() * total
		idx := len(cum) - 1
		for i, c := range cum {
			if u < c {
				idx = i
				break
			}
		}
		stream[t] = idx
	}
	return stream
}
