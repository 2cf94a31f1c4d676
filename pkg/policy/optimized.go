package policy

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/perchworks/restock/pkg/order"
)

// DefaultMaxDist bounds the Optimized search neighborhood: every candidate
// differs from the heuristic baseline by at most this many unit transfers.
const DefaultMaxDist = 2

// Optimized sharpens the Heuristic result with a bounded local search. The
// heuristic targets expected backorder shape; the real objective is the
// mean time until the first stockout. Optimized enumerates every order
// reachable from the baseline by composing up to MaxDist single-unit
// transfers between category pairs and keeps the candidate with the best
// mean first-stockout time over all simulated streams. The neighborhood is
// a heuristic choice, not a global optimum.
type Optimized struct {
	MaxDist int
	Logger  *slog.Logger
}

func (*Optimized) Name() string { return "optimized" }

func (p *Optimized) Build(ctx context.Context, in *Input) (order.Vector, error) {
	base, err := (&Heuristic{}).Build(ctx, in)
	if err != nil {
		return nil, err
	}
	if p.MaxDist <= 0 {
		return base, nil
	}

	candidates := p.candidates(base)
	totals, err := p.evaluate(ctx, in, candidates)
	if err != nil {
		return nil, err
	}

	// Candidate 0 is the baseline; only a strictly better reorder time
	// displaces it, so ties resolve deterministically in its favor.
	best := 0
	degenerate := true
	for i, total := range totals {
		if total != totals[0] {
			degenerate = false
		}
		if total > totals[best] {
			best = i
		}
	}
	if degenerate && len(totals) > 1 {
		logger := p.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("all reorder-time candidates tie, keeping heuristic baseline",
			"reason", order.ErrDegenerate.Error(),
			"candidates", len(totals))
		return base, nil
	}
	return candidates[best], nil
}

// candidates returns the baseline followed by every non-negative order
// reachable by composing up to MaxDist elementary unit transfers, in a
// deterministic order.
func (p *Optimized) candidates(base order.Vector) []order.Vector {
	n := len(base)

	var elementary [][]int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			adj := make([]int, n)
			adj[i] = 1
			adj[j] = -1
			elementary = append(elementary, adj)
		}
	}

	seen := map[string][]int{}
	for _, adj := range elementary {
		seen[fmt.Sprint(adj)] = adj
	}
	frontier := elementary
	for stage := 1; stage < p.MaxDist; stage++ {
		var next [][]int
		for _, cur := range frontier {
			for _, e := range elementary {
				sum := make([]int, n)
				for k := range sum {
					sum[k] = cur[k] + e[k]
				}
				key := fmt.Sprint(sum)
				if _, ok := seen[key]; !ok {
					seen[key] = sum
					next = append(next, sum)
				}
			}
		}
		frontier = append(frontier, next...)
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	candidates := []order.Vector{base}
	for _, k := range keys {
		adj := seen[k]
		cand := base.Clone()
		ok, zero := true, true
		for i, d := range adj {
			cand[i] += d
			if cand[i] < 0 {
				ok = false
			}
			if d != 0 {
				zero = false
			}
		}
		if ok && !zero {
			candidates = append(candidates, cand)
		}
	}
	return candidates
}

// evaluate computes, for each candidate, the summed first-stockout time
// over all streams starting from inventory + candidate. Work is split
// across candidates; per-candidate sums are written by index, so the result
// is independent of scheduling.
func (p *Optimized) evaluate(ctx context.Context, in *Input, candidates []order.Vector) ([]int64, error) {
	totals := make([]int64, len(candidates))
	workers := runtime.NumCPU()
	if workers > len(candidates) {
		workers = len(candidates)
	}

	var wg sync.WaitGroup
	work := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range work {
				start := make(order.Inventory, len(in.Inventory))
				for i, q := range in.Inventory {
					start[i] = q + candidates[c][i]
				}
				var total int64
				for _, stream := range in.Streams {
					total += int64(firstStockout(start, stream))
				}
				totals[c] = total
			}
		}()
	}

	for c := range candidates {
		if err := ctx.Err(); err != nil {
			break
		}
		work <- c
	}
	close(work)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return totals, nil
}
