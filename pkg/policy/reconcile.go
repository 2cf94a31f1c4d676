package policy

import (
	"fmt"
	"math"
	"sort"

	"github.com/perchworks/restock/pkg/order"
)

// Reconcile coerces a fractional per-category quantity vector to integers
// summing exactly to orderSize. Each entry is rounded to nearest; any
// leftover drift is repaired by walking the entries whose rounding moved
// them furthest in the drift's direction: a positive drift decrements the
// largest positive residuals (rounded minus fractional), a negative drift
// increments the most negative ones. Ties fall back to category index, so
// the result is deterministic for every input. Already-exact integer
// vectors pass through unchanged.
func Reconcile(fractional []float64, orderSize int) (order.Vector, error) {
	if len(fractional) == 0 {
		return nil, fmt.Errorf("%w: empty quantity vector", order.ErrConfiguration)
	}

	rounded := make(order.Vector, len(fractional))
	residuals := make([]float64, len(fractional))
	for i, f := range fractional {
		r := math.Round(f)
		rounded[i] = int(r)
		residuals[i] = r - f
	}

	drift := rounded.Sum() - orderSize
	if drift == 0 {
		return rounded, nil
	}

	idx := make([]int, len(rounded))
	for i := range idx {
		idx[i] = i
	}
	if drift > 0 {
		sort.SliceStable(idx, func(a, b int) bool {
			return residuals[idx[a]] > residuals[idx[b]]
		})
		remaining := drift
		for remaining > 0 {
			progressed := false
			for _, i := range idx {
				if remaining == 0 {
					break
				}
				if rounded[i] == 0 {
					continue // never push a quantity negative
				}
				rounded[i]--
				remaining--
				progressed = true
			}
			if !progressed {
				return nil, fmt.Errorf("%w: cannot shed %d surplus units without negative quantities",
					order.ErrInvariant, remaining)
			}
		}
	} else {
		sort.SliceStable(idx, func(a, b int) bool {
			return residuals[idx[a]] < residuals[idx[b]]
		})
		for k := 0; k < -drift; k++ {
			rounded[idx[k%len(idx)]]++
		}
	}

	if got := rounded.Sum(); got != orderSize {
		return nil, fmt.Errorf("%w: reconciled order sums to %d, want %d", order.ErrInvariant, got, orderSize)
	}
	return rounded, nil
}
