// Package demand models the unknown categorical demand distribution as a
// Dirichlet, built from a weakly informative prior and updated with
// observed historical counts by conjugacy.
package demand

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/perchworks/restock/pkg/order"
)

// weightSumTolerance bounds how far prior weights may drift from 1.
const weightSumTolerance = 1e-6

// BuildPrior turns per-category prior weights and a pseudocount into a
// Dirichlet concentration vector, 1 + pseudocount*weight per category. The
// +1 floors every concentration above a degenerate value so no category can
// be assigned zero probability. Larger pseudocounts concentrate the prior
// more tightly around the weights.
func BuildPrior(weights []float64, pseudocount float64) ([]float64, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: no prior weights", order.ErrConfiguration)
	}
	if pseudocount <= 0 {
		return nil, fmt.Errorf("%w: pseudocount must be positive, got %v", order.ErrConfiguration, pseudocount)
	}
	sum := 0.0
	for i, w := range weights {
		if w <= 0 || w > 1 {
			return nil, fmt.Errorf("%w: prior weight %v at category %d outside (0,1]", order.ErrConfiguration, w, i)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return nil, fmt.Errorf("%w: prior weights sum to %v, want 1", order.ErrConfiguration, sum)
	}
	conc := make([]float64, len(weights))
	for i, w := range weights {
		conc[i] = 1.0 + pseudocount*w
	}
	return conc, nil
}

// SamplePosterior draws n category distributions from
// Dirichlet(concentration + observed). Each draw is one plausible world of
// future demand proportions. Deterministic for a fixed rng state.
func SamplePosterior(concentration []float64, observed []int, n int, rng *rand.Rand) ([][]float64, error) {
	if len(observed) != len(concentration) {
		return nil, fmt.Errorf("%w: %d observed counts for %d prior categories",
			order.ErrConfiguration, len(observed), len(concentration))
	}
	alpha := make([]float64, len(concentration))
	for i, c := range concentration {
		if c <= 0 {
			return nil, fmt.Errorf("%w: non-positive Dirichlet concentration %v at category %d",
				order.ErrInvariant, c, i)
		}
		if observed[i] < 0 {
			return nil, fmt.Errorf("%w: negative observed count at category %d", order.ErrConfiguration, i)
		}
		alpha[i] = c + float64(observed[i])
	}

	samples := make([][]float64, n)
	for s := range samples {
		samples[s] = dirichlet(rng, alpha)
	}
	return samples, nil
}

// dirichlet draws one probability vector by normalizing independent gamma
// variates.
func dirichlet(rng *rand.Rand, alpha []float64) []float64 {
	out := make([]float64, len(alpha))
	total := 0.0
	for i, a := range alpha {
		g := gamma(rng, a)
		out[i] = g
		total += g
	}
	for i := range out {
		out[i] /= total
	}
	return out
}

// gamma draws from Gamma(shape, 1) using the Marsaglia-Tsang squeeze
// method. Shapes below 1 are boosted through Gamma(shape+1) * U^(1/shape).
func gamma(rng *rand.Rand, shape float64) float64 {
	if shape < 1 {
		u := rng.Float64()
		for u == 0 {
			u = rng.Float64()
		}
		return gamma(rng, shape+1) * math.Pow(u, 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)
	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1.0 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1.0-0.0331*x*x*x*x {
			return d * v
		}
		if u > 0 && math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v
		}
	}
}
