package demand

import (
	"math/rand"
	"testing"

	"github.com/perchworks/restock/pkg/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPriorFloorsConcentrations(t *testing.T) {
	conc, err := BuildPrior([]float64{0.3, 0.5, 0.2}, 35)
	require.NoError(t, err)

	assert.Equal(t, []float64{1 + 35*0.3, 1 + 35*0.5, 1 + 35*0.2}, conc)
	for _, c := range conc {
		assert.Greater(t, c, 1.0)
	}
}

func TestBuildPriorRejectsBadInput(t *testing.T) {
	cases := map[string]struct {
		weights     []float64
		pseudocount float64
	}{
		"empty":              {nil, 10},
		"sum not one":        {[]float64{0.5, 0.4}, 10},
		"zero weight":        {[]float64{0.0, 1.0}, 10},
		"weight above one":   {[]float64{1.5, -0.5}, 10},
		"zero pseudocount":   {[]float64{0.5, 0.5}, 0},
		"negative pseudoc;t": {[]float64{0.5, 0.5}, -3},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := BuildPrior(tc.weights, tc.pseudocount)
			assert.ErrorIs(t, err, order.ErrConfiguration)
		})
	}
}

func TestSamplePosteriorShape(t *testing.T) {
	conc, err := BuildPrior([]float64{0.2, 0.3, 0.5}, 20)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	samples, err := SamplePosterior(conc, []int{4, 6, 10}, 500, rng)
	require.NoError(t, err)
	require.Len(t, samples, 500)

	for _, s := range samples {
		total := 0.0
		for _, p := range s {
			assert.GreaterOrEqual(t, p, 0.0)
			total += p
		}
		assert.InDelta(t, 1.0, total, 1e-9)
	}
}

// The Dirichlet mean is alpha_i / sum(alpha); over many draws the sample
// mean has to recover it.
func TestSamplePosteriorMeanRecovery(t *testing.T) {
	conc, err := BuildPrior([]float64{0.1, 0.6, 0.3}, 30)
	require.NoError(t, err)

	observed := []int{0, 0, 0}
	n := 20000
	rng := rand.New(rand.NewSource(42))
	samples, err := SamplePosterior(conc, observed, n, rng)
	require.NoError(t, err)

	alphaSum := 0.0
	for _, c := range conc {
		alphaSum += c
	}
	mean := make([]float64, len(conc))
	for _, s := range samples {
		for i, p := range s {
			mean[i] += p
		}
	}
	for i := range mean {
		mean[i] /= float64(n)
		assert.InDelta(t, conc[i]/alphaSum, mean[i], 0.005)
	}
}

func TestSamplePosteriorDeterministic(t *testing.T) {
	conc := []float64{2, 3, 4}
	a, err := SamplePosterior(conc, []int{1, 2, 3}, 50, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := SamplePosterior(conc, []int{1, 2, 3}, 50, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSamplePosteriorErrors(t *testing.T) {
	_, err := SamplePosterior([]float64{2, 3}, []int{1}, 10, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, order.ErrConfiguration)

	_, err = SamplePosterior([]float64{2, -1}, []int{1, 1}, 10, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, order.ErrInvariant)

	_, err = SamplePosterior([]float64{2, 3}, []int{1, -1}, 10, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, order.ErrConfiguration)
}
