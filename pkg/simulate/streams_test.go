package simulate

import (
	"math/rand"
	"testing"

	"github.com/perchworks/restock/pkg/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamLength(t *testing.T) {
	assert.Equal(t, 10, StreamLength(order.Inventory{3, 2}, 5))
	// Backorders count by magnitude so replays can always hit their target.
	assert.Equal(t, 10, StreamLength(order.Inventory{3, -2}, 5))
}

func TestBuildStreamsShapeAndRange(t *testing.T) {
	dists := [][]float64{
		{0.5, 0.5},
		{0.1, 0.9},
		{1.0, 0.0},
	}
	streams, err := BuildStreams(dists, 40, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.Len(t, streams, 3)

	for _, stream := range streams {
		require.Len(t, stream, 40)
		for _, cat := range stream {
			assert.GreaterOrEqual(t, cat, 0)
			assert.Less(t, cat, 2)
		}
	}

	// A degenerate distribution can only ever draw its own category.
	for _, cat := range streams[2] {
		assert.Equal(t, 0, cat)
	}
}

func TestBuildStreamsDeterministic(t *testing.T) {
	dists := make([][]float64, 50)
	for i := range dists {
		dists[i] = []float64{0.2, 0.3, 0.5}
	}

	a, err := BuildStreams(dists, 100, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := BuildStreams(dists, 100, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestBuildStreamsFrequenciesTrackDistribution(t *testing.T) {
	dists := [][]float64{{0.25, 0.75}}
	streams, err := BuildStreams(dists, 20000, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	ones := 0
	for _, cat := range streams[0] {
		ones += cat
	}
	assert.InDelta(t, 0.75, float64(ones)/20000.0, 0.02)
}

func TestBuildStreamsErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := BuildStreams(nil, 10, rng)
	assert.ErrorIs(t, err, order.ErrConfiguration)

	_, err = BuildStreams([][]float64{{1}}, 0, rng)
	assert.ErrorIs(t, err, order.ErrConfiguration)
}
