package policy

import (
	"context"
	"testing"

	"github.com/perchworks/restock/pkg/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndustryMatchEnsuresOneOfEachFirst(t *testing.T) {
	p := &IndustryMatch{Reference: []float64{0.5, 0.5}}
	got, err := p.Build(context.Background(), &Input{
		Inventory: order.Inventory{0, 0},
		OrderSize: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, order.Vector{1, 1}, got)
}

func TestIndustryMatchFillsBackordersBeforeMatching(t *testing.T) {
	p := &IndustryMatch{Reference: []float64{0.5, 0.5}}
	got, err := p.Build(context.Background(), &Input{
		Inventory: order.Inventory{-2, 3},
		OrderSize: 4,
	})
	require.NoError(t, err)

	// Category 0 needs 3 units just to reach one on hand; the last unit
	// keeps chasing the 50:50 mix, and category 0 is still further below.
	assert.Equal(t, order.Vector{4, 0}, got)
}

func TestIndustryMatchChasesReferenceMix(t *testing.T) {
	p := &IndustryMatch{Reference: []float64{0.75, 0.25}}
	got, err := p.Build(context.Background(), &Input{
		Inventory: order.Inventory{1, 1},
		OrderSize: 2,
	})
	require.NoError(t, err)

	// 50:50 on hand vs a 75:25 target: category 0 is under-stocked.
	assert.Equal(t, order.Vector{2, 0}, got)
}

func TestIndustryMatchReferenceMismatch(t *testing.T) {
	p := &IndustryMatch{Reference: []float64{1.0}}
	_, err := p.Build(context.Background(), &Input{
		Inventory: order.Inventory{1, 1},
		OrderSize: 2,
	})
	assert.ErrorIs(t, err, order.ErrConfiguration)
}
