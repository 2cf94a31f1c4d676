package catalog

import (
	"testing"

	"github.com/perchworks/restock/pkg/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenderedMixSplitsSharedSizes(t *testing.T) {
	cat := Default()
	mix, err := cat.GenderedMix(IndustryMix)
	require.NoError(t, err)

	// S exists for both genders: half each. XS and 3XL are men's only.
	assert.InDelta(t, 0.035, mix["MS"], 1e-12)
	assert.InDelta(t, 0.035, mix["WS"], 1e-12)
	assert.InDelta(t, 0.01, mix["MXS"], 1e-12)
	assert.InDelta(t, 0.02, mix["M3XL"], 1e-12)

	// Splitting preserves total mass.
	total := 0.0
	for _, w := range mix {
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-12)
}

func TestMixVectorFollowsCatalogOrder(t *testing.T) {
	cat, err := New([]string{"MM", "ML"})
	require.NoError(t, err)

	vec, err := cat.MixVector(map[string]float64{"ML": 0.7, "MM": 0.3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.3, 0.7}, vec)
}

func TestMixVectorMissingCategory(t *testing.T) {
	cat, err := New([]string{"MM", "ML"})
	require.NoError(t, err)

	_, err = cat.MixVector(map[string]float64{"MM": 1.0})
	assert.ErrorIs(t, err, order.ErrConfiguration)
}

func TestNewRejectsDuplicatesAndEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, order.ErrConfiguration)

	_, err = New([]string{"MM", "MM"})
	assert.ErrorIs(t, err, order.ErrConfiguration)
}

func TestBaseSize(t *testing.T) {
	assert.Equal(t, "2XL", BaseSize("M2XL"))
	assert.Equal(t, "S", BaseSize("WS"))
	assert.Equal(t, "XS", BaseSize("MXS"))
}
