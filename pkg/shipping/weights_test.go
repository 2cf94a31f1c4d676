package shipping

import (
	"testing"

	"github.com/perchworks/restock/pkg/order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageOzSingleGarment(t *testing.T) {
	// The men's medium package sits just under the 8 oz price tier boundary.
	oz, err := PackageOz("MM")
	require.NoError(t, err)
	assert.Equal(t, int64(8), oz)

	oz, err = PackageOz("ML")
	require.NoError(t, err)
	assert.Equal(t, int64(9), oz)
}

func TestPackageOzMultipleGarments(t *testing.T) {
	single, err := PackageOz("MM")
	require.NoError(t, err)
	double, err := PackageOz("MM", "MM")
	require.NoError(t, err)

	// A second shirt adds its garment weight but shares the packaging.
	assert.Greater(t, double, single)
	assert.Less(t, double, 2*single)
}

func TestPackageOzUnknownSize(t *testing.T) {
	_, err := PackageOz("XXL")
	assert.ErrorIs(t, err, order.ErrConfiguration)
}

func TestGarmentWeightsAreBatchAverages(t *testing.T) {
	// W2XL was weighed as a pair: 9.95 oz across 2 shirts.
	want := decimal.RequireFromString("9.95").Div(decimal.NewFromInt(2))
	assert.True(t, GarmentOz["W2XL"].Equal(want))

	for size, oz := range GarmentOz {
		assert.True(t, oz.IsPositive(), "size %s", size)
	}
}

func TestBalanceOfShipmentIsPositive(t *testing.T) {
	assert.True(t, BalanceOfShipment.IsPositive())
	// Packaging weighs less than any finished package.
	assert.True(t, BalanceOfShipment.LessThan(decimal.RequireFromString("7.65")))
}
