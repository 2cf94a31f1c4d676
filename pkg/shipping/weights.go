// Package shipping turns fulfilled order rows into a carrier-import
// manifest: parsed addresses plus postage weights.
package shipping

import (
	"fmt"

	"github.com/perchworks/restock/pkg/order"
	"github.com/shopspring/decimal"
)

// perUnit derives a single garment's mass from a weighed batch.
func perUnit(batchOz string, count int64) decimal.Decimal {
	return decimal.RequireFromString(batchOz).Div(decimal.NewFromInt(count))
}

// GarmentOz holds measured garment masses by size, in ounces. Each entry is
// a weighed batch divided by its count, so manufacturing variance averages
// out.
var GarmentOz = map[string]decimal.Decimal{
	"MXS":  perUnit("3.45", 1),
	"MS":   perUnit("11.45", 3),
	"MM":   perUnit("38.80", 9),
	"ML":   perUnit("33.35", 7),
	"MXL":  perUnit("21.15", 4),
	"M2XL": perUnit("17.60", 3),
	"M3XL": perUnit("6.55", 1),
	"WS":   perUnit("9.75", 3),
	"WM":   perUnit("18.05", 5),
	"WL":   perUnit("16.55", 4),
	"WXL":  perUnit("17.95", 4),
	"W2XL": perUnit("9.95", 2),
}

// BalanceOfShipment is the empirical packaging mass (box, card, envelope,
// label, tape) in ounces: finished MM and ML package weights minus the
// garments themselves, averaged.
var BalanceOfShipment = decimal.RequireFromString("7.65").
	Add(decimal.RequireFromString("8.45")).
	Sub(GarmentOz["MM"]).
	Sub(GarmentOz["ML"]).
	Div(decimal.NewFromInt(2))

// MarginOfSafety pads the postage weight against taping technique and
// shirt-to-shirt variance. Kept small: too much margin pushes a typical MM
// package from the 8 oz price tier into 9 oz.
var MarginOfSafety = decimal.RequireFromString("0.15")

// PackageOz returns the postage weight in whole ounces for a package
// holding the given garment sizes, rounded up so postage is never short.
func PackageOz(sizes ...string) (int64, error) {
	total := BalanceOfShipment.Add(MarginOfSafety)
	for _, size := range sizes {
		oz, ok := GarmentOz[size]
		if !ok {
			return 0, fmt.Errorf("%w: no measured weight for size %q", order.ErrConfiguration, size)
		}
		total = total.Add(oz)
	}
	return total.Ceil().IntPart(), nil
}
