// Package catalog defines the fixed, ordered set of size categories and the
// industry reference size mix used to seed the demand prior.
package catalog

import (
	"fmt"

	"github.com/perchworks/restock/pkg/order"
)

// Catalog is an ordered, fixed set of size categories. The index of a label
// is its stable identity in every vector the planner produces or consumes;
// the labels themselves are display-only.
type Catalog struct {
	labels []string
	index  map[string]int
}

// DefaultLabels is the vendor's gendered size lineup. The vendor sells no
// women's XS or 3XL, so those two exist only on the men's side.
var DefaultLabels = []string{
	"MXS", "MS", "MM", "ML", "MXL", "M2XL", "M3XL",
	"WS", "WM", "WL", "WXL", "W2XL",
}

// IndustryMix is the published size distribution over base (ungendered)
// sizes. It sums to 1.
var IndustryMix = map[string]float64{
	"XS":  0.01,
	"S":   0.07,
	"M":   0.28,
	"L":   0.30,
	"XL":  0.20,
	"2XL": 0.12,
	"3XL": 0.02,
}

// New builds a catalog from an ordered label list.
func New(labels []string) (*Catalog, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: empty category set", order.ErrConfiguration)
	}
	c := &Catalog{
		labels: append([]string(nil), labels...),
		index:  make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		if _, dup := c.index[l]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", order.ErrConfiguration, l)
		}
		c.index[l] = i
	}
	return c, nil
}

// Default returns the catalog for DefaultLabels.
func Default() *Catalog {
	c, err := New(DefaultLabels)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of categories.
func (c *Catalog) Len() int { return len(c.labels) }

// Labels returns the ordered label list.
func (c *Catalog) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Index returns the stable index for a label.
func (c *Catalog) Index(label string) (int, bool) {
	i, ok := c.index[label]
	return i, ok
}

// BaseSize strips the gender prefix: "M2XL" -> "2XL", "WS" -> "S". Only
// the first rune is a gender marker; "WM" is women's medium, not empty.
func BaseSize(label string) string {
	if len(label) > 1 && (label[0] == 'M' || label[0] == 'W') {
		return label[1:]
	}
	return label
}

// counterpart returns the other gender's label for the same base size.
func counterpart(label string) string {
	if label != "" && label[0] == 'M' {
		return "W" + BaseSize(label)
	}
	return "M" + BaseSize(label)
}

// GenderedMix spreads a base-size distribution across the catalog's
// gendered categories. When both gender variants of a base size exist, each
// receives half the base weight; a size sold for one gender only keeps the
// whole weight. With a 50:50 gender assumption this makes the default
// lineup 51.5% men's and 48.5% women's.
func (c *Catalog) GenderedMix(baseMix map[string]float64) (map[string]float64, error) {
	out := make(map[string]float64, len(c.labels))
	for _, label := range c.labels {
		base, ok := baseMix[BaseSize(label)]
		if !ok {
			return nil, fmt.Errorf("%w: no base weight for category %q", order.ErrConfiguration, label)
		}
		if _, both := c.index[counterpart(label)]; both {
			out[label] = base / 2.0
		} else {
			out[label] = base
		}
	}
	return out, nil
}

// MixVector flattens a label-keyed distribution into catalog order. Every
// catalog label must be present.
func (c *Catalog) MixVector(mix map[string]float64) ([]float64, error) {
	out := make([]float64, len(c.labels))
	for i, label := range c.labels {
		w, ok := mix[label]
		if !ok {
			return nil, fmt.Errorf("%w: distribution missing category %q", order.ErrConfiguration, label)
		}
		out[i] = w
	}
	return out, nil
}
