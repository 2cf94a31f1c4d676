// Package order holds the core vector types shared by the demand model,
// the simulator, and the policy engines.
package order

import "errors"

// ErrConfiguration indicates bad caller input: malformed prior weights, a
// non-positive order size, an unknown policy name, or a category-set
// mismatch between inventory and a distribution.
var ErrConfiguration = errors.New("invalid configuration")

// ErrInvariant indicates a bug, not a recoverable runtime condition.
var ErrInvariant = errors.New("invariant violation")

// ErrDegenerate flags a numerically degenerate result, e.g. every candidate
// in the Optimized search scoring the same reorder time.
var ErrDegenerate = errors.New("degenerate result")

// Vector is an integer order quantity per category. Every policy's final
// output sums exactly to the target order size with no negative entries.
type Vector []int

// Sum returns the total number of units in the order.
func (v Vector) Sum() int {
	total := 0
	for _, q := range v {
		total += q
	}
	return total
}

// Clone returns an independent copy.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Inventory is the logical inventory per category: on-hand stock minus
// unfulfilled backorders. Negative entries denote backorders. Policies
// treat it as read-only and replay against private copies.
type Inventory []int

// Clone returns a private copy safe to mutate during a replay.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	copy(out, inv)
	return out
}

// Sum returns the signed total across categories.
func (inv Inventory) Sum() int {
	total := 0
	for _, q := range inv {
		total += q
	}
	return total
}

// AbsSum returns the sum of magnitudes across categories. Stream length is
// sized from this so a replay can always reach its backorder target even
// when the snapshot starts with backorders.
func (inv Inventory) AbsSum() int {
	total := 0
	for _, q := range inv {
		if q < 0 {
			total -= q
		} else {
			total += q
		}
	}
	return total
}

// Backordered returns the total backorder magnitude (sum of negative
// entries, negated).
func (inv Inventory) Backordered() int {
	total := 0
	for _, q := range inv {
		if q < 0 {
			total -= q
		}
	}
	return total
}
