// Package inventory loads the inventory snapshot the planner runs against.
// Persistence of inventory itself stays with the caller; this package only
// reads the exported snapshot CSV.
package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/perchworks/restock/pkg/order"
)

// Record is one category's lifetime counters. Logical inventory is
// received minus queued; queued doubles as the observed demand count that
// updates the demand prior.
type Record struct {
	Size             string
	LifetimeReceived int
	LifetimeQueued   int
}

// Snapshot is one inventory export in stable category order.
type Snapshot struct {
	Records []Record
}

// Sizes returns the category labels in snapshot order.
func (s *Snapshot) Sizes() []string {
	out := make([]string, len(s.Records))
	for i, r := range s.Records {
		out[i] = r.Size
	}
	return out
}

// Logical returns per-category logical inventory; negatives are backorders.
func (s *Snapshot) Logical() order.Inventory {
	inv := make(order.Inventory, len(s.Records))
	for i, r := range s.Records {
		inv[i] = r.LifetimeReceived - r.LifetimeQueued
	}
	return inv
}

// Observed returns the historical demand counts used to update the prior.
func (s *Snapshot) Observed() []int {
	out := make([]int, len(s.Records))
	for i, r := range s.Records {
		out[i] = r.LifetimeQueued
	}
	return out
}

var snapshotHeader = []string{"size", "lifetime_received", "lifetime_queued"}

// Load reads a snapshot CSV with a size,lifetime_received,lifetime_queued
// header.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory snapshot %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a snapshot from r.
func Read(r io.Reader) (*Snapshot, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: inventory CSV needs a header and at least one category row",
			order.ErrConfiguration)
	}
	if !headerMatches(records[0]) {
		return nil, fmt.Errorf("%w: inventory CSV header mismatch, expected %v, got %v",
			order.ErrConfiguration, snapshotHeader, records[0])
	}

	snap := &Snapshot{Records: make([]Record, 0, len(records)-1)}
	seen := make(map[string]bool)
	for i, row := range records[1:] {
		line := i + 2
		if len(row) != len(snapshotHeader) {
			return nil, fmt.Errorf("%w: inventory CSV row %d has %d columns, want %d",
				order.ErrConfiguration, line, len(row), len(snapshotHeader))
		}
		if seen[row[0]] {
			return nil, fmt.Errorf("%w: duplicate size %q at row %d", order.ErrConfiguration, row[0], line)
		}
		seen[row[0]] = true

		received, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d lifetime_received %q: %v", order.ErrConfiguration, line, row[1], err)
		}
		queued, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d lifetime_queued %q: %v", order.ErrConfiguration, line, row[2], err)
		}
		if received < 0 || queued < 0 {
			return nil, fmt.Errorf("%w: row %d has negative lifetime counters", order.ErrConfiguration, line)
		}

		snap.Records = append(snap.Records, Record{
			Size:             row[0],
			LifetimeReceived: received,
			LifetimeQueued:   queued,
		})
	}
	return snap, nil
}

func headerMatches(row []string) bool {
	if len(row) != len(snapshotHeader) {
		return false
	}
	for i, col := range snapshotHeader {
		if row[i] != col {
			return false
		}
	}
	return true
}
