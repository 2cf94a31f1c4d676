package shipping

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/perchworks/restock/pkg/order"
)

// Outgoing is one unshipped order row from the fulfillment queue.
type Outgoing struct {
	Size    string
	Name    string
	Address string
	Shipped bool
}

var outgoingHeader = []string{"size", "name", "address", "shipped"}

// LoadOutgoing reads the fulfillment queue CSV.
func LoadOutgoing(path string) ([]Outgoing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open outgoing orders %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read outgoing CSV: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%w: outgoing CSV is empty", order.ErrConfiguration)
	}
	for i, col := range outgoingHeader {
		if i >= len(records[0]) || records[0][i] != col {
			return nil, fmt.Errorf("%w: outgoing CSV header mismatch, expected %v, got %v",
				order.ErrConfiguration, outgoingHeader, records[0])
		}
	}

	out := make([]Outgoing, 0, len(records)-1)
	for _, row := range records[1:] {
		if len(row) < len(outgoingHeader) {
			continue
		}
		out = append(out, Outgoing{
			Size:    row[0],
			Name:    row[1],
			Address: row[2],
			Shipped: strings.EqualFold(row[3], "Y"),
		})
	}
	return out, nil
}

// manifestColumns matches the carrier's bulk-import template.
var manifestColumns = []string{
	"Order Number", "Order Date", "Recipient Name", "Company", "Email",
	"Phone", "Street Line 1", "Street Number", "Street Line 2", "City",
	"State/Province", "Zip/Postal Code", "Country", "Item Title", "SKU",
	"Quantity", "Item Weight", "Item Weight Unit", "Item Price",
	"Item Currency", "Order Weight", "Order Weight Unit", "Order Amount",
	"Order Currency",
}

// ManifestSummary reports what WriteManifest did and skipped.
type ManifestSummary struct {
	Written    int
	Skipped    int // hand-deliveries and already-shipped rows
	Oversized  []string
	Unparsable []string
}

// WriteManifest writes a carrier-import CSV for every unshipped,
// deliverable row. Non-address rows and shipped rows are skipped silently;
// unparsable addresses are collected for the caller to report. Sizes above
// XL are flagged since they can need a bigger box.
func WriteManifest(orders []Outgoing, w io.Writer) (*ManifestSummary, error) {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(manifestColumns); err != nil {
		return nil, err
	}

	summary := &ManifestSummary{}
	for _, o := range orders {
		if o.Shipped {
			summary.Skipped++
			continue
		}
		if strings.Contains(o.Size, "2XL") || strings.Contains(o.Size, "3XL") {
			summary.Oversized = append(summary.Oversized, o.Name)
		}

		addr, err := ParseAddress(o.Address)
		if err != nil {
			summary.Unparsable = append(summary.Unparsable, o.Address)
			continue
		}
		if addr == nil {
			summary.Skipped++
			continue
		}

		oz, err := PackageOz(o.Size)
		if err != nil {
			return nil, err
		}

		row := make([]string, len(manifestColumns))
		set := func(col, val string) {
			for i, c := range manifestColumns {
				if c == col {
					row[i] = val
					return
				}
			}
		}
		set("Recipient Name", o.Name)
		set("Street Line 1", addr.Street1)
		set("Street Line 2", addr.Street2)
		set("City", addr.City)
		set("State/Province", addr.State)
		set("Zip/Postal Code", addr.Zip)
		set("Country", addr.Country)
		set("Item Title", o.Size)
		set("Quantity", "1")
		set("Order Weight", strconv.FormatInt(oz, 10))
		set("Order Weight Unit", "oz")

		if err := cw.Write(row); err != nil {
			return nil, err
		}
		summary.Written++
	}
	cw.Flush()
	return summary, cw.Error()
}
