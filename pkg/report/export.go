package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/perchworks/restock/pkg/engine"
)

// ExportItem matches the JSON/CSV structure.
type ExportItem struct {
	Size      string         `json:"size"`
	Inventory int            `json:"logical_inventory"`
	Orders    map[string]int `json:"orders"`
}

func extractItems(res *engine.Result) []ExportItem {
	items := make([]ExportItem, len(res.Sizes))
	for i, size := range res.Sizes {
		orders := make(map[string]int, len(res.Orders))
		for _, pr := range res.Orders {
			orders[pr.Policy] = pr.Order[i]
		}
		items[i] = ExportItem{Size: size, Inventory: res.Inventory[i], Orders: orders}
	}
	return items
}

// WriteCSV writes the order table to a CSV file, one row per size.
func WriteCSV(res *engine.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"Size", "LogicalInventory"}
	for _, pr := range res.Orders {
		header = append(header, pr.Policy)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, size := range res.Sizes {
		record := []string{size, fmt.Sprintf("%d", res.Inventory[i])}
		for _, pr := range res.Orders {
			record = append(record, fmt.Sprintf("%d", pr.Order[i]))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the order table to a JSON file.
func WriteJSON(res *engine.Result, path string) error {
	data, err := json.MarshalIndent(extractItems(res), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
