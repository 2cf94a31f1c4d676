package shipping

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/perchworks/restock/pkg/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOutgoing(t *testing.T) {
	body := `size,name,address,shipped
MM,Ada Lovelace,"123 Main St, Springfield, IL 62704",N
WL,Grace Hopper,"55 Oak Ave, Portland, OR 97201",Y
`
	path := filepath.Join(t.TempDir(), "outgoing.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	orders, err := LoadOutgoing(path)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "MM", orders[0].Size)
	assert.Equal(t, "Ada Lovelace", orders[0].Name)
	assert.False(t, orders[0].Shipped)
	assert.True(t, orders[1].Shipped)
}

func TestLoadOutgoingBadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outgoing.csv")
	require.NoError(t, os.WriteFile(path, []byte("sku,who,where,sent\n"), 0o644))

	_, err := LoadOutgoing(path)
	assert.ErrorIs(t, err, order.ErrConfiguration)
}

func TestWriteManifest(t *testing.T) {
	orders := []Outgoing{
		{Size: "MM", Name: "Ada Lovelace", Address: "123 Main St, Springfield, IL 62704"},
		{Size: "M2XL", Name: "Alan Turing", Address: "900 Pine Rd, Suite 400, Denver, CO 80014"},
		{Size: "WS", Name: "Grace Hopper", Address: "leave with the neighbor"},
		{Size: "ML", Name: "Edsger Dijkstra", Address: "already gone", Shipped: true},
		{Size: "WL", Name: "Radia Perlman", Address: "nowhere, in particular"},
	}

	var buf bytes.Buffer
	summary, err := WriteManifest(orders, &buf)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Written)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, []string{"Alan Turing"}, summary.Oversized)
	assert.Equal(t, []string{"nowhere, in particular"}, summary.Unparsable)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, manifestColumns, rows[0])

	byCol := func(row []string, col string) string {
		for i, c := range manifestColumns {
			if c == col {
				return row[i]
			}
		}
		return ""
	}
	assert.Equal(t, "Ada Lovelace", byCol(rows[1], "Recipient Name"))
	assert.Equal(t, "123 Main St", byCol(rows[1], "Street Line 1"))
	assert.Equal(t, "8", byCol(rows[1], "Order Weight"))
	assert.Equal(t, "oz", byCol(rows[1], "Order Weight Unit"))
	assert.Equal(t, "Suite 400", byCol(rows[2], "Street Line 2"))
	assert.Equal(t, "M2XL", byCol(rows[2], "Item Title"))
}

func TestWriteManifestUnknownSizeWeight(t *testing.T) {
	orders := []Outgoing{
		{Size: "XXS", Name: "N N", Address: "1 First St, Townsville, TX 75001"},
	}
	var buf bytes.Buffer
	_, err := WriteManifest(orders, &buf)
	assert.ErrorIs(t, err, order.ErrConfiguration)
}
