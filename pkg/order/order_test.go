package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorSum(t *testing.T) {
	assert.Equal(t, 0, Vector{}.Sum())
	assert.Equal(t, 6, Vector{1, 2, 3}.Sum())
}

func TestInventoryAccounting(t *testing.T) {
	inv := Inventory{3, -2, 0, -1}

	assert.Equal(t, 0, inv.Sum())
	assert.Equal(t, 6, inv.AbsSum())
	assert.Equal(t, 3, inv.Backordered())
}

func TestCloneIsIndependent(t *testing.T) {
	inv := Inventory{1, 2}
	cp := inv.Clone()
	cp[0] = 99

	assert.Equal(t, 1, inv[0])
}
