package shipping

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostFor(t *testing.T) {
	cost, ok := CostFor("القاهرة")
	require.True(t, ok)
	assert.True(t, cost.Equal(decimal.NewFromInt(35)), "got %s", cost)

	cost, ok = CostFor("الوادي الجديد")
	require.True(t, ok)
	assert.True(t, cost.Equal(decimal.NewFromInt(100)))
}

func TestCostFor_Unknown(t *testing.T) {
	cost, ok := CostFor("أطلانتس")
	assert.False(t, ok)
	assert.True(t, cost.IsZero())

	cost, ok = CostFor("")
	assert.False(t, ok)
	assert.True(t, cost.IsZero())
}

func TestGovernorates(t *testing.T) {
	table := Governorates()
	assert.Len(t, table, 27)

	// Callers get a copy; mutating it must not poison the table.
	table[0].Name = "mutated"
	fresh := Governorates()
	assert.NotEqual(t, "mutated", fresh[0].Name)
}
