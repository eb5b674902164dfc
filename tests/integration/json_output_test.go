// Integration tests for --json output across pantry commands.
package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONOutput_QtyEntry(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunPantry("add", "apple", "7")

	result := env.MustRunPantry("qty", "apple", "--json")

	entry := ParseJSON[struct {
		Item     string `json:"item"`
		Quantity int64  `json:"quantity"`
	}](t, result.Stdout)
	assert.Equal(t, "apple", entry.Item)
	assert.Equal(t, int64(7), entry.Quantity)
}

func TestJSONOutput_LowStockList(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunPantry("add", "apple", "10")
	env.MustRunPantry("add", "banana", "2")
	env.MustRunPantry("add", "cherry", "1")

	result := env.MustRunPantry("low", "--json")

	items := ParseJSON[[]string](t, result.Stdout)
	assert.Equal(t, []string{"banana", "cherry"}, items)
}

func TestJSONOutput_LowStockEmptyList(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunPantry("add", "apple", "10")

	result := env.MustRunPantry("low", "--json")

	items := ParseJSON[[]string](t, result.Stdout)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestJSONOutput_ReportObject(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunPantry("add", "apple", "7")
	env.MustRunPantry("add", "banana", "2")

	result := env.MustRunPantry("report", "--json")

	items := ParseJSON[map[string]int64](t, result.Stdout)
	assert.Equal(t, map[string]int64{"apple": 7, "banana": 2}, items)
}

func TestJSONOutput_RemoveReceipt(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunPantry("add", "apple", "10")

	result := env.MustRunPantry("remove", "apple", "3", "--json")

	receipt := ParseJSON[Receipt](t, result.Stdout)
	assert.Equal(t, "remove", receipt.Op)
	assert.Equal(t, "apple", receipt.Item)
	assert.Equal(t, int64(3), receipt.Qty)
	assert.Equal(t, int64(7), receipt.Total)
	assert.NotEmpty(t, receipt.EntryID)
	assert.NotEmpty(t, receipt.Time)
}
