package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datakit-labs/tidescale/internal/rescale"
)

func sampleTable() *Table {
	return &Table{Columns: []Column{
		{Name: "a", Values: []float64{0, 5, 10}},
		{Name: "b", Values: []float64{math.NaN(), 2, 4}},
	}}
}

func TestApply_AllColumns(t *testing.T) {
	t.Parallel()

	tab := sampleTable()
	require.NoError(t, tab.Apply(rescale.Rescale01))

	a, ok := tab.Column("a")
	require.True(t, ok)
	assert.InDelta(t, 0.0, a.Values[0], 1e-12)
	assert.InDelta(t, 0.5, a.Values[1], 1e-12)
	assert.InDelta(t, 1.0, a.Values[2], 1e-12)

	b, ok := tab.Column("b")
	require.True(t, ok)
	assert.True(t, math.IsNaN(b.Values[0]))
	assert.InDelta(t, 0.0, b.Values[1], 1e-12)
	assert.InDelta(t, 1.0, b.Values[2], 1e-12)
}

func TestApply_SelectedColumn(t *testing.T) {
	t.Parallel()

	tab := sampleTable()
	require.NoError(t, tab.Apply(rescale.Rescale01, "a"))

	b, ok := tab.Column("b")
	require.True(t, ok)
	assert.Equal(t, 2.0, b.Values[1], "unselected column must stay untouched")
}

func TestApply_UnknownColumn(t *testing.T) {
	t.Parallel()

	tab := sampleTable()
	err := tab.Apply(rescale.Rescale01, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestApply_LengthMismatch(t *testing.T) {
	t.Parallel()

	tab := sampleTable()
	err := tab.Apply(func(values []float64) []float64 {
		return values[:1]
	}, "a")
	require.Error(t, err)
}

func TestSummaries(t *testing.T) {
	t.Parallel()

	summaries := sampleTable().Summaries()
	require.Len(t, summaries, 2)

	assert.Equal(t, "a", summaries[0].Name)
	assert.Equal(t, 3, summaries[0].Count)
	assert.Equal(t, 0, summaries[0].Missing)
	assert.InDelta(t, 5.0, summaries[0].Mean, 1e-12)

	assert.Equal(t, "b", summaries[1].Name)
	assert.Equal(t, 2, summaries[1].Count)
	assert.Equal(t, 1, summaries[1].Missing)
	assert.InDelta(t, 3.0, summaries[1].Mean, 1e-12)
}

func TestNumRowsEmpty(t *testing.T) {
	t.Parallel()

	empty := &Table{}
	assert.Equal(t, 0, empty.NumRows())
	assert.Equal(t, 0, empty.NumCols())
}
