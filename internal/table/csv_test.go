package table

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "x,y\n1,NA\n2,20\n3,30\n"

func TestReadCSV(t *testing.T) {
	t.Parallel()

	tab, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	require.Equal(t, 2, tab.NumCols())
	require.Equal(t, 3, tab.NumRows())

	x, ok := tab.Column("x")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, x.Values)

	y, ok := tab.Column("y")
	require.True(t, ok)
	assert.True(t, math.IsNaN(y.Values[0]))
	assert.Equal(t, 20.0, y.Values[1])
}

func TestReadCSV_NATokens(t *testing.T) {
	t.Parallel()

	in := "v\nNA\nna\nNaN\nnan\nnull\n\"\"\n"
	tab, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	v, ok := tab.Column("v")
	require.True(t, ok)
	require.Len(t, v.Values, 6)
	for i, val := range v.Values {
		assert.True(t, math.IsNaN(val), "row %d should be missing", i+1)
	}
}

func TestReadCSV_NonNumericCell(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(strings.NewReader("x,label\n1,apple\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"label"`)
}

func TestReadCSV_MissingHeader(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(strings.NewReader(""))
	require.Error(t, err)
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	tab, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tab))
	assert.Equal(t, sampleCSV, buf.String())
}

func TestReadWriteFile_Compressed(t *testing.T) {
	t.Parallel()

	tab, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	for _, ext := range []string{".csv", ".csv.gz", ".csv.zst"} {
		path := filepath.Join(t.TempDir(), "data"+ext)

		require.NoError(t, WriteFile(path, tab), ext)

		got, err := ReadFile(path)
		require.NoError(t, err, ext)
		require.Equal(t, tab.NumRows(), got.NumRows(), ext)

		x, ok := got.Column("x")
		require.True(t, ok, ext)
		assert.Equal(t, []float64{1, 2, 3}, x.Values, ext)
	}
}
