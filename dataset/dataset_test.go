package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prefgraph/dataset"
	"github.com/katalvlaran/prefgraph/pref"
)

func TestFromColumns_Empty(t *testing.T) {
	d, err := dataset.FromColumns(nil)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset)

	d, err = dataset.FromColumns(map[string][]float64{"x": {}})
	assert.Nil(t, d)
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset)
}

func TestFromColumns_Ragged(t *testing.T) {
	d, err := dataset.FromColumns(map[string][]float64{
		"x": {1, 2, 3},
		"y": {1, 2},
	})
	assert.Nil(t, d)
	assert.ErrorIs(t, err, dataset.ErrRaggedColumns)
}

func TestFromColumns_OrderAndAccess(t *testing.T) {
	d, err := dataset.FromColumns(map[string][]float64{
		"y": {4, 5, 6},
		"x": {1, 2, 3},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []string{"x", "y"}, d.Columns(), "columns sorted by name")

	col, err := d.Column("y")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, col)

	_, err = d.Column("z")
	assert.ErrorIs(t, err, dataset.ErrNoColumn)
}

func TestFromCSV(t *testing.T) {
	in := "price, dist\n1, 2\n2, 1\n3, 3\n"
	d, err := dataset.FromCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []string{"price", "dist"}, d.Columns(), "header order kept")

	price, err := d.Column("price")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, price)
}

func TestFromCSV_Errors(t *testing.T) {
	_, err := dataset.FromCSV(strings.NewReader(""))
	assert.Error(t, err, "missing header")

	_, err = dataset.FromCSV(strings.NewReader("x,y\n"))
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset, "header only")

	_, err = dataset.FromCSV(strings.NewReader("x,y\n1,oops\n"))
	assert.Error(t, err, "non-numeric cell")
	assert.ErrorContains(t, err, "column \"y\"")
}

func TestLowHigh(t *testing.T) {
	d, err := dataset.FromColumns(map[string][]float64{"x": {1, 2, 2}})
	require.NoError(t, err)

	lo, err := dataset.Low(d, "x")
	require.NoError(t, err)
	assert.True(t, pref.Better(lo, 0, 1))
	assert.False(t, pref.Better(lo, 1, 0))
	assert.True(t, pref.Equal(lo, 1, 2))

	hi, err := dataset.High(d, "x")
	require.NoError(t, err)
	assert.True(t, pref.Better(hi, 1, 0))
	assert.False(t, pref.Better(hi, 0, 1))
	assert.True(t, pref.Equal(hi, 1, 2))

	_, err = dataset.Low(d, "nope")
	assert.ErrorIs(t, err, dataset.ErrNoColumn)
	_, err = dataset.High(d, "nope")
	assert.ErrorIs(t, err, dataset.ErrNoColumn)
}

func TestGroupBy(t *testing.T) {
	d, err := dataset.FromColumns(map[string][]float64{
		"g": {1, 2, 1, 3, 2},
		"x": {9, 8, 7, 6, 5},
	})
	require.NoError(t, err)

	groups, err := d.GroupBy("g")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 2}, {1, 4}, {3}}, groups,
		"first-occurrence group order, ascending members")

	_, err = d.GroupBy("nope")
	assert.ErrorIs(t, err, dataset.ErrNoColumn)
}
