// SPDX-License-Identifier: MIT

package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mca/dataset"
)

const writers = `author,period,comma,other
Rousseau,7836,13112,6026
Chateaubriand,53655,102383,42413
`

func TestReadCSV_IndexColumn(t *testing.T) {
	f, err := dataset.ReadCSV(strings.NewReader(writers), dataset.WithIndexColumn())
	require.NoError(t, err)

	assert.Equal(t, []string{"period", "comma", "other"}, f.Header)
	assert.Equal(t, []string{"Rousseau", "Chateaubriand"}, f.Index)
	assert.Equal(t, 2, f.Rows())
	assert.Equal(t, 3, f.Cols())

	m, err := f.Numeric()
	require.NoError(t, err)
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 42413.0, v)
}

func TestReadCSV_SkipRowsAndComma(t *testing.T) {
	in := "a title line\nx;y\n1;2\n"
	f, err := dataset.ReadCSV(strings.NewReader(in), dataset.WithSkipRows(1), dataset.WithComma(';'))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, f.Header)
	assert.Nil(t, f.Index)
	assert.Equal(t, [][]string{{"1", "2"}}, f.Records)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []dataset.Option
		want error
	}{
		{"empty", "", nil, dataset.ErrEmpty},
		{"only title", "title\n", []dataset.Option{dataset.WithSkipRows(1)}, dataset.ErrEmpty},
		{"ragged", "a,b\n1,2\n3\n", nil, dataset.ErrRagged},
		{"duplicate", "a,a\n1,2\n", nil, dataset.ErrDuplicateColumn},
		{"index only", "id\nr1\n", []dataset.Option{dataset.WithIndexColumn()}, dataset.ErrEmpty},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.ReadCSV(strings.NewReader(tc.in), tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadCSVFile(t *testing.T) {
	f, err := dataset.ReadCSVFile("../testdata/burgundies.csv", dataset.WithSkipRows(1), dataset.WithIndexColumn())
	require.NoError(t, err)
	assert.Equal(t, 6, f.Rows())
	assert.Equal(t, 11, f.Cols())
	assert.Equal(t, "W4", f.Index[3])

	_, err = dataset.ReadCSVFile("../testdata/missing.csv")
	require.Error(t, err)
}

func TestFrame_SelectDrop(t *testing.T) {
	f, err := dataset.NewFrame(
		[]string{"a", "b", "c"},
		[][]string{{"1", "x", "2"}, {"3", "y", "4"}},
		[]string{"r1", "r2"},
	)
	require.NoError(t, err)

	sel, err := f.Select("c", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, sel.Header)
	assert.Equal(t, [][]string{{"2", "1"}, {"4", "3"}}, sel.Records)
	assert.Equal(t, f.Index, sel.Index)

	dropped, err := f.Drop("b")
	require.NoError(t, err)
	m, err := dropped.Numeric()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	// Receiver untouched.
	assert.Equal(t, 3, f.Cols())

	_, err = f.Select("zzz")
	require.ErrorIs(t, err, dataset.ErrUnknownColumn)
	_, err = f.Drop("a", "b", "c")
	require.ErrorIs(t, err, dataset.ErrEmpty)
	_, err = f.Select()
	require.ErrorIs(t, err, dataset.ErrEmpty)
}

func TestFrame_NumericRejectsText(t *testing.T) {
	f, err := dataset.NewFrame([]string{"a", "b"}, [][]string{{"1", "x"}}, nil)
	require.NoError(t, err)
	_, err = f.Numeric()
	require.ErrorIs(t, err, dataset.ErrNotNumeric)

	empty, err := dataset.NewFrame([]string{"a"}, nil, nil)
	require.NoError(t, err)
	_, err = empty.Numeric()
	require.ErrorIs(t, err, dataset.ErrEmpty)
}

func TestFrame_Column(t *testing.T) {
	f, err := dataset.NewFrame([]string{"a", "b"}, [][]string{{"1", "x"}, {"2", "y"}}, nil)
	require.NoError(t, err)
	col, err := f.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, col)

	_, err = f.Column("nope")
	require.ErrorIs(t, err, dataset.ErrUnknownColumn)

	_, err = dataset.NewFrame([]string{"a"}, [][]string{{"1"}}, []string{"r1", "r2"})
	require.ErrorIs(t, err, dataset.ErrRagged)
}
