package docgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutTableTwoByTwo(t *testing.T) {
	b := newTestBuilder(t)

	tbl, err := b.Table([]string{"A", "B"}, [][]string{{"1", "2"}, {"3", "4"}})
	require.NoError(t, err)

	require.Len(t, tbl.Cells, 3)
	assert.Len(t, tbl.Cells[0], 2)
	data := 0
	for _, row := range tbl.Cells[1:] {
		data += len(row)
	}
	assert.Equal(t, 4, data)

	assert.Equal(t, []Shade{ShadeEven, ShadeOdd}, tbl.Layout.RowShades)
	assert.Equal(t, "E0F4FF", tbl.Cells[1][0].Fill)
	assert.Equal(t, "FFFFFF", tbl.Cells[2][0].Fill)

	w := tbl.Layout.ColumnWidths
	require.Len(t, w, 2)
	assert.InDelta(t, w[0], w[1], 1)
	assert.Equal(t, 4680, w[0])
}

func TestLayoutTableShortRow(t *testing.T) {
	layout, err := LayoutTable([]string{"A", "B"}, [][]string{{"1"}}, DefaultTableWidth)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedTable)
	assert.Zero(t, layout.Columns)
	assert.Nil(t, layout.ColumnWidths)

	var mt *MalformedTableError
	require.True(t, errors.As(err, &mt))
	assert.Equal(t, 0, mt.Row)
	assert.Equal(t, 1, mt.Got)
	assert.Equal(t, 2, mt.Want)
}

func TestLayoutTableRejects(t *testing.T) {
	cases := []struct {
		name    string
		headers []string
		rows    [][]string
		width   int
	}{
		{"no headers", nil, nil, DefaultTableWidth},
		{"empty header", []string{"A", " "}, nil, DefaultTableWidth},
		{"duplicate header", []string{"A", "A"}, nil, DefaultTableWidth},
		{"duplicate header after trimming", []string{"A", "A "}, nil, DefaultTableWidth},
		{"long row", []string{"A"}, [][]string{{"1"}, {"2", "3"}}, DefaultTableWidth},
		{"too narrow", []string{"A", "B", "C"}, nil, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LayoutTable(tc.headers, tc.rows, tc.width)
			assert.ErrorIs(t, err, ErrMalformedTable)
		})
	}
}

func TestColumnWidthsRemainder(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 6, 7} {
		widths := ColumnWidths(DefaultTableWidth, n)
		require.Len(t, widths, n)
		sum := 0
		for _, w := range widths {
			assert.Equal(t, DefaultTableWidth/n, w)
			sum += w
		}
		assert.Equal(t, DefaultTableWidth-DefaultTableWidth%n, sum)
	}

	layout, err := LayoutTable([]string{"A", "B", "C", "D", "E", "F", "G"}, nil, DefaultTableWidth)
	require.NoError(t, err)
	assert.Equal(t, 1337, layout.ColumnWidths[0])
	assert.Equal(t, 1, layout.Remainder)
}

func TestRowShadeParity(t *testing.T) {
	rows := make([][]string, 9)
	for i := range rows {
		rows[i] = []string{"same", "same"}
	}
	first, err := LayoutTable([]string{"A", "B"}, rows, DefaultTableWidth)
	require.NoError(t, err)
	second, err := LayoutTable([]string{"A", "B"}, rows, DefaultTableWidth)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for i, s := range first.RowShades {
		if i%2 == 0 {
			assert.Equal(t, ShadeEven, s, "row %d", i)
		} else {
			assert.Equal(t, ShadeOdd, s, "row %d", i)
		}
	}
}

func TestStyleTableAlignmentAndHeader(t *testing.T) {
	b := newTestBuilder(t)

	tbl, err := b.Table([]string{"Token", "Value", "Usage"}, [][]string{{"space-xs", "4px", "Tight"}})
	require.NoError(t, err)

	for _, c := range tbl.Cells[0] {
		assert.True(t, c.Header)
		assert.Equal(t, ShadeHeader, c.Shade)
		assert.Equal(t, AlignCenter, c.Align)
		assert.Equal(t, "0A1628", c.Fill)
		assert.Equal(t, "FFFFFF", c.Run.Color)
		assert.True(t, c.Run.Italic)
	}
	row := tbl.Cells[1]
	assert.Equal(t, AlignLeft, row[0].Align)
	assert.Equal(t, AlignCenter, row[1].Align)
	assert.Equal(t, AlignCenter, row[2].Align)
	assert.Equal(t, "0A1628", row[0].Run.Color)
	assert.Equal(t, Border{Color: "00A3FF", Size: 1}, tbl.Border)
}

func TestTableCloneIsDeep(t *testing.T) {
	b := newTestBuilder(t)

	tbl, err := b.Table([]string{"A"}, [][]string{{"1"}})
	require.NoError(t, err)
	cp := tbl.clone().(Table)
	cp.Rows[0][0] = "changed"
	cp.Cells[1][0].Text = "changed"
	cp.Layout.ColumnWidths[0] = 1

	assert.Equal(t, "1", tbl.Rows[0][0])
	assert.Equal(t, "1", tbl.Cells[1][0].Text)
	assert.Equal(t, DefaultTableWidth, tbl.Layout.ColumnWidths[0])
}
