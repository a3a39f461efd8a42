package docgen

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultTableWidth 表格可用总宽度，单位 twip（8.5 英寸减去两侧各 1 英寸）
const DefaultTableWidth = 9360

// Shade 行底纹类别，只由行下标的奇偶决定
type Shade int

const (
	ShadeHeader Shade = iota // 表头：深底浅字
	ShadeEven                // 偶数下标数据行
	ShadeOdd                 // 奇数下标数据行
)

func (s Shade) String() string {
	switch s {
	case ShadeHeader:
		return "header"
	case ShadeEven:
		return "even"
	default:
		return "odd"
	}
}

// TableLayout 纯布局结果，不含任何颜色或字体
type TableLayout struct {
	Columns      int
	TotalWidth   int
	ColumnWidths []int
	// Remainder 整除后未分配的宽度，不再分给任何列
	Remainder  int
	RowShades  []Shade
	Alignments []Align
}

// LayoutTable 校验表格形状并计算列宽、行底纹与列对齐
func LayoutTable(headers []string, rows [][]string, totalWidth int) (TableLayout, error) {
	if len(headers) == 0 {
		return TableLayout{}, &MalformedTableError{Row: HeaderRow, Reason: "no columns"}
	}
	seen := make(map[string]struct{}, len(headers))
	for i, h := range headers {
		key := strings.TrimSpace(h)
		if key == "" {
			return TableLayout{}, &MalformedTableError{Row: HeaderRow, Reason: fmt.Sprintf("header %d is empty", i)}
		}
		if _, dup := seen[key]; dup {
			return TableLayout{}, &MalformedTableError{Row: HeaderRow, Reason: fmt.Sprintf("duplicate header %q", h)}
		}
		seen[key] = struct{}{}
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return TableLayout{}, &MalformedTableError{Row: i, Got: len(row), Want: len(headers)}
		}
	}
	if totalWidth < len(headers) {
		return TableLayout{}, &MalformedTableError{
			Row:    HeaderRow,
			Reason: fmt.Sprintf("width %d too small for %d columns", totalWidth, len(headers)),
		}
	}

	n := len(headers)
	layout := TableLayout{
		Columns:      n,
		TotalWidth:   totalWidth,
		ColumnWidths: ColumnWidths(totalWidth, n),
		Remainder:    totalWidth % n,
		RowShades:    make([]Shade, len(rows)),
		Alignments:   make([]Align, n),
	}
	for i := range rows {
		layout.RowShades[i] = RowShade(i)
	}
	for c := range layout.Alignments {
		layout.Alignments[c] = ColumnAlign(c)
	}
	return layout, nil
}

// ColumnWidths 总宽度整除列数，余数不再分配
func ColumnWidths(totalWidth, columns int) []int {
	if columns <= 0 {
		return nil
	}
	w := totalWidth / columns
	widths := make([]int, columns)
	for i := range widths {
		widths[i] = w
	}
	return widths
}

// RowShade 数据行底纹
func RowShade(index int) Shade {
	if index%2 == 0 {
		return ShadeEven
	}
	return ShadeOdd
}

// ColumnAlign 首列左对齐，其余居中
func ColumnAlign(column int) Align {
	if column == 0 {
		return AlignLeft
	}
	return AlignCenter
}

// CellMargins 单元格内边距，单位 twip
type CellMargins struct {
	Top, Bottom, Left, Right int
}

// Border 表格边框
type Border struct {
	Color string
	Size  int // 1/8 磅
}

// TableStyle 表格的配色与字体
type TableStyle struct {
	HeaderFill    string
	HeaderRun     RunStyle
	HeaderMargins CellMargins
	EvenFill      string
	OddFill       string
	BodyRun       RunStyle
	BodyMargins   CellMargins
	Border        Border
}

// fill 底纹类别对应的填充色
func (s TableStyle) fill(shade Shade) string {
	switch shade {
	case ShadeHeader:
		return s.HeaderFill
	case ShadeEven:
		return s.EvenFill
	default:
		return s.OddFill
	}
}

// Cell 已定型的单元格
type Cell struct {
	Text    string
	Width   int
	Fill    string
	Shade   Shade
	Align   Align
	Run     RunStyle
	Margins CellMargins
	Header  bool
}

// Table 表格节点，Cells[0] 为表头行
type Table struct {
	Headers []string
	Rows    [][]string
	Layout  TableLayout
	Cells   [][]Cell
	Border  Border
}

func (Table) Kind() NodeKind { return KindTable }

func (n Table) texts() []string {
	out := slices.Clone(n.Headers)
	for _, row := range n.Rows {
		out = append(out, row...)
	}
	return out
}

func (n Table) clone() Node {
	n.Headers = slices.Clone(n.Headers)
	rows := make([][]string, len(n.Rows))
	for i, r := range n.Rows {
		rows[i] = slices.Clone(r)
	}
	n.Rows = rows
	n.Layout.ColumnWidths = slices.Clone(n.Layout.ColumnWidths)
	n.Layout.RowShades = slices.Clone(n.Layout.RowShades)
	n.Layout.Alignments = slices.Clone(n.Layout.Alignments)
	cells := make([][]Cell, len(n.Cells))
	for i, r := range n.Cells {
		cells[i] = slices.Clone(r)
	}
	n.Cells = cells
	return n
}

// StyleTable 把布局结果与配色组合为单元格网格
// 表头行不参与奇偶交替
func StyleTable(layout TableLayout, headers []string, rows [][]string, style TableStyle) Table {
	t := Table{
		Headers: slices.Clone(headers),
		Rows:    make([][]string, len(rows)),
		Layout:  layout,
		Cells:   make([][]Cell, 0, len(rows)+1),
		Border:  style.Border,
	}

	head := make([]Cell, len(headers))
	for c, h := range headers {
		head[c] = Cell{
			Text:    h,
			Width:   layout.ColumnWidths[c],
			Fill:    style.fill(ShadeHeader),
			Shade:   ShadeHeader,
			Align:   AlignCenter,
			Run:     style.HeaderRun,
			Margins: style.HeaderMargins,
			Header:  true,
		}
	}
	t.Cells = append(t.Cells, head)

	for r, row := range rows {
		t.Rows[r] = slices.Clone(row)
		shade := layout.RowShades[r]
		line := make([]Cell, len(row))
		for c, text := range row {
			line[c] = Cell{
				Text:    text,
				Width:   layout.ColumnWidths[c],
				Fill:    style.fill(shade),
				Shade:   shade,
				Align:   layout.Alignments[c],
				Run:     style.BodyRun,
				Margins: style.BodyMargins,
			}
		}
		t.Cells = append(t.Cells, line)
	}
	return t
}
