package docgen

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/yockii/styleguide/pkg/logger"
)

// Markdown 将 Markdown 文本转换为章节
//
// 映射规则：
//   - 一级标题开启新章节并生成 Header，二级及以下标题生成 SubHeader
//   - 段落生成 Body
//   - 以 **标签:** 开头的列表项生成 Bullet，其余列表项生成 Body
//   - 围栏代码块生成 Code，表格生成 Table，分隔线生成 PageBreak
//
// 第一个一级标题之前的内容归入无标题章节
func (b *Builder) Markdown(src []byte) ([]Section, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Table),
		// 表格扩展的优先级为 200，需要在它补齐或截断单元格之前检查原始行
		goldmark.WithParserOptions(parser.WithParagraphTransformers(
			util.Prioritized(tableShapeChecker{}, 150),
		)),
	)
	pc := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(src), parser.WithContext(pc))
	if err, ok := pc.Get(tableShapeKey).(error); ok {
		return nil, err
	}

	var sections []Section
	cur := b.Section("")
	flush := func() error {
		if len(cur.sec.Nodes) == 0 && cur.sec.Title == "" && cur.err == nil {
			return nil
		}
		sec, err := cur.Build()
		if err != nil {
			return err
		}
		sections = append(sections, sec)
		return nil
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := inlineText(node, src)
			if node.Level == 1 {
				if err := flush(); err != nil {
					return nil, err
				}
				cur = b.Section(title).Header(title)
				continue
			}
			cur.SubHeader(title)
		case *ast.Paragraph, *ast.TextBlock:
			if t := inlineText(node, src); t != "" {
				cur.Body(t)
			}
		case *ast.List:
			b.listItems(cur, node, src)
		case *ast.FencedCodeBlock:
			cur.Code(codeLines(node, src)...)
		case *ast.CodeBlock:
			cur.Code(codeLines(node, src)...)
		case *east.Table:
			headers, rows := tableCells(node, src)
			cur.Table(headers, rows)
		case *ast.ThematicBreak:
			cur.PageBreak()
		case *ast.Blockquote:
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if t := inlineText(c, src); t != "" {
					cur.Body(t)
				}
			}
		default:
			logger.Debug("markdown block ignored", logger.F("kind", n.Kind().String()))
		}
		if err := cur.Err(); err != nil {
			return nil, err
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return sections, nil
}

func (b *Builder) listItems(s *SectionBuilder, list *ast.List, src []byte) {
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		block := item.FirstChild()
		if block == nil {
			continue
		}
		if label, desc, ok := bulletParts(block, src); ok {
			s.Bullet(label, desc)
			continue
		}
		if t := inlineText(block, src); t != "" {
			s.Body(t)
		}
	}
}

// bulletParts 拆分 “**标签:** 说明” 形式的列表项
func bulletParts(block ast.Node, src []byte) (label, desc string, ok bool) {
	emph, isEmph := block.FirstChild().(*ast.Emphasis)
	if !isEmph || emph.Level != 2 {
		return "", "", false
	}
	label = strings.TrimSpace(strings.TrimSuffix(inlineText(emph, src), ":"))

	var buf strings.Builder
	for c := emph.NextSibling(); c != nil; c = c.NextSibling() {
		writeInline(&buf, c, src)
	}
	desc = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(buf.String()), ":"))
	return label, desc, true
}

func codeLines(n ast.Node, src []byte) []string {
	lines := n.Lines()
	out := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, strings.TrimRight(string(seg.Value(src)), "\r\n"))
	}
	return out
}

func tableCells(tbl *east.Table, src []byte) ([]string, [][]string) {
	var headers []string
	var rows [][]string
	for r := tbl.FirstChild(); r != nil; r = r.NextSibling() {
		var cells []string
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			cells = append(cells, inlineText(c, src))
		}
		if _, ok := r.(*east.TableHeader); ok {
			headers = cells
			continue
		}
		rows = append(rows, cells)
	}
	return headers, rows
}

func inlineText(n ast.Node, src []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeInline(&buf, c, src)
	}
	return strings.TrimSpace(buf.String())
}

func writeInline(buf *strings.Builder, n ast.Node, src []byte) {
	switch t := n.(type) {
	case *ast.Text:
		buf.Write(util.UnescapePunctuations(t.Value(src)))
		if t.SoftLineBreak() || t.HardLineBreak() {
			buf.WriteByte(' ')
		}
		return
	case *ast.CodeSpan:
		// 行内代码不处理转义
		for c := t.FirstChild(); c != nil; c = c.NextSibling() {
			if txt, ok := c.(*ast.Text); ok {
				buf.Write(txt.Value(src))
			}
		}
		return
	case *ast.String:
		buf.Write(t.Value)
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeInline(buf, c, src)
	}
}

var (
	tableShapeKey  = parser.NewContextKey()
	tableDelimCell = regexp.MustCompile(`^\s*:?-+:?\s*$`)
)

// tableShapeChecker 在 GFM 表格解析前校验每一行的单元格数
// 发现的第一个错误记录在解析上下文中
type tableShapeChecker struct{}

func (tableShapeChecker) Transform(node *ast.Paragraph, reader text.Reader, pc parser.Context) {
	if pc.Get(tableShapeKey) != nil {
		return
	}
	src := reader.Source()
	lines := node.Lines()
	for i := 1; i < lines.Len(); i++ {
		seg := lines.At(i)
		cols := delimiterColumns(seg.Value(src))
		if cols == 0 {
			continue
		}
		// 表头列数与分隔行不一致时不构成表格
		head := lines.At(i - 1)
		if rowCells(head.Value(src)) != cols {
			return
		}
		for j := i + 1; j < lines.Len(); j++ {
			row := lines.At(j)
			if got := rowCells(row.Value(src)); got != cols {
				pc.Set(tableShapeKey, &MalformedTableError{Row: j - i - 1, Got: got, Want: cols})
				return
			}
		}
		return
	}
}

// delimiterColumns 返回分隔行的列数，不是分隔行时返回 0
func delimiterColumns(line []byte) int {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || bytes.IndexByte(line, '-') < 0 {
		return 0
	}
	for _, c := range line {
		if !(c == ' ' || c == '\t' || c == '-' || c == '|' || c == ':') {
			return 0
		}
	}
	cols := bytes.Split(line, []byte{'|'})
	if len(bytes.TrimSpace(cols[0])) == 0 {
		cols = cols[1:]
	}
	if len(cols) > 0 && len(bytes.TrimSpace(cols[len(cols)-1])) == 0 {
		cols = cols[:len(cols)-1]
	}
	for _, col := range cols {
		if !tableDelimCell.Match(col) {
			return 0
		}
	}
	return len(cols)
}

// rowCells 按未转义的竖线统计一行的单元格数，首尾竖线不计
func rowCells(line []byte) int {
	line = bytes.TrimSpace(line)
	if len(line) > 0 && line[0] == '|' {
		line = line[1:]
	}
	if n := len(line); n > 0 && line[n-1] == '|' {
		line = line[:n-1]
	}
	if len(line) == 0 {
		return 0
	}
	cells := 1
	for i, c := range line {
		if c == '|' && (i == 0 || line[i-1] != '\\') {
			cells++
		}
	}
	return cells
}
