package docgen

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// 段落样式 ID，与 styles.xml 中定义一致
const (
	styleHeading1 = "Heading1"
	styleHeading2 = "Heading2"
	styleCode     = "Code"
	styleTable    = "TableGrid"
)

// WordElementHandler 将内容节点转换为 WordprocessingML
type WordElementHandler struct {
	sb strings.Builder
}

// NewWordElementHandler 创建Word元素处理器
func NewWordElementHandler() *WordElementHandler {
	return &WordElementHandler{}
}

// DocumentXML 生成 word/document.xml
func (h *WordElementHandler) DocumentXML(doc *Document) string {
	h.sb.Reset()
	h.sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<w:body>
`)
	for _, n := range doc.nodes {
		h.writeNode(n)
	}
	h.writeSectionProperties(doc.geometry)
	h.sb.WriteString("</w:body>\n</w:document>")
	return h.sb.String()
}

func (h *WordElementHandler) writeNode(n Node) {
	switch n := n.(type) {
	case Header:
		h.paragraph(paraProps{style: styleHeading1, fill: n.Fill, spacing: &n.Spacing}, runXML(n.Run, n.Text))
	case SubHeader:
		h.paragraph(paraProps{style: styleHeading2, spacing: &n.Spacing}, runXML(n.Run, n.Text))
	case Body:
		h.paragraph(paraProps{spacing: &n.Spacing}, runXML(n.Run, n.Text))
	case Bullet:
		h.paragraph(paraProps{spacing: &n.Spacing},
			runXML(n.Marker, BulletMarker),
			runXML(n.LabelRun, n.Label+": "),
			runXML(n.DescRun, n.Description))
	case CodeBlock:
		for i, line := range n.Lines {
			sp := Spacing{}
			if i == 0 {
				sp.Before = n.Padding
			}
			if i == len(n.Lines)-1 {
				sp.After = n.Padding
			}
			h.paragraph(paraProps{style: styleCode, fill: n.Fill, spacing: &sp}, runXML(n.Run, line))
		}
	case Table:
		h.writeTable(n)
	case PageBreak:
		h.sb.WriteString("<w:p><w:r><w:br w:type=\"page\"/></w:r></w:p>\n")
	case Banner:
		h.paragraph(paraProps{align: AlignCenter, alignSet: true, spacing: &n.Spacing}, runXML(n.Run, n.Text))
	case Spacer:
		h.paragraph(paraProps{spacing: &Spacing{Before: n.Before}})
	}
}

type paraProps struct {
	style    string
	fill     string
	spacing  *Spacing
	align    Align
	alignSet bool
}

// paragraph 写入段落，pPr 子元素按架构顺序：pStyle、shd、spacing、jc
func (h *WordElementHandler) paragraph(p paraProps, runs ...string) {
	h.sb.WriteString("<w:p>")
	if p.style != "" || p.fill != "" || p.spacing != nil || p.alignSet {
		h.sb.WriteString("<w:pPr>")
		if p.style != "" {
			fmt.Fprintf(&h.sb, `<w:pStyle w:val="%s"/>`, p.style)
		}
		if p.fill != "" {
			fmt.Fprintf(&h.sb, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, p.fill)
		}
		if p.spacing != nil {
			fmt.Fprintf(&h.sb, `<w:spacing w:before="%d" w:after="%d"/>`, p.spacing.Before, p.spacing.After)
		}
		if p.alignSet {
			fmt.Fprintf(&h.sb, `<w:jc w:val="%s"/>`, p.align)
		}
		h.sb.WriteString("</w:pPr>")
	}
	for _, r := range runs {
		h.sb.WriteString(r)
	}
	h.sb.WriteString("</w:p>\n")
}

// runXML 文字片段，rPr 子元素按架构顺序：rFonts、b、i、color、sz
func runXML(rs RunStyle, text string) string {
	var sb strings.Builder
	sb.WriteString("<w:r><w:rPr>")
	if rs.Font != "" {
		fmt.Fprintf(&sb, `<w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:cs="%[1]s"/>`, rs.Font)
	}
	if rs.Bold {
		sb.WriteString("<w:b/><w:bCs/>")
	}
	if rs.Italic {
		sb.WriteString("<w:i/><w:iCs/>")
	}
	if rs.Color != "" {
		fmt.Fprintf(&sb, `<w:color w:val="%s"/>`, rs.Color)
	}
	if rs.HalfPoints > 0 {
		fmt.Fprintf(&sb, `<w:sz w:val="%[1]d"/><w:szCs w:val="%[1]d"/>`, rs.HalfPoints)
	}
	sb.WriteString(`</w:rPr><w:t xml:space="preserve">`)
	sb.WriteString(escapeText(text))
	sb.WriteString("</w:t></w:r>")
	return sb.String()
}

// writeTable 固定布局表格，列宽来自 TableLayout
func (h *WordElementHandler) writeTable(t Table) {
	border := fmt.Sprintf(`w:val="single" w:sz="%d" w:space="0" w:color="%s"`, t.Border.Size, t.Border.Color)

	h.sb.WriteString("<w:tbl><w:tblPr>")
	fmt.Fprintf(&h.sb, `<w:tblStyle w:val="%s"/>`, styleTable)
	h.sb.WriteString(`<w:tblW w:w="5000" w:type="pct"/>`)
	h.sb.WriteString("<w:tblBorders>")
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(&h.sb, "<w:%s %s/>", side, border)
	}
	h.sb.WriteString("</w:tblBorders>")
	h.sb.WriteString(`<w:tblLayout w:type="fixed"/>`)
	h.sb.WriteString("</w:tblPr><w:tblGrid>")
	for _, w := range t.Layout.ColumnWidths {
		fmt.Fprintf(&h.sb, `<w:gridCol w:w="%d"/>`, w)
	}
	h.sb.WriteString("</w:tblGrid>\n")

	for r, row := range t.Cells {
		h.sb.WriteString("<w:tr>")
		if r == 0 {
			// 跨页时重复表头
			h.sb.WriteString("<w:trPr><w:tblHeader/></w:trPr>")
		}
		for _, c := range row {
			h.writeCell(c, border)
		}
		h.sb.WriteString("</w:tr>\n")
	}
	h.sb.WriteString("</w:tbl>\n")
}

func (h *WordElementHandler) writeCell(c Cell, border string) {
	h.sb.WriteString("<w:tc><w:tcPr>")
	fmt.Fprintf(&h.sb, `<w:tcW w:w="%d" w:type="dxa"/>`, c.Width)
	h.sb.WriteString("<w:tcBorders>")
	for _, side := range []string{"top", "left", "bottom", "right"} {
		fmt.Fprintf(&h.sb, "<w:%s %s/>", side, border)
	}
	h.sb.WriteString("</w:tcBorders>")
	fmt.Fprintf(&h.sb, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, c.Fill)
	fmt.Fprintf(&h.sb, `<w:tcMar><w:top w:w="%d" w:type="dxa"/><w:left w:w="%d" w:type="dxa"/><w:bottom w:w="%d" w:type="dxa"/><w:right w:w="%d" w:type="dxa"/></w:tcMar>`,
		c.Margins.Top, c.Margins.Left, c.Margins.Bottom, c.Margins.Right)
	h.sb.WriteString("</w:tcPr>")
	h.paragraph(paraProps{spacing: &Spacing{}, align: c.Align, alignSet: true}, runXML(c.Run, c.Text))
	h.sb.WriteString("</w:tc>")
}

func (h *WordElementHandler) writeSectionProperties(g PageGeometry) {
	fmt.Fprintf(&h.sb, `<w:sectPr><w:pgSz w:w="%d" w:h="%d"/><w:pgMar w:top="%[3]d" w:right="%[3]d" w:bottom="%[3]d" w:left="%[3]d" w:header="720" w:footer="720" w:gutter="0"/></w:sectPr>
`, g.Width, g.Height, g.Margin)
}

// escapeText 转义 XML 文本，调用前须已通过 validateText
func escapeText(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
