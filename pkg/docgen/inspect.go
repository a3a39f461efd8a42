package docgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// Outline 从生成的 DOCX 读回的结构摘要
type Outline struct {
	Headings    []string
	SubHeadings []string
	Paragraphs  int
	PageBreaks  int
	Tables      int
}

// Inspect 用独立的 DOCX 解析器读回归档，确认输出可被第三方读取
func Inspect(data []byte) (*Outline, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	out := &Outline{}
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			out.Paragraphs++
			if paragraphHasPageBreak(it) {
				out.PageBreaks++
			}
			text := paragraphText(it)
			switch paragraphStyle(it) {
			case styleHeading1:
				out.Headings = append(out.Headings, text)
			case styleHeading2:
				out.SubHeadings = append(out.SubHeadings, text)
			}
		case *docx.Table:
			out.Tables++
		}
	}
	return out, nil
}

func paragraphStyle(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func paragraphHasPageBreak(para *docx.Paragraph) bool {
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if br, ok := rc.(*docx.BarterRabbet); ok && br.Type == "page" {
				return true
			}
		}
	}
	return false
}
