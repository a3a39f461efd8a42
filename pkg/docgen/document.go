package docgen

import (
	"fmt"

	"github.com/yockii/styleguide/pkg/logger"
)

// PageGeometry 页面尺寸与页边距，单位 twip
type PageGeometry struct {
	Width  int
	Height int
	Margin int
}

// DefaultGeometry US Letter，四边 0.75 英寸
func DefaultGeometry() PageGeometry {
	return PageGeometry{Width: 12240, Height: 15840, Margin: 1080}
}

// Validate 校验页面尺寸
func (g PageGeometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: page %dx%d", ErrInvalidGeometry, g.Width, g.Height)
	}
	if g.Margin < 0 || 2*g.Margin >= g.Width || 2*g.Margin >= g.Height {
		return fmt.Errorf("%w: margin %d on page %dx%d", ErrInvalidGeometry, g.Margin, g.Width, g.Height)
	}
	return nil
}

// ContentWidth 去掉左右页边距后的宽度
func (g PageGeometry) ContentWidth() int {
	return g.Width - 2*g.Margin
}

// Document 组装完成的不可变文档，只由 Serialize 消费
type Document struct {
	geometry PageGeometry
	sections []Section
	nodes    []Node
	inserted int
}

// Assemble 按调用方给定的顺序拼接章节
// 相邻章节之间插入分页符，除非前一章以分页符结尾或后一章以分页符开头；章节内部节点保持不变
func Assemble(sections []Section, geometry PageGeometry) (*Document, error) {
	if err := geometry.Validate(); err != nil {
		return nil, err
	}

	doc := &Document{
		geometry: geometry,
		sections: make([]Section, 0, len(sections)),
	}
	for i, sec := range sections {
		sec = sec.clone()
		if i > 0 && !sections[i-1].endsWithBreak() && !sec.startsWithBreak() {
			doc.nodes = append(doc.nodes, PageBreak{})
			doc.inserted++
		}
		doc.nodes = append(doc.nodes, sec.Nodes...)
		doc.sections = append(doc.sections, sec)
	}

	logger.Debug("document assembled",
		logger.F("sections", len(doc.sections)),
		logger.F("nodes", len(doc.nodes)),
		logger.F("inserted_breaks", doc.inserted))
	return doc, nil
}

// Geometry 页面尺寸
func (d *Document) Geometry() PageGeometry {
	return d.geometry
}

// Sections 章节副本
func (d *Document) Sections() []Section {
	out := make([]Section, len(d.sections))
	for i, s := range d.sections {
		out[i] = s.clone()
	}
	return out
}

// Nodes 含插入分页符在内的完整节点序列副本
func (d *Document) Nodes() []Node {
	out := make([]Node, len(d.nodes))
	for i, n := range d.nodes {
		out[i] = n.clone()
	}
	return out
}

// InsertedBreaks 组装时插入的分页符数量
func (d *Document) InsertedBreaks() int {
	return d.inserted
}

// Len 节点数量
func (d *Document) Len() int {
	return len(d.nodes)
}
