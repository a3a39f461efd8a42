package docgen

import "fmt"

// Section 可分页的一组内容节点，例如“第二章 颜色系统”
type Section struct {
	Title string
	Nodes []Node
}

func (s Section) clone() Section {
	nodes := make([]Node, len(s.Nodes))
	for i, n := range s.Nodes {
		nodes[i] = n.clone()
	}
	return Section{Title: s.Title, Nodes: nodes}
}

// startsWithBreak 首个节点为分页符
func (s Section) startsWithBreak() bool {
	return len(s.Nodes) > 0 && s.Nodes[0].Kind() == KindPageBreak
}

// endsWithBreak 最后一个节点为分页符
func (s Section) endsWithBreak() bool {
	return len(s.Nodes) > 0 && s.Nodes[len(s.Nodes)-1].Kind() == KindPageBreak
}

// SectionBuilder 逐个追加节点，记录第一个错误，之后的调用全部忽略
type SectionBuilder struct {
	b   *Builder
	sec Section
	err error
}

// Section 开始构建一个章节
func (b *Builder) Section(title string) *SectionBuilder {
	return &SectionBuilder{b: b, sec: Section{Title: title}}
}

func (s *SectionBuilder) add(n Node, err error) *SectionBuilder {
	if s.err != nil {
		return s
	}
	if err != nil {
		s.err = fmt.Errorf("section %q: %w", s.sec.Title, err)
		return s
	}
	s.sec.Nodes = append(s.sec.Nodes, n)
	return s
}

func (s *SectionBuilder) Header(text string) *SectionBuilder {
	return s.add(s.b.Header(text))
}

func (s *SectionBuilder) SubHeader(text string) *SectionBuilder {
	return s.add(s.b.SubHeader(text))
}

func (s *SectionBuilder) Body(text string, colorRef ...string) *SectionBuilder {
	return s.add(s.b.Body(text, colorRef...))
}

func (s *SectionBuilder) Bullet(label, description string) *SectionBuilder {
	return s.add(s.b.Bullet(label, description))
}

func (s *SectionBuilder) Code(lines ...string) *SectionBuilder {
	return s.add(s.b.Code(lines))
}

func (s *SectionBuilder) Table(headers []string, rows [][]string) *SectionBuilder {
	return s.add(s.b.Table(headers, rows))
}

func (s *SectionBuilder) Banner(text, sizeRef, colorRef string, italic bool, spacing Spacing) *SectionBuilder {
	return s.add(s.b.Banner(text, sizeRef, colorRef, italic, spacing))
}

func (s *SectionBuilder) Spacer(before int) *SectionBuilder {
	return s.add(s.b.Spacer(before), nil)
}

func (s *SectionBuilder) PageBreak() *SectionBuilder {
	return s.add(PageBreak{}, nil)
}

// Append 追加已构建的节点
func (s *SectionBuilder) Append(nodes ...Node) *SectionBuilder {
	for _, n := range nodes {
		s.add(n, nil)
	}
	return s
}

// Err 返回第一个错误
func (s *SectionBuilder) Err() error {
	return s.err
}

// Build 完成章节
func (s *SectionBuilder) Build() (Section, error) {
	if s.err != nil {
		return Section{}, s.err
	}
	return s.sec.clone(), nil
}
