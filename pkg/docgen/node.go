package docgen

import "slices"

// NodeKind 内容节点类型
type NodeKind int

const (
	KindHeader NodeKind = iota + 1
	KindSubHeader
	KindBody
	KindBullet
	KindCode
	KindTable
	KindPageBreak
	KindBanner
	KindSpacer
)

var nodeKindNames = map[NodeKind]string{
	KindHeader:    "header",
	KindSubHeader: "subheader",
	KindBody:      "body",
	KindBullet:    "bullet",
	KindCode:      "code",
	KindTable:     "table",
	KindPageBreak: "pagebreak",
	KindBanner:    "banner",
	KindSpacer:    "spacer",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Node 文档内容节点，只能由本包的构建函数产生
type Node interface {
	Kind() NodeKind
	// texts 返回节点中所有会写入文档的文本
	texts() []string
	clone() Node
}

// Align 段落对齐方式
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

func (a Align) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "left"
}

// RunStyle 已解析的文字样式
type RunStyle struct {
	Font       string
	HalfPoints int
	Color      string
	Bold       bool
	Italic     bool
}

// Spacing 段前段后间距，单位 twip
type Spacing struct {
	Before int
	After  int
}

// Header 一级标题，粗斜体并带深色底纹
type Header struct {
	Text     string
	StyleRef string
	Run      RunStyle
	Fill     string
	Spacing  Spacing
}

func (Header) Kind() NodeKind    { return KindHeader }
func (n Header) texts() []string { return []string{n.Text} }
func (n Header) clone() Node     { return n }

// SubHeader 二级标题
type SubHeader struct {
	Text     string
	StyleRef string
	Run      RunStyle
	Spacing  Spacing
}

func (SubHeader) Kind() NodeKind    { return KindSubHeader }
func (n SubHeader) texts() []string { return []string{n.Text} }
func (n SubHeader) clone() Node     { return n }

// Body 正文段落
type Body struct {
	Text     string
	ColorRef string
	Run      RunStyle
	Spacing  Spacing
}

func (Body) Kind() NodeKind    { return KindBody }
func (n Body) texts() []string { return []string{n.Text} }
func (n Body) clone() Node     { return n }

// BulletMarker 项目符号
const BulletMarker = "✦ "

// Bullet 项目符号 + 强调标签 + 说明
type Bullet struct {
	Label       string
	Description string
	Marker      RunStyle
	LabelRun    RunStyle
	DescRun     RunStyle
	Spacing     Spacing
}

func (Bullet) Kind() NodeKind { return KindBullet }
func (n Bullet) texts() []string {
	return []string{BulletMarker, n.Label, n.Description}
}
func (n Bullet) clone() Node { return n }

// CodeBlock 等宽代码块，每行一个段落，不折行
type CodeBlock struct {
	Lines   []string
	Run     RunStyle
	Fill    string
	Padding int
}

func (CodeBlock) Kind() NodeKind    { return KindCode }
func (n CodeBlock) texts() []string { return n.Lines }
func (n CodeBlock) clone() Node {
	n.Lines = slices.Clone(n.Lines)
	return n
}

// PageBreak 分页
type PageBreak struct{}

func (PageBreak) Kind() NodeKind  { return KindPageBreak }
func (PageBreak) texts() []string { return nil }
func (n PageBreak) clone() Node   { return n }

// Banner 居中的展示行，用于封面与封底
type Banner struct {
	Text    string
	Run     RunStyle
	Spacing Spacing
}

func (Banner) Kind() NodeKind    { return KindBanner }
func (n Banner) texts() []string { return []string{n.Text} }
func (n Banner) clone() Node     { return n }

// Spacer 空段落，用于把内容推向页面下方
type Spacer struct {
	Before int
}

func (Spacer) Kind() NodeKind  { return KindSpacer }
func (Spacer) texts() []string { return nil }
func (n Spacer) clone() Node   { return n }
