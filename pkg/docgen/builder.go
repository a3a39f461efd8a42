package docgen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yockii/styleguide/pkg/style"
)

const (
	fontSans = "Arial"
	fontMono = "Courier New"
)

// Builder 内容构建器，只读取样式注册表，不做任何 I/O
type Builder struct {
	reg        *style.Registry
	tableWidth int
}

// BuilderOption 构建器选项
type BuilderOption func(*Builder)

// WithTableWidth 设置表格可用总宽度（twip）
func WithTableWidth(width int) BuilderOption {
	return func(b *Builder) {
		if width > 0 {
			b.tableWidth = width
		}
	}
}

// NewBuilder 创建内容构建器
func NewBuilder(reg *style.Registry, opts ...BuilderOption) *Builder {
	b := &Builder{
		reg:        reg,
		tableWidth: DefaultTableWidth,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Registry 返回构建器使用的样式注册表
func (b *Builder) Registry() *style.Registry {
	return b.reg
}

// TableWidth 表格可用总宽度
func (b *Builder) TableWidth() int {
	return b.tableWidth
}

func (b *Builder) run(font, sizeRef, colorRef string, bold, italic bool) (RunStyle, error) {
	size, err := b.reg.Size(sizeRef)
	if err != nil {
		return RunStyle{}, err
	}
	color, err := b.reg.Color(colorRef)
	if err != nil {
		return RunStyle{}, err
	}
	return RunStyle{
		Font:       font,
		HalfPoints: size.HalfPoints(),
		Color:      color.Hex,
		Bold:       bold,
		Italic:     italic,
	}, nil
}

func (b *Builder) fill(colorRef string) (string, error) {
	color, err := b.reg.Color(colorRef)
	if err != nil {
		return "", err
	}
	return color.Hex, nil
}

// Header 一级标题：headline 字号、强调色、粗斜体、深色底纹
func (b *Builder) Header(text string) (Header, error) {
	run, err := b.run(fontSans, style.SizeHeadline, style.ColorAccent, true, true)
	if err != nil {
		return Header{}, err
	}
	fill, err := b.fill(style.ColorDeep)
	if err != nil {
		return Header{}, err
	}
	return Header{
		Text:     text,
		StyleRef: style.SizeHeadline,
		Run:      run,
		Fill:     fill,
		Spacing:  Spacing{Before: 400, After: 200},
	}, nil
}

// SubHeader 二级标题：比一级标题小，不使用斜体
func (b *Builder) SubHeader(text string) (SubHeader, error) {
	run, err := b.run(fontSans, style.SizeTitle, style.ColorGlow, true, false)
	if err != nil {
		return SubHeader{}, err
	}
	return SubHeader{
		Text:     text,
		StyleRef: style.SizeTitle,
		Run:      run,
		Spacing:  Spacing{Before: 300, After: 150},
	}, nil
}

// Body 正文段落，未指定颜色时使用主文字颜色
func (b *Builder) Body(text string, colorRef ...string) (Body, error) {
	ref := style.ColorText
	if len(colorRef) > 0 && colorRef[0] != "" {
		ref = colorRef[0]
	}
	run, err := b.run(fontSans, style.SizeBody, ref, true, false)
	if err != nil {
		return Body{}, err
	}
	return Body{
		Text:     text,
		ColorRef: ref,
		Run:      run,
		Spacing:  Spacing{After: 120},
	}, nil
}

// Bullet 项目符号 + 粗斜体标签 + 说明，标签与说明均不能为空
func (b *Builder) Bullet(label, description string) (Bullet, error) {
	if strings.TrimSpace(label) == "" {
		return Bullet{}, fmt.Errorf("%w: bullet label", ErrEmptyText)
	}
	if strings.TrimSpace(description) == "" {
		return Bullet{}, fmt.Errorf("%w: bullet %q description", ErrEmptyText, label)
	}
	marker, err := b.run("", style.SizeBullet, style.ColorAccent, true, false)
	if err != nil {
		return Bullet{}, err
	}
	labelRun, err := b.run(fontSans, style.SizeBullet, style.ColorGlow, true, true)
	if err != nil {
		return Bullet{}, err
	}
	descRun, err := b.run(fontSans, style.SizeBody, style.ColorText, true, false)
	if err != nil {
		return Bullet{}, err
	}
	return Bullet{
		Label:       label,
		Description: description,
		Marker:      marker,
		LabelRun:    labelRun,
		DescRun:     descRun,
		Spacing:     Spacing{After: 150},
	}, nil
}

// Code 等宽代码块，保持行序，空输入得到空代码块
func (b *Builder) Code(lines []string) (CodeBlock, error) {
	run, err := b.run(fontMono, style.SizeCaption, style.ColorWhite, true, false)
	if err != nil {
		return CodeBlock{}, err
	}
	fill, err := b.fill(style.ColorDeep)
	if err != nil {
		return CodeBlock{}, err
	}
	return CodeBlock{
		Lines:   slices.Clone(lines),
		Run:     run,
		Fill:    fill,
		Padding: 100,
	}, nil
}

// Banner 居中展示行
func (b *Builder) Banner(text, sizeRef, colorRef string, italic bool, spacing Spacing) (Banner, error) {
	run, err := b.run(fontSans, sizeRef, colorRef, true, italic)
	if err != nil {
		return Banner{}, err
	}
	return Banner{Text: text, Run: run, Spacing: spacing}, nil
}

// Spacer 空段落
func (b *Builder) Spacer(before int) Spacer {
	return Spacer{Before: before}
}

// TableStyle 从注册表解析表格配色
func (b *Builder) TableStyle() (TableStyle, error) {
	headerFill, err := b.fill(style.ColorDeep)
	if err != nil {
		return TableStyle{}, err
	}
	headerRun, err := b.run("", style.SizeLabel, style.ColorWhite, true, true)
	if err != nil {
		return TableStyle{}, err
	}
	evenFill, err := b.fill(style.ColorIce)
	if err != nil {
		return TableStyle{}, err
	}
	oddFill, err := b.fill(style.ColorWhite)
	if err != nil {
		return TableStyle{}, err
	}
	bodyRun, err := b.run("", style.SizeCaption, style.ColorDeep, true, false)
	if err != nil {
		return TableStyle{}, err
	}
	border, err := b.fill(style.ColorGlow)
	if err != nil {
		return TableStyle{}, err
	}
	return TableStyle{
		HeaderFill:    headerFill,
		HeaderRun:     headerRun,
		HeaderMargins: CellMargins{Top: 80, Bottom: 80, Left: 120, Right: 120},
		EvenFill:      evenFill,
		OddFill:       oddFill,
		BodyRun:       bodyRun,
		BodyMargins:   CellMargins{Top: 60, Bottom: 60, Left: 120, Right: 120},
		Border:        Border{Color: border, Size: 1},
	}, nil
}

// Table 布局并定型表格，行列不一致时返回 MalformedTableError
func (b *Builder) Table(headers []string, rows [][]string) (Table, error) {
	layout, err := LayoutTable(headers, rows, b.tableWidth)
	if err != nil {
		return Table{}, err
	}
	ts, err := b.TableStyle()
	if err != nil {
		return Table{}, err
	}
	return StyleTable(layout, headers, rows, ts), nil
}
