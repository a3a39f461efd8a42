package content

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/yockii/styleguide/pkg/docgen"
	"github.com/yockii/styleguide/pkg/logger"
	"github.com/yockii/styleguide/pkg/style"
)

//go:embed chapters/*.md
var chapterFS embed.FS

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// chapterGenerator 生成依赖样式注册表的章节开头，Markdown 中的静态内容追加在其后
type chapterGenerator func(b *docgen.Builder, reg *style.Registry) (*docgen.SectionBuilder, error)

var generated = map[string]chapterGenerator{
	"02": colorChapter,
	"04": spacingChapter,
	"05": radiusChapter,
}

type tocEntry struct {
	title string
	page  int
}

var tocEntries = []tocEntry{
	{"Design Philosophy", 3},
	{"Color System - Blue Aura Palette", 4},
	{"Typography - Loar Font System", 6},
	{"Spacing & Layout Grid", 8},
	{"Border Radius - Round & Clean", 9},
	{"Liquid Glass Design System", 10},
	{"Shadows, Glows & Effects", 12},
	{"Component Library", 14},
	{"Home Tab Styling", 21},
	{"Games Tab Styling", 24},
	{"My Picks Tab Styling", 27},
	{"Live Tab Styling", 30},
	{"Profile Tab Styling", 33},
	{"Bet Slip Styling", 36},
	{"Wallet Screen", 38},
	{"Spin Wheel & Gamification", 40},
	{"Navigation & Bottom Bar", 42},
	{"Animations & Transitions", 44},
	{"Sport-Specific Colors", 46},
	{"CSS Variables (Copy-Paste)", 48},
}

// Sections 构建完整的风格指南：封面、目录、二十个章节与封底
func Sections(b *docgen.Builder, reg *style.Registry) ([]docgen.Section, error) {
	cover, err := coverPage(b)
	if err != nil {
		return nil, err
	}
	toc, err := tableOfContents(b)
	if err != nil {
		return nil, err
	}
	chapters, err := Chapters(b, reg)
	if err != nil {
		return nil, err
	}
	closing, err := closingPage(b)
	if err != nil {
		return nil, err
	}

	sections := make([]docgen.Section, 0, len(chapters)+3)
	sections = append(sections, cover, toc)
	sections = append(sections, chapters...)
	sections = append(sections, closing)
	return sections, nil
}

// Chapters 按文件名顺序加载内嵌章节
func Chapters(b *docgen.Builder, reg *style.Registry) ([]docgen.Section, error) {
	entries, err := fs.ReadDir(chapterFS, "chapters")
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}

	var out []docgen.Section
	for _, e := range entries {
		name := e.Name()
		src, err := chapterFS.ReadFile(path.Join("chapters", name))
		if err != nil {
			return nil, fmt.Errorf("read chapter %s: %w", name, err)
		}
		secs, err := b.Markdown(src)
		if err != nil {
			return nil, fmt.Errorf("chapter %s: %w", name, err)
		}

		prefix, _, _ := strings.Cut(name, "-")
		gen, ok := generated[prefix]
		if !ok {
			out = append(out, secs...)
			logger.Debug("chapter loaded", logger.F("file", name), logger.F("sections", len(secs)))
			continue
		}

		sb, err := gen(b, reg)
		if err != nil {
			return nil, fmt.Errorf("chapter %s: %w", name, err)
		}
		for _, s := range secs {
			sb.Append(s.Nodes...)
		}
		sec, err := sb.Build()
		if err != nil {
			return nil, fmt.Errorf("chapter %s: %w", name, err)
		}
		out = append(out, sec)
		logger.Debug("chapter generated", logger.F("file", name), logger.F("nodes", len(sec.Nodes)))
	}
	return out, nil
}

func coverPage(b *docgen.Builder) (docgen.Section, error) {
	return b.Section("Cover").
		Spacer(2000).
		Banner("HOTSTREAK", style.SizeDisplay, style.ColorPrimary, true, docgen.Spacing{}).
		Banner("SPORTS BETTING APP", style.SizeSubtitle, style.ColorGlow, false, docgen.Spacing{After: 200}).
		Banner(divider, style.SizeBullet, style.ColorAccent, false, docgen.Spacing{After: 600}).
		Banner("COMPREHENSIVE STYLE GUIDE", style.SizeDisplaySmall, style.ColorAccent, true, docgen.Spacing{After: 100}).
		Banner("Blue Aura Theme • Liquid Glass Design • Round & Clean", style.SizeTitle, style.ColorMuted, false, docgen.Spacing{After: 400}).
		Banner("Font: Loar Italic Bold 600 (Headers) • Loar Bold 600 (Body)", style.SizeLabel, style.ColorMuted, false, docgen.Spacing{}).
		Build()
}

func tableOfContents(b *docgen.Builder) (docgen.Section, error) {
	sb := b.Section("Table of Contents").
		Banner("TABLE OF CONTENTS", style.SizeSubtitle, style.ColorPrimary, true, docgen.Spacing{After: 400})
	for i, e := range tocEntries {
		sb.Body(tocLine(i+1, e))
	}
	return sb.Build()
}

// tocLine 形如 "1.  Design Philosophy ...... 3"
func tocLine(n int, e tocEntry) string {
	dots := 43 - len(e.title)
	if dots < 3 {
		dots = 3
	}
	return fmt.Sprintf("%-4s%s %s %d", fmt.Sprintf("%d.", n), e.title, strings.Repeat(".", dots), e.page)
}

func closingPage(b *docgen.Builder) (docgen.Section, error) {
	return b.Section("Closing").
		Spacer(2000).
		Banner(divider, style.SizeBullet, style.ColorAccent, false, docgen.Spacing{}).
		Banner("HOTSTREAK", style.SizeDisplaySmall, style.ColorPrimary, true, docgen.Spacing{Before: 200}).
		Banner("COMPREHENSIVE STYLE GUIDE", style.SizeBullet, style.ColorGlow, false, docgen.Spacing{}).
		Banner("Blue Aura Theme • Liquid Glass • Round & Clean", style.SizeLabel, style.ColorMuted, true, docgen.Spacing{Before: 200}).
		Banner("Version 1.0", style.SizeCaption, style.ColorMuted, false, docgen.Spacing{Before: 100}).
		Build()
}
