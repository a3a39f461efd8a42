package content

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/yockii/styleguide/pkg/docgen"
	"github.com/yockii/styleguide/pkg/style"
)

// swatch 调色板中的一行
type swatch struct {
	name  string
	label string
	usage string
}

var primaryColors = []swatch{
	{style.ColorPrimary, "Primary Blue", "Main CTAs, links, active states"},
	{style.ColorGlow, "Glow Blue", "Highlights, hover states, aura"},
	{style.ColorAccent, "Accent Cyan", "Live indicators, winning states"},
	{style.ColorDeep, "Deep Blue", "Primary background, app base"},
	{style.ColorGlass, "Glass Blue", "Card backgrounds, overlays"},
	{style.ColorSoft, "Soft Blue", "Secondary backgrounds"},
	{style.ColorIce, "Ice Blue", "Light accents, table alternates"},
}

var semanticColors = []swatch{
	{style.ColorSuccess, "Success Green", "Winning bets, confirmations"},
	{style.ColorError, "Error Red", "Losing bets, errors"},
	{style.ColorWarning, "Warning Gold", "Coins, rewards, premium"},
	{style.ColorLive, "Live Red", "Live game indicators"},
}

var textLevels = []swatch{
	{"text-primary", "Text Primary", "Headlines, important content"},
	{"text-secondary", "Text Secondary", "Body text, descriptions"},
	{"text-muted", "Text Muted", "Captions, timestamps"},
	{"text-disabled", "Text Disabled", "Disabled states, placeholders"},
}

// 只用于排版、不在调色板中展示的颜色
var printColors = []string{style.ColorWhite, style.ColorMuted, style.ColorText}

var spacingUsage = map[string]string{
	"space-xxs":  "Icon padding",
	"space-xs":   "Inline spacing",
	"space-sm":   "Tight groupings",
	"space-md":   "Default spacing",
	"space-lg":   "Card padding",
	"space-xl":   "Large spacing",
	"space-xxl":  "Page margins",
	"space-xxxl": "Hero spacing",
	"space-huge": "Page headers",
}

var radiusUsage = map[string]string{
	"radius-xs":    "Small badges, inline tags",
	"radius-sm":    "Input fields, chips",
	"radius-md":    "Standard buttons, list items",
	"radius-lg":    "Cards, containers",
	"radius-xl":    "Modal dialogs",
	"radius-xxl":   "Large cards, feature containers",
	"radius-xxxl":  "Hero cards, bet slip",
	"radius-round": "Pills, circular buttons",
}

const customUsage = "Custom token"

func colorChapter(b *docgen.Builder, reg *style.Registry) (*docgen.SectionBuilder, error) {
	const title = "2. COLOR SYSTEM - BLUE AURA PALETTE"

	primary, err := paletteRows(reg, withCustomColors(reg, primaryColors), func(t style.Token) []string {
		r, g, bl := t.RGB()
		return []string{"#" + t.Hex, fmt.Sprintf("rgb(%d, %d, %d)", r, g, bl)}
	})
	if err != nil {
		return nil, err
	}
	semantic, err := paletteRows(reg, semanticColors, func(t style.Token) []string {
		return []string{"#" + t.Hex}
	})
	if err != nil {
		return nil, err
	}
	text, err := paletteRows(reg, textLevels, func(t style.Token) []string {
		return []string{"#" + t.Hex, fmt.Sprintf("%d%%", t.Opacity)}
	})
	if err != nil {
		return nil, err
	}

	return b.Section(title).
		Header(title).
		SubHeader("Primary Colors").
		Table([]string{"COLOR NAME", "HEX CODE", "RGB", "USAGE"}, primary).
		SubHeader("Semantic Colors").
		Table([]string{"COLOR NAME", "HEX CODE", "USAGE"}, semantic).
		SubHeader("Text Colors").
		Table([]string{"LEVEL", "COLOR", "OPACITY", "USAGE"}, text), nil
}

// withCustomColors 追加配置中新增、调色板未收录的颜色
func withCustomColors(reg *style.Registry, base []swatch) []swatch {
	known := slices.Clone(printColors)
	for _, group := range [][]swatch{primaryColors, semanticColors, textLevels} {
		for _, s := range group {
			known = append(known, s.name)
		}
	}
	out := slices.Clone(base)
	for _, name := range reg.Names(style.KindColor) {
		if !slices.Contains(known, name) {
			out = append(out, swatch{name: name, label: name, usage: customUsage})
		}
	}
	return out
}

func paletteRows(reg *style.Registry, swatches []swatch, values func(style.Token) []string) ([][]string, error) {
	rows := make([][]string, 0, len(swatches))
	for _, s := range swatches {
		tok, err := reg.Color(s.name)
		if err != nil {
			return nil, err
		}
		row := append([]string{s.label}, values(tok)...)
		rows = append(rows, append(row, s.usage))
	}
	return rows, nil
}

func spacingChapter(b *docgen.Builder, reg *style.Registry) (*docgen.SectionBuilder, error) {
	const title = "4. SPACING & LAYOUT GRID"

	var rows [][]string
	for _, name := range reg.Names(style.KindSpacing) {
		tok, err := reg.Lookup(name, style.KindSpacing)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{name, px(tok.Value), formatFloat(tok.Rem()) + "rem", usage(spacingUsage, name)})
	}

	return b.Section(title).
		Header(title).
		SubHeader("Spacing Scale").
		Table([]string{"TOKEN", "VALUE", "REM", "USE CASE"}, rows), nil
}

func radiusChapter(b *docgen.Builder, reg *style.Registry) (*docgen.SectionBuilder, error) {
	const title = "5. BORDER RADIUS - ROUND & CLEAN"

	var rows [][]string
	for _, name := range reg.Names(style.KindRadius) {
		tok, err := reg.Lookup(name, style.KindRadius)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{name, px(tok.Value), usage(radiusUsage, name)})
	}

	return b.Section(title).
		Header(title).
		Body("Every element uses rounded corners. No sharp edges anywhere.").
		SubHeader("Radius Scale").
		Table([]string{"TOKEN", "VALUE", "USE CASE"}, rows), nil
}

func usage(m map[string]string, name string) string {
	if u, ok := m[name]; ok {
		return u
	}
	return customUsage
}

func px(v float64) string {
	return formatFloat(v) + "px"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
