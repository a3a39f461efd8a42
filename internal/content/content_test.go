package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yockii/styleguide/pkg/docgen"
	"github.com/yockii/styleguide/pkg/style"
)

func buildSections(t *testing.T, reg *style.Registry) []docgen.Section {
	t.Helper()
	sections, err := Sections(docgen.NewBuilder(reg), reg)
	require.NoError(t, err)
	return sections
}

func firstTable(t *testing.T, sec docgen.Section) docgen.Table {
	t.Helper()
	for _, n := range sec.Nodes {
		if tbl, ok := n.(docgen.Table); ok {
			return tbl
		}
	}
	t.Fatalf("section %q has no table", sec.Title)
	return docgen.Table{}
}

func TestSectionsLayout(t *testing.T) {
	sections := buildSections(t, style.MustDefault())
	require.Len(t, sections, 23)

	assert.Equal(t, "Cover", sections[0].Title)
	assert.Equal(t, "Table of Contents", sections[1].Title)
	assert.Equal(t, "Closing", sections[22].Title)

	chapters := sections[2:22]
	assert.Equal(t, "1. DESIGN PHILOSOPHY", chapters[0].Title)
	assert.Equal(t, "2. COLOR SYSTEM - BLUE AURA PALETTE", chapters[1].Title)
	assert.Equal(t, "20. CSS VARIABLES (COPY-PASTE)", chapters[19].Title)
	for _, ch := range chapters {
		require.NotEmpty(t, ch.Nodes, ch.Title)
		h, ok := ch.Nodes[0].(docgen.Header)
		require.True(t, ok, ch.Title)
		assert.Equal(t, ch.Title, h.Text)
	}

	toc := sections[1]
	require.Len(t, toc.Nodes, 21)
	assert.Equal(t, "1.  Design Philosophy .......................... 3", toc.Nodes[1].(docgen.Body).Text)
	assert.Equal(t, "2.  Color System - Blue Aura Palette ........... 4", toc.Nodes[2].(docgen.Body).Text)
	assert.Equal(t, "20. CSS Variables (Copy-Paste) ................. 48", toc.Nodes[20].(docgen.Body).Text)
}

func TestColorChapterUsesRegistry(t *testing.T) {
	sections := buildSections(t, style.MustDefault())
	palette := firstTable(t, sections[3])

	assert.Equal(t, []string{"COLOR NAME", "HEX CODE", "RGB", "USAGE"}, palette.Headers)
	require.Len(t, palette.Rows, 7)
	assert.Equal(t, []string{"Primary Blue", "#0066FF", "rgb(0, 102, 255)", "Main CTAs, links, active states"}, palette.Rows[0])
	assert.Equal(t, []string{"Ice Blue", "#E0F4FF", "rgb(224, 244, 255)", "Light accents, table alternates"}, palette.Rows[6])
}

func TestTokenChaptersFollowOverrides(t *testing.T) {
	reg, err := style.Load(style.Overrides{
		Colors:  map[string]string{style.ColorPrimary: "112233", "brand-pink": "FF69B4"},
		Spacing: map[string]float64{"space-giant": 64},
		Radius:  map[string]float64{"radius-lg": 18},
	})
	require.NoError(t, err)
	sections := buildSections(t, reg)

	palette := firstTable(t, sections[3])
	assert.Equal(t, "#112233", palette.Rows[0][1])
	assert.Equal(t, "rgb(17, 34, 51)", palette.Rows[0][2])
	last := palette.Rows[len(palette.Rows)-1]
	assert.Equal(t, []string{"brand-pink", "#FF69B4", "rgb(255, 105, 180)", customUsage}, last)

	spacing := firstTable(t, sections[5])
	require.Len(t, spacing.Rows, 10)
	assert.Equal(t, []string{"space-xxs", "2px", "0.125rem", "Icon padding"}, spacing.Rows[0])
	assert.Equal(t, []string{"space-giant", "64px", "4rem", customUsage}, spacing.Rows[9])

	radius := firstTable(t, sections[6])
	assert.Contains(t, radius.Rows, []string{"radius-lg", "18px", "Cards, containers"})
	assert.Contains(t, radius.Rows, []string{"radius-round", "9999px", "Pills, circular buttons"})
}

func TestGeneratedChaptersKeepStaticTail(t *testing.T) {
	sections := buildSections(t, style.MustDefault())

	var subs []string
	for _, n := range sections[5].Nodes {
		if sh, ok := n.(docgen.SubHeader); ok {
			subs = append(subs, sh.Text)
		}
	}
	assert.Equal(t, []string{"Spacing Scale", "Layout Grid"}, subs)
}

func TestComponentChapterHasExplicitBreaks(t *testing.T) {
	sections := buildSections(t, style.MustDefault())

	breaks := 0
	for _, n := range sections[9].Nodes {
		if n.Kind() == docgen.KindPageBreak {
			breaks++
		}
	}
	assert.Equal(t, "8. COMPONENT LIBRARY", sections[9].Title)
	assert.Equal(t, 2, breaks)
}

func TestGuideRendersAndReadsBack(t *testing.T) {
	sections := buildSections(t, style.MustDefault())

	doc, err := docgen.Assemble(sections, docgen.DefaultGeometry())
	require.NoError(t, err)
	assert.Equal(t, len(sections)-1, doc.InsertedBreaks())

	data, err := docgen.NewDocxBuilder(docgen.WithTitle("HotStreak")).Serialize(context.Background(), doc)
	require.NoError(t, err)

	outline, err := docgen.Inspect(data)
	require.NoError(t, err)
	require.Len(t, outline.Headings, 20)
	assert.Equal(t, "1. DESIGN PHILOSOPHY", outline.Headings[0])
	assert.Equal(t, doc.InsertedBreaks()+2, outline.PageBreaks)
	assert.Positive(t, outline.Tables)
}
