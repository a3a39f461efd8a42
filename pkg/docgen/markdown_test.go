package docgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chapterSource = `Intro line before any heading.

# BRAND FOUNDATION

## Brand Essence

HotStreak is a **real-time** platform
for competitive play.

- **Speed:** Instant feedback on every move
- **Trust:** Transparent odds
- plain item

| Token | Value |
|-------|-------|
| space-xs | 4px |
| space-sm | 8px |

` + "```css\n:root {\n  --primary: #0066FF;\n}\n```" + `

---

# COLOR SYSTEM

Body of chapter two.
`

func TestMarkdownSections(t *testing.T) {
	b := newTestBuilder(t)

	sections, err := b.Markdown([]byte(chapterSource))
	require.NoError(t, err)
	require.Len(t, sections, 3)

	intro := sections[0]
	assert.Empty(t, intro.Title)
	require.Len(t, intro.Nodes, 1)
	assert.Equal(t, "Intro line before any heading.", intro.Nodes[0].(Body).Text)

	brand := sections[1]
	assert.Equal(t, "BRAND FOUNDATION", brand.Title)
	kinds := make([]NodeKind, len(brand.Nodes))
	for i, n := range brand.Nodes {
		kinds[i] = n.Kind()
	}
	assert.Equal(t, []NodeKind{
		KindHeader, KindSubHeader, KindBody,
		KindBullet, KindBullet, KindBody,
		KindTable, KindCode, KindPageBreak,
	}, kinds)

	assert.Equal(t, "HotStreak is a real-time platform for competitive play.", brand.Nodes[2].(Body).Text)

	speed := brand.Nodes[3].(Bullet)
	assert.Equal(t, "Speed", speed.Label)
	assert.Equal(t, "Instant feedback on every move", speed.Description)

	tbl := brand.Nodes[6].(Table)
	assert.Equal(t, []string{"Token", "Value"}, tbl.Headers)
	assert.Equal(t, [][]string{{"space-xs", "4px"}, {"space-sm", "8px"}}, tbl.Rows)

	code := brand.Nodes[7].(CodeBlock)
	assert.Equal(t, []string{":root {", "  --primary: #0066FF;", "}"}, code.Lines)

	assert.Equal(t, "COLOR SYSTEM", sections[2].Title)
	assert.Equal(t, "COLOR SYSTEM", sections[2].Nodes[0].(Header).Text)
}

func TestMarkdownAssemblesWithExplicitBreak(t *testing.T) {
	b := newTestBuilder(t)

	sections, err := b.Markdown([]byte(chapterSource))
	require.NoError(t, err)
	doc, err := Assemble(sections, DefaultGeometry())
	require.NoError(t, err)
	assert.Equal(t, 1, doc.InsertedBreaks())
}

func TestMarkdownEmptyBulletDescription(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.Markdown([]byte("# T\n\n- **Label:**\n"))
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestMarkdownEmpty(t *testing.T) {
	b := newTestBuilder(t)

	sections, err := b.Markdown(nil)
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestMarkdownRejectsRaggedTableRows(t *testing.T) {
	b := newTestBuilder(t)
	cases := []struct {
		name string
		src  string
		row  int
		got  int
	}{
		{"short row", "# T\n\n| A | B |\n|---|---|\n| 1 | 2 |\n| 3 |\n", 1, 1},
		{"long row", "# T\n\n| A | B |\n|---|---|\n| 1 | 2 | 3 |\n", 0, 3},
		{"no outer pipes", "# T\n\nA | B\n--|--\n1\n", 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.Markdown([]byte(tc.src))
			require.ErrorIs(t, err, ErrMalformedTable)

			var mt *MalformedTableError
			require.True(t, errors.As(err, &mt))
			assert.Equal(t, tc.row, mt.Row)
			assert.Equal(t, tc.got, mt.Got)
			assert.Equal(t, 2, mt.Want)
		})
	}
}

func TestMarkdownTableEscapedPipe(t *testing.T) {
	b := newTestBuilder(t)

	sections, err := b.Markdown([]byte("# T\n\n| Token | Value |\n|---|---|\n| a \\| b | 1 |\n"))
	require.NoError(t, err)
	require.Len(t, sections, 1)
	tbl := sections[0].Nodes[1].(Table)
	assert.Equal(t, [][]string{{"a | b", "1"}}, tbl.Rows)
}

func TestMarkdownInlineEscapes(t *testing.T) {
	b := newTestBuilder(t)

	sections, err := b.Markdown([]byte("# T\n\nUse \\*stars\\* and `a\\*b`\n"))
	require.NoError(t, err)
	assert.Equal(t, "Use *stars* and a\\*b", sections[0].Nodes[1].(Body).Text)
}

func TestRowCells(t *testing.T) {
	cases := map[string]int{
		"| a | b |":   2,
		"a | b":       2,
		"| a |":       1,
		"|":           0,
		"| a \\| b |": 1,
		"| a | | c |": 3,
	}
	for line, want := range cases {
		assert.Equal(t, want, rowCells([]byte(line)), line)
	}
}

func TestDelimiterColumns(t *testing.T) {
	assert.Equal(t, 2, delimiterColumns([]byte("|---|:---:|")))
	assert.Equal(t, 3, delimiterColumns([]byte("--|--|--")))
	assert.Zero(t, delimiterColumns([]byte("| a | b |")))
	assert.Zero(t, delimiterColumns([]byte("|:|")))
}
