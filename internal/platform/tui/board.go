package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/iota/internal/games/iota/core"
)

// cellWidth is the printed width of one card: color initial, glyph, face.
const cellWidth = 3

// CardGlyph returns the three-cell text of a card, e.g. "B#1", without styling.
func CardGlyph(c core.Card, theme Theme) string {
	if c.IsWildcard() {
		return strings.Repeat(theme.WildcardGlyph, cellWidth)
	}
	return fmt.Sprintf("%s%s%d", c.Color().String()[:1], theme.Glyphs[c.Shape()], c.FaceValue())
}

// RenderBoard draws the occupied area of the grid plus a one-cell margin,
// with row labels on the left and column labels on top. Cards at the
// highlighted positions use the theme's Highlight style.
func RenderBoard(g *core.Grid, theme Theme, highlight []core.Position) string {
	topLeft, bottomRight, ok := g.Bounds()
	if !ok {
		return theme.Empty.Render("(empty grid)")
	}
	topLeft = topLeft.Above().Left()
	bottomRight = bottomRight.Below().Right()

	marked := make(map[core.Position]bool, len(highlight))
	for _, p := range highlight {
		marked[p] = true
	}

	labelWidth := max(len(fmt.Sprint(topLeft.Row)), len(fmt.Sprint(bottomRight.Row)))

	var sb strings.Builder

	// Column labels
	sb.WriteString(strings.Repeat(" ", labelWidth+1))
	for col := topLeft.Col; col <= bottomRight.Col; col++ {
		sb.WriteString(theme.Axis.Render(fmt.Sprintf("%*d", cellWidth, col)))
		sb.WriteByte(' ')
	}

	for row := topLeft.Row; row <= bottomRight.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(theme.Axis.Render(fmt.Sprintf("%*d", labelWidth, row)))
		sb.WriteByte(' ')
		for col := topLeft.Col; col <= bottomRight.Col; col++ {
			p := core.P(row, col)
			sb.WriteString(renderCell(g, p, theme, marked[p]))
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func renderCell(g *core.Grid, p core.Position, theme Theme, marked bool) string {
	c, ok := g.CardAt(p)
	if !ok {
		return theme.Empty.Render(" " + theme.EmptyGlyph + " ")
	}
	style := theme.Wildcard
	if !c.IsWildcard() {
		style = theme.Cards[c.Color()]
	}
	if marked {
		style = style.Inherit(theme.Highlight)
	}
	return style.Render(CardGlyph(c, theme))
}
