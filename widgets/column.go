package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardLine is one pre-styled row of a column.
type CardLine struct {
	Text   string
	Style  lipgloss.Style
	Marker string // two-cell gutter: cursor, grab marker, or blank
}

// Column draws one board column: a title bar, its cards, and an
// optional insertion indicator at DropIndex (-1 for none). Target
// marks the column as the session's current drop candidate.
type Column struct {
	Title      string
	Cards      []CardLine
	DropIndex  int
	Target     bool
	Selected   bool
	TitleStyle lipgloss.Style
	Border     lipgloss.Style
	DropStyle  lipgloss.Style
}

func (c Column) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	frameH := c.Border.GetHorizontalFrameSize()
	frameV := c.Border.GetVerticalFrameSize()
	inner := max(1, width-frameH)

	title := c.TitleStyle
	if c.Selected {
		title = title.Underline(true)
	}

	rows := make([]string, 0, len(c.Cards)*2+2)
	rows = append(rows, PadRight(title.Render(c.Title), inner))
	for i, card := range c.Cards {
		if c.DropIndex == i {
			rows = append(rows, PadRight(c.DropStyle.Render(strings.Repeat("─", inner)), inner))
		}
		line := card.Marker + card.Text
		rows = append(rows, PadRight(card.Style.Render(line), inner))
	}
	if c.DropIndex >= len(c.Cards) && c.DropIndex >= 0 {
		rows = append(rows, PadRight(c.DropStyle.Render(strings.Repeat("─", inner)), inner))
	}

	maxRows := max(1, height-frameV)
	if len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	for len(rows) < maxRows {
		rows = append(rows, strings.Repeat(" ", inner))
	}

	// Rows are already padded to inner, so the border style needs no
	// explicit width; setting one would re-wrap the padded lines.
	return c.Border.Render(strings.Join(rows, "\n"))
}
