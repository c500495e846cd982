package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/dragboard/drag"
	"github.com/jask/dragboard/widgets"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m model) View() string {
	if !m.ready {
		return statusStyle.Render(m.status)
	}

	header := headerStyle.Render(appName)
	body := m.boardView()
	status := m.renderStatus()

	var tail string
	if m.jump != nil {
		tail = m.jumpView()
	} else {
		tail = m.renderFooter()
	}

	return header + "\n\n" + body + "\n" + status + "\n" + tail
}

func (m model) boardView() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height - boardTop - 2
	if height < 6 {
		height = 6
	}

	cols := make([]widgets.Widget, 0, len(m.board.Columns))
	for i, c := range m.board.Columns {
		cols = append(cols, m.columnWidget(i, c.ID))
	}
	return widgets.HStack{Widgets: cols, Gap: columnGap}.Render(width, height)
}

func (m model) columnWidget(idx int, colID string) widgets.Column {
	c := m.board.Columns[idx]

	isTarget := m.session.State == drag.Active &&
		m.session.Target != nil &&
		m.session.Target.Container == colID

	w := widgets.Column{
		Title:      c.Title,
		DropIndex:  -1,
		Target:     isTarget,
		Selected:   idx == m.cursor.col,
		TitleStyle: columnTitleStyle,
		Border:     columnBorder,
		DropStyle:  dropLineStyle,
	}
	if isTarget {
		w.Border = columnTargetBorder
	}

	// The insertion indicator inserts a row, which would shift the
	// geometry mouse hit-tests rely on, so it renders only for the
	// keyboard gesture. Pointer drags highlight the target card
	// instead.
	if m.grabbing() && isTarget {
		w.DropIndex = m.session.Target.Index
	}

	for j, card := range c.Cards {
		line := widgets.CardLine{Text: card.Title, Marker: "  ", Style: cardStyle}
		switch {
		case m.grabbing() && m.session.Source.Container == colID && m.session.Source.Index == j:
			line.Marker = "◆ "
			line.Style = cardGrabStyle
		case m.session.ActiveWith(drag.Pointer) && isTarget && m.session.Target.Index == j:
			line.Style = cardTargetStyle
		case !m.grabbing() && idx == m.cursor.col && j == m.cursor.row:
			line.Marker = "> "
			line.Style = cardCursorStyle
		}
		w.Cards = append(w.Cards, line)
	}
	return w
}

func (m model) renderStatus() string {
	if m.statusErr {
		return errorStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}

func (m model) renderFooter() string {
	var bindings []key.Binding
	if m.grabbing() {
		bindings = m.grabKeys.ShortHelp()
	} else {
		bindings = m.keys.ShortHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return footerStyle.Render(strings.Join(parts, " · "))
}

func (m model) jumpView() string {
	lines := []string{jumpTitleStyle.Render("Find: " + m.jump.query + "▌")}
	for i, match := range m.jump.matches {
		if i >= jumpMaxVisible {
			break
		}
		prefix := "  "
		style := jumpMatchStyle
		if i == m.jump.cursor {
			prefix = "> "
			style = jumpCursorLine
		}
		where := m.board.Columns[match.col].Title
		lines = append(lines, style.Render(prefix+match.title)+footerStyle.Render("  ("+where+")"))
	}
	if len(m.jump.matches) == 0 {
		lines = append(lines, footerStyle.Render("  no cards"))
	}
	return strings.Join(lines, "\n")
}
