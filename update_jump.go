package main

import tea "github.com/charmbracelet/bubbletea"

func (m model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.jump = nil
		m.setStatus("Ready.")
		return m, nil
	case "enter":
		if sel, ok := m.jump.selected(); ok {
			m.cursor = cursorPos{col: sel.col, row: sel.row}
			m.clampCursor()
			m.setStatus("Jumped to " + sel.title + ".")
		}
		m.jump = nil
		return m, nil
	case "up", "ctrl+p":
		m.jump.moveCursor(-1)
		return m, nil
	case "down", "ctrl+n":
		m.jump.moveCursor(1)
		return m, nil
	case "backspace":
		q := m.jump.query
		if q != "" {
			runes := []rune(q)
			m.jump.setQuery(string(runes[:len(runes)-1]))
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.jump.setQuery(m.jump.query + string(msg.Runes))
	}
	return m, nil
}
