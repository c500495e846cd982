package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/dragboard/drag"
)

// ---------------------------------------------------------------------------
// Browse mode: cursor movement, grab, pickers
// ---------------------------------------------------------------------------

func (m model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.cursor.col--
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.cursor.col++
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.cursor.row--
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor.row++
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Grab):
		col := m.board.Columns[m.cursor.col]
		if len(col.Cards) == 0 {
			m.setStatus("Nothing to grab here.")
			return m, nil
		}
		m.session, _ = drag.Update(m.session, drag.Start{
			Modality:  drag.Touch,
			Container: col.ID,
			Index:     m.cursor.row,
		}, m.board)
		m.setStatus("Grabbed " + col.Cards[m.cursor.row].Title + ". Enter drops, esc cancels.")
		return m, nil

	case key.Matches(msg, m.keys.Find):
		m.jump = newJumpPicker(m.board)
		return m, nil

	case key.Matches(msg, m.keys.Recent):
		if m.jrnl == nil {
			m.setStatus("Journal is disabled; enable it in config to track moves.")
			return m, nil
		}
		return m, recentCmd(m.jrnl)
	}
	return m, nil
}
