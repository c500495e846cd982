package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/dragboard/drag"
)

// ---------------------------------------------------------------------------
// Grab mode: the keyboard (touch-style) drag adapter
// ---------------------------------------------------------------------------
//
// While a card is grabbed the cursor is an insertion slot. Every
// movement sends Move (which clears the recorded target) followed by
// Enter at the new slot, so the reducer only ever resolves against the
// slot currently under the cursor. Enter confirms (End), esc abandons
// (Cancel).

func (m model) updateGrab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		return m.moveGrabCursor(-1, 0), nil

	case key.Matches(msg, m.keys.Right):
		return m.moveGrabCursor(1, 0), nil

	case key.Matches(msg, m.keys.Up):
		return m.moveGrabCursor(0, -1), nil

	case key.Matches(msg, m.keys.Down):
		return m.moveGrabCursor(0, 1), nil

	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Grab):
		return m.finishGesture(drag.End{Modality: drag.Touch})

	case key.Matches(msg, m.keys.Cancel):
		m.session, _ = drag.Update(m.session, drag.Cancel{Modality: drag.Touch}, m.board)
		m.setStatus("Cancelled.")
		m.clampCursor()
		m.recalcLayout()
		return m, nil
	}
	return m, nil
}

func (m model) moveGrabCursor(dcol, drow int) model {
	m.cursor.col += dcol
	m.cursor.row += drow
	m.clampCursor()

	col := m.board.Columns[m.cursor.col]
	m.session, _ = drag.Update(m.session, drag.Move{Modality: drag.Touch}, m.board)
	m.session, _ = drag.Update(m.session, drag.Enter{
		Modality:  drag.Touch,
		Container: col.ID,
		Index:     m.cursor.row,
	}, m.board)

	if m.session.Target == nil {
		m.setStatus(col.Title + " doesn't accept cards from here.")
	} else {
		m.setStatus("Drop into " + col.Title + ". Enter confirms.")
	}
	return m
}
