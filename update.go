package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/dragboard/drag"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardReadyMsg:
		return m.handleBoardReady(msg)
	case journalDoneMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Journal write failed: %v", msg.err))
		}
		return m, nil
	case recentMsg:
		return m.handleRecent(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil
	case tea.MouseMsg:
		if m.ready && m.cfg.UI.MouseEnabled {
			return m.handleMouse(msg)
		}
		return m, nil
	case tea.KeyMsg:
		if !m.ready {
			if msg.String() == "q" || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.jump != nil {
			return m.updateJump(msg)
		}
		if m.grabbing() {
			return m.updateGrab(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Message handlers (called from Update)
// ---------------------------------------------------------------------------

func (m model) handleBoardReady(msg boardReadyMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	m.board = msg.board
	m.jrnl = msg.journal
	m.ready = true
	m.clampCursor()
	m.recalcLayout()
	m.setStatus("Ready. Space grabs a card, / finds one.")
	return m, nil
}

func (m model) handleRecent(msg recentMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(fmt.Sprintf("Journal read failed: %v", msg.err))
		return m, nil
	}
	if len(msg.entries) == 0 {
		m.setStatus("Journal is empty.")
		return m, nil
	}
	parts := make([]string, 0, len(msg.entries))
	for _, e := range msg.entries {
		if e.Kind == "reorder" {
			parts = append(parts, fmt.Sprintf("%s %d→%d", e.FromContainer, e.FromIndex, e.ToIndex))
		} else {
			parts = append(parts, fmt.Sprintf("%s→%s", e.FromContainer, e.ToContainer))
		}
	}
	m.setStatus("Recent: " + strings.Join(parts, ", "))
	return m, nil
}

// ---------------------------------------------------------------------------
// Decision application: the one place collections actually change
// ---------------------------------------------------------------------------

// finishGesture routes a terminal drag event through the reducer,
// applies any resulting decision to the board, and journals it.
func (m model) finishGesture(ev drag.Event) (tea.Model, tea.Cmd) {
	// Look the card up before the board mutates under it.
	title := ""
	if card, ok := m.board.CardAt(m.session.Source); ok {
		title = card.Title
	}

	var d drag.Decision
	m.session, d = drag.Update(m.session, ev, m.board)
	if d == nil {
		m.setStatus("Nothing moved.")
		m.clampCursor()
		m.recalcLayout()
		return m, nil
	}
	if sc, ok := d.(drag.SameContainer); ok && sc.From == sc.To {
		// Dropped back where it started.
		m.setStatus("Nothing moved.")
		m.clampCursor()
		m.recalcLayout()
		return m, nil
	}

	if !m.board.Apply(d) {
		// The collection changed under the gesture; the stale decision
		// degrades to a no-op.
		m.setStatus("Board changed mid-gesture; nothing moved.")
		m.clampCursor()
		m.recalcLayout()
		return m, nil
	}

	switch d := d.(type) {
	case drag.SameContainer:
		m.cursor = cursorPos{col: m.board.ColumnIndex(d.Container), row: d.To}
		m.setStatus(fmt.Sprintf("Moved %q to position %d.", title, d.To+1))
	case drag.CrossContainer:
		col := m.board.ColumnIndex(d.ToContainer)
		m.cursor = cursorPos{col: col, row: d.ToIndex}
		m.setStatus(fmt.Sprintf("Moved %q to %s.", title, m.board.Columns[col].Title))
	}
	m.clampCursor()
	m.recalcLayout()
	return m, recordCmd(m.jrnl, d, title)
}

// ---------------------------------------------------------------------------
// Status helpers
// ---------------------------------------------------------------------------

func (m *model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *model) setError(s string) {
	m.status = s
	m.statusErr = true
}
