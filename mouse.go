package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/dragboard/drag"
	"github.com/jask/dragboard/widgets"
)

// ---------------------------------------------------------------------------
// Pointer adapter: terminal mouse -> semantic drag events
// ---------------------------------------------------------------------------
//
// The adapter only translates coordinates into (column, index) pairs
// and forwards semantic events; every accept/reject call belongs to
// the reducer. Geometry is recomputed in Update whenever the board or
// the window changes, so hit-tests always match the last layout.

const (
	boardTop  = 2 // header + blank line
	columnGap = 2
	// rows of column chrome above the first card: border + title
	cardRowOffset = 2
)

type boardLayout struct {
	top    int
	gap    int
	widths []int
	counts []int
}

func (m *model) recalcLayout() {
	if m.board == nil || m.width <= 0 {
		m.layout = boardLayout{}
		return
	}
	n := len(m.board.Columns)
	usable := m.width - columnGap*(n-1)
	if usable < n {
		usable = n
	}
	counts := make([]int, n)
	for i, c := range m.board.Columns {
		counts[i] = len(c.Cards)
	}
	m.layout = boardLayout{
		top:    boardTop,
		gap:    columnGap,
		widths: widgets.SplitWidths(usable, n),
		counts: counts,
	}
}

// columnAt maps an x cell to a column index, or -1.
func (l boardLayout) columnAt(x int) int {
	start := 0
	for i, w := range l.widths {
		if x >= start && x < start+w {
			return i
		}
		start += w + l.gap
	}
	return -1
}

// slotAt maps a cell to an insertion slot: rows past the last card
// clamp to the end slot. ok is false outside the board.
func (l boardLayout) slotAt(x, y int) (col, row int, ok bool) {
	col = l.columnAt(x)
	if col < 0 || y < l.top+cardRowOffset {
		return 0, 0, false
	}
	row = y - l.top - cardRowOffset
	if row > l.counts[col] {
		row = l.counts[col]
	}
	return col, row, true
}

// cardAt is slotAt restricted to existing cards.
func (l boardLayout) cardAt(x, y int) (col, row int, ok bool) {
	col, row, ok = l.slotAt(x, y)
	if !ok || row >= l.counts[col] {
		return 0, 0, false
	}
	return col, row, true
}

// clampSlot pulls an end-of-column slot back onto the last card when
// the column is the gesture's own source: a same-container move has
// len-1 as its highest meaningful destination.
func (m model) clampSlot(col, row int) int {
	c := m.board.Columns[col]
	if c.ID == m.session.Source.Container && row >= len(c.Cards) {
		return max(0, len(c.Cards)-1)
	}
	return row
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		col, row, ok := m.layout.cardAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		c := m.board.Columns[col]
		m.session, _ = drag.Update(m.session, drag.Start{
			Modality:  drag.Pointer,
			Container: c.ID,
			Index:     row,
		}, m.board)
		m.cursor = cursorPos{col: col, row: row}
		m.setStatus("Dragging " + c.Cards[row].Title + "...")
		return m, nil

	case msg.Action == tea.MouseActionMotion && m.session.ActiveWith(drag.Pointer):
		col, row, ok := m.layout.slotAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.session, _ = drag.Update(m.session, drag.Enter{
			Modality:  drag.Pointer,
			Container: m.board.Columns[col].ID,
			Index:     m.clampSlot(col, row),
		}, m.board)
		return m, nil

	case msg.Action == tea.MouseActionRelease && m.session.ActiveWith(drag.Pointer):
		col, row, ok := m.layout.slotAt(msg.X, msg.Y)
		if !ok {
			// Released outside the board: abandon the gesture.
			m.session, _ = drag.Update(m.session, drag.Cancel{Modality: drag.Pointer}, m.board)
			m.setStatus("Cancelled.")
			return m, nil
		}
		return m.finishGesture(drag.Drop{
			Modality:  drag.Pointer,
			Container: m.board.Columns[col].ID,
			Index:     m.clampSlot(col, row),
		})
	}
	return m, nil
}
