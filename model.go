package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/dragboard/board"
	"github.com/jask/dragboard/drag"
	"github.com/jask/dragboard/internal/config"
	"github.com/jask/dragboard/internal/journal"
)

const appName = "Dragboard"

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type boardReadyMsg struct {
	board   *board.Board
	journal *journal.Journal
	err     error
}

type journalDoneMsg struct {
	err error
}

type recentMsg struct {
	entries []journal.Entry
	err     error
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// cursorPos addresses a card (or, while grabbing, an insertion slot)
// by column and row.
type cursorPos struct {
	col int
	row int
}

type model struct {
	cfg   config.Config
	board *board.Board
	jrnl  *journal.Journal

	// session is the drag core's state; the model owns the collections
	// and applies whatever decisions the reducer returns.
	session drag.Session

	cursor cursorPos
	jump   *jumpPicker

	layout boardLayout

	keys     keyMap
	grabKeys grabKeyMap

	status    string
	statusErr bool
	ready     bool
	width     int
	height    int
}

func newModel(cfg config.Config) model {
	return model{
		cfg:      cfg,
		keys:     newKeyMap(),
		grabKeys: grabKeyMap{keyMap: newKeyMap()},
		status:   "Loading board...",
	}
}

// grabbing reports whether the keyboard grab gesture is in flight.
func (m model) grabbing() bool {
	return m.session.ActiveWith(drag.Touch)
}

func (m model) Init() tea.Cmd {
	return loadCmd(m.cfg)
}

// ---------------------------------------------------------------------------
// Cursor bookkeeping
// ---------------------------------------------------------------------------

func (m *model) clampCursor() {
	if m.board == nil || len(m.board.Columns) == 0 {
		m.cursor = cursorPos{}
		return
	}
	if m.cursor.col < 0 {
		m.cursor.col = 0
	}
	if m.cursor.col >= len(m.board.Columns) {
		m.cursor.col = len(m.board.Columns) - 1
	}
	maxRow := m.cursorMaxRow(m.cursor.col)
	if m.cursor.row > maxRow {
		m.cursor.row = maxRow
	}
	if m.cursor.row < 0 {
		m.cursor.row = 0
	}
}

// cursorMaxRow is the highest row the cursor may occupy in a column.
// While grabbing, non-source columns allow one extra slot: insertion
// at the end.
func (m model) cursorMaxRow(col int) int {
	cards := len(m.board.Columns[col].Cards)
	if m.grabbing() && m.board.Columns[col].ID != m.session.Source.Container {
		return cards
	}
	return max(0, cards-1)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
