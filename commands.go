package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/dragboard/drag"
	"github.com/jask/dragboard/internal/config"
	"github.com/jask/dragboard/internal/journal"
)

// ---------------------------------------------------------------------------
// Async commands
// ---------------------------------------------------------------------------

func loadCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		b, err := config.LoadBoard(cfg.Board.Path)
		if err != nil {
			return boardReadyMsg{err: fmt.Errorf("load board: %w", err)}
		}
		var j *journal.Journal
		if cfg.Journal.Enabled {
			j, err = journal.Open(cfg.Journal.Path)
			if err != nil {
				return boardReadyMsg{err: fmt.Errorf("open journal: %w", err)}
			}
		}
		return boardReadyMsg{board: b, journal: j}
	}
}

func recordCmd(j *journal.Journal, d drag.Decision, cardTitle string) tea.Cmd {
	if j == nil || d == nil {
		return nil
	}
	return func() tea.Msg {
		return journalDoneMsg{err: j.Record(d, cardTitle)}
	}
}

func recentCmd(j *journal.Journal) tea.Cmd {
	return func() tea.Msg {
		entries, err := j.Recent(5)
		return recentMsg{entries: entries, err: err}
	}
}
