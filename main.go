package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/dragboard/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dragboard: %v\n", err)
		os.Exit(1)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	final, err := tea.NewProgram(newModel(cfg), opts...).Run()
	if m, ok := final.(model); ok {
		_ = m.jrnl.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "dragboard: %v\n", err)
		os.Exit(1)
	}
}
