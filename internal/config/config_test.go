package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DRAGBOARD_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Path != "" {
		t.Fatalf("default board path = %q", cfg.Board.Path)
	}
	if cfg.Journal.Enabled {
		t.Fatal("journal should default off")
	}
	if !cfg.UI.MouseEnabled {
		t.Fatal("mouse should default on")
	}
}

func TestLoadFromFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[journal]\nenabled = true\npath = \"/tmp/j.db\"\n\n[ui]\nmouse_enabled = false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DRAGBOARD_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Journal.Enabled || cfg.Journal.Path != "/tmp/j.db" {
		t.Fatalf("journal config not read: %+v", cfg.Journal)
	}
	if cfg.UI.MouseEnabled {
		t.Fatal("ui.mouse_enabled not read")
	}

	t.Setenv("DRAGBOARD_JOURNAL_PATH", "/tmp/other.db")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load with env: %v", err)
	}
	if cfg.Journal.Path != "/tmp/other.db" {
		t.Fatalf("env override lost: %q", cfg.Journal.Path)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("DRAGBOARD_CONFIG", path)

	want := Config{
		Board:   BoardConfig{Path: "/tmp/board.toml"},
		Journal: JournalConfig{Path: "/tmp/j.db", Enabled: true},
		UI:      UIConfig{MouseEnabled: true},
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadBoardMissingFileFallsBack(t *testing.T) {
	b, err := LoadBoard(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	if len(b.Columns) == 0 {
		t.Fatal("starter board is empty")
	}
}

func TestLoadBoardFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.toml")
	content := `
[[columns]]
id = "inbox"
title = "Inbox"

[[columns.cards]]
title = "first"
note = "a note"

[[columns]]
id = "archive"
title = "Archive"
accept_from = ["inbox"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write board: %v", err)
	}

	b, err := LoadBoard(path)
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	if len(b.Columns) != 2 {
		t.Fatalf("columns = %d", len(b.Columns))
	}
	inbox := b.Column("inbox")
	if inbox == nil || len(inbox.Cards) != 1 || inbox.Cards[0].Title != "first" {
		t.Fatalf("inbox not decoded: %+v", inbox)
	}
	if inbox.Cards[0].ID == "" {
		t.Fatal("cards loaded from file should get generated ids")
	}
	if !b.Accepts("archive", "inbox") {
		t.Fatal("accept_from not decoded")
	}
	if b.Accepts("inbox", "archive") {
		t.Fatal("acceptance should be directional")
	}
}

func TestLoadBoardRejectsDuplicateColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.toml")
	content := "[[columns]]\nid = \"a\"\n\n[[columns]]\nid = \"a\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write board: %v", err)
	}
	if _, err := LoadBoard(path); err == nil {
		t.Fatal("expected duplicate column error")
	}
}
