package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/dragboard/board"
)

// Config holds application configuration.
type Config struct {
	Board   BoardConfig
	Journal JournalConfig
	UI      UIConfig
}

// BoardConfig points at the board definition file.
type BoardConfig struct {
	Path string
}

// JournalConfig holds gesture-journal settings.
type JournalConfig struct {
	Path    string
	Enabled bool
}

// UIConfig holds presentation settings.
type UIConfig struct {
	MouseEnabled bool `mapstructure:"mouse_enabled"`
}

// Load reads configuration from file and env. Env var overrides use
// prefix DRAGBOARD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("board.path", "")
	v.SetDefault("journal.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "dragboard", "journal.db"))
	v.SetDefault("journal.enabled", false)
	v.SetDefault("ui.mouse_enabled", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("DRAGBOARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "dragboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DRAGBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config
// directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("DRAGBOARD_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "dragboard", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("board.path", cfg.Board.Path)
	v.Set("journal.path", cfg.Journal.Path)
	v.Set("journal.enabled", cfg.Journal.Enabled)
	v.Set("ui.mouse_enabled", cfg.UI.MouseEnabled)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// columnDef and cardDef mirror the [[columns]] tables of a board file.
type columnDef struct {
	ID         string    `mapstructure:"id"`
	Title      string    `mapstructure:"title"`
	AcceptFrom []string  `mapstructure:"accept_from"`
	Cards      []cardDef `mapstructure:"cards"`
}

type cardDef struct {
	Title string `mapstructure:"title"`
	Note  string `mapstructure:"note"`
}

// LoadBoard decodes a board definition file. An empty path or a
// missing file yields the built-in starter board; a malformed file is
// an error.
func LoadBoard(path string) (*board.Board, error) {
	if path == "" {
		return board.Starter(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return board.Starter(), nil
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read board file: %w", err)
	}

	var defs struct {
		Columns []columnDef `mapstructure:"columns"`
	}
	if err := v.Unmarshal(&defs); err != nil {
		return nil, fmt.Errorf("unmarshal board file: %w", err)
	}
	if len(defs.Columns) == 0 {
		return nil, fmt.Errorf("board file %s defines no columns", path)
	}

	cols := make([]*board.Column, 0, len(defs.Columns))
	for _, def := range defs.Columns {
		title := def.Title
		if title == "" {
			title = def.ID
		}
		col := &board.Column{ID: def.ID, Title: title, AcceptFrom: def.AcceptFrom}
		for _, c := range def.Cards {
			card := board.NewCard(c.Title)
			card.Note = c.Note
			col.Cards = append(col.Cards, card)
		}
		cols = append(cols, col)
	}
	b, err := board.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("board file %s: %w", path, err)
	}
	return b, nil
}
