package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	UI       UIConfig      `toml:"ui"`
	Picker   PickerConfig  `toml:"picker"`
	Locale   LocaleConfig  `toml:"locale"`
	Log      LogConfig     `toml:"log"`
	History  HistoryConfig `toml:"history"`
	Subjects SubjectConfig `toml:"subjects"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type UIConfig struct {
	Fullscreen bool   `toml:"fullscreen"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	FontPath   string `toml:"font_path"` // TTF/OTF; required for CJK labels
}

type PickerConfig struct {
	ItemHeight   float64 `toml:"item_height"`
	VisibleItems int     `toml:"visible_items"`
	Infinite     bool    `toml:"infinite"`
}

type LocaleConfig struct {
	Language string `toml:"language"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

type HistoryConfig struct {
	Path  string `toml:"path"` // empty means <config dir>/history.db
	Limit int    `toml:"limit"`
}

// SubjectConfig overrides the localized subject lists when non-empty.
type SubjectConfig struct {
	A []string `toml:"a"`
	B []string `toml:"b"`
}

type KeybindConfig struct {
	Collide    string `toml:"collide"`
	Fullscreen string `toml:"fullscreen"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     800,
		},
		Picker: PickerConfig{
			ItemHeight:   60,
			VisibleItems: 5,
			Infinite:     false,
		},
		Locale: LocaleConfig{
			Language: "en",
		},
		Log: LogConfig{
			Level: "info",
		},
		History: HistoryConfig{
			Limit: 10,
		},
		Keybinds: KeybindConfig{
			Collide:    "Space",
			Fullscreen: "F",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "linkmind"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HistoryPath resolves the history database location.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces nonsensical picker values with the defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Picker.ItemHeight <= 0 {
		c.Picker.ItemHeight = def.Picker.ItemHeight
	}
	if c.Picker.VisibleItems <= 0 {
		c.Picker.VisibleItems = def.Picker.VisibleItems
	}
	if c.History.Limit <= 0 {
		c.History.Limit = def.History.Limit
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		c.UI.Width, c.UI.Height = def.UI.Width, def.UI.Height
	}
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
