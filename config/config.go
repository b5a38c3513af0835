package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is read when no -config flag is given. A missing file is not
// an error; defaults apply.
const DefaultPath = "pong.toml"

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Match   MatchConfig   `toml:"match"`
	Logging LoggingConfig `toml:"logging"`
	Dev     DevConfig     `toml:"dev"`
}

type WindowConfig struct {
	Title      string  `toml:"title"`
	Scale      float64 `toml:"scale"`
	Fullscreen bool    `toml:"fullscreen"`
	Sound      bool    `toml:"sound"`
}

type MatchConfig struct {
	Prefab string `toml:"prefab"`
	Script string `toml:"script"` // overrides the prefab's opponent script
	Seed   int64  `toml:"seed"`   // 0 = seed from the clock
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = stderr
}

type DevConfig struct {
	HotReload bool `toml:"hot_reload"`
}

func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Window.Scale <= 0 {
		return nil, fmt.Errorf("config %s: window scale must be positive, got %g", path, cfg.Window.Scale)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title: "pong",
			Scale: 1,
			Sound: true,
		},
		Match: MatchConfig{
			Prefab: "match.yaml",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
