package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

type LogConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	ToConsole bool   `yaml:"to_console"`
	ToFile    bool   `yaml:"to_file"`
	File      string `yaml:"file"`
	Caller    bool   `yaml:"caller"`
}

type AppConfig struct {
	WhiteName string `yaml:"white_name"`
	BlackName string `yaml:"black_name"`

	// Rules is "partial" or "standard".
	Rules string `yaml:"rules"`

	Color       bool   `yaml:"color"`
	PieceSet    string `yaml:"piece_set"`
	MessagesDir string `yaml:"messages_dir"`

	Log LogConfig `yaml:"log"`
}

func defaults() *AppConfig {
	return &AppConfig{
		WhiteName: "Player 1",
		BlackName: "Player 2",
		Rules:     "partial",
		Color:     true,
		PieceSet:  "unicode",
		Log: LogConfig{
			Level:     "info",
			Format:    "legacy",
			ToConsole: false,
			ToFile:    true,
			File:      filepath.Join("logs", "clickchess.log"),
		},
	}
}

// Load reads the optional YAML file named by CLICKCHESS_CONFIG and then
// applies environment overrides.
func Load() (*AppConfig, error) {
	return LoadFile(strings.TrimSpace(os.Getenv("CLICKCHESS_CONFIG")))
}

// LoadFile is Load with an explicit config file path. An empty path skips
// the file.
func LoadFile(path string) (*AppConfig, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("WHITE_NAME")); v != "" {
		cfg.WhiteName = v
	}
	if v := strings.TrimSpace(os.Getenv("BLACK_NAME")); v != "" {
		cfg.BlackName = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESS_RULES")); v != "" {
		cfg.Rules = v
	}
	if v := strings.TrimSpace(os.Getenv("CLICKCHESS_COLOR")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Color = b
		}
	}
	// https://no-color.org: any non-empty value disables colour.
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}
	if v := strings.TrimSpace(os.Getenv("PIECE_SET")); v != "" {
		cfg.PieceSet = v
	}
	if v := strings.TrimSpace(os.Getenv("MESSAGES_DIR")); v != "" {
		cfg.MessagesDir = v
	}

	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FORMAT")); v != "" {
		cfg.Log.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FILE")); v != "" {
		cfg.Log.File = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_TO_CONSOLE")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.ToConsole = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("LOG_TO_FILE")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.ToFile = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("LOG_CALLER")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Caller = b
		}
	}

	cfg.WhiteName = strings.TrimSpace(cfg.WhiteName)
	cfg.BlackName = strings.TrimSpace(cfg.BlackName)
	cfg.Rules = strings.ToLower(strings.TrimSpace(cfg.Rules))
	cfg.PieceSet = strings.ToLower(strings.TrimSpace(cfg.PieceSet))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if cfg.WhiteName == "" {
		return nil, errors.New("WHITE_NAME is required")
	}
	if cfg.BlackName == "" {
		return nil, errors.New("BLACK_NAME is required")
	}
	if cfg.WhiteName == cfg.BlackName {
		return nil, errors.New("WHITE_NAME and BLACK_NAME must differ")
	}
	switch cfg.Rules {
	case "partial", "standard":
	default:
		return nil, fmt.Errorf("CHESS_RULES must be partial or standard, got %q", cfg.Rules)
	}
	switch cfg.PieceSet {
	case "unicode", "letters":
	default:
		return nil, fmt.Errorf("PIECE_SET must be unicode or letters, got %q", cfg.PieceSet)
	}
	switch cfg.Log.Format {
	case "legacy", "json", "console":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be legacy, json or console, got %q", cfg.Log.Format)
	}
	if cfg.Log.ToFile && strings.TrimSpace(cfg.Log.File) == "" {
		return nil, errors.New("LOG_FILE is required when LOG_TO_FILE is set")
	}

	return cfg, nil
}
