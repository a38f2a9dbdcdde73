package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/altinukshini/typeahead-tui/internal/model"
	"github.com/altinukshini/typeahead-tui/internal/search"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	MaxResults     int       `toml:"max_results"`
	MatchMode      string    `toml:"match_mode"`
	Placeholder    string    `toml:"placeholder"`
	ShowNoResults  bool      `toml:"show_no_results"`
	Candidates     []string  `toml:"candidates,omitempty"`
	CandidatesFile string    `toml:"candidates_file,omitempty"`
	Log            LogConfig `toml:"log"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		MaxResults:    model.MaxResults,
		MatchMode:     string(search.ModeSubstring),
		Placeholder:   "Type to search",
		ShowNoResults: true,
		Log:           LogConfig{Level: "info"},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("locate config dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "typeahead", "config.toml"), nil
}

// Load reads path over the defaults. A missing file is only an error when
// required is set, i.e. when the user named the file explicitly.
func Load(path string, required bool) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.CandidatesFile != "" && !filepath.IsAbs(cfg.CandidatesFile) {
		cfg.CandidatesFile = filepath.Join(filepath.Dir(path), cfg.CandidatesFile)
	}
	return cfg, cfg.Validate()
}

// Encode renders the config as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

func (c Config) Validate() error {
	if c.MaxResults < 1 || c.MaxResults > model.MaxResults {
		return fmt.Errorf("%w: max_results must be between 1 and %d, got %d", ErrInvalidConfig, model.MaxResults, c.MaxResults)
	}
	if _, err := search.ParseMode(c.MatchMode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) Mode() search.Mode {
	mode, err := search.ParseMode(c.MatchMode)
	if err != nil {
		return search.ModeSubstring
	}
	return mode
}

func (c Config) LogLevel() (log.Level, error) {
	if strings.TrimSpace(c.Log.Level) == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.Log.Level)
}

// ResolveCandidates returns the candidate set: the candidates file if one is
// configured, then inline candidates, then the built-in list.
func (c Config) ResolveCandidates() ([]string, error) {
	if c.CandidatesFile != "" {
		return LoadCandidates(c.CandidatesFile)
	}
	if len(c.Candidates) > 0 {
		return dedupe(c.Candidates), nil
	}
	return search.Fruits, nil
}
