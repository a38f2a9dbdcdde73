package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/typeahead-tui/internal/search"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.MaxResults)
	assert.Equal(t, search.ModeSubstring, cfg.Mode())
	assert.True(t, cfg.ShowNoResults)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = Load(path, true)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
max_results = 5
match_mode = "prefix"
show_no_results = false
candidates = ["alpha", "beta"]
candidates_file = "words.txt"

[log]
level = "debug"
file = "/tmp/typeahead.log"
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MaxResults)
	assert.Equal(t, search.ModePrefix, cfg.Mode())
	assert.False(t, cfg.ShowNoResults)
	assert.Equal(t, "Type to search", cfg.Placeholder, "unset keys keep defaults")
	assert.Equal(t, []string{"alpha", "beta"}, cfg.Candidates)
	assert.Equal(t, filepath.Join(dir, "words.txt"), cfg.CandidatesFile)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "too many results", content: "max_results = 11"},
		{name: "zero results", content: "max_results = 0"},
		{name: "unknown mode", content: `match_mode = "regex"`},
		{name: "unknown level", content: "[log]\nlevel = \"loud\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.toml", tt.content)
			_, err := Load(path, true)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "max_results = [")
	_, err := Load(path, true)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestEncodeRoundTrips(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MatchMode = "fuzzy"
	cfg.Candidates = []string{"x", "y"}

	data, err := cfg.Encode()
	require.NoError(t, err)

	path := writeFile(t, t.TempDir(), "config.toml", string(data))
	got, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestResolveCandidates(t *testing.T) {
	cfg := DefaultConfig()
	got, err := cfg.ResolveCandidates()
	require.NoError(t, err)
	assert.Equal(t, search.Fruits, got)

	cfg.Candidates = []string{"b", "a", "b", " "}
	got, err = cfg.ResolveCandidates()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, got)

	cfg.CandidatesFile = writeFile(t, t.TempDir(), "words.txt", "one\ntwo\n")
	got, err = cfg.ResolveCandidates()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, got, "file wins over inline candidates")
}
