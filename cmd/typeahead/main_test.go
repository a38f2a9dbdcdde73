package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/typeahead-tui/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMatchUsesBuiltInFruits(t *testing.T) {
	out, err := execute(t, "match", "ap")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "Apple")
	assert.Contains(t, lines, "Apricot")
	assert.LessOrEqual(t, len(lines), 10)
}

func TestMatchWithCandidatesFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nalps\nbeta\nalpine\n"), 0o644))

	out, err := execute(t, "match", "--candidates", path, "--mode", "prefix", "--max-results", "2", "alp")
	require.NoError(t, err)
	assert.Equal(t, "alpha\nalps\n", out)
}

func TestMatchRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "match", "--mode", "regex", "a")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "match", "--max-results", "11", "a")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestConfigPrintsEffectiveSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_results = 4\nmatch_mode = \"fuzzy\"\n"), 0o644))

	out, err := execute(t, "config", "--config", path, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "max_results = 4")
	assert.Contains(t, out, "fuzzy")
	assert.Contains(t, out, "debug")
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "typeahead "+version+"\n", out)
}

func TestOpenLoggerDiscardsWithoutFile(t *testing.T) {
	lg, closeLog, err := openLogger(config.DefaultConfig())
	require.NoError(t, err)
	defer closeLog()
	assert.NotNil(t, lg)

	cfg := config.DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "logs", "typeahead.log")
	lg, closeLog2, err := openLogger(cfg)
	require.NoError(t, err)
	lg.Info("hello")
	closeLog2()

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestModeFlagListsEveryMode(t *testing.T) {
	usage := newRootCmd().PersistentFlags().Lookup("mode").Usage
	assert.Equal(t, "match mode: substring, prefix, fuzzy", usage)
}
