package config

import (
	"bufio"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCandidates(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    []string
	}{
		{
			name:    "plain text",
			file:    "fruits.txt",
			content: "# fruits\napple\n\n  apricot  \nbanana\napple\n",
			want:    []string{"apple", "apricot", "banana"},
		},
		{
			name:    "control whitespace inside entries",
			file:    "pairs.txt",
			content: "a\tb\nc\x00d\n",
			want:    []string{"a b", "cd"},
		},
		{
			name:    "no extension",
			file:    "words",
			content: "alpha\nbeta",
			want:    []string{"alpha", "beta"},
		},
		{
			name:    "toml",
			file:    "fruits.toml",
			content: `candidates = ["apple", "banana", "apple"]`,
			want:    []string{"apple", "banana"},
		},
		{
			name:    "yaml sequence",
			file:    "fruits.yaml",
			content: "- apple\n- banana\n",
			want:    []string{"apple", "banana"},
		},
		{
			name:    "yaml mapping",
			file:    "fruits.yml",
			content: "candidates:\n  - cherry\n  - date\n",
			want:    []string{"cherry", "date"},
		},
		{
			name:    "empty yaml",
			file:    "empty.yaml",
			content: "",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			got, err := LoadCandidates(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadCandidatesErrors(t *testing.T) {
	_, err := LoadCandidates(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	path := writeFile(t, t.TempDir(), "bad.toml", "candidates = [")
	_, err = LoadCandidates(path)
	assert.Error(t, err)

	path = writeFile(t, t.TempDir(), "bad.yaml", "candidates: [a, b")
	_, err = LoadCandidates(path)
	assert.Error(t, err)
}

func TestLoadCandidatesRejectsOversizeLine(t *testing.T) {
	content := "apple\n" + strings.Repeat("x", bufio.MaxScanTokenSize+1) + "\nbanana\n"
	path := writeFile(t, t.TempDir(), "long.txt", content)

	got, err := LoadCandidates(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
	assert.Contains(t, err.Error(), "parse candidates")
	assert.Nil(t, got)
}
