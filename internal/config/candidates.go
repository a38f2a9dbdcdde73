package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/altinukshini/typeahead-tui/internal/search"
)

type candidateFile struct {
	Candidates []string `toml:"candidates" yaml:"candidates"`
}

// LoadCandidates reads a candidate list. The format follows the extension:
// .toml and .yaml/.yml hold a "candidates" list (YAML may also be a bare
// sequence), anything else is one candidate per line with blank lines and
// "#" comments skipped. Control whitespace becomes a space and duplicates keep
// their first position.
func LoadCandidates(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}

	var list []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var f candidateFile
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse candidates %s: %w", path, err)
		}
		list = f.Candidates
	case ".yaml", ".yml":
		list, err = parseYAMLCandidates(data)
		if err != nil {
			return nil, fmt.Errorf("parse candidates %s: %w", path, err)
		}
	default:
		list, err = parseLines(data)
		if err != nil {
			return nil, fmt.Errorf("parse candidates %s: %w", path, err)
		}
	}
	return dedupe(list), nil
}

func parseYAMLCandidates(data []byte) ([]string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	var list []string
	if node.Content[0].Kind == yaml.SequenceNode {
		if err := node.Content[0].Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var f candidateFile
	if err := node.Content[0].Decode(&f); err != nil {
		return nil, err
	}
	return f.Candidates, nil
}

func parseLines(data []byte) ([]string, error) {
	var list []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	return list, sc.Err()
}

func dedupe(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		s = strings.TrimSpace(search.Normalize(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
