package search

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
	"github.com/tchap/go-patricia/v2/patricia"
	"golang.org/x/text/cases"

	"github.com/altinukshini/typeahead-tui/internal/model"
)

type Mode string

const (
	ModeSubstring Mode = "substring"
	ModePrefix    Mode = "prefix"
	ModeFuzzy     Mode = "fuzzy"
)

var ErrUnknownMode = errors.New("unknown match mode")

// Modes lists every supported match mode, default first.
func Modes() []Mode {
	return []Mode{ModeSubstring, ModePrefix, ModeFuzzy}
}

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeSubstring, nil
	case ModeSubstring, ModePrefix, ModeFuzzy:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

type Options struct {
	Mode       Mode
	MaxResults int // clamped to 1..model.MaxResults; 0 means model.MaxResults
}

// Matcher maps a query to matching candidates. The candidate set is fixed at
// construction and never mutated.
type Matcher struct {
	mode       Mode
	max        int
	candidates []string
	folded     []string
	trie       *patricia.Trie
}

func New(candidates []string, opts Options) (*Matcher, error) {
	mode, err := ParseMode(string(opts.Mode))
	if err != nil {
		return nil, err
	}

	limit := opts.MaxResults
	if limit <= 0 || limit > model.MaxResults {
		limit = model.MaxResults
	}

	m := &Matcher{
		mode:       mode,
		max:        limit,
		candidates: make([]string, len(candidates)),
		folded:     make([]string, len(candidates)),
	}
	for i, c := range candidates {
		m.candidates[i] = Normalize(c)
	}
	for i, c := range m.candidates {
		m.folded[i] = fold(c)
	}

	if mode == ModePrefix {
		m.trie = patricia.NewTrie()
		for i, f := range m.folded {
			if f == "" {
				continue
			}
			key := patricia.Prefix(f)
			if item := m.trie.Get(key); item != nil {
				m.trie.Set(key, append(item.([]int), i))
				continue
			}
			m.trie.Insert(key, []int{i})
		}
	}
	return m, nil
}

func (m *Matcher) Mode() Mode { return m.mode }

func (m *Matcher) MaxResults() int { return m.max }

// Candidates returns a copy of the candidate set.
func (m *Matcher) Candidates() []string {
	return append([]string{}, m.candidates...)
}

// Match returns at most MaxResults candidates for query. An empty query
// matches nothing.
func (m *Matcher) Match(query string) []string {
	results := []string{}
	if query == "" {
		return results
	}

	switch m.mode {
	case ModePrefix:
		return m.matchPrefix(fold(query))
	case ModeFuzzy:
		for _, match := range fuzzy.Find(query, m.candidates) {
			if len(results) == m.max {
				break
			}
			results = append(results, match.Str)
		}
		return results
	}

	pattern := fold(query)
	for i, f := range m.folded {
		if len(results) == m.max {
			break
		}
		if strings.Contains(f, pattern) {
			results = append(results, m.candidates[i])
		}
	}
	return results
}

func (m *Matcher) matchPrefix(pattern string) []string {
	var indexes []int
	_ = m.trie.VisitSubtree(patricia.Prefix(pattern), func(_ patricia.Prefix, item patricia.Item) error {
		indexes = append(indexes, item.([]int)...)
		return nil
	})
	sort.Ints(indexes)

	results := []string{}
	for _, i := range indexes {
		if len(results) == m.max {
			break
		}
		results = append(results, m.candidates[i])
	}
	return results
}

// Normalize turns tabs and line breaks into single spaces and drops other
// control characters, so a candidate reads the same in a one-line input.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

func fold(s string) string {
	return cases.Fold().String(s)
}
